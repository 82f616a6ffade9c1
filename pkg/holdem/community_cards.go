package holdem

import (
	"fmt"

	"holdem-engine/pkg/deck"
)

// RoundOfBetting is one of the four streets. The numeric value of each
// street is the number of community cards on the board once that street has
// been dealt.
type RoundOfBetting int

// streets
const (
	Preflop RoundOfBetting = 0
	Flop    RoundOfBetting = 3
	Turn    RoundOfBetting = 4
	River   RoundOfBetting = 5
)

// Next returns the street after r
func (r RoundOfBetting) Next() RoundOfBetting {
	switch r {
	case Preflop:
		return Flop
	case Flop:
		return Turn
	case Turn:
		return River
	default:
		panic(fmt.Sprintf("no street follows %s", r))
	}
}

// String returns the street's name
func (r RoundOfBetting) String() string {
	switch r {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		panic(fmt.Sprintf("unknown round of betting: %d", int(r)))
	}
}

// CommunityCards is the append-only board of 0 to 5 shared cards
type CommunityCards struct {
	cards []*deck.Card
}

// NewCommunityCards returns an empty board
func NewCommunityCards() *CommunityCards {
	return &CommunityCards{
		cards: make([]*deck.Card, 0, 5),
	}
}

// Cards returns the board
func (c *CommunityCards) Cards() []*deck.Card {
	return c.cards
}

// Deal appends cards to the board
func (c *CommunityCards) Deal(cards []*deck.Card) {
	if len(c.cards)+len(cards) > 5 {
		panic(fmt.Sprintf("cannot deal %d cards onto a board of %d", len(cards), len(c.cards)))
	}

	c.cards = append(c.cards, cards...)
}
