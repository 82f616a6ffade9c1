package poker

import (
	"fmt"

	"holdem-engine/pkg/deck"
)

// Ranking is a class of poker hand, i.e., royal flush
type Ranking int

// Constants for ranking
const (
	HighCard Ranking = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a ranking
func (r Ranking) String() string {
	switch r {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	default:
		panic(fmt.Sprintf("unknown ranking: %d", r))
	}
}

// Hand is the best five-card hand found in a set of seven cards.
// Hands are totally ordered by (Ranking, Strength).
type Hand struct {
	Ranking  Ranking      `json:"ranking"`
	Strength int          `json:"strength"`
	Cards    []*deck.Card `json:"cards"`
}

// Compare returns a negative value if h is weaker than other, zero if the
// hands tie, and a positive value if h is stronger
func (h Hand) Compare(other Hand) int {
	if h.Ranking != other.Ranking {
		return int(h.Ranking - other.Ranking)
	}

	return h.Strength - other.Strength
}

func (h Hand) String() string {
	return fmt.Sprintf("%s (%s)", h.Ranking, deck.CardsToString(h.Cards))
}
