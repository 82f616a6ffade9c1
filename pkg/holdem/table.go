package holdem

import (
	"fmt"
	"math/bits"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"holdem-engine/internal/rng"
	"holdem-engine/pkg/deck"
)

// AutomaticAction is a pre-committed action that fires when it becomes the
// seat's turn. LegalAutomaticActions exposes sets of them, so the constants
// are bit flags; a committed choice must be exactly one.
type AutomaticAction uint8

// automatic action flags
const (
	AutoFold AutomaticAction = 1 << iota
	AutoCheckFold
	AutoCheck
	AutoCall
	AutoCallAny
	AutoAllIn
)

// IsSingular returns true if exactly one automatic action flag is set
func (a AutomaticAction) IsSingular() bool {
	return bits.OnesCount8(uint8(a)) == 1
}

// String returns the name of a singular automatic action
func (a AutomaticAction) String() string {
	switch a {
	case AutoFold:
		return "fold"
	case AutoCheckFold:
		return "check/fold"
	case AutoCheck:
		return "check"
	case AutoCall:
		return "call"
	case AutoCallAny:
		return "call any"
	case AutoAllIn:
		return "all in"
	default:
		panic(fmt.Sprintf("automatic action is not singular: %b", uint8(a)))
	}
}

// Table wraps a dealer with seat lifecycle across hands: sitting down and
// standing up, button rotation, and automatic actions
type Table struct {
	logger     logrus.FieldLogger
	forcedBets ForcedBets

	// seats holds the players physically present at the table; handPlayers
	// is the snapshot taken at the start of the current hand. Both share
	// the same Player values, so chips won mid-hand are immediately visible
	// at the table.
	seats            SeatArray
	handPlayers      SeatArray
	staged           [NumSeats]bool
	automaticActions [NumSeats]*AutomaticAction

	firstTimeButton   bool
	buttonSetManually bool
	button            int

	deck           *deck.Deck
	communityCards *CommunityCards
	dealer         *Dealer
	handCounter    int
}

// NewTable returns an empty table playing for the given forced bets
func NewTable(logger logrus.FieldLogger, forcedBets ForcedBets) *Table {
	return &Table{
		logger:          logger,
		forcedBets:      forcedBets,
		firstTimeButton: true,
	}
}

// Seats returns the players physically present at the table
func (t *Table) Seats() SeatArray {
	return t.seats
}

// ForcedBets returns the blinds and ante in play
func (t *Table) ForcedBets() ForcedBets {
	return t.forcedBets
}

// SetForcedBets changes the blinds and ante between hands
func (t *Table) SetForcedBets(forcedBets ForcedBets) {
	if t.HandInProgress() {
		panic("hand must not be in progress")
	}

	t.forcedBets = forcedBets
}

// HandInProgress returns true between StartHand and Showdown
func (t *Table) HandInProgress() bool {
	return t.dealer != nil && t.dealer.HandInProgress()
}

// BettingRoundInProgress returns true while a player has a decision to make
func (t *Table) BettingRoundInProgress() bool {
	t.assertHandInProgress()
	return t.dealer.BettingRoundInProgress()
}

// BettingRoundsCompleted returns true once no more betting can happen this
// hand
func (t *Table) BettingRoundsCompleted() bool {
	t.assertHandInProgress()
	return t.dealer.BettingRoundsCompleted()
}

// HandPlayers returns the current hand's seat view; folded seats are
// filtered out
func (t *Table) HandPlayers() *SeatView {
	t.assertHandInProgress()
	return t.dealer.Players()
}

// Button returns the button seat
func (t *Table) Button() int {
	t.assertHandInProgress()
	return t.button
}

// PlayerToAct returns the seat whose turn it is
func (t *Table) PlayerToAct() int {
	t.assertBettingRoundInProgress()
	return t.dealer.PlayerToAct()
}

// NumActivePlayers returns the number of players still in the betting
// round's rotation
func (t *Table) NumActivePlayers() int {
	t.assertHandInProgress()
	return t.dealer.NumActivePlayers()
}

// Pots returns the pots formed so far
func (t *Table) Pots() []*Pot {
	t.assertHandInProgress()
	return t.dealer.Pots()
}

// RoundOfBetting returns the current street
func (t *Table) RoundOfBetting() RoundOfBetting {
	t.assertHandInProgress()
	return t.dealer.RoundOfBetting()
}

// CommunityCards returns the board
func (t *Table) CommunityCards() *CommunityCards {
	t.assertHandInProgress()
	return t.communityCards
}

// LegalActions returns the actions available to the player to act
func (t *Table) LegalActions() ActionRange {
	t.assertBettingRoundInProgress()
	return t.dealer.LegalActions()
}

// HoleCards returns each seat's two face-down cards; nil for seats not
// dealt in
func (t *Table) HoleCards() [NumSeats]*HoleCards {
	if t.dealer == nil {
		panic("hand must be in progress or betting rounds must be completed")
	}

	return t.dealer.HoleCards()
}

// AutomaticActions returns each seat's pending automatic action; nil for
// seats without one
func (t *Table) AutomaticActions() [NumSeats]*AutomaticAction {
	t.assertHandInProgress()
	return t.automaticActions
}

// SitDown seats a new player with the given buy-in. The player takes part
// from the next hand on.
func (t *Table) SitDown(seat, buyIn int) {
	assertValidSeat(seat)
	t.seats.AddPlayer(seat, NewPlayer(buyIn))
	t.staged[seat] = true
}

// StandUp removes a player from the table. If the player is in the middle
// of a hand, they are folded out of it first.
func (t *Table) StandUp(seat int) {
	assertValidSeat(seat)
	t.seats.Player(seat)

	if !t.HandInProgress() {
		t.seats.RemovePlayer(seat)
		return
	}

	if !t.BettingRoundInProgress() {
		panic("betting round must be in progress")
	}

	switch {
	case seat == t.PlayerToAct():
		t.ActionTaken(Fold, 0)
		t.seats.RemovePlayer(seat)
		t.staged[seat] = true
	case t.handPlayers[seat] != nil:
		t.SetAutomaticAction(seat, AutoFold)
		t.seats.RemovePlayer(seat)
		t.staged[seat] = true

		if t.singleActivePlayerRemaining() {
			// the one remaining player closes out the hand; the pending
			// automatic folds unwind on their action
			t.actPassively()
		}
	default:
		// sat down mid-hand; not part of the hand
		t.seats.RemovePlayer(seat)
	}
}

// StartHand begins a new hand with a fresh deck shuffled by g, advancing
// the button
func (t *Table) StartHand(g rng.Generator) {
	if t.HandInProgress() {
		panic("hand must not be in progress")
	}

	if t.seats.Count() < 2 {
		panic("at least two players must be seated")
	}

	t.staged = [NumSeats]bool{}
	t.automaticActions = [NumSeats]*AutomaticAction{}
	t.handPlayers = t.seats
	t.incrementButton()
	t.deck = deck.New(g)
	t.communityCards = NewCommunityCards()
	t.handCounter++

	logger := t.logger.WithFields(logrus.Fields{
		"handId":  uuid.New().String(),
		"handNum": t.handCounter,
	})

	t.dealer = NewDealer(logger, NewSeatView(&t.handPlayers), t.button, t.forcedBets, t.deck, t.communityCards)
	t.dealer.StartHand()
}

// StartHandWithButton begins a new hand with the button placed explicitly
func (t *Table) StartHandWithButton(g rng.Generator, seat int) {
	assertValidSeat(seat)
	t.seats.Player(seat)

	t.button = seat
	t.buttonSetManually = true
	t.StartHand(g)
}

// ActionTaken applies one player decision, then fires any pending automatic
// actions that have become executable
func (t *Table) ActionTaken(a Action, bet int) {
	t.assertBettingRoundInProgress()

	t.dealer.ActionTaken(a, bet)
	for t.dealer.BettingRoundInProgress() {
		t.amendAutomaticActions()

		seat := t.dealer.PlayerToAct()
		aa := t.automaticActions[seat]
		if aa == nil {
			break
		}

		t.takeAutomaticAction(*aa)
		t.automaticActions[seat] = nil
	}

	if t.dealer.BettingRoundInProgress() && t.singleActivePlayerRemaining() {
		t.actPassively()
	}
}

// EndBettingRound collects the bets into pots and moves the hand along
func (t *Table) EndBettingRound() {
	t.assertHandInProgress()
	t.dealer.EndBettingRound()
	t.amendAutomaticActions()
}

// Showdown compares the surviving hands and pays the pots
func (t *Table) Showdown() {
	t.assertHandInProgress()
	t.dealer.Showdown()
}

// CanSetAutomaticAction returns true if the seat may pre-commit an action:
// it must have been in the hand since the start and still be at the table
func (t *Table) CanSetAutomaticAction(seat int) bool {
	t.assertBettingRoundInProgress()
	assertValidSeat(seat)

	return !t.staged[seat] && t.seats[seat] != nil
}

// LegalAutomaticActions returns the automatic actions the seat may commit
// to in the current betting situation
func (t *Table) LegalAutomaticActions(seat int) AutomaticAction {
	if !t.CanSetAutomaticAction(seat) {
		panic("seat must be allowed to set automatic actions")
	}

	biggestBet := t.dealer.BiggestBet()
	player := t.seats.Player(seat)
	betSize := player.BetSize()
	totalChips := player.TotalChips()

	legal := AutoFold | AutoAllIn
	if biggestBet-betSize == 0 {
		legal |= AutoCheckFold | AutoCheck
	} else {
		legal |= AutoCall
	}

	if biggestBet < totalChips {
		legal |= AutoCallAny
	}

	return legal
}

// SetAutomaticAction pre-commits an action for the seat, to fire when its
// turn comes
func (t *Table) SetAutomaticAction(seat int, a AutomaticAction) {
	if !t.CanSetAutomaticAction(seat) {
		panic("seat must be allowed to set automatic actions")
	}

	if seat == t.PlayerToAct() {
		panic("seat must not be the player to act")
	}

	if !a.IsSingular() {
		panic("exactly one automatic action must be chosen")
	}

	if a&t.LegalAutomaticActions(seat) == 0 {
		panic(fmt.Sprintf("automatic action %s is not legal for seat %d", a, seat))
	}

	committed := a
	t.automaticActions[seat] = &committed
}

// takeAutomaticAction translates a pending automatic action into a concrete
// dealer action for the player to act
func (t *Table) takeAutomaticAction(a AutomaticAction) {
	player := t.handPlayers.Player(t.dealer.PlayerToAct())
	biggestBet := t.dealer.BiggestBet()
	betGap := biggestBet - player.BetSize()
	totalChips := player.TotalChips()

	switch a {
	case AutoFold:
		t.dealer.ActionTaken(Fold, 0)
	case AutoCheckFold:
		if betGap == 0 {
			t.dealer.ActionTaken(Check, 0)
		} else {
			t.dealer.ActionTaken(Fold, 0)
		}
	case AutoCheck:
		t.dealer.ActionTaken(Check, 0)
	case AutoCall:
		t.dealer.ActionTaken(Call, 0)
	case AutoCallAny:
		if betGap == 0 {
			t.dealer.ActionTaken(Check, 0)
		} else {
			t.dealer.ActionTaken(Call, 0)
		}
	case AutoAllIn:
		switch {
		case totalChips > biggestBet:
			t.dealer.ActionTaken(Raise, totalChips)
		case betGap == 0:
			t.dealer.ActionTaken(Check, 0)
		default:
			t.dealer.ActionTaken(Call, 0)
		}
	default:
		panic(fmt.Sprintf("automatic action is not singular: %b", uint8(a)))
	}
}

// amendAutomaticActions downgrades or clears pending automatic actions that
// the betting situation has invalidated
func (t *Table) amendAutomaticActions() {
	biggestBet := t.dealer.BiggestBet()
	for seat := 0; seat < NumSeats; seat++ {
		aa := t.automaticActions[seat]
		if aa == nil {
			continue
		}

		player := t.handPlayers.Player(seat)
		betGap := biggestBet - player.BetSize()
		totalChips := player.TotalChips()

		switch {
		case *aa&AutoCheckFold != 0 && betGap > 0:
			*aa = AutoFold
		case *aa&AutoCheck != 0 && betGap > 0:
			t.automaticActions[seat] = nil
		case *aa&AutoCallAny != 0 && biggestBet >= totalChips:
			*aa = AutoCall
		}
	}
}

// actPassively makes the player to act check if possible, else call
func (t *Table) actPassively() {
	legal := t.dealer.LegalActions()
	if legal.Actions&Check != 0 {
		t.ActionTaken(Check, 0)
	} else {
		t.ActionTaken(Call, 0)
	}
}

// singleActivePlayerRemaining returns true if only one player in the
// rotation is still present at the table. Players who stood up mid-hand are
// still in the rotation until their automatic fold fires, so they are not
// counted.
func (t *Table) singleActivePlayerRemaining() bool {
	active := t.dealer.ActivePlayers()
	count := 0
	for seat := 0; seat < NumSeats; seat++ {
		if active[seat] && !t.staged[seat] {
			count++
		}
	}

	return count == 1
}

// incrementButton advances the button: an explicitly placed button wins,
// the first hand uses the lowest occupied seat, and every later hand moves
// to the next occupied seat, whether or not the previous button seat is
// still occupied
func (t *Table) incrementButton() {
	switch {
	case t.buttonSetManually:
		t.buttonSetManually = false
		t.firstTimeButton = false
	case t.firstTimeButton:
		t.button = t.handPlayers.FirstOccupied()
		t.firstTimeButton = false
	default:
		seat := t.button
		for i := 0; i < NumSeats; i++ {
			seat++
			if seat == NumSeats {
				seat = 0
			}

			if t.handPlayers[seat] != nil {
				t.button = seat
				return
			}
		}

		panic("no occupied seats")
	}
}

func (t *Table) assertHandInProgress() {
	if !t.HandInProgress() {
		panic("hand must be in progress")
	}
}

func (t *Table) assertBettingRoundInProgress() {
	if !t.BettingRoundInProgress() {
		panic("betting round must be in progress")
	}
}
