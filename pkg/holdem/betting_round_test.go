package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestSeats(stacks map[int]int) *SeatArray {
	seats := &SeatArray{}
	for seat, stack := range stacks {
		seats.AddPlayer(seat, NewPlayer(stack))
	}

	return seats
}

func TestBettingRound_legalActions(t *testing.T) {
	run := func(t *testing.T, stack int, canRaise bool, chipRange ChipRange) {
		t.Helper()
		a := assert.New(t)

		seats := newTestSeats(map[int]int{0: stack, 1: 1000, 2: 1000})
		br := NewBettingRound(NewSeatView(seats), 0, 50)
		a.Equal(50, br.BiggestBet())
		a.Equal(50, br.MinRaise())

		actions := br.LegalActions()
		a.Equal(canRaise, actions.CanRaise)
		a.Equal(chipRange, actions.ChipRange)
	}

	t.Run("fewer chips than the biggest bet", func(t *testing.T) {
		run(t, 25, false, ChipRange{})
	})

	t.Run("chips equal to the biggest bet", func(t *testing.T) {
		run(t, 50, false, ChipRange{})
	})

	t.Run("chips between biggest bet and min re-raise", func(t *testing.T) {
		run(t, 75, true, ChipRange{Min: 75, Max: 75})
	})

	t.Run("chips equal to the min re-raise", func(t *testing.T) {
		run(t, 100, true, ChipRange{Min: 100, Max: 100})
	})

	t.Run("chips above the min re-raise", func(t *testing.T) {
		run(t, 150, true, ChipRange{Min: 100, Max: 150})
	})
}

func TestBettingRound_actionsMapOntoTheRotation(t *testing.T) {
	t.Run("partial raise is aggressive", func(t *testing.T) {
		a := assert.New(t)
		seats := newTestSeats(map[int]int{0: 1000, 1: 1000, 2: 1000})
		br := NewBettingRound(NewSeatView(seats), 0, 50)

		br.ActionTaken(BetActionRaise, 200)
		a.Equal(200, br.BiggestBet())
		a.Equal(150, br.MinRaise())
		a.Equal(3, br.NumActivePlayers())
		a.Equal(1, br.PlayerToAct())
	})

	t.Run("all-in raise is aggressive and leaves", func(t *testing.T) {
		a := assert.New(t)
		seats := newTestSeats(map[int]int{0: 1000, 1: 1000, 2: 1000})
		br := NewBettingRound(NewSeatView(seats), 0, 50)

		br.ActionTaken(BetActionRaise, 1000)
		a.Zero(seats.Player(0).Stack())
		a.Equal(2, br.NumActivePlayers())
		a.True(br.InProgress())
	})

	t.Run("partial match is passive", func(t *testing.T) {
		a := assert.New(t)
		seats := newTestSeats(map[int]int{0: 1000, 1: 1000, 2: 1000})
		br := NewBettingRound(NewSeatView(seats), 0, 50)

		br.ActionTaken(BetActionMatch, 0)
		a.Equal(50, seats.Player(0).BetSize())
		a.Equal(3, br.NumActivePlayers())
	})

	t.Run("all-in match is passive and leaves", func(t *testing.T) {
		a := assert.New(t)
		seats := newTestSeats(map[int]int{0: 50, 1: 1000, 2: 1000})
		br := NewBettingRound(NewSeatView(seats), 0, 50)

		br.ActionTaken(BetActionMatch, 0)
		a.Zero(seats.Player(0).Stack())
		a.Equal(2, br.NumActivePlayers())
	})

	t.Run("leave folds the player out", func(t *testing.T) {
		a := assert.New(t)
		seats := newTestSeats(map[int]int{0: 1000, 1: 1000, 2: 1000})
		br := NewBettingRound(NewSeatView(seats), 0, 50)

		br.ActionTaken(BetActionLeave, 0)
		a.Equal(2, br.NumActivePlayers())
		a.Zero(seats.Player(0).BetSize())
	})
}

func TestBettingRound_shortCallBecomesAllIn(t *testing.T) {
	a := assert.New(t)

	seats := newTestSeats(map[int]int{0: 1000, 1: 80, 2: 1000})
	br := NewBettingRound(NewSeatView(seats), 0, 50)

	br.ActionTaken(BetActionRaise, 200)
	br.ActionTaken(BetActionMatch, 0)
	a.Equal(80, seats.Player(1).BetSize())
	a.Zero(seats.Player(1).Stack())
}

func TestBettingRound_shortAllInDoesNotMoveTheMinRaise(t *testing.T) {
	a := assert.New(t)

	seats := newTestSeats(map[int]int{0: 1000, 1: 120, 2: 1000})
	br := NewBettingRound(NewSeatView(seats), 0, 50)

	br.ActionTaken(BetActionRaise, 100)
	a.Equal(100, br.BiggestBet())
	a.Equal(50, br.MinRaise())

	// seat 1 can only raise all-in for less than a full raise
	actions := br.LegalActions()
	a.True(actions.CanRaise)
	a.Equal(ChipRange{Min: 120, Max: 120}, actions.ChipRange)

	br.ActionTaken(BetActionRaise, 120)
	a.Equal(120, br.BiggestBet())
	a.Equal(50, br.MinRaise(), "a short all-in must not move the min raise")
	a.True(br.InProgress(), "a short all-in reopens the action")

	// the next re-raise still needs a full raise over the short all-in
	actions = br.LegalActions()
	a.Equal(170, actions.ChipRange.Min)
}

func TestBettingRound_invalidRaisePanics(t *testing.T) {
	a := assert.New(t)

	seats := newTestSeats(map[int]int{0: 1000, 1: 1000})
	br := NewBettingRound(NewSeatView(seats), 0, 50)

	a.PanicsWithValue("raise to 75 is not valid", func() {
		br.ActionTaken(BetActionRaise, 75)
	})

	a.PanicsWithValue("raise to 1200 is not valid", func() {
		br.ActionTaken(BetActionRaise, 1200)
	})
}

func TestBettingRound_betsOnlyIncrease(t *testing.T) {
	a := assert.New(t)

	seats := newTestSeats(map[int]int{0: 1000, 1: 1000, 2: 1000})
	br := NewBettingRound(NewSeatView(seats), 0, 50)

	br.ActionTaken(BetActionRaise, 100)
	br.ActionTaken(BetActionRaise, 300)
	br.ActionTaken(BetActionMatch, 0)
	br.ActionTaken(BetActionMatch, 0)

	for seat := 0; seat < 3; seat++ {
		a.Equal(300, seats.Player(seat).BetSize())
	}

	a.False(br.InProgress())
}

func TestBettingRound_activeSeatViewExcludesLeavers(t *testing.T) {
	a := assert.New(t)

	seats := newTestSeats(map[int]int{0: 100, 1: 1000, 2: 1000})
	br := NewBettingRound(NewSeatView(seats), 0, 50)

	br.ActionTaken(BetActionRaise, 100) // all-in
	br.ActionTaken(BetActionMatch, 0)
	br.ActionTaken(BetActionLeave, 0)

	view := br.ActiveSeatView()
	a.False(view.Contains(0))
	a.True(view.Contains(1))
	a.False(view.Contains(2))
}
