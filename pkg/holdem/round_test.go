package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func activeSeats(seats ...int) [NumSeats]bool {
	var active [NumSeats]bool
	for _, s := range seats {
		active[s] = true
	}

	return active
}

func TestNewRound(t *testing.T) {
	a := assert.New(t)

	r := NewRound(activeSeats(0, 1, 2), 0)
	a.True(r.InProgress())
	a.Equal(0, r.PlayerToAct())
	a.Equal(0, r.LastAggressiveActor())
	a.Equal(3, r.NumActivePlayers())

	a.PanicsWithValue("first to act must be an active player", func() {
		NewRound(activeSeats(1, 2), 0)
	})
}

func TestRound_headsUp(t *testing.T) {
	t.Run("aggressive action keeps both players in", func(t *testing.T) {
		a := assert.New(t)
		r := NewRound(activeSeats(0, 1), 0)

		r.ActionTaken(RoundActionAggressive)
		a.Equal(0, r.LastAggressiveActor())
		a.Equal(1, r.PlayerToAct())
		a.True(r.InProgress())
		a.Equal(2, r.NumActivePlayers())
	})

	t.Run("aggressive all-in leaves the rotation open", func(t *testing.T) {
		a := assert.New(t)
		r := NewRound(activeSeats(0, 1), 0)

		r.ActionTaken(RoundActionAggressive | RoundActionLeave)
		a.Equal(0, r.LastAggressiveActor())
		a.Equal(1, r.PlayerToAct())
		a.True(r.InProgress())
		a.Equal(1, r.NumActivePlayers())
	})

	t.Run("passive action keeps the round open", func(t *testing.T) {
		a := assert.New(t)
		r := NewRound(activeSeats(0, 1), 0)

		r.ActionTaken(RoundActionPassive)
		a.Equal(0, r.LastAggressiveActor())
		a.Equal(1, r.PlayerToAct())
		a.True(r.InProgress())
		a.Equal(2, r.NumActivePlayers())
	})

	t.Run("passive all-in keeps the round open", func(t *testing.T) {
		a := assert.New(t)
		r := NewRound(activeSeats(0, 1), 0)

		r.ActionTaken(RoundActionPassive | RoundActionLeave)
		a.True(r.InProgress())
	})

	t.Run("a lone fold ends the round", func(t *testing.T) {
		a := assert.New(t)
		r := NewRound(activeSeats(0, 1), 0)

		r.ActionTaken(RoundActionLeave)
		a.False(r.InProgress())
		a.Equal(1, r.NumActivePlayers())
	})

	t.Run("raise and re-raise rotate the aggressor", func(t *testing.T) {
		a := assert.New(t)
		r := NewRound(activeSeats(0, 1), 0)

		r.ActionTaken(RoundActionAggressive)
		r.ActionTaken(RoundActionAggressive)
		a.Equal(1, r.LastAggressiveActor())
		a.Equal(0, r.PlayerToAct())
		a.True(r.InProgress())

		r.ActionTaken(RoundActionPassive)
		a.False(r.InProgress())
	})
}

func TestRound_twoAllInsDoNotEndTheRound(t *testing.T) {
	a := assert.New(t)

	r := NewRound(activeSeats(0, 1, 2), 0)
	r.ActionTaken(RoundActionAggressive | RoundActionLeave)
	r.ActionTaken(RoundActionPassive | RoundActionLeave)
	a.True(r.InProgress())
	a.Equal(2, r.PlayerToAct())
}

func TestRound_actionClosesOnTheLastAggressiveActor(t *testing.T) {
	a := assert.New(t)

	// seat 1 raises all-in; once the action wraps back to that now-empty
	// seat, the round is over
	r := NewRound(activeSeats(0, 1, 2), 0)
	r.ActionTaken(RoundActionPassive)
	r.ActionTaken(RoundActionAggressive | RoundActionLeave)
	a.Equal(1, r.LastAggressiveActor())

	r.ActionTaken(RoundActionPassive)
	a.Equal(0, r.PlayerToAct())
	a.True(r.InProgress())

	r.ActionTaken(RoundActionPassive)
	a.Equal(1, r.PlayerToAct())
	a.False(r.InProgress())
}

func TestRound_allButOneLeave(t *testing.T) {
	a := assert.New(t)

	r := NewRound(activeSeats(0, 1, 2, 3), 0)
	r.ActionTaken(RoundActionLeave)
	r.ActionTaken(RoundActionLeave)
	r.ActionTaken(RoundActionLeave)
	a.False(r.InProgress())
	a.Equal(1, r.NumActivePlayers())
}

func TestRound_passiveActionsAfterAnOpeningBet(t *testing.T) {
	a := assert.New(t)

	r := NewRound(activeSeats(1, 3, 5, 7), 3)
	r.ActionTaken(RoundActionAggressive)
	r.ActionTaken(RoundActionPassive)
	r.ActionTaken(RoundActionPassive)
	a.True(r.InProgress())

	r.ActionTaken(RoundActionPassive)
	a.False(r.InProgress())
	a.Equal(r.LastAggressiveActor(), r.PlayerToAct())
}

func TestRound_terminatesInLinearCalls(t *testing.T) {
	a := assert.New(t)

	// with k active players and only passive action, the round ends after
	// exactly k calls
	for k := 2; k <= NumSeats; k++ {
		seats := make([]int, k)
		for i := range seats {
			seats[i] = i
		}

		r := NewRound(activeSeats(seats...), 0)
		calls := 0
		for r.InProgress() {
			r.ActionTaken(RoundActionPassive)
			calls++
		}

		a.Equal(k, calls)
	}
}

func TestRound_contractViolations(t *testing.T) {
	a := assert.New(t)

	r := NewRound(activeSeats(0, 1), 0)
	a.PanicsWithValue("an action cannot be both passive and aggressive", func() {
		r.ActionTaken(RoundActionPassive | RoundActionAggressive)
	})

	r.ActionTaken(RoundActionLeave)
	a.False(r.InProgress())
	a.PanicsWithValue("round must be in progress", func() {
		r.ActionTaken(RoundActionPassive)
	})
}
