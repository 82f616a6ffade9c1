package main

import (
	"github.com/sirupsen/logrus"

	"holdem-engine/internal/config"
	"holdem-engine/internal/rng"
	"holdem-engine/pkg/holdem"
)

// holdem-sim plays a configurable number of hands of no-limit hold'em with
// random legal actions. It doubles as a fuzz harness: chip conservation is
// checked after every hand.
func main() {
	cfg := config.Instance()

	logger := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	var g rng.Generator = rng.Crypto{}
	if cfg.Seed != 0 {
		g = rng.NewSeeded(cfg.Seed)
	}

	forcedBets := holdem.ForcedBets{
		Blinds: holdem.Blinds{
			Small: cfg.Blinds.Small,
			Big:   cfg.Blinds.Big,
		},
		Ante: cfg.Ante,
	}

	table := holdem.NewTable(logger, forcedBets)

	seats := cfg.Seats
	if seats > holdem.NumSeats {
		seats = holdem.NumSeats
	}

	for seat := 0; seat < seats; seat++ {
		table.SitDown(seat, cfg.BuyIn)
	}

	chipsInPlay := seats * cfg.BuyIn

	for hand := 1; hand <= cfg.Hands; hand++ {
		if table.Seats().Count() < 2 {
			logger.Info("not enough players remain")
			break
		}

		table.StartHand(g)
		playHand(table, g)
		table.Showdown()

		if total := totalChips(table); total != chipsInPlay {
			logger.WithFields(logrus.Fields{
				"expected": chipsInPlay,
				"actual":   total,
			}).Error("chip conservation violated")
			break
		}

		// busted players leave with nothing, so the chips in play are
		// unchanged
		standUpBusted(table, logger)
	}

	for seat, player := range table.Seats() {
		if player != nil {
			logger.WithFields(logrus.Fields{
				"seat":  seat,
				"stack": player.Stack(),
			}).Info("final stack")
		}
	}
}

func playHand(table *holdem.Table, g rng.Generator) {
	for {
		for table.BettingRoundInProgress() {
			takeRandomAction(table, g)
		}

		table.EndBettingRound()
		if table.BettingRoundsCompleted() {
			return
		}
	}
}

func takeRandomAction(table *holdem.Table, g rng.Generator) {
	legal := table.LegalActions()

	roll := g.Intn(10)
	switch {
	case roll == 0 && legal.Actions&holdem.Check == 0:
		table.ActionTaken(holdem.Fold, 0)
	case roll >= 8 && legal.Actions&(holdem.Bet|holdem.Raise) != 0:
		span := legal.ChipRange.Max - legal.ChipRange.Min
		amount := legal.ChipRange.Min
		if span > 0 {
			amount += g.Intn(span + 1)
		}

		if legal.Actions&holdem.Bet != 0 {
			table.ActionTaken(holdem.Bet, amount)
		} else {
			table.ActionTaken(holdem.Raise, amount)
		}
	case legal.Actions&holdem.Check != 0:
		table.ActionTaken(holdem.Check, 0)
	default:
		table.ActionTaken(holdem.Call, 0)
	}
}

func totalChips(table *holdem.Table) int {
	total := 0
	for _, player := range table.Seats() {
		if player != nil {
			total += player.TotalChips()
		}
	}

	return total
}

func standUpBusted(table *holdem.Table, logger logrus.FieldLogger) {
	for seat, player := range table.Seats() {
		if player != nil && player.TotalChips() == 0 {
			table.StandUp(seat)
			logger.WithField("seat", seat).Info("player busted")
		}
	}
}
