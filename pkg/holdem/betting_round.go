package holdem

import "fmt"

// ChipRange is an inclusive range of chip amounts
type ChipRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains returns true if amount falls within the range
func (r ChipRange) Contains(amount int) bool {
	return r.Min <= amount && amount <= r.Max
}

// BetAction is the simplified action alphabet of a betting round
type BetAction int

// bet action constants
const (
	// BetActionLeave folds the player out of the rotation
	BetActionLeave BetAction = iota
	// BetActionMatch brings the player's bet up to the standing bet, clamped
	// by their stack
	BetActionMatch
	// BetActionRaise increases the standing bet
	BetActionRaise
)

// BetActionRange describes what the player to act may do
type BetActionRange struct {
	CanRaise  bool
	ChipRange ChipRange
}

// BettingRound maps bets and raises onto a rotation, tracking the standing
// bet and the minimum raise
type BettingRound struct {
	round      *Round
	players    *SeatView
	biggestBet int
	minRaise   int
}

// NewBettingRound returns a betting round over the players in the view,
// starting at firstToAct. minRaise seeds both the standing bet and the
// minimum raise: the big blind preflop, zero on later streets.
func NewBettingRound(players *SeatView, firstToAct, minRaise int) *BettingRound {
	return &BettingRound{
		round:      NewRound(players.Filter(), firstToAct),
		players:    players,
		biggestBet: minRaise,
		minRaise:   minRaise,
	}
}

// InProgress returns true while there is still action to take
func (br *BettingRound) InProgress() bool {
	return br.round.InProgress()
}

// PlayerToAct returns the seat whose turn it is
func (br *BettingRound) PlayerToAct() int {
	return br.round.PlayerToAct()
}

// BiggestBet returns the standing bet
func (br *BettingRound) BiggestBet() int {
	return br.biggestBet
}

// MinRaise returns the current minimum raise increment
func (br *BettingRound) MinRaise() int {
	return br.minRaise
}

// NumActivePlayers returns the number of players still in the rotation
func (br *BettingRound) NumActivePlayers() int {
	return br.round.NumActivePlayers()
}

// ActivePlayers returns the bitmap of players still in the rotation
func (br *BettingRound) ActivePlayers() [NumSeats]bool {
	return br.round.ActivePlayers()
}

// ActiveSeatView returns a fresh view over the players still in the
// rotation; all-in and folded players are filtered out
func (br *BettingRound) ActiveSeatView() *SeatView {
	return NewFilteredSeatView(br.players.seats, br.round.ActivePlayers())
}

// LegalActions returns whether the player to act can raise and, if so, to
// what range
func (br *BettingRound) LegalActions() BetActionRange {
	player := br.players.Player(br.PlayerToAct())
	playerChips := player.TotalChips()
	if playerChips <= br.biggestBet {
		return BetActionRange{}
	}

	minBet := br.biggestBet + br.minRaise
	if minBet > playerChips {
		minBet = playerChips
	}

	return BetActionRange{
		CanRaise:  true,
		ChipRange: ChipRange{Min: minBet, Max: playerChips},
	}
}

// ActionTaken applies one action by the player to act. The bet amount is
// only meaningful for BetActionRaise.
func (br *BettingRound) ActionTaken(a BetAction, bet int) {
	player := br.players.Player(br.PlayerToAct())
	switch a {
	case BetActionRaise:
		if !br.isRaiseValid(bet) {
			panic(fmt.Sprintf("raise to %d is not valid", bet))
		}

		player.Bet(bet)
		// a short all-in raise reopens the action but does not move the
		// minimum raise
		if increment := bet - br.biggestBet; increment >= br.minRaise {
			br.minRaise = increment
		}
		br.biggestBet = bet

		flags := RoundActionAggressive
		if player.Stack() == 0 {
			flags |= RoundActionLeave
		}
		br.round.ActionTaken(flags)
	case BetActionMatch:
		amount := br.biggestBet
		if player.TotalChips() < amount {
			amount = player.TotalChips()
		}
		player.Bet(amount)

		flags := RoundActionPassive
		if player.Stack() == 0 {
			flags |= RoundActionLeave
		}
		br.round.ActionTaken(flags)
	case BetActionLeave:
		br.round.ActionTaken(RoundActionLeave)
	default:
		panic(fmt.Sprintf("unknown bet action: %d", a))
	}
}

// isRaiseValid checks the no-limit raise rule: a raise must reach the
// standing bet plus the minimum raise, except that a player may always raise
// all-in for less (a short all-in)
func (br *BettingRound) isRaiseValid(bet int) bool {
	player := br.players.Player(br.PlayerToAct())
	playerChips := player.Stack() + player.BetSize()
	minBet := br.biggestBet + br.minRaise
	if playerChips > br.biggestBet && playerChips < minBet {
		return bet == playerChips
	}

	return bet >= minBet && bet <= playerChips
}
