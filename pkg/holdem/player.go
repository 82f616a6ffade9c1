package holdem

import "fmt"

// Player holds the chips of one seat: a total, and the portion of that total
// currently committed to the felt as the standing bet
type Player struct {
	totalChips int
	betSize    int
}

// NewPlayer returns a player with the given stack and no standing bet
func NewPlayer(stack int) *Player {
	if stack < 0 {
		panic(fmt.Sprintf("stack must not be negative: %d", stack))
	}

	return &Player{totalChips: stack}
}

// TotalChips returns the player's chips, including the standing bet
func (p *Player) TotalChips() int {
	return p.totalChips
}

// BetSize returns the player's standing bet
func (p *Player) BetSize() int {
	return p.betSize
}

// Stack returns the chips behind, i.e. total chips minus the standing bet
func (p *Player) Stack() int {
	return p.totalChips - p.betSize
}

// AddToStack adds winnings to the player's total
func (p *Player) AddToStack(amount int) {
	if amount < 0 {
		panic(fmt.Sprintf("amount must not be negative: %d", amount))
	}

	p.totalChips += amount
}

// TakeFromStack removes chips from the player's total without touching the
// standing bet
func (p *Player) TakeFromStack(amount int) {
	if amount < 0 || amount > p.Stack() {
		panic(fmt.Sprintf("cannot take %d from a stack of %d", amount, p.Stack()))
	}

	p.totalChips -= amount
}

// Bet raises the player's standing bet to amount. A bet can only grow within
// a betting round and can never exceed the player's total chips.
func (p *Player) Bet(amount int) {
	if amount > p.totalChips {
		panic(fmt.Sprintf("bet of %d exceeds total chips of %d", amount, p.totalChips))
	}

	if amount < p.betSize {
		panic(fmt.Sprintf("bet of %d is below the standing bet of %d", amount, p.betSize))
	}

	p.betSize = amount
}

// TakeFromBet moves amount out of the bet column, debiting both the total
// and the standing bet. Used by pot collection.
func (p *Player) TakeFromBet(amount int) {
	if amount < 0 || amount > p.betSize {
		panic(fmt.Sprintf("cannot take %d from a bet of %d", amount, p.betSize))
	}

	p.totalChips -= amount
	p.betSize -= amount
}
