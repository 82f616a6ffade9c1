package holdem

import "fmt"

// Pot is a chip container with a fixed set of eligible seats. Pots refer to
// players by seat index so they never alias the seat array.
type Pot struct {
	size            int
	eligiblePlayers []int
}

func newPot() *Pot {
	return &Pot{}
}

// Size returns the chips in the pot
func (p *Pot) Size() int {
	return p.size
}

// EligiblePlayers returns the seat indices contesting this pot
func (p *Pot) EligiblePlayers() []int {
	return p.eligiblePlayers
}

func (p *Pot) add(amount int) {
	if amount < 0 {
		panic(fmt.Sprintf("amount must not be negative: %d", amount))
	}

	p.size += amount
}

// collectBetsFrom levels one column of bets into the pot: every player in
// the view with a standing bet pays in the smallest such bet, and those
// players become the pot's eligible set. With no bets outstanding the
// eligible set becomes every seat in the view. Returns the amount collected
// per player.
func (p *Pot) collectBetsFrom(players *SeatView) int {
	minBet := 0
	for seat := 0; seat < NumSeats; seat++ {
		if !players.Contains(seat) {
			continue
		}

		if bet := players.Player(seat).BetSize(); bet > 0 && (minBet == 0 || bet < minBet) {
			minBet = bet
		}
	}

	if minBet == 0 {
		p.eligiblePlayers = nil
		for seat := 0; seat < NumSeats; seat++ {
			if players.Contains(seat) {
				p.eligiblePlayers = append(p.eligiblePlayers, seat)
			}
		}

		return 0
	}

	p.eligiblePlayers = nil
	for seat := 0; seat < NumSeats; seat++ {
		if !players.Contains(seat) {
			continue
		}

		if player := players.Player(seat); player.BetSize() > 0 {
			player.TakeFromBet(minBet)
			p.size += minBet
			p.eligiblePlayers = append(p.eligiblePlayers, seat)
		}
	}

	return minBet
}
