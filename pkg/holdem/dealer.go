package holdem

import (
	"sort"

	"github.com/sirupsen/logrus"

	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/poker"
)

// Blinds are the forced bets posted before the deal
type Blinds struct {
	Small int `json:"small"`
	Big   int `json:"big"`
}

// ForcedBets describes every involuntary contribution to a hand
type ForcedBets struct {
	Blinds Blinds `json:"blinds"`
	Ante   int    `json:"ante"`
}

// HoleCards are the two face-down cards belonging to one seat
type HoleCards [2]*deck.Card

// Dealer runs a single hand: forced bets, the deal, one to four betting
// rounds, and the showdown payout
type Dealer struct {
	logger  logrus.FieldLogger
	players *SeatView
	button  int

	forcedBets     ForcedBets
	deck           *deck.Deck
	communityCards *CommunityCards
	holeCards      [NumSeats]*HoleCards
	bettingRound   *BettingRound

	handInProgress         bool
	roundOfBetting         RoundOfBetting
	bettingRoundsCompleted bool
	potManager             *PotManager
}

// NewDealer returns a dealer for one hand over the players in the view. The
// deck must be whole and the board empty; both are borrowed for the duration
// of the hand.
func NewDealer(logger logrus.FieldLogger, players *SeatView, button int, forcedBets ForcedBets, d *deck.Deck, communityCards *CommunityCards) *Dealer {
	if d.CardsLeft() != 52 {
		panic("deck must be whole")
	}

	if len(communityCards.Cards()) != 0 {
		panic("board must be empty")
	}

	assertValidSeat(button)

	return &Dealer{
		logger:         logger,
		players:        players,
		button:         button,
		forcedBets:     forcedBets,
		deck:           d,
		communityCards: communityCards,
		potManager:     NewPotManager(),
	}
}

// HandInProgress returns true between StartHand and Showdown
func (d *Dealer) HandInProgress() bool {
	return d.handInProgress
}

// BettingRoundsCompleted returns true once no more betting can happen this
// hand
func (d *Dealer) BettingRoundsCompleted() bool {
	d.assertHandInProgress()
	return d.bettingRoundsCompleted
}

// BettingRoundInProgress returns true while a player has a decision to make
func (d *Dealer) BettingRoundInProgress() bool {
	return d.bettingRound != nil && d.bettingRound.InProgress()
}

// PlayerToAct returns the seat whose turn it is
func (d *Dealer) PlayerToAct() int {
	d.assertBettingRoundInProgress()
	return d.bettingRound.PlayerToAct()
}

// Players returns the hand's seat view; folded seats are filtered out
func (d *Dealer) Players() *SeatView {
	return d.players
}

// RoundOfBetting returns the current street
func (d *Dealer) RoundOfBetting() RoundOfBetting {
	d.assertHandInProgress()
	return d.roundOfBetting
}

// NumActivePlayers returns the number of players still in the betting
// round's rotation
func (d *Dealer) NumActivePlayers() int {
	if d.bettingRound == nil {
		return 0
	}

	return d.bettingRound.NumActivePlayers()
}

// ActivePlayers returns the bitmap of players still in the betting round's
// rotation
func (d *Dealer) ActivePlayers() [NumSeats]bool {
	if d.bettingRound == nil {
		return [NumSeats]bool{}
	}

	return d.bettingRound.ActivePlayers()
}

// BiggestBet returns the standing bet of the current betting round
func (d *Dealer) BiggestBet() int {
	if d.bettingRound == nil {
		return 0
	}

	return d.bettingRound.BiggestBet()
}

// Button returns the button seat
func (d *Dealer) Button() int {
	return d.button
}

// Pots returns the pots formed so far
func (d *Dealer) Pots() []*Pot {
	d.assertHandInProgress()
	return d.potManager.Pots()
}

// HoleCards returns each seat's two face-down cards; nil for seats not
// dealt in
func (d *Dealer) HoleCards() [NumSeats]*HoleCards {
	if !d.handInProgress && !d.bettingRoundsCompleted {
		panic("hand must be in progress or betting rounds must be completed")
	}

	return d.holeCards
}

// LegalActions returns the actions available to the player to act, mapping
// the betting round's match/raise alphabet onto check/call and bet/raise
func (d *Dealer) LegalActions() ActionRange {
	d.assertBettingRoundInProgress()

	player := d.players.Player(d.bettingRound.PlayerToAct())
	actions := d.bettingRound.LegalActions()
	ar := ActionRange{Actions: Fold, ChipRange: actions.ChipRange}
	if d.bettingRound.BiggestBet()-player.BetSize() == 0 {
		ar.Actions |= Check
		if actions.CanRaise {
			// a player who can check with a standing bet of his own is the
			// big blind; his aggressive action is a raise, not a bet
			if player.BetSize() > 0 {
				ar.Actions |= Raise
			} else {
				ar.Actions |= Bet
			}
		}
	} else {
		ar.Actions |= Call
		if actions.CanRaise {
			ar.Actions |= Raise
		}
	}

	return ar
}

// StartHand collects the ante, posts the blinds, deals the hole cards, and
// opens the preflop betting round
func (d *Dealer) StartHand() {
	if d.handInProgress {
		panic("hand must not be in progress")
	}

	d.roundOfBetting = Preflop
	d.bettingRoundsCompleted = false
	d.bettingRound = nil
	d.potManager = NewPotManager()

	d.collectAnte()
	bigBlind := d.postBlinds()
	d.dealHoleCards()

	playersWithChips := 0
	for seat := 0; seat < NumSeats; seat++ {
		if d.players.Contains(seat) && d.players.Player(seat).Stack() != 0 {
			playersWithChips++
		}
	}

	if playersWithChips > 1 {
		d.bettingRound = NewBettingRound(d.players, d.nextOrWrap(bigBlind), d.forcedBets.Blinds.Big)
	}

	d.handInProgress = true

	d.logger.WithFields(logrus.Fields{
		"button":  d.button,
		"players": d.players.Count(),
	}).Debug("hand started")
}

// ActionTaken applies one player decision. The bet amount is only
// meaningful for Bet and Raise.
func (d *Dealer) ActionTaken(a Action, bet int) {
	d.assertBettingRoundInProgress()
	if !d.LegalActions().Contains(a, bet) {
		panic("action must be legal")
	}

	switch {
	case a&(Check|Call) != 0:
		d.bettingRound.ActionTaken(BetActionMatch, 0)
	case a&(Bet|Raise) != 0:
		d.bettingRound.ActionTaken(BetActionRaise, bet)
	default:
		// a fold forfeits the standing bet and leaves the hand
		seat := d.PlayerToAct()
		player := d.players.Player(seat)
		d.potManager.BetFolded(player.BetSize())
		player.TakeFromBet(player.BetSize())
		d.bettingRound.ActionTaken(BetActionLeave, 0)
		d.players.Exclude(seat)
	}
}

// EndBettingRound collects the bets into pots and either opens the next
// street, runs out the board for an all-in showdown, or ends the betting
func (d *Dealer) EndBettingRound() {
	if d.bettingRoundsCompleted {
		panic("betting rounds must not be completed")
	}

	if d.BettingRoundInProgress() {
		panic("betting round must not be in progress")
	}

	d.potManager.CollectBetsFrom(d.players)

	if d.NumActivePlayers() <= 1 {
		d.roundOfBetting = River
		// an uncontested pot is paid without dealing the rest of the board
		if !d.singlePotSinglePlayer() {
			d.dealCommunityCards()
		}
		d.bettingRoundsCompleted = true
	} else if d.roundOfBetting < River {
		d.roundOfBetting = d.roundOfBetting.Next()
		d.players = d.bettingRound.ActiveSeatView()
		d.bettingRound = NewBettingRound(d.players, d.nextOrWrap(d.button), 0)
		d.dealCommunityCards()

		d.logger.WithFields(logrus.Fields{
			"street": d.roundOfBetting.String(),
			"board":  deck.CardsToString(d.communityCards.Cards()),
		}).Debug("street dealt")
	} else {
		d.bettingRoundsCompleted = true
	}
}

// Showdown compares the surviving hands pot by pot and pays the winners
func (d *Dealer) Showdown() {
	if d.roundOfBetting != River {
		panic("round of betting must be river")
	}

	if d.BettingRoundInProgress() {
		panic("betting round must not be in progress")
	}

	if !d.bettingRoundsCompleted {
		panic("betting rounds must be completed")
	}

	d.handInProgress = false

	if d.singlePotSinglePlayer() {
		// no evaluation and no reveal with a single player in a single pot
		pot := d.potManager.Pots()[0]
		seat := pot.EligiblePlayers()[0]
		d.players.seats.Player(seat).AddToStack(pot.Size())

		d.logger.WithFields(logrus.Fields{
			"seat":   seat,
			"payout": pot.Size(),
		}).Debug("uncontested pot awarded")
		return
	}

	for _, pot := range d.potManager.Pots() {
		type result struct {
			seat int
			hand poker.Hand
		}

		results := make([]result, 0, len(pot.EligiblePlayers()))
		for _, seat := range pot.EligiblePlayers() {
			hc := d.holeCards[seat]
			cards := make([]*deck.Card, 0, 7)
			cards = append(cards, hc[0], hc[1])
			cards = append(cards, d.communityCards.Cards()...)
			results = append(results, result{seat: seat, hand: poker.Evaluate(cards)})
		}

		sort.SliceStable(results, func(i, j int) bool {
			return results[i].hand.Compare(results[j].hand) > 0
		})

		winners := results[:1]
		for _, r := range results[1:] {
			if r.hand.Compare(winners[0].hand) != 0 {
				break
			}
			winners = append(winners, r)
		}

		// odd chips go to the winners closest to the left of the button
		sort.Slice(winners, func(i, j int) bool {
			return d.seatOrderAfterButton(winners[i].seat) < d.seatOrderAfterButton(winners[j].seat)
		})

		payout := pot.Size() / len(winners)
		remainder := pot.Size() % len(winners)
		for i, w := range winners {
			amount := payout
			if i < remainder {
				amount++
			}
			d.players.seats.Player(w.seat).AddToStack(amount)

			d.logger.WithFields(logrus.Fields{
				"seat":   w.seat,
				"hand":   w.hand.String(),
				"payout": amount,
			}).Debug("pot awarded")
		}
	}
}

func (d *Dealer) singlePotSinglePlayer() bool {
	pots := d.potManager.Pots()
	return len(pots) == 1 && len(pots[0].EligiblePlayers()) == 1
}

func (d *Dealer) seatOrderAfterButton(seat int) int {
	return (seat - d.button - 1 + NumSeats) % NumSeats
}

// nextOrWrap returns the next seat in the hand after the given seat,
// wrapping at the end of the table
func (d *Dealer) nextOrWrap(seat int) int {
	for {
		seat++
		if seat == NumSeats {
			seat = 0
		}

		if d.players.Contains(seat) {
			return seat
		}
	}
}

// collectAnte takes each player's ante straight from the stack and deposits
// it into the first pot
func (d *Dealer) collectAnte() {
	if d.forcedBets.Ante == 0 {
		return
	}

	collected := 0
	for seat := 0; seat < NumSeats; seat++ {
		if !d.players.Contains(seat) {
			continue
		}

		player := d.players.Player(seat)
		ante := d.forcedBets.Ante
		if player.TotalChips() < ante {
			ante = player.TotalChips()
		}

		player.TakeFromStack(ante)
		collected += ante
	}

	d.potManager.deposit(collected)
}

// postBlinds puts up the small and big blinds, clamped by stack, and
// returns the big blind seat
func (d *Dealer) postBlinds() int {
	seat := d.button
	if d.players.Count() != 2 {
		seat = d.nextOrWrap(seat)
	}

	small := d.players.Player(seat)
	small.Bet(min(d.forcedBets.Blinds.Small, small.TotalChips()))

	seat = d.nextOrWrap(seat)
	big := d.players.Player(seat)
	big.Bet(min(d.forcedBets.Blinds.Big, big.TotalChips()))

	return seat
}

func (d *Dealer) dealHoleCards() {
	for seat := 0; seat < NumSeats; seat++ {
		if d.players.Contains(seat) {
			d.holeCards[seat] = &HoleCards{d.deck.MustDraw(), d.deck.MustDraw()}
		} else {
			d.holeCards[seat] = nil
		}
	}
}

// dealCommunityCards brings the board up to the count implied by the
// current street
func (d *Dealer) dealCommunityCards() {
	want := int(d.roundOfBetting) - len(d.communityCards.Cards())
	cards := make([]*deck.Card, 0, want)
	for i := 0; i < want; i++ {
		cards = append(cards, d.deck.MustDraw())
	}

	d.communityCards.Deal(cards)
}

func (d *Dealer) assertHandInProgress() {
	if !d.handInProgress {
		panic("hand must be in progress")
	}
}

func (d *Dealer) assertBettingRoundInProgress() {
	if !d.BettingRoundInProgress() {
		panic("betting round must be in progress")
	}
}

func min(x, y int) int {
	if x < y {
		return x
	}

	return y
}
