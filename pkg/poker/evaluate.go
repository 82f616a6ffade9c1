package poker

import (
	"fmt"
	"sort"

	"holdem-engine/pkg/deck"
)

// Evaluate returns the best five-card hand that can be made from exactly
// seven cards
func Evaluate(cards []*deck.Card) Hand {
	if len(cards) != 7 {
		panic(fmt.Sprintf("expected 7 cards, got %d", len(cards)))
	}

	best := byRankEval(cards)
	if sf := straightFlushEval(cards); sf != nil && sf.Compare(best) > 0 {
		best = *sf
	}

	return best
}

// byRankEval finds the best hand made of rank groups: high card through
// four of a kind
func byRankEval(cards []*deck.Card) Hand {
	occurrences := make(map[int]int)
	for _, c := range cards {
		occurrences[c.Rank]++
	}

	sorted := make([]*deck.Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		if occurrences[sorted[i].Rank] == occurrences[sorted[j].Rank] {
			return sorted[i].Rank > sorted[j].Rank
		}

		return occurrences[sorted[i].Rank] > occurrences[sorted[j].Rank]
	})

	var ranking Ranking
	switch occurrences[sorted[0].Rank] {
	case 4:
		// the three leftover cards may be ordered pair-first; the kicker is
		// the highest leftover rank
		sort.SliceStable(sorted[4:], func(i, j int) bool {
			return sorted[4+i].Rank > sorted[4+j].Rank
		})
		ranking = FourOfAKind
	case 3:
		if occurrences[sorted[3].Rank] >= 2 {
			ranking = FullHouse
		} else {
			ranking = ThreeOfAKind
		}
	case 2:
		if occurrences[sorted[2].Rank] == 2 {
			// with three pairs the kicker is the highest leftover rank, which
			// may be the odd card rather than the third pair
			sort.SliceStable(sorted[4:], func(i, j int) bool {
				return sorted[4+i].Rank > sorted[4+j].Rank
			})
			ranking = TwoPair
		} else {
			ranking = OnePair
		}
	default:
		ranking = HighCard
	}

	five := sorted[:5]
	return Hand{
		Ranking:  ranking,
		Strength: strength(five),
		Cards:    five,
	}
}

// straightFlushEval finds the best suited or sequential hand: straight,
// flush, straight flush, or royal flush. Returns nil if the cards make none
// of those.
func straightFlushEval(cards []*deck.Card) *Hand {
	bySuit := make(map[deck.Suit][]*deck.Card)
	for _, c := range cards {
		bySuit[c.Suit] = append(bySuit[c.Suit], c)
	}

	for _, suited := range bySuit {
		if len(suited) < 5 {
			continue
		}

		sort.Slice(suited, func(i, j int) bool {
			return suited[i].Rank > suited[j].Rank
		})

		if run := findStraight(suited); run != nil {
			if run[0].Rank == deck.Ace {
				return &Hand{Ranking: RoyalFlush, Strength: 0, Cards: run}
			}

			return &Hand{Ranking: StraightFlush, Strength: run[0].Rank, Cards: run}
		}

		five := suited[:5]
		return &Hand{Ranking: Flush, Strength: strength(five), Cards: five}
	}

	if run := findStraight(dedupeByRank(cards)); run != nil {
		return &Hand{Ranking: Straight, Strength: run[0].Rank, Cards: run}
	}

	return nil
}

// findStraight searches cards, which must be sorted by descending rank with
// no duplicate ranks, for five sequential cards. The wheel (5-4-3-2-A) is
// found by rotating the ace to the low end.
func findStraight(cards []*deck.Card) []*deck.Card {
	run := []*deck.Card{cards[0]}
	for _, c := range cards[1:] {
		if c.Rank == run[len(run)-1].Rank-1 {
			run = append(run, c)
		} else {
			run = []*deck.Card{c}
		}

		if len(run) == 5 {
			return run
		}
	}

	if len(run) == 4 && run[0].Rank == 5 && cards[0].Rank == deck.Ace {
		return append(run, cards[0])
	}

	return nil
}

func dedupeByRank(cards []*deck.Card) []*deck.Card {
	sorted := make([]*deck.Card, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Rank > sorted[j].Rank
	})

	deduped := sorted[:1]
	for _, c := range sorted[1:] {
		if c.Rank != deduped[len(deduped)-1].Rank {
			deduped = append(deduped, c)
		}
	}

	return deduped
}

// strength is the base-13 polynomial over the five card ranks, most
// significant card first
func strength(five []*deck.Card) int {
	sum := 0
	for _, c := range five {
		sum = sum*13 + c.Rank
	}

	return sum
}
