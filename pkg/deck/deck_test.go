package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-engine/internal/rng"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	d := New(rng.NewSeeded(0))
	a.Equal(52, d.CardsLeft())

	seen := make(map[string]bool)
	for d.CardsLeft() > 0 {
		card, err := d.Draw()
		a.NoError(err)
		a.False(seen[card.String()])
		seen[card.String()] = true
	}

	a.Equal(52, len(seen))

	card, err := d.Draw()
	a.Nil(card)
	a.Equal(ErrEndOfDeck, err)
}

func TestDeck_shuffleIsDeterministicPerSeed(t *testing.T) {
	a := assert.New(t)

	d1 := New(rng.NewSeeded(7))
	d2 := New(rng.NewSeeded(7))
	d3 := New(rng.NewSeeded(8))

	same := true
	differs := false
	for i := 0; i < 52; i++ {
		c1, c2, c3 := d1.MustDraw(), d2.MustDraw(), d3.MustDraw()
		same = same && c1.Equal(c2)
		differs = differs || !c1.Equal(c3)
	}

	a.True(same)
	a.True(differs)
}

func TestDeck_CanDraw(t *testing.T) {
	a := assert.New(t)

	d := New(rng.NewSeeded(0))
	a.True(d.CanDraw(52))
	a.False(d.CanDraw(53))

	d.MustDraw()
	a.True(d.CanDraw(51))
	a.False(d.CanDraw(52))
}
