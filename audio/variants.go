package audio

import "github.com/lixenwraith/tilechase/vmath"

// variantDeck hands out effect variants so the same one rarely plays twice
// in a row: the front variant plays, then it and the back variant are
// reinserted together at a random depth
type variantDeck struct {
	order []int
	rng   vmath.Source
}

func newVariantDeck(n int, rng vmath.Source) *variantDeck {
	d := &variantDeck{order: make([]int, n), rng: rng}
	for i := range d.order {
		d.order[i] = i
	}
	return d
}

// next returns the variant to play and reshuffles the deck
func (d *variantDeck) next() int {
	n := len(d.order)
	if n < 2 {
		return 0
	}
	first, last := d.order[0], d.order[n-1]
	rest := d.order[1 : n-1]

	// insertion point in [0, len(rest)], never the front when rest is non-empty
	at := 0
	if len(rest) > 0 {
		at = 1 + d.rng.IntN(len(rest))
	}

	order := make([]int, 0, n)
	order = append(order, rest[:at]...)
	order = append(order, last, first)
	order = append(order, rest[at:]...)
	d.order = order
	return first
}
