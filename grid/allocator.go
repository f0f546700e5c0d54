package grid

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/tilechase/lang"
	"github.com/lixenwraith/tilechase/vmath"
)

// ErrNoLabel means every label conflicts with the neighbourhood: the alphabet
// is too small for the shuffle radius
var ErrNoLabel = errors.New("no unambiguous label available")

const (
	DefaultShuffleRadius = 2
	DefaultShuffleBase   = 4.0
)

// Allocator assigns labels to vacated cells, keeping every label within the
// shuffle radius free of substring overlap and favouring rare labels
type Allocator struct {
	grid   *Grid
	lang   lang.Language
	pop    *Population
	rng    vmath.Source
	seqs   map[string]string
	radius int
	base   float64
}

func NewAllocator(g *Grid, l lang.Language, pop *Population, rng vmath.Source) *Allocator {
	a := &Allocator{
		grid:   g,
		lang:   l,
		pop:    pop,
		rng:    rng,
		radius: DefaultShuffleRadius,
		base:   DefaultShuffleBase,
	}
	a.cacheSequences()
	return a
}

// SetLanguage swaps the alphabet; populations must be reset by the caller
func (a *Allocator) SetLanguage(l lang.Language) {
	a.lang = l
	a.cacheSequences()
}

func (a *Allocator) cacheSequences() {
	a.seqs = make(map[string]string)
	for _, l := range a.lang.Labels() {
		seq, err := a.lang.Sequence(l)
		if err != nil {
			panic(fmt.Sprintf("language %s lists %q without a sequence", a.lang.Name(), l))
		}
		a.seqs[l] = seq
	}
}

// Radius is the neighbourhood checked for conflicts
func (a *Allocator) Radius() int { return a.radius }

// Candidates returns the labels that may be placed at p without conflict
func (a *Allocator) Candidates(p vmath.Pos) []string {
	neighbours := a.grid.Adjacent(p, a.radius)
	var out []string
	for _, label := range a.pop.Labels() {
		seq := a.seqs[label]
		ok := true
		for _, nb := range neighbours {
			if nb.Pos == p || !nb.Labelled() {
				continue
			}
			if Conflicts(seq, nb.Seq) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, label)
		}
	}
	return out
}

// Assign draws a label for the cell at p, writes it, and counts it
func (a *Allocator) Assign(p vmath.Pos) (string, error) {
	candidates := a.Candidates(p)
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w at %v (alphabet %d, radius %d)", ErrNoLabel, p, len(a.seqs), a.radius)
	}

	lowest := a.pop.Lowest()
	choices := make([]vmath.Choice[string], len(candidates))
	for i, label := range candidates {
		choices[i] = vmath.Choice[string]{
			Item:   label,
			Weight: math.Pow(a.base, float64(lowest-a.pop.Count(label))),
		}
	}
	label, err := vmath.WeightedChoice(a.rng, choices)
	if err != nil {
		return "", fmt.Errorf("shuffle at %v: %w", p, err)
	}

	a.pop.Inc(label)
	c := a.grid.At(p)
	c.Label = label
	c.Seq = a.seqs[label]
	c.Glyph = ""
	return label, nil
}

// Corrupt blocks the cell at p: its label is uncounted and it can no longer be typed
func (a *Allocator) Corrupt(p vmath.Pos) {
	c := a.grid.At(p)
	if c.Labelled() {
		a.pop.Dec(c.Label)
	}
	c.Label = ""
	c.Glyph = ""
	c.Seq = CorruptSeq
	c.Category = Corrupt
}

// Conflicts reports whether either sequence contains the other. Input is
// matched by suffix, so containment anywhere would leave two tiles matching
// the same keystrokes
func Conflicts(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
