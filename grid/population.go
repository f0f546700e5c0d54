package grid

import (
	"fmt"
	"math"
)

// Population counts how many cells currently carry each label
type Population struct {
	labels []string
	counts map[string]int
	total  int
}

func NewPopulation(labels []string) *Population {
	p := &Population{}
	p.Reset(labels)
	return p
}

// Reset zeroes every count and replaces the tracked label set
func (p *Population) Reset(labels []string) {
	p.labels = append(p.labels[:0], labels...)
	p.counts = make(map[string]int, len(labels))
	for _, l := range labels {
		p.counts[l] = 0
	}
	p.total = 0
}

func (p *Population) Inc(label string) {
	p.counts[label]++
	p.total++
}

// Dec panics when the count would go negative: it means a label was removed
// from a cell that was never counted
func (p *Population) Dec(label string) {
	n, ok := p.counts[label]
	if !ok || n == 0 {
		panic(fmt.Sprintf("population of %q would go negative", label))
	}
	p.counts[label] = n - 1
	p.total--
}

func (p *Population) Count(label string) int { return p.counts[label] }

// Total is the number of labelled cells
func (p *Population) Total() int { return p.total }

// Lowest returns the smallest count over all tracked labels
func (p *Population) Lowest() int {
	lowest := math.MaxInt
	for _, l := range p.labels {
		lowest = min(lowest, p.counts[l])
	}
	if lowest == math.MaxInt {
		return 0
	}
	return lowest
}

// Labels returns the tracked labels in their stable order
func (p *Population) Labels() []string { return p.labels }
