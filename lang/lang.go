// Package lang supplies the label alphabets and their typed keystroke sequences
package lang

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownLabel    = errors.New("label not in language")
	ErrUnknownLanguage = errors.New("unknown language")
)

// Language maps grid labels to the keystrokes that select them
type Language interface {
	Name() string
	// Labels returns a fresh copy of the alphabet in a stable order
	Labels() []string
	// Sequence returns the lower-case keystrokes typed to select label
	Sequence(label string) (string, error)
	Has(label string) bool
}

// table is a Language backed by an ordered label list and a sequence map
type table struct {
	name   string
	labels []string
	seqs   map[string]string
}

func newTable(name string, labels, seqs []string) *table {
	if len(labels) != len(seqs) {
		panic(fmt.Sprintf("lang %s: %d labels for %d sequences", name, len(labels), len(seqs)))
	}
	t := &table{
		name:   name,
		labels: labels,
		seqs:   make(map[string]string, len(labels)),
	}
	for i, l := range labels {
		t.seqs[l] = seqs[i]
	}
	return t
}

func (t *table) Name() string { return t.name }

func (t *table) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)
	return out
}

func (t *table) Sequence(label string) (string, error) {
	seq, ok := t.seqs[label]
	if !ok {
		return "", fmt.Errorf("%w: %q in %s", ErrUnknownLabel, label, t.name)
	}
	return seq, nil
}

func (t *table) Has(label string) bool {
	_, ok := t.seqs[label]
	return ok
}

var registry = map[string]func() Language{
	"eng":   English,
	"jpn_h": Hiragana,
	"jpn_k": Katakana,
}

// Lookup returns the built-in language registered under name
func Lookup(name string) (Language, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
	}
	return ctor(), nil
}

// Names lists the registered language names, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
