package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		l, err := Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, l.Name())
	}

	_, err := Lookup("klingon")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestEnglishSequencesAreIdentity(t *testing.T) {
	l := English()
	labels := l.Labels()
	require.Len(t, labels, 26)
	for _, lab := range labels {
		seq, err := l.Sequence(lab)
		require.NoError(t, err)
		assert.Equal(t, lab, seq)
	}
	_, err := l.Sequence(":>")
	assert.ErrorIs(t, err, ErrUnknownLabel)
	assert.False(t, l.Has(""))
}

func TestKanaTables(t *testing.T) {
	tests := []struct {
		lang  Language
		label string
		seq   string
	}{
		{Hiragana(), "あ", "a"},
		{Hiragana(), "し", "shi"},
		{Hiragana(), "つ", "tsu"},
		{Hiragana(), "ぢ", "ji"},
		{Hiragana(), "ん", "n"},
		{Katakana(), "フ", "fu"},
		{Katakana(), "ヲ", "wo"},
		{Katakana(), "ポ", "po"},
	}
	for _, tt := range tests {
		seq, err := tt.lang.Sequence(tt.label)
		require.NoError(t, err, tt.label)
		assert.Equal(t, tt.seq, seq, tt.label)
	}
	assert.Len(t, Hiragana().Labels(), 71)
	assert.Len(t, Katakana().Labels(), 71)
}

func TestLabelsReturnsCopy(t *testing.T) {
	l := English()
	a := l.Labels()
	a[0] = "zz"
	assert.Equal(t, "a", l.Labels()[0])
}
