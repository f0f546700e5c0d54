// Package trail records where a player has been and lets them retrace it
//
// The history is flat, oldest first. A backtrack streak walks back through the
// entries that existed when the streak began, while every tile vacated during
// the streak is appended, so a forward move after backtracking keeps the whole
// retraced path as ordinary trail.
package trail

import (
	"math"

	"github.com/lixenwraith/tilechase/vmath"
)

// Trail is one player's bounded movement history
type Trail struct {
	hist      []vmath.Pos
	anchor    int // index of the newest pre-streak entry; may go negative after trims
	streak    int // backtracks taken in the current streak
	retracing bool
	limit     int
}

func New() *Trail {
	return &Trail{}
}

// Clear empties the trail and ends any streak; the limit is kept
func (t *Trail) Clear() {
	t.hist = t.hist[:0]
	t.endStreak()
}

// PushNew records a tile left by a forward move
func (t *Trail) PushNew(p vmath.Pos) {
	t.hist = append(t.hist, p)
	t.endStreak()
}

// Peek returns where the next backtrack would lead without recording anything
func (t *Trail) Peek() (vmath.Pos, bool) {
	if t.retracing {
		i := t.anchor - t.streak
		if i < 0 {
			return vmath.Pos{}, false
		}
		return t.hist[i], true
	}
	if len(t.hist) == 0 {
		return vmath.Pos{}, false
	}
	return t.hist[len(t.hist)-1], true
}

// Backtrack returns the tile to step back onto and records from, the tile
// being vacated. Returns false when the history is exhausted
func (t *Trail) Backtrack(from vmath.Pos) (vmath.Pos, bool) {
	dest, ok := t.Peek()
	if !ok {
		return vmath.Pos{}, false
	}
	if !t.retracing {
		t.retracing = true
		t.anchor = len(t.hist) - 1
		t.streak = 0
	}
	t.streak++
	t.hist = append(t.hist, from)
	return dest, true
}

// InStreak reports whether the last operation was a backtrack
func (t *Trail) InStreak() bool { return t.retracing }

func (t *Trail) SetLimit(n int) { t.limit = max(0, n) }
func (t *Trail) Limit() int     { return t.limit }
func (t *Trail) Len() int       { return len(t.hist) }

// Trim evicts the oldest entries until the trail fits its limit. Only
// positions with no surviving duplicate are returned, so callers can clear
// their markers unconditionally
func (t *Trail) Trim() []vmath.Pos {
	n := len(t.hist) - t.limit
	if n <= 0 {
		return nil
	}

	evicted := make([]vmath.Pos, n)
	copy(evicted, t.hist[:n])
	t.hist = append(t.hist[:0], t.hist[n:]...)

	if t.retracing {
		// a retrace whose remaining entries were evicted simply runs dry
		t.anchor -= n
	}

	out := evicted[:0]
	seen := make(map[vmath.Pos]bool, n)
	for _, p := range evicted {
		if seen[p] || t.Contains(p) {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

func (t *Trail) Contains(p vmath.Pos) bool {
	for _, h := range t.hist {
		if h == p {
			return true
		}
	}
	return false
}

// Positions returns a copy of the history, oldest first
func (t *Trail) Positions() []vmath.Pos {
	out := make([]vmath.Pos, len(t.hist))
	copy(out, t.hist)
	return out
}

func (t *Trail) endStreak() {
	t.retracing = false
	t.anchor = 0
	t.streak = 0
}

// Limit computes the allowed trail length for a score and miss count:
// max(0, round((score - penalty*misses)^exponent))
func Limit(score, misses int, penalty, exponent float64) int {
	net := float64(score) - penalty*float64(misses)
	if net <= 0 {
		return 0
	}
	return int(math.Round(math.Pow(net, exponent)))
}
