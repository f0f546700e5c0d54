package vmath

import "math"

// Pos is an integer grid coordinate
// Values are passed by copy; every operation returns a new Pos
type Pos struct {
	X, Y int
}

// P is a convenience constructor for Pos
func P(x, y int) Pos { return Pos{X: x, Y: y} }

func (p Pos) Add(o Pos) Pos { return Pos{p.X + o.X, p.Y + o.Y} }
func (p Pos) Sub(o Pos) Pos { return Pos{p.X - o.X, p.Y - o.Y} }

// Mul scales both components, rounding each half away from zero
func (p Pos) Mul(scalar float64) Pos {
	return Pos{
		X: int(math.Round(scalar * float64(p.X))),
		Y: int(math.Round(scalar * float64(p.Y))),
	}
}

func (p Pos) Abs() Pos {
	return Pos{absInt(p.X), absInt(p.Y)}
}

func (p Pos) Equal(o Pos) bool { return p.X == o.X && p.Y == o.Y }

// Norm returns the Euclidean length
func (p Pos) Norm() float64 {
	return math.Sqrt(float64(p.X*p.X + p.Y*p.Y))
}

// SquareNorm returns the Chebyshev length: one king move covers distance 1
func (p Pos) SquareNorm() int {
	a := p.Abs()
	return max(a.X, a.Y)
}

// LinearNorm returns the Manhattan length
func (p Pos) LinearNorm() int {
	a := p.Abs()
	return a.X + a.Y
}

// InBounds reports whether both components lie in [0, bound)
func (p Pos) InBounds(bound int) bool {
	return p.X >= 0 && p.X < bound && p.Y >= 0 && p.Y < bound
}

// Trunc clamps each component to [-radius, radius]
func (p Pos) Trunc(radius int) Pos {
	return Pos{clampInt(p.X, -radius, radius), clampInt(p.Y, -radius, radius)}
}

// Corners returns the four corners of a width-sized square inset by padding,
// ordered top-left, top-right, bottom-left, bottom-right
func Corners(width, padding int) []Pos {
	lo := padding
	hi := width - padding - 1
	return []Pos{{lo, lo}, {hi, lo}, {lo, hi}, {hi, hi}}
}

// RandPos returns a position with both components uniform in [0, bound)
func RandPos(rng Source, bound int) Pos {
	return Pos{rng.IntN(bound), rng.IntN(bound)}
}

// RandSigned returns a position with both components in (-bound, bound),
// truncated toward zero
func RandSigned(rng Source, bound int) Pos {
	x := (rng.Float64() - 0.5) * 2 * float64(bound)
	y := (rng.Float64() - 0.5) * 2 * float64(bound)
	return Pos{int(x), int(y)}.Trunc(bound - 1)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
