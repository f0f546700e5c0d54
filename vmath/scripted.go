package vmath

// ScriptedSource replays a fixed sequence of draws, cycling when exhausted
// Used by tests to force the outcome of weighted decisions
type ScriptedSource struct {
	Values []float64
	next   int
}

func NewScriptedSource(values ...float64) *ScriptedSource {
	if len(values) == 0 {
		values = []float64{0}
	}
	return &ScriptedSource{Values: values}
}

func (s *ScriptedSource) Float64() float64 {
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

func (s *ScriptedSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(s.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// Draws returns how many values have been consumed
func (s *ScriptedSource) Draws() int { return s.next }
