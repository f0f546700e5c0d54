package engine

import "time"

// Advance steps a mock clock forward by d, stopping at every scheduler
// deadline on the way so tasks observe the time they were due. Returns the
// number of task runs
func Advance(clock *MockTimeProvider, s *Scheduler, d time.Duration) int {
	end := clock.Now().Add(d)
	ran := 0
	for {
		due, ok := s.NextDeadline()
		if !ok || due.After(end) {
			break
		}
		if due.After(clock.Now()) {
			clock.SetTime(due)
		}
		ran += s.RunDue()
	}
	clock.SetTime(end)
	return ran
}
