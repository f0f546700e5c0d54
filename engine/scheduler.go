package engine

import (
	"container/heap"
	"time"

	"github.com/lixenwraith/tilechase/parameter"
)

// Task is one invocation of a self-rescheduling job
// Returning again=true queues the next run after next, under the same Handle
type Task func() (next time.Duration, again bool)

// Handle identifies a scheduled task across its reschedules; zero is never issued
type Handle uint64

// Scheduler is a cooperative timer queue driven from a single goroutine
// Nothing runs until RunDue is called; the caller owns the wait between deadlines
type Scheduler struct {
	clock  TimeProvider
	queue  taskQueue
	byID   map[Handle]*scheduled
	lastID Handle
	seq    uint64
}

type scheduled struct {
	id        Handle
	due       time.Time
	seq       uint64
	task      Task
	index     int
	cancelled bool
}

func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{
		clock: clock,
		byID:  make(map[Handle]*scheduled),
	}
}

// Clock returns the time source deadlines are measured against
func (s *Scheduler) Clock() TimeProvider { return s.clock }

// Schedule queues task to run once delay has elapsed
func (s *Scheduler) Schedule(delay time.Duration, task Task) Handle {
	s.lastID++
	e := &scheduled{id: s.lastID, task: task}
	s.byID[e.id] = e
	s.push(e, delay)
	return e.id
}

// Cancel drops the task behind h. A task cancelled while it runs is not
// rescheduled. Returns false when h is not pending
func (s *Scheduler) Cancel(h Handle) bool {
	e, ok := s.byID[h]
	if !ok {
		return false
	}
	delete(s.byID, h)
	e.cancelled = true
	if e.index >= 0 {
		heap.Remove(&s.queue, e.index)
	}
	return true
}

// Pending reports whether h will run again
func (s *Scheduler) Pending(h Handle) bool {
	_, ok := s.byID[h]
	return ok
}

// Len is the number of queued tasks
func (s *Scheduler) Len() int { return s.queue.Len() }

// NextDeadline returns when the earliest queued task falls due
func (s *Scheduler) NextDeadline() (time.Time, bool) {
	if s.queue.Len() == 0 {
		return time.Time{}, false
	}
	return s.queue[0].due, true
}

// RunDue runs every task due at the current clock reading, earliest first,
// and returns how many ran. Tasks queued during the pass wait for the next one
func (s *Scheduler) RunDue() int {
	now := s.clock.Now()
	ran := 0
	for s.queue.Len() > 0 && !s.queue[0].due.After(now) {
		e := heap.Pop(&s.queue).(*scheduled)
		next, again := e.task()
		ran++

		if again && !e.cancelled {
			s.push(e, next)
		} else if !e.cancelled {
			delete(s.byID, e.id)
		}
	}
	return ran
}

// CancelAll drops every queued task
func (s *Scheduler) CancelAll() {
	for h := range s.byID {
		s.Cancel(h)
	}
}

func (s *Scheduler) push(e *scheduled, delay time.Duration) {
	if delay < parameter.MinTaskDelay {
		delay = parameter.MinTaskDelay
	}
	s.seq++
	e.seq = s.seq
	e.due = s.clock.Now().Add(delay)
	heap.Push(&s.queue, e)
}

// taskQueue orders by due time, then by scheduling order
type taskQueue []*scheduled

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	e := x.(*scheduled)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}
