package service

import (
	"sync"
	"time"

	"venturelens.dev/reportengine/internal/constant"
)

// SchedulerState is the render scheduler's coarse state.
type SchedulerState int32

const (
	SchedIdle SchedulerState = iota
	SchedScheduled
	SchedRendering
)

func (s SchedulerState) String() string {
	switch s {
	case SchedIdle:
		return "idle"
	case SchedScheduled:
		return "scheduled"
	case SchedRendering:
		return "rendering"
	default:
		return "unknown"
	}
}

// RenderFunc executes one render pass. A returned delay > 0 means the pass
// aborted on a not-yet-ready canvas and wants another attempt after that
// delay.
type RenderFunc func() (retry time.Duration)

// RenderScheduler serializes render passes for one view. Requests arriving
// while a pass is in flight collapse into a single pending-rerender flag (the
// most recent trigger wins, nothing is queued); requests while idle or
// scheduled re-arm a single timer. A monotonic attempt counter increments
// once per executed pass; once it exceeds the cap no further pass is
// scheduled regardless of future requests.
type RenderScheduler struct {
	mu       sync.Mutex
	state    SchedulerState
	timer    *time.Timer
	gen      uint64
	pending  bool
	attempts int
	cap      int
	render   RenderFunc
	closed   bool
}

func NewRenderScheduler(render RenderFunc) *RenderScheduler {
	return &RenderScheduler{
		render: render,
		cap:    constant.RenderAttemptCap,
	}
}

// Request asks for a render pass after delay. Safe to call from any
// goroutine; the scheduler alone decides whether to act.
func (s *RenderScheduler) Request(delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.attempts >= s.cap {
		return
	}

	if s.state == SchedRendering {
		s.pending = true
		return
	}

	s.arm(delay)
}

// arm replaces the single timer. Callers hold mu. Bumping the generation
// orphans any timer armed earlier, including one whose callback has already
// fired and is blocked on the lock; fire discards such callbacks, so a
// replaced timer can never run a pass alongside its replacement.
func (s *RenderScheduler) arm(delay time.Duration) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	s.state = SchedScheduled
	s.timer = time.AfterFunc(delay, func() { s.fire(gen) })
}

func (s *RenderScheduler) fire(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.state = SchedRendering
	s.attempts++
	render := s.render
	s.mu.Unlock()

	retry := render()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		s.state = SchedIdle
		return
	}
	if s.pending {
		s.pending = false
		if s.attempts < s.cap {
			s.arm(0)
			return
		}
	} else if retry > 0 && s.attempts < s.cap {
		s.arm(retry)
		return
	}
	s.state = SchedIdle
}

// Attempts returns the number of executed render passes so far.
func (s *RenderScheduler) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

// State returns the current scheduler state.
func (s *RenderScheduler) State() SchedulerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close cancels any pending timer and refuses all further requests.
// Idempotent; guaranteed to be called on every view exit path.
func (s *RenderScheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
}
