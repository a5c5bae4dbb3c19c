package core

import (
	"sync"
	"time"
)

// Session tracks one continuous viewing interval of a module. Starting a
// session records the visit immediately and arms a one-shot engagement
// timer; a session that ends before the dwell delay never counts as active.
//
// End is idempotent: however many teardown signals fire (navigation, window
// close, component unmount), elapsed time is recorded exactly once.
type Session struct {
	moduleID string
	rec      *Recorder

	mu       sync.Mutex
	start    time.Time
	hiddenAt time.Time

	activeTimer *time.Timer
	endOnce     sync.Once
}

// StartSession begins tracking a viewing session for the given module.
// Returns nil for module ids that are not tracked (empty or on the skip
// list handled by the caller).
func (r *Recorder) StartSession(moduleID string) *Session {
	if moduleID == "" {
		return nil
	}
	r.RecordVisit(moduleID)

	s := &Session{
		moduleID: moduleID,
		rec:      r,
		start:    r.now(),
	}
	s.activeTimer = time.AfterFunc(r.activeDelay, func() {
		r.RecordActive(moduleID)
	})
	return s
}

// Hide marks the session as backgrounded. Hidden time is excluded from the
// elapsed clock so a tab left open overnight does not count as ten hours of
// engagement. Calling Hide twice without Show is harmless.
func (s *Session) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hiddenAt.IsZero() {
		s.hiddenAt = s.rec.now()
	}
}

// Show resumes the session clock after Hide, shifting the start forward by
// the hidden duration.
func (s *Session) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hiddenAt.IsZero() {
		return
	}
	s.start = s.start.Add(s.rec.now().Sub(s.hiddenAt))
	s.hiddenAt = time.Time{}
}

// End finishes the session: the engagement timer is cancelled if it has not
// fired, and the elapsed wall-clock time is recorded once. Subsequent calls
// are no-ops.
func (s *Session) End() {
	s.endOnce.Do(func() {
		// Stop is safe after the timer fired; the active event then stands.
		s.activeTimer.Stop()

		s.mu.Lock()
		start := s.start
		if !s.hiddenAt.IsZero() {
			// Session ended while hidden; the hidden tail does not count.
			start = start.Add(s.rec.now().Sub(s.hiddenAt))
			s.hiddenAt = time.Time{}
		}
		elapsed := s.rec.now().Sub(start)
		s.mu.Unlock()

		s.rec.RecordTimeSpent(s.moduleID, elapsed)
	})
}
