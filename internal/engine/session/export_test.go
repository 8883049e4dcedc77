package session

import "time"

// SetMtime replaces the modification time reader of s.
func (s *Session) SetMtime(fn func(path string) (int64, error)) {
	s.mtime = fn
}

// SetClock replaces the clock of s.
func (s *Session) SetClock(fn func() time.Time) {
	s.now = fn
}
