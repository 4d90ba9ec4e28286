// Package race holds the state machine and metrics for a single typing race.
package race

import (
	"context"
	"time"

	"github.com/verte-zerg/typeracer/internal/quote"
)

// Session tracks one typing race: the target passage, everything typed so
// far, the timing boundaries, and the keystroke count. It is driven by a
// single caller and does no I/O outside of New and Reset.
type Session struct {
	provider quote.Provider

	target []rune
	author string
	typed  []rune

	startedAt  time.Time
	endedAt    time.Time
	keystrokes int

	now func() time.Time
}

// New fetches a passage from the provider and returns a fresh session.
// A fetch failure is returned as-is and no session is created.
func New(ctx context.Context, provider quote.Provider) (*Session, error) {
	s := &Session{provider: provider, now: time.Now}
	if err := s.Reset(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset fetches a new passage and clears all race state. On fetch failure
// the session is left exactly as it was.
func (s *Session) Reset(ctx context.Context) error {
	p, err := s.provider.Fetch(ctx)
	if err != nil {
		return err
	}
	if p.Content == "" {
		return &quote.FetchError{Reason: "provider returned an empty passage"}
	}
	s.target = []rune(p.Content)
	s.author = p.Author
	s.typed = nil
	s.startedAt = time.Time{}
	s.endedAt = time.Time{}
	s.keystrokes = 0
	return nil
}

// TypeChar records one typed character. The first call starts the clock;
// the call that fills the passage stops it. Input after the race is
// finished is ignored and not counted.
func (s *Session) TypeChar(r rune) {
	if s.Finished() {
		return
	}
	if s.startedAt.IsZero() {
		s.startedAt = s.now()
	}
	s.typed = append(s.typed, r)
	s.keystrokes++
	if len(s.typed) == len(s.target) {
		s.endedAt = s.now()
	}
}

// Backspace removes the last typed character. It is a no-op on an empty
// buffer and once the race is finished; the keystroke count is never
// decremented.
func (s *Session) Backspace() {
	if len(s.typed) == 0 || s.Finished() {
		return
	}
	s.typed = s.typed[:len(s.typed)-1]
}

// Started reports whether the clock is running.
func (s *Session) Started() bool {
	return !s.startedAt.IsZero()
}

// Finished reports whether the whole passage has been typed.
func (s *Session) Finished() bool {
	return len(s.typed) >= len(s.target)
}

// Elapsed returns the race duration so far, or the final duration once
// finished. Zero before the first keystroke.
func (s *Session) Elapsed() time.Duration {
	if s.startedAt.IsZero() {
		return 0
	}
	end := s.endedAt
	if end.IsZero() {
		end = s.now()
	}
	return end.Sub(s.startedAt)
}

// Target returns the passage being typed.
func (s *Session) Target() []rune {
	return s.target
}

// Author returns the passage attribution.
func (s *Session) Author() string {
	return s.author
}

// Typed returns everything typed so far.
func (s *Session) Typed() []rune {
	return s.typed
}

// Keystrokes returns the number of characters ever typed this race,
// including ones later removed with backspace.
func (s *Session) Keystrokes() int {
	return s.keystrokes
}
