package clock

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Source reads the wall clock.
type Source interface {
	Now() (hour, minute int, err error)
}

// SystemSource reads the local wall clock in a fixed zone.
type SystemSource struct {
	Location *time.Location
}

// Now implements Source.
func (s SystemSource) Now() (int, int, error) {
	t := time.Now()
	if s.Location != nil {
		t = t.In(s.Location)
	}
	return t.Hour(), t.Minute(), nil
}

// FixedSource always reports the same time. Used for demos and tests.
type FixedSource struct {
	mu     sync.RWMutex
	hour   int
	minute int
}

// NewFixedSource creates a source frozen at hour:minute.
func NewFixedSource(hour, minute int) *FixedSource {
	return &FixedSource{hour: hour, minute: minute}
}

// Now implements Source.
func (s *FixedSource) Now() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hour, s.minute, nil
}

// Set moves the source to hour:minute.
func (s *FixedSource) Set(hour, minute int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hour, s.minute = hour, minute
}

// ParseTimeOfDay parses "HH:MM" in 24-hour form.
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, 0, fmt.Errorf("clock: invalid time %q: want HH:MM", s)
	}
	hour, err = strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("clock: invalid hour in %q", s)
	}
	minute, err = strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("clock: invalid minute in %q", s)
	}
	return hour, minute, nil
}
