package clock

import (
	"context"
	"time"
)

// Pacer is the only suspension point of the engine: it is called after every
// fade frame and every recolored cell so the display can show the partial state.
type Pacer interface {
	Yield(ctx context.Context, d time.Duration) error
}

// SleepPacer refreshes the display and then waits for the delay.
type SleepPacer struct {
	// Refresh is called before waiting. May be nil when the display polls.
	Refresh func()
}

// Yield implements Pacer.
func (p SleepPacer) Yield(ctx context.Context, d time.Duration) error {
	if p.Refresh != nil {
		p.Refresh()
	}
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Animator paces fade frames.
type Animator struct {
	pacer Pacer
	delay time.Duration
}

// NewAnimator creates an animator yielding to pacer for delay after each frame.
func NewAnimator(pacer Pacer, delay time.Duration) *Animator {
	return &Animator{pacer: pacer, delay: delay}
}

func (a *Animator) frame(ctx context.Context) error {
	return a.pacer.Yield(ctx, a.delay)
}
