// Package clock implements the word clock engine: the letter grid, the
// word fade state machine, the hour and minute index tables, the update
// cycle and the palette controller.
//
// All state is owned by a single goroutine (Engine.Run). Fades block that
// goroutine frame by frame through a Pacer; operator requests are queued and
// handled only between ticks, so a recolor never races a fade.
package clock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordclock/internal/core"
)

var (
	// ErrIndexOutOfRange signals an Hours/Minutes lookup outside the table,
	// which the index arithmetic should make impossible.
	ErrIndexOutOfRange = errors.New("clock: table index out of range")

	// ErrClockUnavailable signals a failed or out-of-range wall clock read.
	ErrClockUnavailable = errors.New("clock: time source unavailable")
)

// Request is an operator action queued for the engine goroutine.
type Request int

const (
	RequestCycleColor Request = iota
	RequestCycleBrightness
)

// String returns a human-readable name for the request.
func (r Request) String() string {
	switch r {
	case RequestCycleColor:
		return "cycle-color"
	case RequestCycleBrightness:
		return "cycle-brightness"
	default:
		return "unknown"
	}
}

// Recorder persists phrase transitions and palette changes.
type Recorder interface {
	RecordTransition(phrase string, hourIdx, minuteIdx int) error
	SavePalette(colorIndex, brightness int) error
}

// Status is a snapshot of the engine for display.
type Status struct {
	Palette  PaletteState
	Phrase   string
	Busy     bool  // A fade or recolor is in flight
	Pending  int   // Queued operator requests
	Ticks    int   // Completed update cycles
	LastErr  error // Error of the last tick, if any
	LastTick time.Time
}

const requestQueueSize = 8

// Engine runs the update cycle and palette controller for one clock face.
type Engine struct {
	layout   *Layout
	anim     *Animator
	palette  *PaletteController
	source   Source
	recorder Recorder
	logger   *log.Logger

	tickInterval    time.Duration
	frameInterval   time.Duration
	recolorInterval time.Duration
	initialPalette  PaletteState

	requests chan Request

	mu     sync.RWMutex
	status Status
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithRecorder sets where transitions and palette changes are persisted.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// WithPalette sets the starting palette selection.
func WithPalette(s PaletteState) Option {
	return func(e *Engine) { e.initialPalette = s }
}

// WithTiming sets the tick, fade-frame and recolor intervals.
// Zero values keep the defaults.
func WithTiming(cfg core.RuntimeConfig) Option {
	return func(e *Engine) {
		if cfg.TickInterval > 0 {
			e.tickInterval = cfg.TickInterval
		}
		if cfg.FrameInterval > 0 {
			e.frameInterval = cfg.FrameInterval
		}
		if cfg.RecolorInterval > 0 {
			e.recolorInterval = cfg.RecolorInterval
		}
	}
}

// NewEngine builds the clock face on surface and wires it to source and pacer.
func NewEngine(surface Surface, source Source, pacer Pacer, opts ...Option) *Engine {
	def := core.DefaultConfig()
	e := &Engine{
		layout:          NewLayout(surface),
		source:          source,
		logger:          log.New(io.Discard),
		tickInterval:    def.TickInterval,
		frameInterval:   def.FrameInterval,
		recolorInterval: def.RecolorInterval,
		requests:        make(chan Request, requestQueueSize),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.anim = NewAnimator(pacer, e.frameInterval)
	e.palette = NewPaletteController(e.layout.Grid, e.initialPalette, pacer, e.recolorInterval)
	e.status.Palette = e.palette.State()
	return e
}

// Layout returns the clock face.
func (e *Engine) Layout() *Layout {
	return e.layout
}

// Status returns a snapshot safe to read from any goroutine.
func (e *Engine) Status() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s := e.status
	s.Pending = len(e.requests)
	return s
}

// Submit queues an operator request. Returns false if the queue is full.
func (e *Engine) Submit(r Request) bool {
	select {
	case e.requests <- r:
		return true
	default:
		return false
	}
}

// Run executes ticks until ctx is cancelled. The next tick is scheduled
// tickInterval after the previous one completes. Queued requests are
// handled while waiting.
func (e *Engine) Run(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case req := <-e.requests:
			if err := e.Handle(ctx, req); err != nil && ctx.Err() == nil {
				e.logger.Error("request failed", "request", req, "error", err)
			}

		case <-timer.C:
			err := e.Tick(ctx)
			switch {
			case ctx.Err() != nil:
				return nil
			case errors.Is(err, ErrClockUnavailable):
				e.logger.Warn("tick skipped", "error", err)
			case err != nil:
				e.logger.Error("tick failed", "error", err)
			}
			timer.Reset(e.tickInterval)
		}
	}
}

// Handle applies one operator request synchronously.
func (e *Engine) Handle(ctx context.Context, req Request) error {
	e.setBusy(true)
	defer e.setBusy(false)

	var err error
	switch req {
	case RequestCycleColor:
		err = e.palette.CycleColor(ctx)
	case RequestCycleBrightness:
		err = e.palette.CycleBrightness(ctx)
	default:
		return fmt.Errorf("clock: unknown request %d", req)
	}

	state := e.palette.State()
	e.mu.Lock()
	e.status.Palette = state
	e.mu.Unlock()

	e.logger.Debug("palette changed", "color", state.ColorName(), "brightness", state.Brightness)
	if e.recorder != nil {
		if recErr := e.recorder.SavePalette(state.ColorIndex, int(state.Brightness)); recErr != nil {
			e.logger.Warn("could not save palette", "error", recErr)
		}
	}
	return err
}

// Tick runs one update cycle: retire the previous minute entry, light the
// current one, then the same for hours. Entries are only faded when the
// bucket actually changed, so repeated ticks within a bucket are no-ops.
func (e *Engine) Tick(ctx context.Context) error {
	err := e.tick(ctx)

	e.mu.Lock()
	e.status.LastErr = err
	e.status.LastTick = time.Now()
	if err == nil {
		e.status.Ticks++
	}
	e.mu.Unlock()

	return err
}

func (e *Engine) tick(ctx context.Context) error {
	hour, minute, err := e.source.Now()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrClockUnavailable, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("%w: %02d:%02d out of range", ErrClockUnavailable, hour, minute)
	}

	mi := AdjustMinutes(minute)
	hi := AdjustHours(hour, mi)

	curMinute, err := e.layout.Minute(mi)
	if err != nil {
		return err
	}
	prevMinute, err := e.layout.Minute(LoopSub(MinuteSlots, mi))
	if err != nil {
		return err
	}
	curHour, err := e.layout.Hour(hi)
	if err != nil {
		return err
	}
	prevHour, err := e.layout.Hour(LoopSub(HourSlots, hi))
	if err != nil {
		return err
	}

	e.setBusy(true)
	defer e.setBusy(false)

	color := e.palette.Current()

	if err := e.transition(ctx, e.layout.Minutes[:], e.layout.minuteWords, prevMinute, curMinute, color, mi, mi); err != nil {
		return err
	}
	if err := e.transition(ctx, e.layout.Hours[:], e.layout.hourWords, prevHour, curHour, color, hi, mi); err != nil {
		return err
	}

	phrase, err := e.layout.Phrase(hi, mi)
	if err != nil {
		return err
	}
	e.publishPhrase(phrase, hi, mi)
	return nil
}

// transition moves one table from prev to cur. idx is the entry index being
// entered and mi the minute bucket.
func (e *Engine) transition(ctx context.Context, table []Phrase, vocabulary []*Word, prev, cur Phrase, color core.Color, idx, mi int) error {
	if prev != cur && prev.Active() && !relit(prev.Words(), cur.Lit(mi)) {
		if err := prev.FadeOut(ctx, e.anim, color, idx); err != nil {
			return err
		}
	}
	if err := e.sweep(ctx, table, vocabulary, cur, color, mi); err != nil {
		return err
	}
	return cur.FadeIn(ctx, e.anim, color, mi)
}

// relit reports whether every word in words is shown again by lit. The bare
// IT'S entry is retired this way at :05, since FIVE PAST keeps IT'S lit.
func relit(words, lit []*Word) bool {
	for _, w := range words {
		if !slices.Contains(lit, w) {
			return false
		}
	}
	return true
}

// sweep restores the single-active-entry invariant after a jump of more than
// one bucket (suspend, clock change): stale entry flags are dropped and any
// lit word the current entry will not show is faded out. In normal operation
// there is nothing to do.
func (e *Engine) sweep(ctx context.Context, table []Phrase, vocabulary []*Word, cur Phrase, color core.Color, mi int) error {
	for _, p := range table {
		if p != cur && p.Active() {
			p.release()
		}
	}

	keep := make(map[*Word]bool)
	for _, w := range cur.Lit(mi) {
		keep[w] = true
	}
	for _, w := range vocabulary {
		if w.Active() && !keep[w] {
			e.logger.Debug("fading stray word", "word", w.Name())
			if err := w.FadeOut(ctx, e.anim, color); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Engine) publishPhrase(phrase string, hi, mi int) {
	e.mu.Lock()
	changed := e.status.Phrase != phrase
	e.status.Phrase = phrase
	e.mu.Unlock()

	if !changed {
		return
	}
	e.logger.Debug("phrase changed", "phrase", phrase, "hour", hi, "bucket", mi)
	if e.recorder != nil {
		if err := e.recorder.RecordTransition(phrase, hi, mi); err != nil {
			e.logger.Warn("could not record transition", "error", err)
		}
	}
}

func (e *Engine) setBusy(busy bool) {
	e.mu.Lock()
	e.status.Busy = busy
	e.mu.Unlock()
}
