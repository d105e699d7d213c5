package clock

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vovakirdan/tui-wordclock/internal/core"
)

// instantPacer never waits and counts yields.
type instantPacer struct {
	yields int
}

func (p *instantPacer) Yield(ctx context.Context, _ time.Duration) error {
	p.yields++
	return ctx.Err()
}

type pacerFunc func(ctx context.Context) error

func (f pacerFunc) Yield(ctx context.Context, _ time.Duration) error { return f(ctx) }

// cancelPacer cancels the context on the n-th yield.
type cancelPacer struct {
	after  int
	cancel context.CancelFunc
	yields int
}

func (p *cancelPacer) Yield(ctx context.Context, _ time.Duration) error {
	p.yields++
	if p.yields == p.after {
		p.cancel()
	}
	return ctx.Err()
}

// recordingSurface keeps every color written per cell.
type recordingSurface struct {
	writes map[[2]int][]core.Color
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{writes: make(map[[2]int][]core.Color)}
}

func (s *recordingSurface) SetCellColor(row, col int, c core.Color) {
	key := [2]int{row, col}
	s.writes[key] = append(s.writes[key], c)
}

func (s *recordingSurface) reset() {
	s.writes = make(map[[2]int][]core.Color)
}

func (s *recordingSurface) touched(w *Word) bool {
	for _, c := range w.Cells() {
		if len(s.writes[[2]int{c.Row(), c.Col()}]) > 0 {
			return true
		}
	}
	return false
}

// fakeSource is a settable wall clock that can also fail.
type fakeSource struct {
	hour, minute int
	err          error
}

func (s *fakeSource) Now() (int, int, error) {
	return s.hour, s.minute, s.err
}

func (s *fakeSource) set(hour, minute int) {
	s.hour, s.minute = hour, minute
}

var errSourceDown = errors.New("rtc not responding")

// fakeRecorder captures what the engine persists.
type fakeRecorder struct {
	mu          sync.Mutex
	transitions []string
	palettes    []PaletteState
	err         error
}

func (r *fakeRecorder) RecordTransition(phrase string, _, _ int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions = append(r.transitions, phrase)
	return r.err
}

func (r *fakeRecorder) SavePalette(colorIndex, brightness int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.palettes = append(r.palettes, PaletteState{ColorIndex: colorIndex, Brightness: Brightness(brightness)})
	return r.err
}

// newTestEngine builds an engine on a real screen with an instant pacer.
func newTestEngine(opts ...Option) (*Engine, *core.Screen, *fakeSource, *instantPacer) {
	screen := core.NewScreen(GridSize, GridSize)
	src := &fakeSource{}
	pacer := &instantPacer{}
	return NewEngine(screen, src, pacer, opts...), screen, src, pacer
}

// activeNames returns the names of active words, in layout order.
func activeNames(l *Layout) []string {
	var out []string
	for _, w := range l.Words() {
		if w.Active() {
			out = append(out, w.Name())
		}
	}
	return out
}
