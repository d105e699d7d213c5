package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-wordclock/internal/core"
)

// assertFaceMatches checks that exactly the expected phrase is lit: every
// cell is active iff some lit word covers it, with the matching color.
func assertFaceMatches(t *testing.T, e *Engine, screen *core.Screen, hour, minute int) {
	t.Helper()
	mi := AdjustMinutes(minute)
	hi := AdjustHours(hour, mi)

	lit, err := e.Layout().LitCells(hi, mi)
	require.NoError(t, err)
	color := e.palette.Current()

	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			cell := e.Layout().Grid.At(r, c)
			want := core.ColorBaseline
			if lit[cell] {
				want = color
			}
			assert.Equal(t, lit[cell], cell.Active(), "%02d:%02d cell (%d,%d) active", hour, minute, r, c)
			assert.Equal(t, want, screen.Get(r, c).Color, "%02d:%02d cell (%d,%d) color", hour, minute, r, c)
		}
	}

	words, err := e.Layout().LitWords(hi, mi)
	require.NoError(t, err)
	wantActive := make(map[*Word]bool)
	for _, w := range words {
		wantActive[w] = true
	}
	for _, w := range e.Layout().Words() {
		assert.Equal(t, wantActive[w], w.Active(), "%02d:%02d word %s", hour, minute, w.Name())
	}
}

func tickAt(t *testing.T, e *Engine, src *fakeSource, hour, minute int) {
	t.Helper()
	src.set(hour, minute)
	require.NoError(t, e.Tick(context.Background()))
}

func TestEngineStartupAtMidnight(t *testing.T) {
	e, screen, src, _ := newTestEngine()
	tickAt(t, e, src, 0, 0)

	assert.Equal(t, []string{"IT'S", "MIDNIGHT"}, activeNames(e.Layout()))
	assert.Equal(t, "IT'S MIDNIGHT", e.Status().Phrase)
	assertFaceMatches(t, e, screen, 0, 0)
}

func TestEngineStartupTwentyTil(t *testing.T) {
	e, screen, src, _ := newTestEngine()
	tickAt(t, e, src, 0, 42)

	assert.Equal(t, "IT'S TWENTY TIL ONE AM", e.Status().Phrase)
	assert.False(t, e.Layout().Word("OCLOCK").Active())
	assertFaceMatches(t, e, screen, 0, 42)
}

func TestEngineSameBucketIsNoop(t *testing.T) {
	e, screen, src, pacer := newTestEngine()
	tickAt(t, e, src, 1, 3)

	version := screen.Version()
	yields := pacer.yields
	tickAt(t, e, src, 1, 4)

	assert.Equal(t, version, screen.Version(), "no cell may change within a bucket")
	assert.Equal(t, yields, pacer.yields)
}

func TestEngineSharedMinuteEntryDoesNotFlicker(t *testing.T) {
	e, screen, src, pacer := newTestEngine()
	tickAt(t, e, src, 9, 22) // bucket 4, TWENTY PAST

	version := screen.Version()
	yields := pacer.yields
	tickAt(t, e, src, 9, 27) // bucket 5, same statement

	assert.Equal(t, version, screen.Version())
	assert.Equal(t, yields, pacer.yields)
	assert.Equal(t, "IT'S TWENTY PAST NINE AM", e.Status().Phrase)
}

func TestEngineItsStaysLitAtFivePast(t *testing.T) {
	surface := newRecordingSurface()
	src := &fakeSource{}
	e := NewEngine(surface, src, &instantPacer{})

	tickAt(t, e, src, 1, 0)
	surface.reset()
	tickAt(t, e, src, 1, 5)

	its := e.Layout().Word("ITS")
	assert.Equal(t, "IT'S FIVE PAST ONE AM", e.Status().Phrase)
	assert.False(t, surface.touched(its), "IT'S must not blink at :05")
	assert.True(t, its.Active())
	assert.True(t, surface.touched(e.Layout().Word("FIVE_MIN")))
	assert.True(t, surface.touched(e.Layout().Word("OCLOCK")))
}

func TestEngineMeridiemStaysLit(t *testing.T) {
	surface := newRecordingSurface()
	src := &fakeSource{}
	e := NewEngine(surface, src, &instantPacer{})

	tickAt(t, e, src, 13, 35)
	surface.reset()
	tickAt(t, e, src, 13, 40)

	assert.Equal(t, "IT'S TWENTY TIL TWO PM", e.Status().Phrase)
	assert.False(t, surface.touched(e.Layout().Word("PM")), "PM must not blink between afternoon hours")
	assert.True(t, surface.touched(e.Layout().Word("ONE")))
}

func TestEngineMorningIntoNoon(t *testing.T) {
	e, screen, src, _ := newTestEngine()

	tickAt(t, e, src, 11, 35)
	assert.Equal(t, "IT'S HALF PAST ELEVEN AM", e.Status().Phrase)

	tickAt(t, e, src, 11, 40)
	assert.Equal(t, "IT'S TWENTY TIL NOON", e.Status().Phrase)
	assert.False(t, e.Layout().Word("AM").Active())
	assertFaceMatches(t, e, screen, 11, 40)

	tickAt(t, e, src, 12, 0)
	assert.Equal(t, "IT'S NOON", e.Status().Phrase)
	assertFaceMatches(t, e, screen, 12, 0)
}

func TestEngineNoonIntoAfternoon(t *testing.T) {
	e, screen, src, _ := newTestEngine()

	tickAt(t, e, src, 12, 35)
	tickAt(t, e, src, 12, 40)
	assert.Equal(t, "IT'S TWENTY TIL ONE PM", e.Status().Phrase)
	assert.False(t, e.Layout().Word("NOON").Active())
	assertFaceMatches(t, e, screen, 12, 40)

	tickAt(t, e, src, 13, 0)
	assert.Equal(t, "IT'S ONE O'CLOCK PM", e.Status().Phrase)
	assertFaceMatches(t, e, screen, 13, 0)
}

func TestEngineMinuteRollsIntoHour(t *testing.T) {
	e, screen, src, _ := newTestEngine()

	tickAt(t, e, src, 12, 59)
	assert.Equal(t, "IT'S FIVE TIL ONE PM", e.Status().Phrase)

	tickAt(t, e, src, 13, 0)
	assert.Equal(t, "IT'S ONE O'CLOCK PM", e.Status().Phrase)
	assert.False(t, e.Layout().Word("TIL").Active())
	assertFaceMatches(t, e, screen, 13, 0)
}

func TestEngineFullDay(t *testing.T) {
	e, screen, src, _ := newTestEngine()

	for m := 0; m < 24*60; m += 5 {
		hour, minute := m/60, m%60
		tickAt(t, e, src, hour, minute)
		assertFaceMatches(t, e, screen, hour, minute)
	}
	// Wrap into the next day.
	tickAt(t, e, src, 0, 0)
	assertFaceMatches(t, e, screen, 0, 0)
}

func TestEngineJumpSweepsStaleWords(t *testing.T) {
	e, screen, src, _ := newTestEngine()

	tickAt(t, e, src, 1, 20)
	assert.Equal(t, "IT'S TWENTY PAST ONE AM", e.Status().Phrase)

	// Suspend/resume or a clock change skips many buckets at once.
	tickAt(t, e, src, 5, 50)
	assert.Equal(t, "IT'S TEN TIL SIX AM", e.Status().Phrase)
	assertFaceMatches(t, e, screen, 5, 50)

	tickAt(t, e, src, 19, 0)
	assertFaceMatches(t, e, screen, 19, 0)

	tickAt(t, e, src, 6, 45)
	assertFaceMatches(t, e, screen, 6, 45)

	active := 0
	for _, p := range e.Layout().Hours {
		if p.Active() {
			active++
		}
	}
	assert.LessOrEqual(t, active, 1, "at most one hour statement may be active")
}

func TestEngineClockUnavailable(t *testing.T) {
	e, screen, src, _ := newTestEngine()
	version := screen.Version()

	src.err = errSourceDown
	err := e.Tick(context.Background())
	require.ErrorIs(t, err, ErrClockUnavailable)

	src.err = nil
	src.set(25, 0)
	err = e.Tick(context.Background())
	require.ErrorIs(t, err, ErrClockUnavailable)

	assert.Equal(t, version, screen.Version())
	assert.Equal(t, 0, e.Status().Ticks)
	assert.ErrorIs(t, e.Status().LastErr, ErrClockUnavailable)
}

func TestEngineCancelledTickLeavesConsistentWords(t *testing.T) {
	screen := core.NewScreen(GridSize, GridSize)
	src := &fakeSource{}
	ctx, cancel := context.WithCancel(context.Background())
	e := NewEngine(screen, src, &cancelPacer{after: 10, cancel: cancel})

	err := e.Tick(ctx)
	require.ErrorIs(t, err, context.Canceled)

	for _, w := range e.Layout().Words() {
		want := core.ColorBaseline
		if w.Active() {
			want = core.ColorWhite
		}
		for _, c := range w.Cells() {
			assert.Equal(t, w.Active(), c.Active(), w.Name())
			assert.Equal(t, want, screen.Get(c.Row(), c.Col()).Color, w.Name())
		}
	}
	assert.True(t, e.Layout().Word("ITS").Active())
	assert.False(t, e.Layout().Word("MIDNIGHT").Active())
}

func TestEngineRecordsTransitions(t *testing.T) {
	rec := &fakeRecorder{}
	e, _, src, _ := newTestEngine(WithRecorder(rec))

	tickAt(t, e, src, 8, 0)
	tickAt(t, e, src, 8, 2)
	tickAt(t, e, src, 8, 5)

	assert.Equal(t, []string{"IT'S EIGHT O'CLOCK AM", "IT'S FIVE PAST EIGHT AM"}, rec.transitions)
}

func TestEngineHandleCyclesAndPersists(t *testing.T) {
	rec := &fakeRecorder{}
	e, screen, src, pacer := newTestEngine(WithRecorder(rec))
	tickAt(t, e, src, 0, 0)

	pacer.yields = 0
	require.NoError(t, e.Handle(context.Background(), RequestCycleColor))

	assert.Equal(t, 11, pacer.yields, "one yield per active cell")
	assert.Equal(t, 1, e.Status().Palette.ColorIndex)
	assert.Equal(t, []PaletteState{{ColorIndex: 1}}, rec.palettes)
	assertFaceMatches(t, e, screen, 0, 0)

	require.NoError(t, e.Handle(context.Background(), RequestCycleBrightness))
	assert.Equal(t, BrightnessDim, e.Status().Palette.Brightness)
	assertFaceMatches(t, e, screen, 0, 0)

	// New words fade in with the current color.
	tickAt(t, e, src, 0, 5)
	assertFaceMatches(t, e, screen, 0, 5)
	for _, c := range e.Layout().Word("PAST").Cells() {
		assert.Equal(t, core.Color(0x00AA00), c.Color())
	}
}

func TestEngineWithPalette(t *testing.T) {
	e, screen, src, _ := newTestEngine(WithPalette(PaletteState{ColorIndex: 2, Brightness: BrightnessDim}))
	tickAt(t, e, src, 3, 15)

	assert.Equal(t, "red", e.Status().Palette.ColorName())
	for _, c := range e.Layout().Word("QUARTER").Cells() {
		assert.Equal(t, core.Color(0xAA0000), screen.Get(c.Row(), c.Col()).Color)
	}
}

func TestEngineSubmitQueueFull(t *testing.T) {
	e, _, _, _ := newTestEngine()
	for i := 0; i < requestQueueSize; i++ {
		require.True(t, e.Submit(RequestCycleColor))
	}
	assert.False(t, e.Submit(RequestCycleColor))
	assert.Equal(t, requestQueueSize, e.Status().Pending)
}

func TestEngineRun(t *testing.T) {
	screen := core.NewScreen(GridSize, GridSize)
	src := NewFixedSource(7, 30)
	e := NewEngine(screen, src, SleepPacer{}, WithTiming(core.RuntimeConfig{
		TickInterval:    5 * time.Millisecond,
		FrameInterval:   time.Microsecond,
		RecolorInterval: time.Microsecond,
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	require.Eventually(t, func() bool {
		return e.Status().Ticks > 0
	}, 5*time.Second, 5*time.Millisecond)
	assert.Equal(t, "IT'S HALF PAST SEVEN AM", e.Status().Phrase)

	require.True(t, e.Submit(RequestCycleColor))
	require.Eventually(t, func() bool {
		return e.Status().Palette.ColorIndex == 1
	}, 5*time.Second, 5*time.Millisecond)

	src.Set(7, 40)
	require.Eventually(t, func() bool {
		return e.Status().Phrase == "IT'S TWENTY TIL EIGHT AM"
	}, 5*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestParseTimeOfDay(t *testing.T) {
	h, m, err := ParseTimeOfDay("00:42")
	require.NoError(t, err)
	assert.Equal(t, 0, h)
	assert.Equal(t, 42, m)

	for _, bad := range []string{"", "7", "24:00", "12:60", "ab:cd", "-1:10"} {
		_, _, err := ParseTimeOfDay(bad)
		assert.Error(t, err, bad)
	}
}
