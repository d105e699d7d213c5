package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wordclock/internal/clock"
	"github.com/vovakirdan/tui-wordclock/internal/config"
	"github.com/vovakirdan/tui-wordclock/internal/platform/tui"
	"github.com/vovakirdan/tui-wordclock/internal/storage"
)

var flagAt string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the clock",
	Long: `Show the word clock in this terminal.

Controls:
  C/Right   - Next color
  B/Up      - Next brightness (full, dim, off)
  ?         - Toggle help
  Q/Ctrl+C  - Quit

The palette is remembered between runs and every phrase change is
recorded to the database, unless the config turns either off.

Examples:
  wordclock run
  wordclock run --at 11:35            # Freeze the clock at a time
  wordclock run --config ./slow.yaml  # Custom timing`,
	Args: cobra.NoArgs,
	Run:  runClock,
}

func init() {
	runCmd.Flags().StringVar(&flagAt, "at", "", "Show a fixed time (HH:MM) instead of the wall clock")
}

func runClock(_ *cobra.Command, _ []string) {
	cfg, cc := loadConfig()

	// Get terminal size
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	// The TUI owns stdout, so logs go to a file
	logger, logFile := openLogger()
	if logFile != nil {
		defer logFile.Close()
	}

	palette, err := cc.PaletteState()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := []clock.Option{clock.WithLogger(logger)}

	// Open storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open clock database: %v\n", err)
		// Continue without storage - the clock still works
		store = nil
	}
	if store != nil {
		defer store.Close()

		if cc.Storage.RememberPalette {
			saved, ok, loadErr := store.LoadPalette()
			if loadErr != nil {
				logger.Warn("could not load palette", "error", loadErr)
			}
			if ok {
				palette = saved
			}
		}
		if cc.Storage.RememberPalette || cc.Storage.RecordHistory {
			opts = append(opts, clock.WithRecorder(storeRecorder{
				store:   store,
				palette: cc.Storage.RememberPalette,
				history: cc.Storage.RecordHistory,
			}))
		}
	}
	opts = append(opts, clock.WithPalette(palette))

	var source clock.Source = clock.SystemSource{Location: cfg.Location}
	if flagAt != "" {
		hour, minute, parseErr := clock.ParseTimeOfDay(flagAt)
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", parseErr)
			os.Exit(1)
		}
		source = clock.NewFixedSource(hour, minute)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, screen := tui.NewClock(cfg, source, opts...)
	logger.Info("clock started", "palette", palette.ColorName(), "brightness", palette.Brightness)

	if err := tui.Run(ctx, engine, screen, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running clock: %v\n", err)
		os.Exit(1)
	}
}

// openLogger returns a logger writing to ~/.wordclock/wordclock.log.
// Logging is discarded when the file cannot be opened.
func openLogger() (*log.Logger, *os.File) {
	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}

	var w io.Writer = io.Discard
	var f *os.File
	if dir := config.UserDir(); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			file, openErr := os.OpenFile(filepath.Join(dir, "wordclock.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if openErr == nil {
				w, f = file, file
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordclock",
		Level:           level,
	})
	return logger, f
}

// storeRecorder persists only what the storage config asks for.
type storeRecorder struct {
	store   *storage.Store
	palette bool
	history bool
}

func (r storeRecorder) RecordTransition(phrase string, hourIdx, minuteIdx int) error {
	if !r.history {
		return nil
	}
	return r.store.RecordTransition(phrase, hourIdx, minuteIdx)
}

func (r storeRecorder) SavePalette(colorIndex, brightness int) error {
	if !r.palette {
		return nil
	}
	return r.store.SavePalette(colorIndex, brightness)
}

var _ clock.Recorder = storeRecorder{}
