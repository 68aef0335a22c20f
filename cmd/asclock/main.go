// Package main is the asclock terminal clock, stopwatch and countdown
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/asclock/audio"
	"github.com/lixenwraith/asclock/core"
	"github.com/lixenwraith/asclock/engine"
	"github.com/lixenwraith/asclock/glyph"
	"github.com/lixenwraith/asclock/terminal"
)

const version = "0.1.0"

var (
	farewellStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// options holds the raw flag values
type options struct {
	stopwatch bool
	minutes   string
	scale     int
	spacing   int
	debug     bool
}

// runFunc executes one validated configuration
type runFunc func(ctx context.Context, cfg engine.Config, debug bool, stdout io.Writer) error

func newRootCmd(run runFunc) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "asclock",
		Short: "Large ASCII-art clock, stopwatch and countdown",
		Long: `asclock shows the local time in large ASCII-art digits, refreshed once per second.
Use -c for a stopwatch or -t MIN for a countdown that alerts when it reaches zero.
Press Ctrl+C (or Esc/q on a terminal) to stop.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(opts, cmd.Flags().Changed("temporizador"))
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, opts.debug, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.stopwatch, "cronometro", "c", false, "run a stopwatch from 00:00:00")
	flags.StringVarP(&opts.minutes, "temporizador", "t", "", "count down from `MIN` minutes")
	flags.IntVarP(&opts.scale, "scale", "s", engine.DefaultScale, fmt.Sprintf("digit scale factor (1-%d)", glyph.MaxScale))
	flags.IntVar(&opts.spacing, "spacing", engine.DefaultSpacing, "blank columns between digits, before scaling (>= 0)")
	flags.BoolVar(&opts.debug, "debug", false, "write debug logs to "+logDir+"/"+logFileName)
	cmd.MarkFlagsMutuallyExclusive("cronometro", "temporizador")

	return cmd
}

// buildConfig maps flags to an engine configuration. Scale is bounded here so an
// oversized value never reaches glyph allocation; spacing is validated by the engine.
func buildConfig(opts options, countdown bool) (engine.Config, error) {
	mode := engine.ModeClock
	switch {
	case opts.stopwatch:
		mode = engine.ModeStopwatch
	case countdown:
		mode = engine.ModeCountdown
	}

	cfg := engine.DefaultConfig(mode)
	if err := glyph.ValidateScale(opts.scale); err != nil {
		return cfg, err
	}
	cfg.Scale = opts.scale
	cfg.Spacing = opts.spacing

	if mode == engine.ModeCountdown {
		minutes, err := strconv.ParseInt(opts.minutes, 10, 64)
		if err != nil {
			return cfg, core.Newf(core.CodeInvalidDuration, "minutes must be an integer, got %q", opts.minutes).
				WithMeta("value", opts.minutes)
		}
		if minutes < 0 {
			return cfg, core.Newf(core.CodeInvalidDuration, "minutes must be >= 0, got %d", minutes).
				WithMeta("value", opts.minutes)
		}
		cfg.Minutes = minutes
	}

	return cfg, nil
}

// display is what a run needs from a terminal backend
type display interface {
	engine.Display
	engine.Alerter
	Fini()
}

func openDisplay(stdout *os.File, cancel func(), logger *slog.Logger) (display, bool, error) {
	if terminal.IsTerminal(stdout) {
		screen, err := terminal.NewScreen(cancel, core.HandleCrash)
		if err == nil {
			return screen, false, nil
		}
		logger.Warn("screen unavailable, falling back to stream", "error", err)
	}

	stream := terminal.NewStream(stdout)
	if err := stream.Init(); err != nil {
		return nil, true, core.Wrap(err, core.CodeIO, "initialise stream display")
	}
	return stream, true, nil
}

func runClock(parent context.Context, cfg engine.Config, debug bool, stdout io.Writer) error {
	logFile := setupLogging(debug)
	if logFile != nil {
		defer logFile.Close()
	}
	logger := slog.Default()

	if err := terminal.EnableVirtualTerminal(); err != nil {
		logger.Warn("virtual terminal processing unavailable", "error", err)
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	disp, streamed, err := openDisplay(os.Stdout, cancel, logger)
	if err != nil {
		return err
	}
	core.SetCrashFinisher(disp.Fini)
	defer core.SetCrashFinisher(nil)
	core.SetCrashReset(func() { terminal.EmergencyReset(os.Stdout) })
	defer core.SetCrashReset(nil)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	alerters := []engine.Alerter{disp}
	tone, err := audio.NewToneAlerter(audio.LoadToneConfig())
	if err != nil {
		logger.Warn("audio alert unavailable, using terminal bell", "error", err)
	} else {
		defer tone.Close()
		alerters = append(alerters, tone)
	}

	eng, err := engine.New(cfg, engine.NewTimeProvider(), disp, engine.MultiAlerter(alerters...),
		engine.WithLogger(logger))
	if err != nil {
		disp.Fini()
		return err
	}

	logger.Info("starting", "mode", cfg.Mode.String(), "minutes", cfg.Minutes, "scale", cfg.Scale, "spacing", cfg.Spacing)
	reason, runErr := eng.Run(ctx)
	disp.Fini()

	if runErr != nil {
		return runErr
	}

	// The stream display already printed the expiry notice below the last frame
	if reason == engine.ReasonExpired && streamed {
		return nil
	}
	if msg := engine.Farewell(cfg.Mode, reason); msg != "" {
		fmt.Fprintln(stdout, farewellStyle.Render(msg))
	}
	return nil
}

// reportError prints err for the operator after the terminal is restored
func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("Error: "+err.Error()))

	var coreErr *core.Error
	if core.IsConfiguration(err) || !errors.As(err, &coreErr) {
		fmt.Fprintln(w, hintStyle.Render("Run 'asclock --help' for usage."))
	}
}

func main() {
	if err := newRootCmd(runClock).Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}
