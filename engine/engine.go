package engine

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/lixenwraith/asclock/core"
	"github.com/lixenwraith/asclock/render"
)

const (
	DefaultScale         = 1
	DefaultSpacing       = 1
	DefaultAlertCount    = 5
	DefaultAlertInterval = time.Second

	tickInterval = time.Second
	clockLayout  = "15:04:05"
)

// Config selects the mode and layout for one run
type Config struct {
	Mode    Mode
	Minutes int64 // countdown duration, ignored by other modes

	Scale   int
	Spacing int
	Palette render.Palette

	AlertCount    int
	AlertInterval time.Duration
}

// DefaultConfig returns the defaults for mode
func DefaultConfig(mode Mode) Config {
	return Config{
		Mode:          mode,
		Scale:         DefaultScale,
		Spacing:       DefaultSpacing,
		Palette:       render.DefaultPalette,
		AlertCount:    DefaultAlertCount,
		AlertInterval: DefaultAlertInterval,
	}
}

// Tick describes one completed redraw, reported before the loop sleeps
type Tick struct {
	Index   int64         // iteration number, from 0
	Elapsed int64         // whole seconds since start the target is anchored on
	Text    string        // displayed time string
	Target  time.Time     // next wake-up instant
	Wait    time.Duration // sleep requested to reach Target
}

// Option customises an Engine
type Option func(*Engine)

// WithLogger routes engine logs to l
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithTickHook registers fn to observe every tick
func WithTickHook(fn func(Tick)) Option {
	return func(e *Engine) { e.onTick = fn }
}

// Engine drives the drift-corrected redraw loop for one mode.
// It is single-use and not safe for concurrent use.
type Engine struct {
	cfg      Config
	clock    TimeProvider
	display  Display
	alerter  Alerter
	renderer *render.Renderer
	log      *slog.Logger
	onTick   func(Tick)

	state State
	ran   bool
	start time.Time
	total int64 // countdown seconds
}

// New validates cfg and builds an engine. All configuration errors surface here.
func New(cfg Config, clock TimeProvider, display Display, alerter Alerter, opts ...Option) (*Engine, error) {
	if !cfg.Mode.valid() {
		return nil, core.Newf(core.CodeConfiguration, "unknown mode %d", cfg.Mode)
	}
	if display == nil {
		return nil, core.New(core.CodeConfiguration, "display is required")
	}

	var total int64
	if cfg.Mode == ModeCountdown {
		if cfg.Minutes < 0 || cfg.Minutes > math.MaxInt64/60 {
			return nil, core.Newf(core.CodeInvalidDuration, "countdown minutes must be a non-negative integer, got %d", cfg.Minutes).
				WithMeta("minutes", cfg.Minutes)
		}
		total = cfg.Minutes * 60
	}
	if cfg.AlertCount < 0 {
		return nil, core.Newf(core.CodeConfiguration, "alert count must be >= 0, got %d", cfg.AlertCount)
	}
	if cfg.AlertInterval < 0 {
		return nil, core.Newf(core.CodeConfiguration, "alert interval must be >= 0, got %s", cfg.AlertInterval)
	}

	renderer, err := render.NewRenderer(cfg.Scale, cfg.Spacing, cfg.Palette)
	if err != nil {
		return nil, err
	}

	if clock == nil {
		clock = NewTimeProvider()
	}
	if alerter == nil {
		alerter = noAlert
	}

	e := &Engine{
		cfg:      cfg,
		clock:    clock,
		display:  display,
		alerter:  alerter,
		renderer: renderer,
		log:      slog.New(slog.DiscardHandler),
		state:    StateRunning,
		total:    total,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With("mode", cfg.Mode.String())
	return e, nil
}

// Mode returns the configured mode
func (e *Engine) Mode() Mode { return e.cfg.Mode }

// State returns the current lifecycle state
func (e *Engine) State() State { return e.state }

// Run draws one frame per second until ctx is cancelled or a countdown expires.
// Cancellation and expiry return a nil error; any display failure is fatal.
func (e *Engine) Run(ctx context.Context) (Reason, error) {
	if e.ran {
		return ReasonFailed, core.New(core.CodeConfiguration, "engine already ran")
	}
	e.ran = true

	e.start = e.clock.Now()
	remaining := e.total
	e.log.Debug("loop started", "countdown_seconds", e.total)

	for index := int64(0); ; index++ {
		if ctx.Err() != nil {
			return e.stop(ReasonInterrupted), nil
		}

		elapsed, text := e.sample(remaining)

		frame, err := e.renderer.Render(text)
		if err != nil {
			return e.fail(err)
		}
		if err := e.draw(frame); err != nil {
			return e.fail(err)
		}

		if e.cfg.Mode == ModeCountdown && remaining <= 0 {
			return e.expire(ctx)
		}

		target := e.start.Add(time.Duration(elapsed+1) * tickInterval)
		wait := max(0, target.Sub(e.clock.Now()))
		if e.onTick != nil {
			e.onTick(Tick{Index: index, Elapsed: elapsed, Text: text, Target: target, Wait: wait})
		}

		if err := e.clock.Sleep(ctx, wait); err != nil {
			if ctx.Err() != nil {
				return e.stop(ReasonInterrupted), nil
			}
			return e.fail(err)
		}

		if e.cfg.Mode == ModeCountdown {
			remaining--
		}
	}
}

// sample returns the tick anchor and display string for the current mode
func (e *Engine) sample(remaining int64) (int64, string) {
	switch e.cfg.Mode {
	case ModeCountdown:
		return e.total - remaining, FormatHMS(remaining)
	case ModeStopwatch:
		elapsed := e.elapsedSeconds()
		return elapsed, FormatHMS(elapsed)
	default:
		return e.elapsedSeconds(), e.clock.Wall().Format(clockLayout)
	}
}

func (e *Engine) elapsedSeconds() int64 {
	d := e.clock.Now().Sub(e.start)
	if d < 0 {
		return 0
	}
	return int64(d / time.Second)
}

func (e *Engine) draw(frame *render.Frame) error {
	if err := e.display.Clear(); err != nil {
		return core.Wrap(err, core.CodeIO, "clear display")
	}
	if err := e.display.Draw(frame); err != nil {
		return core.Wrap(err, core.CodeIO, "draw frame").WithMeta("text", frame.Text())
	}
	return nil
}

// expire runs the alert sequence after the zero frame, anchored to its start
func (e *Engine) expire(ctx context.Context) (Reason, error) {
	e.setState(StateExpired)

	if err := e.display.Notice(Farewell(ModeCountdown, ReasonExpired)); err != nil {
		return e.fail(core.Wrap(err, core.CodeIO, "write expiry notice"))
	}

	alertStart := e.clock.Now()
	for i := 0; i < e.cfg.AlertCount; i++ {
		if ctx.Err() != nil {
			return e.stop(ReasonInterrupted), nil
		}
		if err := e.alerter.Alert(); err != nil {
			return e.fail(core.Wrap(err, core.CodeIO, "emit alert").WithMeta("alert", i+1))
		}

		target := alertStart.Add(time.Duration(i+1) * e.cfg.AlertInterval)
		if err := e.clock.Sleep(ctx, max(0, target.Sub(e.clock.Now()))); err != nil {
			if ctx.Err() != nil {
				return e.stop(ReasonInterrupted), nil
			}
			return e.fail(err)
		}
	}

	return e.stop(ReasonExpired), nil
}

func (e *Engine) setState(s State) {
	if e.state == s {
		return
	}
	e.log.Debug("state transition", "from", e.state.String(), "to", s.String())
	e.state = s
}

func (e *Engine) stop(reason Reason) Reason {
	e.setState(StateStopped)
	e.log.Info("loop stopped", "reason", reason.String(), "elapsed", e.clock.Now().Sub(e.start).String())
	return reason
}

func (e *Engine) fail(err error) (Reason, error) {
	e.setState(StateStopped)
	e.log.Error("loop aborted", "error", err)
	return ReasonFailed, err
}
