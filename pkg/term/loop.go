package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/chazu/asciimarch/pkg/classify"
	"github.com/chazu/asciimarch/pkg/config"
	"github.com/chazu/asciimarch/pkg/render"
	"github.com/chazu/asciimarch/pkg/scene"
)

// ReloadKey asks the loop to reload its settings.
const ReloadKey = 'r'

// Loop runs the interactive render loop: a fixed scene-time step per tick,
// camera controls from key events, and grid refitting on resize.
type Loop struct {
	display  Display
	field    scene.Field
	palette  classify.Palette
	settings config.Settings
	reload   func() (config.Settings, error)
	logger   *log.Logger

	renderer *render.Renderer
	bindings Bindings
	camera   render.Camera
	time     float64
	frames   int
	cols     int
	rows     int
	fits     bool
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithReload sets the function called when ReloadKey is pressed.
func WithReload(fn func() (config.Settings, error)) LoopOption {
	return func(l *Loop) { l.reload = fn }
}

// WithLogger sets the loop's logger. The default discards output.
func WithLogger(logger *log.Logger) LoopOption {
	return func(l *Loop) { l.logger = logger }
}

// NewLoop returns a loop drawing f on d with settings s.
func NewLoop(d Display, f scene.Field, p classify.Palette, s config.Settings, opts ...LoopOption) *Loop {
	l := &Loop{
		display: d,
		field:   f,
		palette: p,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.apply(s)
	l.camera = s.Camera
	l.refit(d.Size())
	return l
}

// apply installs new settings. The camera is left where it is.
func (l *Loop) apply(s config.Settings) {
	l.settings = s
	l.bindings = NewBindings(s.Layout)
	l.renderer = render.New(l.field, l.palette, render.Options{
		MaxSteps: s.MaxSteps,
		MaxDepth: s.MaxDepth,
		Workers:  s.Workers,
	})
}

func (l *Loop) refit(w, h int) {
	l.cols, l.rows, l.fits = Fit(w, h)
	l.logger.Printf("terminal %dx%d, grid %dx%d", w, h, l.cols, l.rows)
}

// Camera returns the current camera.
func (l *Loop) Camera() render.Camera {
	return l.camera
}

// Time returns the current scene time.
func (l *Loop) Time() float64 {
	return l.time
}

// Frames returns the number of frames drawn so far.
func (l *Loop) Frames() int {
	return l.frames
}

// Run draws frames until a quit event, a closed event stream, or ctx is
// done. Only rendering and display failures are returned.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.settings.FrameTime())
	defer ticker.Stop()

	if err := l.draw(ctx); err != nil {
		return ignoreCancel(ctx, err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-l.display.Events():
			if !ok || ev.Kind == EventQuit {
				return nil
			}
			if l.handle(ev) {
				ticker.Reset(l.settings.FrameTime())
			}

		case <-ticker.C:
			l.time += l.settings.TimeStep
			if err := l.draw(ctx); err != nil {
				return ignoreCancel(ctx, err)
			}
		}
	}
}

// handle applies one input event. It reports whether the settings were
// replaced.
func (l *Loop) handle(ev Event) bool {
	switch ev.Kind {
	case EventResize:
		l.refit(ev.Width, ev.Height)
	case EventKey:
		if ev.Ch == ReloadKey && l.reload != nil {
			s, err := l.reload()
			if err != nil {
				l.logger.Printf("reload settings: %v", err)
				return false
			}
			l.apply(s)
			l.logger.Printf("settings reloaded")
			return true
		}
		if a, ok := l.bindings[ev.Ch]; ok {
			l.camera = Apply(l.camera, a, l.settings.MoveStep, l.settings.TurnStep)
		}
	}
	return false
}

func (l *Loop) draw(ctx context.Context) error {
	if !l.fits {
		return l.display.Message(fmt.Sprintf("terminal too small: need at least %dx%d", 2*MinRows, MinRows))
	}
	f, err := l.renderer.Render(ctx, l.camera, l.time, l.cols, l.rows)
	if err != nil {
		return err
	}
	if err := l.display.Draw(f, l.palette); err != nil {
		return err
	}
	l.frames++
	return nil
}

func ignoreCancel(ctx context.Context, err error) error {
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return nil
	}
	return err
}
