// Package config holds the tunable settings of the renderer and the
// interactive frontend, with defaults and validation.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/chazu/asciimarch/pkg/render"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Keyboard layouts understood by the frontend.
const (
	LayoutAZERTY = "azerty"
	LayoutQWERTY = "qwerty"
)

// Settings configures marching, timing and controls.
type Settings struct {
	Camera render.Camera // initial pose

	MaxSteps int     // march evaluations per pixel
	MaxDepth float64 // depth mapped to the farthest glyph

	FPS      int     // frame rate cap
	TimeStep float64 // scene time added per frame

	Layout   string
	MoveStep float64 // camera translation per key press
	TurnStep float64 // camera direction change per key press

	Workers int // concurrent row renderers
}

// Default returns the stock settings.
func Default() Settings {
	return Settings{
		Camera: render.Camera{
			Position:  v3.Vec{X: 0, Y: 0, Z: -5},
			Direction: v3.Vec{X: 0, Y: 0, Z: 1},
		},
		MaxSteps: 50,
		MaxDepth: 10,
		FPS:      60,
		TimeStep: 0.02,
		Layout:   LayoutAZERTY,
		MoveStep: 0.1,
		TurnStep: 0.1,
		Workers:  runtime.GOMAXPROCS(0),
	}
}

// FrameTime is the minimum wall time of one frame.
func (s Settings) FrameTime() time.Duration {
	if s.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(s.FPS)
}

// ValidationError describes one invalid setting.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
}

// Validate reports every invalid setting, joined into one error.
func (s Settings) Validate() error {
	var errs []error
	bad := func(code, field, format string, args ...any) {
		errs = append(errs, ValidationError{
			Code:    code,
			Field:   field,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if s.MaxSteps <= 0 {
		bad("NON_POSITIVE", "max-steps", "must be > 0, got %d", s.MaxSteps)
	}
	if !(s.MaxDepth > 0) {
		bad("NON_POSITIVE", "max-depth", "must be > 0, got %v", s.MaxDepth)
	}
	if s.FPS <= 0 {
		bad("NON_POSITIVE", "fps", "must be > 0, got %d", s.FPS)
	}
	if s.TimeStep < 0 {
		bad("NEGATIVE", "time-step", "must be >= 0, got %v", s.TimeStep)
	}
	if s.Layout != LayoutAZERTY && s.Layout != LayoutQWERTY {
		bad("UNKNOWN_LAYOUT", "layout", "must be %q or %q, got %q", LayoutAZERTY, LayoutQWERTY, s.Layout)
	}
	if s.MoveStep < 0 {
		bad("NEGATIVE", "move-step", "must be >= 0, got %v", s.MoveStep)
	}
	if s.TurnStep < 0 {
		bad("NEGATIVE", "turn-step", "must be >= 0, got %v", s.TurnStep)
	}
	if s.Workers <= 0 {
		bad("NON_POSITIVE", "workers", "must be > 0, got %d", s.Workers)
	}
	if s.Camera.Direction.Length() == 0 {
		bad("ZERO_VECTOR", "direction", "camera direction must be non-zero")
	}

	return errors.Join(errs...)
}
