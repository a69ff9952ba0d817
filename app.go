package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chazu/asciimarch/pkg/classify"
	"github.com/chazu/asciimarch/pkg/config"
	"github.com/chazu/asciimarch/pkg/engine"
	"github.com/chazu/asciimarch/pkg/kernel"
	"github.com/chazu/asciimarch/pkg/kernel/sdfx"
	"github.com/chazu/asciimarch/pkg/render"
	"github.com/chazu/asciimarch/pkg/scene"
	"github.com/chazu/asciimarch/pkg/term"
)

// App ties the scene, the settings engine and the mesh kernel together.
// The CLI subcommands are thin wrappers around its methods.
type App struct {
	engine       *engine.Engine
	kernel       kernel.Kernel
	scene        *scene.Scene
	palette      classify.Palette
	settingsPath string
	logger       *log.Logger
}

// AppOptions configures NewApp.
type AppOptions struct {
	// SettingsPath is an optional settings script. Empty means defaults.
	SettingsPath string
	// MeshCells is the marching cubes resolution for Mesh and Export.
	MeshCells int
	// Logger receives progress messages; nil discards them.
	Logger *log.Logger
}

// NewApp creates an App drawing the default scene.
func NewApp(opts AppOptions) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &App{
		engine:       engine.NewEngine(),
		kernel:       sdfx.New(opts.MeshCells),
		scene:        scene.Default(),
		palette:      classify.DefaultPalette(),
		settingsPath: opts.SettingsPath,
		logger:       logger,
	}
}

// LoadSettings evaluates the settings script, or returns the defaults when
// there is none. Script errors are joined into the returned error.
func (a *App) LoadSettings() (config.Settings, error) {
	if a.settingsPath == "" {
		return config.Default(), nil
	}
	source, err := os.ReadFile(a.settingsPath)
	if err != nil {
		return config.Default(), fmt.Errorf("read settings: %w", err)
	}

	s, evalErrs, err := a.engine.Evaluate(string(source))
	if err != nil {
		return config.Default(), fmt.Errorf("settings %s: %w", a.settingsPath, err)
	}
	if len(evalErrs) > 0 {
		errs := make([]error, len(evalErrs))
		for i, e := range evalErrs {
			errs[i] = e
		}
		return config.Default(), fmt.Errorf("settings %s: %w", a.settingsPath, errors.Join(errs...))
	}
	a.logger.Printf("loaded settings from %s", a.settingsPath)
	return s, nil
}

// Renderer returns a frame renderer for the scene using s.
func (a *App) Renderer(s config.Settings) *render.Renderer {
	return render.New(a.scene, a.palette, render.Options{
		MaxSteps: s.MaxSteps,
		MaxDepth: s.MaxDepth,
		Workers:  s.Workers,
	})
}

// Snapshot renders a single cols×rows frame at scene time t.
func (a *App) Snapshot(ctx context.Context, s config.Settings, cols, rows int, t float64) (*render.Frame, error) {
	return a.Renderer(s).Render(ctx, s.Camera, t, cols, rows)
}

// Mesh tessellates the scene as it stands at time t.
func (a *App) Mesh(t float64) (*kernel.Mesh, error) {
	m, err := a.kernel.ToMesh(a.scene.Snapshot(t))
	if err != nil {
		return nil, fmt.Errorf("mesh at t=%g: %w", t, err)
	}
	m.Name = "scene"
	return m, nil
}

// Export writes the scene at time t to an STL file.
func (a *App) Export(path string, t float64) error {
	if err := a.kernel.WriteSTL(a.scene.Snapshot(t), path); err != nil {
		return fmt.Errorf("export at t=%g: %w", t, err)
	}
	a.logger.Printf("wrote %s (t=%g)", path, t)
	return nil
}

// Interactive takes over the terminal and runs the render loop until the
// user quits or ctx is done.
func (a *App) Interactive(ctx context.Context, s config.Settings) error {
	screen, err := term.Open()
	if err != nil {
		return err
	}
	defer func() {
		screen.Close()
		a.logger.Printf("terminal closed")
	}()
	a.logger.Printf("terminal opened")

	loop := term.NewLoop(screen, a.scene, a.palette, s,
		term.WithReload(a.LoadSettings),
		term.WithLogger(a.logger),
	)
	return loop.Run(ctx)
}
