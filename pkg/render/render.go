// Package render draws a scene into a character grid. Each cell marches
// one ray and reports a glyph for its depth and a palette index for its
// colour.
package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/chazu/asciimarch/pkg/classify"
	"github.com/chazu/asciimarch/pkg/march"
	"github.com/chazu/asciimarch/pkg/scene"
	"golang.org/x/sync/errgroup"
)

// Cell is one rendered character.
type Cell struct {
	Glyph rune
	Color int // palette index
	Depth float64
	Hit   bool
}

// Frame is a rendered grid, stored row-major.
type Frame struct {
	Cols, Rows int
	Time       float64
	Cells      []Cell
}

// Row returns the cells of one row.
func (f *Frame) Row(row int) []Cell {
	return f.Cells[row*f.Cols : (row+1)*f.Cols]
}

// At returns the cell at col, row.
func (f *Frame) At(col, row int) Cell {
	return f.Cells[row*f.Cols+col]
}

// String returns the glyphs of the frame, one line per row.
func (f *Frame) String() string {
	var b strings.Builder
	b.Grow((f.Cols + 1) * f.Rows)
	for row := 0; row < f.Rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, c := range f.Row(row) {
			b.WriteRune(c.Glyph)
		}
	}
	return b.String()
}

// Options tunes a Renderer.
type Options struct {
	MaxSteps int
	MaxDepth float64
	Workers  int // rows rendered at once; <= 0 means one
}

// Renderer draws frames of a field. It holds no per-frame state and may be
// used from several goroutines.
type Renderer struct {
	field   scene.Field
	palette classify.Palette
	opts    Options
}

// New returns a Renderer for field f drawing with palette p.
func New(f scene.Field, p classify.Palette, opts Options) *Renderer {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &Renderer{field: f, palette: p, opts: opts}
}

// Pixel renders a single cell.
func (r *Renderer) Pixel(c Camera, t float64, col, row, cols, rows int) Cell {
	res := march.March(r.field, PixelRay(c, col, row, cols, rows), t, r.opts.MaxSteps)
	return Cell{
		Glyph: classify.Glyph(res.Depth, r.opts.MaxDepth),
		Color: r.palette.Nearest(res.Color),
		Depth: res.Depth,
		Hit:   res.Hit,
	}
}

// Render draws a cols×rows frame at scene time t. Rows are rendered
// concurrently; each goroutine writes only its own row. Cancelling ctx
// stops the frame and returns the context error.
func (r *Renderer) Render(ctx context.Context, c Camera, t float64, cols, rows int) (*Frame, error) {
	if cols < 0 || rows < 0 {
		return nil, fmt.Errorf("render: invalid grid %dx%d", cols, rows)
	}
	f := &Frame{
		Cols:  cols,
		Rows:  rows,
		Time:  t,
		Cells: make([]Cell, cols*rows),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)
	for row := 0; row < rows; row++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cells := f.Row(row)
			for col := range cells {
				cells[col] = r.Pixel(c, t, col, row, cols, rows)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("render: frame at t=%g: %w", t, err)
	}
	// Rows skipped after a cancellation leave no error behind.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("render: frame at t=%g: %w", t, err)
	}
	return f, nil
}
