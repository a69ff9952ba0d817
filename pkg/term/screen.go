package term

import (
	"fmt"
	"sync"

	"github.com/chazu/asciimarch/pkg/classify"
	"github.com/chazu/asciimarch/pkg/render"
	"github.com/nsf/termbox-go"
)

// EventKind classifies input events.
type EventKind int

const (
	EventKey EventKind = iota
	EventResize
	EventQuit
)

// Event is a frontend input event.
type Event struct {
	Kind          EventKind
	Ch            rune
	Width, Height int
}

// Display is what the loop draws on and reads input from.
type Display interface {
	Size() (w, h int)
	Draw(f *render.Frame, p classify.Palette) error
	Message(text string) error
	Events() <-chan Event
}

// Compile-time interface check.
var _ Display = (*Screen)(nil)

// backend is the slice of termbox the event pump needs.
type backend struct {
	pollEvent func() termbox.Event
	interrupt func()
	close     func()
}

var termboxBackend = backend{
	pollEvent: termbox.PollEvent,
	interrupt: termbox.Interrupt,
	close:     termbox.Close,
}

// Screen is a termbox-backed Display.
type Screen struct {
	backend   backend
	events    chan Event
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

// Open takes over the terminal. Close must be called to restore it.
func Open() (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("term: init: %w", err)
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.HideCursor()
	return newScreen(termboxBackend), nil
}

func newScreen(b backend) *Screen {
	s := &Screen{
		backend: b,
		events:  make(chan Event),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go s.poll()
	return s
}

// poll forwards events until it receives the interrupt sent by Close.
// After Close starts, events are dropped but polling goes on, since the
// interrupt is only delivered to a caller blocked in pollEvent.
func (s *Screen) poll() {
	defer close(s.stopped)
	defer close(s.events)
	for {
		ev := s.backend.pollEvent()
		if ev.Type == termbox.EventInterrupt {
			return
		}
		out, ok := convertEvent(ev)
		if !ok {
			continue
		}
		select {
		case s.events <- out:
		case <-s.done:
		}
	}
}

// convertEvent maps a termbox event to an Event. ok is false for events
// the loop does not care about.
func convertEvent(ev termbox.Event) (Event, bool) {
	switch ev.Type {
	case termbox.EventError:
		return Event{Kind: EventQuit}, true
	case termbox.EventResize:
		return Event{Kind: EventResize, Width: ev.Width, Height: ev.Height}, true
	case termbox.EventKey:
		switch ev.Key {
		case termbox.KeyEsc, termbox.KeyCtrlC:
			return Event{Kind: EventQuit}, true
		}
		if ev.Ch == 0 {
			return Event{}, false
		}
		return Event{Kind: EventKey, Ch: ev.Ch}, true
	}
	return Event{}, false
}

// Close stops the event pump and restores the terminal. It is safe to call
// more than once.
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.backend.interrupt()
		<-s.stopped
		s.backend.close()
	})
}

// Events returns the input event stream. It is closed after Close.
func (s *Screen) Events() <-chan Event {
	return s.events
}

// Size returns the terminal size in cells.
func (s *Screen) Size() (w, h int) {
	return termbox.Size()
}

// Draw paints a frame centred on the terminal.
func (s *Screen) Draw(f *render.Frame, p classify.Palette) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return fmt.Errorf("term: clear: %w", err)
	}
	w, h := termbox.Size()
	x0, y0 := max((w-f.Cols)/2, 0), max((h-f.Rows)/2, 0)
	for row := 0; row < f.Rows; row++ {
		for col, c := range f.Row(row) {
			termbox.SetCell(x0+col, y0+row, c.Glyph, deviceColor(p, c.Color), termbox.ColorDefault)
		}
	}
	if err := termbox.Flush(); err != nil {
		return fmt.Errorf("term: flush: %w", err)
	}
	return nil
}

// Message replaces the screen with a centred line of text.
func (s *Screen) Message(text string) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return fmt.Errorf("term: clear: %w", err)
	}
	w, h := termbox.Size()
	x := max((w-len(text))/2, 0)
	for i, r := range []rune(text) {
		termbox.SetCell(x+i, h/2, r, termbox.ColorDefault, termbox.ColorDefault)
	}
	if err := termbox.Flush(); err != nil {
		return fmt.Errorf("term: flush: %w", err)
	}
	return nil
}

// deviceColor maps a palette index to a termbox 256-colour attribute,
// where attribute n selects colour n-1.
func deviceColor(p classify.Palette, i int) termbox.Attribute {
	if i < 0 || i >= len(p) {
		return termbox.ColorDefault
	}
	return termbox.Attribute(p[i].Device + 1)
}
