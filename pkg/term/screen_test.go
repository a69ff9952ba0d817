package term

import (
	"testing"
	"time"

	"github.com/nsf/termbox-go"
)

// fakeBackend hands out events from an unbuffered channel. Like termbox,
// interrupt blocks until a pollEvent call receives it.
type fakeBackend struct {
	src    chan termbox.Event
	closed chan struct{}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		src:    make(chan termbox.Event),
		closed: make(chan struct{}),
	}
}

func (f *fakeBackend) backend() backend {
	return backend{
		pollEvent: func() termbox.Event { return <-f.src },
		interrupt: func() { f.src <- termbox.Event{Type: termbox.EventInterrupt} },
		close:     func() { close(f.closed) },
	}
}

func closeWithin(t *testing.T, s *Screen, d time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		s.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatal("Close did not return")
	}
}

func TestScreenForwardsEvents(t *testing.T) {
	fb := newFakeBackend()
	s := newScreen(fb.backend())
	defer closeWithin(t, s, 2*time.Second)

	fb.src <- termbox.Event{Type: termbox.EventKey, Ch: 'w'}
	if got := <-s.Events(); got != (Event{Kind: EventKey, Ch: 'w'}) {
		t.Errorf("got %+v, want key w", got)
	}
	fb.src <- termbox.Event{Type: termbox.EventMouse}
	fb.src <- termbox.Event{Type: termbox.EventResize, Width: 100, Height: 30}
	if got := <-s.Events(); got != (Event{Kind: EventResize, Width: 100, Height: 30}) {
		t.Errorf("got %+v, want resize 100x30", got)
	}
}

func TestScreenCloseWithPendingEvent(t *testing.T) {
	fb := newFakeBackend()
	s := newScreen(fb.backend())

	// Nobody reads Events, so the pump is stuck handing this over.
	fb.src <- termbox.Event{Type: termbox.EventResize, Width: 80, Height: 24}

	closeWithin(t, s, 2*time.Second)
	select {
	case <-fb.closed:
	default:
		t.Error("terminal not restored")
	}
	if _, ok := <-s.Events(); ok {
		t.Error("event stream still open after Close")
	}
}

func TestScreenCloseTwice(t *testing.T) {
	fb := newFakeBackend()
	s := newScreen(fb.backend())
	closeWithin(t, s, 2*time.Second)
	closeWithin(t, s, 2*time.Second)
}

func TestConvertEvent(t *testing.T) {
	tests := []struct {
		name string
		in   termbox.Event
		want Event
		ok   bool
	}{
		{"rune", termbox.Event{Type: termbox.EventKey, Ch: 'z'}, Event{Kind: EventKey, Ch: 'z'}, true},
		{"esc", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, Event{Kind: EventQuit}, true},
		{"ctrl-c", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlC}, Event{Kind: EventQuit}, true},
		{"arrow", termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowUp}, Event{}, false},
		{"error", termbox.Event{Type: termbox.EventError}, Event{Kind: EventQuit}, true},
		{"resize", termbox.Event{Type: termbox.EventResize, Width: 10, Height: 5}, Event{Kind: EventResize, Width: 10, Height: 5}, true},
		{"mouse", termbox.Event{Type: termbox.EventMouse}, Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertEvent(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("got %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}
