// Package term is the interactive terminal frontend. It owns the display
// and keyboard through termbox-go, keeps the camera and scene clock, and
// asks a render.Renderer for one frame per tick.
//
// Movement keys (AZERTY / QWERTY):
//
//	z / w   up          s       down
//	q / a   left        d       right
//	w / z   forward     x       backward
//
// Direction keys, on every layout: j l (x), i k (y), u o (z).
// r reloads the settings script, Esc or Ctrl-C quits.
package term
