package term

import (
	"github.com/chazu/asciimarch/pkg/config"
	"github.com/chazu/asciimarch/pkg/render"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Action is a camera control.
type Action int

const (
	ActionNone Action = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	MoveForward
	MoveBackward
	TurnLeft
	TurnRight
	TurnUp
	TurnDown
	TurnBack
	TurnAhead
)

// Screen y grows downward, so "up" is -y.
var actionDeltas = map[Action]v3.Vec{
	MoveUp:       {Y: -1},
	MoveDown:     {Y: 1},
	MoveLeft:     {X: -1},
	MoveRight:    {X: 1},
	MoveForward:  {Z: 1},
	MoveBackward: {Z: -1},
	TurnLeft:     {X: -1},
	TurnRight:    {X: 1},
	TurnUp:       {Y: -1},
	TurnDown:     {Y: 1},
	TurnBack:     {Z: -1},
	TurnAhead:    {Z: 1},
}

// turnKeys are shared by every layout.
var turnKeys = map[rune]Action{
	'j': TurnLeft,
	'l': TurnRight,
	'i': TurnUp,
	'k': TurnDown,
	'u': TurnBack,
	'o': TurnAhead,
}

var moveKeys = map[string]map[rune]Action{
	config.LayoutAZERTY: {
		'z': MoveUp,
		's': MoveDown,
		'q': MoveLeft,
		'd': MoveRight,
		'w': MoveForward,
		'x': MoveBackward,
	},
	config.LayoutQWERTY: {
		'w': MoveUp,
		's': MoveDown,
		'a': MoveLeft,
		'd': MoveRight,
		'z': MoveForward,
		'x': MoveBackward,
	},
}

// Bindings maps keys to actions for one keyboard layout.
type Bindings map[rune]Action

// NewBindings returns the bindings for layout. Unknown layouts fall back
// to AZERTY.
func NewBindings(layout string) Bindings {
	moves, ok := moveKeys[layout]
	if !ok {
		moves = moveKeys[config.LayoutAZERTY]
	}
	b := make(Bindings, len(moves)+len(turnKeys))
	for k, a := range moves {
		b[k] = a
	}
	for k, a := range turnKeys {
		b[k] = a
	}
	return b
}

// Apply returns the camera after action a. Moves translate by moveStep;
// turns nudge the direction by turnStep and renormalise it.
func Apply(c render.Camera, a Action, moveStep, turnStep float64) render.Camera {
	d, ok := actionDeltas[a]
	if !ok {
		return c
	}
	if a >= TurnLeft {
		return c.Turn(d.MulScalar(turnStep))
	}
	return c.Move(d.MulScalar(moveStep))
}
