package entity

import (
	"fmt"
	"image"
)

// Mode is the interaction mode of an editor.
type Mode int

const (
	ModeNormal Mode = iota
	ModeMove
)

func (m Mode) String() string {
	if m == ModeMove {
		return "move"
	}
	return "normal"
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "move":
		*m = ModeMove
	case "normal":
		*m = ModeNormal
	default:
		return fmt.Errorf("%w: mode %q", ErrInvalidInput, text)
	}
	return nil
}

// State is an immutable snapshot of everything a frame is rendered from.
type State struct {
	Background        image.Image
	BackgroundVersion string
	Layer             *TextLayer
	Mode              Mode
}

// Point is a position in canvas-relative pointer space or canvas pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is the on-screen size a canvas is displayed at.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
