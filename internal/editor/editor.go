// Package editor holds the state of one editing session and maps interaction events
// onto it. An Editor is not safe for concurrent use; callers serialize events.
package editor

import (
	"fmt"
	"image"
	"slices"

	"github.com/ds124wfegd/catchcraft/internal/entity"
	"github.com/google/uuid"
)

const (
	DefaultNudgeStep = 10
	DefaultText      = "新しいテキスト"
	DefaultFontSize  = 300
)

type Settings struct {
	NudgeStep       float64
	DefaultText     string
	DefaultFontSize int
}

type Editor struct {
	settings Settings

	background image.Image
	version    string
	layer      *entity.TextLayer
	mode       entity.Mode
	drag       *drag
}

func New(settings Settings) *Editor {
	if settings.NudgeStep <= 0 {
		settings.NudgeStep = DefaultNudgeStep
	}
	if settings.DefaultText == "" {
		settings.DefaultText = DefaultText
	}
	if settings.DefaultFontSize <= 0 {
		settings.DefaultFontSize = DefaultFontSize
	}
	return &Editor{settings: settings}
}

// SetBackground replaces the background wholesale; the canvas takes its size.
// A nil image is ignored and the prior state is kept.
func (e *Editor) SetBackground(img image.Image, version string) {
	if img == nil {
		return
	}
	e.endDrag()
	e.background = img
	e.version = version
}

// CanvasSize is the backing resolution of the canvas, 0x0 before any upload.
func (e *Editor) CanvasSize() (int, int) {
	if e.background == nil {
		return 0, 0
	}
	b := e.background.Bounds()
	return b.Dx(), b.Dy()
}

func (e *Editor) HasBackground() bool {
	return e.background != nil
}

// AddText creates the text layer at the canvas center. Once a layer exists it is
// returned unchanged and created is false.
func (e *Editor) AddText() (layer entity.TextLayer, created bool) {
	if e.layer != nil {
		return *e.layer, false
	}

	w, h := e.CanvasSize()
	e.layer = &entity.TextLayer{
		ID:         uuid.NewString(),
		Text:       e.settings.DefaultText,
		X:          float64(w) / 2,
		Y:          float64(h) / 2,
		FontSize:   e.settings.DefaultFontSize,
		FontFamily: entity.DefaultFontFamily,
		FontWeight: entity.DefaultFontWeight,
	}
	return *e.layer, true
}

// Layer returns a copy of the text layer, if any.
func (e *Editor) Layer() (entity.TextLayer, bool) {
	if e.layer == nil {
		return entity.TextLayer{}, false
	}
	return *e.layer, true
}

// EditText applies the non-nil fields of edit. Nothing is applied if any field is invalid.
func (e *Editor) EditText(edit entity.TextEdit) (entity.TextLayer, error) {
	if e.layer == nil {
		return entity.TextLayer{}, entity.ErrNoTextLayer
	}
	if err := validateEdit(edit); err != nil {
		return entity.TextLayer{}, err
	}

	if edit.Text != nil {
		e.layer.Text = *edit.Text
	}
	if edit.FontSize != nil {
		e.layer.FontSize = *edit.FontSize
	}
	if edit.FontFamily != nil {
		e.layer.FontFamily = *edit.FontFamily
	}
	if edit.FontWeight != nil {
		e.layer.FontWeight = *edit.FontWeight
	}
	return *e.layer, nil
}

func validateEdit(edit entity.TextEdit) error {
	if edit.FontSize != nil && !slices.Contains(entity.FontSizes, *edit.FontSize) {
		return fmt.Errorf("%w: %d", entity.ErrInvalidFontSize, *edit.FontSize)
	}
	if edit.FontWeight != nil && !slices.Contains(entity.FontWeights, *edit.FontWeight) {
		return fmt.Errorf("%w: %d", entity.ErrInvalidFontWeight, *edit.FontWeight)
	}
	if edit.FontFamily != nil {
		family := *edit.FontFamily
		if family != entity.DefaultFontFamily && !slices.Contains(entity.FontFamilies, family) {
			return fmt.Errorf("%w: %q", entity.ErrUnknownFontFamily, family)
		}
	}
	return nil
}

func (e *Editor) Mode() entity.Mode {
	return e.mode
}

// ToggleMoveMode switches between normal and move mode. Leaving move mode ends any drag.
func (e *Editor) ToggleMoveMode() entity.Mode {
	if e.mode == entity.ModeMove {
		e.mode = entity.ModeNormal
		e.endDrag()
	} else {
		e.mode = entity.ModeMove
	}
	return e.mode
}

func (e *Editor) canMove() bool {
	return e.mode == entity.ModeMove && e.layer != nil
}

// KeyDown nudges the layer by the step for arrow keys in move mode. It reports whether
// the layer moved; other keys and other modes are ignored.
func (e *Editor) KeyDown(key string) bool {
	if !e.canMove() {
		return false
	}

	step := e.settings.NudgeStep
	switch key {
	case "ArrowUp":
		e.layer.Y -= step
	case "ArrowDown":
		e.layer.Y += step
	case "ArrowLeft":
		e.layer.X -= step
	case "ArrowRight":
		e.layer.X += step
	default:
		return false
	}
	return true
}

// PointerDown starts a drag at a canvas-relative pointer position. displayed is the
// size the canvas is shown at. A drag left over from an earlier pointer-down is released.
func (e *Editor) PointerDown(p entity.Point, displayed entity.Size) bool {
	if !e.canMove() {
		return false
	}

	e.endDrag()
	w, h := e.CanvasSize()
	e.drag = newDrag(p, entity.Point{X: e.layer.X, Y: e.layer.Y}, w, h, displayed)
	return true
}

// PointerMove moves the layer by the scaled pointer delta since PointerDown.
func (e *Editor) PointerMove(p entity.Point) bool {
	if e.drag == nil || e.layer == nil {
		return false
	}

	pos := e.drag.position(p)
	e.layer.X, e.layer.Y = pos.X, pos.Y
	return true
}

// PointerUp ends the drag. It reports whether a drag was active.
func (e *Editor) PointerUp() bool {
	return e.endDrag()
}

func (e *Editor) Dragging() bool {
	return e.drag != nil
}

func (e *Editor) endDrag() bool {
	if e.drag == nil {
		return false
	}
	e.drag = nil
	return true
}

// Snapshot copies the state a frame is rendered from.
func (e *Editor) Snapshot() entity.State {
	state := entity.State{
		Background:        e.background,
		BackgroundVersion: e.version,
		Mode:              e.mode,
	}
	if e.layer != nil {
		layer := *e.layer
		state.Layer = &layer
	}
	return state
}
