package editor

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/catchcraft/internal/entity"
	"github.com/ds124wfegd/catchcraft/internal/pkg/compositor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func background(width, height int) image.Image {
	return imaging.New(width, height, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
}

func newMoveEditor(t *testing.T, width, height int) *Editor {
	t.Helper()

	e := New(Settings{})
	e.SetBackground(background(width, height), "v1")
	_, created := e.AddText()
	require.True(t, created)
	require.Equal(t, entity.ModeMove, e.ToggleMoveMode())
	return e
}

func TestSetBackgroundResizesCanvas(t *testing.T) {
	e := New(Settings{})
	w, h := e.CanvasSize()
	assert.Zero(t, w)
	assert.Zero(t, h)

	e.SetBackground(background(1000, 800), "v1")
	w, h = e.CanvasSize()
	assert.Equal(t, 1000, w)
	assert.Equal(t, 800, h)

	// replaced wholesale
	e.SetBackground(background(640, 480), "v2")
	w, h = e.CanvasSize()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
	assert.Equal(t, "v2", e.Snapshot().BackgroundVersion)

	// no file keeps the prior state
	e.SetBackground(nil, "v3")
	w, h = e.CanvasSize()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
	assert.Equal(t, "v2", e.Snapshot().BackgroundVersion)
}

func TestAddTextDefaultsAndIdempotence(t *testing.T) {
	e := New(Settings{})
	e.SetBackground(background(1000, 800), "v1")

	layer, created := e.AddText()
	require.True(t, created)
	assert.NotEmpty(t, layer.ID)
	assert.Equal(t, "新しいテキスト", layer.Text)
	assert.Equal(t, 500.0, layer.X)
	assert.Equal(t, 400.0, layer.Y)
	assert.Equal(t, 300, layer.FontSize)
	assert.Equal(t, "sans-serif", layer.FontFamily)
	assert.Equal(t, 400, layer.FontWeight)

	text := "edited"
	_, err := e.EditText(entity.TextEdit{Text: &text})
	require.NoError(t, err)

	again, created := e.AddText()
	assert.False(t, created)
	assert.Equal(t, layer.ID, again.ID)
	assert.Equal(t, "edited", again.Text)
}

func TestEditText(t *testing.T) {
	size, badSize := 500, 350
	weight, badWeight := 700, 750
	family, badFamily := "Noto Sans JP", "Comic Sans"
	content := "line one\nline two"

	tests := []struct {
		name string
		edit entity.TextEdit
		err  error
	}{
		{"content", entity.TextEdit{Text: &content}, nil},
		{"size", entity.TextEdit{FontSize: &size}, nil},
		{"weight", entity.TextEdit{FontWeight: &weight}, nil},
		{"family", entity.TextEdit{FontFamily: &family}, nil},
		{"size off the scale", entity.TextEdit{FontSize: &badSize}, entity.ErrInvalidFontSize},
		{"weight off the scale", entity.TextEdit{FontWeight: &badWeight}, entity.ErrInvalidFontWeight},
		{"unknown family", entity.TextEdit{FontFamily: &badFamily}, entity.ErrUnknownFontFamily},
		{"valid text with bad size", entity.TextEdit{Text: &content, FontSize: &badSize}, entity.ErrInvalidFontSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(Settings{})
			e.SetBackground(background(100, 100), "v1")
			before, _ := e.AddText()

			after, err := e.EditText(tt.edit)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				current, _ := e.Layer()
				assert.Equal(t, before, current, "a rejected edit changes nothing")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, before.ID, after.ID)
			assert.Equal(t, before.X, after.X)
			assert.Equal(t, before.Y, after.Y)
		})
	}
}

func TestEditTextWithoutLayer(t *testing.T) {
	e := New(Settings{})
	text := "x"
	_, err := e.EditText(entity.TextEdit{Text: &text})
	assert.ErrorIs(t, err, entity.ErrNoTextLayer)
}

func TestKeyboardNudge(t *testing.T) {
	e := newMoveEditor(t, 1000, 800)

	for i := 0; i < 4; i++ {
		assert.True(t, e.KeyDown("ArrowRight"))
	}
	layer, _ := e.Layer()
	assert.Equal(t, 540.0, layer.X)
	assert.Equal(t, 400.0, layer.Y)

	assert.True(t, e.KeyDown("ArrowUp"))
	assert.True(t, e.KeyDown("ArrowLeft"))
	assert.False(t, e.KeyDown("Enter"))
	assert.False(t, e.KeyDown("a"))
	layer, _ = e.Layer()
	assert.Equal(t, 530.0, layer.X)
	assert.Equal(t, 390.0, layer.Y)
}

func TestInputIgnoredOutsideMoveMode(t *testing.T) {
	t.Run("normal mode", func(t *testing.T) {
		e := New(Settings{})
		e.SetBackground(background(200, 200), "v1")
		before, _ := e.AddText()

		assert.False(t, e.KeyDown("ArrowDown"))
		assert.False(t, e.PointerDown(entity.Point{X: 10, Y: 10}, entity.Size{Width: 100, Height: 100}))
		assert.False(t, e.PointerMove(entity.Point{X: 50, Y: 50}))
		assert.False(t, e.PointerUp())

		after, _ := e.Layer()
		assert.Equal(t, before, after)
	})

	t.Run("no layer", func(t *testing.T) {
		e := New(Settings{})
		e.SetBackground(background(200, 200), "v1")
		e.ToggleMoveMode()

		assert.False(t, e.KeyDown("ArrowDown"))
		assert.False(t, e.PointerDown(entity.Point{}, entity.Size{Width: 100, Height: 100}))
		assert.False(t, e.Dragging())
	})
}

func TestDragScalesToBackingResolution(t *testing.T) {
	e := newMoveEditor(t, 1000, 800)

	// displayed at half the backing resolution
	require.True(t, e.PointerDown(entity.Point{X: 100, Y: 100}, entity.Size{Width: 500, Height: 400}))
	assert.True(t, e.Dragging())

	assert.True(t, e.PointerMove(entity.Point{X: 110, Y: 100}))
	layer, _ := e.Layer()
	assert.Equal(t, 520.0, layer.X)
	assert.Equal(t, 400.0, layer.Y)

	// deltas are measured from the drag start, not accumulated
	assert.True(t, e.PointerMove(entity.Point{X: 90, Y: 105}))
	layer, _ = e.Layer()
	assert.Equal(t, 480.0, layer.X)
	assert.Equal(t, 410.0, layer.Y)

	assert.True(t, e.PointerUp())
	assert.False(t, e.Dragging())

	// released: further moves do nothing
	assert.False(t, e.PointerMove(entity.Point{X: 300, Y: 300}))
	after, _ := e.Layer()
	assert.Equal(t, layer, after)
	assert.False(t, e.PointerUp())
}

func TestDragWithUnknownDisplaySize(t *testing.T) {
	e := newMoveEditor(t, 400, 300)

	require.True(t, e.PointerDown(entity.Point{X: 0, Y: 0}, entity.Size{}))
	e.PointerMove(entity.Point{X: 7, Y: -3})

	layer, _ := e.Layer()
	assert.Equal(t, 207.0, layer.X)
	assert.Equal(t, 147.0, layer.Y)
}

func TestDragReleasedOnInterruption(t *testing.T) {
	t.Run("leaving move mode", func(t *testing.T) {
		e := newMoveEditor(t, 400, 300)
		require.True(t, e.PointerDown(entity.Point{}, entity.Size{Width: 400, Height: 300}))

		assert.Equal(t, entity.ModeNormal, e.ToggleMoveMode())
		assert.False(t, e.Dragging())
		assert.False(t, e.PointerMove(entity.Point{X: 50, Y: 50}))
	})

	t.Run("new background", func(t *testing.T) {
		e := newMoveEditor(t, 400, 300)
		require.True(t, e.PointerDown(entity.Point{}, entity.Size{Width: 400, Height: 300}))

		e.SetBackground(background(800, 600), "v2")
		assert.False(t, e.Dragging())
	})

	t.Run("second pointer down replaces the drag", func(t *testing.T) {
		e := newMoveEditor(t, 400, 300)
		require.True(t, e.PointerDown(entity.Point{X: 0, Y: 0}, entity.Size{Width: 400, Height: 300}))
		e.PointerMove(entity.Point{X: 10, Y: 0})

		require.True(t, e.PointerDown(entity.Point{X: 50, Y: 50}, entity.Size{Width: 200, Height: 150}))
		e.PointerMove(entity.Point{X: 51, Y: 50})

		layer, _ := e.Layer()
		assert.Equal(t, 212.0, layer.X)
		assert.Equal(t, 150.0, layer.Y)
	})
}

func TestModePersistsUntilToggled(t *testing.T) {
	e := New(Settings{})
	assert.Equal(t, entity.ModeNormal, e.Mode())
	assert.Equal(t, entity.ModeMove, e.ToggleMoveMode())

	e.SetBackground(background(10, 10), "v1")
	e.AddText()
	assert.Equal(t, entity.ModeMove, e.Snapshot().Mode)

	assert.Equal(t, entity.ModeNormal, e.ToggleMoveMode())
	assert.Equal(t, entity.ModeNormal, e.Mode())
}

func TestSnapshotIsACopy(t *testing.T) {
	e := newMoveEditor(t, 100, 100)
	snapshot := e.Snapshot()

	e.KeyDown("ArrowDown")
	assert.Equal(t, 50.0, snapshot.Layer.Y)

	layer, _ := e.Layer()
	assert.Equal(t, 60.0, layer.Y)
}

func TestEndToEndExample(t *testing.T) {
	fonts, err := compositor.NewFontRegistry(nil)
	require.NoError(t, err)
	defer fonts.Close()
	c := compositor.NewCompositor(fonts)

	e := New(Settings{})
	e.SetBackground(background(1000, 800), "v1")
	w, h := e.CanvasSize()
	require.Equal(t, 1000, w)
	require.Equal(t, 800, h)

	layer, created := e.AddText()
	require.True(t, created)
	assert.Equal(t, "新しいテキスト", layer.Text)
	assert.Equal(t, 500.0, layer.X)
	assert.Equal(t, 400.0, layer.Y)
	assert.Equal(t, 300, layer.FontSize)

	e.ToggleMoveMode()
	for i := 0; i < 3; i++ {
		e.KeyDown("ArrowDown")
	}
	layer, _ = e.Layer()
	assert.Equal(t, 430.0, layer.Y)

	data, err := c.Export(e.Snapshot())
	require.NoError(t, err)
	exported, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1000, exported.Bounds().Dx())
	assert.Equal(t, 800, exported.Bounds().Dy())

	view, err := c.Render(e.Snapshot(), true)
	require.NoError(t, err)

	// vertical guide, above the text block
	gray := func(img image.Image) uint8 {
		return color.GrayModel.Convert(img.At(500, 40)).(color.Gray).Y
	}
	assert.Less(t, gray(view), uint8(64))
	assert.Greater(t, gray(exported), uint8(192))
}
