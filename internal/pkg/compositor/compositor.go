// Package compositor draws editor frames: background, guide lines and the text layer.
package compositor

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/catchcraft/internal/entity"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

const guideLineWidth = 5

type Compositor interface {
	// Render draws a full frame. Guide lines are an editing aid and are only drawn
	// when includeGuides is set.
	Render(state entity.State, includeGuides bool) (image.Image, error)
	// Export renders the frame without guide lines and encodes it as PNG.
	Export(state entity.State) ([]byte, error)
}

type canvasCompositor struct {
	fonts *FontRegistry
}

func NewCompositor(fonts *FontRegistry) Compositor {
	return &canvasCompositor{fonts: fonts}
}

func (c *canvasCompositor) Render(state entity.State, includeGuides bool) (image.Image, error) {
	if state.Background == nil {
		return nil, entity.ErrNoBackground
	}

	bounds := state.Background.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, entity.ErrNoBackground
	}

	dc := gg.NewContext(width, height)
	defer dc.Close()

	dc.Clear()
	dc.DrawImageEx(gg.ImageBufFromImage(state.Background), gg.DrawImageOptions{
		Interpolation: gg.InterpNearest,
		Opacity:       1.0,
		BlendMode:     gg.BlendNormal,
	})

	if includeGuides {
		if err := drawGuides(dc, float64(width), float64(height)); err != nil {
			return nil, err
		}
	}

	if state.Layer != nil {
		c.drawText(dc, *state.Layer)
	}

	return dc.Image(), nil
}

func (c *canvasCompositor) Export(state entity.State) ([]byte, error) {
	frame, err := c.Render(state, false)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, frame, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return buf.Bytes(), nil
}

// drawGuides strokes the horizontal and vertical center lines.
func drawGuides(dc *gg.Context, width, height float64) error {
	dc.Push()
	defer dc.Pop()

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(guideLineWidth)

	dc.DrawLine(0, height/2, width, height/2)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroke horizontal guide: %w", err)
	}

	dc.DrawLine(width/2, 0, width/2, height)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroke vertical guide: %w", err)
	}
	return nil
}

// drawText draws every line centered on the layer x with a middle baseline.
func (c *canvasCompositor) drawText(dc *gg.Context, layer entity.TextLayer) {
	size := float64(layer.FontSize)
	face := c.fonts.Face(layer.Family(), layer.Weight(), size)
	fallback := c.fonts.Fallback(size)
	metrics := face.Metrics()
	// shift from the middle of the em box down to the alphabetic baseline
	middleToBaseline := (metrics.Ascent - metrics.Descent) / 2

	dc.SetRGB(0, 0, 0)
	for _, line := range Layout(layer) {
		if line.Text == "" {
			continue
		}
		runs := splitRuns(line.Text, face, fallback)

		x := line.X - runsAdvance(runs)/2
		for _, run := range runs {
			dc.SetFont(run.face)
			dc.DrawString(run.text, x, line.Y+middleToBaseline)
			x += run.face.Advance(run.text)
		}
	}
}

// run is a stretch of a line drawn with one face.
type run struct {
	text string
	face text.Face
}

// splitRuns groups consecutive runes by the face that draws them: the primary face
// when it has the glyph, otherwise the fallback.
func splitRuns(s string, primary, fallback text.Face) []run {
	var (
		runs  []run
		start int
		cur   text.Face
	)
	for i, r := range s {
		face := primary
		if !primary.HasGlyph(r) && fallback.HasGlyph(r) {
			face = fallback
		}
		if cur != nil && face != cur {
			runs = append(runs, run{text: s[start:i], face: cur})
			start = i
		}
		cur = face
	}
	if cur != nil {
		runs = append(runs, run{text: s[start:], face: cur})
	}
	return runs
}

func runsAdvance(runs []run) float64 {
	var total float64
	for _, run := range runs {
		total += run.face.Advance(run.text)
	}
	return total
}
