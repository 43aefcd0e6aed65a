package compositor

import (
	"fmt"
	"strings"

	"github.com/ds124wfegd/catchcraft/internal/entity"
)

// LineHeightFactor is the line height as a multiple of the font size.
const LineHeightFactor = 1.2

// Line is one laid out line of a text layer. Y is the vertical middle of the line.
type Line struct {
	Text string
	X    float64
	Y    float64
}

// Layout splits the layer text on line breaks and centers the block on (layer.X, layer.Y).
func Layout(layer entity.TextLayer) []Line {
	parts := strings.Split(layer.Text, "\n")
	lineHeight := LineHeight(layer.FontSize)
	total := float64(len(parts)) * lineHeight
	startY := layer.Y - total/2 + lineHeight/2

	lines := make([]Line, len(parts))
	for i, part := range parts {
		lines[i] = Line{
			Text: part,
			X:    layer.X,
			Y:    startY + float64(i)*lineHeight,
		}
	}
	return lines
}

// LineHeight returns the distance between consecutive line middles.
func LineHeight(fontSize int) float64 {
	return float64(fontSize) * LineHeightFactor
}

// BlockExtent returns the top and bottom of the vertical extent used for centering.
func BlockExtent(lines []Line, fontSize int) (top, bottom float64) {
	if len(lines) == 0 {
		return 0, 0
	}
	half := LineHeight(fontSize) / 2
	return lines[0].Y - half, lines[len(lines)-1].Y + half
}

// FontSpec composes a CSS-style font string from weight, size and family.
func FontSpec(layer entity.TextLayer) string {
	return fmt.Sprintf("%d %dpx %s", layer.Weight(), layer.FontSize, layer.Family())
}
