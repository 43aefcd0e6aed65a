package editor

import "github.com/ds124wfegd/catchcraft/internal/entity"

// drag is the pointer subscription held between pointer-down and pointer-up.
type drag struct {
	start  entity.Point
	origin entity.Point
	scaleX float64
	scaleY float64
}

// newDrag captures the pointer start, the layer start and the ratio between the
// canvas backing resolution and the size it is displayed at.
func newDrag(start entity.Point, origin entity.Point, canvasW, canvasH int, displayed entity.Size) *drag {
	return &drag{
		start:  start,
		origin: origin,
		scaleX: scale(canvasW, displayed.Width),
		scaleY: scale(canvasH, displayed.Height),
	}
}

// position maps a pointer position to the layer position it drags to.
func (d *drag) position(p entity.Point) entity.Point {
	return entity.Point{
		X: d.origin.X + (p.X-d.start.X)*d.scaleX,
		Y: d.origin.Y + (p.Y-d.start.Y)*d.scaleY,
	}
}

func scale(backing int, displayed float64) float64 {
	if displayed <= 0 || backing <= 0 {
		return 1
	}
	return float64(backing) / displayed
}
