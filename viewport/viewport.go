package viewport

import (
	"errors"
	"fmt"
)

var ErrInvalidViewport = errors.New("invalid viewport")

// Viewport is the rectangular region of the complex plane currently mapped
// onto the output image. Scale is in plane units per pixel, so the visible
// half-width is Scale*Width/2 and the half-height Scale*Height/2. Viewports
// are immutable values; zooming or panning derives a new one.
type Viewport struct {
	CenterX float64
	CenterY float64
	Scale   float64
	Width   int
	Height  int
}

// FromMagnification builds a viewport from a magnification value, where a
// magnification of m means the shorter image side spans 1/m plane units per
// pixel of that side. Dividing by the full side (not side-1) keeps a 1x1
// image from collapsing the span to zero.
func FromMagnification(centerX float64, centerY float64, magnification float64, width int, height int) Viewport {
	shorterSide := height
	if width < height {
		shorterSide = width
	}
	return Viewport{
		CenterX: centerX,
		CenterY: centerY,
		Scale:   1 / (magnification * float64(shorterSide)),
		Width:   width,
		Height:  height,
	}
}

// Magnification is the inverse of FromMagnification, used to scale
// iteration budgets to the current zoom depth.
func (v Viewport) Magnification() float64 {
	shorterSide := v.Height
	if v.Width < v.Height {
		shorterSide = v.Width
	}
	return 1 / (v.Scale * float64(shorterSide))
}

func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidViewport, v.Width, v.Height)
	}
	if v.Scale <= 0 {
		return fmt.Errorf("%w: scale %f", ErrInvalidViewport, v.Scale)
	}
	return nil
}

// PointAt converts an image coordinate to the (x, y) point on the complex
// plane. Coordinates may be fractional so super-sampling can address
// sub-pixel offsets. Pixels are indexed from the top left, so the point is
// shifted left and up by half the image before scaling.
func (v Viewport) PointAt(x float64, y float64) (float64, float64) {
	re := v.CenterX + (x-float64(v.Width)/2)*v.Scale
	im := v.CenterY + (y-float64(v.Height)/2)*v.Scale
	return re, im
}

// PixelToComplex maps a whole pixel. The pixel at (Width/2, Height/2) lands
// exactly on the viewport center.
func (v Viewport) PixelToComplex(column int, row int) (float64, float64) {
	return v.PointAt(float64(column), float64(row))
}

// Zoom derives a viewport magnified by factor around the same center.
// Zooming in by 2 halves the scale; Zoom(2) followed by Zoom(0.5) is the
// identity up to float rounding.
func (v Viewport) Zoom(factor float64) Viewport {
	zoomed := v
	zoomed.Scale = v.Scale / factor
	return zoomed
}

// ZoomAt recenters on a plane point and then zooms, which is the
// click-to-zoom derivation an interaction driver performs.
func (v Viewport) ZoomAt(re float64, im float64, factor float64) Viewport {
	moved := v
	moved.CenterX = re
	moved.CenterY = im
	return moved.Zoom(factor)
}

// Pan shifts the center by a pixel delta at the current scale.
func (v Viewport) Pan(dx int, dy int) Viewport {
	moved := v
	moved.CenterX += float64(dx) * v.Scale
	moved.CenterY += float64(dy) * v.Scale
	return moved
}

func (v Viewport) String() string {
	output := "{Viewport "
	output += fmt.Sprintf("CenterX: %f ", v.CenterX)
	output += fmt.Sprintf("CenterY: %f ", v.CenterY)
	output += fmt.Sprintf("Scale: %g ", v.Scale)
	output += fmt.Sprintf("Width: %d ", v.Width)
	output += fmt.Sprintf("Height: %d}", v.Height)
	return output
}
