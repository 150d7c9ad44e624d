package viewport

import (
	"fmt"
	"math"

	"mandelzoom/misc"
)

// Transition describes a zoom from one point and magnification to another.
// Each frame multiplies (or divides) the magnification by MagnificationStep
// while the center eases toward the end point, so the zoom speed looks
// constant to the eye even though the plane span shrinks exponentially.
type Transition struct {
	EndX               float64
	EndY               float64
	MagnificationStart float64
	MagnificationEnd   float64
	MagnificationStep  float64
	StartX             float64
	StartY             float64
}

func (t *Transition) Verify() error {
	if t.StartX < -4 || t.StartX > 4 {
		t.StartX = 0
	}
	if t.StartY < -4 || t.StartY > 4 {
		t.StartY = 0
	}
	if t.EndX < -4 || t.EndX > 4 {
		t.EndX = 0
	}
	if t.EndY < -4 || t.EndY > 4 {
		t.EndY = 0
	}
	if t.MagnificationStart <= 0 {
		t.MagnificationStart = 0.5
	}
	if t.MagnificationEnd <= 0 {
		t.MagnificationEnd = 1.5
	}
	if t.MagnificationStep <= 1 {
		t.MagnificationStep = 1.1
	}
	return nil
}

// FrameCount is the number of multiplicative steps needed to move the
// magnification from start to end.
//
// magnification_start * magnification_step^n = magnification_end
// n = log(magnification_end / magnification_start) / log(magnification_step)
func (t *Transition) FrameCount() uint {
	ratio := t.MagnificationEnd / t.MagnificationStart
	if ratio < 1 {
		// zooming out
		ratio = 1 / ratio
	}
	count := math.Ceil(math.Log(ratio) / math.Log(t.MagnificationStep))
	if count < 1 {
		count = 1
	}
	return uint(count)
}

// Frames expands the transition into one viewport per frame. Zooming in
// eases the center out exponentially so the target point settles in place
// while the last magnification doublings happen; zooming out mirrors that
// with an ease-in.
func (t *Transition) Frames(width int, height int) []Viewport {
	frameCount := t.FrameCount()
	frames := make([]Viewport, 0, frameCount)

	zoomingIn := t.MagnificationStart < t.MagnificationEnd
	magnification := t.MagnificationStart
	currentX := t.StartX
	currentY := t.StartY

	var currentFrame uint
	for currentFrame = 1; currentFrame <= frameCount; currentFrame++ {
		fraction := float64(currentFrame) / float64(frameCount)

		if !zoomingIn {
			currentX = misc.LerpFloat64(t.StartX, t.EndX, misc.EaseInExpo(fraction))
			currentY = misc.LerpFloat64(t.StartY, t.EndY, misc.EaseInExpo(fraction))
			magnification /= t.MagnificationStep
		}

		frames = append(frames, FromMagnification(currentX, currentY, magnification, width, height))

		if zoomingIn {
			currentX = misc.LerpFloat64(t.StartX, t.EndX, misc.EaseOutExpo(fraction))
			currentY = misc.LerpFloat64(t.StartY, t.EndY, misc.EaseOutExpo(fraction))
			magnification *= t.MagnificationStep
		}
	}

	return frames
}

func (t *Transition) String() string {
	output := "{Transition "
	output += fmt.Sprintf("Start: (%f, %f) ", t.StartX, t.StartY)
	output += fmt.Sprintf("End: (%f, %f) ", t.EndX, t.EndY)
	output += fmt.Sprintf("Magnification: %f => %f by %f}", t.MagnificationStart, t.MagnificationEnd, t.MagnificationStep)
	return output
}
