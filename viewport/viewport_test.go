package viewport

import (
	"errors"
	"math"
	"testing"
)

func TestCenterPixelInvariant(t *testing.T) {
	testCases := []Viewport{
		{CenterX: -0.5, CenterY: 0, Scale: 0.005, Width: 800, Height: 800},
		{CenterX: 0.25, CenterY: -1.1, Scale: 0.0001, Width: 256, Height: 256},
		{CenterX: 0, CenterY: 0, Scale: 1, Width: 2, Height: 2},
	}
	for _, vp := range testCases {
		re, im := vp.PixelToComplex(vp.Width/2, vp.Height/2)
		if math.Abs(re-vp.CenterX) > 1e-12 || math.Abs(im-vp.CenterY) > 1e-12 {
			t.Errorf("%s: center pixel mapped to (%g, %g), want (%g, %g)", vp.String(), re, im, vp.CenterX, vp.CenterY)
		}
	}
}

func TestPointAtDegenerateSize(t *testing.T) {
	vp := Viewport{CenterX: -0.5, CenterY: 0.25, Scale: 0.01, Width: 1, Height: 1}
	re, im := vp.PixelToComplex(0, 0)
	if math.IsNaN(re) || math.IsInf(re, 0) || math.IsNaN(im) || math.IsInf(im, 0) {
		t.Fatalf("1x1 viewport produced a non-finite point (%g, %g)", re, im)
	}
}

func TestPointAtLinear(t *testing.T) {
	vp := Viewport{CenterX: 0, CenterY: 0, Scale: 0.5, Width: 4, Height: 4}
	re, im := vp.PixelToComplex(0, 0)
	if re != -1 || im != -1 {
		t.Errorf("pixel (0,0) mapped to (%g, %g), want (-1, -1)", re, im)
	}
	re, im = vp.PixelToComplex(3, 1)
	if re != 0.5 || im != -0.5 {
		t.Errorf("pixel (3,1) mapped to (%g, %g), want (0.5, -0.5)", re, im)
	}
}

func TestZoomInverse(t *testing.T) {
	vp := Viewport{CenterX: -0.5, CenterY: 0.1, Scale: 0.005, Width: 800, Height: 600}
	roundTrip := vp.Zoom(2).Zoom(0.5)
	if math.Abs(roundTrip.Scale-vp.Scale) > 1e-15 {
		t.Errorf("zoom 2x then 0.5x changed scale: %g != %g", roundTrip.Scale, vp.Scale)
	}
	if roundTrip.CenterX != vp.CenterX || roundTrip.CenterY != vp.CenterY {
		t.Errorf("zoom moved the center: %s != %s", roundTrip.String(), vp.String())
	}
}

func TestZoomAtRecenters(t *testing.T) {
	vp := Viewport{CenterX: 0, CenterY: 0, Scale: 0.01, Width: 100, Height: 100}
	zoomed := vp.ZoomAt(-0.75, 0.1, 2)
	if zoomed.CenterX != -0.75 || zoomed.CenterY != 0.1 {
		t.Errorf("ZoomAt did not recenter: %s", zoomed.String())
	}
	if zoomed.Scale != vp.Scale/2 {
		t.Errorf("ZoomAt scale %g, want %g", zoomed.Scale, vp.Scale/2)
	}
}

func TestPan(t *testing.T) {
	vp := Viewport{CenterX: 1, CenterY: -1, Scale: 0.25, Width: 100, Height: 100}
	moved := vp.Pan(4, -8)
	if moved.CenterX != 2 || moved.CenterY != -3 {
		t.Errorf("pan by (4, -8) moved center to (%g, %g), want (2, -3)", moved.CenterX, moved.CenterY)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		vp      Viewport
		wantErr bool
	}{
		{"valid", Viewport{Scale: 0.005, Width: 800, Height: 600}, false},
		{"zero width", Viewport{Scale: 0.005, Width: 0, Height: 600}, true},
		{"negative height", Viewport{Scale: 0.005, Width: 800, Height: -1}, true},
		{"zero scale", Viewport{Scale: 0, Width: 800, Height: 600}, true},
		{"negative scale", Viewport{Scale: -0.1, Width: 800, Height: 600}, true},
	}
	for _, tc := range testCases {
		err := tc.vp.Validate()
		if tc.wantErr && !errors.Is(err, ErrInvalidViewport) {
			t.Errorf("%s: got %v, want ErrInvalidViewport", tc.name, err)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
	}
}

func TestMagnificationRoundTrip(t *testing.T) {
	vp := FromMagnification(-0.5, 0, 2.5, 800, 600)
	if math.Abs(vp.Magnification()-2.5) > 1e-12 {
		t.Errorf("magnification round trip: got %g, want 2.5", vp.Magnification())
	}
	// The shorter side drives the scale
	if vp.Scale != 1/(2.5*600) {
		t.Errorf("scale %g, want %g", vp.Scale, 1/(2.5*600))
	}
}
