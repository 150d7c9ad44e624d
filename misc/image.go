package misc

import (
	"image/color"
	"math"
)

func LerpFloat64(v1 float64, v2 float64, fraction float64) float64 {
	return v1 + (v2-v1)*fraction
}

func LerpUint8(v1 uint8, v2 uint8, fraction float64) uint8 {
	return uint8(LerpFloat64(float64(v1), float64(v2), fraction))
}

func LinearInterpolationRGB(color1 color.RGBA, color2 color.RGBA, fraction float64) color.RGBA {
	var finalColor color.RGBA
	finalColor.R = LerpUint8(color1.R, color2.R, fraction)
	finalColor.G = LerpUint8(color1.G, color2.G, fraction)
	finalColor.B = LerpUint8(color1.B, color2.B, fraction)
	finalColor.A = 255
	return finalColor
}

// HSVToRGB converts hue [0,360), saturation [0,1] and value [0,1] to RGB.
// https://en.wikipedia.org/wiki/HSL_and_HSV#HSV_to_RGB
func HSVToRGB(hue float64, saturation float64, value float64) color.RGBA {
	hue = math.Mod(math.Mod(hue, 360)+360, 360)
	c := value * saturation
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := value - c

	var r, g, b float64
	switch int(hue / 60) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.RGBA{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: 255,
	}
}

func EaseOutExpo(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func EaseInExpo(t float64) float64 {
	if t <= 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}
