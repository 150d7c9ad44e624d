package palette

import "image/color"

// GradientSettings is the JSON shape for one leg of a custom palette, as in
// {"StartColor": {"R":0,"G":0,"B":0,"A":255}, "EndColor": ..., "NumberColors": 16}.
type GradientSettings struct {
	StartColor   color.RGBA
	EndColor     color.RGBA
	NumberColors int
}

// Settings selects a palette: a built-in name, or a custom stop list built
// by concatenating gradient legs when any are present.
type Settings struct {
	Name             string
	GradientSettings []GradientSettings
}

func (s *Settings) Verify() error {
	if s.Name == "" && len(s.GradientSettings) == 0 {
		s.Name = "classic"
	}
	for i := range s.GradientSettings {
		if s.GradientSettings[i].NumberColors < 1 {
			s.GradientSettings[i].NumberColors = 1
		}
	}
	return nil
}

func (s *Settings) Build() (Palette, error) {
	if len(s.GradientSettings) > 0 {
		stops := make([]color.RGBA, 0)
		for i := 0; i < len(s.GradientSettings); i++ {
			gs := s.GradientSettings[i]
			stops = append(stops, Gradient(gs.StartColor, gs.EndColor, gs.NumberColors)...)
		}
		return FromStops("custom", stops), nil
	}
	return ByName(s.Name)
}
