package render

import (
	"runtime"

	"mandelzoom/mandelbrot"
)

type Settings struct {
	Mandelbrot    mandelbrot.Settings
	SuperSampling int
	TileHeight    int
	TileWidth     int
	Workers       int
}

func (s *Settings) Verify() error {
	if err := s.Mandelbrot.Verify(); err != nil {
		return err
	}
	if s.SuperSampling < 1 {
		s.SuperSampling = 1
	}
	if s.TileHeight < 1 {
		s.TileHeight = 64
	}
	if s.TileWidth < 1 {
		s.TileWidth = 64
	}
	if s.Workers < 1 {
		s.Workers = runtime.GOMAXPROCS(0)
	}
	return nil
}
