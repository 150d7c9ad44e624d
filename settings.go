package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"time"

	"mandelzoom/misc"
	"mandelzoom/palette"
	"mandelzoom/render"
	"mandelzoom/viewport"

	"github.com/BrugadaSyndrome/bslogger"
)

const (
	ModeRender  = "render"
	ModeAnimate = "animate"
	ModeServe   = "serve"
)

type settings struct {
	logger bslogger.Logger

	CenterX         float64
	CenterY         float64
	FrameRate       int
	GenerateMovie   bool
	Height          int
	Magnification   float64
	Mode            string
	Palette         palette.Settings
	Render          render.Settings
	RunName         string
	SavePath        string
	Scale           float64
	ScaleIterations bool
	ServerAddress   string
	Transitions     []viewport.Transition
	Width           int
}

func newSettings(settingsFile string) settings {
	s := settings{
		logger: bslogger.NewLogger("Settings", bslogger.Normal, nil),
	}
	fileBytes, err := misc.ReadFile(settingsFile)
	misc.CheckError(err, s.logger, misc.Fatal)
	misc.CheckError(json.Unmarshal(fileBytes, &s), s.logger, misc.Fatal)
	misc.CheckError(s.Verify(), s.logger, misc.Fatal)
	return s
}

func (s *settings) Verify() error {
	switch s.Mode {
	case "":
		s.Mode = ModeRender
	case ModeRender, ModeAnimate, ModeServe:
	default:
		return fmt.Errorf("unknown mode %q", s.Mode)
	}
	if s.FrameRate <= 0 {
		s.FrameRate = 30
	}
	if s.Height <= 0 {
		s.Height = 1080
	}
	if s.Width <= 0 {
		s.Width = 1920
	}
	if s.Magnification <= 0 {
		s.Magnification = 0.5
	}
	if s.RunName == "" {
		s.RunName = "run_" + time.Now().Format("2006_01_02-03_04_05")
	}
	if s.SavePath == "" {
		s.SavePath, _ = os.Getwd()
	}
	if err := s.Render.Verify(); err != nil {
		return err
	}
	if err := s.Palette.Verify(); err != nil {
		return err
	}
	for i := 0; i < len(s.Transitions); i++ {
		misc.CheckError(s.Transitions[i].Verify(), s.logger, misc.Warning)
	}

	// If generate movie is set to true, verify ffmpeg is setup
	if s.GenerateMovie {
		cmd := exec.Command("ffmpeg")
		var stderr bytes.Buffer
		cmd.Stderr = &stderr
		cmd.Run()
		if !bytes.Contains(stderr.Bytes(), []byte(`ffmpeg version`)) {
			s.GenerateMovie = false
			s.logger.Info("Ffmpeg is not installed. Disabling GenerateMovie.")
		}
	}

	return s.viewport().Validate()
}

// viewport builds the single-render viewport. An explicit Scale wins;
// otherwise the Magnification convention applies.
func (s *settings) viewport() viewport.Viewport {
	if s.Scale > 0 {
		return viewport.Viewport{
			CenterX: s.CenterX,
			CenterY: s.CenterY,
			Scale:   s.Scale,
			Width:   s.Width,
			Height:  s.Height,
		}
	}
	return viewport.FromMagnification(s.CenterX, s.CenterY, s.Magnification, s.Width, s.Height)
}
