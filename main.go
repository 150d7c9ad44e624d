package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"mandelzoom/mandelbrot"
	"mandelzoom/misc"
	"mandelzoom/render"
	"mandelzoom/server"

	"github.com/BrugadaSyndrome/bslogger"
)

func main() {
	var settingsFile, mode string
	flag.StringVar(&settingsFile, "settings", "settings.json", "Json file with render settings")
	flag.StringVar(&mode, "mode", "", "Override the mode in the settings file (render, animate, serve)")
	flag.Parse()

	s := newSettings(settingsFile)
	if mode != "" {
		s.Mode = mode
		if err := s.Verify(); err != nil {
			s.logger.Fatal(err.Error())
		}
	}

	switch s.Mode {
	case ModeRender:
		startRender(s, settingsFile)
	case ModeAnimate:
		startAnimation(s, settingsFile)
	case ModeServe:
		startServer(s)
	}
}

func startRender(s settings, settingsFile string) {
	logger, runDir := setupRun(s, settingsFile)

	pal, err := s.Palette.Build()
	misc.CheckError(err, logger, misc.Fatal)

	raster, err := render.Render(context.Background(), s.viewport(), s.Render, pal)
	misc.CheckError(err, logger, misc.Fatal)

	path := filepath.Join(runDir, "render.png")
	misc.CheckError(saveImage(path, raster), logger, misc.Fatal)
	logger.Infof("Saved image to %s", path)
}

func startAnimation(s settings, settingsFile string) {
	logger, runDir := setupRun(s, settingsFile)

	pal, err := s.Palette.Build()
	misc.CheckError(err, logger, misc.Fatal)

	baseIterations := s.Render.Mandelbrot.MaxIterations
	frameNumber := 1
	for i := 0; i < len(s.Transitions); i++ {
		transition := s.Transitions[i]
		frames := transition.Frames(s.Width, s.Height)
		logger.Infof("Transition %d/%d: %d frames", i+1, len(s.Transitions), len(frames))

		for _, frame := range frames {
			frameSettings := s.Render
			if s.ScaleIterations {
				// Deeper frames need a larger iteration budget to keep detail
				frameSettings.Mandelbrot.MaxIterations = mandelbrot.ScaledIterations(baseIterations, frame.Magnification())
			}

			raster, err := render.Render(context.Background(), frame, frameSettings, pal)
			misc.CheckError(err, logger, misc.Fatal)

			path := filepath.Join(runDir, fmt.Sprintf("%d.png", frameNumber))
			misc.CheckError(saveImage(path, raster), logger, misc.Fatal)
			logger.Infof("Saved frame %s [iterations: %d]", path, frameSettings.Mandelbrot.MaxIterations)
			frameNumber++
		}
	}
	logger.Infof("Done generating %d frames", frameNumber-1)

	if s.GenerateMovie {
		misc.CheckError(generateMovie(runDir, s.FrameRate, logger), logger, misc.Error)
	}
}

func startServer(s settings) {
	renderer := server.NewRenderer(server.Settings{ServerAddress: s.ServerAddress})
	misc.CheckError(renderer.Run(), renderer.Logger, misc.Fatal)
	select {}
}

// setupRun creates the directory for this run, copies the settings file
// next to the outputs so the run can be duplicated later, and switches
// logging to a per-run log file.
func setupRun(s settings, settingsFile string) (bslogger.Logger, string) {
	logger := bslogger.NewLogger("Mandelzoom", bslogger.Normal, nil)

	runDir := filepath.Join(s.SavePath, s.RunName)
	if _, err := os.Stat(runDir); os.IsNotExist(err) {
		if err = os.MkdirAll(runDir, os.ModePerm); err != nil {
			logger.Fatalf("Unable to create folder: %s", err)
		}
	}

	fileBytes, err := json.Marshal(s)
	bytesWritten, err := misc.WriteFile(filepath.Join(runDir, filepath.Base(settingsFile)), fileBytes)
	if err != nil || bytesWritten == 0 {
		logger.Fatalf("Unable to make a backup copy of settingsFile: %s", settingsFile)
	}

	logFile, err := os.Create(filepath.Join(runDir, "mandelzoom.log"))
	misc.CheckError(err, logger, misc.Warning)
	logger = bslogger.NewLogger("Mandelzoom", bslogger.Normal, logFile)

	return logger, runDir
}

func saveImage(path string, raster image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create image %s - %s", path, err)
	}
	if err = png.Encode(f, raster); err != nil {
		f.Close()
		return fmt.Errorf("unable to save image %s - %s", path, err)
	}
	return f.Close()
}
