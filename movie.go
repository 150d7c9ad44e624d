package main

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/BrugadaSyndrome/bslogger"
)

// generateMovie assembles the numbered frames of an animation run into an
// mp4 with ffmpeg. Settings.Verify has already confirmed ffmpeg is on the
// path when GenerateMovie is enabled.
func generateMovie(runDir string, frameRate int, logger bslogger.Logger) error {
	moviePath := filepath.Join(runDir, "zoom.mp4")

	cmd := exec.Command("ffmpeg",
		"-y",
		"-framerate", strconv.Itoa(frameRate),
		"-i", filepath.Join(runDir, "%d.png"),
		"-pix_fmt", "yuv420p",
		moviePath,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logger.Infof("Generating movie %s", moviePath)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg failed - %s: %s", err, stderr.String())
	}
	logger.Infof("Generated movie %s", moviePath)
	return nil
}
