// Package server exposes the renderer to remote zoom and interaction
// drivers over tcp rpc. The service renders locally and hands back encoded
// rasters; it does not farm pixel work out to other machines.
package server

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"time"

	"mandelzoom/misc"
	"mandelzoom/palette"
	"mandelzoom/render"
	"mandelzoom/viewport"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/BrugadaSyndrome/multirpc"
)

// Request carries everything one render pass needs. The server keeps no
// state between requests; a driver zooms by deriving a new viewport and
// asking again.
type Request struct {
	Palette  palette.Settings
	Settings render.Settings
	Viewport viewport.Viewport
}

type Reply struct {
	PNG     []byte
	Elapsed time.Duration
}

type Renderer struct {
	rendersServed int
	server        multirpc.TcpServer
	settings      Settings

	Logger bslogger.Logger
}

func NewRenderer(settings Settings) *Renderer {
	renderer := &Renderer{
		Logger:   bslogger.NewLogger("RenderServer", bslogger.Normal, nil),
		settings: settings,
	}
	misc.CheckError(settings.Verify(), renderer.Logger, misc.Fatal)
	renderer.settings = settings
	renderer.server = multirpc.NewTcpServer(renderer, renderer.settings.ServerAddress, "RenderServer")
	return renderer
}

func (r *Renderer) Run() error {
	r.Logger.Infof("Serving renders at %s", r.settings.ServerAddress)
	return r.server.Run()
}

func (r *Renderer) Stop() error {
	r.Logger.Infof("Served %d renders", r.rendersServed)
	return r.server.Stop()
}

// Render runs one full render pass for the requested viewport and returns
// the raster png encoded. Invalid viewports and iteration budgets come back
// as rpc errors before any pixel work happens.
func (r *Renderer) Render(request Request, reply *Reply) error {
	pal, err := request.Palette.Build()
	if err != nil {
		return err
	}

	startTime := time.Now()
	raster, err := render.Render(context.Background(), request.Viewport, request.Settings, pal)
	if err != nil {
		r.Logger.Errorf("Render for %s failed: %s", request.Viewport.String(), err)
		return err
	}

	var buffer bytes.Buffer
	if err := png.Encode(&buffer, raster); err != nil {
		return fmt.Errorf("unable to encode raster - %s", err)
	}

	reply.PNG = buffer.Bytes()
	reply.Elapsed = time.Since(startTime)
	r.rendersServed++
	r.Logger.Infof("Rendered %s in %s", request.Viewport.String(), reply.Elapsed)
	return nil
}

func (r *Renderer) Ping(request misc.Nothing, reply *bool) error {
	*reply = true
	return nil
}
