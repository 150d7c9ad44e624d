package render

import (
	"context"
	"image"
	"image/color"
	"sync"
	"time"

	"mandelzoom/mandelbrot"
	"mandelzoom/palette"
	"mandelzoom/viewport"

	"github.com/BrugadaSyndrome/bslogger"
)

// Render evaluates every pixel of the viewport and returns the finished
// raster. The pixel grid is split into tiles handed to a pool of workers;
// each worker writes only into its own tiles' disjoint pixel rectangles, so
// the shared raster needs no locking. The context is checked between tiles
// only, which is cheap enough to abandon an in-flight render when a zoom or
// pan supersedes it; a cancelled render returns the context's error and no
// raster.
//
// Rendering a zoomed or panned view is just calling Render again with the
// derived viewport. Nothing is retained between passes.
func Render(ctx context.Context, vp viewport.Viewport, settings Settings, pal palette.Palette) (*image.RGBA, error) {
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	if err := settings.Verify(); err != nil {
		return nil, err
	}

	logger := bslogger.NewLogger("Render", bslogger.Normal, nil)
	startTime := time.Now()

	r := renderer{
		mandelbrot: mandelbrot.NewMandelbrot(settings.Mandelbrot),
		offsets:    subPixelOffsets(settings.SuperSampling),
		palette:    pal,
		raster:     image.NewRGBA(image.Rect(0, 0, vp.Width, vp.Height)),
		viewport:   vp,
	}

	tiles := splitTiles(r.raster.Bounds(), settings.TileWidth, settings.TileHeight)
	tilesTodo := make(chan image.Rectangle, len(tiles))
	for _, tile := range tiles {
		tilesTodo <- tile
	}
	close(tilesTodo)

	wait := &sync.WaitGroup{}
	for w := 0; w < settings.Workers; w++ {
		wait.Add(1)
		go func() {
			defer wait.Done()
			for tile := range tilesTodo {
				select {
				case <-ctx.Done():
					return
				default:
				}
				r.renderTile(tile)
			}
		}()
	}
	wait.Wait()

	if err := ctx.Err(); err != nil {
		logger.Debugf("Abandoned render of %s after %s", vp.String(), time.Since(startTime))
		return nil, err
	}

	logger.Debugf("Rendered %s with %d tiles in %s", vp.String(), len(tiles), time.Since(startTime))
	return r.raster, nil
}

type renderer struct {
	mandelbrot mandelbrot.Mandelbrot
	offsets    []float64
	palette    palette.Palette
	raster     *image.RGBA
	viewport   viewport.Viewport
}

func (r *renderer) renderTile(tile image.Rectangle) {
	for row := tile.Min.Y; row < tile.Max.Y; row++ {
		for column := tile.Min.X; column < tile.Max.X; column++ {
			r.raster.SetRGBA(column, row, r.pixelColor(column, row))
		}
	}
}

func (r *renderer) pixelColor(column int, row int) color.RGBA {
	if len(r.offsets) == 1 {
		x, y := r.viewport.PixelToComplex(column, row)
		return r.palette.Colorize(r.mandelbrot.EscapeTime(x, y))
	}

	// Grid super sampling: evaluate each sub pixel and average the colors
	var red, green, blue int
	for _, sy := range r.offsets {
		for _, sx := range r.offsets {
			x, y := r.viewport.PointAt(float64(column)+sx, float64(row)+sy)
			sample := r.palette.Colorize(r.mandelbrot.EscapeTime(x, y))
			red += int(sample.R)
			green += int(sample.G)
			blue += int(sample.B)
		}
	}
	divisor := len(r.offsets) * len(r.offsets)
	return color.RGBA{
		R: uint8(red / divisor),
		G: uint8(green / divisor),
		B: uint8(blue / divisor),
		A: 255,
	}
}

// subPixelOffsets spreads n sample positions evenly across a pixel,
// centered on zero.
func subPixelOffsets(superSampling int) []float64 {
	offsets := make([]float64, superSampling)
	if superSampling > 1 {
		for i := 0; i < superSampling; i++ {
			offsets[i] = ((0.5 + float64(i)) / float64(superSampling)) - 0.5
		}
	}
	return offsets
}
