package render

import "image"

// splitTiles cuts bounds into tiles of at most tileWidth x tileHeight.
// Tiles at the right and bottom edges are smaller when bounds does not
// divide evenly. Together the tiles cover every pixel exactly once, which
// is what lets workers write into the shared raster without locking.
func splitTiles(bounds image.Rectangle, tileWidth int, tileHeight int) []image.Rectangle {
	width := bounds.Dx()
	height := bounds.Dy()

	tiles := make([]image.Rectangle, 0, ((width+tileWidth-1)/tileWidth)*((height+tileHeight-1)/tileHeight))
	for oy := 0; oy < height; oy += tileHeight {
		th := tileHeight
		if oy+th > height {
			th = height - oy
		}
		for ox := 0; ox < width; ox += tileWidth {
			tw := tileWidth
			if ox+tw > width {
				tw = width - ox
			}
			tiles = append(tiles, image.Rect(
				bounds.Min.X+ox,
				bounds.Min.Y+oy,
				bounds.Min.X+ox+tw,
				bounds.Min.Y+oy+th,
			))
		}
	}
	return tiles
}
