package server

import (
	"bytes"
	"image"
	"image/png"

	"mandelzoom/misc"
	"mandelzoom/viewport"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/BrugadaSyndrome/multirpc"
)

// Client is the driver side of the render service. It remembers the last
// viewport it asked for, which is the only state a zoom or pan gesture
// needs to derive the next one.
type Client struct {
	client   multirpc.TcpClient
	logger   bslogger.Logger
	viewport viewport.Viewport
}

func NewClient(serverAddress string, start viewport.Viewport) Client {
	return Client{
		client:   multirpc.NewTcpClient(serverAddress, "RenderClient"),
		logger:   bslogger.NewLogger("RenderClient", bslogger.Normal, nil),
		viewport: start,
	}
}

func (c *Client) Connect() error {
	return c.client.Connect()
}

func (c *Client) Disconnect() error {
	return c.client.Disconnect()
}

func (c *Client) Ping() error {
	var present bool
	return c.client.Call("Renderer.Ping", misc.Nothing{}, &present)
}

func (c *Client) Viewport() viewport.Viewport {
	return c.viewport
}

// Zoom magnifies around the current center.
func (c *Client) Zoom(factor float64) {
	c.viewport = c.viewport.Zoom(factor)
}

// ZoomAt recenters on a plane point before zooming, i.e. click-to-zoom.
func (c *Client) ZoomAt(re float64, im float64, factor float64) {
	c.viewport = c.viewport.ZoomAt(re, im, factor)
}

// Pan shifts the view by a pixel delta.
func (c *Client) Pan(dx int, dy int) {
	c.viewport = c.viewport.Pan(dx, dy)
}

// Render asks the server for the current viewport and decodes the reply.
func (c *Client) Render(request Request) (image.Image, error) {
	request.Viewport = c.viewport

	var reply Reply
	if err := c.client.Call("Renderer.Render", request, &reply); err != nil {
		return nil, err
	}
	c.logger.Debugf("Server rendered %s in %s", c.viewport.String(), reply.Elapsed)

	return png.Decode(bytes.NewReader(reply.PNG))
}
