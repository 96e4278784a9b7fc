// seehuhn.de/go/fingerpaint - a finger drawing canvas
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fingerpaint

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/fingerpaint/blur"
	"seehuhn.de/go/fingerpaint/raster"
)

var (
	// ErrNotInitialized is returned by drawing operations on a canvas
	// whose Init method has not been called.
	ErrNotInitialized = errors.New("fingerpaint: canvas not initialized")

	// ErrAlreadyInitialized is returned when Init is called twice.
	ErrAlreadyInitialized = errors.New("fingerpaint: canvas already initialized")

	// ErrInvalidSize is returned by Init for non-positive dimensions.
	ErrInvalidSize = errors.New("fingerpaint: invalid canvas size")

	// ErrInvalidWidth is returned by SetWidth for non-positive widths.
	ErrInvalidWidth = errors.New("fingerpaint: invalid brush width")
)

// Canvas holds the strokes of a drawing, the current paint style and the
// raster buffer the drawing is rendered into.
//
// Coordinates passed to the stroke methods are in device-independent
// units. Density converts these into buffer pixels.
//
// A Canvas is not safe for concurrent use. All methods are expected to be
// called from a single event loop.
type Canvas struct {
	// Density is the number of buffer pixels per device-independent unit.
	// Zero is treated as 1. Changes take effect on the next Render.
	Density float64

	model      *Model
	style      Style
	background color.NRGBA

	buf  *image.RGBA
	ras  *raster.Rasterizer
	mask *blur.Mask
}

// New returns a canvas with the default brush: red, medium width, no
// blur, on a white background. Init must be called before anything can
// be drawn.
func New() *Canvas {
	return &Canvas{
		model:      NewModel(),
		style:      Style{Color: DefaultColor, Width: DefaultWidth},
		background: DefaultBackground,
	}
}

// Init allocates the raster buffer. It must be called exactly once,
// with the pixel dimensions of the display surface.
func (c *Canvas) Init(width, height int) error {
	if c.buf != nil {
		return ErrAlreadyInitialized
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	c.buf = image.NewRGBA(image.Rect(0, 0, width, height))
	c.ras = raster.NewRasterizer(raster.ClipRect(width, height))
	c.mask = &blur.Mask{}

	Logger().Info("canvas initialized", "component", "canvas",
		"width", width, "height", height, "density", c.density())
	return nil
}

// Initialized reports whether Init has been called successfully.
func (c *Canvas) Initialized() bool {
	return c.buf != nil
}

// Bounds returns the pixel bounds of the raster buffer. Before Init the
// rectangle is empty.
func (c *Canvas) Bounds() image.Rectangle {
	if c.buf == nil {
		return image.Rectangle{}
	}
	return c.buf.Rect
}

// Model gives access to the strokes of the drawing.
func (c *Canvas) Model() *Model {
	return c.model
}

// Style returns the current brush style.
func (c *Canvas) Style() Style {
	return c.style
}

// Background returns the current background color.
func (c *Canvas) Background() color.NRGBA {
	return c.background
}

// SetBlur selects between a soft-edged and a normal brush.
func (c *Canvas) SetBlur(soft bool) {
	c.style.SoftEdge = soft
}

// SetWidth sets the brush width.
func (c *Canvas) SetWidth(width float64) error {
	if !(width > 0) {
		return fmt.Errorf("%w: %g", ErrInvalidWidth, width)
	}
	c.style.Width = width
	return nil
}

// SetColor sets the brush color.
func (c *Canvas) SetColor(col color.NRGBA) {
	c.style.Color = col
}

// SetEraser turns the brush into an eraser. Erasing paints with the
// background color; strokes below are covered, not removed.
func (c *Canvas) SetEraser() {
	c.style.Color = c.background
	c.style.Width = EraserWidth
}

// SetBackground changes the color painted below all strokes.
func (c *Canvas) SetBackground(col color.NRGBA) {
	c.background = col
}

// BeginStroke starts a new stroke at (x, y) with a copy of the current
// style.
func (c *Canvas) BeginStroke(x, y float64) error {
	if c.buf == nil {
		Logger().Error("stroke begun before Init", "component", "canvas")
		return ErrNotInitialized
	}
	c.model.Begin(c.style, x, y)
	return nil
}

// ExtendStroke adds a pointer sample to the active stroke, see
// Model.Extend.
func (c *Canvas) ExtendStroke(x, y float64) bool {
	return c.model.Extend(x, y)
}

// FinishStroke completes the active stroke, see Model.Finish.
func (c *Canvas) FinishStroke() bool {
	return c.model.Finish()
}

// Clear removes all strokes, switches the brush back to normal (not
// blurred) and restores the default background. Brush color and width
// are kept.
func (c *Canvas) Clear() {
	c.model.Clear()
	c.style.SoftEdge = false
	c.background = DefaultBackground
}

// Render draws the background and all strokes, in order, into the raster
// buffer and returns the buffer. Each stroke uses the style it was
// created with.
//
// The returned image is owned by the canvas and is overwritten by the
// next call to Render; use Snapshot to obtain an independent copy.
func (c *Canvas) Render() (image.Image, error) {
	if c.buf == nil {
		Logger().Error("render before Init", "component", "canvas")
		return nil, ErrNotInitialized
	}

	fill(c.buf, c.background)
	for _, s := range c.model.strokes {
		c.paint(s)
	}
	return c.buf, nil
}

// Snapshot renders the drawing and returns a copy of the result,
// suitable for export.
func (c *Canvas) Snapshot() (*image.RGBA, error) {
	if _, err := c.Render(); err != nil {
		return nil, err
	}
	img := image.NewRGBA(c.buf.Rect)
	copy(img.Pix, c.buf.Pix)
	return img, nil
}

func (c *Canvas) density() float64 {
	if c.Density > 0 {
		return c.Density
	}
	return 1
}
