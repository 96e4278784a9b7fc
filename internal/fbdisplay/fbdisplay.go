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

// Package fbdisplay shows the drawing on a Linux framebuffer, together
// with short status messages.
package fbdisplay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"sync"
	"time"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/fingerpaint"
)

// ToastDuration is how long a status message stays on screen.
const ToastDuration = 2 * time.Second

var (
	toastBackground = color.RGBA{R: 0x32, G: 0x32, B: 0x32, A: 0xe0}
	toastForeground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Display composes the canvas image and the current status message and
// copies the result to the output device.
type Display struct {
	dst   draw.Image
	close func() error
	face  font.Face
	frame *image.RGBA

	mu         sync.Mutex
	toast      string
	toastUntil time.Time
}

// Open opens the framebuffer device at path.
func Open(path string) (*Display, error) {
	dev, err := fb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fbdisplay: %w", err)
	}
	b := dev.Bounds()
	fingerpaint.Logger().Info("framebuffer open",
		"component", "fb", "path", path, "width", b.Dx(), "height", b.Dy())

	d := New(dev)
	d.close = func() error {
		dev.Close()
		return nil
	}
	return d, nil
}

// New returns a Display which draws into dst. If dst implements
// io.Closer, Close closes it.
func New(dst draw.Image) *Display {
	d := &Display{
		dst:   dst,
		face:  loadFace(dst.Bounds().Dy() / 24),
		frame: image.NewRGBA(dst.Bounds()),
	}
	if c, ok := dst.(io.Closer); ok {
		d.close = c.Close
	}
	return d
}

// Size returns the size of the output in pixels.
func (d *Display) Size() (width, height int) {
	b := d.dst.Bounds()
	return b.Dx(), b.Dy()
}

// Toast shows msg for ToastDuration, starting at now.
func (d *Display) Toast(msg string, now time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.toast = msg
	d.toastUntil = now.Add(ToastDuration)
}

// ToastExpiry returns the time when the current message disappears, or
// the zero time if no message is shown.
func (d *Display) ToastExpiry() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.toast == "" {
		return time.Time{}
	}
	return d.toastUntil
}

// Show draws img, scaled to the output size, with the status message on
// top if it has not yet expired at time now.
func (d *Display) Show(img image.Image, now time.Time) {
	d.mu.Lock()
	if d.toast != "" && !now.Before(d.toastUntil) {
		d.toast = ""
	}
	msg := d.toast
	d.mu.Unlock()

	fr := d.frame.Bounds()
	if img.Bounds().Size() == fr.Size() {
		draw.Draw(d.frame, fr, img, img.Bounds().Min, draw.Src)
	} else {
		xdraw.NearestNeighbor.Scale(d.frame, fr, img, img.Bounds(), xdraw.Src, nil)
	}
	if msg != "" {
		drawToast(d.frame, msg, d.face)
	}
	draw.Draw(d.dst, d.dst.Bounds(), d.frame, fr.Min, draw.Src)
}

// Close closes the output device.
func (d *Display) Close() error {
	if d.close == nil {
		return nil
	}
	return d.close()
}

// loadFace returns the Go Regular font at the given pixel size, or a
// fixed bitmap font if that fails.
func loadFace(px int) font.Face {
	log := fingerpaint.Logger().With("component", "fb")
	if px < 13 {
		return basicfont.Face7x13
	}

	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Error("font parse failed, using basicfont", "error", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Error("font face create failed, using basicfont", "error", err)
		return basicfont.Face7x13
	}
	return face
}

// drawToast draws msg in a box, horizontally centred near
// the bottom of img.
func drawToast(img *image.RGBA, msg string, face font.Face) {
	b := img.Bounds()
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(toastForeground),
		Face: face,
	}
	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	textWidth := drawer.MeasureString(msg).Ceil()
	pad := (ascent + descent) / 2

	boxW := textWidth + 2*pad
	boxH := ascent + descent + 2*pad
	x0 := b.Min.X + (b.Dx()-boxW)/2
	y0 := b.Max.Y - boxH - b.Dy()/10
	box := image.Rect(x0, y0, x0+boxW, y0+boxH).Intersect(b)
	draw.Draw(img, box, image.NewUniform(toastBackground), image.Point{}, draw.Over)

	drawer.Dot = fixed.P(x0+pad, y0+pad+ascent)
	drawer.DrawString(msg)
}
