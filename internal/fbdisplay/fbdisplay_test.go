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

package fbdisplay

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
	"time"
)

var red = color.RGBA{R: 255, A: 255}

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestShowScales(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 400, 240))
	d := New(dst)
	if w, h := d.Size(); w != 400 || h != 240 {
		t.Fatalf("size %dx%d", w, h)
	}

	src := solid(100, 60, red)
	src.SetRGBA(99, 59, color.RGBA{B: 255, A: 255})
	d.Show(src, time.Now())

	if got := dst.RGBAAt(10, 10); got != red {
		t.Errorf("top left: got %v", got)
	}
	// one source pixel covers a 4x4 block
	if got := dst.RGBAAt(397, 237); got.B != 255 {
		t.Errorf("bottom right: got %v", got)
	}
}

func TestToastExpires(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 400, 240))
	d := New(dst)
	src := solid(400, 240, red)
	t0 := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	if !d.ToastExpiry().IsZero() {
		t.Error("fresh display has a message")
	}
	d.Toast("Drawing saved to Gallery!", t0)
	if got := d.ToastExpiry(); !got.Equal(t0.Add(ToastDuration)) {
		t.Errorf("expiry %v", got)
	}

	d.Show(src, t0.Add(time.Second))
	changed := 0
	for y := 180; y < 240; y++ {
		for x := 0; x < 400; x++ {
			if dst.RGBAAt(x, y) != red {
				changed++
			}
		}
	}
	if changed == 0 {
		t.Error("message not drawn")
	}

	d.Show(src, t0.Add(ToastDuration))
	for y := 0; y < 240; y++ {
		for x := 0; x < 400; x++ {
			if got := dst.RGBAAt(x, y); got != red {
				t.Fatalf("pixel (%d,%d) = %v after expiry", x, y, got)
			}
		}
	}
	if !d.ToastExpiry().IsZero() {
		t.Error("message still set after expiry")
	}
}

type closingImage struct {
	*image.RGBA
	closed bool
}

func (c *closingImage) Close() error {
	c.closed = true
	return nil
}

func TestClose(t *testing.T) {
	dst := &closingImage{RGBA: image.NewRGBA(image.Rect(0, 0, 10, 10))}
	d := New(dst)
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if !dst.closed {
		t.Error("output not closed")
	}

	if err := New(image.NewRGBA(image.Rect(0, 0, 10, 10))).Close(); err != nil {
		t.Error(err)
	}
}

func TestLargeFace(t *testing.T) {
	face := loadFace(40)
	if h := face.Metrics().Height.Ceil(); h < 30 {
		t.Errorf("face height %d", h)
	}
}
