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
	"image"
	"image/color"
	"image/draw"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/fingerpaint/blur"
	"seehuhn.de/go/fingerpaint/raster"
)

// fill sets every pixel of img to col.
func fill(img *image.RGBA, col color.NRGBA) {
	draw.Draw(img, img.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// paint rasterizes one stroke and composites it onto the buffer.
func (c *Canvas) paint(s *Stroke) {
	d := c.density()
	r := c.ras
	r.Reset(raster.ClipRect(c.buf.Rect.Dx(), c.buf.Rect.Dy()))
	r.CTM = matrix.Scale(d, d)
	r.Width = s.style.Width

	if !s.style.SoftEdge {
		r.Stroke(s.geometry(), func(y, xMin int, coverage []float32) {
			blendRow(c.buf, y, xMin, coverage, s.style.Color)
		})
		return
	}

	sigma := blur.SigmaForRadius(BlurRadius * d)
	box := deviceBounds(s.geometry(), d, s.style.Width*d/2+float64(blur.Extent(sigma))+1)
	box = box.Intersect(c.buf.Rect)
	if box.Empty() {
		return
	}
	c.mask.Reset(box)
	r.Stroke(s.geometry(), c.mask.AddRow)
	blur.Gaussian(c.mask, sigma)
	for y := box.Min.Y; y < box.Max.Y; y++ {
		blendRow(c.buf, y, box.Min.X, c.mask.Row(y), s.style.Color)
	}
}

// blendRow composites col onto one row of img using "source over", with
// the per-pixel coverage scaling the source alpha.
func blendRow(img *image.RGBA, y, xMin int, coverage []float32, col color.NRGBA) {
	if y < img.Rect.Min.Y || y >= img.Rect.Max.Y {
		return
	}
	ca := float32(col.A) / 255
	sr, sg, sb := float32(col.R), float32(col.G), float32(col.B)
	for i, cov := range coverage {
		x := xMin + i
		if x < img.Rect.Min.X {
			continue
		}
		if x >= img.Rect.Max.X {
			break
		}
		a := min(cov, 1) * ca
		if a <= 0 {
			continue
		}
		off := img.PixOffset(x, y)
		p := img.Pix[off : off+4 : off+4]
		ia := 1 - a
		p[0] = uint8(sr*a + float32(p[0])*ia + 0.5)
		p[1] = uint8(sg*a + float32(p[1])*ia + 0.5)
		p[2] = uint8(sb*a + float32(p[2])*ia + 0.5)
		p[3] = uint8(255*a + float32(p[3])*ia + 0.5)
	}
}

// deviceBounds returns the pixel rectangle covering all points of p,
// scaled by density and grown by margin pixels on every side. Since a
// Bézier curve lies within the hull of its control points, this covers
// the whole stroke if margin is at least half the stroke width.
func deviceBounds(p *path.Data, density, margin float64) image.Rectangle {
	if len(p.Coords) == 0 {
		return image.Rectangle{}
	}
	xMin, yMin := math.Inf(1), math.Inf(1)
	xMax, yMax := math.Inf(-1), math.Inf(-1)
	for _, pt := range p.Coords {
		xMin = min(xMin, pt.X)
		xMax = max(xMax, pt.X)
		yMin = min(yMin, pt.Y)
		yMax = max(yMax, pt.Y)
	}
	return image.Rect(
		int(math.Floor(xMin*density-margin)),
		int(math.Floor(yMin*density-margin)),
		int(math.Ceil(xMax*density+margin)),
		int(math.Ceil(yMax*density+margin)),
	)
}
