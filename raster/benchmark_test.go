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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// BenchmarkFillO benchmarks our rasterizer drawing an "O" shape.
func BenchmarkFillO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := ClipRect(size, size)
			r := NewRasterizer(clip)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			center := float64(size) / 2
			oPath := addCircle(&path.Data{}, center, center, float64(size)*0.45, false)
			oPath = addCircle(oPath, center, center, float64(size)*0.30, true)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(clip)
				r.FillNonZero(oPath, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing the same "O" shape.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, outerR, false)
				addCircleToVector(r, center, center, innerR, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeScribble measures a finger stroke made of many short
// quadratic segments, as produced by pointer tracking.
func BenchmarkStrokeScribble(b *testing.B) {
	const size = 800
	clip := ClipRect(size, size)
	r := NewRasterizer(clip)

	p := (&path.Data{}).MoveTo(vec.Vec2{X: 100, Y: 400})
	last := vec.Vec2{X: 100, Y: 400}
	for i := 1; i <= 200; i++ {
		x := 100 + 3*float64(i)
		y := 400 + 150*float64((i%40)-20)/20
		mid := vec.Vec2{X: (x + last.X) / 2, Y: (y + last.Y) / 2}
		p = p.QuadTo(last, mid)
		last = vec.Vec2{X: x, Y: y}
	}
	p = p.LineTo(last)

	emit := func(y, xMin int, coverage []float32) {}

	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		r.Reset(clip)
		r.Width = 40
		r.Stroke(p, emit)
	}
}

// addCircle appends a circle made of four cubic Bézier curves.
func addCircle(p *path.Data, cx, cy, r float64, clockwise bool) *path.Data {
	// magic number for circular arc approximation with cubic Bézier
	const k = 0.5522847498
	kr := k * r
	s := 1.0
	if clockwise {
		s = -1
	}

	return p.MoveTo(vec.Vec2{X: cx, Y: cy - r}).
		CubeTo(vec.Vec2{X: cx + s*kr, Y: cy - r}, vec.Vec2{X: cx + s*r, Y: cy - kr}, vec.Vec2{X: cx + s*r, Y: cy}).
		CubeTo(vec.Vec2{X: cx + s*r, Y: cy + kr}, vec.Vec2{X: cx + s*kr, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}).
		CubeTo(vec.Vec2{X: cx - s*kr, Y: cy + r}, vec.Vec2{X: cx - s*r, Y: cy + kr}, vec.Vec2{X: cx - s*r, Y: cy}).
		CubeTo(vec.Vec2{X: cx - s*r, Y: cy - kr}, vec.Vec2{X: cx - s*kr, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}).
		Close()
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius
	s := float32(1)
	if clockwise {
		s = -1
	}

	r.MoveTo(cx, cy-radius)
	r.CubeTo(cx+s*kr, cy-radius, cx+s*radius, cy-kr, cx+s*radius, cy)
	r.CubeTo(cx+s*radius, cy+kr, cx+s*kr, cy+radius, cx, cy+radius)
	r.CubeTo(cx-s*kr, cy+radius, cx-s*radius, cy+kr, cx-s*radius, cy)
	r.CubeTo(cx-s*radius, cy-kr, cx-s*kr, cy-radius, cx, cy-radius)
	r.ClosePath()
}
