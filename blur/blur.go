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

// Package blur softens coverage masks with a Gaussian filter.
//
// This is used for soft-edged brushes: the stroke is first rasterized
// into a Mask, the mask is blurred, and the result is used as the alpha
// channel when the stroke color is composited.
package blur

import (
	"image"
	"math"
	"slices"
	"sync"
)

// Mask is a single channel coverage image with values in [0, 1].
type Mask struct {
	Rect image.Rectangle
	Pix  []float32 // row-major, Rect.Dx() values per row

	tmp []float32
}

// NewMask allocates a zeroed mask covering r.
func NewMask(r image.Rectangle) *Mask {
	m := &Mask{}
	m.Reset(r)
	return m
}

// Reset resizes the mask to r and sets all values to zero.
// The pixel buffer is reused if it is large enough.
func (m *Mask) Reset(r image.Rectangle) {
	r = r.Canon()
	n := r.Dx() * r.Dy()
	m.Rect = r
	m.Pix = slices.Grow(m.Pix[:0], n)[:n]
	clear(m.Pix)
}

// At returns the mask value at pixel (x, y), or 0 outside the mask.
func (m *Mask) At(x, y int) float32 {
	if !(image.Point{X: x, Y: y}).In(m.Rect) {
		return 0
	}
	return m.Pix[(y-m.Rect.Min.Y)*m.Rect.Dx()+x-m.Rect.Min.X]
}

// Row returns the values of scanline y, or nil if y is outside the mask.
func (m *Mask) Row(y int) []float32 {
	if y < m.Rect.Min.Y || y >= m.Rect.Max.Y {
		return nil
	}
	w := m.Rect.Dx()
	off := (y - m.Rect.Min.Y) * w
	return m.Pix[off : off+w]
}

// AddRow merges one scanline of coverage, starting at column xMin, into
// the mask. Values are combined by taking the maximum. Its signature
// matches the emit callbacks of the raster package.
func (m *Mask) AddRow(y, xMin int, coverage []float32) {
	row := m.Row(y)
	if row == nil {
		return
	}
	for i, c := range coverage {
		x := xMin + i - m.Rect.Min.X
		if x < 0 {
			continue
		}
		if x >= len(row) {
			break
		}
		row[x] = max(row[x], c)
	}
}

// SigmaForRadius converts a blur radius into the standard deviation of
// the Gaussian, using the same convention as Android and Skia.
func SigmaForRadius(radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return 0.57735*radius + 0.5
}

// Extent returns how far, in pixels, a blur with the given sigma spreads
// coverage.
func Extent(sigma float64) int {
	if sigma <= 0 {
		return 0
	}
	return int(math.Ceil(3 * sigma))
}

// Gaussian blurs m in place, using a separable kernel with standard
// deviation sigma. Pixels outside the mask are treated as zero.
func Gaussian(m *Mask, sigma float64) {
	w, h := m.Rect.Dx(), m.Rect.Dy()
	if sigma <= 0 || w == 0 || h == 0 {
		return
	}
	k := Kernel(sigma)

	m.tmp = slices.Grow(m.tmp[:0], w*h)[:w*h]
	horizontal(m.tmp, m.Pix, w, h, k)
	vertical(m.Pix, m.tmp, w, h, k)
}

// horizontal convolves every row of src with k and writes to dst.
func horizontal(dst, src []float32, w, h int, k []float32) {
	half := len(k) / 2
	for y := range h {
		in := src[y*w : (y+1)*w]
		out := dst[y*w : (y+1)*w]
		for x := range w {
			var sum float32
			lo := max(0, half-x)
			hi := min(len(k), w-x+half)
			for i := lo; i < hi; i++ {
				sum += k[i] * in[x+i-half]
			}
			out[x] = sum
		}
	}
}

// vertical convolves every column of src with k and writes to dst.
func vertical(dst, src []float32, w, h int, k []float32) {
	half := len(k) / 2
	for y := range h {
		out := dst[y*w : (y+1)*w]
		clear(out)
		lo := max(0, half-y)
		hi := min(len(k), h-y+half)
		for i := lo; i < hi; i++ {
			wt := k[i]
			in := src[(y+i-half)*w : (y+i-half+1)*w]
			for x := range out {
				out[x] += wt * in[x]
			}
		}
		for x, v := range out {
			out[x] = min(v, 1)
		}
	}
}

// Kernel returns a normalized 1D Gaussian kernel for the given standard
// deviation. The kernel has 2·Extent(sigma)+1 taps. Kernels are cached
// and must not be modified.
func Kernel(sigma float64) []float32 {
	key := int(math.Round(sigma * 100))
	kernels.Lock()
	defer kernels.Unlock()
	if k, ok := kernels.m[key]; ok {
		return k
	}
	k := gaussianKernel(sigma)
	if len(kernels.m) >= maxCachedKernels {
		clear(kernels.m)
	}
	kernels.m[key] = k
	return k
}

func gaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1}
	}
	half := Extent(sigma)
	k := make([]float32, 2*half+1)
	var sum float64
	for i := range k {
		x := float64(i - half)
		v := math.Exp(-x * x / (2 * sigma * sigma))
		k[i] = float32(v)
		sum += v
	}
	for i := range k {
		k[i] = float32(float64(k[i]) / sum)
	}
	return k
}

const maxCachedKernels = 32

var kernels = struct {
	sync.Mutex
	m map[int][]float32
}{m: make(map[int][]float32)}
