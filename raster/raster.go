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

// Package raster converts stroke and fill geometry into anti-aliased
// per-pixel coverage.
//
// Coverage is computed exactly (signed area per pixel), not by
// supersampling. Results are delivered one scanline at a time through an
// emit callback, so the caller decides how coverage is turned into color.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline. Coverage values lie in
// [0, 1] and start at pixel column xMin. The slice is only valid for the
// duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // inverse slope, used for x-intercepts
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// xAt returns the x coordinate of the edge at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasterizer turns paths into coverage values. One instance should be
// reused for many paths: internal buffers grow on demand and are kept for
// later calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip limits output to this device rectangle. The coordinates must
	// be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon which replaces it. Must be positive.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	// Cap is the shape of stroke end points, and of single-point strokes.
	Cap graphics.LineCapStyle

	// Join is the shape of corners between stroke segments.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to the
	// stroke width. Must be at least 1.
	MiterLimit float64

	// smallPathThreshold is the bounding box area (in pixels) below
	// which whole-box buffers are used instead of an active edge list.
	smallPathThreshold int

	cover     []float32 // per pixel change of winding; reused as output
	area      []float32 // per pixel area right of the crossing
	rowUsed   []bool    // rows of the whole-box buffer touched by edges
	edges     []edge
	active    []int
	crossings []float64

	haveBBox bool
	bbXMin   float64
	bbXMax   float64
	bbYMin   float64
	bbYMax   float64

	// stroke geometry, see stroke.go
	segs     []segment
	runs     []int
	dots     []vec.Vec2
	outline  []vec.Vec2
	polyOffs []int
}

// NewRasterizer returns a Rasterizer for the given clip rectangle. The
// CTM is the identity and the stroke parameters describe a one unit
// wide line with round caps and joins.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapRound
	r.Join = graphics.LineJoinRound
	r.MiterLimit = defaultMiterLimit
	r.smallPathThreshold = smallPathThreshold
}

// ClipRect returns a clip rectangle covering a width×height pixel grid
// with the origin in the top-left corner.
func ClipRect(width, height int) rect.Rect {
	return rect.Rect{LLx: 0, LLy: 0, URx: float64(width), URy: float64(height)}
}

// device maps a point from user space to device space.
func (r *Rasterizer) device(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceDelta maps a displacement to device space, ignoring translation.
func (r *Rasterizer) deviceDelta(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// flattenQuadratic replaces the quadratic Bézier curve p0, p1, p2 by line
// segments, calling emit for each of them. The number of segments is
// chosen so that the deviation in device space stays below Flatness.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	// maximal distance between curve and chord is |p0 - 2p1 + p2|/4
	dev := r.deviceDelta(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic replaces a cubic Bézier curve by line segments, using
// Wang's formula for the segment count.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := r.deviceDelta(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.deviceDelta(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// pointsPerCommand gives the number of coordinates each path command
// consumes.
func pointsPerCommand(cmd path.Command) int {
	switch cmd {
	case path.CmdMoveTo, path.CmdLineTo:
		return 1
	case path.CmdQuadTo:
		return 2
	case path.CmdCubeTo:
		return 3
	default:
		return 0
	}
}

// walk calls fn for every command of p together with its coordinates.
func walk(p *path.Data, fn func(cmd path.Command, pts []vec.Vec2)) {
	if p == nil {
		return
	}
	idx := 0
	for _, cmd := range p.Cmds {
		n := pointsPerCommand(cmd)
		if idx+n > len(p.Coords) {
			return // malformed path
		}
		fn(cmd, p.Coords[idx:idx+n])
		idx += n
	}
}

// FillNonZero fills the interior of p, using the nonzero winding rule.
// Open subpaths are closed implicitly.
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.beginEdges()

	var current, start vec.Vec2
	walk(p, func(cmd path.Command, pts []vec.Vec2) {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = pts[0]
			start = current
		case path.CmdLineTo:
			r.addEdge(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			r.flattenQuadratic(current, pts[0], pts[1], r.addEdge)
			current = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2], r.addEdge)
			current = pts[2]
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	})
	if current != start {
		r.addEdge(current, start)
	}

	r.scan(emit)
}

// beginEdges clears the edge list.
func (r *Rasterizer) beginEdges() {
	r.edges = r.edges[:0]
	r.haveBBox = false
}

// addEdge records the user space segment p0→p1 as a device space edge.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	a := r.device(p0)
	b := r.device(p1)

	dy := b.Y - a.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return // horizontal edges do not change the winding number
	}
	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})

	xLo, xHi := min(a.X, b.X), max(a.X, b.X)
	yLo, yHi := min(a.Y, b.Y), max(a.Y, b.Y)
	if !r.haveBBox {
		r.bbXMin, r.bbXMax, r.bbYMin, r.bbYMax = xLo, xHi, yLo, yHi
		r.haveBBox = true
		return
	}
	r.bbXMin = min(r.bbXMin, xLo)
	r.bbXMax = max(r.bbXMax, xHi)
	r.bbYMin = min(r.bbYMin, yLo)
	r.bbYMax = max(r.bbYMax, yHi)
}

// pixelBounds returns the integer bounding box of the collected edges,
// intersected with the clip rectangle.
func (r *Rasterizer) pixelBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if !r.haveBBox || len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bbXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bbYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// scan converts the collected edges into coverage.
func (r *Rasterizer) scan(emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.pixelBounds()
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.scanBox(xMin, xMax, yMin, yMax, emit)
	} else {
		r.scanActive(xMin, xMax, yMin, yMax, emit)
	}
}

// Each pixel keeps two accumulators:
//
//	cover: signed height of the edge pieces inside the pixel column
//	area:  cover weighted by the fraction of the pixel right of the edge
//
// Walking a scanline from the left, the coverage of pixel i is the sum of
// cover over all pixels left of i, plus area[i]. For nonzero filling the
// absolute value is clamped to 1.

// accumulate adds the part of e inside scanline y to cover and area.
// Index 0 of the buffers corresponds to pixel column x0; columns at or
// right of x1 are ignored.
func (r *Rasterizer) accumulate(e *edge, y int, cover, area []float32, x0, x1 int) {
	yTop := max(float64(y), e.top())
	yBot := min(float64(y+1), e.bottom())
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa, xb := e.xAt(yTop), e.xAt(yBot)
	left := int(math.Floor(min(xa, xb)))
	right := int(math.Floor(max(xa, xb)))

	switch {
	case right < x0:
		// fully left of the box: contributes full coverage to the row
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	case left >= x1:
		return
	case left == right:
		r.deposit(e, yTop, yBot, sign, cover, area, x0, x1)
		return
	}

	// Split the edge where it crosses vertical pixel boundaries.
	r.crossings = append(r.crossings[:0], yTop, yBot)
	dydx := 1 / e.dxdy
	for x := left + 1; x <= right; x++ {
		yc := e.y0 + dydx*(float64(x)-e.x0)
		if yc > yTop && yc < yBot {
			r.crossings = append(r.crossings, yc)
		}
	}
	slices.Sort(r.crossings)
	for i := 1; i < len(r.crossings); i++ {
		if r.crossings[i] > r.crossings[i-1] {
			r.deposit(e, r.crossings[i-1], r.crossings[i], sign, cover, area, x0, x1)
		}
	}
}

// deposit adds the contribution of the piece of e between heights yTop
// and yBot, which must lie within a single pixel column.
func (r *Rasterizer) deposit(e *edge, yTop, yBot float64, sign float32, cover, area []float32, x0, x1 int) {
	c := sign * float32(yBot-yTop)
	xMid := e.xAt((yTop + yBot) / 2)
	pix := int(math.Floor(xMid))

	switch {
	case pix < x0:
		cover[0] += c
		area[0] += c
	case pix < x1:
		i := pix - x0
		cover[i] += c
		area[i] += c * float32(1-(xMid-float64(pix)))
	}
}

// integrate turns the accumulators of one scanline into coverage values,
// using the nonzero winding rule. The result overwrites cover.
func integrate(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros strips leading and trailing zeros. If all values are zero,
// nil is returned.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// scanBox rasterizes using accumulation buffers for the whole bounding
// box. This is fastest for small shapes.
func (r *Rasterizer) scanBox(xMin, xMax, yMin, yMax int, emit EmitFunc) {
	w := xMax - xMin
	h := yMax - yMin

	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	r.rowUsed = slices.Grow(r.rowUsed[:0], h)[:h]
	clear(r.cover)
	clear(r.area)
	clear(r.rowUsed)

	for i := range r.edges {
		e := &r.edges[i]
		y0 := max(int(math.Floor(e.top())), yMin)
		y1 := min(int(math.Floor(e.bottom()))+1, yMax)
		for y := y0; y < y1; y++ {
			row := y - yMin
			off := row * w
			r.accumulate(e, y, r.cover[off:off+w], r.area[off:off+w], xMin, xMax)
			r.rowUsed[row] = true
		}
	}

	for row := range h {
		if !r.rowUsed[row] {
			continue
		}
		off := row * w
		line := r.cover[off : off+w]
		integrate(line, r.area[off:off+w])
		if trimmed, lo := trimZeros(line); trimmed != nil {
			emit(yMin+row, xMin+lo, trimmed)
		}
	}
}

// scanActive rasterizes one scanline at a time, keeping a list of the
// edges which intersect the current line. Memory use is proportional to
// the width of the shape.
func (r *Rasterizer) scanActive(xMin, xMax, yMin, yMax int, emit EmitFunc) {
	w := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(r.edges) && r.edges[next].top() < yf+1 {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.bottom() <= yf {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			r.accumulate(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area)
		if trimmed, lo := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+lo, trimmed)
		}
	}
}

const (
	// defaultFlatness is well below what is visible on a phone screen.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and Android.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which still contributes coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold selects between the two scan strategies.
	smallPathThreshold = 65536
)
