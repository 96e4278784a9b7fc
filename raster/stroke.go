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
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a flattened piece of a stroke, in user space.
type segment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // unit normal, T rotated by +90°
}

func normal(t vec.Vec2) vec.Vec2 { return vec.Vec2{X: -t.Y, Y: t.X} }

// Stroke paints the outline of p, using Width, Cap, Join and MiterLimit.
//
// Finger strokes are open curves; a ClosePath command is treated as a
// line back to the start of the subpath and the result is stroked like an
// open subpath. A subpath which consists of a single point is drawn as a
// dot if Cap is round or square, and not at all for butt caps.
//
// The outline is built from many small polygons: one rectangle per
// flattened segment, one piece per join on the outer side of the corner,
// and the caps. All pieces have the same orientation, so the nonzero
// winding rule paints their union. Overlaps on the inner side of tight
// corners therefore never cancel out.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	r.flatten(p)
	if len(r.runs) == 0 && len(r.dots) == 0 {
		return
	}

	r.outline = r.outline[:0]
	r.polyOffs = r.polyOffs[:0]

	d := r.Width / 2
	for _, pt := range r.dots {
		start := len(r.outline)
		switch r.Cap {
		case graphics.LineCapRound:
			r.addArc(pt, d, vec.Vec2{X: 1}, 2*math.Pi, true)
		case graphics.LineCapSquare:
			r.addSquare(pt, vec.Vec2{X: 1}, d)
		}
		r.closePolygon(start)
	}

	for i := range r.runs {
		r.outlineRun(r.run(i), d)
	}

	r.beginEdges()
	for i, start := range r.polyOffs {
		end := len(r.outline)
		if i+1 < len(r.polyOffs) {
			end = r.polyOffs[i+1]
		}
		poly := r.outline[start:end]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.scan(emit)
}

// closePolygon registers the outline points added since start as one
// polygon, or discards them if they do not enclose any area. The points
// are reordered, if needed, so that every polygon has positive
// orientation.
func (r *Rasterizer) closePolygon(start int) {
	poly := r.outline[start:]
	if len(poly) < 3 {
		r.outline = r.outline[:start]
		return
	}

	var area float64
	for j, a := range poly {
		b := poly[(j+1)%len(poly)]
		area += a.X*b.Y - a.Y*b.X
	}
	switch {
	case area == 0:
		r.outline = r.outline[:start]
		return
	case area < 0:
		slices.Reverse(poly)
	}
	r.polyOffs = append(r.polyOffs, start)
}

// run returns the segments of the i-th flattened subpath.
func (r *Rasterizer) run(i int) []segment {
	end := len(r.segs)
	if i+1 < len(r.runs) {
		end = r.runs[i+1]
	}
	return r.segs[r.runs[i]:end]
}

// flatten converts p into runs of straight segments. Subpaths without
// any segment of positive length, but with at least one drawing command,
// are collected in r.dots.
func (r *Rasterizer) flatten(p *path.Data) {
	r.segs = r.segs[:0]
	r.runs = r.runs[:0]
	r.dots = r.dots[:0]

	var current, start vec.Vec2
	first := 0       // index into segs where the current subpath begins
	open := false    // a subpath has been started
	drawing := false // the subpath has a drawing command

	finish := func() {
		switch {
		case !open || !drawing:
			// a lone MoveTo paints nothing
		case len(r.segs) == first:
			r.dots = append(r.dots, start)
		default:
			r.runs = append(r.runs, first)
		}
		first = len(r.segs)
		drawing = false
	}

	walk(p, func(cmd path.Command, pts []vec.Vec2) {
		if cmd == path.CmdMoveTo {
			finish()
			current, start = pts[0], pts[0]
			open = true
			return
		}
		if !open {
			return
		}
		drawing = true
		switch cmd {
		case path.CmdLineTo:
			r.addSegment(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			r.flattenQuadratic(current, pts[0], pts[1], r.addSegment)
			current = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2], r.addSegment)
			current = pts[2]
		case path.CmdClose:
			r.addSegment(current, start)
			current = start
		}
	})
	finish()
}

// addSegment appends a flattened segment, skipping zero-length ones.
func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	v := b.Sub(a)
	l := v.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := v.Mul(1 / l)
	r.segs = append(r.segs, segment{A: a, B: b, T: t, N: normal(t)})
}

// turn returns the sine of the angle from direction t1 to direction t2.
func turn(t1, t2 vec.Vec2) float64 {
	return t1.X*t2.Y - t1.Y*t2.X
}

// outlineRun appends the polygons of one open run of segments.
func (r *Rasterizer) outlineRun(segs []segment, d float64) {
	first := &segs[0]
	last := &segs[len(segs)-1]

	r.addCap(first.A, first.T.Mul(-1), d)
	for i := range segs {
		s := &segs[i]
		start := len(r.outline)
		r.outline = append(r.outline,
			s.A.Sub(s.N.Mul(d)),
			s.B.Sub(s.N.Mul(d)),
			s.B.Add(s.N.Mul(d)),
			s.A.Add(s.N.Mul(d)),
		)
		r.closePolygon(start)

		if i+1 < len(segs) {
			r.addJoin(s.B, s, &segs[i+1], d)
		}
	}
	r.addCap(last.B, last.T, d)
}

// addCap adds the cap at P as a separate polygon. T points away from the
// stroke, d is half the stroke width.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	start := len(r.outline)
	switch r.Cap {
	case graphics.LineCapRound:
		r.addArc(P, d, normal(T), -math.Pi, true)
	case graphics.LineCapSquare:
		N := normal(T)
		ext := P.Add(T.Mul(d))
		r.outline = append(r.outline,
			P.Sub(N.Mul(d)), ext.Sub(N.Mul(d)), ext.Add(N.Mul(d)), P.Add(N.Mul(d)))
	}
	// butt caps need no extra points
	r.closePolygon(start)
}

// addJoin adds the corner piece at P, where segment s1 ends and s2
// begins. The piece covers the gap between the two segment rectangles on
// the outer side of the corner; on the inner side the rectangles overlap.
func (r *Rasterizer) addJoin(P vec.Vec2, s1, s2 *segment, d float64) {
	sin := turn(s1.T, s2.T)
	cos := s1.T.Dot(s2.T)
	if math.Abs(sin) < collinearityThreshold && cos > 0 {
		return
	}

	// unit normals on the outer side of the corner
	o1, o2 := s1.N, s2.N
	if sin > 0 {
		o1, o2 = o1.Mul(-1), o2.Mul(-1)
	}
	p1, p2 := P.Add(o1.Mul(d)), P.Add(o2.Mul(d))

	start := len(r.outline)
	r.outline = append(r.outline, P)
	switch r.Join {
	case graphics.LineJoinRound:
		// for a full reversal (sin == 0) the arc must pass through the
		// tip, in direction s1.T
		angle := math.Atan2(sin, cos)
		if sin <= 0 && angle > 0 {
			angle = -angle
		}
		r.addArc(P, d, o1, angle, true)

	case graphics.LineJoinMiter:
		r.outline = append(r.outline, p1)
		// the miter length relative to the width is 1/cos(θ/2)
		cosHalf := math.Sqrt(max(0, (1+cos)/2))
		dir := o1.Add(o2)
		if l := dir.Length(); cosHalf > 0 && 1/cosHalf <= r.MiterLimit+1e-10 && l > zeroLengthThreshold {
			r.outline = append(r.outline, P.Add(dir.Mul(d/(cosHalf*l))))
		}
		r.outline = append(r.outline, p2)

	default: // bevel
		r.outline = append(r.outline, p1, p2)
	}
	r.closePolygon(start)
}

// addArc appends points on the circle of the given radius around center.
// The arc starts in direction startDir (a unit vector) and sweeps by the
// given angle in radians. The start point is only added if includeStart
// is set.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		r.deviceDelta(vec.Vec2{X: radius}).Length(),
		r.deviceDelta(vec.Vec2{Y: radius}).Length())

	// A chord spanning angle θ deviates from the circle by
	// radius·(1 - cos(θ/2)); choose θ so that this equals Flatness.
	n := 1
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step <= 0 || math.IsNaN(step) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	i0 := 1
	if includeStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// addSquare adds a square of side 2d around center, aligned with T.
func (r *Rasterizer) addSquare(center, T vec.Vec2, d float64) {
	N := normal(T)
	t, n := T.Mul(d), N.Mul(d)
	r.outline = append(r.outline,
		center.Add(t).Add(n),
		center.Add(t).Sub(n),
		center.Sub(t).Sub(n),
		center.Sub(t).Add(n),
	)
}

const (
	// zeroLengthThreshold is the shortest segment kept by flattening.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the |sin| below which two segments are
	// treated as a straight continuation.
	collinearityThreshold = 1e-6
)
