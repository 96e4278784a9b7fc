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
	"image/color"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TouchTolerance is the minimal movement, in device-independent units
// along either axis, before a new curve segment is recorded.
const TouchTolerance = 4.0

// Stroke is one continuous finger-drawn path. The style is fixed when the
// stroke begins. The geometry grows while the stroke is active and never
// changes once it is finished.
type Stroke struct {
	style    Style
	path     *path.Data
	finished bool
}

// Style returns the style captured when the stroke began.
func (s *Stroke) Style() Style { return s.style }

// Color returns the stroke color.
func (s *Stroke) Color() color.NRGBA { return s.style.Color }

// Width returns the stroke width.
func (s *Stroke) Width() float64 { return s.style.Width }

// SoftEdge reports whether the stroke is drawn with a blurred edge.
func (s *Stroke) SoftEdge() bool { return s.style.SoftEdge }

// Finished reports whether the stroke is complete.
func (s *Stroke) Finished() bool { return s.finished }

// Path returns a copy of the stroke geometry. The path consists of one
// MoveTo, followed by QuadTo segments and, once finished, a final LineTo.
func (s *Stroke) Path() *path.Data {
	return &path.Data{
		Cmds:   slices.Clone(s.path.Cmds),
		Coords: slices.Clone(s.path.Coords),
	}
}

// Segments returns the number of drawing segments, not counting the
// initial MoveTo.
func (s *Stroke) Segments() int {
	return max(len(s.path.Cmds)-1, 0)
}

// geometry gives read-only access to the path without copying.
func (s *Stroke) geometry() *path.Data { return s.path }

// Model is the ordered list of strokes, together with the at most one
// stroke currently being drawn.
//
// The order of the list is the drawing order: later strokes are painted
// on top of earlier ones. Strokes are only ever appended; Clear removes
// all of them at once.
type Model struct {
	strokes []*Stroke

	// active is the stroke being extended, or nil. When non-nil it is
	// also the last element of strokes.
	active *Stroke
	anchor vec.Vec2
}

// NewModel returns an empty stroke model.
func NewModel() *Model {
	return &Model{}
}

// Begin starts a new stroke at (x, y), using a copy of style.
//
// If a stroke is still active, for example because the end of the
// previous gesture was lost, that stroke is finished first.
func (m *Model) Begin(style Style, x, y float64) {
	if m.active != nil {
		Logger().Debug("begin while stroke active, finishing previous stroke",
			"component", "model")
		m.Finish()
	}

	pt := vec.Vec2{X: x, Y: y}
	s := &Stroke{
		style: style,
		path:  (&path.Data{}).MoveTo(pt),
	}
	m.strokes = append(m.strokes, s)
	m.active = s
	m.anchor = pt

	Logger().Debug("stroke begin", "component", "model",
		"index", len(m.strokes)-1, "x", x, "y", y, "width", style.Width)
}

// Extend adds the pointer sample (x, y) to the active stroke.
//
// Samples which moved less than TouchTolerance along both axes since the
// last recorded anchor are ignored. Otherwise a quadratic segment is
// added, with the last anchor as control point and ending half way to the
// new sample; the sample becomes the new anchor. This smooths the stroke
// without keeping a history of points.
//
// Extend reports whether a segment was added. Without an active stroke it
// does nothing.
func (m *Model) Extend(x, y float64) bool {
	if m.active == nil {
		return false
	}

	last := m.anchor
	dx := math.Abs(x - last.X)
	dy := math.Abs(y - last.Y)
	if dx < TouchTolerance && dy < TouchTolerance {
		return false
	}

	mid := vec.Vec2{X: (x + last.X) / 2, Y: (y + last.Y) / 2}
	m.active.path = m.active.path.QuadTo(last, mid)
	m.anchor = vec.Vec2{X: x, Y: y}
	return true
}

// Finish completes the active stroke with a straight segment to the last
// anchor and reports whether there was an active stroke.
//
// The segment ends at the last sample accepted by Extend, not at the
// position where the finger was lifted. A stroke without any accepted
// samples thus ends with a zero-length segment and is drawn as a dot.
func (m *Model) Finish() bool {
	if m.active == nil {
		return false
	}
	s := m.active
	s.path = s.path.LineTo(m.anchor)
	s.finished = true
	m.active = nil

	Logger().Debug("stroke finish", "component", "model",
		"index", len(m.strokes)-1, "segments", s.Segments())
	return true
}

// Active reports whether a stroke is in progress.
func (m *Model) Active() bool {
	return m.active != nil
}

// Clear removes all strokes, including an active one.
func (m *Model) Clear() {
	clear(m.strokes)
	m.strokes = m.strokes[:0]
	m.active = nil
}

// Len returns the number of strokes, including an active one.
func (m *Model) Len() int {
	return len(m.strokes)
}

// Strokes returns the strokes in drawing order. The returned slice is a
// copy; the strokes themselves must be treated as read-only.
func (m *Model) Strokes() []*Stroke {
	return slices.Clone(m.strokes)
}

// Stroke returns the i-th stroke.
func (m *Model) Stroke(i int) *Stroke {
	return m.strokes[i]
}
