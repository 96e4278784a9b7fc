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

// Package fingerpaint implements a finger drawing canvas.
//
// Touch input is recorded as strokes: quadratic curves through the
// midpoints of successive touch samples, with samples closer than
// TouchTolerance to the previous one ignored. Every stroke keeps the
// color, width and blur setting which were current when it began.
//
// A Canvas renders all strokes, in the order they were drawn, over a
// solid background into a single RGBA buffer. The buffer can be shown on
// a display or copied with Snapshot for export. The eraser is a brush in
// the background color; nothing is ever removed from a drawing except by
// Clear.
//
// The sub-packages provide the pieces around the canvas: raster turns
// geometry into pixel coverage, blur softens stroke edges, gesture maps
// pointer events to stroke operations, command parses brush commands and
// export saves snapshots to files.
package fingerpaint
