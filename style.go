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

import "image/color"

// Style is the paint style of a stroke. A copy of the current style is
// stored in every stroke when it begins.
type Style struct {
	Color    color.NRGBA
	Width    float64 // in device-independent units
	SoftEdge bool
}

// Brush widths offered by the size menu.
const (
	WidthSmall   = 20.0
	WidthMedium  = 40.0
	WidthBig     = 60.0
	WidthVeryBig = 100.0

	// EraserWidth is the width set by SetEraser.
	EraserWidth = WidthBig
)

// Brush colors offered by the color menu.
var (
	Red    = color.NRGBA{R: 0xFF, A: 0xFF}
	Blue   = color.NRGBA{B: 0xFF, A: 0xFF}
	Green  = color.NRGBA{G: 0xFF, A: 0xFF}
	Yellow = color.NRGBA{R: 0xFF, G: 0xFF, A: 0xFF}
	Black  = color.NRGBA{A: 0xFF}
	White  = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Defaults used by a new canvas.
var (
	DefaultColor      = Red
	DefaultBackground = White
)

// DefaultWidth is the brush width of a new canvas.
const DefaultWidth = WidthMedium

// BlurRadius is the radius of the blur applied to soft-edged strokes, in
// device-independent units.
const BlurRadius = 10.0

// ColorPreset is a named brush color.
type ColorPreset struct {
	Name  string
	Color color.NRGBA
}

// WidthPreset is a named brush width.
type WidthPreset struct {
	Name  string
	Width float64
}

// ColorPresets lists the brush colors in menu order.
var ColorPresets = []ColorPreset{
	{"red", Red},
	{"blue", Blue},
	{"green", Green},
	{"yellow", Yellow},
	{"black", Black},
}

// WidthPresets lists the brush widths in menu order.
var WidthPresets = []WidthPreset{
	{"small", WidthSmall},
	{"medium", WidthMedium},
	{"big", WidthBig},
	{"very-big", WidthVeryBig},
}

// LookupColor returns the preset color with the given name.
func LookupColor(name string) (color.NRGBA, bool) {
	for _, p := range ColorPresets {
		if p.Name == name {
			return p.Color, true
		}
	}
	return color.NRGBA{}, false
}

// LookupWidth returns the preset width with the given name.
func LookupWidth(name string) (float64, bool) {
	for _, p := range WidthPresets {
		if p.Name == name {
			return p.Width, true
		}
	}
	return 0, false
}
