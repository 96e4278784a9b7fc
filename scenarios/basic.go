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

package scenarios

import "seehuhn.de/go/fingerpaint"

var (
	red    = fingerpaint.Red
	blue   = fingerpaint.Blue
	green  = fingerpaint.Green
	yellow = fingerpaint.Yellow
	black  = fingerpaint.Black
	white  = fingerpaint.White
)

var basic = []Scenario{
	{
		Name:   "blue_corner",
		Width:  200,
		Height: 200,
		Script: script(
			cmd("color blue", "size medium"),
			[]string{"down 0 0", "move 10 0", "up"},
		),
		Probes: []Probe{
			{0, 0, blue},
			{5, 5, blue},
			{10, 10, blue},
			{100, 100, white},
			{35, 5, white},
		},
	},
	{
		Name:   "dot",
		Width:  100,
		Height: 100,
		Script: tap(50, 50),
		Probes: []Probe{
			{50, 50, red},
			{40, 60, red},
			{80, 80, white},
		},
	},
	{
		Name:   "line",
		Width:  200,
		Height: 100,
		Script: line(20, 50, 180, 50, 16),
		Probes: []Probe{
			{20, 50, red},
			{100, 35, red},
			{178, 64, red},
			{100, 75, white},
			{100, 20, white},
		},
	},
	{
		Name:   "order",
		Width:  100,
		Height: 100,
		Script: script(
			cmd("size small", "color red"),
			line(10, 50, 90, 50, 8),
			cmd("color blue"),
			line(50, 10, 50, 90, 8),
		),
		Probes: []Probe{
			{50, 50, blue},
			{20, 50, red},
			{50, 20, blue},
			{10, 10, white},
		},
	},
	{
		Name:   "corner",
		Width:  120,
		Height: 120,
		Script: script(
			cmd("size small", "color black"),
			[]string{"down 20 20", "move 100 20", "move 100 100", "up"},
		),
		Probes: []Probe{
			{20, 20, black},
			{55, 20, black},
			{60, 60, white},
		},
	},
}
