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

var smoothing = []Scenario{
	{
		Name:   "jitter",
		Width:  100,
		Height: 100,
		Script: []string{
			"down 30 30",
			"move 31 31",
			"move 33 28",
			"move 27 32",
			"move 30.5 33.9",
			"up",
		},
		Probes: []Probe{
			{30, 30, red},
			{70, 70, white},
		},
	},
	{
		Name:   "arch",
		Width:  160,
		Height: 120,
		Script: script(
			cmd("size small", "color blue"),
			[]string{"down 20 100", "move 80 20", "move 140 100", "up"},
		),
		Probes: []Probe{
			{20, 100, blue},
			{140, 100, blue},
			{80, 20, white},
			{80, 100, white},
		},
	},
	{
		Name:    "density",
		Width:   200,
		Height:  200,
		Density: 2,
		Script: script(
			cmd("size small"),
			tap(50, 50),
		),
		Probes: []Probe{
			{100, 100, red},
			{115, 100, red},
			{130, 100, white},
			{50, 50, white},
		},
	},
}
