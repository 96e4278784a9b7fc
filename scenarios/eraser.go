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

var eraser = []Scenario{
	{
		Name:   "erase_middle",
		Width:  200,
		Height: 100,
		Script: script(
			cmd("color black", "size small"),
			line(20, 50, 180, 50, 8),
			cmd("eraser"),
			tap(100, 50),
		),
		Probes: []Probe{
			{100, 50, white},
			{100, 41, white},
			{30, 50, black},
			{170, 50, black},
		},
	},
	{
		Name:   "draw_after_erase",
		Width:  200,
		Height: 100,
		Script: script(
			cmd("color black", "size small"),
			line(20, 50, 180, 50, 8),
			cmd("eraser"),
			line(100, 10, 100, 90, 8),
			cmd("color blue", "size small"),
			tap(100, 50),
		),
		Probes: []Probe{
			{100, 50, blue},
			{100, 80, white},
			{30, 50, black},
		},
	},
	{
		Name:   "clear",
		Width:  100,
		Height: 100,
		Script: script(
			cmd("color black", "type blur"),
			line(10, 50, 90, 50, 8),
			cmd("clear", "color green"),
			tap(50, 50),
		),
		Probes: []Probe{
			{50, 50, green},
			{50, 65, green},
			{10, 50, white},
			{90, 50, white},
		},
	},
}
