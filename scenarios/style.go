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

var style = []Scenario{
	{
		Name:   "sizes",
		Width:  400,
		Height: 400,
		Script: script(
			cmd("size small"),
			line(60, 50, 340, 50, 14),
			cmd("size medium"),
			line(60, 120, 340, 120, 14),
			cmd("size big"),
			line(60, 210, 340, 210, 14),
			cmd("size very-big"),
			line(60, 330, 340, 330, 14),
		),
		Probes: []Probe{
			{200, 50, red},
			{200, 41, red},
			{200, 36, white},
			{200, 102, red},
			{200, 96, white},
			{200, 182, red},
			{200, 260, white},
			{200, 282, red},
			{200, 378, red},
			{200, 385, white},
		},
	},
	{
		Name:   "colors",
		Width:  300,
		Height: 60,
		Script: script(
			cmd("size small", "color red"), tap(30, 30),
			cmd("color blue"), tap(90, 30),
			cmd("color green"), tap(150, 30),
			cmd("color yellow"), tap(210, 30),
			cmd("color black"), tap(270, 30),
		),
		Probes: []Probe{
			{30, 30, red},
			{90, 30, blue},
			{150, 30, green},
			{210, 30, yellow},
			{270, 30, black},
			{60, 30, white},
			{240, 5, white},
		},
	},
	{
		Name:   "blur",
		Width:  120,
		Height: 120,
		Script: script(
			cmd("color black", "type blur"),
			line(60, 20, 60, 100, 8),
		),
		Probes: []Probe{
			{60, 60, black},
			{5, 60, white},
			{115, 60, white},
		},
	},
	{
		Name:   "blur_then_normal",
		Width:  200,
		Height: 100,
		Script: script(
			cmd("color blue", "type blur"),
			tap(50, 50),
			cmd("type normal"),
			line(120, 50, 180, 50, 6),
		),
		Probes: []Probe{
			{50, 95, white},
			{150, 50, blue},
			{150, 69, blue},
			{150, 75, white},
		},
	},
}
