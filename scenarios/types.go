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

// Package scenarios contains scripted drawing sessions. They are used
// by the tests and by the fpscenes command, which renders all of them to
// image files.
package scenarios

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"seehuhn.de/go/fingerpaint"
	"seehuhn.de/go/fingerpaint/command"
	"seehuhn.de/go/fingerpaint/gesture"
)

// Scenario defines a single scripted drawing session.
type Scenario struct {
	Name    string   // lowercase a-z and _ only
	Width   int      // canvas width in pixels
	Height  int      // canvas height in pixels
	Density float64  // pixels per unit (zero means 1)
	Script  []string // gesture events and style commands, one per line
	Probes  []Probe  // expected pixel colors after rendering
}

// Probe is a pixel with a known color in the rendered image.
type Probe struct {
	X, Y  int
	Color color.NRGBA
}

// Run plays the script on a new canvas and returns the rendered image.
// Lines starting with "down", "move" or "up" are gesture events, all
// other lines are style commands. Saving is not possible from a script.
func (s Scenario) Run() (*image.RGBA, error) {
	c := fingerpaint.New()
	c.Density = s.Density
	if err := c.Init(s.Width, s.Height); err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}
	d := &gesture.Dispatcher{Target: c}

	for i, text := range s.Script {
		var err error
		switch word, _, _ := strings.Cut(strings.TrimSpace(text), " "); word {
		case "down", "move", "up":
			var ev gesture.Event
			if ev, err = gesture.ParseEvent(text); err == nil {
				err = d.Handle(ev)
			}
		default:
			var sc command.Command
			if sc, err = command.Parse(text); err == nil {
				_, err = sc.Apply(c, nil)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", s.Name, i+1, err)
		}
	}

	return c.Snapshot()
}

// Check compares img against the probes and returns a description of
// every mismatch.
func (s Scenario) Check(img *image.RGBA) []string {
	var bad []string
	for _, p := range s.Probes {
		got := color.NRGBAModel.Convert(img.At(p.X, p.Y)).(color.NRGBA)
		if got != p.Color {
			bad = append(bad, fmt.Sprintf("pixel (%d,%d): got %v, expected %v",
				p.X, p.Y, got, p.Color))
		}
	}
	return bad
}

// line is a helper which returns the script lines of a straight finger
// movement.
func line(x0, y0, x1, y1 float64, n int) []string {
	return events(gesture.Line(x0, y0, x1, y1, n))
}

// tap is a helper which returns the script lines of a single touch.
func tap(x, y float64) []string {
	return events(gesture.Tap(x, y))
}

func events(evs []gesture.Event) []string {
	lines := make([]string, len(evs))
	for i, ev := range evs {
		lines[i] = ev.String()
	}
	return lines
}

// script joins groups of script lines.
func script(groups ...[]string) []string {
	var lines []string
	for _, g := range groups {
		lines = append(lines, g...)
	}
	return lines
}

// cmd is a helper for a group consisting of style commands only.
func cmd(lines ...string) []string {
	return lines
}
