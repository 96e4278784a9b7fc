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

import (
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"
)

func TestScenarios(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, sc := range All[category] {
			name := category + "_" + sc.Name
			t.Run(name, func(t *testing.T) {
				img, err := sc.Run()
				if err != nil {
					t.Fatal(err)
				}
				if bad := sc.Check(img); len(bad) > 0 {
					_ = writeDebugImage(name, img, sc.Probes)
					t.Error(strings.Join(bad, "; "))
				}
			})
		}
	}
}

var validName = regexp.MustCompile(`^[a-z_]+$`)

func TestNames(t *testing.T) {
	seen := make(map[string]bool)
	for category, list := range All {
		for _, sc := range list {
			name := category + "_" + sc.Name
			if !validName.MatchString(sc.Name) {
				t.Errorf("invalid name %q", name)
			}
			if seen[name] {
				t.Errorf("duplicate name %q", name)
			}
			seen[name] = true
			for _, p := range sc.Probes {
				if !(image.Point{X: p.X, Y: p.Y}).In(image.Rect(0, 0, sc.Width, sc.Height)) {
					t.Errorf("%s: probe (%d,%d) outside the canvas", name, p.X, p.Y)
				}
			}
		}
	}
}

func TestRunErrors(t *testing.T) {
	bad := []Scenario{
		{Name: "size", Width: 0, Height: 10},
		{Name: "command", Width: 10, Height: 10, Script: []string{"color purple"}},
		{Name: "event", Width: 10, Height: 10, Script: []string{"down 1"}},
		{Name: "save", Width: 10, Height: 10, Script: []string{"save"}},
	}
	for _, sc := range bad {
		if _, err := sc.Run(); err == nil {
			t.Errorf("%s: no error", sc.Name)
		}
	}
}

// writeDebugImage stores the rendered image with the probe locations
// marked in magenta, for inspection after a failure.
func writeDebugImage(name string, img *image.RGBA, probes []Probe) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	out := image.NewRGBA(img.Rect)
	copy(out.Pix, img.Pix)
	mark := color.RGBA{R: 255, B: 255, A: 255}
	for _, p := range probes {
		for d := -3; d <= 3; d++ {
			if d == 0 {
				continue
			}
			out.SetRGBA(p.X+d, p.Y, mark)
			out.SetRGBA(p.X, p.Y+d, mark)
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, out)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
