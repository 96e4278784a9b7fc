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

// Fpscenes renders all scripted drawing sessions to image files and
// writes a JSON manifest describing them.
//
// Usage:
//
//	fpscenes [-out dir] [-format png|bmp|tiff|pdf]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/fingerpaint/export"
	"seehuhn.de/go/fingerpaint/scenarios"
)

func main() {
	outDir := flag.String("out", "testdata/scenes", "output directory")
	formatName := flag.String("format", "png", "image format")
	flag.Parse()

	format, err := export.ParseFormat(*formatName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	failed, err := run(*outDir, format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d scenarios did not match their probes\n", failed)
		os.Exit(1)
	}
}

type manifest struct {
	Format    export.Format  `json:"format"`
	Scenarios []jsonScenario `json:"scenarios"`
}

type jsonScenario struct {
	Name     string      `json:"name"`
	File     string      `json:"file"`
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Density  float64     `json:"density,omitempty"`
	Script   []string    `json:"script"`
	Probes   []jsonProbe `json:"probes,omitempty"`
	Mismatch []string    `json:"mismatch,omitempty"`
}

type jsonProbe struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color string `json:"color"`
}

// run renders every scenario into dir and returns the number of
// scenarios whose probes did not match.
func run(dir string, format export.Format) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, err
	}

	out := manifest{Format: format}
	failed := 0
	for _, category := range slices.Sorted(maps.Keys(scenarios.All)) {
		for _, sc := range scenarios.All[category] {
			js, err := render(dir, category, sc, format)
			if err != nil {
				return failed, err
			}
			if len(js.Mismatch) > 0 {
				failed++
			}
			out.Scenarios = append(out.Scenarios, js)
		}
	}

	f, err := os.Create(filepath.Join(dir, "scenarios.json"))
	if err != nil {
		return failed, err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(out)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return failed, err
}

func render(dir, category string, sc scenarios.Scenario, format export.Format) (jsonScenario, error) {
	name := category + "_" + sc.Name
	js := jsonScenario{
		Name:    name,
		File:    name + "." + string(format),
		Width:   sc.Width,
		Height:  sc.Height,
		Density: sc.Density,
		Script:  sc.Script,
	}
	for _, p := range sc.Probes {
		js.Probes = append(js.Probes, jsonProbe{
			X:     p.X,
			Y:     p.Y,
			Color: fmt.Sprintf("#%02x%02x%02x%02x", p.Color.R, p.Color.G, p.Color.B, p.Color.A),
		})
	}

	img, err := sc.Run()
	if err != nil {
		return js, err
	}
	js.Mismatch = sc.Check(img)

	f, err := os.Create(filepath.Join(dir, js.File))
	if err != nil {
		return js, err
	}
	err = export.Encode(f, img, format)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return js, err
}
