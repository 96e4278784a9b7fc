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

package config

import (
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/fingerpaint/export"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv(t *testing.T) {
	c, err := FromEnv(env(map[string]string{
		EnvFramebuffer: "/dev/fb1",
		EnvGallery:     "/tmp/art",
		EnvFormat:      "TIFF",
		EnvDensity:     "2.5",
		EnvDebug:       "true",
	}))
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Framebuffer: "/dev/fb1",
		Touch:       Default().Touch,
		Gallery:     "/tmp/art",
		Format:      export.TIFF,
		Density:     2.5,
		Debug:       true,
	}
	if c != want {
		t.Errorf("got %+v, expected %+v", c, want)
	}
}

func TestFromEnvErrors(t *testing.T) {
	cases := map[string]string{
		EnvFormat:  "gif",
		EnvDensity: "lots",
		EnvDebug:   "sometimes",
	}
	for name, value := range cases {
		_, err := FromEnv(env(map[string]string{name: value}))
		if err == nil {
			t.Errorf("%s=%s accepted", name, value)
			continue
		}
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error does not name %s: %v", name, err)
		}
	}
	if _, err := FromEnv(env(map[string]string{EnvDensity: "-1"})); err == nil {
		t.Error("negative density accepted")
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	e := env(map[string]string{EnvFormat: "bmp", EnvDensity: "2"})
	c, err := Load("test", []string{"-format", "pdf", "-gallery", "out", "-debug"}, e)
	if err != nil {
		t.Fatal(err)
	}
	if c.Format != export.PDF || c.Gallery != "out" || !c.Debug || c.Density != 2 {
		t.Errorf("unexpected config %+v", c)
	}

	if _, err := Load("test", []string{"-density", "0"}, e); err == nil {
		t.Error("zero density accepted")
	}
	if _, err := Load("test", []string{"-format", "gif"}, e); err == nil {
		t.Error("unknown format accepted")
	}
}

func TestLoggerFile(t *testing.T) {
	c := Default()
	c.LogFile = filepath.Join(t.TempDir(), "paint.log")
	c.Debug = true
	logger, closeLog, err := c.Logger()
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("hello", "component", "test")
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}
}
