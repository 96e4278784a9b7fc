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

// Package config holds the settings of the fingerpaint programs. Values
// come from environment variables and can be overridden by command line
// flags.
package config

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"seehuhn.de/go/fingerpaint/export"
)

// Environment variables read by FromEnv.
const (
	EnvFramebuffer = "FINGERPAINT_FB"
	EnvTouch       = "FINGERPAINT_TOUCH"
	EnvGallery     = "FINGERPAINT_GALLERY"
	EnvFormat      = "FINGERPAINT_FORMAT"
	EnvDensity     = "FINGERPAINT_DENSITY"
	EnvDebug       = "FINGERPAINT_DEBUG"
)

// Config contains the settings shared by the device and desktop hosts.
type Config struct {
	Framebuffer string        // framebuffer device
	Touch       string        // evdev device, or a glob pattern
	Gallery     string        // directory for saved drawings
	Format      export.Format // file format for saved drawings
	Density     float64       // pixels per device-independent unit
	Debug       bool          // log at debug level
	LogFile     string        // write the log here instead of stderr
}

// Default returns the built-in settings.
func Default() Config {
	gallery := "Pictures"
	if home, err := os.UserHomeDir(); err == nil {
		gallery = filepath.Join(home, "Pictures", "fingerpaint")
	}
	return Config{
		Framebuffer: "/dev/fb0",
		Touch:       "/dev/input/event*",
		Gallery:     gallery,
		Format:      export.PNG,
		Density:     1,
	}
}

// FromEnv returns the default settings, modified by the environment
// variables which are set. Invalid values are reported as errors naming
// the variable.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	c := Default()

	if v := getenv(EnvFramebuffer); v != "" {
		c.Framebuffer = v
	}
	if v := getenv(EnvTouch); v != "" {
		c.Touch = v
	}
	if v := getenv(EnvGallery); v != "" {
		c.Gallery = v
	}
	if v := getenv(EnvFormat); v != "" {
		f, err := export.ParseFormat(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvFormat, err)
		}
		c.Format = f
	}
	if v := getenv(EnvDensity); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a number (got %q): %w", EnvDensity, v, err)
		}
		if !(d > 0) {
			return Config{}, fmt.Errorf("%s must be positive (got %q)", EnvDensity, v)
		}
		c.Density = d
	}
	if v := getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDebug, v, err)
		}
		c.Debug = b
	}
	return c, nil
}

// RegisterFlags adds command line flags for all settings to fs. The
// current values of c are used as flag defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Framebuffer, "fb", c.Framebuffer, "framebuffer device (env "+EnvFramebuffer+")")
	fs.StringVar(&c.Touch, "touch", c.Touch, "touchscreen evdev device or glob (env "+EnvTouch+")")
	fs.StringVar(&c.Gallery, "gallery", c.Gallery, "directory for saved drawings (env "+EnvGallery+")")
	fs.Func("format", "image format png|bmp|tiff|pdf (env "+EnvFormat+")", func(s string) error {
		f, err := export.ParseFormat(s)
		if err != nil {
			return err
		}
		c.Format = f
		return nil
	})
	fs.Float64Var(&c.Density, "density", c.Density, "pixels per unit (env "+EnvDensity+")")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging (env "+EnvDebug+")")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "append log messages to this file")
}

// Load reads the environment and then parses args (without the program
// name) into a Config.
func Load(name string, args []string, getenv func(string) string) (Config, error) {
	c, err := FromEnv(getenv)
	if err != nil {
		return Config{}, err
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	c.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if !(c.Density > 0) {
		return Config{}, fmt.Errorf("density must be positive (got %g)", c.Density)
	}
	return c, nil
}

// Sink returns the export sink for saved drawings.
func (c Config) Sink() export.Sink {
	return export.NewDir(c.Gallery, c.Format)
}

// Logger returns a text logger writing to the configured destination,
// and a function to close the log file. Component names are attached
// as a "component" attribute by the callers.
func (c Config) Logger() (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFile == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), f.Close, nil
}
