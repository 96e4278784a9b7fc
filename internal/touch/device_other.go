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

//go:build !linux

package touch

import (
	"context"
	"errors"

	"seehuhn.de/go/fingerpaint/gesture"
)

// ErrUnsupported is returned on systems without evdev.
var ErrUnsupported = errors.New("touch: evdev input is only available on Linux")

// Device is an open evdev touchscreen.
type Device struct {
	Path string
}

// Open always fails on this system.
func Open(path string, width, height float64) (*Device, error) {
	return nil, ErrUnsupported
}

// Find always fails on this system.
func Find(pattern string) (string, error) {
	return "", ErrUnsupported
}

// Run always fails on this system.
func (d *Device) Run(ctx context.Context, out chan<- gesture.Event) error {
	return ErrUnsupported
}

// Close does nothing.
func (d *Device) Close() error {
	return nil
}
