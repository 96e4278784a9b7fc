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

//go:build linux

package touch

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"

	"seehuhn.de/go/fingerpaint"
	"seehuhn.de/go/fingerpaint/gesture"
)

// pollTimeout is the poll interval in milliseconds. Cancellation of the
// context passed to Run is noticed within this time.
const pollTimeout = 250

// Device is an open evdev touchscreen.
type Device struct {
	Path string

	fd     int
	f      *os.File
	tvSize int
	dec    Decoder
}

// Open opens the evdev device at path. Touch coordinates are scaled to a
// canvas of the given size, in canvas units, using the axis ranges
// reported by the device.
func Open(path string, width, height float64) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("touch: open %s: %w", path, err)
	}

	d := &Device{
		Path:   path,
		fd:     fd,
		f:      os.NewFile(uintptr(fd), path),
		tvSize: int(binary.Size(unix.Timeval{})),
	}
	d.dec.Width = width
	d.dec.Height = height
	d.dec.X = axisInfo(fd, absMTPositionX, absX)
	d.dec.Y = axisInfo(fd, absMTPositionY, absY)

	fingerpaint.Logger().Info("touchscreen opened",
		"component", "touch", "path", path,
		"x", d.dec.X, "y", d.dec.Y)
	return d, nil
}

// Find returns the first device matching the glob pattern which reports
// a usable X axis range. A pattern without glob characters is returned
// unchanged.
func Find(pattern string) (string, error) {
	if !strings.ContainsAny(pattern, "*?[") {
		return pattern, nil
	}
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("touch: %w", err)
	}
	for _, p := range paths {
		fd, err := unix.Open(p, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
		if err != nil {
			continue
		}
		a, ok := absInfo(fd, absMTPositionX)
		if !ok {
			a, ok = absInfo(fd, absX)
		}
		_ = unix.Close(fd)
		if ok && a.Max > a.Min {
			return p, nil
		}
	}
	return "", fmt.Errorf("touch: no touchscreen matches %q", pattern)
}

// Run reads events until ctx is cancelled or the device fails, and sends
// the decoded gesture events to out.
func (d *Device) Run(ctx context.Context, out chan<- gesture.Event) error {
	log := fingerpaint.Logger().With("component", "touch")
	buf := make([]byte, 64*recordSize(d.tvSize))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		pollFds := []unix.PollFd{{Fd: int32(d.fd), Events: unix.POLLIN}}
		_, err := unix.Poll(pollFds, pollTimeout)
		if errors.Is(err, unix.EINTR) {
			continue
		} else if err != nil {
			return fmt.Errorf("touch: poll %s: %w", d.Path, err)
		}
		if pollFds[0].Revents&(unix.POLLHUP|unix.POLLERR) != 0 {
			return fmt.Errorf("touch: %s went away", d.Path)
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(d.fd, buf)
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			continue
		} else if err != nil {
			return fmt.Errorf("touch: read %s: %w", d.Path, err)
		}

		var events []gesture.Event
		parseRecords(buf[:n], d.tvSize, func(typ, code uint16, value int32) {
			if ev, ok := d.dec.Feed(typ, code, value); ok {
				events = append(events, ev)
			}
		})
		for _, ev := range events {
			log.Debug("touch event", "event", ev)
			select {
			case out <- ev:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Close closes the device.
func (d *Device) Close() error {
	return d.f.Close()
}

// axisInfo returns the range of the first of the given axes which the
// device reports. Without any range information the raw values are
// used.
func axisInfo(fd int, codes ...uint16) Axis {
	for _, code := range codes {
		if a, ok := absInfo(fd, code); ok && a.Max > a.Min {
			return a
		}
	}
	return Axis{}
}

// absInfo queries struct input_absinfo for one axis via EVIOCGABS.
func absInfo(fd int, code uint16) (Axis, bool) {
	// value, minimum, maximum, fuzz, flat, resolution
	var info [6]int32
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd),
		eviocgabs(code), uintptr(unsafe.Pointer(&info[0])))
	if errno != 0 {
		return Axis{}, false
	}
	return Axis{Min: info[1], Max: info[2]}, true
}

// eviocgabs encodes _IOR('E', 0x40+code, struct input_absinfo).
func eviocgabs(code uint16) uintptr {
	const (
		iocRead  = 2
		infoSize = 6 * 4
	)
	return uintptr(iocRead<<30 | infoSize<<16 | 'E'<<8 | (0x40 + uint32(code)))
}
