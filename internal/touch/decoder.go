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

// Package touch reads single-finger input from a Linux touchscreen and
// converts it into gesture events.
package touch

import (
	"encoding/binary"

	"seehuhn.de/go/fingerpaint/gesture"
)

// Event types and codes from linux/input-event-codes.h.
const (
	evSyn = 0x00
	evKey = 0x01
	evAbs = 0x03

	synReport = 0x00

	btnTouch = 0x14a

	absX             = 0x00
	absY             = 0x01
	absMTSlot        = 0x2f
	absMTPositionX   = 0x35
	absMTPositionY   = 0x36
	absMTTrackingID  = 0x39
	releasedTracking = -1
)

// Axis is the value range reported by the device for one coordinate.
type Axis struct {
	Min, Max int32
}

// scale maps v from the axis range onto [0, size]. If the range is
// empty, v is returned unchanged.
func (a Axis) scale(v int32, size float64) float64 {
	if a.Max <= a.Min || !(size > 0) {
		return float64(v)
	}
	return float64(v-a.Min) / float64(a.Max-a.Min) * size
}

// Decoder turns a stream of evdev records into gesture events. Only the
// first touch point (multi-touch slot 0) is followed; additional fingers
// are ignored.
//
// Both single-touch devices (BTN_TOUCH with ABS_X/ABS_Y) and multi-touch
// protocol B devices (slots and tracking IDs) are understood.
type Decoder struct {
	Width, Height float64 // canvas size in canvas units
	X, Y          Axis    // device coordinate ranges

	slot     int32
	x, y     int32
	touching bool
	down     bool
	moved    bool
}

// Feed processes a single evdev record. When the record completes a
// frame (SYN_REPORT) which changed the touch state, the resulting event
// is returned together with true.
func (d *Decoder) Feed(typ, code uint16, value int32) (gesture.Event, bool) {
	switch typ {
	case evKey:
		if code == btnTouch {
			d.touching = value != 0
		}
	case evAbs:
		switch code {
		case absMTSlot:
			d.slot = value
		case absX:
			d.setX(value)
		case absY:
			d.setY(value)
		case absMTPositionX:
			if d.slot == 0 {
				d.setX(value)
			}
		case absMTPositionY:
			if d.slot == 0 {
				d.setY(value)
			}
		case absMTTrackingID:
			if d.slot == 0 {
				d.touching = value != releasedTracking
			}
		}
	case evSyn:
		if code == synReport {
			return d.sync()
		}
	}
	return gesture.Event{}, false
}

func (d *Decoder) setX(v int32) {
	if v != d.x {
		d.x = v
		d.moved = true
	}
}

func (d *Decoder) setY(v int32) {
	if v != d.y {
		d.y = v
		d.moved = true
	}
}

func (d *Decoder) sync() (gesture.Event, bool) {
	ev := gesture.Event{
		X: d.X.scale(d.x, d.Width),
		Y: d.Y.scale(d.y, d.Height),
	}
	moved := d.moved
	d.moved = false

	switch {
	case d.touching && !d.down:
		d.down = true
		ev.Kind = gesture.Down
	case d.touching && moved:
		ev.Kind = gesture.Move
	case !d.touching && d.down:
		d.down = false
		ev.Kind = gesture.Up
	default:
		return gesture.Event{}, false
	}
	return ev, true
}

// recordSize returns the size of a struct input_event for a timeval of
// the given size: timeval, then u16 type, u16 code and s32 value.
func recordSize(tvSize int) int {
	return tvSize + 2 + 2 + 4
}

// parseRecords calls fn for every complete input_event record in buf and
// returns the number of bytes consumed.
func parseRecords(buf []byte, tvSize int, fn func(typ, code uint16, value int32)) int {
	size := recordSize(tvSize)
	off := 0
	for ; off+size <= len(buf); off += size {
		rec := buf[off : off+size]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		fn(typ, code, value)
	}
	return off
}
