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

// Package gesture turns single-pointer input into stroke operations.
package gesture

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the type of a pointer event.
type Kind int

// Pointer event kinds.
const (
	Down Kind = iota
	Move
	Up
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is a pointer event in canvas coordinates.
type Event struct {
	Kind Kind
	X, Y float64
}

func (e Event) String() string {
	if e.Kind == Up {
		return "up"
	}
	return fmt.Sprintf("%s %g %g", e.Kind, e.X, e.Y)
}

// Target receives the stroke operations. *fingerpaint.Canvas implements
// this interface.
type Target interface {
	BeginStroke(x, y float64) error
	ExtendStroke(x, y float64) bool
	FinishStroke() bool
}

// Dispatcher forwards pointer events to a Target: Down begins a stroke,
// Move extends it and Up finishes it. After every event Redraw is
// called, if set.
type Dispatcher struct {
	Target Target
	Redraw func()
}

// Handle processes one event.
func (d *Dispatcher) Handle(ev Event) error {
	switch ev.Kind {
	case Down:
		if err := d.Target.BeginStroke(ev.X, ev.Y); err != nil {
			return err
		}
	case Move:
		d.Target.ExtendStroke(ev.X, ev.Y)
	case Up:
		d.Target.FinishStroke()
	default:
		return fmt.Errorf("gesture: unknown event kind %d", int(ev.Kind))
	}
	if d.Redraw != nil {
		d.Redraw()
	}
	return nil
}

// Replay handles a sequence of events, stopping at the first error.
func (d *Dispatcher) Replay(events []Event) error {
	for i, ev := range events {
		if err := d.Handle(ev); err != nil {
			return fmt.Errorf("event %d (%s): %w", i, ev, err)
		}
	}
	return nil
}

// ParseEvent parses the textual form of an event, as produced by
// Event.String: "down X Y", "move X Y" or "up".
func ParseEvent(line string) (Event, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Event{}, fmt.Errorf("gesture: empty event")
	}

	var ev Event
	switch fields[0] {
	case "down":
		ev.Kind = Down
	case "move":
		ev.Kind = Move
	case "up":
		if len(fields) != 1 {
			return Event{}, fmt.Errorf("gesture: %q takes no arguments", fields[0])
		}
		return Event{Kind: Up}, nil
	default:
		return Event{}, fmt.Errorf("gesture: unknown event %q", fields[0])
	}

	if len(fields) != 3 {
		return Event{}, fmt.Errorf("gesture: %q needs two coordinates", fields[0])
	}
	var err error
	if ev.X, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return Event{}, fmt.Errorf("gesture: bad x coordinate: %w", err)
	}
	if ev.Y, err = strconv.ParseFloat(fields[2], 64); err != nil {
		return Event{}, fmt.Errorf("gesture: bad y coordinate: %w", err)
	}
	return ev, nil
}

// Line returns the events of a straight finger movement from (x0, y0) to
// (x1, y1), sampled at n evenly spaced points after the start. The result
// begins with Down and ends with Up.
func Line(x0, y0, x1, y1 float64, n int) []Event {
	events := make([]Event, 0, n+2)
	events = append(events, Event{Kind: Down, X: x0, Y: y0})
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		events = append(events, Event{Kind: Move, X: x0 + t*(x1-x0), Y: y0 + t*(y1-y0)})
	}
	return append(events, Event{Kind: Up, X: x1, Y: y1})
}

// Tap returns the events of a finger touching the screen without moving.
func Tap(x, y float64) []Event {
	return []Event{{Kind: Down, X: x, Y: y}, {Kind: Up, X: x, Y: y}}
}
