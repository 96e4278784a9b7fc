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

package gesture

import (
	"errors"
	"slices"
	"testing"

	"seehuhn.de/go/fingerpaint"
)

func TestDispatchCanvas(t *testing.T) {
	c := fingerpaint.New()
	if err := c.Init(100, 100); err != nil {
		t.Fatal(err)
	}
	redraws := 0
	d := &Dispatcher{Target: c, Redraw: func() { redraws++ }}

	events := Line(10, 10, 60, 10, 5)
	if err := d.Replay(events); err != nil {
		t.Fatal(err)
	}
	if redraws != len(events) {
		t.Errorf("%d redraws for %d events", redraws, len(events))
	}

	m := c.Model()
	if m.Len() != 1 || m.Active() {
		t.Fatalf("%d strokes, active=%t", m.Len(), m.Active())
	}
	// five accepted samples and the closing line
	if n := m.Stroke(0).Segments(); n != 6 {
		t.Errorf("%d segments, expected 6", n)
	}
}

func TestDispatchBeforeInit(t *testing.T) {
	d := &Dispatcher{Target: fingerpaint.New()}
	err := d.Replay(Tap(1, 1))
	if !errors.Is(err, fingerpaint.ErrNotInitialized) {
		t.Errorf("unexpected error %v", err)
	}
}

type recorder struct{ calls []string }

func (r *recorder) BeginStroke(x, y float64) error { r.calls = append(r.calls, "begin"); return nil }
func (r *recorder) ExtendStroke(x, y float64) bool  { r.calls = append(r.calls, "extend"); return true }
func (r *recorder) FinishStroke() bool              { r.calls = append(r.calls, "finish"); return true }

func TestDispatchOrder(t *testing.T) {
	r := &recorder{}
	d := &Dispatcher{Target: r}
	if err := d.Replay(Line(0, 0, 1, 1, 2)); err != nil {
		t.Fatal(err)
	}
	want := []string{"begin", "extend", "extend", "finish"}
	if !slices.Equal(r.calls, want) {
		t.Errorf("calls %v, expected %v", r.calls, want)
	}
	if err := d.Handle(Event{Kind: Kind(7)}); err == nil {
		t.Error("unknown kind accepted")
	}
}

func TestParseEvent(t *testing.T) {
	for _, ev := range []Event{{Down, 1.5, -2}, {Move, 100, 200}, {Kind: Up}} {
		got, err := ParseEvent(ev.String())
		if err != nil {
			t.Errorf("%q: %v", ev.String(), err)
			continue
		}
		if got != ev {
			t.Errorf("%q parsed as %v", ev.String(), got)
		}
	}
	for _, bad := range []string{"", "down", "down 1", "move a 2", "up 1 2", "press 1 1"} {
		if _, err := ParseEvent(bad); err == nil {
			t.Errorf("%q accepted", bad)
		}
	}
}
