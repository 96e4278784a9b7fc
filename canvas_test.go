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

package fingerpaint

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"testing"
)

func newCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c := New()
	if err := c.Init(w, h); err != nil {
		t.Fatal(err)
	}
	return c
}

func render(t *testing.T, c *Canvas) *image.RGBA {
	t.Helper()
	img, err := c.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func pixel(img *image.RGBA, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.RGBAAt(x, y)).(color.NRGBA)
}

// TestBlueStroke draws a short medium-width stroke into the corner of the
// canvas.
func TestBlueStroke(t *testing.T) {
	c := newCanvas(t, 200, 200)
	c.SetColor(Blue)
	if err := c.SetWidth(WidthMedium); err != nil {
		t.Fatal(err)
	}
	if err := c.BeginStroke(0, 0); err != nil {
		t.Fatal(err)
	}
	c.ExtendStroke(10, 0)
	c.FinishStroke()

	img := render(t, c)

	for _, p := range [][2]int{{0, 0}, {5, 5}, {10, 10}, {20, 3}, {3, 17}} {
		if got := pixel(img, p[0], p[1]); got != Blue {
			t.Errorf("pixel %v: %v, expected blue", p, got)
		}
	}
	for _, p := range [][2]int{{100, 100}, {35, 5}, {5, 25}, {199, 199}} {
		if got := pixel(img, p[0], p[1]); got != White {
			t.Errorf("pixel %v: %v, expected background", p, got)
		}
	}
}

// TestRenderOrder checks that later strokes are painted on top.
func TestRenderOrder(t *testing.T) {
	c := newCanvas(t, 100, 100)
	_ = c.SetWidth(10)

	c.SetColor(Red)
	_ = c.BeginStroke(20, 50)
	c.ExtendStroke(80, 50)
	c.FinishStroke()

	c.SetColor(Blue)
	_ = c.BeginStroke(50, 20)
	c.ExtendStroke(50, 80)
	c.FinishStroke()

	img := render(t, c)
	if got := pixel(img, 50, 50); got != Blue {
		t.Errorf("overlap: %v, expected blue", got)
	}
	if got := pixel(img, 30, 50); got != Red {
		t.Errorf("first stroke: %v, expected red", got)
	}
}

// TestClearMatchesFresh checks that Clear restores the look of a newly
// initialized canvas.
func TestClearMatchesFresh(t *testing.T) {
	c := newCanvas(t, 64, 48)
	c.SetBackground(Black)
	c.SetBlur(true)
	_ = c.BeginStroke(10, 10)
	c.ExtendStroke(40, 30)
	c.FinishStroke()
	_ = c.BeginStroke(30, 5) // still active

	c.Clear()
	got := render(t, c)

	fresh := render(t, newCanvas(t, 64, 48))
	if !bytes.Equal(got.Pix, fresh.Pix) {
		t.Error("cleared canvas differs from a fresh one")
	}
	if c.Style().SoftEdge {
		t.Error("Clear did not reset the blur setting")
	}
	if c.Background() != DefaultBackground {
		t.Error("Clear did not reset the background")
	}
	if c.Model().Len() != 0 {
		t.Error("Clear did not remove strokes")
	}
}

// TestClearKeepsBrush checks that Clear leaves color and width alone.
func TestClearKeepsBrush(t *testing.T) {
	c := newCanvas(t, 10, 10)
	c.SetColor(Green)
	_ = c.SetWidth(WidthSmall)
	c.Clear()
	if s := c.Style(); s.Color != Green || s.Width != WidthSmall {
		t.Errorf("style after Clear: %+v", s)
	}
}

func TestPresets(t *testing.T) {
	c := newCanvas(t, 10, 10)

	w, ok := LookupWidth("small")
	if !ok {
		t.Fatal("no preset called small")
	}
	_ = c.SetWidth(w)
	_ = c.BeginStroke(1, 1)
	c.FinishStroke()
	if got := c.Model().Stroke(0).Width(); got != 20 {
		t.Errorf("small width %g, expected 20", got)
	}

	c.SetBackground(Yellow)
	c.SetEraser()
	if s := c.Style(); s.Color != Yellow || s.Width != 60 {
		t.Errorf("eraser style %+v", s)
	}
}

// TestEraser checks that erasing covers strokes with the background.
func TestEraser(t *testing.T) {
	c := newCanvas(t, 100, 100)
	c.SetColor(Black)
	_ = c.SetWidth(WidthSmall)
	_ = c.BeginStroke(20, 50)
	c.ExtendStroke(80, 50)
	c.FinishStroke()

	c.SetEraser()
	_ = c.BeginStroke(50, 50)
	c.FinishStroke()

	img := render(t, c)
	if got := pixel(img, 50, 50); got != White {
		t.Errorf("erased pixel %v", got)
	}
	if got := pixel(img, 15, 50); got != Black {
		t.Errorf("pixel outside the eraser %v", got)
	}
	if c.Model().Len() != 2 {
		t.Error("erasing must not remove strokes")
	}
}

// TestSoftEdge checks that blurred strokes spread beyond their width and
// are no longer fully opaque at the edge.
func TestSoftEdge(t *testing.T) {
	draw := func(soft bool) *image.RGBA {
		c := newCanvas(t, 120, 120)
		c.SetColor(Black)
		_ = c.SetWidth(WidthMedium)
		c.SetBlur(soft)
		_ = c.BeginStroke(60, 20)
		c.ExtendStroke(60, 100)
		c.FinishStroke()
		return render(t, c)
	}
	hard := draw(false)
	soft := draw(true)

	// 25 units from the center line: outside the hard stroke
	if got := pixel(hard, 85, 60); got != White {
		t.Errorf("hard stroke reaches %v", got)
	}
	if got := pixel(soft, 85, 60); got == White {
		t.Error("soft stroke does not spread")
	}
	// at the nominal edge the soft stroke is partially transparent
	if h, s := pixel(hard, 79, 60), pixel(soft, 79, 60); h != Black || s == Black {
		t.Errorf("edge pixel: hard %v, soft %v", h, s)
	}
	if got := pixel(soft, 60, 60); got != Black {
		t.Errorf("soft stroke center %v", got)
	}
}

// TestDensity checks that Density scales the geometry.
func TestDensity(t *testing.T) {
	c := New()
	c.Density = 2
	if err := c.Init(100, 100); err != nil {
		t.Fatal(err)
	}
	_ = c.SetWidth(10)
	_ = c.BeginStroke(10, 10)
	c.FinishStroke()

	img := render(t, c)
	if got := pixel(img, 20, 20); got != DefaultColor {
		t.Errorf("center %v", got)
	}
	if got := pixel(img, 28, 20); got != DefaultColor {
		t.Errorf("inside radius %v", got)
	}
	if got := pixel(img, 32, 20); got != White {
		t.Errorf("outside radius %v", got)
	}
}

// TestRenderIdempotent checks that rendering the same drawing twice gives
// identical pixels, for overlapping soft and normal strokes, with a stroke
// still in progress, and after Clear.
func TestRenderIdempotent(t *testing.T) {
	c := newCanvas(t, 120, 120)

	renderTwice := func(stage string) {
		t.Helper()
		img, err := c.Render()
		if err != nil {
			t.Fatal(err)
		}
		first := bytes.Clone(img.(*image.RGBA).Pix)
		img, err = c.Render()
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(first, img.(*image.RGBA).Pix) {
			t.Errorf("%s: second render differs from the first", stage)
		}
	}

	c.SetBlur(true)
	c.SetColor(Green)
	c.BeginStroke(20, 20)
	c.ExtendStroke(60, 40)
	c.ExtendStroke(100, 20)
	c.FinishStroke()

	c.SetBlur(false)
	c.SetColor(Blue)
	c.BeginStroke(20, 60)
	c.ExtendStroke(60, 20)
	c.ExtendStroke(100, 60)
	c.FinishStroke()
	renderTwice("finished strokes")

	c.SetColor(Yellow)
	c.BeginStroke(60, 100)
	c.ExtendStroke(80, 90)
	renderTwice("active stroke")
	c.FinishStroke()

	c.Clear()
	renderTwice("after clear")
}

func TestSnapshotIsCopy(t *testing.T) {
	c := newCanvas(t, 20, 20)
	snap := render(t, c)
	snap.Pix[0] = 0

	_ = c.SetWidth(4)
	_ = c.BeginStroke(10, 10)
	c.FinishStroke()
	if _, err := c.Render(); err != nil {
		t.Fatal(err)
	}
	again := render(t, c)
	if again.Pix[0] != 0xFF {
		t.Error("canvas changed through a snapshot")
	}
	if snap.Pix[0] != 0 || pixel(snap, 10, 10) != White {
		t.Error("snapshot changed by later rendering")
	}
}

func TestInitErrors(t *testing.T) {
	c := New()
	if err := c.Init(0, 10); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Init(0, 10): %v", err)
	}
	if c.Initialized() {
		t.Error("failed Init marked the canvas initialized")
	}
	if err := c.Init(10, 10); err != nil {
		t.Fatal(err)
	}
	if err := c.Init(10, 10); !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("second Init: %v", err)
	}
	if c.Bounds() != image.Rect(0, 0, 10, 10) {
		t.Errorf("bounds %v", c.Bounds())
	}
}

func TestSetWidthInvalid(t *testing.T) {
	c := New()
	for _, w := range []float64{0, -5} {
		if err := c.SetWidth(w); !errors.Is(err, ErrInvalidWidth) {
			t.Errorf("SetWidth(%g): %v", w, err)
		}
	}
	if c.Style().Width != DefaultWidth {
		t.Error("invalid width was applied")
	}
}

// TestNotInitialized checks that drawing before Init fails and is logged.
func TestNotInitialized(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })

	c := New()
	if _, err := c.Render(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Render: %v", err)
	}
	if _, err := c.Snapshot(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Snapshot: %v", err)
	}
	if err := c.BeginStroke(1, 1); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("BeginStroke: %v", err)
	}
	if c.ExtendStroke(10, 10) || c.FinishStroke() {
		t.Error("stroke operations succeeded without a stroke")
	}
	if !strings.Contains(buf.String(), "render before Init") {
		t.Errorf("missing log message, got %q", buf.String())
	}
}

func TestDefaults(t *testing.T) {
	c := New()
	s := c.Style()
	if s.Color != Red || s.Width != 40 || s.SoftEdge {
		t.Errorf("default style %+v", s)
	}
	if c.Background() != White {
		t.Errorf("default background %v", c.Background())
	}
}
