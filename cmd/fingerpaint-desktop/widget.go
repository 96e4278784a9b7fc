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

package main

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"seehuhn.de/go/fingerpaint"
	"seehuhn.de/go/fingerpaint/gesture"
)

// paintWidget shows the canvas and turns primary button mouse drags
// into strokes.
type paintWidget struct {
	widget.BaseWidget

	canvas   *fingerpaint.Canvas
	dispatch *gesture.Dispatcher
	raster   *canvas.Raster
	drawing  bool
}

var (
	_ fyne.Widget       = (*paintWidget)(nil)
	_ fyne.Draggable    = (*paintWidget)(nil)
	_ desktop.Mouseable = (*paintWidget)(nil)
)

func newPaintWidget(cv *fingerpaint.Canvas) *paintWidget {
	w := &paintWidget{canvas: cv}
	w.raster = canvas.NewRaster(func(int, int) image.Image {
		img, err := cv.Render()
		if err != nil {
			fingerpaint.Logger().Error("render failed", "component", "desktop", "error", err)
			return image.NewRGBA(image.Rect(0, 0, 1, 1))
		}
		return img
	})
	w.dispatch = &gesture.Dispatcher{Target: cv, Redraw: w.raster.Refresh}
	w.ExtendBaseWidget(w)
	return w
}

func (w *paintWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.raster)
}

func (w *paintWidget) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (w *paintWidget) handle(kind gesture.Kind, pos fyne.Position) {
	x, y := toCanvas(pos, w.Size(), w.canvas.Bounds(), w.canvas.Density)
	ev := gesture.Event{Kind: kind, X: x, Y: y}
	if err := w.dispatch.Handle(ev); err != nil {
		fingerpaint.Logger().Error("pointer event dropped",
			"component", "desktop", "event", ev, "error", err)
	}
}

func (w *paintWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.drawing = true
	w.handle(gesture.Down, e.Position)
}

func (w *paintWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !w.drawing {
		return
	}
	w.drawing = false
	w.handle(gesture.Up, e.Position)
}

func (w *paintWidget) Dragged(e *fyne.DragEvent) {
	if w.drawing {
		w.handle(gesture.Move, e.Position)
	}
}

// DragEnd finishes the stroke when the mouse is released outside the
// widget.
func (w *paintWidget) DragEnd() {
	if w.drawing {
		w.drawing = false
		w.dispatch.Handle(gesture.Event{Kind: gesture.Up})
	}
}

// toCanvas maps a position inside a widget of the given size to canvas
// units. The widget shows the whole buffer b, which holds density pixels
// per canvas unit.
func toCanvas(pos fyne.Position, size fyne.Size, b image.Rectangle, density float64) (x, y float64) {
	x, y = float64(pos.X), float64(pos.Y)
	if size.Width > 0 {
		x = x * float64(b.Dx()) / float64(size.Width)
	}
	if size.Height > 0 {
		y = y * float64(b.Dy()) / float64(size.Height)
	}
	x += float64(b.Min.X)
	y += float64(b.Min.Y)
	if density > 0 {
		x /= density
		y /= density
	}
	return x, y
}
