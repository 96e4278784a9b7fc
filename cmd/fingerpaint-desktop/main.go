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

// Fingerpaint-desktop is a desktop version of the fingerpaint program.
// The mouse draws on the canvas, the menus change the brush.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"seehuhn.de/go/fingerpaint"
	"seehuhn.de/go/fingerpaint/command"
	"seehuhn.de/go/fingerpaint/export"
	"seehuhn.de/go/fingerpaint/internal/config"
)

const (
	canvasWidth  = 1024
	canvasHeight = 768
	title        = "Fingerpaint"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		return
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, closeLog, err := cfg.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()
	fingerpaint.SetLogger(logger)

	cv := fingerpaint.New()
	cv.Density = cfg.Density
	if err := cv.Init(canvasWidth, canvasHeight); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := app.New()
	win := a.NewWindow(title)
	win.Resize(fyne.NewSize(canvasWidth, canvasHeight))

	board := newPaintWidget(cv)
	win.SetMainMenu(mainMenu(win, cv, board, cfg.Sink()))
	win.SetContent(board)
	win.ShowAndRun()
}

// mainMenu builds the window menus from the command menus. Commands
// which discard or export the drawing ask for confirmation first.
func mainMenu(win fyne.Window, cv *fingerpaint.Canvas, board *paintWidget, sink export.Sink) *fyne.MainMenu {
	run := func(c command.Command) {
		msg, err := c.Apply(cv, sink)
		if err != nil {
			fingerpaint.Logger().Error("command failed",
				"component", "desktop", "command", c.String(), "error", err)
		}
		if msg != "" {
			dialog.ShowInformation(title, msg, win)
		}
		board.raster.Refresh()
	}

	var menus []*fyne.Menu
	for _, m := range command.Menus() {
		items := make([]*fyne.MenuItem, 0, len(m.Items))
		for _, it := range m.Items {
			c := it.Command
			items = append(items, fyne.NewMenuItem(it.Label, func() {
				if !c.NeedsConfirm() {
					run(c)
					return
				}
				t, q := c.Prompt()
				dialog.ShowConfirm(t, q, func(ok bool) {
					if ok {
						run(c)
					}
				}, win)
			}))
		}
		menus = append(menus, fyne.NewMenu(m.Title, items...))
	}
	return fyne.NewMainMenu(menus...)
}
