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

// Fingerpaint is a drawing program for Linux devices with a framebuffer
// and a touchscreen. One finger draws on the screen. Brush settings are
// changed by typing commands on the console; type "help" for a list.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seehuhn.de/go/fingerpaint"
	"seehuhn.de/go/fingerpaint/gesture"
	"seehuhn.de/go/fingerpaint/internal/config"
	"seehuhn.de/go/fingerpaint/internal/fbdisplay"
	"seehuhn.de/go/fingerpaint/internal/touch"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		logger.Error("fingerpaint failed", "component", "main", "error", err)
		fmt.Fprintln(os.Stderr, err)
		closeLog()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	log := fingerpaint.Logger().With("component", "main")

	disp, err := fbdisplay.Open(cfg.Framebuffer)
	if err != nil {
		return err
	}
	defer disp.Close()
	width, height := disp.Size()

	cv := fingerpaint.New()
	cv.Density = cfg.Density
	if err := cv.Init(width, height); err != nil {
		return err
	}

	path, err := touch.Find(cfg.Touch)
	if err != nil {
		return err
	}
	uw, uh := canvasUnits(width, height, cv.Density)
	dev, err := touch.Open(path, uw, uh)
	if err != nil {
		return err
	}
	defer dev.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan gesture.Event, 64)
	touchDone := make(chan error, 1)
	go func() {
		touchDone <- dev.Run(ctx, events)
	}()
	lines := make(chan string)
	go readLines(ctx, in, lines)

	redraw := func() {
		img, err := cv.Render()
		if err != nil {
			log.Error("render failed", "error", err)
			return
		}
		disp.Show(img, time.Now())
	}
	dispatch := &gesture.Dispatcher{Target: cv, Redraw: redraw}
	s := &session{canvas: cv, sink: cfg.Sink(), out: out}

	toastTimer := time.NewTimer(0)
	if !toastTimer.Stop() {
		<-toastTimer.C
	}

	log.Info("ready", "width", width, "height", height, "touch", path)
	redraw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-touchDone:
			if ctx.Err() != nil {
				return nil
			}
			return err
		case ev := <-events:
			if err := dispatch.Handle(ev); err != nil {
				log.Error("touch event dropped", "event", ev, "error", err)
			}
		case text, ok := <-lines:
			if !ok {
				lines = nil
				continue
			}
			if msg := s.handle(text); msg != "" {
				disp.Toast(msg, time.Now())
				toastTimer.Reset(fbdisplay.ToastDuration)
			}
			redraw()
		case <-toastTimer.C:
			redraw()
		}
	}
}

// canvasUnits converts a display size in pixels into canvas units. Touch
// events must be reported in these units, since the canvas scales all
// stroke coordinates by its density.
func canvasUnits(width, height int, density float64) (w, h float64) {
	if !(density > 0) {
		density = 1
	}
	return float64(width) / density, float64(height) / density
}

// readLines sends the lines read from r to out and closes out at the end
// of the input.
func readLines(ctx context.Context, r io.Reader, out chan<- string) {
	defer close(out)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case out <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
}
