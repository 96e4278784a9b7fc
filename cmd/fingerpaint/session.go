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
	"fmt"
	"io"
	"strings"

	"seehuhn.de/go/fingerpaint"
	"seehuhn.de/go/fingerpaint/command"
	"seehuhn.de/go/fingerpaint/export"
)

// session interprets command lines typed on the console. Commands which
// need confirmation print their question and wait for the next line.
type session struct {
	canvas *fingerpaint.Canvas
	sink   export.Sink
	out    io.Writer

	pending *command.Command
}

// handle processes one input line and returns the message which should
// be shown on screen, if any.
func (s *session) handle(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	if s.pending != nil {
		c := *s.pending
		s.pending = nil
		switch strings.ToLower(text) {
		case "y", "yes":
			return s.apply(c)
		}
		fmt.Fprintln(s.out, "cancelled")
		return ""
	}

	if text == "help" {
		fmt.Fprint(s.out, command.Help())
		return ""
	}
	c, err := command.Parse(text)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return ""
	}
	if c.NeedsConfirm() {
		title, question := c.Prompt()
		fmt.Fprintf(s.out, "%s: %s [y/N] ", title, question)
		s.pending = &c
		return ""
	}
	return s.apply(c)
}

func (s *session) apply(c command.Command) string {
	msg, err := c.Apply(s.canvas, s.sink)
	if msg != "" {
		fmt.Fprintln(s.out, msg)
	} else if err != nil {
		fmt.Fprintln(s.out, err)
	}
	return msg
}
