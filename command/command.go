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

// Package command implements the style commands of the drawing
// application, like "color blue" or "size big".
//
// Commands have a textual form, so that they can be typed on a terminal
// or stored in scripts, and can be listed as menus for graphical hosts.
package command

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"seehuhn.de/go/fingerpaint"
	"seehuhn.de/go/fingerpaint/export"
)

// Kind identifies a command.
type Kind int

// The available commands.
const (
	Color Kind = iota
	Size
	Type
	Eraser
	Clear
	Save
)

var names = [...]string{
	Color:  "color",
	Size:   "size",
	Type:   "type",
	Eraser: "eraser",
	Clear:  "clear",
	Save:   "save",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Brush types for the "type" command.
const (
	TypeNormal = "normal"
	TypeBlur   = "blur"
)

// Command is a parsed style command.
type Command struct {
	Kind Kind

	// Arg is the argument as written, for Color, Size and Type.
	Arg string

	Color color.NRGBA // for Color
	Width float64     // for Size
	Soft  bool        // for Type
}

// ErrSyntax is wrapped by all parse errors.
var ErrSyntax = errors.New("command syntax error")

// Parse reads a command in textual form. Keywords are case-insensitive.
func Parse(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty command", ErrSyntax)
	}

	var cmd Command
	switch fields[0] {
	case "color", "colour":
		cmd.Kind = Color
	case "size":
		cmd.Kind = Size
	case "type":
		cmd.Kind = Type
	case "eraser", "erase":
		cmd.Kind = Eraser
	case "clear", "new":
		cmd.Kind = Clear
	case "save":
		cmd.Kind = Save
	default:
		return Command{}, fmt.Errorf("%w: unknown command %q", ErrSyntax, fields[0])
	}

	switch cmd.Kind {
	case Color, Size, Type:
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("%w: %q needs one argument", ErrSyntax, fields[0])
		}
		cmd.Arg = fields[1]
	default:
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("%w: %q takes no arguments", ErrSyntax, fields[0])
		}
		return cmd, nil
	}

	var ok bool
	switch cmd.Kind {
	case Color:
		cmd.Color, ok = fingerpaint.LookupColor(cmd.Arg)
	case Size:
		cmd.Width, ok = fingerpaint.LookupWidth(cmd.Arg)
	case Type:
		switch cmd.Arg {
		case TypeNormal:
			ok = true
		case TypeBlur:
			cmd.Soft, ok = true, true
		}
	}
	if !ok {
		return Command{}, fmt.Errorf("%w: unknown %s %q", ErrSyntax, cmd.Kind, cmd.Arg)
	}
	return cmd, nil
}

func (c Command) String() string {
	if c.Arg != "" {
		return c.Kind.String() + " " + c.Arg
	}
	return c.Kind.String()
}

// NeedsConfirm reports whether the user should confirm the command
// before it is applied.
func (c Command) NeedsConfirm() bool {
	return c.Kind == Clear || c.Kind == Save
}

// Prompt returns the title and the question for the confirmation dialog.
func (c Command) Prompt() (title, question string) {
	switch c.Kind {
	case Clear:
		return "New drawing", "Start new drawing (you will lose the current drawing)?"
	case Save:
		return "Save drawing", "Save drawing to device Gallery?"
	}
	return "", ""
}

// Apply executes the command on the canvas. The Save command sends a
// snapshot of the canvas to sink. The returned message, if non-empty,
// should be shown to the user.
func (c Command) Apply(cv *fingerpaint.Canvas, sink export.Sink) (string, error) {
	log := fingerpaint.Logger().With("component", "command")

	switch c.Kind {
	case Color:
		cv.SetColor(c.Color)
	case Size:
		if err := cv.SetWidth(c.Width); err != nil {
			return "", err
		}
	case Type:
		cv.SetBlur(c.Soft)
	case Eraser:
		cv.SetEraser()
	case Clear:
		cv.Clear()
	case Save:
		return save(cv, sink)
	default:
		return "", fmt.Errorf("command: unknown kind %d", int(c.Kind))
	}
	log.Debug("applied", "command", c.String())
	return "", nil
}

func save(cv *fingerpaint.Canvas, sink export.Sink) (string, error) {
	log := fingerpaint.Logger().With("component", "command")

	if sink == nil {
		log.Error("save without a gallery")
		return export.MsgNotSaved, errors.New("command: no export sink configured")
	}
	img, err := cv.Snapshot()
	if err != nil {
		log.Error("snapshot failed", "error", err)
		return export.MsgNotSaved, err
	}
	name, err := sink.Save(img)
	if err != nil {
		log.Error("save failed", "error", err)
		return export.MsgNotSaved, err
	}
	log.Info("drawing saved", "file", name)
	return export.MsgSaved, nil
}
