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

package command

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"seehuhn.de/go/fingerpaint"
)

// Menu is a group of commands, as shown in a menu bar.
type Menu struct {
	Title string
	Items []Item
}

// Item is one menu entry.
type Item struct {
	Label   string
	Command Command
}

// Menus returns the command menus in display order.
func Menus() []Menu {
	caser := cases.Title(language.English)
	label := func(s string) string {
		return caser.String(strings.ReplaceAll(s, "-", " "))
	}
	single := func(k Kind) Menu {
		return Menu{
			Title: label(k.String()),
			Items: []Item{{Label: label(k.String()), Command: Command{Kind: k}}},
		}
	}

	colors := Menu{Title: label(Color.String())}
	for _, p := range fingerpaint.ColorPresets {
		colors.Items = append(colors.Items, Item{
			Label:   label(p.Name),
			Command: Command{Kind: Color, Arg: p.Name, Color: p.Color},
		})
	}

	sizes := Menu{Title: label(Size.String())}
	for _, p := range fingerpaint.WidthPresets {
		sizes.Items = append(sizes.Items, Item{
			Label:   label(p.Name),
			Command: Command{Kind: Size, Arg: p.Name, Width: p.Width},
		})
	}

	types := Menu{
		Title: label(Type.String()),
		Items: []Item{
			{Label: label(TypeNormal), Command: Command{Kind: Type, Arg: TypeNormal}},
			{Label: label(TypeBlur), Command: Command{Kind: Type, Arg: TypeBlur, Soft: true}},
		},
	}

	return []Menu{colors, sizes, types, single(Eraser), single(Clear), single(Save)}
}

// Help returns a short description of the textual commands, one per line.
func Help() string {
	var b strings.Builder
	for _, m := range Menus() {
		args := make([]string, 0, len(m.Items))
		for _, it := range m.Items {
			if it.Command.Arg != "" {
				args = append(args, it.Command.Arg)
			}
		}
		b.WriteString(strings.ToLower(m.Title))
		if len(args) > 0 {
			b.WriteString(" <" + strings.Join(args, "|") + ">")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
