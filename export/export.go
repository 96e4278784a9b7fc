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

// Package export writes flattened drawings to image files.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Messages shown to the user after a save attempt.
const (
	MsgSaved    = "Drawing saved to Gallery!"
	MsgNotSaved = "Image could not be saved."
)

// Format is an output file format.
type Format string

// Supported formats.
const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	PDF  Format = "pdf"
)

// Formats lists the supported formats.
var Formats = []Format{PNG, BMP, TIFF, PDF}

// ErrUnknownFormat is returned for unsupported format names.
var ErrUnknownFormat = errors.New("unknown image format")

// ParseFormat converts a format name, like "png" or "TIFF", into a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case PNG, BMP, TIFF, PDF:
		return f, nil
	case "tif":
		return TIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Sink stores a snapshot of a drawing. Save returns a name under which
// the drawing can be found again.
type Sink interface {
	Save(img image.Image) (string, error)
}

// Dir is a Sink which writes every drawing into a new file in a
// directory. File names are random UUIDs, so that earlier drawings are
// never overwritten.
type Dir struct {
	Path   string
	Format Format
}

// NewDir returns a Sink writing files of the given format into path.
func NewDir(path string, format Format) *Dir {
	return &Dir{Path: path, Format: format}
}

// Save implements the Sink interface. The directory is created if
// needed. The returned string is the path of the new file.
func (d *Dir) Save(img image.Image) (name string, err error) {
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return "", fmt.Errorf("gallery: %w", err)
	}

	format := d.Format
	if format == "" {
		format = PNG
	}
	name = filepath.Join(d.Path, uuid.NewString()+"."+string(format))

	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("gallery: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("gallery: %w", cerr)
		}
		if err != nil {
			os.Remove(name)
			name = ""
		}
	}()

	if err := Encode(f, img, format); err != nil {
		return "", err
	}
	return name, nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case PDF:
		err = encodePDF(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

// encodePDF writes a one-page PDF file which shows img at one point per
// pixel.
func encodePDF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	width, height := float64(b.Dx()), float64(b.Dy())

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	doc.SetCreator("fingerpaint", true)
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return err
	}
	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("drawing", opt, buf)
	doc.ImageOptions("drawing", 0, 0, width, height, false, opt, 0, "")

	return doc.Output(w)
}
