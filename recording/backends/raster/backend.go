// Package raster provides a raster backend for the recording system.
// It renders recordings into an *image.RGBA using the vector rasterizer
// from golang.org/x/image/vector and the 7x13 bitmap font for text.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/plotview/recording/backends/raster"
//
//	backend := raster.NewBackend()
//	if err := rec.Playback(backend); err != nil {
//	    // handle error
//	}
//	err := backend.SavePNG("frame.png")
package raster

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/plotview"
	"github.com/gogpu/plotview/recording"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

var errNothingRendered = errors.New("raster: nothing rendered")

// Backend renders recordings to a pixel image.
type Backend struct {
	img    *image.RGBA
	mask   *image.Alpha
	raster *vector.Rasterizer
	face   font.Face

	clip  image.Rectangle
	stack []image.Rectangle
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{face: basicfont.Face7x13}
}

// Begin allocates a transparent canvas of the given size.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid canvas size %dx%d", width, height)
	}
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
	b.mask = image.NewAlpha(b.img.Bounds())
	b.raster = vector.NewRasterizer(width, height)
	b.clip = b.img.Bounds()
	b.stack = b.stack[:0]
	return nil
}

// End finalizes the rendering.
func (b *Backend) End() error {
	return nil
}

// Width returns the canvas width, or 0 before Begin.
func (b *Backend) Width() int {
	if b.img == nil {
		return 0
	}
	return b.img.Bounds().Dx()
}

// Height returns the canvas height, or 0 before Begin.
func (b *Backend) Height() int {
	if b.img == nil {
		return 0
	}
	return b.img.Bounds().Dy()
}

// Image returns the rendered image.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// Save pushes the current clip.
func (b *Backend) Save() {
	b.stack = append(b.stack, b.clip)
}

// Restore pops the most recently saved clip.
func (b *Backend) Restore() {
	if len(b.stack) == 0 {
		return
	}
	b.clip = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
}

// SetClip intersects the clip with rect.
func (b *Backend) SetClip(rect recording.Rect) {
	b.clip = b.clip.Intersect(rect.Image())
}

// ClearClip resets the clip to the whole canvas.
func (b *Backend) ClearClip() {
	b.clip = b.img.Bounds()
}

// FillRect fills rect with c.
func (b *Backend) FillRect(rect recording.Rect, c color.RGBA) {
	r := b.clip.Intersect(rect.Image())
	if r.Empty() {
		return
	}
	draw.Draw(b.img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// StrokeLine strokes the segment from-to.
func (b *Backend) StrokeLine(from, to plotview.Point, s recording.Stroke) {
	b.StrokePolyline([]plotview.Point{from, to}, s)
}

// StrokePolyline strokes pts, applying the dash pattern if any.
func (b *Backend) StrokePolyline(pts []plotview.Point, s recording.Stroke) {
	if len(pts) < 2 || b.clip.Empty() || s.Color.A == 0 {
		return
	}
	half := math.Max(s.Width, 1) / 2

	b.raster.Reset(b.img.Bounds().Dx(), b.img.Bounds().Dy())
	for _, run := range recording.DashPolyline(pts, s.Dash) {
		for i := 1; i < len(run); i++ {
			b.addSegment(run[i-1], run[i], half)
		}
	}
	b.paint(s.Color)
}

// addSegment adds the quad covering a thick line from a to b.
func (b *Backend) addSegment(a, c plotview.Point, half float64) {
	d := c.Sub(a)
	l := d.Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return
	}
	// Unit normal times half width.
	n := plotview.Pt(-d.Y/l*half, d.X/l*half)
	// Extend each end by half a pixel so joints do not show gaps.
	e := d.Mul(half / l)
	a, c = a.Sub(e), c.Add(e)

	z := b.raster
	z.MoveTo(float32(a.X+n.X), float32(a.Y+n.Y))
	z.LineTo(float32(c.X+n.X), float32(c.Y+n.Y))
	z.LineTo(float32(c.X-n.X), float32(c.Y-n.Y))
	z.LineTo(float32(a.X-n.X), float32(a.Y-n.Y))
	z.ClosePath()
}

// paint composites the rasterizer's coverage through the clip.
func (b *Backend) paint(c color.RGBA) {
	clear(b.mask.Pix)
	b.raster.Draw(b.mask, b.mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(b.img, b.clip, image.NewUniform(c), image.Point{}, b.mask, b.clip.Min, draw.Over)
}

// DrawText draws text with its top edge at y.
func (b *Backend) DrawText(text string, x, y float64, align recording.Align, c color.RGBA) {
	if text == "" || b.clip.Empty() {
		return
	}
	w := float64(font.MeasureString(b.face, text)) / 64
	switch align {
	case recording.AlignCenter:
		x -= w / 2
	case recording.AlignRight:
		x -= w
	}
	ascent := float64(b.face.Metrics().Ascent) / 64

	d := font.Drawer{
		Dst:  b.img.SubImage(b.clip).(*image.RGBA),
		Src:  image.NewUniform(c),
		Face: b.face,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y+ascent))),
	}
	d.DrawString(text)
}

// WriteTo encodes the image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, errNothingRendered
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SavePNG writes the image to a PNG file.
func (b *Backend) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriter(f)
	if _, err := b.WriteTo(bw); err != nil {
		return err
	}
	return bw.Flush()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
