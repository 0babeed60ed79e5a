package recording

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/plotview"
)

// Backend is the interface that all playback targets implement. All
// coordinates are canvas pixels.
//
// A Backend manages its own clip stack for Save/Restore. Backends are
// created via the registry using NewBackend(name) and registered via
// Register() in their init() functions.
type Backend interface {
	// Begin prepares the backend for a canvas of the given size.
	Begin(width, height int) error

	// End finalizes the frame. Output methods may be used afterwards.
	End() error

	// Save pushes the current clip.
	Save()

	// Restore pops the clip pushed by the matching Save. If the stack is
	// empty, this is a no-op.
	Restore()

	// SetClip intersects the current clip with rect.
	SetClip(rect Rect)

	// ClearClip resets the clip to the full canvas.
	ClearClip()

	// FillRect fills an axis-aligned rectangle.
	FillRect(rect Rect, c color.RGBA)

	// StrokeLine strokes a single segment.
	StrokeLine(from, to plotview.Point, s Stroke)

	// StrokePolyline strokes a connected polyline.
	StrokePolyline(pts []plotview.Point, s Stroke)

	// DrawText draws a label whose top edge is at y. x is the left edge,
	// center or right edge according to align.
	DrawText(text string, x, y float64, align Align, c color.RGBA)
}

// WriterBackend extends Backend with the ability to write its output to
// an io.Writer. WriteTo should only be called after End.
type WriterBackend interface {
	Backend
	WriteTo(w io.Writer) (int64, error)
}

// ImageBackend extends Backend with access to the rendered image.
type ImageBackend interface {
	Backend
	Image() *image.RGBA
}
