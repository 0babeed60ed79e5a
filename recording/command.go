package recording

import (
	"image/color"

	"github.com/gogpu/plotview"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSave      CommandType = iota // Save clip state
	CmdRestore                      // Restore previous clip state
	CmdSetClip                      // Intersect the clip with a rectangle
	CmdClearClip                    // Clip to the full canvas

	// Drawing commands
	CmdFillRect       // Fill an axis-aligned rectangle
	CmdStrokeLine     // Stroke a single line segment
	CmdStrokePolyline // Stroke a connected polyline
	CmdDrawText       // Draw a text label
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:           "Save",
	CmdRestore:        "Restore",
	CmdSetClip:        "SetClip",
	CmdClearClip:      "ClearClip",
	CmdFillRect:       "FillRect",
	CmdStrokeLine:     "StrokeLine",
	CmdStrokePolyline: "StrokePolyline",
	CmdDrawText:       "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PolylineRef is a reference to a polyline in the resource pool.
type PolylineRef uint32

// StrokeRef is a reference to a stroke style in the resource pool.
type StrokeRef uint32

// SaveCommand saves the current clip.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the most recently saved clip.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// SetClipCommand intersects the clip with a rectangle.
type SetClipCommand struct {
	Rect Rect
}

// Type implements Command.
func (SetClipCommand) Type() CommandType { return CmdSetClip }

// ClearClipCommand resets the clip to the full canvas.
type ClearClipCommand struct{}

// Type implements Command.
func (ClearClipCommand) Type() CommandType { return CmdClearClip }

// FillRectCommand fills a rectangle with a solid color.
type FillRectCommand struct {
	Rect  Rect
	Color color.RGBA
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// StrokeLineCommand strokes the segment From-To.
type StrokeLineCommand struct {
	From, To plotview.Point
	Stroke   StrokeRef
}

// Type implements Command.
func (StrokeLineCommand) Type() CommandType { return CmdStrokeLine }

// StrokePolylineCommand strokes a pooled polyline.
type StrokePolylineCommand struct {
	Points PolylineRef
	Stroke StrokeRef
}

// Type implements Command.
func (StrokePolylineCommand) Type() CommandType { return CmdStrokePolyline }

// DrawTextCommand draws a label. X is interpreted according to Align and
// Y is the top of the text.
type DrawTextCommand struct {
	Text  string
	X, Y  float64
	Align Align
	Color color.RGBA
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
