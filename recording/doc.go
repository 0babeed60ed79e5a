// Package recording captures a chart frame as a list of typed drawing
// commands that can be replayed to any Backend.
//
// Layers draw into a Recorder instead of a concrete canvas. The Recorder
// maps data-space geometry to canvas pixels through its current transform
// as it records, so every command in a Recording is expressed in canvas
// pixels and backends never see a view transform.
//
// # Architecture
//
// Commands fall into two groups:
//   - State commands (Save, Restore, SetClip, ClearClip)
//   - Drawing commands (FillRect, StrokeLine, StrokePolyline, DrawText)
//
// Polylines and stroke styles are stored once in a ResourcePool and
// referenced from commands by PolylineRef and StrokeRef.
//
// # Example
//
//	rec := recording.NewRecorder(800, 400)
//	rec.SetTransform(state.Transform)
//	rec.StrokePolyline(points, recording.Stroke{Width: 1, Color: blue})
//	r := rec.Finish()
//
//	backend, err := recording.NewBackend("raster")
//	if err != nil {
//	    // handle error
//	}
//	if err := r.Playback(backend); err != nil {
//	    // handle error
//	}
//
// # Backends
//
// Backends register themselves by name in init, in the style of
// database/sql drivers:
//
//	import _ "github.com/gogpu/plotview/recording/backends/raster"
package recording
