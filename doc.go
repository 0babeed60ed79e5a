// Package plotview maps an unbounded data plane onto a finite pixel canvas
// and lets a user pan and zoom that mapping with pointer and wheel gestures.
//
// # Overview
//
// The view is described by an affine Matrix from data space to canvas
// pixels. A Viewport owns the current ViewState (the matrix plus the
// visible data rectangle derived from it) and advances it only through
// the pure Reduce function, driven by gesture and resize events.
//
// # Quick Start
//
//	v := plotview.New(plotview.Sz(800, 400))
//	v.Subscribe(func(s plotview.ViewState) {
//	    // schedule a redraw of grid, axes and series
//	})
//
//	// Zoom in under the cursor
//	v.Wheel(plotview.Pt(400, 200), -1)
//
//	// Drag-pan with the primary button
//	v.PointerDown(plotview.RegionPlot, plotview.ButtonPrimary, plotview.Pt(10, 10))
//	v.PointerMove(plotview.Pt(60, 30))
//	v.PointerUp()
//
// # Architecture
//
// The library is organized into:
//   - Public API: Matrix, Point, Rect, ViewState, Viewport, FrameScheduler
//   - ticks: nice-number numeric axis ticks and labels
//   - timeaxis: calendar-aware time axis ticks and labels
//   - labels: label width measurement
//   - sample: function sampling and series culling
//   - recording, layers: draw-command display lists and the chart layers
//     that produce them
//
// # Coordinate System
//
// Canvas coordinates follow the usual raster convention:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Data coordinates are whatever the transform says they are; a negative
// D component gives a Y-up chart.
package plotview
