package layers

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/plotview"
	"github.com/gogpu/plotview/recording"
)

// transformEpsilon is the tolerance under which two view transforms are
// treated as the same frame.
const transformEpsilon = 1e-15

// ErrNoBackend is returned by Painter.Paint when the painter has no
// playback target.
var ErrNoBackend = errors.New("layers: painter has no backend")

// Painter composes layers and plays them back on a backend, skipping the
// redraw when neither the transform nor the canvas size changed since the
// last painted frame.
//
// Layers whose content changes independently of the view, such as a
// crosshair, call MarkDirty to force the next Paint.
//
// Painter is not safe for concurrent use.
type Painter struct {
	backend recording.Backend
	layers  []Layer

	last    plotview.ViewState
	painted bool
	dirty   bool

	frames  uint64
	skipped uint64
}

// NewPainter creates a painter drawing layers onto backend.
func NewPainter(backend recording.Backend, layers ...Layer) *Painter {
	return &Painter{backend: backend, layers: layers, dirty: true}
}

// MarkDirty forces the next Paint to redraw.
func (p *Painter) MarkDirty() {
	p.dirty = true
}

// IsDirty reports whether Paint would redraw for s.
func (p *Painter) IsDirty(s plotview.ViewState) bool {
	if p.dirty || !p.painted {
		return true
	}
	return s.CanvasSize != p.last.CanvasSize ||
		!s.Transform.ApproxEqual(p.last.Transform, transformEpsilon)
}

// Paint draws the frame for s and reports whether it redrew.
func (p *Painter) Paint(s plotview.ViewState) (bool, error) {
	if p.backend == nil {
		return false, ErrNoBackend
	}
	if !p.IsDirty(s) {
		p.skipped++
		return false, nil
	}
	rec := Compose(s, p.layers...)
	if err := rec.Playback(p.backend); err != nil {
		return false, fmt.Errorf("layers: playback: %w", err)
	}
	p.last = s
	p.painted = true
	p.dirty = false
	p.frames++
	plotview.Logger().Debug("layers: frame painted",
		slog.Int("commands", len(rec.Commands())),
		slog.Uint64("frame", p.frames))
	return true, nil
}

// Stats returns how many frames were painted and how many were skipped.
func (p *Painter) Stats() (painted, skipped uint64) {
	return p.frames, p.skipped
}

// Attach subscribes p to v: every state change schedules a paint on sched,
// so several changes within one host frame produce a single redraw. Paint
// errors are logged. The returned function detaches the painter.
func Attach(v *plotview.Viewport, sched *plotview.FrameScheduler, p *Painter) (detach func()) {
	unsubscribe := v.Subscribe(func(s plotview.ViewState) {
		sched.Schedule(func() {
			if _, err := p.Paint(s); err != nil {
				plotview.Logger().Warn("layers: paint failed", slog.Any("error", err))
			}
		})
	})
	return func() {
		unsubscribe()
		sched.Cancel()
	}
}
