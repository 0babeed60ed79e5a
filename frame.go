package plotview

// FrameScheduler coalesces redraw requests for one canvas onto the host's
// per-frame callback. At most one frame is pending: scheduling a new one
// supersedes the previous request before it runs.
//
// FrameScheduler is not safe for concurrent use; it lives on the same event
// loop as the Viewport.
type FrameScheduler struct {
	pending func()
	seq     uint64
	ran     uint64
}

// Schedule registers fn as the pending frame, cancelling any frame that
// was scheduled but has not run yet.
func (f *FrameScheduler) Schedule(fn func()) {
	f.pending = fn
	f.seq++
}

// Cancel drops the pending frame, if any.
func (f *FrameScheduler) Cancel() {
	f.pending = nil
}

// Pending reports whether a frame is waiting to run.
func (f *FrameScheduler) Pending() bool {
	return f.pending != nil
}

// Flush runs the pending frame and reports whether one ran. The host calls
// it once per animation frame.
func (f *FrameScheduler) Flush() bool {
	fn := f.pending
	if fn == nil {
		return false
	}
	f.pending = nil
	f.ran++
	fn()
	return true
}

// Stats returns how many frames were requested and how many actually ran.
func (f *FrameScheduler) Stats() (scheduled, ran uint64) {
	return f.seq, f.ran
}
