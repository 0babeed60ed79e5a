package plotview

import "testing"

func TestFrameSchedulerCoalesces(t *testing.T) {
	var f FrameScheduler
	var ran []int
	for i := 0; i < 3; i++ {
		i := i
		f.Schedule(func() { ran = append(ran, i) })
	}
	if !f.Pending() {
		t.Fatal("Pending() = false after Schedule")
	}
	if !f.Flush() {
		t.Fatal("Flush() = false, want true")
	}
	if len(ran) != 1 || ran[0] != 2 {
		t.Errorf("ran = %v, want only the last frame [2]", ran)
	}
	if f.Flush() {
		t.Error("second Flush() ran a frame")
	}
	scheduled, done := f.Stats()
	if scheduled != 3 || done != 1 {
		t.Errorf("Stats() = (%d, %d), want (3, 1)", scheduled, done)
	}
}

func TestFrameSchedulerCancel(t *testing.T) {
	var f FrameScheduler
	called := false
	f.Schedule(func() { called = true })
	f.Cancel()
	if f.Pending() || f.Flush() || called {
		t.Error("cancelled frame still ran")
	}
}

func TestFrameSchedulerReschedulesFromFrame(t *testing.T) {
	var f FrameScheduler
	n := 0
	var frame func()
	frame = func() {
		n++
		if n < 3 {
			f.Schedule(frame)
		}
	}
	f.Schedule(frame)
	for f.Flush() {
	}
	if n != 3 {
		t.Errorf("frames run = %d, want 3", n)
	}
}
