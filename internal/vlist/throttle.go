package vlist

// scrollThrottle coalesces bursts of scroll notifications into at most one
// recompute per frame. The pending flag is cleared before the recompute body
// runs, so a notification arriving during execution schedules exactly one
// follow-up rather than being dropped.
type scrollThrottle struct {
	scheduler FrameScheduler
	recompute func()
	pending   bool
	cancel    func()
}

func newScrollThrottle(surface Surface, scheduler FrameScheduler, recompute func()) *scrollThrottle {
	t := &scrollThrottle{
		scheduler: scheduler,
		recompute: recompute,
	}
	t.cancel = surface.OnScroll(t.notify)
	return t
}

func (t *scrollThrottle) notify() {
	if t.pending {
		return
	}
	t.pending = true
	t.scheduler.OnNextFrame(func() {
		t.pending = false
		t.recompute()
	})
}

// stop detaches the scroll listener. A frame callback already scheduled at
// this point may still fire; the recompute func is responsible for checking
// its own disposed state.
func (t *scrollThrottle) stop() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}
