package vlist

import "testing"

func TestThrottle_CoalescesBursts(t *testing.T) {
	surface := newFakeSurface(200)
	scheduler := &manualScheduler{}
	recomputes := 0
	throttle := newScrollThrottle(surface, scheduler, func() { recomputes++ })

	// a burst of scroll notifications within one frame
	surface.SetScrollTop(10)
	surface.SetScrollTop(20)
	surface.SetScrollTop(30)

	if len(scheduler.queue) != 1 {
		t.Fatalf("expected exactly one scheduled recompute, got %d", len(scheduler.queue))
	}
	scheduler.fire()
	if recomputes != 1 {
		t.Errorf("expected one recompute, got %d", recomputes)
	}

	// the next notification schedules a fresh one
	surface.SetScrollTop(40)
	if len(scheduler.queue) != 1 {
		t.Fatalf("expected a new scheduled recompute, got %d", len(scheduler.queue))
	}
	scheduler.fire()
	if recomputes != 2 {
		t.Errorf("expected two recomputes, got %d", recomputes)
	}

	throttle.stop()
}

func TestThrottle_NotificationDuringRecomputeSchedulesFollowUp(t *testing.T) {
	surface := newFakeSurface(200)
	scheduler := &manualScheduler{}
	recomputes := 0
	var throttle *scrollThrottle
	throttle = newScrollThrottle(surface, scheduler, func() {
		recomputes++
		if recomputes == 1 {
			// a scroll arriving while the recompute runs must not be dropped
			throttle.notify()
		}
	})

	surface.SetScrollTop(10)
	scheduler.fire()
	if recomputes != 1 {
		t.Fatalf("expected one recompute after first frame, got %d", recomputes)
	}
	if len(scheduler.queue) != 1 {
		t.Fatalf("expected a follow-up recompute scheduled, got %d", len(scheduler.queue))
	}
	scheduler.fire()
	if recomputes != 2 {
		t.Errorf("expected the follow-up to settle at two recomputes, got %d", recomputes)
	}
	if len(scheduler.queue) != 0 {
		t.Errorf("expected nothing further scheduled, got %d", len(scheduler.queue))
	}
}

func TestThrottle_StopDetachesListener(t *testing.T) {
	surface := newFakeSurface(200)
	scheduler := &manualScheduler{}
	recomputes := 0
	throttle := newScrollThrottle(surface, scheduler, func() { recomputes++ })

	throttle.stop()
	surface.SetScrollTop(10)
	if len(scheduler.queue) != 0 {
		t.Errorf("expected nothing scheduled after stop, got %d", len(scheduler.queue))
	}

	// stopping twice is safe
	throttle.stop()
}
