package carousel

import (
	"testing"
	"time"
)

func TestFramesDropsFinishedSubscribers(t *testing.T) {
	var f Frames
	calls := 0
	f.Subscribe(func(time.Duration) bool {
		calls++
		return calls < 3
	})
	for i := 1; i <= 5; i++ {
		f.Tick(time.Duration(i) * time.Millisecond)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if f.Len() != 0 {
		t.Errorf("Len() = %d, want 0", f.Len())
	}
	if f.Now() != 5*time.Millisecond {
		t.Errorf("Now() = %v, want 5ms", f.Now())
	}
}

func TestFramesCancel(t *testing.T) {
	var f Frames
	calls := 0
	sub := f.Subscribe(func(time.Duration) bool {
		calls++
		return true
	})
	f.Tick(1)
	sub.Cancel()
	f.Tick(2)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if sub.Active() {
		t.Error("cancelled subscription still active")
	}
	var nilSub *Subscription
	nilSub.Cancel()
}

func TestFramesSubscribeDuringTickRunsNextFrame(t *testing.T) {
	var f Frames
	var seen []time.Duration
	f.Subscribe(func(now time.Duration) bool {
		f.Subscribe(func(now time.Duration) bool {
			seen = append(seen, now)
			return false
		})
		return false
	})
	f.Tick(1)
	if len(seen) != 0 {
		t.Fatalf("nested subscriber ran in the same frame")
	}
	f.Tick(2)
	if len(seen) != 1 || seen[0] != 2 {
		t.Errorf("seen = %v, want [2]", seen)
	}
}

func TestFramesCancelFromOtherCallback(t *testing.T) {
	var f Frames
	var second *Subscription
	calls := 0
	f.Subscribe(func(time.Duration) bool {
		second.Cancel()
		return true
	})
	second = f.Subscribe(func(time.Duration) bool {
		calls++
		return true
	})
	f.Tick(1)
	f.Tick(2)
	if calls != 0 {
		t.Errorf("cancelled subscriber ran %d times", calls)
	}
	if f.Len() != 1 {
		t.Errorf("Len() = %d, want 1", f.Len())
	}
}
