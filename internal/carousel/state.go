package carousel

import "time"

// Phase is the engine's interaction mode.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseAnimating
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseAnimating:
		return "animating"
	}
	return "unknown"
}

// Drag is the pointer trail of an active drag.
type Drag struct {
	StartX, StartY float64
	Trail          []float64
}

// Net returns the first sample minus the last one. Positive values mean
// the pointer travelled left.
func (d Drag) Net() float64 {
	if len(d.Trail) < 2 {
		return 0
	}
	return d.Trail[0] - d.Trail[len(d.Trail)-1]
}

// State is the engine's mutable state as a value. Transition methods
// return a new State and never touch anything else.
type State struct {
	Phase    Phase
	Current  int
	Distance float64
	Drag     Drag      // valid while dragging
	Anim     Animation // valid while animating
}

func (s State) pressed(x, y float64) State {
	s.Phase = PhaseDragging
	s.Drag = Drag{StartX: x, StartY: y, Trail: []float64{x}}
	return s
}

func (s State) dragged(x float64) State {
	trail := s.Drag.Trail
	last := trail[len(trail)-1]
	s.Drag.Trail = append(trail, x)
	s.Distance += x - last
	return s
}

func (s State) released() (State, float64) {
	net := s.Drag.Net()
	s.Phase = PhaseIdle
	s.Drag = Drag{}
	return s, net
}

func (s State) animate(next int, a Animation) State {
	s.Phase = PhaseAnimating
	s.Current = next
	s.Distance = a.Start
	s.Drag = Drag{}
	s.Anim = a
	return s
}

// frame advances a running animation and reports whether it settled.
func (s State) frame(now time.Duration) (State, bool) {
	a, offset, done := s.Anim.frame(now)
	s.Anim = a
	s.Distance = offset
	if done {
		s.Phase = PhaseIdle
		s.Anim = Animation{}
	}
	return s, done
}

func (s State) centered(distance float64) State {
	s.Distance = distance
	return s
}
