package tween

import "time"

// Step is one entry of a Timeline: an interpolation with an explicit start
// offset from the timeline origin. Overlapping steps are expressed by giving
// a step an offset earlier than its predecessor's end.
type Step struct {
	StartOffset time.Duration
	Duration    time.Duration
	Target      TargetID
	Prop        Property
	From, To    float64
	Easing      Easing
	OnUpdate    func(float64)
	OnComplete  func()
}

// Timeline is an ordered list of steps interpreted by the Engine. It replaces
// chained relative-offset animation calls with explicit scheduling data.
type Timeline struct {
	Steps []Step
}

// Add appends a step and returns the timeline for chaining.
func (tl *Timeline) Add(s Step) *Timeline {
	tl.Steps = append(tl.Steps, s)
	return tl
}

// End returns the instant the last-finishing step completes.
func (tl *Timeline) End() time.Duration {
	var end time.Duration
	for _, s := range tl.Steps {
		if t := s.StartOffset + s.Duration; t > end {
			end = t
		}
	}
	return end
}

// Play schedules every step on the engine. Steps occupy their (target,
// property) slots immediately, so two timeline steps animating the same slot
// replace each other; give sequential steps on one slot distinct properties
// or play them from a completion callback.
func (tl *Timeline) Play(e *Engine) []Handle {
	handles := make([]Handle, 0, len(tl.Steps))
	for _, s := range tl.Steps {
		step := s
		easing := step.Easing
		if easing == nil {
			easing = Linear
		}
		handles = append(handles, e.Animate(Spec{
			Target:     step.Target,
			Prop:       step.Prop,
			Duration:   step.Duration,
			StartDelay: step.StartOffset,
			Easing:     easing,
			Apply: func(p float64) {
				if step.OnUpdate != nil {
					step.OnUpdate(step.From + (step.To-step.From)*p)
				}
			},
			OnComplete: step.OnComplete,
		}))
	}
	return handles
}
