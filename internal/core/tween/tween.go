// Package tween implements a deterministic, stepped interpolation engine.
//
// Tweens are keyed by (target, property). Starting a tween on an occupied
// slot replaces the previous one, and Cancel releases a slot without firing
// its completion callback. The engine only moves when Advance is called, so
// tests and the frame loop alike control time explicitly.
package tween

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/deskshell/deskshell/pkg/geom"
)

// TargetID scopes property slots. Two targets may animate the same property
// name independently.
type TargetID string

// Property is a slot within a target, e.g. "position" or "fov".
type Property string

type slotKey struct {
	target TargetID
	prop   Property
}

// Handle identifies one scheduled tween.
type Handle struct {
	ID     string
	Target TargetID
	Prop   Property
}

type tween struct {
	id       string
	key      slotKey
	delay    time.Duration
	elapsed  time.Duration
	duration time.Duration
	easing   Easing
	apply    func(progress float64)
	complete func()
	canceled bool
	done     bool
}

// Engine owns all live tweens. Advance must be driven from a single
// goroutine (the frame loop); the other methods may be called from handlers
// running inside that same tick.
type Engine struct {
	mu    sync.Mutex
	order []*tween
	slots map[slotKey]*tween
}

// NewEngine creates an empty Engine.
func NewEngine() *Engine {
	return &Engine{slots: make(map[slotKey]*tween)}
}

// Spec describes one interpolation to schedule.
type Spec struct {
	Target     TargetID
	Prop       Property
	Duration   time.Duration
	StartDelay time.Duration
	Easing     Easing

	// Apply receives eased progress in [0,1] on every step including the
	// final one. Required.
	Apply func(progress float64)
	// OnComplete fires exactly once after the final Apply(1). Optional.
	OnComplete func()
}

// Animate schedules a tween, replacing any tween already occupying the
// (target, property) slot. A non-positive duration with no delay applies the
// end state and completes synchronously.
func (e *Engine) Animate(s Spec) Handle {
	if s.Easing == nil {
		s.Easing = Linear
	}
	t := &tween{
		id:       uuid.NewString(),
		key:      slotKey{target: s.Target, prop: s.Prop},
		delay:    s.StartDelay,
		duration: s.Duration,
		easing:   s.Easing,
		apply:    s.Apply,
		complete: s.OnComplete,
	}

	if s.Duration <= 0 && s.StartDelay <= 0 {
		e.mu.Lock()
		e.dropSlotLocked(t.key)
		e.mu.Unlock()
		if t.apply != nil {
			t.apply(1)
		}
		if t.complete != nil {
			t.complete()
		}
		return Handle{ID: t.id, Target: s.Target, Prop: s.Prop}
	}

	e.mu.Lock()
	e.dropSlotLocked(t.key)
	e.slots[t.key] = t
	e.order = append(e.order, t)
	e.mu.Unlock()
	return Handle{ID: t.id, Target: s.Target, Prop: s.Prop}
}

// AnimateFloat interpolates a scalar from -> to.
func (e *Engine) AnimateFloat(target TargetID, prop Property, from, to float64, duration time.Duration, easing Easing, onUpdate func(float64), onComplete func()) Handle {
	return e.Animate(Spec{
		Target:   target,
		Prop:     prop,
		Duration: duration,
		Easing:   easing,
		Apply: func(p float64) {
			if onUpdate != nil {
				onUpdate(geom.Lerp(from, to, p))
			}
		},
		OnComplete: onComplete,
	})
}

// AnimateVec3 interpolates a vector from -> to.
func (e *Engine) AnimateVec3(target TargetID, prop Property, from, to geom.Vec3, duration time.Duration, easing Easing, onUpdate func(geom.Vec3), onComplete func()) Handle {
	return e.Animate(Spec{
		Target:   target,
		Prop:     prop,
		Duration: duration,
		Easing:   easing,
		Apply: func(p float64) {
			if onUpdate != nil {
				onUpdate(from.Lerp(to, p))
			}
		},
		OnComplete: onComplete,
	})
}

// Cancel releases tween slots without firing completion callbacks. With no
// properties it cancels every tween on the target. Idempotent when nothing
// is running.
func (e *Engine) Cancel(target TargetID, props ...Property) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(props) == 0 {
		for key, t := range e.slots {
			if key.target == target {
				t.canceled = true
				delete(e.slots, key)
			}
		}
		return
	}
	for _, p := range props {
		e.dropSlotLocked(slotKey{target: target, prop: p})
	}
}

// Active returns the number of live tweens.
func (e *Engine) Active() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.slots)
}

// Running reports whether the (target, property) slot is occupied.
func (e *Engine) Running(target TargetID, prop Property) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.slots[slotKey{target: target, prop: prop}]
	return ok
}

// Advance steps every live tween by dt. Apply callbacks run outside the
// engine lock so handlers may schedule or cancel tweens; tweens scheduled
// during an Advance are first stepped on the next call.
func (e *Engine) Advance(dt time.Duration) {
	e.mu.Lock()
	snapshot := make([]*tween, len(e.order))
	copy(snapshot, e.order)
	e.mu.Unlock()

	for _, t := range snapshot {
		e.mu.Lock()
		if t.canceled || t.done {
			e.mu.Unlock()
			continue
		}
		step := dt
		if t.delay > 0 {
			if step < t.delay {
				t.delay -= step
				e.mu.Unlock()
				continue
			}
			step -= t.delay
			t.delay = 0
		}
		t.elapsed += step
		progress := 1.0
		if t.duration > 0 && t.elapsed < t.duration {
			progress = float64(t.elapsed) / float64(t.duration)
		}
		finished := progress >= 1
		if finished {
			t.done = true
			if e.slots[t.key] == t {
				delete(e.slots, t.key)
			}
		}
		eased := t.easing(geom.Clamp01(progress))
		if finished {
			eased = 1
		}
		e.mu.Unlock()

		if t.apply != nil {
			t.apply(eased)
		}
		if finished && t.complete != nil {
			t.complete()
		}
	}

	e.compact()
}

// compact drops finished and canceled tweens from the step order.
func (e *Engine) compact() {
	e.mu.Lock()
	defer e.mu.Unlock()
	kept := e.order[:0]
	for _, t := range e.order {
		if !t.done && !t.canceled {
			kept = append(kept, t)
		}
	}
	e.order = kept
}

func (e *Engine) dropSlotLocked(key slotKey) {
	if prev, ok := e.slots[key]; ok {
		prev.canceled = true
		delete(e.slots, key)
	}
}
