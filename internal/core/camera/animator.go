package camera

import (
	"fmt"

	"github.com/deskshell/deskshell/internal/core/observability/log"
	"github.com/deskshell/deskshell/internal/core/scene"
	"github.com/deskshell/deskshell/internal/core/tween"
	"github.com/deskshell/deskshell/pkg/geom"
)

// Property slots the animator occupies on the tween engine.
const (
	propPosition tween.Property = "position"
	propFOV      tween.Property = "fov"
	propTarget   tween.Property = "target"
)

// Animator flies a camera and its orbit controls toward a view. Each call
// first cancels whatever tweens the previous call left running on the same
// camera, so a transition interrupted mid-flight converges on the new view
// only.
type Animator struct {
	engine *tween.Engine
	logger log.Log

	// anchor is the fixed look-at reference used while the position tween is
	// in flight. Anchoring to a stable point makes the transition read as a
	// pan instead of a swivel toward the moving orbit target.
	anchor geom.Vec3
}

// NewAnimator wires an animator. anchor is the in-flight look-at point.
func NewAnimator(engine *tween.Engine, logger log.Log, anchor geom.Vec3) *Animator {
	if logger == nil {
		logger = log.Nop()
	}
	return &Animator{engine: engine, logger: logger, anchor: anchor}
}

func cameraTarget(cam *scene.Camera) tween.TargetID {
	return tween.TargetID(fmt.Sprintf("camera:%p", cam))
}

func controlsTarget(ctl *scene.OrbitControls) tween.TargetID {
	return tween.TargetID(fmt.Sprintf("controls:%p", ctl))
}

// AnimateTo starts the three concurrent interpolations toward the view:
// position and orbit target over the view's position duration, field of view
// over the FOV duration, all with the view's easing. onComplete, when given,
// fires exactly once after the position interpolation finishes. Zero
// durations apply their end state immediately.
func (a *Animator) AnimateTo(cam *scene.Camera, controls *scene.OrbitControls, view View, onComplete func()) {
	camID := cameraTarget(cam)
	ctlID := controlsTarget(controls)

	a.engine.Cancel(camID, propPosition, propFOV)
	a.engine.Cancel(ctlID, propTarget)

	easing, known := tween.ByName(view.Easing)
	if !known {
		a.logger.Warn("unknown easing, using linear",
			log.String("easing", view.Easing), log.String("view", view.Name))
	}

	anchor := a.anchor
	a.engine.AnimateVec3(camID, propPosition,
		cam.Position(), view.Position, view.PositionDuration, easing,
		func(p geom.Vec3) {
			cam.SetPosition(p)
			cam.LookAt(anchor)
		},
		func() {
			cam.LookAt(view.Target)
			if onComplete != nil {
				onComplete()
			}
		})

	a.engine.AnimateVec3(ctlID, propTarget,
		controls.Target(), view.Target, view.PositionDuration, easing,
		controls.SetTarget, nil)

	a.engine.AnimateFloat(camID, propFOV,
		cam.FOV(), view.FOV, view.FOVDuration, easing,
		cam.SetFOV, nil)

	a.logger.Debug("camera transition started",
		log.String("view", view.Name),
		log.Duration("position", view.PositionDuration),
		log.Duration("fov", view.FOVDuration))
}

// InFlight reports whether a position transition is currently running for
// the camera.
func (a *Animator) InFlight(cam *scene.Camera) bool {
	return a.engine.Running(cameraTarget(cam), propPosition)
}
