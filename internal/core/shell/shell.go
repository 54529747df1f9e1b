// Package shell is the interactive-shell orchestrator: it owns the mode bus,
// the scene, the camera animator, the window manager, the console, the
// content store and the router, and wires their cross-reactions.
package shell

import (
	"context"
	"sync"
	"time"

	"github.com/deskshell/deskshell/internal/core/camera"
	"github.com/deskshell/deskshell/internal/core/console"
	"github.com/deskshell/deskshell/internal/core/content"
	"github.com/deskshell/deskshell/internal/core/events"
	busPkg "github.com/deskshell/deskshell/internal/core/events/bus"
	"github.com/deskshell/deskshell/internal/core/interaction"
	"github.com/deskshell/deskshell/internal/core/observability/log"
	"github.com/deskshell/deskshell/internal/core/router"
	"github.com/deskshell/deskshell/internal/core/scene"
	"github.com/deskshell/deskshell/internal/core/tween"
	"github.com/deskshell/deskshell/internal/core/windows"
	"github.com/deskshell/deskshell/pkg/geom"
)

// Shell ties the subsystems together. It implements interaction.Sink so the
// raycast dispatcher routes clicks straight into it.
type Shell struct {
	cfg    Config
	logger log.Log

	bus      busPkg.EventBus
	engine   *tween.Engine
	graph    *scene.Graph
	loader   *scene.Loader
	cam      *scene.Camera
	controls *scene.OrbitControls
	animator *camera.Animator
	registry *camera.Registry
	wm       *windows.Manager
	console  *console.Console
	content  *content.Store
	router   *router.Router
	dispatch *interaction.Dispatcher

	mu   sync.Mutex
	mode Mode
	subs []busPkg.Subscription
}

var _ interaction.Sink = (*Shell)(nil)

// New builds a fully wired shell. When no scene sources are given the
// built-in desk scene is used.
func New(cfg Config, logger log.Log, port content.LocalePort, sources ...scene.Source) *Shell {
	if logger == nil {
		logger = log.Nop()
	}

	s := &Shell{
		cfg:    cfg,
		logger: logger,
		bus:    busPkg.New(),
		engine: tween.NewEngine(),
		graph:  scene.NewGraph(),
		mode:   ModeDesk,
	}

	s.content = content.NewStore(s.bus, logger, port)
	s.registry = camera.NewRegistry(logger, cfg.CameraViews()...)

	start := s.registry.Get(camera.ViewDesktop)
	s.cam = scene.NewCamera(start.Position, start.Target, start.FOV)
	s.controls = scene.NewOrbitControls(start.Target)
	s.animator = camera.NewAnimator(s.engine, logger, cfg.Anchor())

	s.wm = windows.NewManager(logger, cfg.WindowDefs(func(key string) string {
		return s.content.Text(content.Key(key))
	})...)
	s.console = console.New(s.content, s.bus, logger, cfg.ConsoleAliases)
	s.router = router.New(s.bus, logger, router.RouteResume)

	if len(sources) == 0 {
		sources = []scene.Source{DefaultSceneSource()}
	}
	s.loader = scene.NewLoader(s.graph, s.bus, logger, cfg.SceneTagRules(), sources...)

	s.dispatch = interaction.New(s.graph, s.cam, s, logger)
	s.dispatch.SetViewport(cfg.ViewportWidth, cfg.ViewportHeight)

	s.subscribe(events.WindowOpen, s.onWindowOpen)
	s.subscribe(events.WindowsEnter, s.onWindowsEnter)
	s.subscribe(events.WindowsExit, s.onWindowsExit)
	s.subscribe(events.LocaleChanged, s.onLocaleChanged)

	return s
}

// Load resolves the scene assets. Interaction stays a no-op until it
// succeeds; a failure is retryable via Loader().Retry.
func (s *Shell) Load(ctx context.Context) error {
	return s.loader.Load(ctx)
}

// Frame advances all running animations by dt. Call once per display frame
// from a single goroutine.
func (s *Shell) Frame(dt time.Duration) {
	s.engine.Advance(dt)
}

// RequestView flies the camera to the named view, switching mode. Illegal
// transitions are dropped with a diagnostic; unknown names resolve to the
// desktop view via the registry fallback.
func (s *Shell) RequestView(name string) {
	target := modeForView(name)

	s.mu.Lock()
	from := s.mode
	if !canTransition(from, target) {
		s.mu.Unlock()
		s.logger.Debug("transition rejected",
			log.String("from", from.String()), log.String("to", target.String()))
		return
	}
	s.mode = target
	s.mu.Unlock()

	view := s.registry.Get(name)
	s.animator.AnimateTo(s.cam, s.controls, view, func() {
		_ = s.bus.Publish(busPkg.NewEvent(events.ZoomComplete, "shell", view.Name))
		if notify, ok := modeEnterEvents[target]; ok {
			_ = s.bus.Publish(busPkg.NewEvent(notify, "shell", nil))
		}
	})
	s.logger.Info("mode change",
		log.String("from", from.String()), log.String("to", target.String()))
}

// modeEnterEvents are the notifications published after the zoom into a mode
// completes. Windows mode is announced by its request event instead.
var modeEnterEvents = map[Mode]string{
	ModeMonitor:   events.MonitorEnter,
	ModeConsole:   events.ConsoleEnter,
	ModeBlackHole: events.BlackHoleEnter,
}

// EnterMode flies to the mode's canonical view, subject to the same
// legality rules as RequestView.
func (s *Shell) EnterMode(m Mode) {
	if view, ok := viewsByMode[m]; ok {
		s.RequestView(view)
	}
}

// OpenDocument navigates to an external document route (printer click).
func (s *Shell) OpenDocument(name string) {
	s.router.Navigate(router.Route(name))
}

// KeyPressed feeds a 3D keyboard key into the console while in console mode.
func (s *Shell) KeyPressed(r rune) {
	if s.Mode() != ModeConsole {
		return
	}
	switch r {
	case '\n', '\r':
		s.console.Enter()
	case '\b':
		s.console.Backspace()
	default:
		s.console.Type(r)
	}
}

// ExitWindows is the taskbar's leave affordance: it broadcasts the exit
// request so every dependent reacts, the shell itself included.
func (s *Shell) ExitWindows() {
	_ = s.bus.Publish(busPkg.NewEvent(events.WindowsExit, "shell", nil))
}

// Mode returns the current mode.
func (s *Shell) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Close cancels the shell's bus subscriptions.
func (s *Shell) Close() {
	for _, sub := range s.subs {
		_ = s.bus.Unsubscribe(sub)
	}
	s.subs = nil
}

func (s *Shell) Bus() busPkg.EventBus                { return s.bus }
func (s *Shell) Windows() *windows.Manager           { return s.wm }
func (s *Shell) Console() *console.Console           { return s.console }
func (s *Shell) Content() *content.Store             { return s.content }
func (s *Shell) Router() *router.Router              { return s.router }
func (s *Shell) Camera() *scene.Camera               { return s.cam }
func (s *Shell) Controls() *scene.OrbitControls      { return s.controls }
func (s *Shell) Graph() *scene.Graph                 { return s.graph }
func (s *Shell) Loader() *scene.Loader               { return s.loader }
func (s *Shell) Dispatcher() *interaction.Dispatcher { return s.dispatch }

func (s *Shell) subscribe(eventType string, handler busPkg.EventHandler) {
	sub, err := s.bus.Subscribe(eventType, handler)
	if err != nil {
		s.logger.Error("subscription failed", log.String("event", eventType), log.Err(err))
		return
	}
	s.subs = append(s.subs, sub)
}

func (s *Shell) onWindowOpen(e busPkg.Event) error {
	id, ok := e.Data().(string)
	if !ok {
		return nil
	}
	s.wm.Open(windows.ID(id))
	if s.Mode() != ModeWindows {
		s.RequestView(camera.ViewWindows)
	}
	return nil
}

func (s *Shell) onWindowsEnter(busPkg.Event) error {
	if s.Mode() != ModeWindows {
		s.RequestView(camera.ViewWindows)
	}
	return nil
}

func (s *Shell) onWindowsExit(busPkg.Event) error {
	if s.Mode() == ModeWindows {
		s.RequestView(camera.ViewMonitor)
	}
	return nil
}

func (s *Shell) onLocaleChanged(busPkg.Event) error {
	titles := make(map[windows.ID]string, len(s.cfg.Windows))
	for _, w := range s.cfg.Windows {
		titles[windows.ID(w.ID)] = s.content.Text(content.Key(w.TitleKey))
	}
	s.wm.Retitle(titles)
	return nil
}

// DefaultSceneSource returns the built-in desk scene: the interactive props
// the default tag rules expect, positioned to match the default views.
func DefaultSceneSource() scene.Source {
	return scene.SourceFunc{
		GroupName: "desk",
		Fn: func(context.Context) ([]*scene.Object, error) {
			return []*scene.Object{
				scene.NewObject("mesa_top", geom.V3(0, 1.0, 0), 1.6),
				scene.NewObject("monitor_screen", geom.V3(0, 1.35, 0), 0.45),
				scene.NewObject("Bin_Body", geom.V3(-1.1, 0.4, 0), 0.35),
				scene.NewObject("hp_printer", geom.V3(1.1, 1.1, 0), 0.4),
				scene.NewObject("blackhole", geom.V3(0, 4, -30), 6),
			}, nil
		},
	}
}
