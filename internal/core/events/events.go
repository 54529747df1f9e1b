// Package events declares the mode-bus signal names exchanged between the
// scene, the window manager, the console and the router. Keeping the names
// here makes the event contract a closed, statically-checkable set instead of
// ad-hoc strings scattered across subsystems.
package events

const (
	// Scene / camera transitions.
	MonitorEnter   = "monitor.enter"
	ConsoleEnter   = "console.enter"
	WindowsEnter   = "windows.enter"
	WindowsExit    = "windows.exit"
	BlackHoleEnter = "blackhole.enter"
	ZoomComplete   = "zoom.complete"

	// Window manager requests.
	WindowOpen = "window.open"

	// Asset pipeline.
	SceneLoaded     = "scene.loaded"
	SceneLoadFailed = "scene.load_failed"

	// Cross-cutting state.
	LocaleChanged = "locale.changed"
	RouteChanged  = "route.changed"
)
