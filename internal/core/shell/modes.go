package shell

import "github.com/deskshell/deskshell/internal/core/camera"

// Mode is the shell's current viewpoint state. One mode per named camera
// view; the transition table below is the only source of legality.
type Mode int

const (
	ModeDesk Mode = iota
	ModeMonitor
	ModeConsole
	ModeWindows
	ModeBlackHole
	ModeTrash
)

func (m Mode) String() string {
	switch m {
	case ModeDesk:
		return "desk"
	case ModeMonitor:
		return "monitor"
	case ModeConsole:
		return "console"
	case ModeWindows:
		return "windows"
	case ModeBlackHole:
		return "blackhole"
	case ModeTrash:
		return "trash"
	default:
		return "unknown"
	}
}

var modesByView = map[string]Mode{
	camera.ViewDesktop:   ModeDesk,
	camera.ViewMonitor:   ModeMonitor,
	camera.ViewConsole:   ModeConsole,
	camera.ViewWindows:   ModeWindows,
	camera.ViewBlackHole: ModeBlackHole,
	camera.ViewTrash:     ModeTrash,
}

var viewsByMode = map[Mode]string{
	ModeDesk:      camera.ViewDesktop,
	ModeMonitor:   camera.ViewMonitor,
	ModeConsole:   camera.ViewConsole,
	ModeWindows:   camera.ViewWindows,
	ModeBlackHole: camera.ViewBlackHole,
	ModeTrash:     camera.ViewTrash,
}

// modeForView maps a view name to its mode. Unknown names resolve to
// ModeDesk, matching the registry's desktop fallback.
func modeForView(name string) Mode {
	if m, ok := modesByView[name]; ok {
		return m
	}
	return ModeDesk
}

var legalTransitions = map[Mode][]Mode{
	ModeDesk:      {ModeMonitor, ModeBlackHole, ModeTrash},
	ModeMonitor:   {ModeDesk, ModeConsole, ModeWindows},
	ModeConsole:   {ModeMonitor, ModeWindows},
	ModeWindows:   {ModeMonitor},
	ModeBlackHole: {ModeDesk},
	ModeTrash:     {ModeDesk},
}

// canTransition reports whether moving from -> to is allowed. Re-entering
// the current mode is always allowed (the camera just re-flies).
func canTransition(from, to Mode) bool {
	if from == to {
		return true
	}
	for _, m := range legalTransitions[from] {
		if m == to {
			return true
		}
	}
	return false
}
