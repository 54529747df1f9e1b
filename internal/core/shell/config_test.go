package shell

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskshell/deskshell/internal/core/camera"
	"github.com/deskshell/deskshell/internal/core/scene"
)

func TestDefaultConfigIsComplete(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotZero(t, cfg.ViewportWidth)
	assert.NotZero(t, cfg.ViewportHeight)
	assert.Len(t, cfg.Windows, 3)

	names := make(map[string]struct{})
	for _, v := range cfg.CameraViews() {
		names[v.Name] = struct{}{}
	}
	for _, want := range []string{
		camera.ViewDesktop, camera.ViewMonitor, camera.ViewConsole,
		camera.ViewWindows, camera.ViewBlackHole, camera.ViewTrash,
	} {
		assert.Contains(t, names, want)
	}
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	in := strings.NewReader(`
viewport_width: 1280
viewport_height: 720
console_aliases:
  whoami: about
`)
	cfg, err := LoadYAML(in)
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.ViewportWidth)
	assert.Equal(t, 720, cfg.ViewportHeight)
	assert.Equal(t, "about", cfg.ConsoleAliases["whoami"])
	// Untouched sections keep their defaults.
	assert.Len(t, cfg.Windows, 3)
	assert.Equal(t, [3]float64{0, 1.27, 0}, cfg.LookAnchor)
}

func TestLoadYAMLRejectsGarbage(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("viewport_width: [not a number"))
	assert.Error(t, err)
}

func TestLoadJSONOverridesDefaults(t *testing.T) {
	cfg, err := LoadJSON(strings.NewReader(`{"viewport_width": 800}`))
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.ViewportWidth)
	assert.Equal(t, 1080, cfg.ViewportHeight)
}

func TestCameraViewsConvertSeconds(t *testing.T) {
	cfg := Config{Views: []ViewConfig{{
		Name:            "custom",
		Position:        [3]float64{1, 2, 3},
		FOV:             50,
		PositionSeconds: 1.5,
		FOVSeconds:      0.25,
		Easing:          "quad.inOut",
	}}}

	views := cfg.CameraViews()
	require.Len(t, views, 1)
	assert.Equal(t, 1500*time.Millisecond, views[0].PositionDuration)
	assert.Equal(t, 250*time.Millisecond, views[0].FOVDuration)
	assert.InDelta(t, 2.0, views[0].Position.Y, 1e-9)
}

func TestSceneTagRulesDropUnknownCapability(t *testing.T) {
	cfg := Config{TagRules: []TagRuleConfig{
		{Pattern: "monitor", Capability: "monitor-surface"},
		{Pattern: "wat", Capability: "does-not-exist"},
		{Pattern: "key_q", Exact: true, Capability: "key", Key: "q"},
	}}

	rules := cfg.SceneTagRules()
	require.Len(t, rules, 2)
	assert.Equal(t, scene.CapMonitorSurface, rules[0].Capability)
	assert.Equal(t, scene.CapKey, rules[1].Capability)
	assert.Equal(t, 'q', rules[1].KeyRune)
}

func TestModeTransitionTable(t *testing.T) {
	cases := []struct {
		from, to Mode
		ok       bool
	}{
		{ModeDesk, ModeMonitor, true},
		{ModeDesk, ModeBlackHole, true},
		{ModeDesk, ModeTrash, true},
		{ModeDesk, ModeConsole, false},
		{ModeDesk, ModeWindows, false},
		{ModeMonitor, ModeDesk, true},
		{ModeMonitor, ModeConsole, true},
		{ModeMonitor, ModeWindows, true},
		{ModeConsole, ModeMonitor, true},
		{ModeConsole, ModeWindows, true},
		{ModeConsole, ModeDesk, false},
		{ModeWindows, ModeMonitor, true},
		{ModeWindows, ModeDesk, false},
		{ModeBlackHole, ModeDesk, true},
		{ModeBlackHole, ModeMonitor, false},
		{ModeTrash, ModeDesk, true},
		{ModeMonitor, ModeMonitor, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, canTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestModeForViewFallsBackToDesk(t *testing.T) {
	assert.Equal(t, ModeConsole, modeForView(camera.ViewConsole))
	assert.Equal(t, ModeDesk, modeForView("no-such-view"))
}
