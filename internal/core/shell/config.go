package shell

import (
	"encoding/json"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/deskshell/deskshell/internal/core/camera"
	"github.com/deskshell/deskshell/internal/core/scene"
	"github.com/deskshell/deskshell/internal/core/windows"
	"github.com/deskshell/deskshell/pkg/geom"
)

// Config is the declarative shell setup: camera views, window definitions,
// console aliases and scene tagging rules. Zero values fall back to the
// compiled-in defaults.
type Config struct {
	ViewportWidth  int `json:"viewport_width" yaml:"viewport_width"`
	ViewportHeight int `json:"viewport_height" yaml:"viewport_height"`

	// LookAnchor is the fixed point the camera faces while flying.
	LookAnchor [3]float64 `json:"look_anchor" yaml:"look_anchor"`

	Views          []ViewConfig      `json:"views,omitempty" yaml:"views,omitempty"`
	Windows        []WindowConfig    `json:"windows,omitempty" yaml:"windows,omitempty"`
	ConsoleAliases map[string]string `json:"console_aliases,omitempty" yaml:"console_aliases,omitempty"`
	TagRules       []TagRuleConfig   `json:"tag_rules,omitempty" yaml:"tag_rules,omitempty"`
}

// ViewConfig is the serializable form of a camera view. Durations are in
// seconds.
type ViewConfig struct {
	Name            string     `json:"name" yaml:"name"`
	Position        [3]float64 `json:"position" yaml:"position"`
	Target          [3]float64 `json:"target" yaml:"target"`
	FOV             float64    `json:"fov" yaml:"fov"`
	PositionSeconds float64    `json:"position_seconds" yaml:"position_seconds"`
	FOVSeconds      float64    `json:"fov_seconds" yaml:"fov_seconds"`
	Easing          string     `json:"easing" yaml:"easing"`
}

// WindowConfig declares one window of the closed set. TitleKey is resolved
// against the content store so titles follow the locale.
type WindowConfig struct {
	ID       string `json:"id" yaml:"id"`
	TitleKey string `json:"title_key" yaml:"title_key"`
	Icon     string `json:"icon" yaml:"icon"`
}

// TagRuleConfig maps scene object names to interaction capabilities.
type TagRuleConfig struct {
	Pattern    string `json:"pattern" yaml:"pattern"`
	Exact      bool   `json:"exact,omitempty" yaml:"exact,omitempty"`
	Capability string `json:"capability" yaml:"capability"`
	Key        string `json:"key,omitempty" yaml:"key,omitempty"`
}

// DefaultConfig returns the built-in setup matching the authored scene.
func DefaultConfig() Config {
	return Config{
		ViewportWidth:  1920,
		ViewportHeight: 1080,
		LookAnchor:     [3]float64{0, 1.27, 0},
		Windows: []WindowConfig{
			{ID: "about", TitleKey: "window.about", Icon: "about.png"},
			{ID: "projects", TitleKey: "window.projects", Icon: "projects.png"},
			{ID: "contact", TitleKey: "window.contact", Icon: "contact.png"},
		},
		TagRules: []TagRuleConfig{
			{Pattern: "mesa", Capability: "desk-surface"},
			{Pattern: "monitor", Capability: "monitor-surface"},
			{Pattern: "Bin_Body", Capability: "trash-bin"},
			{Pattern: "hp_printer", Exact: true, Capability: "printer"},
			{Pattern: "blackhole", Capability: "black-hole"},
		},
	}
}

// LoadYAML decodes a config from YAML.
func LoadYAML(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadJSON decodes a config from JSON.
func LoadJSON(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := json.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// CameraViews converts the configured views, falling back to the built-in
// table when none are configured.
func (c Config) CameraViews() []camera.View {
	if len(c.Views) == 0 {
		return camera.DefaultViews()
	}
	out := make([]camera.View, 0, len(c.Views))
	for _, v := range c.Views {
		out = append(out, camera.View{
			Name:             v.Name,
			Position:         geom.V3(v.Position[0], v.Position[1], v.Position[2]),
			Target:           geom.V3(v.Target[0], v.Target[1], v.Target[2]),
			FOV:              v.FOV,
			PositionDuration: time.Duration(v.PositionSeconds * float64(time.Second)),
			FOVDuration:      time.Duration(v.FOVSeconds * float64(time.Second)),
			Easing:           v.Easing,
		})
	}
	return out
}

// WindowDefs converts the configured windows to manager definitions with
// titles resolved by the given lookup.
func (c Config) WindowDefs(title func(key string) string) []windows.Definition {
	out := make([]windows.Definition, 0, len(c.Windows))
	for _, w := range c.Windows {
		out = append(out, windows.Definition{
			ID:    windows.ID(w.ID),
			Title: title(w.TitleKey),
			Icon:  w.Icon,
		})
	}
	return out
}

var capabilitiesByName = map[string]scene.Capability{
	"desk-surface":    scene.CapDeskSurface,
	"monitor-surface": scene.CapMonitorSurface,
	"trash-bin":       scene.CapTrashBin,
	"printer":         scene.CapPrinter,
	"key":             scene.CapKey,
	"black-hole":      scene.CapBlackHole,
}

// SceneTagRules converts the configured tag rules. Rules with an unknown
// capability name are dropped.
func (c Config) SceneTagRules() []scene.TagRule {
	out := make([]scene.TagRule, 0, len(c.TagRules))
	for _, r := range c.TagRules {
		capability, ok := capabilitiesByName[r.Capability]
		if !ok {
			continue
		}
		rule := scene.TagRule{
			Pattern:    r.Pattern,
			Exact:      r.Exact,
			Capability: capability,
		}
		if capability == scene.CapKey && r.Key != "" {
			rule.KeyRune = []rune(r.Key)[0]
		}
		out = append(out, rule)
	}
	return out
}

// Anchor returns the configured look anchor.
func (c Config) Anchor() geom.Vec3 {
	return geom.V3(c.LookAnchor[0], c.LookAnchor[1], c.LookAnchor[2])
}
