package scene

import "strings"

// Capability classifies what an interaction with an object does. Tags are
// computed once at scene-load time from naming rules, so click routing is a
// tag lookup instead of a per-click string search.
type Capability int

const (
	CapNone Capability = iota
	CapDeskSurface
	CapMonitorSurface
	CapTrashBin
	CapPrinter
	CapKey
	CapBlackHole
)

func (c Capability) String() string {
	switch c {
	case CapDeskSurface:
		return "desk-surface"
	case CapMonitorSurface:
		return "monitor-surface"
	case CapTrashBin:
		return "trash-bin"
	case CapPrinter:
		return "printer"
	case CapKey:
		return "key"
	case CapBlackHole:
		return "black-hole"
	default:
		return "none"
	}
}

// TagRule maps an object-name pattern to a capability. Exact rules match the
// whole name; otherwise the pattern is a case-sensitive substring, matching
// the naming of the authored model files.
type TagRule struct {
	Pattern    string
	Exact      bool
	Capability Capability
	KeyRune    rune
}

// Interactive reports whether the capability reacts to clicks, used for the
// hover cursor affordance.
func (c Capability) Interactive() bool {
	return c != CapNone
}

// ApplyTags walks the graph once and assigns each object the capability of
// the first rule it matches. Objects matching no rule stay CapNone. Returns
// the number of tagged objects.
func (g *Graph) ApplyTags(rules []TagRule) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	tagged := 0
	for _, o := range g.objects {
		for _, r := range rules {
			if r.Exact {
				if o.Name != r.Pattern {
					continue
				}
			} else if !strings.Contains(o.Name, r.Pattern) {
				continue
			}
			o.Capability = r.Capability
			o.KeyRune = r.KeyRune
			tagged++
			break
		}
	}
	return tagged
}
