package camera

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskshell/deskshell/internal/core/observability/log"
)

// countingLog records warn messages for assertions.
type countingLog struct {
	mu    sync.Mutex
	warns []string
}

func (c *countingLog) Debug(string, ...log.Field) {}
func (c *countingLog) Info(string, ...log.Field)  {}
func (c *countingLog) Error(string, ...log.Field) {}
func (c *countingLog) Warn(msg string, _ ...log.Field) {
	c.mu.Lock()
	c.warns = append(c.warns, msg)
	c.mu.Unlock()
}
func (c *countingLog) With(...log.Field) log.Log { return c }
func (c *countingLog) SetLevel(log.Level)        {}
func (c *countingLog) GetLevel() log.Level       { return log.LevelDebug }

func TestRegistryGetKnownView(t *testing.T) {
	r := NewRegistry(nil, DefaultViews()...)
	v := r.Get(ViewConsole)
	assert.Equal(t, ViewConsole, v.Name)
	assert.InDelta(t, 18, v.FOV, 1e-9)
}

func TestRegistryUnknownFallsBackToDesktop(t *testing.T) {
	cl := &countingLog{}
	r := NewRegistry(cl, DefaultViews()...)

	v := r.Get("nonexistent")
	assert.Equal(t, ViewDesktop, v.Name)
	require.Len(t, cl.warns, 1)

	// repeated misses on the same name do not spam diagnostics
	_ = r.Get("nonexistent")
	assert.Len(t, cl.warns, 1)

	// a different unknown name gets its own diagnostic
	_ = r.Get("also-missing")
	assert.Len(t, cl.warns, 2)
}

func TestRegistryAlwaysHasDesktop(t *testing.T) {
	r := NewRegistry(nil, View{Name: "custom"})
	assert.True(t, r.Has(ViewDesktop))
	assert.True(t, r.Has("custom"))
	assert.False(t, r.Has("monitor"))
	assert.Contains(t, r.Names(), ViewDesktop)
}
