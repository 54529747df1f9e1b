package content

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilePortRoundTrip(t *testing.T) {
	p := FilePort{Path: filepath.Join(t.TempDir(), "locale")}

	_, ok := p.Load()
	assert.False(t, ok, "nothing persisted yet")

	p.Store("es")
	got, ok := p.Load()
	assert.True(t, ok)
	assert.Equal(t, "es", got)
}

func TestFilePortCreatesParentDirectory(t *testing.T) {
	p := FilePort{Path: filepath.Join(t.TempDir(), "nested", "locale")}
	p.Store("en")
	got, ok := p.Load()
	assert.True(t, ok)
	assert.Equal(t, "en", got)
}
