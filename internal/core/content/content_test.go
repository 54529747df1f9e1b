package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskshell/deskshell/internal/core/events"
	busPkg "github.com/deskshell/deskshell/internal/core/events/bus"
)

// memoryPort is a LocalePort for tests.
type memoryPort struct {
	value string
	ok    bool
}

func (p *memoryPort) Load() (string, bool) { return p.value, p.ok }
func (p *memoryPort) Store(v string)       { p.value, p.ok = v, true }

func TestEveryKeyPresentInEveryLocale(t *testing.T) {
	keys := AllKeys()
	require.NotEmpty(t, keys)
	for _, locale := range Locales() {
		for _, key := range keys {
			_, ok := tables[locale][key]
			assert.True(t, ok, "locale %s missing key %s", locale, key)
		}
	}
}

func TestPersistedLocaleWins(t *testing.T) {
	s := NewStore(nil, nil, &memoryPort{value: "es", ok: true})
	assert.Equal(t, LocaleES, s.Locale())
	assert.Equal(t, "Proyectos", s.Text(KeyWindowProjects))
}

func TestSetLocalePersistsAndPublishes(t *testing.T) {
	b := busPkg.New()
	var changes []string
	_, _ = b.Subscribe(events.LocaleChanged, func(e busPkg.Event) error {
		changes = append(changes, e.Data().(string))
		return nil
	})
	port := &memoryPort{value: "en", ok: true}
	s := NewStore(b, nil, port)

	s.SetLocale(LocaleES)
	assert.Equal(t, "es", port.value)
	assert.Equal(t, []string{"es"}, changes)

	// repeated set of the same locale is silent
	s.SetLocale(LocaleES)
	assert.Len(t, changes, 1)

	// unknown locale is a no-op
	s.SetLocale("xx")
	assert.Equal(t, LocaleES, s.Locale())
	assert.Len(t, changes, 1)
}

func TestApplyExternalDoesNotWriteBack(t *testing.T) {
	b := busPkg.New()
	count := 0
	_, _ = b.Subscribe(events.LocaleChanged, func(busPkg.Event) error {
		count++
		return nil
	})
	port := &memoryPort{value: "en", ok: true}
	s := NewStore(b, nil, port)

	s.ApplyExternal("ES")
	assert.Equal(t, LocaleES, s.Locale())
	assert.Equal(t, "en", port.value, "external changes must not echo into the port")
	assert.Equal(t, 1, count)

	s.ApplyExternal("klingon")
	assert.Equal(t, LocaleES, s.Locale())
}

func TestTextFallsBackToEnglishThenKey(t *testing.T) {
	s := NewStore(nil, nil, &memoryPort{value: "en", ok: true})
	assert.Equal(t, "About Me", s.Text(KeyWindowAbout))
	assert.Equal(t, "window.bogus", s.Text(Key("window.bogus")))
}
