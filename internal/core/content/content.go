// Package content is the localization store: a closed key set translated
// into a fixed locale table, with a process-wide current locale persisted
// through an injected port.
package content

import (
	"strings"
	"sync"

	golocale "github.com/jeandeaual/go-locale"

	"github.com/deskshell/deskshell/internal/core/events"
	busPkg "github.com/deskshell/deskshell/internal/core/events/bus"
	"github.com/deskshell/deskshell/internal/core/observability/log"
)

// Key identifies one localizable string.
type Key string

// Locale is a two-letter language code.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleES Locale = "es"
)

// Keys used by the shell. The set is closed: every key below has an entry in
// every locale table, asserted by tests rather than checked at runtime.
const (
	KeyWindowAbout          Key = "window.about"
	KeyWindowProjects       Key = "window.projects"
	KeyWindowContact        Key = "window.contact"
	KeyConsolePrompt        Key = "console.prompt"
	KeyConsoleNotRecognized Key = "console.not_recognized"
	KeyConsoleHelp          Key = "console.help"
	KeyTaskbarStart         Key = "taskbar.start"
)

var tables = map[Locale]map[Key]string{
	LocaleEN: {
		KeyWindowAbout:          "About Me",
		KeyWindowProjects:       "Projects",
		KeyWindowContact:        "Contact",
		KeyConsolePrompt:        "C:\\>",
		KeyConsoleNotRecognized: "command not recognized:",
		KeyConsoleHelp:          "available commands: about, projects, contact, clear, help, launch windows",
		KeyTaskbarStart:         "Start",
	},
	LocaleES: {
		KeyWindowAbout:          "Sobre mí",
		KeyWindowProjects:       "Proyectos",
		KeyWindowContact:        "Contacto",
		KeyConsolePrompt:        "C:\\>",
		KeyConsoleNotRecognized: "comando no reconocido:",
		KeyConsoleHelp:          "comandos disponibles: about, projects, contact, clear, help, launch windows",
		KeyTaskbarStart:         "Inicio",
	},
}

// LocalePort persists the current locale across sessions and, best effort,
// across concurrently running instances.
type LocalePort interface {
	Load() (string, bool)
	Store(string)
}

// Store holds the current locale and resolves keys against it.
type Store struct {
	mu     sync.RWMutex
	locale Locale
	port   LocalePort
	bus    busPkg.EventBus
	logger log.Log
}

// NewStore initializes the store: the persisted locale wins, then the system
// locale, then English.
func NewStore(eventBus busPkg.EventBus, logger log.Log, port LocalePort) *Store {
	if logger == nil {
		logger = log.Nop()
	}
	s := &Store{
		locale: LocaleEN,
		port:   port,
		bus:    eventBus,
		logger: logger,
	}
	if port != nil {
		if saved, ok := port.Load(); ok {
			if l, valid := parseLocale(saved); valid {
				s.locale = l
				return s
			}
		}
	}
	s.locale = detectSystemLocale(logger)
	return s
}

// Text resolves key in the current locale, falling back to English. The key
// set is closed at build time; an unresolvable key returns its own name so a
// gap is visible rather than fatal.
func (s *Store) Text(key Key) string {
	s.mu.RLock()
	locale := s.locale
	s.mu.RUnlock()

	if v, ok := tables[locale][key]; ok {
		return v
	}
	if v, ok := tables[LocaleEN][key]; ok {
		return v
	}
	return string(key)
}

// Locale returns the current locale.
func (s *Store) Locale() Locale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

// SetLocale switches the locale, persists it and publishes locale.changed.
// Unknown locales are a logged no-op.
func (s *Store) SetLocale(l Locale) {
	if _, ok := tables[l]; !ok {
		s.logger.Warn("unknown locale", log.String("locale", string(l)))
		return
	}
	s.mu.Lock()
	if s.locale == l {
		s.mu.Unlock()
		return
	}
	s.locale = l
	s.mu.Unlock()

	if s.port != nil {
		s.port.Store(string(l))
	}
	s.publishChange(l)
}

// ApplyExternal applies a locale change observed from another instance via
// the persistence port. It does not write back to the port.
func (s *Store) ApplyExternal(raw string) {
	l, ok := parseLocale(raw)
	if !ok {
		s.logger.Warn("ignoring external locale", log.String("locale", raw))
		return
	}
	s.mu.Lock()
	if s.locale == l {
		s.mu.Unlock()
		return
	}
	s.locale = l
	s.mu.Unlock()
	s.publishChange(l)
}

// Locales lists the supported locales.
func Locales() []Locale {
	out := make([]Locale, 0, len(tables))
	for l := range tables {
		out = append(out, l)
	}
	return out
}

// AllKeys lists the closed key set (from the English table).
func AllKeys() []Key {
	out := make([]Key, 0, len(tables[LocaleEN]))
	for k := range tables[LocaleEN] {
		out = append(out, k)
	}
	return out
}

func (s *Store) publishChange(l Locale) {
	if s.bus != nil {
		_ = s.bus.Publish(busPkg.NewEvent(events.LocaleChanged, "content", string(l)))
	}
}

func parseLocale(raw string) (Locale, bool) {
	l := Locale(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := tables[l]
	return l, ok
}

func detectSystemLocale(logger log.Log) Locale {
	userLocales, err := golocale.GetLocales()
	if err != nil || len(userLocales) == 0 {
		logger.Debug("no system locale, defaulting to english")
		return LocaleEN
	}
	first := userLocales[0]
	for l := range tables {
		if strings.HasPrefix(first, string(l)) {
			return l
		}
	}
	return LocaleEN
}
