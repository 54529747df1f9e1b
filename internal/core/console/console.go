// Package console implements the in-scene text console: a transcript, an
// edit line fed by key events, and a closed command set that publishes mode
// bus signals.
package console

import (
	"strings"
	"sync"

	"github.com/deskshell/deskshell/internal/core/content"
	"github.com/deskshell/deskshell/internal/core/events"
	busPkg "github.com/deskshell/deskshell/internal/core/events/bus"
	"github.com/deskshell/deskshell/internal/core/observability/log"
)

// Command is one recognized console action.
type Command int

const (
	CmdUnknown Command = iota
	CmdAbout
	CmdProjects
	CmdContact
	CmdClear
	CmdHelp
	CmdLaunchWindows
)

var commandsByName = map[string]Command{
	"about":         CmdAbout,
	"projects":      CmdProjects,
	"contact":       CmdContact,
	"clear":         CmdClear,
	"help":          CmdHelp,
	"launch windows": CmdLaunchWindows,
}

// windowForCommand maps section commands to the window they open.
var windowForCommand = map[Command]string{
	CmdAbout:    "about",
	CmdProjects: "projects",
	CmdContact:  "contact",
}

// Console is the interactive transcript. All methods are safe for concurrent
// use, though input normally arrives from a single event loop.
type Console struct {
	mu      sync.Mutex
	lines   []string
	input   []rune
	aliases map[string]Command

	store  *content.Store
	bus    busPkg.EventBus
	logger log.Log
}

// New builds a console. extraAliases maps additional input strings to
// canonical command names ("cls" -> "clear"); unknown canonical names are
// logged and skipped.
func New(store *content.Store, eventBus busPkg.EventBus, logger log.Log, extraAliases map[string]string) *Console {
	if logger == nil {
		logger = log.Nop()
	}
	aliases := make(map[string]Command, len(commandsByName)+len(extraAliases))
	for name, cmd := range commandsByName {
		aliases[name] = cmd
	}
	for alias, canonical := range extraAliases {
		cmd, ok := commandsByName[strings.ToLower(canonical)]
		if !ok {
			logger.Warn("alias for unknown command skipped",
				log.String("alias", alias), log.String("command", canonical))
			continue
		}
		aliases[strings.ToLower(alias)] = cmd
	}
	return &Console{
		aliases: aliases,
		store:   store,
		bus:     eventBus,
		logger:  logger,
	}
}

// prompt returns the localized prompt prefix.
func (c *Console) prompt() string {
	if c.store == nil {
		return "C:\\>"
	}
	return c.store.Text(content.KeyConsolePrompt)
}

// Type appends a printable rune to the edit line.
func (c *Console) Type(r rune) {
	c.mu.Lock()
	c.input = append(c.input, r)
	c.mu.Unlock()
}

// Backspace removes the last rune of the edit line.
func (c *Console) Backspace() {
	c.mu.Lock()
	if len(c.input) > 0 {
		c.input = c.input[:len(c.input)-1]
	}
	c.mu.Unlock()
}

// Enter submits the edit line.
func (c *Console) Enter() {
	c.mu.Lock()
	line := string(c.input)
	c.input = c.input[:0]
	c.mu.Unlock()
	c.Submit(line)
}

// Submit echoes the line into the transcript and runs it. Unrecognized input
// yields exactly one not-recognized line quoting the input verbatim and
// changes nothing else.
func (c *Console) Submit(raw string) {
	c.mu.Lock()
	c.lines = append(c.lines, c.prompt()+" "+raw)
	c.mu.Unlock()

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return
	}

	cmd, ok := c.aliases[strings.ToLower(trimmed)]
	if !ok {
		c.appendLine(c.notRecognized() + " " + trimmed)
		return
	}

	switch cmd {
	case CmdClear:
		c.mu.Lock()
		c.lines = nil
		c.mu.Unlock()
	case CmdHelp:
		c.appendLine(c.helpText())
	case CmdLaunchWindows:
		c.publish(events.WindowsEnter, nil)
	case CmdAbout, CmdProjects, CmdContact:
		c.publish(events.WindowOpen, windowForCommand[cmd])
	}
}

// Transcript returns a copy of the settled transcript lines. The fresh
// prompt line is CurrentLine, not part of the transcript.
func (c *Console) Transcript() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// CurrentLine returns the prompt plus the pending edit buffer.
func (c *Console) CurrentLine() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prompt() + " " + string(c.input)
}

func (c *Console) appendLine(line string) {
	c.mu.Lock()
	c.lines = append(c.lines, line)
	c.mu.Unlock()
}

func (c *Console) publish(eventType string, data any) {
	if c.bus == nil {
		return
	}
	if err := c.bus.Publish(busPkg.NewEvent(eventType, "console", data)); err != nil {
		c.logger.Error("console event delivery failed",
			log.String("event", eventType), log.Err(err))
	}
}

func (c *Console) notRecognized() string {
	if c.store == nil {
		return "command not recognized:"
	}
	return c.store.Text(content.KeyConsoleNotRecognized)
}

func (c *Console) helpText() string {
	if c.store == nil {
		return "available commands: about, projects, contact, clear, help, launch windows"
	}
	return c.store.Text(content.KeyConsoleHelp)
}
