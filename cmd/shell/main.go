// Command shell runs the interactive desk shell as a terminal REPL: camera
// views, the window manager, the console and the locale store are all
// drivable from stdin while a frame loop keeps animations running.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/deskshell/deskshell/internal/core/camera"
	"github.com/deskshell/deskshell/internal/core/content"
	"github.com/deskshell/deskshell/internal/core/events"
	busPkg "github.com/deskshell/deskshell/internal/core/events/bus"
	"github.com/deskshell/deskshell/internal/core/observability/log"
	"github.com/deskshell/deskshell/internal/core/shell"
	"github.com/deskshell/deskshell/internal/core/windows"
)

func main() {
	cfgPath := flag.String("config", "", "optional YAML config path")
	localePath := flag.String("locale-file", defaultLocalePath(), "file the chosen locale persists to")
	logLevel := flag.String("log-level", "info", "debug | info | warn | error")
	flag.Parse()

	logger := log.New(log.ParseLevel(*logLevel))
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := shell.New(cfg, logger, content.FilePort{Path: *localePath})
	defer s.Close()

	if err := s.Load(ctx); err != nil {
		logger.Error("scene load failed, interaction disabled until retry", log.Err(err))
	}

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	// Frame loop. The REPL goroutine only touches the shell through its
	// thread-safe surface.
	go func() {
		ticker := time.NewTicker(16 * time.Millisecond)
		defer ticker.Stop()
		last := time.Now()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				s.Frame(now.Sub(last))
				last = now
			}
		}
	}()

	printed := subscribePrinter(s)
	defer printed()

	go repl(ctx, cancel, s)

	<-stopCh
	cancel()
}

func defaultLocalePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".deskshell-locale"
	}
	return filepath.Join(dir, "deskshell", "locale")
}

func loadConfig(path string) (shell.Config, error) {
	if path == "" {
		return shell.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return shell.Config{}, err
	}
	defer func() { _ = f.Close() }()
	if strings.HasSuffix(path, ".json") {
		return shell.LoadJSON(f)
	}
	return shell.LoadYAML(f)
}

// subscribePrinter surfaces the bus traffic a user of the REPL would
// otherwise only see in logs.
func subscribePrinter(s *shell.Shell) func() {
	var subs []busPkg.Subscription
	sub := func(eventType string, format func(busPkg.Event) string) {
		h, err := s.Bus().Subscribe(eventType, func(e busPkg.Event) error {
			fmt.Println(format(e))
			return nil
		})
		if err == nil {
			subs = append(subs, h)
		}
	}
	sub(events.ZoomComplete, func(e busPkg.Event) string {
		return fmt.Sprintf("* arrived at %v", e.Data())
	})
	sub(events.RouteChanged, func(e busPkg.Event) string {
		return fmt.Sprintf("* navigated to %v", e.Data())
	})
	sub(events.SceneLoadFailed, func(e busPkg.Event) string {
		return fmt.Sprintf("* scene load failed: %v", e.Data())
	})
	return func() {
		for _, h := range subs {
			_ = s.Bus().Unsubscribe(h)
		}
	}
}

func repl(ctx context.Context, quit context.CancelFunc, s *shell.Shell) {
	fmt.Println("deskshell - type 'help' for the meta commands")
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !dispatch(quit, s, line) {
			return
		}
		prompt(s)
	}
}

func prompt(s *shell.Shell) {
	if s.Mode() == shell.ModeConsole {
		fmt.Print(s.Console().CurrentLine())
		fmt.Println()
	}
}

// dispatch runs one REPL line. Meta commands drive the shell surface; in
// console mode anything else is submitted to the in-scene console.
func dispatch(quit context.CancelFunc, s *shell.Shell, line string) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "quit", "exit":
		quit()
		return false
	case "help":
		printHelp()
	case "mode":
		fmt.Println(s.Mode())
	case "view":
		if len(args) != 1 {
			fmt.Println("usage: view <name>")
			break
		}
		s.RequestView(args[0])
	case "windows":
		s.RequestView(camera.ViewWindows)
	case "back":
		s.ExitWindows()
	case "click", "hover":
		x, y, err := parsePoint(args)
		if err != nil {
			fmt.Println("usage:", cmd, "<x> <y>")
			break
		}
		if cmd == "click" {
			s.Dispatcher().Click(x, y)
		} else {
			s.Dispatcher().Hover(x, y)
			fmt.Println("hovering:", s.Dispatcher().Hovering())
		}
	case "taskbar":
		printTaskbar(s)
	case "stack":
		active := s.Windows().Active()
		for _, w := range s.Windows().Stack() {
			marker := " "
			if w.ID == active {
				marker = "*"
			}
			fmt.Printf("  %s %-10s z=%d\n", marker, w.ID, w.Z)
		}
	case "toggle", "close", "minimize", "front":
		if len(args) != 1 {
			fmt.Println("usage:", cmd, "<window-id>")
			break
		}
		id := windows.ID(args[0])
		switch cmd {
		case "toggle":
			s.Windows().ToggleFromTaskbar(id)
		case "close":
			s.Windows().Close(id)
		case "minimize":
			s.Windows().Minimize(id)
		case "front":
			s.Windows().BringToFront(id)
		}
	case "locale":
		if len(args) != 1 {
			fmt.Println("current:", s.Content().Locale())
			break
		}
		s.Content().SetLocale(content.Locale(strings.ToLower(args[0])))
	case "transcript":
		for _, l := range s.Console().Transcript() {
			fmt.Println(l)
		}
	case "retry":
		if err := s.Loader().Retry(context.Background()); err != nil {
			fmt.Println("retry failed:", err)
		}
	default:
		if s.Mode() == shell.ModeConsole {
			s.Console().Submit(line)
			for _, l := range s.Console().Transcript() {
				fmt.Println(l)
			}
		} else {
			fmt.Printf("unknown meta command %q (enter the console with: view %s)\n",
				cmd, camera.ViewConsole)
		}
	}
	return true
}

func parsePoint(args []string) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("want 2 coordinates, got %d", len(args))
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func printTaskbar(s *shell.Shell) {
	fmt.Printf("[%s]", s.Content().Text(content.KeyTaskbarStart))
	for _, b := range s.Windows().Taskbar() {
		marker := " "
		if b.Active {
			marker = "*"
		}
		fmt.Printf(" |%s%s|", marker, b.Title)
	}
	fmt.Println()
}

func printHelp() {
	fmt.Println(`meta commands:
  view <name>        fly to a camera view (desktop, monitor, console, windows, blackhole, trash)
  mode               print the current mode
  windows            fly to the windows view
  back               leave windows mode
  click <x> <y>      click the scene at viewport coordinates
  hover <x> <y>      report hover state at viewport coordinates
  taskbar            print the taskbar
  stack              print the window stack with z-order
  toggle|close|minimize|front <id>
  locale [code]      print or switch the locale (en, es)
  transcript         print the console transcript
  retry              retry a failed scene load
  quit               exit

anything else is typed into the in-scene console while in console mode`)
}
