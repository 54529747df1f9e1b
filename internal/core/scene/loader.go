package scene

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/deskshell/deskshell/internal/core/events"
	busPkg "github.com/deskshell/deskshell/internal/core/events/bus"
	"github.com/deskshell/deskshell/internal/core/observability/log"
	"github.com/deskshell/deskshell/pkg/concurrent"
	"github.com/deskshell/deskshell/pkg/sequence"
)

// ErrLoadFailed wraps asset-source failures surfaced by the loader.
var ErrLoadFailed = errors.New("scene: asset load failed")

// Source produces one named group of scene objects (a model file, a texture
// atlas with collision proxies, and so on).
type Source interface {
	Name() string
	Objects(ctx context.Context) ([]*Object, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc struct {
	GroupName string
	Fn        func(ctx context.Context) ([]*Object, error)
}

func (s SourceFunc) Name() string                                   { return s.GroupName }
func (s SourceFunc) Objects(ctx context.Context) ([]*Object, error) { return s.Fn(ctx) }

// Loader resolves asset sources concurrently and flips the graph to loaded.
// A failure leaves the graph unloaded (the shell keeps showing its fallback)
// and is retryable; retry repeats the whole load.
type Loader struct {
	graph   *Graph
	bus     busPkg.EventBus
	logger  log.Log
	sources []Source
	rules   []TagRule
	failed  atomic.Bool
}

// NewLoader wires a loader. rules are applied once after all sources resolve.
func NewLoader(graph *Graph, eventBus busPkg.EventBus, logger log.Log, rules []TagRule, sources ...Source) *Loader {
	if logger == nil {
		logger = log.Nop()
	}
	return &Loader{
		graph:   graph,
		bus:     eventBus,
		logger:  logger,
		sources: sources,
		rules:   rules,
	}
}

// Load resolves every source in parallel. On success the graph is populated,
// tagged, marked loaded, and a scene.loaded signal is published. On failure
// a scene.load_failed signal is published and the error returned.
func (l *Loader) Load(ctx context.Context) error {
	err := concurrent.ForEach(sequence.From(l.sources), func(src Source) error {
		objects, srcErr := src.Objects(ctx)
		if srcErr != nil {
			l.logger.Error("asset group failed",
				log.String("group", src.Name()), log.Err(srcErr))
			return srcErr
		}
		for _, o := range objects {
			l.graph.Add(o)
		}
		l.logger.Debug("asset group resolved",
			log.String("group", src.Name()), log.Int("objects", len(objects)))
		return nil
	})
	if err != nil {
		l.failed.Store(true)
		if l.bus != nil {
			_ = l.bus.Publish(busPkg.NewEvent(events.SceneLoadFailed, "scene.loader", err))
		}
		return errors.Join(ErrLoadFailed, err)
	}

	tagged := l.graph.ApplyTags(l.rules)
	l.graph.SetLoaded(true)
	l.failed.Store(false)
	l.logger.Info("scene loaded",
		log.Int("objects", l.graph.Len()), log.Int("interactive", tagged))
	if l.bus != nil {
		_ = l.bus.Publish(busPkg.NewEvent(events.SceneLoaded, "scene.loader", nil))
	}
	return nil
}

// Failed reports whether the last Load attempt failed.
func (l *Loader) Failed() bool { return l.failed.Load() }

// Retry re-runs a failed load. No-op when the scene already loaded.
func (l *Loader) Retry(ctx context.Context) error {
	if l.graph.Loaded() {
		return nil
	}
	return l.Load(ctx)
}
