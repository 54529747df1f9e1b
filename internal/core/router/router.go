// Package router is the client-side navigation collaborator: a closed route
// table with change notification over the mode bus.
package router

import (
	"sync"

	"github.com/deskshell/deskshell/internal/core/events"
	busPkg "github.com/deskshell/deskshell/internal/core/events/bus"
	"github.com/deskshell/deskshell/internal/core/observability/log"
)

// Route names one navigable destination.
type Route string

const (
	RouteHome   Route = "home"
	RouteResume Route = "resume"
)

// Router tracks the current route. Navigation to an unknown route is a
// logged no-op; the route set is closed at construction.
type Router struct {
	mu      sync.Mutex
	current Route
	known   map[Route]struct{}
	bus     busPkg.EventBus
	logger  log.Log
}

// New creates a router starting at RouteHome.
func New(eventBus busPkg.EventBus, logger log.Log, routes ...Route) *Router {
	if logger == nil {
		logger = log.Nop()
	}
	known := make(map[Route]struct{}, len(routes)+1)
	known[RouteHome] = struct{}{}
	for _, r := range routes {
		known[r] = struct{}{}
	}
	return &Router{
		current: RouteHome,
		known:   known,
		bus:     eventBus,
		logger:  logger,
	}
}

// Navigate switches to the named route and publishes route.changed.
// Navigating to the current route is a no-op.
func (r *Router) Navigate(route Route) {
	r.mu.Lock()
	if _, ok := r.known[route]; !ok {
		r.mu.Unlock()
		r.logger.Warn("unknown route", log.String("route", string(route)))
		return
	}
	if r.current == route {
		r.mu.Unlock()
		return
	}
	r.current = route
	r.mu.Unlock()

	if r.bus != nil {
		_ = r.bus.Publish(busPkg.NewEvent(events.RouteChanged, "router", string(route)))
	}
}

// Current returns the active route.
func (r *Router) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
