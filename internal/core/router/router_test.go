package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deskshell/deskshell/internal/core/events"
	busPkg "github.com/deskshell/deskshell/internal/core/events/bus"
)

func TestNavigatePublishesChange(t *testing.T) {
	b := busPkg.New()
	var changes []string
	_, _ = b.Subscribe(events.RouteChanged, func(e busPkg.Event) error {
		changes = append(changes, e.Data().(string))
		return nil
	})

	r := New(b, nil, RouteResume)
	assert.Equal(t, RouteHome, r.Current())

	r.Navigate(RouteResume)
	assert.Equal(t, RouteResume, r.Current())
	assert.Equal(t, []string{"resume"}, changes)
}

func TestNavigateSameRouteIsSilent(t *testing.T) {
	b := busPkg.New()
	count := 0
	_, _ = b.Subscribe(events.RouteChanged, func(busPkg.Event) error {
		count++
		return nil
	})
	r := New(b, nil, RouteResume)
	r.Navigate(RouteResume)
	r.Navigate(RouteResume)
	assert.Equal(t, 1, count)
}

func TestUnknownRouteIsNoop(t *testing.T) {
	r := New(nil, nil)
	r.Navigate("minesweeper")
	assert.Equal(t, RouteHome, r.Current())
}
