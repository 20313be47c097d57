package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/shadowmaster/internal/nav"
	"github.com/abhisek/shadowmaster/internal/screen"
)

// Factory builds the screen for a resolved view.
type Factory func(v nav.View) screen.Screen

// Router hosts exactly one screen: the one for the current resolved view.
// Moving to a different view tears the old screen down before building the
// new one.
type Router struct {
	factory Factory
	view    nav.View
	active  screen.Screen
}

// New creates a Router showing the screen for initial. Call Init on the
// returned router's Active screen to start it.
func New(factory Factory, initial nav.View) *Router {
	return &Router{
		factory: factory,
		view:    initial,
		active:  factory(initial),
	}
}

// Sync makes v the hosted view. It is a no-op when v is already showing.
func (r *Router) Sync(v nav.View) tea.Cmd {
	if v == r.view && r.active != nil {
		return nil
	}
	r.close()
	r.view = v
	r.active = r.factory(v)
	if r.active == nil {
		return nil
	}
	return r.active.Init()
}

// Active returns the hosted screen.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Current returns the hosted view.
func (r *Router) Current() nav.View {
	return r.view
}

// Close tears down the hosted screen.
func (r *Router) Close() {
	r.close()
	r.active = nil
}

func (r *Router) close() {
	if c, ok := r.active.(screen.Closer); ok {
		c.Close()
	}
}

// Update forwards a message to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if r.active == nil {
		return nil
	}
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
