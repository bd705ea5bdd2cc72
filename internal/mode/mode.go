// Package mode tracks which backend serves the data layer: the on-device
// store only, or the remote account service with local fallback.
package mode

import "sync"

// Mode identifies the active backend.
type Mode string

const (
	// Local routes every operation to the on-device store.
	Local Mode = "local"
	// Authenticated tries the remote service first, falling back locally.
	Authenticated Mode = "authenticated"
)

// PreferenceStore persists the user's mode choice across runs.
type PreferenceStore interface {
	ModePreference() (Mode, error)
	SetModePreference(Mode) error
}

// Listener is notified synchronously after every mode change. It must not
// block.
type Listener func(Mode)

// Controller holds the current mode and its subscribers. Construct it with
// New, subscribe interested components, and inject it into the data
// manager; there is no package-level state.
type Controller struct {
	mu        sync.Mutex
	current   Mode
	prefs     PreferenceStore
	listeners []registration
	nextID    int
}

type registration struct {
	id int
	fn Listener
}

// New derives the startup mode from the saved preference and whether a
// valid credential is present. Without a credential the controller forces
// Local regardless of preference.
func New(prefs PreferenceStore, hasCredential bool) (*Controller, error) {
	current := Local
	if hasCredential {
		saved, err := prefs.ModePreference()
		if err != nil {
			return nil, err
		}
		if saved == Authenticated {
			current = Authenticated
		}
	}
	return &Controller{current: current, prefs: prefs}, nil
}

// Current returns the active mode.
func (c *Controller) Current() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Set persists the preference, then switches the mode and notifies
// listeners synchronously in registration order. A persistence failure
// leaves the in-memory mode untouched and no listener fires, so the
// controller and its subscribers never disagree. No transition is rejected;
// callers ensure preconditions such as completing login before setting
// Authenticated.
func (c *Controller) Set(m Mode) error {
	if err := c.prefs.SetModePreference(m); err != nil {
		return err
	}

	c.mu.Lock()
	c.current = m
	notify := make([]Listener, len(c.listeners))
	for i, reg := range c.listeners {
		notify[i] = reg.fn
	}
	c.mu.Unlock()

	for _, fn := range notify {
		fn(m)
	}
	return nil
}

// Subscribe registers a listener and returns its unsubscribe function.
func (c *Controller) Subscribe(fn Listener) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.listeners = append(c.listeners, registration{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, reg := range c.listeners {
			if reg.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}
