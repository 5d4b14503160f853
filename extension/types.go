package extension

import (
	"errors"

	"github.com/df-mc/rotatable/entity"
)

// System is a component-event system. The host only delivers events to a System for entities it Handles.
type System interface {
	// Name returns a readable name of the system, used for logging.
	Name() string
	// Handles checks if the system should receive events for e, usually by checking the components attached to e.
	Handles(e *entity.Entity) bool
	// HandleEvent handles ev delivered to e.
	HandleEvent(ev entity.Event, e *entity.Entity)
}

// Plugin is an extension enabled by the host. It registers block families and systems when it is created and
// removes them again when it is closed.
type Plugin interface {
	// Name returns the display name of the plugin. It should be unique for the lifetime of the host.
	Name() string
	// Close releases all resources held by the plugin. It is called once when the plugin is disabled.
	Close() error
}

// VersionedPlugin may be implemented by plugins to expose a version string.
type VersionedPlugin interface {
	Version() string
}

// Factory constructs a Plugin using the API passed. The returned Plugin is enabled immediately and must be ready
// to handle events.
type Factory[B any] func(api *API[B]) (Plugin, error)

// Info describes a plugin currently enabled by the host.
type Info struct {
	Name    string
	Version string
}

var (
	// ErrNameConflict is returned when another enabled plugin already uses the same case-insensitive name.
	ErrNameConflict = errors.New("plugin name already registered")
	// ErrNotFound is returned when attempting to disable a plugin that is not enabled.
	ErrNotFound = errors.New("plugin not found")
)
