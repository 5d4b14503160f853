package extension

import (
	"log/slog"
	"sync/atomic"

	"github.com/df-mc/rotatable/family"
)

// API is handed to a Factory and exposes the host to a single plugin. Registrations made through it are removed
// when the plugin is disabled.
type API[B any] struct {
	host *Host[B]
	name atomic.Value // string
}

func newAPI[B any](host *Host[B], name string) *API[B] {
	api := &API[B]{host: host}
	api.name.Store(name)
	return api
}

func (api *API[B]) setName(name string) {
	if name == "" {
		return
	}
	api.name.Store(name)
}

// Name returns the name the plugin is currently registered under.
func (api *API[B]) Name() string {
	if s, ok := api.name.Load().(string); ok && s != "" {
		return s
	}
	return "plugin"
}

// Logger returns the host logger scoped to the plugin's name.
func (api *API[B]) Logger() *slog.Logger {
	return api.host.log.With("plugin", api.Name())
}

// Families returns the host's block family registry.
func (api *API[B]) Families() *family.Registry[B] {
	return api.host.families
}

// RegisterSystem registers s with the host. The function returned unregisters s again.
func (api *API[B]) RegisterSystem(s System) func() {
	return api.host.RegisterSystem(api.Name(), s)
}
