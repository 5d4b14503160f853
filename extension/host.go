package extension

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/df-mc/rotatable/entity"
	"github.com/df-mc/rotatable/family"
)

type pluginInstance struct {
	name    string
	version string
	plugin  Plugin
}

func (pi pluginInstance) info() Info {
	return Info{Name: pi.name, Version: pi.version}
}

// Host provides the extension points plugins hook into: a registry of block families and the delivery of entity
// events to systems. B is the type of block definitions used by the host.
type Host[B any] struct {
	log      *slog.Logger
	families *family.Registry[B]

	mu      sync.Mutex
	systems systemList
	chain   atomic.Pointer[[]registration]

	pmu     sync.RWMutex
	plugins []pluginInstance
}

// NewHost creates an empty Host. If log is nil, slog.Default() is used.
func NewHost[B any](log *slog.Logger) *Host[B] {
	if log == nil {
		log = slog.Default()
	}
	h := &Host[B]{log: log, families: family.NewRegistry[B]()}
	h.chain.Store(&[]registration{})
	return h
}

// Families returns the registry holding the block families of all plugins.
func (h *Host[B]) Families() *family.Registry[B] {
	return h.families
}

// RegisterSystem registers s on behalf of the plugin passed. The function returned unregisters s and may be called
// more than once.
func (h *Host[B]) RegisterSystem(plugin string, s System) func() {
	if s == nil {
		return func() {}
	}
	h.mu.Lock()
	id := h.systems.add(plugin, s)
	h.storeChainLocked()
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			h.systems.removeByID(id)
			h.storeChainLocked()
			h.mu.Unlock()
		})
	}
}

// Dispatch delivers ev to every system that handles e, in the order the systems were registered. It returns the
// number of systems the event was delivered to. A system that panics is recovered from and its plugin is disabled.
func (h *Host[B]) Dispatch(ev entity.Event, e *entity.Entity) int {
	if ev == nil || e == nil {
		return 0
	}
	n := 0
	for _, reg := range *h.chain.Load() {
		s := reg.system
		if !s.Handles(e) {
			continue
		}
		n++
		h.invoke(reg.plugin, func() {
			s.HandleEvent(ev, e)
		})
	}
	return n
}

// Enable constructs a plugin with the factory passed and enables it. name is used to scope the registrations made
// by the factory until the plugin reports its own name.
func (h *Host[B]) Enable(name string, factory Factory[B]) (info Info, err error) {
	if factory == nil {
		return Info{}, errors.New("enable plugin: factory is nil")
	}
	if name == "" {
		name = "plugin"
	}
	if _, ok := h.Plugin(name); ok {
		return Info{}, fmt.Errorf("enable plugin %v: %w", name, ErrNameConflict)
	}

	api := newAPI(h, name)
	defer func() {
		if err != nil {
			h.clear(api.Name())
		}
	}()
	inst, err := factory(api)
	if err != nil {
		return Info{}, fmt.Errorf("initialise plugin %v: %w", name, err)
	}
	if inst == nil {
		return Info{}, fmt.Errorf("initialise plugin %v: factory returned nil", name)
	}

	previousName := api.Name()
	pi := pluginInstance{name: previousName, plugin: inst}
	if n := inst.Name(); n != "" {
		pi.name = n
	}
	if v, ok := inst.(VersionedPlugin); ok {
		pi.version = v.Version()
	}

	// Systems are only renamed once the name is taken, so clearing them after a conflict cannot remove the systems
	// of the plugin holding the name.
	h.pmu.Lock()
	for _, existing := range h.plugins {
		if strings.EqualFold(existing.name, pi.name) {
			h.pmu.Unlock()
			if err := inst.Close(); err != nil {
				h.log.Error("Close conflicting plugin instance.", "name", pi.name, "error", err)
			}
			return Info{}, fmt.Errorf("enable plugin %v: %w", pi.name, ErrNameConflict)
		}
	}
	h.plugins = append(h.plugins, pi)
	if pi.name != previousName {
		api.setName(pi.name)
		h.rename(previousName, pi.name)
	}
	h.pmu.Unlock()

	h.log.Info("Enabled plugin.", "name", pi.name, "version", pi.version)
	return pi.info(), nil
}

// Disable closes the plugin with the case-insensitive name passed and removes all systems it registered.
func (h *Host[B]) Disable(name string) (Info, error) {
	h.pmu.Lock()
	i := slices.IndexFunc(h.plugins, func(pi pluginInstance) bool {
		return strings.EqualFold(pi.name, name)
	})
	if i == -1 {
		h.pmu.Unlock()
		return Info{}, fmt.Errorf("disable plugin %v: %w", name, ErrNotFound)
	}
	pi := h.plugins[i]
	h.plugins = slices.Delete(h.plugins, i, i+1)
	h.pmu.Unlock()

	h.clear(pi.name)
	if err := pi.plugin.Close(); err != nil {
		return pi.info(), fmt.Errorf("close plugin %v: %w", pi.name, err)
	}
	h.log.Info("Disabled plugin.", "name", pi.name)
	return pi.info(), nil
}

// Plugin returns an enabled plugin by its case-insensitive name.
func (h *Host[B]) Plugin(name string) (Plugin, bool) {
	h.pmu.RLock()
	defer h.pmu.RUnlock()
	for _, pi := range h.plugins {
		if strings.EqualFold(pi.name, name) {
			return pi.plugin, true
		}
	}
	return nil, false
}

// Infos returns metadata of all enabled plugins in the order they were enabled.
func (h *Host[B]) Infos() []Info {
	h.pmu.RLock()
	defer h.pmu.RUnlock()
	infos := make([]Info, len(h.plugins))
	for i, pi := range h.plugins {
		infos[i] = pi.info()
	}
	return infos
}

// Close disables all plugins in the reverse order they were enabled in.
func (h *Host[B]) Close() error {
	var errs []error
	infos := h.Infos()
	for i := len(infos) - 1; i >= 0; i-- {
		if _, err := h.Disable(infos[i].Name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *Host[B]) invoke(plugin string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			h.handlePanic(plugin, r)
		}
	}()
	fn()
}

func (h *Host[B]) handlePanic(plugin string, reason any) {
	h.clear(plugin)
	h.log.Error("Plugin panic.", "plugin", plugin, "panic", reason, "stack", string(debug.Stack()))
	info, err := h.Disable(plugin)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			h.log.Error("Disable panic plugin.", "plugin", plugin, "error", err)
		}
		return
	}
	h.log.Warn("Plugin disabled after panic.", "name", info.Name, "version", info.Version)
}

func (h *Host[B]) clear(plugin string) {
	h.mu.Lock()
	h.systems.removePlugin(plugin)
	h.storeChainLocked()
	h.mu.Unlock()
}

func (h *Host[B]) rename(oldName, newName string) {
	h.mu.Lock()
	h.systems.rename(oldName, newName)
	h.storeChainLocked()
	h.mu.Unlock()
}

func (h *Host[B]) storeChainLocked() {
	chain := h.systems.snapshot()
	h.chain.Store(&chain)
}
