package extension

import "slices"

// registration is a System registered by a plugin. id identifies a single registration, so that the same System
// may be registered more than once and removed one registration at a time.
type registration struct {
	id     uint64
	plugin string
	system System
}

// systemList holds the registrations of a Host in the order they were made. It is not safe for concurrent use: the
// Host guards it with a mutex and publishes snapshots of it for Dispatch to read without locking.
type systemList struct {
	regs   []registration
	nextID uint64
}

// add appends a registration of s on behalf of plugin and returns its id.
func (l *systemList) add(plugin string, s System) uint64 {
	l.nextID++
	l.regs = append(l.regs, registration{id: l.nextID, plugin: plugin, system: s})
	return l.nextID
}

// removeByID removes the registration with the id passed, if it is still present.
func (l *systemList) removeByID(id uint64) {
	l.regs = slices.DeleteFunc(l.regs, func(reg registration) bool { return reg.id == id })
}

// removePlugin removes all registrations of plugin.
func (l *systemList) removePlugin(plugin string) {
	l.regs = slices.DeleteFunc(l.regs, func(reg registration) bool { return reg.plugin == plugin })
}

// rename moves all registrations of oldName over to newName.
func (l *systemList) rename(oldName, newName string) {
	for i := range l.regs {
		if l.regs[i].plugin == oldName {
			l.regs[i].plugin = newName
		}
	}
}

// snapshot returns a copy of the registrations that is not changed by later calls on l.
func (l *systemList) snapshot() []registration {
	return slices.Clone(l.regs)
}
