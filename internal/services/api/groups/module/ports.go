package module

import (
	groupsdom "chalkline/internal/services/api/groups/domain"
)

// Ports exposed by the groups module for cross-module lookups
type Ports struct {
	Groups groupsdom.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
