package module

import (
	scheddom "chalkline/internal/services/api/schedule/domain"
)

// Ports exposed by the schedule module for cross-module lookups
type Ports struct {
	Schedule scheddom.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
