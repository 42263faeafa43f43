package module

import (
	teachersdom "chalkline/internal/services/api/teachers/domain"
)

// Ports exposed by the teachers module for cross-module lookups
type Ports struct {
	Teachers teachersdom.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
