package module

import (
	roomsdom "chalkline/internal/services/api/classrooms/domain"
)

// Ports exposed by the classrooms module for cross-module lookups
type Ports struct {
	Classrooms roomsdom.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
