package module

import (
	careersdom "chalkline/internal/services/api/careers/domain"
)

// Ports exposed by the careers module for cross-module lookups
type Ports struct {
	Careers careersdom.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
