package module

import (
	confdom "chalkline/internal/services/api/conflicts/domain"
)

// Ports exposed by the conflicts module; the audit worker consumes Scanner
type Ports struct {
	Scanner confdom.ScannerPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
