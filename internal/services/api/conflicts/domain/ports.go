package domain

import "context"

// ServicePort defines the service contract for conflict detection
type ServicePort interface {
	Check(ctx context.Context, in CheckInput) (Report, error)
	Scan(ctx context.Context, in ScanInput) (Report, error)
}

// ScannerPort runs detection over the stored schedule; the audit worker
// consumes this port
type ScannerPort interface {
	Scan(ctx context.Context, in ScanInput) (Report, error)
}
