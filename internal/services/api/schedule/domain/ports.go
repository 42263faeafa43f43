package domain

import "context"

// ServicePort defines the service contract for schedule events
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Event, error)
	Get(ctx context.Context, in GetInput) (Event, error)
	List(ctx context.Context, in ListInput) ([]Event, error)
	Update(ctx context.Context, in UpdateInput) (Event, error)
	Delete(ctx context.Context, in DeleteInput) (Deleted, error)
}
