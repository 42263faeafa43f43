package domain

import "context"

// ServicePort defines the service contract for course groups
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Group, error)
	Get(ctx context.Context, in GetInput) (Group, error)
	List(ctx context.Context, in ListInput) ([]Group, error)
	Update(ctx context.Context, in UpdateInput) (Group, error)
	Delete(ctx context.Context, in DeleteInput) (Deleted, error)
}
