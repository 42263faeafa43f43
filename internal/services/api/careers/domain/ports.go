package domain

import "context"

// ServicePort defines the service contract for careers
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Career, error)
	Get(ctx context.Context, in GetInput) (Career, error)
	List(ctx context.Context, in ListInput) ([]Career, error)
	Update(ctx context.Context, in UpdateInput) (Career, error)
	Delete(ctx context.Context, in DeleteInput) (Deleted, error)
}
