package domain

import "context"

// ServicePort defines the service contract for teachers
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Teacher, error)
	Get(ctx context.Context, in GetInput) (Teacher, error)
	List(ctx context.Context, in ListInput) ([]Teacher, error)
	Update(ctx context.Context, in UpdateInput) (Teacher, error)
	Delete(ctx context.Context, in DeleteInput) (Deleted, error)
}
