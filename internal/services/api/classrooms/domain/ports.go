package domain

import "context"

// ServicePort defines the service contract for classrooms
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Classroom, error)
	Get(ctx context.Context, in GetInput) (Classroom, error)
	List(ctx context.Context, in ListInput) ([]Classroom, error)
	Update(ctx context.Context, in UpdateInput) (Classroom, error)
	Delete(ctx context.Context, in DeleteInput) (Deleted, error)
}
