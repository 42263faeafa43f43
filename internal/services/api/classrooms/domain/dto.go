// Package domain holds DTOs for classrooms http and service contracts
package domain

// CreateInput creates a classroom
type CreateInput struct {
	Code     string `json:"code"     validate:"required,min=1,max=40" example:"B-201"`
	Capacity int    `json:"capacity" validate:"required,min=1,max=2000" example:"40"`
	Kind     string `json:"kind"     validate:"required,oneof=classroom lab" example:"classroom"`
}

// GetInput fetches one classroom by id
type GetInput struct {
	ID string `json:"id" validate:"required,uuid4"`
}

// ListInput filters classrooms
type ListInput struct {
	Q           string `json:"q,omitempty"            validate:"omitempty,min=1,max=40" example:"b-201"`
	Kind        string `json:"kind,omitempty"         validate:"omitempty,oneof=classroom lab"`
	MinCapacity int    `json:"min_capacity,omitempty" validate:"omitempty,min=1,max=2000" example:"30"`
	Limit       int    `json:"limit,omitempty"        validate:"omitempty,min=1,max=500" example:"50"`
}

// UpdateInput changes capacity or kind
type UpdateInput struct {
	ID       string `json:"id"       validate:"required,uuid4"`
	Capacity int    `json:"capacity" validate:"required,min=1,max=2000"`
	Kind     string `json:"kind"     validate:"required,oneof=classroom lab"`
}

// DeleteInput removes a classroom
type DeleteInput struct {
	ID string `json:"id" validate:"required,uuid4"`
}

// Classroom is the API view of a classroom row
type Classroom struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Capacity  int    `json:"capacity"`
	Kind      string `json:"kind"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Deleted acknowledges a delete
type Deleted struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
