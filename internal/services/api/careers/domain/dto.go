// Package domain holds DTOs for careers http and service contracts
package domain

// CreateInput creates a career (a degree program)
type CreateInput struct {
	Code string `json:"code" validate:"required,min=1,max=40,printascii" example:"CS"`
	Name string `json:"name" validate:"required,min=1,max=200" example:"Computer Science"`
}

// GetInput fetches one career by id
type GetInput struct {
	ID string `json:"id" validate:"required,uuid4" example:"7b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"`
}

// ListInput filters careers; Q matches the canonized name or code
type ListInput struct {
	Q     string `json:"q,omitempty" validate:"omitempty,min=1,max=200" example:"computer"`
	Limit int    `json:"limit,omitempty" validate:"omitempty,min=1,max=500" example:"50"`
}

// UpdateInput renames a career
type UpdateInput struct {
	ID   string `json:"id"   validate:"required,uuid4"`
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// DeleteInput removes a career
type DeleteInput struct {
	ID string `json:"id" validate:"required,uuid4"`
}

// Career is the API view of a career row
type Career struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Deleted acknowledges a delete
type Deleted struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
