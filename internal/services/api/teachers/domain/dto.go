// Package domain holds DTOs for teachers http and service contracts
package domain

// Window is one weekly availability slot, minutes since midnight, end exclusive
type Window struct {
	Day   string `json:"day"   validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday" example:"monday"` //nolint:lll
	Start int    `json:"start" validate:"min=0,max=1439" example:"480"`
	End   int    `json:"end"   validate:"min=1,max=1440,gtfield=Start" example:"720"`
}

// CreateInput creates a teacher
type CreateInput struct {
	Name           string   `json:"name"             validate:"required,min=1,max=200" example:"Ada Lovelace"`
	Email          string   `json:"email,omitempty"  validate:"omitempty,email" example:"ada@uni.edu"`
	MaxWeeklyHours int      `json:"max_weekly_hours" validate:"min=0,max=80" example:"20"`
	Specialties    []string `json:"specialties,omitempty"  validate:"omitempty,max=20,dive,min=1,max=40"`
	Availability   []Window `json:"availability,omitempty" validate:"omitempty,max=50,dive"`
}

// GetInput fetches one teacher by id
type GetInput struct {
	ID string `json:"id" validate:"required,uuid4"`
}

// ListInput filters teachers
type ListInput struct {
	Q         string `json:"q,omitempty"         validate:"omitempty,min=1,max=200" example:"lovelace"`
	Specialty string `json:"specialty,omitempty" validate:"omitempty,min=1,max=40" example:"databases"`
	Active    *bool  `json:"active,omitempty"`
	Limit     int    `json:"limit,omitempty"     validate:"omitempty,min=1,max=500"`
}

// UpdateInput replaces mutable teacher fields
type UpdateInput struct {
	ID             string   `json:"id"               validate:"required,uuid4"`
	Name           string   `json:"name"             validate:"required,min=1,max=200"`
	Email          string   `json:"email,omitempty"  validate:"omitempty,email"`
	MaxWeeklyHours int      `json:"max_weekly_hours" validate:"min=0,max=80"`
	Specialties    []string `json:"specialties,omitempty"  validate:"omitempty,max=20,dive,min=1,max=40"`
	Availability   []Window `json:"availability,omitempty" validate:"omitempty,max=50,dive"`
	Active         bool     `json:"active"`
}

// DeleteInput removes a teacher
type DeleteInput struct {
	ID string `json:"id" validate:"required,uuid4"`
}

// Teacher is the API view of a teacher row
type Teacher struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email,omitempty"`
	MaxWeeklyHours int      `json:"max_weekly_hours"`
	Specialties    []string `json:"specialties,omitempty"`
	Availability   []Window `json:"availability,omitempty"`
	Active         bool     `json:"active"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

// Deleted acknowledges a delete
type Deleted struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
