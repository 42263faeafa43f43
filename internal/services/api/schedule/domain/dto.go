// Package domain holds DTOs for schedule http and service contracts
package domain

// CreateInput schedules a weekly event for a group
// times are minutes since midnight, end exclusive; weeks are 1-based inclusive
type CreateInput struct {
	GroupID     string `json:"group_id"     validate:"required,uuid4"`
	TeacherID   string `json:"teacher_id"   validate:"required,uuid4"`
	ClassroomID string `json:"classroom_id" validate:"required,uuid4"`
	Day         string `json:"day"          validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday" example:"monday"` //nolint:lll
	StartMin    int    `json:"start_min"    validate:"min=0,max=1439" example:"540"`
	EndMin      int    `json:"end_min"      validate:"min=1,max=1440,gtfield=StartMin" example:"660"`
	StartWeek   int    `json:"start_week"   validate:"required,min=1,max=52" example:"1"`
	EndWeek     int    `json:"end_week"     validate:"required,min=1,max=52,gtefield=StartWeek" example:"16"`
}

// GetInput fetches one event by id
type GetInput struct {
	ID string `json:"id" validate:"required,uuid4"`
}

// ListInput filters events
type ListInput struct {
	GroupID     string `json:"group_id,omitempty"     validate:"omitempty,uuid4"`
	TeacherID   string `json:"teacher_id,omitempty"   validate:"omitempty,uuid4"`
	ClassroomID string `json:"classroom_id,omitempty" validate:"omitempty,uuid4"`
	Day         string `json:"day,omitempty"          validate:"omitempty,oneof=monday tuesday wednesday thursday friday saturday sunday"` //nolint:lll
	Limit       int    `json:"limit,omitempty"        validate:"omitempty,min=1,max=1000"`
}

// UpdateInput replaces an event's scheduling fields
type UpdateInput struct {
	ID          string `json:"id"           validate:"required,uuid4"`
	TeacherID   string `json:"teacher_id"   validate:"required,uuid4"`
	ClassroomID string `json:"classroom_id" validate:"required,uuid4"`
	Day         string `json:"day"          validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"` //nolint:lll
	StartMin    int    `json:"start_min"    validate:"min=0,max=1439"`
	EndMin      int    `json:"end_min"      validate:"min=1,max=1440,gtfield=StartMin"`
	StartWeek   int    `json:"start_week"   validate:"required,min=1,max=52"`
	EndWeek     int    `json:"end_week"     validate:"required,min=1,max=52,gtefield=StartWeek"`
}

// DeleteInput removes an event
type DeleteInput struct {
	ID string `json:"id" validate:"required,uuid4"`
}

// Event is the API view of a schedule event row
type Event struct {
	ID          string `json:"id"`
	GroupID     string `json:"group_id"`
	TeacherID   string `json:"teacher_id"`
	ClassroomID string `json:"classroom_id"`
	Day         string `json:"day"`
	StartMin    int    `json:"start_min"`
	EndMin      int    `json:"end_min"`
	StartWeek   int    `json:"start_week"`
	EndWeek     int    `json:"end_week"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Deleted acknowledges a delete
type Deleted struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
