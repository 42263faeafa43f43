// Package domain holds DTOs for course groups http and service contracts
package domain

// CreateInput creates a course group (one section of a course for a cohort)
type CreateInput struct {
	Code         string `json:"code"          validate:"required,min=1,max=40" example:"CS-301-A"`
	CourseName   string `json:"course_name"   validate:"required,min=1,max=200" example:"Operating Systems"`
	CareerID     string `json:"career_id"     validate:"required,uuid4"`
	Semester     int    `json:"semester"      validate:"required,min=1,max=20" example:"5"`
	StudentCount int    `json:"student_count" validate:"min=0,max=2000" example:"32"`
}

// GetInput fetches one group by id
type GetInput struct {
	ID string `json:"id" validate:"required,uuid4"`
}

// ListInput filters groups
type ListInput struct {
	Q        string `json:"q,omitempty"         validate:"omitempty,min=1,max=200" example:"operating"`
	CareerID string `json:"career_id,omitempty" validate:"omitempty,uuid4"`
	Semester int    `json:"semester,omitempty"  validate:"omitempty,min=1,max=20"`
	Limit    int    `json:"limit,omitempty"     validate:"omitempty,min=1,max=500"`
}

// UpdateInput changes enrolment or course name
type UpdateInput struct {
	ID           string `json:"id"            validate:"required,uuid4"`
	CourseName   string `json:"course_name"   validate:"required,min=1,max=200"`
	StudentCount int    `json:"student_count" validate:"min=0,max=2000"`
}

// DeleteInput removes a group
type DeleteInput struct {
	ID string `json:"id" validate:"required,uuid4"`
}

// Group is the API view of a course group row
type Group struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	CourseName   string `json:"course_name"`
	CareerID     string `json:"career_id"`
	Semester     int    `json:"semester"`
	StudentCount int    `json:"student_count"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// Deleted acknowledges a delete
type Deleted struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
