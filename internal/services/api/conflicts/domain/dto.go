// Package domain holds DTOs for conflict detection http and service contracts
package domain

// WindowInput is one weekly availability slot, minutes since midnight, end exclusive
type WindowInput struct {
	Day   string `json:"day"   validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Start int    `json:"start" validate:"min=0,max=1439"`
	End   int    `json:"end"   validate:"min=1,max=1440,gtfield=Start"`
}

// EventInput is one scheduled event; ids are free-form so inline snapshots can
// use natural keys like E001 instead of stored uuids
type EventInput struct {
	ID          string `json:"id"           validate:"required,min=1,max=64"`
	GroupID     string `json:"group_id"     validate:"required,min=1,max=64"`
	TeacherID   string `json:"teacher_id"   validate:"required,min=1,max=64"`
	ClassroomID string `json:"classroom_id" validate:"required,min=1,max=64"`
	Day         string `json:"day"          validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"` //nolint:lll
	StartMin    int    `json:"start_min"    validate:"min=0,max=1440"`
	EndMin      int    `json:"end_min"      validate:"min=0,max=1440"`
	StartWeek   int    `json:"start_week"`
	EndWeek     int    `json:"end_week"`
}

// TeacherInput describes a teacher for evaluation
// Active defaults to true when omitted
type TeacherInput struct {
	ID             string        `json:"id"               validate:"required,min=1,max=64"`
	MaxWeeklyHours int           `json:"max_weekly_hours" validate:"min=0,max=168"`
	Specialties    []string      `json:"specialties,omitempty"  validate:"omitempty,max=20,dive,min=1,max=40"`
	Availability   []WindowInput `json:"availability,omitempty" validate:"omitempty,max=50,dive"`
	Active         *bool         `json:"active,omitempty"`
}

// ClassroomInput describes a classroom for evaluation
type ClassroomInput struct {
	ID       string `json:"id"       validate:"required,min=1,max=64"`
	Capacity int    `json:"capacity"`
	Kind     string `json:"kind,omitempty" validate:"omitempty,oneof=classroom lab"`
}

// GroupInput describes a course group for evaluation
type GroupInput struct {
	ID           string `json:"id"            validate:"required,min=1,max=64"`
	StudentCount int    `json:"student_count"`
	Career       string `json:"career,omitempty"   validate:"omitempty,max=64"`
	Semester     int    `json:"semester,omitempty" validate:"omitempty,min=1,max=20"`
}

// CheckInput is a complete inline snapshot to evaluate without touching storage
// Collections must be present (possibly empty); time/week bounds are left loose
// on purpose so malformed rows flow through as data-quality findings
type CheckInput struct {
	Events     []EventInput     `json:"events"     validate:"required,dive"`
	Teachers   []TeacherInput   `json:"teachers"   validate:"required,dive"`
	Classrooms []ClassroomInput `json:"classrooms" validate:"required,dive"`
	Groups     []GroupInput     `json:"groups"     validate:"required,dive"`
	TermWeeks  int              `json:"term_weeks,omitempty" validate:"omitempty,min=1,max=52"`
}

// ScanInput asks for a detection run over the full stored schedule
type ScanInput struct {
	TermWeeks int `json:"term_weeks,omitempty" validate:"omitempty,min=1,max=52"`
}

// Finding is one detected conflict
type Finding struct {
	Kind     string   `json:"kind" example:"teacher_double_booking"`
	Events   []string `json:"events"`
	Resource string   `json:"resource,omitempty"`
	Message  string   `json:"message"`
}

// Report is an ordered conflict listing with totals per kind
type Report struct {
	Conflicts []Finding      `json:"conflicts"`
	Totals    map[string]int `json:"totals"`
	Total     int            `json:"total"`
}
