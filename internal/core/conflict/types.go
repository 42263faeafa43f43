// Package conflict implements deterministic schedule conflict detection
// over an immutable snapshot of timetable entities
package conflict

import "fmt"

// Day is an ISO-8601 style weekday, Monday = 1
type Day uint8

// Weekdays
const (
	Monday Day = 1 + iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{"", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// String returns the lowercase english weekday name
func (d Day) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("day(%d)", uint8(d))
	}
	return dayNames[d]
}

// Valid reports whether d is a real weekday
func (d Day) Valid() bool { return d >= Monday && d <= Sunday }

// Event is one recurring weekly class session
// Start and End are minutes since midnight, half open [Start, End)
// StartWeek and EndWeek are 1-based term weeks, inclusive on both ends
type Event struct {
	ID          string
	GroupID     string
	TeacherID   string
	ClassroomID string
	Day         Day
	Start       int
	End         int
	StartWeek   int
	EndWeek     int
}

// Window is a declared teacher availability slot, minutes since midnight
type Window struct {
	Day   Day
	Start int
	End   int
}

// Teacher holds scheduling constraints declared for one teacher
// an empty Availability list means available at all times
type Teacher struct {
	ID             string
	MaxWeeklyHours int
	Specialties    []string
	Availability   []Window
	Active         bool
}

// RoomKind distinguishes general classrooms from labs
type RoomKind string

// Room kinds
const (
	RoomClassroom RoomKind = "classroom"
	RoomLab       RoomKind = "lab"
)

// Classroom is a physical room with a seat capacity
type Classroom struct {
	ID       string
	Capacity int
	Kind     RoomKind
}

// Group is a course offering with an enrolled student count
type Group struct {
	ID           string
	StudentCount int
	Career       string
	Semester     int
}

// Snapshot is the full immutable input for one detection run
type Snapshot struct {
	Events     []Event
	Teachers   []Teacher
	Classrooms []Classroom
	Groups     []Group
}

// Kind labels one category of finding
type Kind string

// Finding kinds, in report order
const (
	KindTeacherDoubleBooking   Kind = "teacher_double_booking"
	KindClassroomDoubleBooking Kind = "classroom_double_booking"
	KindCapacityExceeded       Kind = "capacity_exceeded"
	KindTeacherUnavailable     Kind = "teacher_unavailable"
	KindTeacherOverloaded      Kind = "teacher_overloaded"
	KindDanglingReference      Kind = "dangling_reference"
	KindDataQuality            Kind = "data_quality"
)

// kindRank fixes the grouping order of the output
var kindRank = map[Kind]int{
	KindTeacherDoubleBooking:   0,
	KindClassroomDoubleBooking: 1,
	KindCapacityExceeded:       2,
	KindTeacherUnavailable:     3,
	KindTeacherOverloaded:      4,
	KindDanglingReference:      5,
	KindDataQuality:            6,
}

// Conflict is one reported finding
// Events holds the offending event id(s) ascending; Resource is the
// offending teacher/classroom/group id when one applies
type Conflict struct {
	Kind     Kind     `json:"kind"`
	Events   []string `json:"events,omitempty"`
	Resource string   `json:"resource,omitempty"`
	Message  string   `json:"message"`
}

// Options tunes a detection run
type Options struct {
	// TermWeeks is the term length in weeks; 0 means DefaultTermWeeks
	TermWeeks int
}

// DefaultTermWeeks is the fixed term length when none is configured
const DefaultTermWeeks = 20

/// clock renders minutes since midnight as HH:MM
func clock(m int) string { return fmt.Sprintf("%02d:%02d", m/60, m%60) }
