// Package repo loads the stored schedule snapshot for conflict detection
package repo

import (
	"context"

	"chalkline/internal/modkit/repokit"
	"chalkline/internal/platform/store"
)

// Repo defines the snapshot loading contract
type Repo interface {
	Events(ctx context.Context) ([]RowEvent, error)
	Teachers(ctx context.Context) ([]RowTeacher, error)
	Classrooms(ctx context.Context) ([]RowClassroom, error)
	Groups(ctx context.Context) ([]RowGroup, error)
}

// RowEvent is the scheduling slice of a schedule_events row
type RowEvent struct {
	ID          string
	GroupID     string
	TeacherID   string
	ClassroomID string
	Day         string
	StartMin    int
	EndMin      int
	StartWeek   int
	EndWeek     int
}

// RowTeacher is the evaluation slice of a teachers row
type RowTeacher struct {
	ID               string
	MaxWeeklyHours   int
	Specialties      []string
	AvailabilityJSON []byte
	Active           bool
}

// RowClassroom is the evaluation slice of a classrooms row
type RowClassroom struct {
	ID       string
	Capacity int
	Kind     string
}

// RowGroup is the evaluation slice of a course_groups row
type RowGroup struct {
	ID           string
	StudentCount int
	CareerID     string
	Semester     int
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Events(ctx context.Context) ([]RowEvent, error) {
	const sql = `
select id::text, group_id::text, teacher_id::text, classroom_id::text, day,
start_min, end_min, start_week, end_week
from schedule_events
order by id
`
	return store.Many(ctx, r.q, func(row store.Row) (RowEvent, error) {
		var e RowEvent
		err := row.Scan(&e.ID, &e.GroupID, &e.TeacherID, &e.ClassroomID, &e.Day,
			&e.StartMin, &e.EndMin, &e.StartWeek, &e.EndWeek)
		return e, err
	}, sql)
}

func (r *queries) Teachers(ctx context.Context) ([]RowTeacher, error) {
	const sql = `
select id::text, max_weekly_hours, specialties, availability, active
from teachers
order by id
`
	return store.Many(ctx, r.q, func(row store.Row) (RowTeacher, error) {
		var t RowTeacher
		err := row.Scan(&t.ID, &t.MaxWeeklyHours, &t.Specialties, &t.AvailabilityJSON, &t.Active)
		return t, err
	}, sql)
}

func (r *queries) Classrooms(ctx context.Context) ([]RowClassroom, error) {
	const sql = `select id::text, capacity, kind from classrooms order by id`
	return store.Many(ctx, r.q, func(row store.Row) (RowClassroom, error) {
		var c RowClassroom
		err := row.Scan(&c.ID, &c.Capacity, &c.Kind)
		return c, err
	}, sql)
}

func (r *queries) Groups(ctx context.Context) ([]RowGroup, error) {
	const sql = `select id::text, student_count, career_id::text, semester from course_groups order by id`
	return store.Many(ctx, r.q, func(row store.Row) (RowGroup, error) {
		var g RowGroup
		err := row.Scan(&g.ID, &g.StudentCount, &g.CareerID, &g.Semester)
		return g, err
	}, sql)
}
