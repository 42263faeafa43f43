// Package repo provides postgres access for course groups
package repo

import (
	"context"

	"chalkline/internal/modkit/repokit"
	"chalkline/internal/platform/store"
)

// Repo defines the repository contract for course groups
type Repo interface {
	Insert(ctx context.Context, in InsertArgs) (RowGroup, error)
	Get(ctx context.Context, id string) (RowGroup, error)
	List(ctx context.Context, qCanon, careerID string, semester, limit int) ([]RowGroup, error)
	Update(ctx context.Context, id, courseName, courseCanon string, studentCount int) (RowGroup, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// InsertArgs are the columns written on insert
type InsertArgs struct {
	ID           string
	Code         string
	CourseName   string
	CourseCanon  string
	CareerID     string
	Semester     int
	StudentCount int
}

// RowGroup represents a course group row from the database
type RowGroup struct {
	ID           string
	Code         string
	CourseName   string
	CareerID     string
	Semester     int
	StudentCount int
	CreatedAt    string
	UpdatedAt    string
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

const groupCols = `id::text, code, course_name, career_id::text, semester, student_count,
created_at::text, updated_at::text`

func scanGroup(r store.Row) (RowGroup, error) {
	var rr RowGroup
	err := r.Scan(
		&rr.ID, &rr.Code, &rr.CourseName, &rr.CareerID,
		&rr.Semester, &rr.StudentCount, &rr.CreatedAt, &rr.UpdatedAt,
	)
	return rr, err
}

func (r *queries) Insert(ctx context.Context, in InsertArgs) (RowGroup, error) {
	const sql = `
insert into course_groups (id, code, course_name, course_canon, career_id, semester, student_count)
values ($1, $2, $3, $4, $5, $6, $7)
returning ` + groupCols
	return store.One(ctx, r.q, scanGroup, sql,
		in.ID, in.Code, in.CourseName, in.CourseCanon, in.CareerID, in.Semester, in.StudentCount)
}

func (r *queries) Get(ctx context.Context, id string) (RowGroup, error) {
	return store.One(ctx, r.q, scanGroup, `select `+groupCols+` from course_groups where id = $1`, id)
}

func (r *queries) List(ctx context.Context, qCanon, careerID string, semester, limit int) ([]RowGroup, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	const sql = `
select ` + groupCols + `
from course_groups
where ($1 = '' or course_canon like '%' || $1 || '%' or lower(code) = $1)
and ($2 = '' or career_id = $2::uuid)
and ($3 = 0 or semester = $3)
order by code
limit $4
`
	return store.Many(ctx, r.q, scanGroup, sql, qCanon, careerID, semester, limit)
}

func (r *queries) Update(ctx context.Context, id, courseName, courseCanon string, studentCount int) (RowGroup, error) {
	const sql = `
update course_groups
set course_name = $2, course_canon = $3, student_count = $4, updated_at = now()
where id = $1
returning ` + groupCols
	return store.One(ctx, r.q, scanGroup, sql, id, courseName, courseCanon, studentCount)
}

func (r *queries) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `delete from course_groups where id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
