// Package repo provides postgres access for teachers
package repo

import (
	"context"

	"chalkline/internal/modkit/repokit"
	"chalkline/internal/platform/store"
	pstrings "chalkline/internal/platform/strings"
)

// Repo defines the repository contract for teachers
type Repo interface {
	Insert(ctx context.Context, in InsertArgs) (RowTeacher, error)
	Get(ctx context.Context, id string) (RowTeacher, error)
	List(ctx context.Context, qCanon, specialty string, active *bool, limit int) ([]RowTeacher, error)
	Update(ctx context.Context, in UpdateArgs) (RowTeacher, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// InsertArgs are the columns written on insert
type InsertArgs struct {
	ID               string
	Name             string
	NameCanon        string
	Email            string
	MaxWeeklyHours   int
	Specialties      []string
	AvailabilityJSON []byte
}

// UpdateArgs are the columns replaced on update
type UpdateArgs struct {
	ID               string
	Name             string
	NameCanon        string
	Email            string
	MaxWeeklyHours   int
	Specialties      []string
	AvailabilityJSON []byte
	Active           bool
}

// RowTeacher represents a teacher row from the database
type RowTeacher struct {
	ID               string
	Name             string
	Email            string
	MaxWeeklyHours   int
	Specialties      []string
	AvailabilityJSON []byte
	Active           bool
	CreatedAt        string
	UpdatedAt        string
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

const teacherCols = `id::text, name, coalesce(email, ''), max_weekly_hours, specialties,
availability, active, created_at::text, updated_at::text`

func scanTeacher(r store.Row) (RowTeacher, error) {
	var rr RowTeacher
	err := r.Scan(
		&rr.ID, &rr.Name, &rr.Email, &rr.MaxWeeklyHours, &rr.Specialties,
		&rr.AvailabilityJSON, &rr.Active, &rr.CreatedAt, &rr.UpdatedAt,
	)
	return rr, err
}

func (r *queries) Insert(ctx context.Context, in InsertArgs) (RowTeacher, error) {
	const sql = `
insert into teachers (id, name, name_canon, email, max_weekly_hours, specialties, availability, active)
values ($1, $2, $3, $4, $5, $6, $7, true)
returning ` + teacherCols
	return store.One(ctx, r.q, scanTeacher, sql,
		in.ID, in.Name, in.NameCanon, pstrings.SQLNull(in.Email), in.MaxWeeklyHours, in.Specialties, in.AvailabilityJSON)
}

func (r *queries) Get(ctx context.Context, id string) (RowTeacher, error) {
	return store.One(ctx, r.q, scanTeacher, `select `+teacherCols+` from teachers where id = $1`, id)
}

func (r *queries) List(ctx context.Context, qCanon, specialty string, active *bool, limit int) ([]RowTeacher, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	const sql = `
select ` + teacherCols + `
from teachers
where ($1 = '' or name_canon like '%' || $1 || '%')
and ($2 = '' or $2 = any(specialties))
and ($3::bool is null or active = $3)
order by name
limit $4
`
	return store.Many(ctx, r.q, scanTeacher, sql, qCanon, specialty, active, limit)
}

func (r *queries) Update(ctx context.Context, in UpdateArgs) (RowTeacher, error) {
	const sql = `
update teachers
set name = $2, name_canon = $3, email = $4, max_weekly_hours = $5,
specialties = $6, availability = $7, active = $8, updated_at = now()
where id = $1
returning ` + teacherCols
	return store.One(ctx, r.q, scanTeacher, sql,
		in.ID, in.Name, in.NameCanon, pstrings.SQLNull(in.Email), in.MaxWeeklyHours,
		in.Specialties, in.AvailabilityJSON, in.Active)
}

func (r *queries) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `delete from teachers where id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
