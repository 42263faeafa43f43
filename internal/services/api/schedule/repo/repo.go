// Package repo provides postgres access for schedule events
package repo

import (
	"context"

	"chalkline/internal/modkit/repokit"
	"chalkline/internal/platform/store"
)

// Repo defines the repository contract for schedule events
type Repo interface {
	Insert(ctx context.Context, in EventArgs) (RowEvent, error)
	Get(ctx context.Context, id string) (RowEvent, error)
	List(ctx context.Context, f ListFilters) ([]RowEvent, error)
	Update(ctx context.Context, in EventArgs) (RowEvent, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// EventArgs are the columns written on insert or update
type EventArgs struct {
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

// ListFilters narrow the event listing
type ListFilters struct {
	GroupID     string
	TeacherID   string
	ClassroomID string
	Day         string
	Limit       int
}

// RowEvent represents a schedule event row from the database
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
	CreatedAt   string
	UpdatedAt   string
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

const eventCols = `id::text, group_id::text, teacher_id::text, classroom_id::text, day,
start_min, end_min, start_week, end_week, created_at::text, updated_at::text`

func scanEvent(r store.Row) (RowEvent, error) {
	var rr RowEvent
	err := r.Scan(
		&rr.ID, &rr.GroupID, &rr.TeacherID, &rr.ClassroomID, &rr.Day,
		&rr.StartMin, &rr.EndMin, &rr.StartWeek, &rr.EndWeek, &rr.CreatedAt, &rr.UpdatedAt,
	)
	return rr, err
}

func (r *queries) Insert(ctx context.Context, in EventArgs) (RowEvent, error) {
	const sql = `
insert into schedule_events (id, group_id, teacher_id, classroom_id, day, start_min, end_min, start_week, end_week)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
returning ` + eventCols
	return store.One(ctx, r.q, scanEvent, sql,
		in.ID, in.GroupID, in.TeacherID, in.ClassroomID, in.Day,
		in.StartMin, in.EndMin, in.StartWeek, in.EndWeek)
}

func (r *queries) Get(ctx context.Context, id string) (RowEvent, error) {
	return store.One(ctx, r.q, scanEvent, `select `+eventCols+` from schedule_events where id = $1`, id)
}

func (r *queries) List(ctx context.Context, f ListFilters) ([]RowEvent, error) {
	limit := f.Limit
	if limit <= 0 || limit > 1000 {
		limit = 200
	}
	const sql = `
select ` + eventCols + `
from schedule_events
where ($1 = '' or group_id = $1::uuid)
and ($2 = '' or teacher_id = $2::uuid)
and ($3 = '' or classroom_id = $3::uuid)
and ($4 = '' or day = $4)
order by day, start_min, id
limit $5
`
	return store.Many(ctx, r.q, scanEvent, sql, f.GroupID, f.TeacherID, f.ClassroomID, f.Day, limit)
}

func (r *queries) Update(ctx context.Context, in EventArgs) (RowEvent, error) {
	const sql = `
update schedule_events
set teacher_id = $2, classroom_id = $3, day = $4, start_min = $5, end_min = $6,
start_week = $7, end_week = $8, updated_at = now()
where id = $1
returning ` + eventCols
	return store.One(ctx, r.q, scanEvent, sql,
		in.ID, in.TeacherID, in.ClassroomID, in.Day,
		in.StartMin, in.EndMin, in.StartWeek, in.EndWeek)
}

func (r *queries) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `delete from schedule_events where id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
