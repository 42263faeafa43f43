// Package repo provides postgres access for classrooms
package repo

import (
	"context"

	"chalkline/internal/modkit/repokit"
	"chalkline/internal/platform/store"
)

// Repo defines the repository contract for classrooms
type Repo interface {
	Insert(ctx context.Context, id, code, codeCanon string, capacity int, kind string) (RowClassroom, error)
	Get(ctx context.Context, id string) (RowClassroom, error)
	List(ctx context.Context, qCanon, kind string, minCapacity, limit int) ([]RowClassroom, error)
	Update(ctx context.Context, id string, capacity int, kind string) (RowClassroom, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// RowClassroom represents a classroom row from the database
type RowClassroom struct {
	ID        string
	Code      string
	Capacity  int
	Kind      string
	CreatedAt string
	UpdatedAt string
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

const roomCols = `id::text, code, capacity, kind, created_at::text, updated_at::text`

func scanRoom(r store.Row) (RowClassroom, error) {
	var rr RowClassroom
	err := r.Scan(&rr.ID, &rr.Code, &rr.Capacity, &rr.Kind, &rr.CreatedAt, &rr.UpdatedAt)
	return rr, err
}

func (r *queries) Insert(
	ctx context.Context,
	id, code, codeCanon string,
	capacity int,
	kind string,
) (RowClassroom, error) {
	const sql = `
insert into classrooms (id, code, code_canon, capacity, kind)
values ($1, $2, $3, $4, $5)
returning ` + roomCols
	return store.One(ctx, r.q, scanRoom, sql, id, code, codeCanon, capacity, kind)
}

func (r *queries) Get(ctx context.Context, id string) (RowClassroom, error) {
	return store.One(ctx, r.q, scanRoom, `select `+roomCols+` from classrooms where id = $1`, id)
}

func (r *queries) List(ctx context.Context, qCanon, kind string, minCapacity, limit int) ([]RowClassroom, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	const sql = `
select ` + roomCols + `
from classrooms
where ($1 = '' or code_canon like '%' || $1 || '%')
and ($2 = '' or kind = $2)
and ($3 = 0 or capacity >= $3)
order by code
limit $4
`
	return store.Many(ctx, r.q, scanRoom, sql, qCanon, kind, minCapacity, limit)
}

func (r *queries) Update(ctx context.Context, id string, capacity int, kind string) (RowClassroom, error) {
	const sql = `
update classrooms
set capacity = $2, kind = $3, updated_at = now()
where id = $1
returning ` + roomCols
	return store.One(ctx, r.q, scanRoom, sql, id, capacity, kind)
}

func (r *queries) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `delete from classrooms where id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
