// Package repo provides postgres access for careers
package repo

import (
	"context"

	"chalkline/internal/modkit/repokit"
	"chalkline/internal/platform/store"
)

// Repo defines the repository contract for careers
type Repo interface {
	Insert(ctx context.Context, id, code, name, nameCanon string) (RowCareer, error)
	Get(ctx context.Context, id string) (RowCareer, error)
	List(ctx context.Context, qCanon string, limit int) ([]RowCareer, error)
	Rename(ctx context.Context, id, name, nameCanon string) (RowCareer, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// RowCareer represents a career row from the database
type RowCareer struct {
	ID        string
	Code      string
	Name      string
	CreatedAt string
	UpdatedAt string
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const careerCols = `id::text, code, name, created_at::text, updated_at::text`

func scanCareer(r store.Row) (RowCareer, error) {
	var rr RowCareer
	err := r.Scan(&rr.ID, &rr.Code, &rr.Name, &rr.CreatedAt, &rr.UpdatedAt)
	return rr, err
}

func (r *queries) Insert(ctx context.Context, id, code, name, nameCanon string) (RowCareer, error) {
	const sql = `
insert into careers (id, code, name, name_canon)
values ($1, $2, $3, $4)
returning ` + careerCols
	return store.One(ctx, r.q, scanCareer, sql, id, code, name, nameCanon)
}

func (r *queries) Get(ctx context.Context, id string) (RowCareer, error) {
	return store.One(ctx, r.q, scanCareer, `select `+careerCols+` from careers where id = $1`, id)
}

func (r *queries) List(ctx context.Context, qCanon string, limit int) ([]RowCareer, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	const sql = `
select ` + careerCols + `
from careers
where ($1 = '' or name_canon like '%' || $1 || '%' or lower(code) = $1)
order by name
limit $2
`
	return store.Many(ctx, r.q, scanCareer, sql, qCanon, limit)
}

func (r *queries) Rename(ctx context.Context, id, name, nameCanon string) (RowCareer, error) {
	const sql = `
update careers
set name = $2, name_canon = $3, updated_at = now()
where id = $1
returning ` + careerCols
	return store.One(ctx, r.q, scanCareer, sql, id, name, nameCanon)
}

func (r *queries) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `delete from careers where id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
