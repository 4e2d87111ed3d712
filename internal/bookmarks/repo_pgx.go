package bookmarks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sundayezeilo/bookmarkd/internal/errx"
)

// querier abstracts the subset of pgxpool.Pool the repository needs,
// so tests can substitute their own implementation.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type repo struct {
	q querier
}

// NewRepository creates a Repository backed by PostgreSQL.
// q is typically a *pgxpool.Pool.
func NewRepository(q querier) Repository {
	return &repo{q: q}
}

const bookmarkColumns = "id, title, url, description, rating"

func mapRepoError(op string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return errx.E(op, errx.NotFound, err)

	default:
		return errx.E(op, errx.Internal, err)
	}
}

func scanBookmark(row pgx.Row) (Bookmark, error) {
	var b Bookmark
	err := row.Scan(&b.ID, &b.Title, &b.URL, &b.Description, &b.Rating)
	return b, err
}

func (r *repo) List(ctx context.Context) ([]Bookmark, error) {
	const op = "bookmarks.repo.List"

	rows, err := r.q.Query(ctx, "SELECT "+bookmarkColumns+" FROM bookmarks ORDER BY id")
	if err != nil {
		return nil, mapRepoError(op, err)
	}
	defer rows.Close()

	var out []Bookmark
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, mapRepoError(op, err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, mapRepoError(op, err)
	}
	return out, nil
}

func (r *repo) GetByID(ctx context.Context, id int64) (Bookmark, error) {
	const op = "bookmarks.repo.GetByID"

	row := r.q.QueryRow(ctx, "SELECT "+bookmarkColumns+" FROM bookmarks WHERE id = $1", id)
	b, err := scanBookmark(row)
	if err != nil {
		return Bookmark{}, mapRepoError(op, err)
	}
	return b, nil
}

func (r *repo) Insert(ctx context.Context, b Bookmark) (Bookmark, error) {
	const op = "bookmarks.repo.Insert"

	row := r.q.QueryRow(ctx,
		"INSERT INTO bookmarks (title, url, description, rating) VALUES ($1, $2, $3, $4) RETURNING "+bookmarkColumns,
		b.Title, b.URL, b.Description, b.Rating,
	)
	created, err := scanBookmark(row)
	if err != nil {
		return Bookmark{}, mapRepoError(op, err)
	}
	return created, nil
}

func (r *repo) Update(ctx context.Context, id int64, patch Patch) error {
	const op = "bookmarks.repo.Update"

	sql, args, ok := buildUpdateQuery(id, patch)
	if !ok {
		return nil
	}

	// Zero rows matched is not an error; the handler guards existence upfront.
	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		return mapRepoError(op, err)
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	const op = "bookmarks.repo.Delete"

	if _, err := r.q.Exec(ctx, "DELETE FROM bookmarks WHERE id = $1", id); err != nil {
		return mapRepoError(op, err)
	}
	return nil
}

// buildUpdateQuery assembles an UPDATE statement covering exactly the fields
// set on the patch. ok is false when the patch is empty.
func buildUpdateQuery(id int64, patch Patch) (sql string, args []any, ok bool) {
	var sets []string

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.URL != nil {
		add("url", *patch.URL)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Rating != nil {
		add("rating", *patch.Rating)
	}

	if len(sets) == 0 {
		return "", nil, false
	}

	args = append(args, id)
	sql = fmt.Sprintf("UPDATE bookmarks SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	return sql, args, true
}
