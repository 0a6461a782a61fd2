package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"github.com/gustavoesucri/back-end-ifd/internal/domains/content"
	"github.com/gustavoesucri/back-end-ifd/internal/shared/utils"
)

const pgUniqueViolation = "23505"

// postgresRepository implements content.Repository for any schema.
// Statements are built once from the schema's table and column names.
type postgresRepository[E any] struct {
	pool   *pgxpool.Pool
	schema content.Schema[E]

	selectAll  string
	selectByID string
	selectSlug string
	selectName string
	insert     string
	update     string
	delete     string
}

// NewPostgresRepository creates a repository for schema backed by pool.
func NewPostgresRepository[E any](pool *pgxpool.Pool, schema content.Schema[E]) content.Repository[E] {
	r := &postgresRepository[E]{pool: pool, schema: schema}
	r.buildStatements()
	return r
}

func (r *postgresRepository[E]) buildStatements() {
	table := pq.QuoteIdentifier(r.schema.Table)
	name := pq.QuoteIdentifier(r.schema.NameColumn)

	cols := make([]string, len(r.schema.Columns))
	for i, c := range r.schema.Columns {
		cols[i] = pq.QuoteIdentifier(c)
	}

	selectCols := "id, slug, created_at, updated_at, " + strings.Join(cols, ", ")
	base := fmt.Sprintf("SELECT %s FROM %s", selectCols, table)

	r.selectAll = base + " ORDER BY id"
	r.selectByID = base + " WHERE id = $1"
	r.selectSlug = base + " WHERE slug = $1"
	r.selectName = base + fmt.Sprintf(` WHERE %s ILIKE '%%' || $1 || '%%' ESCAPE '\' ORDER BY id`, name)

	placeholders := make([]string, len(cols)+1)
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	r.insert = fmt.Sprintf(
		"INSERT INTO %s (slug, %s) VALUES (%s) RETURNING id, created_at, updated_at",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "),
	)

	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+2)
	}
	r.update = fmt.Sprintf(
		"UPDATE %s SET slug = $1, %s, updated_at = NOW() WHERE id = $%d RETURNING updated_at",
		table, strings.Join(sets, ", "), len(cols)+2,
	)

	r.delete = fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)
}

// scanTargets returns the destinations for one row of selectCols.
func (r *postgresRepository[E]) scanTargets(e *E) []any {
	b := r.schema.Base(e)
	return append([]any{&b.ID, &b.Slug, &b.CreatedAt, &b.UpdatedAt}, r.schema.Fields(e)...)
}

func (r *postgresRepository[E]) FindByID(ctx context.Context, id int64) (*E, error) {
	return r.queryOne(ctx, r.selectByID, id)
}

func (r *postgresRepository[E]) FindBySlug(ctx context.Context, slug string) (*E, error) {
	return r.queryOne(ctx, r.selectSlug, slug)
}

func (r *postgresRepository[E]) FindByNameContains(ctx context.Context, fragment string) ([]*E, error) {
	return r.queryMany(ctx, r.selectName, utils.EscapeLike(fragment))
}

func (r *postgresRepository[E]) FindAll(ctx context.Context) ([]*E, error) {
	return r.queryMany(ctx, r.selectAll)
}

func (r *postgresRepository[E]) Insert(ctx context.Context, e *E) error {
	b := r.schema.Base(e)
	args := append([]any{b.Slug}, r.schema.Fields(e)...)

	err := r.pool.QueryRow(ctx, r.insert, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return r.mapWriteError("insert", err)
	}
	return nil
}

func (r *postgresRepository[E]) Update(ctx context.Context, e *E) error {
	b := r.schema.Base(e)
	args := append([]any{b.Slug}, r.schema.Fields(e)...)
	args = append(args, b.ID)

	err := r.pool.QueryRow(ctx, r.update, args...).Scan(&b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return content.ErrRecordNotFound
		}
		return r.mapWriteError("update", err)
	}
	return nil
}

func (r *postgresRepository[E]) DeleteByID(ctx context.Context, id int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, r.delete, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s %d: %w", r.schema.Kind, id, err)
	}
	return tag.RowsAffected(), nil
}

func (r *postgresRepository[E]) queryOne(ctx context.Context, query string, arg any) (*E, error) {
	e := new(E)
	if err := r.pool.QueryRow(ctx, query, arg).Scan(r.scanTargets(e)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, content.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", r.schema.Kind, err)
	}
	return e, nil
}

func (r *postgresRepository[E]) queryMany(ctx context.Context, query string, args ...any) ([]*E, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.schema.Kind, err)
	}
	defer rows.Close()

	result := make([]*E, 0)
	for rows.Next() {
		e := new(E)
		if err := rows.Scan(r.scanTargets(e)...); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", r.schema.Kind, err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", r.schema.Kind, err)
	}
	return result, nil
}

func (r *postgresRepository[E]) mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return content.ErrDuplicateSlug
	}
	return fmt.Errorf("failed to %s %s: %w", op, r.schema.Kind, err)
}
