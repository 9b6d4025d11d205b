package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"romarchive/internal/models"
)

// entityDescriptor describes how to list one archive entity: the base table,
// the join clauses that resolve foreign keys to display names, the column
// whitelist for sorting and the column the free-text search matches against.
type entityDescriptor struct {
	// Table is the base table, optionally aliased ("hacks h").
	Table string
	// KeyColumn is the qualified primary key, used as the sort tie-break so
	// pagination stays stable when the sort column has duplicates.
	KeyColumn string
	// SearchColumn is the qualified column the q parameter matches against.
	SearchColumn string
	// SelectList is the full column list of the page query.
	SelectList []string
	// Joins are the LEFT JOIN clauses of the page query.
	Joins []string
	// CountJoins are the joins the count query needs. Usually empty; only
	// required when a filter references a joined column.
	CountJoins []string
	// SortColumns maps accepted sort_by values to qualified columns.
	// Anything not in the map falls back to the default sort.
	SortColumns map[string]string
	// DefaultSortColumn and DefaultDescending apply when sort_by is absent,
	// unknown, or sort_order is empty.
	DefaultSortColumn string
	DefaultDescending bool
}

// orderBy resolves the caller's sort request against the whitelist. Unknown
// sort_by values fall back to the entity default rather than erroring, so
// stale client links keep working.
func (d entityDescriptor) orderBy(p models.ListParams) string {
	col, ok := d.SortColumns[p.SortBy]
	if !ok {
		col = d.DefaultSortColumn
	}

	desc := d.DefaultDescending
	if p.SortOrder != "" {
		desc = p.Descending()
	}

	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	if col == d.KeyColumn {
		return fmt.Sprintf("%s %s", col, dir)
	}
	return fmt.Sprintf("%s %s, %s ASC", col, dir, d.KeyColumn)
}

// searchCond builds the case-insensitive substring predicate for q.
func searchCond(column, query string) sq.Sqlizer {
	pattern := "%" + strings.ToLower(query) + "%"
	return sq.Expr(fmt.Sprintf("LOWER(%s) LIKE ?", column), pattern)
}

// listEntities runs the shared two-query listing flow: one COUNT(*) for the
// total, one page query for the window. Both run on the same checked-out
// connection so the page is consistent with its total.
func listEntities[T any](
	ctx context.Context,
	r *Repository,
	d entityDescriptor,
	conds []sq.Sqlizer,
	params models.ListParams,
	scan func(*sql.Rows) (T, error),
) (*models.Paginated[T], error) {
	conn, err := r.DB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("checkout connection: %w", err)
	}
	defer conn.Close()

	total, err := countEntities(ctx, conn, r.Builder, d, conds)
	if err != nil {
		return nil, err
	}

	items, err := queryPage(ctx, conn, r.Builder, d, conds, params, scan)
	if err != nil {
		return nil, err
	}

	return models.NewPaginated(items, total, params), nil
}

func countEntities(ctx context.Context, conn *sql.Conn, builder sq.StatementBuilderType, d entityDescriptor, conds []sq.Sqlizer) (int, error) {
	q := builder.Select("COUNT(*)").From(d.Table)
	for _, j := range d.CountJoins {
		q = q.LeftJoin(j)
	}
	for _, c := range conds {
		q = q.Where(c)
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := conn.QueryRowContext(ctx, sqlStr, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count %s: %w", d.Table, err)
	}
	return total, nil
}

func queryPage[T any](
	ctx context.Context,
	conn *sql.Conn,
	builder sq.StatementBuilderType,
	d entityDescriptor,
	conds []sq.Sqlizer,
	params models.ListParams,
	scan func(*sql.Rows) (T, error),
) ([]T, error) {
	q := builder.Select(d.SelectList...).From(d.Table)
	for _, j := range d.Joins {
		q = q.LeftJoin(j)
	}
	for _, c := range conds {
		q = q.Where(c)
	}
	q = q.OrderBy(d.orderBy(params)).
		Limit(uint64(params.PageSize)).
		Offset(uint64(params.Offset()))

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build page query: %w", err)
	}

	rows, err := conn.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", d.Table, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", d.Table, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", d.Table, err)
	}
	return items, nil
}

// querier is the read surface shared by *sql.DB and *sql.Conn. Detail
// operations check out one connection and run the row query plus its
// related counts on it, matching the listing flow.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// queryOne runs a single-row detail query. The caller supplies the fully
// built squirrel query; a missing row surfaces as sql.ErrNoRows for the
// caller to translate into its entity-specific not-found error.
func queryOne[T any](ctx context.Context, db querier, q sq.SelectBuilder, scan func(*sql.Rows) (T, error)) (T, error) {
	var zero T

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return zero, fmt.Errorf("build detail query: %w", err)
	}

	rows, err := db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return zero, fmt.Errorf("query detail: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return zero, fmt.Errorf("iterate detail row: %w", err)
		}
		return zero, sql.ErrNoRows
	}
	item, err := scan(rows)
	if err != nil {
		return zero, fmt.Errorf("scan detail row: %w", err)
	}
	return item, nil
}

// countWhere returns COUNT(*) of table rows matching cond. Used for the
// live child counts on detail responses.
func countWhere(ctx context.Context, db querier, builder sq.StatementBuilderType, table string, cond sq.Sqlizer) (int, error) {
	sqlStr, args, err := builder.Select("COUNT(*)").From(table).Where(cond).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}
	var n int
	if err := db.QueryRowContext(ctx, sqlStr, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
