package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"romarchive/internal/models"
	"romarchive/internal/shared"
)

var hackDescriptor = entityDescriptor{
	Table:        "hacks h",
	KeyColumn:    "h.hackkey",
	SearchColumn: "h.hacktitle",
	SelectList: []string{
		"h.hackkey", "h.hacktitle", "h.version", "h.description",
		"h.gamekey", "h.consolekey", "h.category",
		"g.gametitle AS game_title", "c.description AS console_name",
		"hc.description AS category_name",
		"h.downloads", "h.reldate", "h.created", "h.lastmod",
	},
	Joins: []string{
		"gamedata g ON h.gamekey = g.gamekey",
		"console c ON h.consolekey = c.consoleid",
		"hackscat hc ON h.category = hc.categoryid",
	},
	SortColumns: map[string]string{
		"hacktitle": "h.hacktitle",
		"downloads": "h.downloads",
		"created":   "h.created",
		"lastmod":   "h.lastmod",
		"hackkey":   "h.hackkey",
	},
	DefaultSortColumn: "h.hacktitle",
}

func hackConds(filter models.HackFilter) []sq.Sqlizer {
	var conds []sq.Sqlizer
	if filter.Query != "" {
		conds = append(conds, searchCond("h.hacktitle", filter.Query))
	}
	if filter.Game != nil {
		conds = append(conds, sq.Eq{"h.gamekey": *filter.Game})
	}
	if filter.Console != nil {
		conds = append(conds, sq.Eq{"h.consolekey": *filter.Console})
	}
	if filter.Category != nil {
		conds = append(conds, sq.Eq{"h.category": *filter.Category})
	}
	return conds
}

func scanHackListItem(rows *sql.Rows) (models.HackListItem, error) {
	var h models.HackListItem
	err := rows.Scan(
		&h.HackKey, &h.HackTitle, &h.Version, &h.Description,
		&h.GameKey, &h.ConsoleKey, &h.Category,
		&h.GameTitle, &h.ConsoleName, &h.CategoryName,
		&h.Downloads, &h.ReleaseDate, &h.Created, &h.LastMod,
	)
	return h, err
}

// ListHacks returns a page of ROM hacks matching the filter.
func (r *Repository) ListHacks(ctx context.Context, filter models.HackFilter, params models.ListParams) (*models.Paginated[models.HackListItem], error) {
	return listEntities(ctx, r, hackDescriptor, hackConds(filter), params, scanHackListItem)
}

// GetHack returns the full hack record including the decoded patch hint and
// the number of attached screenshots.
func (r *Repository) GetHack(ctx context.Context, id int64) (*models.HackDetail, error) {
	conn, err := r.DB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("checkout connection: %w", err)
	}
	defer conn.Close()

	selectList := append(append([]string{}, hackDescriptor.SelectList...),
		"h.authorkey", "ph.description AS patch_hint",
		"h.filename", "h.patchhint", "h.nofile",
	)
	q := r.Builder.Select(selectList...).
		From(hackDescriptor.Table).
		LeftJoin(hackDescriptor.Joins[0]).
		LeftJoin(hackDescriptor.Joins[1]).
		LeftJoin(hackDescriptor.Joins[2]).
		LeftJoin("patchhints ph ON h.patchhint = ph.hintid").
		Where(sq.Eq{"h.hackkey": id})

	detail, err := queryOne(ctx, conn, q, func(rows *sql.Rows) (models.HackDetail, error) {
		var d models.HackDetail
		err := rows.Scan(
			&d.HackKey, &d.HackTitle, &d.Version, &d.Description,
			&d.GameKey, &d.ConsoleKey, &d.Category,
			&d.GameTitle, &d.ConsoleName, &d.CategoryName,
			&d.Downloads, &d.ReleaseDate, &d.Created, &d.LastMod,
			&d.AuthorKey, &d.PatchHint,
			&d.Filename, &d.HintsKey, &d.NoFile,
		)
		return d, err
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.NewNotFound("hack", id)
		}
		return nil, err
	}

	imageCount, err := countWhere(ctx, conn, r.Builder, "hackimages", sq.Eq{"hackkey": id})
	if err != nil {
		return nil, err
	}
	detail.ImageCount = imageCount
	return &detail, nil
}

// ListHackImages returns every screenshot of a hack. A missing parent is a
// not-found error rather than an empty list.
func (r *Repository) ListHackImages(ctx context.Context, hackID int64) ([]models.HackImage, error) {
	conn, err := r.DB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("checkout connection: %w", err)
	}
	defer conn.Close()

	exists, err := r.rowExists(ctx, conn, "hacks", sq.Eq{"hackkey": hackID})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewNotFound("hack", hackID)
	}

	sqlStr, args, err := r.Builder.Select("imageid", "filename", "caption").
		From("hackimages").
		Where(sq.Eq{"hackkey": hackID}).
		OrderBy("imageid ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build hack images query: %w", err)
	}

	rows, err := conn.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("query hack images: %w", err)
	}
	defer rows.Close()

	images := []models.HackImage{}
	for rows.Next() {
		var img models.HackImage
		if err := rows.Scan(&img.ImageID, &img.Filename, &img.Caption); err != nil {
			return nil, fmt.Errorf("scan hack image: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hack images: %w", err)
	}
	return images, nil
}

func (r *Repository) rowExists(ctx context.Context, db querier, table string, cond sq.Sqlizer) (bool, error) {
	n, err := countWhere(ctx, db, r.Builder, table, cond)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
