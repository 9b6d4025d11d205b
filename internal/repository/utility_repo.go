package repository

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"romarchive/internal/models"
	"romarchive/internal/shared"
)

var utilityDescriptor = entityDescriptor{
	Table:        "utilities u",
	KeyColumn:    "u.utilkey",
	SearchColumn: "u.title",
	SelectList: []string{
		"u.utilkey", "u.title", "u.version", "u.description",
		"u.categorykey", "u.consolekey", "u.gamekey", "u.os",
		"uc.description AS category_name", "c.description AS console_name",
		"g.gametitle AS game_title", "o.description AS os_name",
		"u.downloads", "u.reldate", "u.created", "u.lastmod",
	},
	Joins: []string{
		"utilcat uc ON u.categorykey = uc.categoryid",
		"console c ON u.consolekey = c.consoleid",
		"gamedata g ON u.gamekey = g.gamekey",
		"os o ON u.os = o.osid",
	},
	SortColumns: map[string]string{
		"title":     "u.title",
		"downloads": "u.downloads",
		"created":   "u.created",
		"lastmod":   "u.lastmod",
		"utilkey":   "u.utilkey",
	},
	DefaultSortColumn: "u.title",
}

func utilityConds(filter models.UtilityFilter) []sq.Sqlizer {
	var conds []sq.Sqlizer
	if filter.Query != "" {
		conds = append(conds, searchCond("u.title", filter.Query))
	}
	if filter.Category != nil {
		conds = append(conds, sq.Eq{"u.categorykey": *filter.Category})
	}
	if filter.Console != nil {
		conds = append(conds, sq.Eq{"u.consolekey": *filter.Console})
	}
	if filter.OS != nil {
		conds = append(conds, sq.Eq{"u.os": *filter.OS})
	}
	return conds
}

func scanUtilityListItem(rows *sql.Rows) (models.UtilityListItem, error) {
	var u models.UtilityListItem
	err := rows.Scan(
		&u.UtilKey, &u.Title, &u.Version, &u.Description,
		&u.CategoryKey, &u.ConsoleKey, &u.GameKey, &u.OS,
		&u.CategoryName, &u.ConsoleName, &u.GameTitle, &u.OSName,
		&u.Downloads, &u.RelDate, &u.Created, &u.LastMod,
	)
	return u, err
}

// ListUtilities returns a page of utilities matching the filter.
func (r *Repository) ListUtilities(ctx context.Context, filter models.UtilityFilter, params models.ListParams) (*models.Paginated[models.UtilityListItem], error) {
	return listEntities(ctx, r, utilityDescriptor, utilityConds(filter), params, scanUtilityListItem)
}

// GetUtility returns the full utility record.
func (r *Repository) GetUtility(ctx context.Context, id int64) (*models.UtilityDetail, error) {
	selectList := append(append([]string{}, utilityDescriptor.SelectList...),
		"u.authorkey", "u.license", "u.source", "u.filename", "u.nofile",
	)
	q := r.Builder.Select(selectList...).
		From(utilityDescriptor.Table).
		LeftJoin(utilityDescriptor.Joins[0]).
		LeftJoin(utilityDescriptor.Joins[1]).
		LeftJoin(utilityDescriptor.Joins[2]).
		LeftJoin(utilityDescriptor.Joins[3]).
		Where(sq.Eq{"u.utilkey": id})

	detail, err := queryOne(ctx, r.DB, q, func(rows *sql.Rows) (models.UtilityDetail, error) {
		var d models.UtilityDetail
		err := rows.Scan(
			&d.UtilKey, &d.Title, &d.Version, &d.Description,
			&d.CategoryKey, &d.ConsoleKey, &d.GameKey, &d.OS,
			&d.CategoryName, &d.ConsoleName, &d.GameTitle, &d.OSName,
			&d.Downloads, &d.RelDate, &d.Created, &d.LastMod,
			&d.AuthorKey, &d.License, &d.Source, &d.Filename, &d.NoFile,
		)
		return d, err
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.NewNotFound("utility", id)
		}
		return nil, err
	}
	return &detail, nil
}
