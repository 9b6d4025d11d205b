package repository

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"romarchive/internal/models"
	"romarchive/internal/shared"
)

var homebrewDescriptor = entityDescriptor{
	Table:        "homebrew hb",
	KeyColumn:    "hb.homebrewkey",
	SearchColumn: "hb.title",
	SelectList: []string{
		"hb.homebrewkey", "hb.title", "hb.version", "hb.description",
		"hb.categorykey", "hb.platformkey",
		"hbc.description AS category_name", "c.description AS platform_name",
		"hb.downloads", "hb.reldate", "hb.created", "hb.lastmod",
	},
	Joins: []string{
		"homebrewcat hbc ON hb.categorykey = hbc.categoryid",
		"console c ON hb.platformkey = c.consoleid",
	},
	SortColumns: map[string]string{
		"title":       "hb.title",
		"downloads":   "hb.downloads",
		"created":     "hb.created",
		"lastmod":     "hb.lastmod",
		"homebrewkey": "hb.homebrewkey",
	},
	DefaultSortColumn: "hb.title",
}

func homebrewConds(filter models.HomebrewFilter) []sq.Sqlizer {
	var conds []sq.Sqlizer
	if filter.Query != "" {
		conds = append(conds, searchCond("hb.title", filter.Query))
	}
	if filter.Category != nil {
		conds = append(conds, sq.Eq{"hb.categorykey": *filter.Category})
	}
	if filter.Platform != nil {
		conds = append(conds, sq.Eq{"hb.platformkey": *filter.Platform})
	}
	return conds
}

func scanHomebrewListItem(rows *sql.Rows) (models.HomebrewListItem, error) {
	var h models.HomebrewListItem
	err := rows.Scan(
		&h.HomebrewKey, &h.Title, &h.Version, &h.Description,
		&h.CategoryKey, &h.PlatformKey,
		&h.CategoryName, &h.PlatformName,
		&h.Downloads, &h.RelDate, &h.Created, &h.LastMod,
	)
	return h, err
}

// ListHomebrew returns a page of homebrew projects matching the filter.
func (r *Repository) ListHomebrew(ctx context.Context, filter models.HomebrewFilter, params models.ListParams) (*models.Paginated[models.HomebrewListItem], error) {
	return listEntities(ctx, r, homebrewDescriptor, homebrewConds(filter), params, scanHomebrewListItem)
}

// GetHomebrew returns the full homebrew record including the content-type
// flags and the source availability block.
func (r *Repository) GetHomebrew(ctx context.Context, id int64) (*models.HomebrewDetail, error) {
	selectList := append(append([]string{}, homebrewDescriptor.SelectList...),
		"hb.authorkey", "hb.filename", "hb.titlescreen", "hb.readme",
		"hb.nofile", "hb.noreadme",
		"hb.graphics", "hb.sound", "hb.controller", "hb.addon", "hb.other",
		"hb.source_included", "hb.source_lang", "hb.source_utility",
		"hb.source_licenseid", "hb.source_url",
	)
	q := r.Builder.Select(selectList...).
		From(homebrewDescriptor.Table).
		LeftJoin(homebrewDescriptor.Joins[0]).
		LeftJoin(homebrewDescriptor.Joins[1]).
		Where(sq.Eq{"hb.homebrewkey": id})

	detail, err := queryOne(ctx, r.DB, q, func(rows *sql.Rows) (models.HomebrewDetail, error) {
		var d models.HomebrewDetail
		err := rows.Scan(
			&d.HomebrewKey, &d.Title, &d.Version, &d.Description,
			&d.CategoryKey, &d.PlatformKey,
			&d.CategoryName, &d.PlatformName,
			&d.Downloads, &d.RelDate, &d.Created, &d.LastMod,
			&d.AuthorKey, &d.Filename, &d.TitleScreen, &d.Readme,
			&d.NoFile, &d.NoReadme,
			&d.Graphics, &d.Sound, &d.Controller, &d.Addon, &d.Other,
			&d.SourceIncluded, &d.SourceLang, &d.SourceUtility,
			&d.SourceLicense, &d.SourceURL,
		)
		return d, err
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.NewNotFound("homebrew", id)
		}
		return nil, err
	}
	return &detail, nil
}
