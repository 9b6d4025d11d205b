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

// Translations have no title of their own, so the free-text search matches
// the joined game title. The count query carries the gamedata join for the
// same reason.
var translationDescriptor = entityDescriptor{
	Table:        "transdata t",
	KeyColumn:    "t.transkey",
	SearchColumn: "g.gametitle",
	SelectList: []string{
		"t.transkey", "t.patchver", "t.description",
		"t.gamekey", "t.consolekey", "t.language", "t.patchstatus",
		"g.gametitle AS game_title", "c.description AS console_name",
		"l.description AS language_name", "ps.description AS status_name",
		"t.downloads", "t.patchrel", "t.created", "t.lastmod",
	},
	Joins: []string{
		"gamedata g ON t.gamekey = g.gamekey",
		"console c ON t.consolekey = c.consoleid",
		"language l ON t.language = l.languageid",
		"patchstatus ps ON t.patchstatus = ps.statusid",
	},
	CountJoins: []string{
		"gamedata g ON t.gamekey = g.gamekey",
	},
	SortColumns: map[string]string{
		"created":   "t.created",
		"lastmod":   "t.lastmod",
		"downloads": "t.downloads",
		"transkey":  "t.transkey",
	},
	DefaultSortColumn: "t.created",
	DefaultDescending: true,
}

func translationConds(filter models.TranslationFilter) []sq.Sqlizer {
	var conds []sq.Sqlizer
	if filter.Query != "" {
		conds = append(conds, searchCond("g.gametitle", filter.Query))
	}
	if filter.Game != nil {
		conds = append(conds, sq.Eq{"t.gamekey": *filter.Game})
	}
	if filter.Console != nil {
		conds = append(conds, sq.Eq{"t.consolekey": *filter.Console})
	}
	if filter.Language != nil {
		conds = append(conds, sq.Eq{"t.language": *filter.Language})
	}
	if filter.Status != nil {
		conds = append(conds, sq.Eq{"t.patchstatus": *filter.Status})
	}
	return conds
}

func scanTranslationListItem(rows *sql.Rows) (models.TranslationListItem, error) {
	var t models.TranslationListItem
	err := rows.Scan(
		&t.TransKey, &t.Version, &t.Description,
		&t.GameKey, &t.ConsoleKey, &t.Language, &t.PatchStatus,
		&t.GameTitle, &t.ConsoleName, &t.LanguageName, &t.StatusName,
		&t.Downloads, &t.ReleaseDate, &t.Created, &t.LastMod,
	)
	return t, err
}

// ListTranslations returns a page of translations matching the filter.
func (r *Repository) ListTranslations(ctx context.Context, filter models.TranslationFilter, params models.ListParams) (*models.Paginated[models.TranslationListItem], error) {
	return listEntities(ctx, r, translationDescriptor, translationConds(filter), params, scanTranslationListItem)
}

// GetTranslation returns the full translation record including the decoded
// patch hint and the number of attached screenshots.
func (r *Repository) GetTranslation(ctx context.Context, id int64) (*models.TranslationDetail, error) {
	conn, err := r.DB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("checkout connection: %w", err)
	}
	defer conn.Close()

	selectList := append(append([]string{}, translationDescriptor.SelectList...),
		"t.groupkey", "ph.description AS patch_hint",
		"t.patchfile", "t.patchhint", "t.nofile", "t.noreadme",
	)
	q := r.Builder.Select(selectList...).
		From(translationDescriptor.Table).
		LeftJoin(translationDescriptor.Joins[0]).
		LeftJoin(translationDescriptor.Joins[1]).
		LeftJoin(translationDescriptor.Joins[2]).
		LeftJoin(translationDescriptor.Joins[3]).
		LeftJoin("patchhints ph ON t.patchhint = ph.hintid").
		Where(sq.Eq{"t.transkey": id})

	detail, err := queryOne(ctx, conn, q, func(rows *sql.Rows) (models.TranslationDetail, error) {
		var d models.TranslationDetail
		err := rows.Scan(
			&d.TransKey, &d.Version, &d.Description,
			&d.GameKey, &d.ConsoleKey, &d.Language, &d.PatchStatus,
			&d.GameTitle, &d.ConsoleName, &d.LanguageName, &d.StatusName,
			&d.Downloads, &d.ReleaseDate, &d.Created, &d.LastMod,
			&d.GroupKey, &d.PatchHint,
			&d.Filename, &d.HintsKey, &d.NoFile, &d.NoReadme,
		)
		return d, err
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.NewNotFound("translation", id)
		}
		return nil, err
	}

	imageCount, err := countWhere(ctx, conn, r.Builder, "transimage", sq.Eq{"transkey": id})
	if err != nil {
		return nil, err
	}
	detail.ImageCount = imageCount
	return &detail, nil
}

// ListTranslationImages returns every screenshot of a translation. A
// missing parent is a not-found error rather than an empty list.
func (r *Repository) ListTranslationImages(ctx context.Context, transID int64) ([]models.TransImage, error) {
	conn, err := r.DB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("checkout connection: %w", err)
	}
	defer conn.Close()

	exists, err := r.rowExists(ctx, conn, "transdata", sq.Eq{"transkey": transID})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewNotFound("translation", transID)
	}

	sqlStr, args, err := r.Builder.Select("imageid", "filename", "caption").
		From("transimage").
		Where(sq.Eq{"transkey": transID}).
		OrderBy("imageid ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build translation images query: %w", err)
	}

	rows, err := conn.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("query translation images: %w", err)
	}
	defer rows.Close()

	images := []models.TransImage{}
	for rows.Next() {
		var img models.TransImage
		if err := rows.Scan(&img.ImageID, &img.Filename, &img.Caption); err != nil {
			return nil, fmt.Errorf("scan translation image: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate translation images: %w", err)
	}
	return images, nil
}
