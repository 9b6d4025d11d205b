package repository

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"romarchive/internal/models"
	"romarchive/internal/shared"
)

var documentDescriptor = entityDescriptor{
	Table:        "documents d",
	KeyColumn:    "d.dockey",
	SearchColumn: "d.title",
	SelectList: []string{
		"d.dockey", "d.title", "d.description",
		"d.categorykey", "d.consolekey", "d.gamekey", "d.explevel",
		"cat.description AS category_name", "c.description AS console_name",
		"g.gametitle AS game_title", "sl.description AS skill_level",
		"d.downloads", "d.created", "d.lastmod",
	},
	Joins: []string{
		"category cat ON d.categorykey = cat.categoryid",
		"console c ON d.consolekey = c.consoleid",
		"gamedata g ON d.gamekey = g.gamekey",
		"skilllevel sl ON d.explevel = sl.levelid",
	},
	SortColumns: map[string]string{
		"title":     "d.title",
		"downloads": "d.downloads",
		"created":   "d.created",
		"lastmod":   "d.lastmod",
		"dockey":    "d.dockey",
	},
	DefaultSortColumn: "d.title",
}

func documentConds(filter models.DocumentFilter) []sq.Sqlizer {
	var conds []sq.Sqlizer
	if filter.Query != "" {
		conds = append(conds, searchCond("d.title", filter.Query))
	}
	if filter.Category != nil {
		conds = append(conds, sq.Eq{"d.categorykey": *filter.Category})
	}
	if filter.Console != nil {
		conds = append(conds, sq.Eq{"d.consolekey": *filter.Console})
	}
	if filter.SkillLevel != nil {
		conds = append(conds, sq.Eq{"d.explevel": *filter.SkillLevel})
	}
	return conds
}

func scanDocumentListItem(rows *sql.Rows) (models.DocumentListItem, error) {
	var d models.DocumentListItem
	err := rows.Scan(
		&d.DocKey, &d.Title, &d.Description,
		&d.CategoryKey, &d.ConsoleKey, &d.GameKey, &d.ExpLevel,
		&d.CategoryName, &d.ConsoleName, &d.GameTitle, &d.SkillLevel,
		&d.Downloads, &d.Created, &d.LastMod,
	)
	return d, err
}

// ListDocuments returns a page of documents matching the filter.
func (r *Repository) ListDocuments(ctx context.Context, filter models.DocumentFilter, params models.ListParams) (*models.Paginated[models.DocumentListItem], error) {
	return listEntities(ctx, r, documentDescriptor, documentConds(filter), params, scanDocumentListItem)
}

// GetDocument returns the full document record.
func (r *Repository) GetDocument(ctx context.Context, id int64) (*models.DocumentDetail, error) {
	selectList := append(append([]string{}, documentDescriptor.SelectList...),
		"d.authorkey", "d.version", "d.filename", "d.reldate", "d.nofile",
	)
	q := r.Builder.Select(selectList...).
		From(documentDescriptor.Table).
		LeftJoin(documentDescriptor.Joins[0]).
		LeftJoin(documentDescriptor.Joins[1]).
		LeftJoin(documentDescriptor.Joins[2]).
		LeftJoin(documentDescriptor.Joins[3]).
		Where(sq.Eq{"d.dockey": id})

	detail, err := queryOne(ctx, r.DB, q, func(rows *sql.Rows) (models.DocumentDetail, error) {
		var d models.DocumentDetail
		err := rows.Scan(
			&d.DocKey, &d.Title, &d.Description,
			&d.CategoryKey, &d.ConsoleKey, &d.GameKey, &d.ExpLevel,
			&d.CategoryName, &d.ConsoleName, &d.GameTitle, &d.SkillLevel,
			&d.Downloads, &d.Created, &d.LastMod,
			&d.AuthorKey, &d.Version, &d.Filename, &d.RelDate, &d.NoFile,
		)
		return d, err
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.NewNotFound("document", id)
		}
		return nil, err
	}
	return &detail, nil
}
