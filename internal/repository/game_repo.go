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

var gameDescriptor = entityDescriptor{
	Table:        "gamedata g",
	KeyColumn:    "g.gamekey",
	SearchColumn: "g.gametitle",
	SelectList: []string{
		"g.gamekey", "g.gametitle", "g.japtitle", "g.publisher",
		"g.platformid", "g.genreid",
		"c.description AS platform_name", "gn.description AS genre_name",
		"g.transexist", "g.hackexist", "g.utilexist", "g.docexist",
	},
	Joins: []string{
		"console c ON g.platformid = c.consoleid",
		"genres gn ON g.genreid = gn.genreid",
	},
	SortColumns: map[string]string{
		"gametitle": "g.gametitle",
		"japtitle":  "g.japtitle",
		"publisher": "g.publisher",
		"gamekey":   "g.gamekey",
	},
	DefaultSortColumn: "g.gametitle",
}

func gameConds(filter models.GameFilter) []sq.Sqlizer {
	var conds []sq.Sqlizer
	if filter.Query != "" {
		conds = append(conds, searchCond("g.gametitle", filter.Query))
	}
	if filter.Platform != nil {
		conds = append(conds, sq.Eq{"g.platformid": *filter.Platform})
	}
	if filter.Genre != nil {
		conds = append(conds, sq.Eq{"g.genreid": *filter.Genre})
	}
	if filter.HasHacks != nil && *filter.HasHacks {
		conds = append(conds, sq.Gt{"g.hackexist": 0})
	}
	if filter.HasTranslations != nil && *filter.HasTranslations {
		conds = append(conds, sq.Gt{"g.transexist": 0})
	}
	return conds
}

func scanGameListItem(rows *sql.Rows) (models.GameListItem, error) {
	var g models.GameListItem
	err := rows.Scan(
		&g.GameKey, &g.GameTitle, &g.JapTitle, &g.Publisher,
		&g.PlatformID, &g.GenreID,
		&g.PlatformName, &g.GenreName,
		&g.TransExist, &g.HackExist, &g.UtilExist, &g.DocExist,
	)
	return g, err
}

// ListGames returns a page of games matching the filter.
func (r *Repository) ListGames(ctx context.Context, filter models.GameFilter, params models.ListParams) (*models.Paginated[models.GameListItem], error) {
	return listEntities(ctx, r, gameDescriptor, gameConds(filter), params, scanGameListItem)
}

// GetGame returns the full game record with live hack and translation
// counts. The counts are computed over the child tables rather than read
// from the exist flags, which drift in older archive exports. The row and
// both counts run on one checked-out connection, like the listing flow.
func (r *Repository) GetGame(ctx context.Context, id int64) (*models.GameDetail, error) {
	conn, err := r.DB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("checkout connection: %w", err)
	}
	defer conn.Close()

	q := r.Builder.Select(gameDescriptor.SelectList...).
		From(gameDescriptor.Table).
		LeftJoin(gameDescriptor.Joins[0]).
		LeftJoin(gameDescriptor.Joins[1]).
		Where(sq.Eq{"g.gamekey": id})

	item, err := queryOne(ctx, conn, q, scanGameListItem)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.NewNotFound("game", id)
		}
		return nil, err
	}

	hackCount, err := countWhere(ctx, conn, r.Builder, "hacks", sq.Eq{"gamekey": id})
	if err != nil {
		return nil, err
	}
	transCount, err := countWhere(ctx, conn, r.Builder, "transdata", sq.Eq{"gamekey": id})
	if err != nil {
		return nil, err
	}

	return &models.GameDetail{
		GameListItem:     item,
		HackCount:        hackCount,
		TranslationCount: transCount,
	}, nil
}
