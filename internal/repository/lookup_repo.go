package repository

import (
	"context"
	"database/sql"
	"fmt"

	gocache "github.com/patrickmn/go-cache"

	"romarchive/internal/models"
)

// Lookup tables never change for the lifetime of an archive file, so each
// table is read once and pinned in the cache under its table name.

func lookupRows[T any](ctx context.Context, r *Repository, table string, columns []string, orderBy string, scan func(*sql.Rows) (T, error)) ([]T, error) {
	if cached, ok := r.Cache.Get(table); ok {
		return cached.([]T), nil
	}

	sqlStr, args, err := r.Builder.Select(columns...).From(table).OrderBy(orderBy).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", table, err)
	}

	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", table, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", table, err)
	}

	r.Cache.Set(table, items, gocache.NoExpiration)
	return items, nil
}

func scanIDDescription[T any](build func(id int64, desc string) T) func(*sql.Rows) (T, error) {
	return func(rows *sql.Rows) (T, error) {
		var (
			id   int64
			desc string
			zero T
		)
		if err := rows.Scan(&id, &desc); err != nil {
			return zero, err
		}
		return build(id, desc), nil
	}
}

// ListConsoles returns every console ordered by name.
func (r *Repository) ListConsoles(ctx context.Context) ([]models.Console, error) {
	return lookupRows(ctx, r, "console",
		[]string{"consoleid", "description", "manufacturer", "abb"},
		"description ASC",
		func(rows *sql.Rows) (models.Console, error) {
			var c models.Console
			err := rows.Scan(&c.ConsoleID, &c.Description, &c.Manufacturer, &c.Abb)
			return c, err
		})
}

// ListGenres returns every genre ordered by name.
func (r *Repository) ListGenres(ctx context.Context) ([]models.Genre, error) {
	return lookupRows(ctx, r, "genres",
		[]string{"genreid", "description"}, "description ASC",
		scanIDDescription(func(id int64, desc string) models.Genre {
			return models.Genre{GenreID: id, Description: desc}
		}))
}

// ListLanguages returns every language ordered by name.
func (r *Repository) ListLanguages(ctx context.Context) ([]models.Language, error) {
	return lookupRows(ctx, r, "language",
		[]string{"languageid", "description"}, "description ASC",
		scanIDDescription(func(id int64, desc string) models.Language {
			return models.Language{LanguageID: id, Description: desc}
		}))
}

// ListPatchStatuses returns every patch status. Statuses are a progression
// (unfinished through fully playable), so they stay in id order.
func (r *Repository) ListPatchStatuses(ctx context.Context) ([]models.PatchStatus, error) {
	return lookupRows(ctx, r, "patchstatus",
		[]string{"statusid", "description"}, "statusid ASC",
		scanIDDescription(func(id int64, desc string) models.PatchStatus {
			return models.PatchStatus{StatusID: id, Description: desc}
		}))
}

func (r *Repository) listCategories(ctx context.Context, table string) ([]models.Category, error) {
	return lookupRows(ctx, r, table,
		[]string{"categoryid", "description"}, "description ASC",
		scanIDDescription(func(id int64, desc string) models.Category {
			return models.Category{CategoryID: id, Description: desc}
		}))
}

// ListHackCategories returns the hack categories ordered by name.
func (r *Repository) ListHackCategories(ctx context.Context) ([]models.Category, error) {
	return r.listCategories(ctx, "hackscat")
}

// ListUtilCategories returns the utility categories ordered by name.
func (r *Repository) ListUtilCategories(ctx context.Context) ([]models.Category, error) {
	return r.listCategories(ctx, "utilcat")
}

// ListDocCategories returns the document categories ordered by name.
func (r *Repository) ListDocCategories(ctx context.Context) ([]models.Category, error) {
	return r.listCategories(ctx, "category")
}

// ListHomebrewCategories returns the homebrew categories ordered by name.
func (r *Repository) ListHomebrewCategories(ctx context.Context) ([]models.Category, error) {
	return r.listCategories(ctx, "homebrewcat")
}

// ListSkillLevels returns the skill levels in id order, which runs from
// beginner to advanced.
func (r *Repository) ListSkillLevels(ctx context.Context) ([]models.SkillLevel, error) {
	return lookupRows(ctx, r, "skilllevel",
		[]string{"levelid", "description"}, "levelid ASC",
		scanIDDescription(func(id int64, desc string) models.SkillLevel {
			return models.SkillLevel{LevelID: id, Description: desc}
		}))
}

// ListOperatingSystems returns every OS ordered by name.
func (r *Repository) ListOperatingSystems(ctx context.Context) ([]models.OS, error) {
	return lookupRows(ctx, r, "os",
		[]string{"osid", "description"}, "description ASC",
		scanIDDescription(func(id int64, desc string) models.OS {
			return models.OS{OSID: id, Description: desc}
		}))
}

// ListLicenses returns every source license ordered by name.
func (r *Repository) ListLicenses(ctx context.Context) ([]models.License, error) {
	return lookupRows(ctx, r, "licenses",
		[]string{"licenseid", "description"}, "description ASC",
		scanIDDescription(func(id int64, desc string) models.License {
			return models.License{LicenseID: id, Description: desc}
		}))
}

// ListSections returns the site sections in id order.
func (r *Repository) ListSections(ctx context.Context) ([]models.Section, error) {
	return lookupRows(ctx, r, "sections",
		[]string{"sectionid", "description"}, "sectionid ASC",
		scanIDDescription(func(id int64, desc string) models.Section {
			return models.Section{SectionID: id, Description: desc}
		}))
}

// ListPatchHints returns the patching hints in id order.
func (r *Repository) ListPatchHints(ctx context.Context) ([]models.PatchHint, error) {
	return lookupRows(ctx, r, "patchhints",
		[]string{"hintid", "description"}, "hintid ASC",
		scanIDDescription(func(id int64, desc string) models.PatchHint {
			return models.PatchHint{HintID: id, Description: desc}
		}))
}
