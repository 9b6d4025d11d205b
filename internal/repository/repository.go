// Package repository implements read access to the archive database. The
// database is a static SQLite file produced by the import pipeline; every
// query here is a read, and the file is opened read-only in production.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// Repository bundles the database handle with the shared query builder,
// lookup cache and logger. All entity repositories hang off this struct.
type Repository struct {
	DB      *sql.DB
	Builder sq.StatementBuilderType
	Cache   *gocache.Cache
	Log     *logrus.Logger
}

// Open opens the archive at path. With readOnly set the SQLite file is
// opened with mode=ro so a misbehaving query can never mutate the archive.
func Open(path string, readOnly bool, log *logrus.Logger) (*Repository, error) {
	dsn := path
	if readOnly {
		dsn = fmt.Sprintf("file:%s?mode=ro", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}

	// The archive is a single local file; a small pool is plenty and keeps
	// SQLite from juggling needless file handles.
	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(time.Hour)

	return &Repository{
		DB:      db,
		Builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		Cache:   gocache.New(gocache.NoExpiration, gocache.NoExpiration),
		Log:     log,
	}, nil
}

// Ping verifies the archive file is reachable and readable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// Close releases the database handle.
func (r *Repository) Close() error {
	return r.DB.Close()
}
