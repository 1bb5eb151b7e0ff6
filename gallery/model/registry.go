package model

import (
	"context"
	"time"

	"github.com/Sirdoh/NFTArtGallery/gallery"
	"github.com/Sirdoh/NFTArtGallery/lib/db"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/Sirdoh/NFTArtGallery/lib/livemode"
	"github.com/Sirdoh/NFTArtGallery/lib/token"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// Registry represents the allocator state of the gallery, one row per
// livemode. LatestID is the highest id ever allocated; it only goes up.
type Registry struct {
	Token    string
	Created  time.Time
	Livemode bool

	LatestID int64 `db:"latest_id"`
}

// NewRegistryResource generates a new resource.
func NewRegistryResource(
	ctx context.Context,
	registry *Registry,
	totalCount int64,
) gallery.RegistryResource {
	return gallery.RegistryResource{
		LatestID:   registry.LatestID,
		TotalCount: totalCount,
		Admin:      gallery.GetAdmin(ctx),
	}
}

// CreateRegistry creates and stores a new Registry object with a zeroed
// counter.
func CreateRegistry(
	ctx context.Context,
) (*Registry, error) {
	registry := Registry{
		Token:    token.New("registry"),
		Livemode: livemode.Get(ctx),
		Created:  time.Now().UTC(),

		LatestID: 0,
	}

	ext := db.Ext(ctx, "gallery")
	if _, err := sqlx.NamedExec(ext, `
INSERT INTO registry
  (token, livemode, created, latest_id)
VALUES
  (:token, :livemode, :created, :latest_id)
`, registry); err != nil {
		switch err := err.(type) {
		case *pq.Error:
			if err.Code.Name() == "unique_violation" {
				return nil, errors.Trace(ErrUniqueConstraintViolation{err})
			}
		case sqlite3.Error:
			if err.ExtendedCode == sqlite3.ErrConstraintUnique ||
				err.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
				return nil, errors.Trace(ErrUniqueConstraintViolation{err})
			}
		}
		return nil, errors.Trace(err)
	}

	return &registry, nil
}

// Save updates the object database representation with the in-memory values.
func (r *Registry) Save(
	ctx context.Context,
) error {
	ext := db.Ext(ctx, "gallery")
	_, err := sqlx.NamedExec(ext, `
UPDATE registry
SET latest_id = :latest_id
WHERE livemode = :livemode
`, r)
	if err != nil {
		return errors.Trace(err)
	}

	return nil
}

// LoadRegistry attempts to load the registry row for the current livemode.
func LoadRegistry(
	ctx context.Context,
) (*Registry, error) {
	registry := Registry{
		Livemode: livemode.Get(ctx),
	}

	ext := db.Ext(ctx, "gallery")
	if rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM registry
WHERE livemode = :livemode
`, registry); err != nil {
		return nil, errors.Trace(err)
	} else if !rows.Next() {
		return nil, nil
	} else if err := rows.StructScan(&registry); err != nil {
		defer rows.Close()
		return nil, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return nil, errors.Trace(err)
	}

	return &registry, nil
}

// LoadOrCreateRegistry loads the registry row for the current livemode,
// creating it with a zeroed counter if it does not exist yet.
func LoadOrCreateRegistry(
	ctx context.Context,
) (*Registry, error) {
	registry, err := LoadRegistry(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	} else if registry == nil {
		registry, err = CreateRegistry(ctx)
		if err != nil {
			return nil, errors.Trace(err)
		}
	}

	return registry, nil
}
