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

// Artwork represents a registered artwork. Artworks are minted by the
// gallery administrator and their id is allocated sequentially from the
// registry counter.
type Artwork struct {
	Token    string
	Created  time.Time
	Livemode bool

	ID          int64  `db:"id"`
	Details     string // Artwork metadata.
	Owner       string // Owner username.
	Transferred bool   // Set by the one-shot transfer, never reset.
}

// NewArtworkResource generates a new resource.
func NewArtworkResource(
	ctx context.Context,
	artwork *Artwork,
) gallery.ArtworkResource {
	return gallery.ArtworkResource{
		ID:       artwork.ID,
		Created:  artwork.Created.UnixNano() / gallery.TimeResolutionNs,
		Livemode: artwork.Livemode,

		Details:     artwork.Details,
		Owner:       artwork.Owner,
		Transferred: artwork.Transferred,
	}
}

// NewAbsentArtworkResource generates the resource representing an id that
// was never minted (reserved gaps and ids beyond the registry counter).
func NewAbsentArtworkResource(
	ctx context.Context,
	id int64,
) gallery.ArtworkResource {
	return gallery.ArtworkResource{
		ID:       id,
		Livemode: livemode.Get(ctx),
	}
}

// CreateArtwork creates and stores a new Artwork object.
func CreateArtwork(
	ctx context.Context,
	id int64,
	details string,
	owner string,
) (*Artwork, error) {
	artwork := Artwork{
		Token:    token.New("artwork"),
		Livemode: livemode.Get(ctx),
		Created:  time.Now().UTC(),

		ID:      id,
		Details: details,
		Owner:   owner,
	}

	ext := db.Ext(ctx, "gallery")
	if _, err := sqlx.NamedExec(ext, `
INSERT INTO artworks
  (token, livemode, created, id, details, owner, transferred)
VALUES
  (:token, :livemode, :created, :id, :details, :owner, :transferred)
`, artwork); err != nil {
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

	return &artwork, nil
}

// Save updates the object database representation with the in-memory values.
func (a *Artwork) Save(
	ctx context.Context,
) error {
	ext := db.Ext(ctx, "gallery")
	_, err := sqlx.NamedExec(ext, `
UPDATE artworks
SET details = :details, owner = :owner, transferred = :transferred
WHERE livemode = :livemode
  AND id = :id
`, a)
	if err != nil {
		return errors.Trace(err)
	}

	return nil
}

// LoadArtworkByID attempts to load the artwork with the given id.
func LoadArtworkByID(
	ctx context.Context,
	id int64,
) (*Artwork, error) {
	artwork := Artwork{
		Livemode: livemode.Get(ctx),
		ID:       id,
	}

	ext := db.Ext(ctx, "gallery")
	if rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM artworks
WHERE livemode = :livemode
  AND id = :id
`, artwork); err != nil {
		return nil, errors.Trace(err)
	} else if !rows.Next() {
		return nil, nil
	} else if err := rows.StructScan(&artwork); err != nil {
		defer rows.Close()
		return nil, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return nil, errors.Trace(err)
	}

	return &artwork, nil
}

// LoadArtworkListByIDRange loads the artworks whose ids fall in
// [start, start+count), ordered by ascending id. Ids in the range that were
// never minted are simply not returned.
func LoadArtworkListByIDRange(
	ctx context.Context,
	start int64,
	count int64,
) ([]Artwork, error) {
	query := map[string]interface{}{
		"livemode": livemode.Get(ctx),
		"start":    start,
		"end":      start + count,
	}

	ext := db.Ext(ctx, "gallery")
	rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM artworks
WHERE livemode = :livemode
  AND id >= :start
  AND id < :end
ORDER BY id ASC
`, query)
	if err != nil {
		return nil, errors.Trace(err)
	}

	artworks := []Artwork{}

	defer rows.Close()
	for rows.Next() {
		a := Artwork{}
		err := rows.StructScan(&a)
		if err != nil {
			return nil, errors.Trace(err)
		}
		artworks = append(artworks, a)
	}

	return artworks, nil
}

// LoadTransferredArtworkListByIDRange loads the artworks whose ids fall in
// [start, start+count) and whose transfer flag is set, ordered by ascending
// id.
func LoadTransferredArtworkListByIDRange(
	ctx context.Context,
	start int64,
	count int64,
) ([]Artwork, error) {
	query := map[string]interface{}{
		"livemode":    livemode.Get(ctx),
		"start":       start,
		"end":         start + count,
		"transferred": true,
	}

	ext := db.Ext(ctx, "gallery")
	rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM artworks
WHERE livemode = :livemode
  AND id >= :start
  AND id < :end
  AND transferred = :transferred
ORDER BY id ASC
`, query)
	if err != nil {
		return nil, errors.Trace(err)
	}

	artworks := []Artwork{}

	defer rows.Close()
	for rows.Next() {
		a := Artwork{}
		err := rows.StructScan(&a)
		if err != nil {
			return nil, errors.Trace(err)
		}
		artworks = append(artworks, a)
	}

	return artworks, nil
}

// CountArtworks returns the number of minted artworks.
func CountArtworks(
	ctx context.Context,
) (int64, error) {
	query := map[string]interface{}{
		"livemode": livemode.Get(ctx),
	}

	var count int64

	ext := db.Ext(ctx, "gallery")
	if rows, err := sqlx.NamedQuery(ext, `
SELECT COUNT(*) AS count
FROM artworks
WHERE livemode = :livemode
`, query); err != nil {
		return 0, errors.Trace(err)
	} else if !rows.Next() {
		return 0, errors.Newf("No count returned")
	} else if err := rows.Scan(&count); err != nil {
		defer rows.Close()
		return 0, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return 0, errors.Trace(err)
	}

	return count, nil
}
