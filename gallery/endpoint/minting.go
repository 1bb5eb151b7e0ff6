package endpoint

import (
	"context"

	"github.com/Sirdoh/NFTArtGallery/gallery"
	"github.com/Sirdoh/NFTArtGallery/gallery/model"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
)

// mintArtwork allocates the next id from the registry and inserts the
// artwork row. The registry counter is advanced in memory only; callers must
// save the registry once their minting is done.
func mintArtwork(
	ctx context.Context,
	registry *model.Registry,
	details string,
	owner string,
) (*model.Artwork, error) {
	id := registry.LatestID + 1

	artwork, err := model.CreateArtwork(ctx,
		id,
		details,
		owner,
	)
	if err != nil {
		switch err := errors.Cause(err).(type) {
		case model.ErrUniqueConstraintViolation:
			return nil, errors.Trace(errors.NewUserErrorf(err,
				400, gallery.ErrCodes[gallery.CodeArtworkExists],
				"The artwork id %d is already allocated.",
				id,
			))
		default:
			return nil, errors.Trace(err) // 500
		}
	}
	registry.LatestID = id

	return artwork, nil
}
