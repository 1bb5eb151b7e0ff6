package endpoint

import (
	"context"
	"net/http"

	"github.com/Sirdoh/NFTArtGallery/gallery"
	"github.com/Sirdoh/NFTArtGallery/gallery/model"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
)

// ListEndpoint is an helper object to implement listing endpoints.
type ListEndpoint struct {
	Start int64
	Count int64
}

// Validate validates the input parameters.
func (e *ListEndpoint) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	// Validate start.
	start, err := ValidateStart(ctx, r.URL.Query().Get("start"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Start = *start

	// Validate count.
	count, err := ValidateCount(ctx, r.URL.Query().Get("count"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Count = *count

	return nil
}

// loadArtworkViews resolves the ids in [start, start+count) to artwork
// resources in ascending id order. Ids that were never minted (reserved
// gaps, ids beyond the registry counter) render as absent views rather than
// aborting the listing.
func loadArtworkViews(
	ctx context.Context,
	start int64,
	count int64,
) ([]gallery.ArtworkResource, error) {
	artworks, err := model.LoadArtworkListByIDRange(ctx, start, count)
	if err != nil {
		return nil, errors.Trace(err)
	}

	byID := map[int64]*model.Artwork{}
	for i := range artworks {
		byID[artworks[i].ID] = &artworks[i]
	}

	l := []gallery.ArtworkResource{}
	for id := start; id < start+count; id++ {
		if artwork, ok := byID[id]; ok {
			l = append(l, model.NewArtworkResource(ctx, artwork))
		} else {
			l = append(l, model.NewAbsentArtworkResource(ctx, id))
		}
	}

	return l, nil
}
