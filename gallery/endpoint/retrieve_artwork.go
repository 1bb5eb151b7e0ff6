package endpoint

import (
	"context"
	"net/http"

	"goji.io/pat"

	"github.com/Sirdoh/NFTArtGallery/gallery"
	"github.com/Sirdoh/NFTArtGallery/gallery/model"
	"github.com/Sirdoh/NFTArtGallery/lib/db"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/Sirdoh/NFTArtGallery/lib/format"
	"github.com/Sirdoh/NFTArtGallery/lib/ptr"
	"github.com/Sirdoh/NFTArtGallery/lib/svc"
)

const (
	// EndPtRetrieveArtwork retrieves an artwork.
	EndPtRetrieveArtwork EndPtName = "RetrieveArtwork"
)

func init() {
	registrar[EndPtRetrieveArtwork] = NewRetrieveArtwork
}

// RetrieveArtwork retrieves an artwork based on its id. It is not
// authenticated.
type RetrieveArtwork struct {
	ID int64
}

// NewRetrieveArtwork constructs and initialiezes the endpoint.
func NewRetrieveArtwork(
	r *http.Request,
) (Endpoint, error) {
	return &RetrieveArtwork{}, nil
}

// Validate validates the input parameters.
func (e *RetrieveArtwork) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	// Validate id.
	id, err := ValidateArtworkID(ctx, pat.Param(r, "artwork"))
	if err != nil {
		return errors.Trace(err)
	}
	e.ID = *id

	return nil
}

// Execute executes the endpoint.
func (e *RetrieveArtwork) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	ctx = db.Begin(ctx, "gallery")
	defer db.LoggedRollback(ctx)

	artwork, err := model.LoadArtworkByID(ctx, e.ID)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	} else if artwork == nil {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			404, gallery.ErrCodes[gallery.CodeArtworkNotFound],
			"The artwork you are trying to retrieve does not exist: %d.",
			e.ID,
		))
	}

	db.Commit(ctx)

	return ptr.Int(http.StatusOK), &svc.Resp{
		"artwork": format.JSONPtr(model.NewArtworkResource(ctx, artwork)),
	}, nil
}
