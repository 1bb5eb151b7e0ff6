package endpoint

import (
	"context"
	"net/http"

	"goji.io/pat"

	"github.com/Sirdoh/NFTArtGallery/gallery"
	"github.com/Sirdoh/NFTArtGallery/gallery/lib/authentication"
	"github.com/Sirdoh/NFTArtGallery/gallery/model"
	"github.com/Sirdoh/NFTArtGallery/lib/db"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/Sirdoh/NFTArtGallery/lib/format"
	"github.com/Sirdoh/NFTArtGallery/lib/ptr"
	"github.com/Sirdoh/NFTArtGallery/lib/svc"
)

const (
	// EndPtUpdateArtworkDetails updates the details of an artwork.
	EndPtUpdateArtworkDetails EndPtName = "UpdateArtworkDetails"
)

func init() {
	registrar[EndPtUpdateArtworkDetails] = NewUpdateArtworkDetails
}

// UpdateArtworkDetails controls the update of an artwork details by its
// owner.
type UpdateArtworkDetails struct {
	Caller  string
	ID      int64
	Details string
}

// NewUpdateArtworkDetails constructs and initialiezes the endpoint.
func NewUpdateArtworkDetails(
	r *http.Request,
) (Endpoint, error) {
	return &UpdateArtworkDetails{}, nil
}

// Validate validates the input parameters.
func (e *UpdateArtworkDetails) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	e.Caller = authentication.Get(ctx).User.Username

	// Validate id.
	id, err := ValidateArtworkID(ctx, pat.Param(r, "artwork"))
	if err != nil {
		return errors.Trace(err)
	}
	e.ID = *id

	// Validate details.
	details, err := ValidateDetails(ctx, r.PostFormValue("details"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Details = *details

	return nil
}

// Execute executes the endpoint.
func (e *UpdateArtworkDetails) Execute(
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
			"The artwork you are trying to update does not exist: %d.",
			e.ID,
		))
	}

	if artwork.Owner != e.Caller {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, gallery.ErrCodes[gallery.CodeNotOwner],
			"The artwork %d is not owned by %s.",
			e.ID, e.Caller,
		))
	}

	artwork.Details = e.Details

	err = artwork.Save(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	db.Commit(ctx)

	return ptr.Int(http.StatusOK), &svc.Resp{
		"artwork": format.JSONPtr(model.NewArtworkResource(ctx, artwork)),
	}, nil
}
