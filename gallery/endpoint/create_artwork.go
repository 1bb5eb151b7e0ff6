package endpoint

import (
	"context"
	"net/http"

	"github.com/Sirdoh/NFTArtGallery/gallery/model"
	"github.com/Sirdoh/NFTArtGallery/lib/db"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/Sirdoh/NFTArtGallery/lib/format"
	"github.com/Sirdoh/NFTArtGallery/lib/ptr"
	"github.com/Sirdoh/NFTArtGallery/lib/svc"
)

const (
	// EndPtCreateArtwork mints a new artwork.
	EndPtCreateArtwork EndPtName = "CreateArtwork"
)

func init() {
	registrar[EndPtCreateArtwork] = NewCreateArtwork
}

// CreateArtwork controls the minting of new artworks.
type CreateArtwork struct {
	Owner   string
	Details string
}

// NewCreateArtwork constructs and initialiezes the endpoint.
func NewCreateArtwork(
	r *http.Request,
) (Endpoint, error) {
	return &CreateArtwork{}, nil
}

// Validate validates the input parameters.
func (e *CreateArtwork) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	// Validate that the caller is the administrator.
	owner, err := ValidateAdmin(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	e.Owner = *owner

	// Validate details.
	details, err := ValidateDetails(ctx, r.PostFormValue("details"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Details = *details

	return nil
}

// Execute executes the endpoint.
func (e *CreateArtwork) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	ctx = db.Begin(ctx, "gallery")
	defer db.LoggedRollback(ctx)

	registry, err := model.LoadOrCreateRegistry(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	artwork, err := mintArtwork(ctx, registry, e.Details, e.Owner)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}

	err = registry.Save(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	db.Commit(ctx)

	return ptr.Int(http.StatusCreated), &svc.Resp{
		"artwork": format.JSONPtr(model.NewArtworkResource(ctx, artwork)),
	}, nil
}
