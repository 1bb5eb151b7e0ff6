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
	// EndPtRetrieveRegistry retrieves the registry state.
	EndPtRetrieveRegistry EndPtName = "RetrieveRegistry"
)

func init() {
	registrar[EndPtRetrieveRegistry] = NewRetrieveRegistry
}

// RetrieveRegistry returns the registry counter, the number of minted
// artworks and the administrator username. It is not authenticated.
type RetrieveRegistry struct {
}

// NewRetrieveRegistry constructs and initialiezes the endpoint.
func NewRetrieveRegistry(
	r *http.Request,
) (Endpoint, error) {
	return &RetrieveRegistry{}, nil
}

// Validate validates the input parameters.
func (e *RetrieveRegistry) Validate(
	r *http.Request,
) error {
	return nil
}

// Execute executes the endpoint.
func (e *RetrieveRegistry) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	ctx = db.Begin(ctx, "gallery")
	defer db.LoggedRollback(ctx)

	registry, err := model.LoadRegistry(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}
	if registry == nil {
		registry = &model.Registry{}
	}

	count, err := model.CountArtworks(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	db.Commit(ctx)

	return ptr.Int(http.StatusOK), &svc.Resp{
		"registry": format.JSONPtr(model.NewRegistryResource(ctx,
			registry, count)),
	}, nil
}
