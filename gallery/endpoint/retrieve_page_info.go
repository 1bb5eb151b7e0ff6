package endpoint

import (
	"context"
	"net/http"

	"github.com/Sirdoh/NFTArtGallery/gallery"
	"github.com/Sirdoh/NFTArtGallery/gallery/model"
	"github.com/Sirdoh/NFTArtGallery/lib/db"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/Sirdoh/NFTArtGallery/lib/format"
	"github.com/Sirdoh/NFTArtGallery/lib/ptr"
	"github.com/Sirdoh/NFTArtGallery/lib/svc"
)

const (
	// EndPtRetrievePageInfo returns pagination metadata for a listing
	// window.
	EndPtRetrievePageInfo EndPtName = "RetrievePageInfo"
)

func init() {
	registrar[EndPtRetrievePageInfo] = NewRetrievePageInfo
}

// RetrievePageInfo computes pagination metadata over the id space without
// fetching artwork rows. It is not authenticated.
type RetrievePageInfo struct {
	ListEndpoint
}

// NewRetrievePageInfo constructs and initialiezes the endpoint.
func NewRetrievePageInfo(
	r *http.Request,
) (Endpoint, error) {
	return &RetrievePageInfo{
		ListEndpoint: ListEndpoint{},
	}, nil
}

// Validate validates the input parameters.
func (e *RetrievePageInfo) Validate(
	r *http.Request,
) error {
	return e.ListEndpoint.Validate(r)
}

// Execute executes the endpoint.
func (e *RetrievePageInfo) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	ctx = db.Begin(ctx, "gallery")
	defer db.LoggedRollback(ctx)

	registry, err := model.LoadRegistry(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	latest := int64(0)
	if registry != nil {
		latest = registry.LatestID
	}

	db.Commit(ctx)

	return ptr.Int(http.StatusOK), &svc.Resp{
		"page": format.JSONPtr(gallery.NewPageResource(ctx,
			latest, e.Start, e.Count)),
	}, nil
}
