package endpoint

import (
	"context"
	"net/http"

	"github.com/Sirdoh/NFTArtGallery/lib/db"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/Sirdoh/NFTArtGallery/lib/format"
	"github.com/Sirdoh/NFTArtGallery/lib/ptr"
	"github.com/Sirdoh/NFTArtGallery/lib/svc"
)

const (
	// EndPtListArtworks returns a list of artwork views.
	EndPtListArtworks EndPtName = "ListArtworks"
)

func init() {
	registrar[EndPtListArtworks] = NewListArtworks
}

// ListArtworks returns the artwork views for a window of consecutive ids.
// It is not authenticated.
type ListArtworks struct {
	ListEndpoint
}

// NewListArtworks constructs and initialiezes the endpoint.
func NewListArtworks(
	r *http.Request,
) (Endpoint, error) {
	return &ListArtworks{
		ListEndpoint: ListEndpoint{},
	}, nil
}

// Validate validates the input parameters.
func (e *ListArtworks) Validate(
	r *http.Request,
) error {
	return e.ListEndpoint.Validate(r)
}

// Execute executes the endpoint.
func (e *ListArtworks) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	ctx = db.Begin(ctx, "gallery")
	defer db.LoggedRollback(ctx)

	l, err := loadArtworkViews(ctx, e.Start, e.Count)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	db.Commit(ctx)

	return ptr.Int(http.StatusOK), &svc.Resp{
		"artworks": format.JSONPtr(l),
	}, nil
}
