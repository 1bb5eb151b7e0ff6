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
	// EndPtListTransferredArtworks returns the ids of transferred artworks.
	EndPtListTransferredArtworks EndPtName = "ListTransferredArtworks"
)

func init() {
	registrar[EndPtListTransferredArtworks] = NewListTransferredArtworks
}

// ListTransferredArtworks returns the ids in a window of consecutive ids
// whose artwork was transferred. It is not authenticated.
type ListTransferredArtworks struct {
	ListEndpoint
}

// NewListTransferredArtworks constructs and initialiezes the endpoint.
func NewListTransferredArtworks(
	r *http.Request,
) (Endpoint, error) {
	return &ListTransferredArtworks{
		ListEndpoint: ListEndpoint{},
	}, nil
}

// Validate validates the input parameters.
func (e *ListTransferredArtworks) Validate(
	r *http.Request,
) error {
	return e.ListEndpoint.Validate(r)
}

// Execute executes the endpoint.
func (e *ListTransferredArtworks) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	ctx = db.Begin(ctx, "gallery")
	defer db.LoggedRollback(ctx)

	artworks, err := model.LoadTransferredArtworkListByIDRange(ctx,
		e.Start, e.Count)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	db.Commit(ctx)

	ids := []int64{}
	for _, a := range artworks {
		ids = append(ids, a.ID)
	}

	return ptr.Int(http.StatusOK), &svc.Resp{
		"ids": format.JSONPtr(ids),
	}, nil
}
