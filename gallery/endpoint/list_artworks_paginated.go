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
	// EndPtListArtworksPaginated returns a page of artwork views.
	EndPtListArtworksPaginated EndPtName = "ListArtworksPaginated"
)

func init() {
	registrar[EndPtListArtworksPaginated] = NewListArtworksPaginated
}

// ListArtworksPaginated returns artwork views by page number along with the
// pagination metadata for the page. It is not authenticated.
type ListArtworksPaginated struct {
	Page  int64
	Count int64
}

// NewListArtworksPaginated constructs and initialiezes the endpoint.
func NewListArtworksPaginated(
	r *http.Request,
) (Endpoint, error) {
	return &ListArtworksPaginated{}, nil
}

// Validate validates the input parameters.
func (e *ListArtworksPaginated) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	// Validate page.
	page, err := ValidatePage(ctx, pat.Param(r, "page"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Page = *page

	// Validate count.
	count, err := ValidateCount(ctx, r.URL.Query().Get("count"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Count = *count

	return nil
}

// Execute executes the endpoint.
func (e *ListArtworksPaginated) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	start := (e.Page-1)*e.Count + 1

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

	l, err := loadArtworkViews(ctx, start, e.Count)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	db.Commit(ctx)

	return ptr.Int(http.StatusOK), &svc.Resp{
		"page": format.JSONPtr(gallery.NewPageResource(ctx,
			latest, start, e.Count)),
		"artworks": format.JSONPtr(l),
	}, nil
}
