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
	// EndPtReserveArtworkIDs reserves a range of artwork ids.
	EndPtReserveArtworkIDs EndPtName = "ReserveArtworkIDs"
)

func init() {
	registrar[EndPtReserveArtworkIDs] = NewReserveArtworkIDs
}

// ReserveArtworkIDs advances the registry counter without minting, leaving a
// gap of ids that will never resolve to artworks. Any authenticated user can
// reserve ids.
type ReserveArtworkIDs struct {
	Count int64
}

// NewReserveArtworkIDs constructs and initialiezes the endpoint.
func NewReserveArtworkIDs(
	r *http.Request,
) (Endpoint, error) {
	return &ReserveArtworkIDs{}, nil
}

// Validate validates the input parameters.
func (e *ReserveArtworkIDs) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	// Validate count.
	count, err := ValidateReserveCount(ctx, r.PostFormValue("count"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Count = *count

	return nil
}

// Execute executes the endpoint.
func (e *ReserveArtworkIDs) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	ctx = db.Begin(ctx, "gallery")
	defer db.LoggedRollback(ctx)

	registry, err := model.LoadOrCreateRegistry(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	ids := []int64{}
	for i := int64(0); i < e.Count; i++ {
		ids = append(ids, registry.LatestID+1+i)
	}
	registry.LatestID += e.Count

	err = registry.Save(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	db.Commit(ctx)

	return ptr.Int(http.StatusOK), &svc.Resp{
		"ids": format.JSONPtr(ids),
	}, nil
}
