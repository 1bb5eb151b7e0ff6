package endpoint

import (
	"context"
	"net/http"
	"strconv"

	"goji.io/pat"

	"github.com/Sirdoh/NFTArtGallery/gallery/model"
	"github.com/Sirdoh/NFTArtGallery/lib/db"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/Sirdoh/NFTArtGallery/lib/format"
	"github.com/Sirdoh/NFTArtGallery/lib/ptr"
	"github.com/Sirdoh/NFTArtGallery/lib/svc"
)

const (
	// EndPtRetrieveArtworkValidity checks an artwork id against the registry
	// counter.
	EndPtRetrieveArtworkValidity EndPtName = "RetrieveArtworkValidity"
)

func init() {
	registrar[EndPtRetrieveArtworkValidity] = NewRetrieveArtworkValidity
}

// RetrieveArtworkValidity reports whether an id was ever allocated. An out
// of range id yields a negative validity, not an error.
type RetrieveArtworkValidity struct {
	ID int64
}

// NewRetrieveArtworkValidity constructs and initialiezes the endpoint.
func NewRetrieveArtworkValidity(
	r *http.Request,
) (Endpoint, error) {
	return &RetrieveArtworkValidity{}, nil
}

// Validate validates the input parameters.
func (e *RetrieveArtworkValidity) Validate(
	r *http.Request,
) error {
	// The check is total over integers, so out of range values (including
	// 0) are accepted here and resolve to an invalid id.
	id, err := strconv.ParseInt(pat.Param(r, "artwork"), 10, 64)
	if err != nil {
		return errors.Trace(errors.NewUserErrorf(err,
			400, "id_invalid",
			"The artwork id you provided is invalid: %s. Artwork ids are "+
				"positive integers.",
			pat.Param(r, "artwork"),
		))
	}
	e.ID = id

	return nil
}

// Execute executes the endpoint.
func (e *RetrieveArtworkValidity) Execute(
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

	valid := e.ID > 0 && e.ID <= latest

	return ptr.Int(http.StatusOK), &svc.Resp{
		"id":    format.JSONPtr(e.ID),
		"valid": format.JSONPtr(valid),
	}, nil
}
