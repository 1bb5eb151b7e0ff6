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
	// EndPtCreateArtworkBatch mints a batch of artworks.
	EndPtCreateArtworkBatch EndPtName = "CreateArtworkBatch"
)

func init() {
	registrar[EndPtCreateArtworkBatch] = NewCreateArtworkBatch
}

// CreateArtworkBatch controls the minting of a batch of artworks. Items
// whose details are invalid are dropped from the batch without failing it.
type CreateArtworkBatch struct {
	Owner       string
	DetailsList []string
}

// NewCreateArtworkBatch constructs and initialiezes the endpoint.
func NewCreateArtworkBatch(
	r *http.Request,
) (Endpoint, error) {
	return &CreateArtworkBatch{}, nil
}

// Validate validates the input parameters.
func (e *CreateArtworkBatch) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	// Validate that the caller is the administrator.
	owner, err := ValidateAdmin(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	e.Owner = *owner

	// Validate the batch size. Item details are validated one by one at
	// execution.
	if r.PostForm == nil {
		err := r.ParseMultipartForm(defaultMaxMemory)
		if err != nil && err != http.ErrNotMultipart {
			return errors.Trace(err) // 500
		}
	}
	detailsList := r.PostForm["details[]"]
	if int64(len(detailsList)) < 1 ||
		int64(len(detailsList)) > gallery.MaxBatchSize {
		return errors.Trace(errors.NewUserErrorf(nil,
			400, gallery.ErrCodes[gallery.CodeMaxBatchSize],
			"The batch you submitted has %d items. Batches must contain "+
				"between 1 and %d items.",
			len(detailsList), gallery.MaxBatchSize,
		))
	}
	e.DetailsList = detailsList

	return nil
}

// Execute executes the endpoint.
func (e *CreateArtworkBatch) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	ctx = db.Begin(ctx, "gallery")
	defer db.LoggedRollback(ctx)

	registry, err := model.LoadOrCreateRegistry(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	l := []gallery.ArtworkResource{}
	for _, details := range e.DetailsList {
		// Items with invalid details are absorbed; minting continues with
		// the next item.
		if _, err := ValidateDetails(ctx, details); err != nil {
			continue
		}

		artwork, err := mintArtwork(ctx, registry, details, e.Owner)
		if err != nil {
			return nil, nil, errors.Trace(err)
		}
		l = append(l, model.NewArtworkResource(ctx, artwork))
	}

	err = registry.Save(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	db.Commit(ctx)

	return ptr.Int(http.StatusCreated), &svc.Resp{
		"artworks": format.JSONPtr(l),
	}, nil
}
