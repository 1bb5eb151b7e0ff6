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
	// EndPtTransferArtwork transfers an artwork to a new owner.
	EndPtTransferArtwork EndPtName = "TransferArtwork"
)

func init() {
	registrar[EndPtTransferArtwork] = NewTransferArtwork
}

// TransferArtwork controls the transfer of an artwork from its current
// owner to a recipient. An artwork can be transferred only once; the
// recipient is the one submitting the operation.
type TransferArtwork struct {
	Caller string
	ID     int64
	From   string
	To     string
}

// NewTransferArtwork constructs and initialiezes the endpoint.
func NewTransferArtwork(
	r *http.Request,
) (Endpoint, error) {
	return &TransferArtwork{}, nil
}

// Validate validates the input parameters.
func (e *TransferArtwork) Validate(
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

	// Validate from.
	from, err := ValidateUsername(ctx, r.PostFormValue("from"))
	if err != nil {
		return errors.Trace(err)
	}
	e.From = *from

	// Validate to.
	to, err := ValidateUsername(ctx, r.PostFormValue("to"))
	if err != nil {
		return errors.Trace(err)
	}
	e.To = *to

	return nil
}

// Execute executes the endpoint.
func (e *TransferArtwork) Execute(
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
			"The artwork you are trying to transfer does not exist: %d.",
			e.ID,
		))
	}

	if e.Caller != e.To {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, gallery.ErrCodes[gallery.CodeNotOwner],
			"Transfers are submitted by their recipient: authenticated as "+
				"%s but the recipient is %s.",
			e.Caller, e.To,
		))
	}

	// The transfer flag is terminal. A transferred artwork is no longer
	// reachable by transfers.
	if artwork.Transferred {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			404, gallery.ErrCodes[gallery.CodeArtworkNotFound],
			"The artwork you are trying to transfer was already "+
				"transferred: %d.",
			e.ID,
		))
	}

	if artwork.Owner != e.From {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, gallery.ErrCodes[gallery.CodeNotOwner],
			"The artwork %d is not owned by %s.",
			e.ID, e.From,
		))
	}

	artwork.Owner = e.To
	artwork.Transferred = true

	err = artwork.Save(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	db.Commit(ctx)

	return ptr.Int(http.StatusOK), &svc.Resp{
		"artwork": format.JSONPtr(model.NewArtworkResource(ctx, artwork)),
	}, nil
}
