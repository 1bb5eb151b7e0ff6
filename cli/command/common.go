package command

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Sirdoh/NFTArtGallery/cli"
	"github.com/Sirdoh/NFTArtGallery/gallery"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/Sirdoh/NFTArtGallery/lib/out"
)

// MintArtwork mints a new artwork as the currently authenticated user.
func MintArtwork(
	ctx context.Context,
	details string,
) (*gallery.ArtworkResource, error) {
	g, err := cli.GalleryFromContextCredentials(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}

	out.Statf("[Minting artwork] user=%s@%s\n",
		g.Username, g.Host)

	status, raw, err := g.Post(ctx,
		"/artworks",
		nil,
		url.Values{
			"details": {details},
		})
	if err != nil {
		return nil, errors.Trace(err)
	}

	if *status != http.StatusCreated {
		var e errors.ConcreteUserError
		err = raw.Extract("error", &e)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return nil, errors.Trace(gallery.ErrGalleryClient{
			StatusCode: *status,
			ErrCode:    e.ErrCode,
			ErrMessage: e.ErrMessage,
		})
	}

	var artwork gallery.ArtworkResource
	err = raw.Extract("artwork", &artwork)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return &artwork, nil
}

// MintArtworkBatch mints a batch of artworks as the currently authenticated
// user.
func MintArtworkBatch(
	ctx context.Context,
	detailsList []string,
) ([]gallery.ArtworkResource, error) {
	g, err := cli.GalleryFromContextCredentials(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}

	out.Statf("[Minting artwork batch] user=%s@%s size=%d\n",
		g.Username, g.Host, len(detailsList))

	status, raw, err := g.Post(ctx,
		"/artworks/batch",
		nil,
		url.Values{
			"details[]": detailsList,
		})
	if err != nil {
		return nil, errors.Trace(err)
	}

	if *status != http.StatusCreated {
		var e errors.ConcreteUserError
		err = raw.Extract("error", &e)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return nil, errors.Trace(gallery.ErrGalleryClient{
			StatusCode: *status,
			ErrCode:    e.ErrCode,
			ErrMessage: e.ErrMessage,
		})
	}

	var artworks []gallery.ArtworkResource
	err = raw.Extract("artworks", &artworks)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return artworks, nil
}

// TransferArtwork transfers an artwork from its current owner to the
// currently authenticated user.
func TransferArtwork(
	ctx context.Context,
	id int64,
	from string,
	to string,
) (*gallery.ArtworkResource, error) {
	g, err := cli.GalleryFromContextCredentials(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}

	out.Statf("[Transferring artwork] user=%s@%s id=%d from=%s to=%s\n",
		g.Username, g.Host, id, from, to)

	status, raw, err := g.Post(ctx,
		fmt.Sprintf("/artworks/%d/transfer", id),
		nil,
		url.Values{
			"from": {from},
			"to":   {to},
		})
	if err != nil {
		return nil, errors.Trace(err)
	}

	if *status != http.StatusOK {
		var e errors.ConcreteUserError
		err = raw.Extract("error", &e)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return nil, errors.Trace(gallery.ErrGalleryClient{
			StatusCode: *status,
			ErrCode:    e.ErrCode,
			ErrMessage: e.ErrMessage,
		})
	}

	var artwork gallery.ArtworkResource
	err = raw.Extract("artwork", &artwork)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return &artwork, nil
}

// UpdateArtworkDetails updates the details of an artwork owned by the
// currently authenticated user. If secure is true the request goes through
// the endpoint that also accepts the gallery administrator.
func UpdateArtworkDetails(
	ctx context.Context,
	id int64,
	details string,
	secure bool,
) (*gallery.ArtworkResource, error) {
	g, err := cli.GalleryFromContextCredentials(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}

	out.Statf("[Updating artwork] user=%s@%s id=%d secure=%t\n",
		g.Username, g.Host, id, secure)

	path := fmt.Sprintf("/artworks/%d/details", id)
	if secure {
		path = fmt.Sprintf("/artworks/%d/details/secure", id)
	}

	status, raw, err := g.Post(ctx,
		path,
		nil,
		url.Values{
			"details": {details},
		})
	if err != nil {
		return nil, errors.Trace(err)
	}

	if *status != http.StatusOK {
		var e errors.ConcreteUserError
		err = raw.Extract("error", &e)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return nil, errors.Trace(gallery.ErrGalleryClient{
			StatusCode: *status,
			ErrCode:    e.ErrCode,
			ErrMessage: e.ErrMessage,
		})
	}

	var artwork gallery.ArtworkResource
	err = raw.Extract("artwork", &artwork)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return &artwork, nil
}

// RetrieveArtwork retrieves an artwork, returnin nil if it does not exist.
func RetrieveArtwork(
	ctx context.Context,
	id int64,
) (*gallery.ArtworkResource, error) {
	g, err := cli.GalleryFromContextCredentials(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}

	out.Statf("[Retrieving artwork] user=%s@%s id=%d\n",
		g.Username, g.Host, id)

	status, raw, err := g.Get(ctx,
		fmt.Sprintf("/artworks/%d", id), nil)
	if err != nil {
		return nil, errors.Trace(err)
	}

	if *status != http.StatusOK {
		var e errors.ConcreteUserError
		err = raw.Extract("error", &e)
		if err != nil {
			return nil, errors.Trace(err)
		}
		if e.ErrCode == gallery.ErrCodes[gallery.CodeArtworkNotFound] {
			return nil, nil
		}
		return nil, errors.Trace(gallery.ErrGalleryClient{
			StatusCode: *status,
			ErrCode:    e.ErrCode,
			ErrMessage: e.ErrMessage,
		})
	}

	var artwork gallery.ArtworkResource
	err = raw.Extract("artwork", &artwork)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return &artwork, nil
}

// RetrieveRegistry retrieves the registry state of the gallery.
func RetrieveRegistry(
	ctx context.Context,
) (*gallery.RegistryResource, error) {
	g, err := cli.GalleryFromContextCredentials(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}

	out.Statf("[Retrieving registry] user=%s@%s\n",
		g.Username, g.Host)

	status, raw, err := g.Get(ctx, "/registry", nil)
	if err != nil {
		return nil, errors.Trace(err)
	}

	if *status != http.StatusOK {
		var e errors.ConcreteUserError
		err = raw.Extract("error", &e)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return nil, errors.Trace(gallery.ErrGalleryClient{
			StatusCode: *status,
			ErrCode:    e.ErrCode,
			ErrMessage: e.ErrMessage,
		})
	}

	var registry gallery.RegistryResource
	err = raw.Extract("registry", &registry)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return &registry, nil
}

// ListArtworks lists artworks by id range.
func ListArtworks(
	ctx context.Context,
	start int64,
	count int64,
) ([]gallery.ArtworkResource, error) {
	g, err := cli.GalleryFromContextCredentials(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}

	out.Statf("[Listing artworks] user=%s@%s start=%d count=%d\n",
		g.Username, g.Host, start, count)

	status, raw, err := g.Get(ctx,
		"/artworks",
		url.Values{
			"start": {fmt.Sprintf("%d", start)},
			"count": {fmt.Sprintf("%d", count)},
		})
	if err != nil {
		return nil, errors.Trace(err)
	}

	if *status != http.StatusOK {
		var e errors.ConcreteUserError
		err = raw.Extract("error", &e)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return nil, errors.Trace(gallery.ErrGalleryClient{
			StatusCode: *status,
			ErrCode:    e.ErrCode,
			ErrMessage: e.ErrMessage,
		})
	}

	var artworks []gallery.ArtworkResource
	err = raw.Extract("artworks", &artworks)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return artworks, nil
}

// ListTransferredArtworkIDs lists the ids of transferred artworks by id
// range.
func ListTransferredArtworkIDs(
	ctx context.Context,
	start int64,
	count int64,
) ([]int64, error) {
	g, err := cli.GalleryFromContextCredentials(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}

	out.Statf("[Listing transferred artworks] user=%s@%s start=%d count=%d\n",
		g.Username, g.Host, start, count)

	status, raw, err := g.Get(ctx,
		"/artworks/transferred",
		url.Values{
			"start": {fmt.Sprintf("%d", start)},
			"count": {fmt.Sprintf("%d", count)},
		})
	if err != nil {
		return nil, errors.Trace(err)
	}

	if *status != http.StatusOK {
		var e errors.ConcreteUserError
		err = raw.Extract("error", &e)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return nil, errors.Trace(gallery.ErrGalleryClient{
			StatusCode: *status,
			ErrCode:    e.ErrCode,
			ErrMessage: e.ErrMessage,
		})
	}

	var ids []int64
	err = raw.Extract("ids", &ids)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return ids, nil
}

// RetrievePageInfo retrieves pagination information for a window of artworks.
func RetrievePageInfo(
	ctx context.Context,
	start int64,
	count int64,
) (*gallery.PageResource, error) {
	g, err := cli.GalleryFromContextCredentials(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}

	out.Statf("[Retrieving page info] user=%s@%s start=%d count=%d\n",
		g.Username, g.Host, start, count)

	status, raw, err := g.Get(ctx,
		"/artworks/pagination",
		url.Values{
			"start": {fmt.Sprintf("%d", start)},
			"count": {fmt.Sprintf("%d", count)},
		})
	if err != nil {
		return nil, errors.Trace(err)
	}

	if *status != http.StatusOK {
		var e errors.ConcreteUserError
		err = raw.Extract("error", &e)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return nil, errors.Trace(gallery.ErrGalleryClient{
			StatusCode: *status,
			ErrCode:    e.ErrCode,
			ErrMessage: e.ErrMessage,
		})
	}

	var page gallery.PageResource
	err = raw.Extract("page", &page)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return &page, nil
}

// OutArtwork prints out an artwork record.
func OutArtwork(
	ctx context.Context,
	a gallery.ArtworkResource,
) {
	out.Normf("  ID: ")
	out.Valuf("%d", a.ID)
	out.Normf(" Owner: ")
	out.Valuf("%s", a.Owner)
	out.Normf(" Transferred: ")
	out.Valuf("%t", a.Transferred)
	out.Normf(" Details: ")
	out.Valuf("%s", a.Details)
	out.Normf("\n")
}
