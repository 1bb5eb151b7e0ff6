package functional

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/Sirdoh/NFTArtGallery/gallery"
	"github.com/Sirdoh/NFTArtGallery/gallery/test"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/stretchr/testify/assert"
)

func setupUpdateArtworkDetails(
	t *testing.T,
) ([]*test.Gallery, []*test.GalleryUser) {
	m := []*test.Gallery{
		test.CreateGallery(t),
	}
	u := []*test.GalleryUser{
		m[0].Admin,
		m[0].CreateUser(t),
		m[0].CreateUser(t),
	}

	return m, u
}

func tearDownUpdateArtworkDetails(
	t *testing.T,
	galleries []*test.Gallery,
) {
	for _, m := range galleries {
		m.Close()
	}
}

func TestUpdateArtworkDetailsSimple(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupUpdateArtworkDetails(t)
	defer tearDownUpdateArtworkDetails(t, m)

	artwork := u[0].MintArtwork(t, "Original details")

	status, raw := u[0].Post(t,
		fmt.Sprintf("/artworks/%d/details", artwork.ID),
		url.Values{
			"details": {"Updated details"},
		})

	var updated gallery.ArtworkResource
	err := raw.Extract("artwork", &updated)
	assert.Nil(t, err)

	assert.Equal(t, 200, status)
	assert.Equal(t, artwork.ID, updated.ID)
	assert.Equal(t, "Updated details", updated.Details)
	assert.Equal(t, artwork.Owner, updated.Owner)
	assert.Equal(t, false, updated.Transferred)
}

func TestUpdateArtworkDetailsWithNonOwner(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupUpdateArtworkDetails(t)
	defer tearDownUpdateArtworkDetails(t, m)

	artwork := u[0].MintArtwork(t, "Original details")

	status, raw := u[1].Post(t,
		fmt.Sprintf("/artworks/%d/details", artwork.ID),
		url.Values{
			"details": {"Updated details"},
		})

	var e errors.ConcreteUserError
	err := raw.Extract("error", &e)
	assert.Nil(t, err)

	assert.Equal(t, 400, status)
	assert.Equal(t, "not_owner", e.ErrCode)
}

func TestUpdateArtworkDetailsAdminIsNotOwner(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupUpdateArtworkDetails(t)
	defer tearDownUpdateArtworkDetails(t, m)

	artwork := u[0].MintArtwork(t, "Original details")

	status, _ := u[1].Post(t,
		fmt.Sprintf("/artworks/%d/transfer", artwork.ID),
		url.Values{
			"from": {u[0].Username},
			"to":   {u[1].Username},
		})
	assert.Equal(t, 200, status)

	// The administrator minted the artwork but no longer owns it. The
	// non-secure update is owner-gated only.
	status, raw := u[0].Post(t,
		fmt.Sprintf("/artworks/%d/details", artwork.ID),
		url.Values{
			"details": {"Updated details"},
		})

	var e errors.ConcreteUserError
	err := raw.Extract("error", &e)
	assert.Nil(t, err)

	assert.Equal(t, 400, status)
	assert.Equal(t, "not_owner", e.ErrCode)
}

func TestUpdateArtworkDetailsAfterTransfer(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupUpdateArtworkDetails(t)
	defer tearDownUpdateArtworkDetails(t, m)

	artwork := u[0].MintArtwork(t, "Original details")

	status, _ := u[1].Post(t,
		fmt.Sprintf("/artworks/%d/transfer", artwork.ID),
		url.Values{
			"from": {u[0].Username},
			"to":   {u[1].Username},
		})
	assert.Equal(t, 200, status)

	status, raw := u[1].Post(t,
		fmt.Sprintf("/artworks/%d/details", artwork.ID),
		url.Values{
			"details": {"Updated details"},
		})

	var updated gallery.ArtworkResource
	err := raw.Extract("artwork", &updated)
	assert.Nil(t, err)

	assert.Equal(t, 200, status)
	assert.Equal(t, "Updated details", updated.Details)
	assert.Equal(t, u[1].Username, updated.Owner)
}

func TestUpdateArtworkDetailsNotMinted(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupUpdateArtworkDetails(t)
	defer tearDownUpdateArtworkDetails(t, m)

	status, raw := u[0].Post(t, "/artworks/7/details", url.Values{
		"details": {"Updated details"},
	})

	var e errors.ConcreteUserError
	err := raw.Extract("error", &e)
	assert.Nil(t, err)

	assert.Equal(t, 404, status)
	assert.Equal(t, "asset_not_found", e.ErrCode)
}

func TestUpdateArtworkDetailsWithEmptyDetails(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupUpdateArtworkDetails(t)
	defer tearDownUpdateArtworkDetails(t, m)

	artwork := u[0].MintArtwork(t, "Original details")

	status, raw := u[0].Post(t,
		fmt.Sprintf("/artworks/%d/details", artwork.ID),
		url.Values{
			"details": {""},
		})

	var e errors.ConcreteUserError
	err := raw.Extract("error", &e)
	assert.Nil(t, err)

	assert.Equal(t, 400, status)
	assert.Equal(t, "details_invalid", e.ErrCode)
}

func TestSecureUpdateArtworkDetailsWithAdmin(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupUpdateArtworkDetails(t)
	defer tearDownUpdateArtworkDetails(t, m)

	artwork := u[0].MintArtwork(t, "Original details")

	status, _ := u[1].Post(t,
		fmt.Sprintf("/artworks/%d/transfer", artwork.ID),
		url.Values{
			"from": {u[0].Username},
			"to":   {u[1].Username},
		})
	assert.Equal(t, 200, status)

	// The secure update lets the administrator curate artworks it does
	// not own.
	status, raw := u[0].Post(t,
		fmt.Sprintf("/artworks/%d/details/secure", artwork.ID),
		url.Values{
			"details": {"Curated details"},
		})

	var updated gallery.ArtworkResource
	err := raw.Extract("artwork", &updated)
	assert.Nil(t, err)

	assert.Equal(t, 200, status)
	assert.Equal(t, "Curated details", updated.Details)
	assert.Equal(t, u[1].Username, updated.Owner)
}

func TestSecureUpdateArtworkDetailsWithOwner(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupUpdateArtworkDetails(t)
	defer tearDownUpdateArtworkDetails(t, m)

	artwork := u[0].MintArtwork(t, "Original details")

	status, raw := u[0].Post(t,
		fmt.Sprintf("/artworks/%d/details/secure", artwork.ID),
		url.Values{
			"details": {"Updated details"},
		})

	var updated gallery.ArtworkResource
	err := raw.Extract("artwork", &updated)
	assert.Nil(t, err)

	assert.Equal(t, 200, status)
	assert.Equal(t, "Updated details", updated.Details)
}

func TestSecureUpdateArtworkDetailsWithStranger(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupUpdateArtworkDetails(t)
	defer tearDownUpdateArtworkDetails(t, m)

	artwork := u[0].MintArtwork(t, "Original details")

	status, raw := u[2].Post(t,
		fmt.Sprintf("/artworks/%d/details/secure", artwork.ID),
		url.Values{
			"details": {"Updated details"},
		})

	var e errors.ConcreteUserError
	err := raw.Extract("error", &e)
	assert.Nil(t, err)

	assert.Equal(t, 400, status)
	assert.Equal(t, "not_owner", e.ErrCode)
}
