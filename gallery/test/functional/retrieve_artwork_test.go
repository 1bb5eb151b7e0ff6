package functional

import (
	"fmt"
	"testing"

	"github.com/Sirdoh/NFTArtGallery/gallery"
	"github.com/Sirdoh/NFTArtGallery/gallery/test"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/stretchr/testify/assert"
)

func setupRetrieveArtwork(
	t *testing.T,
) ([]*test.Gallery, []*test.GalleryUser) {
	m := []*test.Gallery{
		test.CreateGallery(t),
	}
	u := []*test.GalleryUser{
		m[0].Admin,
	}

	return m, u
}

func tearDownRetrieveArtwork(
	t *testing.T,
	galleries []*test.Gallery,
) {
	for _, m := range galleries {
		m.Close()
	}
}

func TestRetrieveArtworkSimple(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupRetrieveArtwork(t)
	defer tearDownRetrieveArtwork(t, m)

	artwork := u[0].MintArtwork(t, "Morning fog")

	// Retrieval does not require authentication.
	status, raw := m[0].Get(t, nil, fmt.Sprintf("/artworks/%d", artwork.ID))

	var retrieved gallery.ArtworkResource
	err := raw.Extract("artwork", &retrieved)
	assert.Nil(t, err)

	assert.Equal(t, 200, status)
	assert.Equal(t, artwork.ID, retrieved.ID)
	assert.Equal(t, artwork.Owner, retrieved.Owner)
	assert.Equal(t, "Morning fog", retrieved.Details)
	assert.Equal(t, artwork.Created, retrieved.Created)
	assert.Equal(t, false, retrieved.Transferred)
}

func TestRetrieveArtworkNotMinted(
	t *testing.T,
) {
	t.Parallel()
	m, _ := setupRetrieveArtwork(t)
	defer tearDownRetrieveArtwork(t, m)

	status, raw := m[0].Get(t, nil, "/artworks/7")

	var e errors.ConcreteUserError
	err := raw.Extract("error", &e)
	assert.Nil(t, err)

	assert.Equal(t, 404, status)
	assert.Equal(t, "asset_not_found", e.ErrCode)
}

func TestRetrieveArtworkWithInvalidID(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupRetrieveArtwork(t)
	defer tearDownRetrieveArtwork(t, m)

	status, raw := u[0].Get(t, "/artworks/sunflowers")

	var e errors.ConcreteUserError
	err := raw.Extract("error", &e)
	assert.Nil(t, err)

	assert.Equal(t, 400, status)
	assert.Equal(t, "id_invalid", e.ErrCode)
}
