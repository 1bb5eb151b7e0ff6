package functional

import (
	"fmt"
	"testing"

	"github.com/Sirdoh/NFTArtGallery/gallery"
	"github.com/Sirdoh/NFTArtGallery/gallery/test"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/stretchr/testify/assert"
)

func setupListArtworksPaginated(
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

func tearDownListArtworksPaginated(
	t *testing.T,
	galleries []*test.Gallery,
) {
	for _, m := range galleries {
		m.Close()
	}
}

func TestListArtworksPaginatedSimple(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupListArtworksPaginated(t)
	defer tearDownListArtworksPaginated(t, m)

	for i := 0; i < 7; i++ {
		u[0].MintArtwork(t, fmt.Sprintf("Engraving #%d", i))
	}

	status, raw := m[0].Get(t, nil, "/artworks/pages/2?count=3")

	var page gallery.PageResource
	err := raw.Extract("page", &page)
	assert.Nil(t, err)

	var artworks []gallery.ArtworkResource
	err = raw.Extract("artworks", &artworks)
	assert.Nil(t, err)

	assert.Equal(t, 200, status)
	assert.Equal(t, int64(7), page.Total)
	assert.Equal(t, int64(4), page.Start)
	assert.Equal(t, int64(3), page.Count)
	assert.Equal(t, 3, len(artworks))
	assert.Equal(t, int64(4), artworks[0].ID)
	assert.Equal(t, "Engraving #3", artworks[0].Details)
	assert.Equal(t, int64(6), artworks[2].ID)
}

func TestListArtworksPaginatedFirstPage(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupListArtworksPaginated(t)
	defer tearDownListArtworksPaginated(t, m)

	for i := 0; i < 7; i++ {
		u[0].MintArtwork(t, fmt.Sprintf("Engraving #%d", i))
	}

	status, raw := m[0].Get(t, nil, "/artworks/pages/1?count=3")

	var page gallery.PageResource
	err := raw.Extract("page", &page)
	assert.Nil(t, err)

	var artworks []gallery.ArtworkResource
	err = raw.Extract("artworks", &artworks)
	assert.Nil(t, err)

	assert.Equal(t, 200, status)
	assert.Equal(t, int64(1), page.Start)
	assert.Equal(t, true, page.HasMore)
	assert.Equal(t, int64(1), artworks[0].ID)
}

func TestListArtworksPaginatedPastTheEnd(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupListArtworksPaginated(t)
	defer tearDownListArtworksPaginated(t, m)

	u[0].MintArtwork(t, "Engraving")

	status, raw := m[0].Get(t, nil, "/artworks/pages/4?count=3")

	var page gallery.PageResource
	err := raw.Extract("page", &page)
	assert.Nil(t, err)

	var artworks []gallery.ArtworkResource
	err = raw.Extract("artworks", &artworks)
	assert.Nil(t, err)

	assert.Equal(t, 200, status)
	assert.Equal(t, int64(10), page.Start)
	assert.Equal(t, false, page.HasMore)
	assert.Equal(t, 3, len(artworks))
	for i, artwork := range artworks {
		assert.Equal(t, int64(10+i), artwork.ID)
		assert.Equal(t, "", artwork.Owner)
	}
}

func TestListArtworksPaginatedWithInvalidPage(
	t *testing.T,
) {
	t.Parallel()
	m, _ := setupListArtworksPaginated(t)
	defer tearDownListArtworksPaginated(t, m)

	status, raw := m[0].Get(t, nil, "/artworks/pages/0?count=3")

	var e errors.ConcreteUserError
	err := raw.Extract("error", &e)
	assert.Nil(t, err)

	assert.Equal(t, 400, status)
	assert.Equal(t, "page_invalid", e.ErrCode)
}
