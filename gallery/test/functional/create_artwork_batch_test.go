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

func setupCreateArtworkBatch(
	t *testing.T,
) ([]*test.Gallery, []*test.GalleryUser) {
	m := []*test.Gallery{
		test.CreateGallery(t),
	}
	u := []*test.GalleryUser{
		m[0].Admin,
		m[0].CreateUser(t),
	}

	return m, u
}

func tearDownCreateArtworkBatch(
	t *testing.T,
	galleries []*test.Gallery,
) {
	for _, m := range galleries {
		m.Close()
	}
}

func TestCreateArtworkBatchSimple(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupCreateArtworkBatch(t)
	defer tearDownCreateArtworkBatch(t, m)

	status, raw := u[0].Post(t, "/artworks/batch", url.Values{
		"details[]": {
			"Study in blue",
			"Study in red",
			"Study in green",
		},
	})

	var artworks []gallery.ArtworkResource
	err := raw.Extract("artworks", &artworks)
	assert.Nil(t, err)

	assert.Equal(t, 201, status)
	assert.Equal(t, 3, len(artworks))
	for i, artwork := range artworks {
		assert.Equal(t, int64(i+1), artwork.ID)
		assert.Equal(t, u[0].Username, artwork.Owner)
		assert.Equal(t, false, artwork.Transferred)
	}
	assert.Equal(t, "Study in blue", artworks[0].Details)
	assert.Equal(t, "Study in red", artworks[1].Details)
	assert.Equal(t, "Study in green", artworks[2].Details)
}

func TestCreateArtworkBatchAbsorbsInvalidItems(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupCreateArtworkBatch(t)
	defer tearDownCreateArtworkBatch(t, m)

	status, raw := u[0].Post(t, "/artworks/batch", url.Values{
		"details[]": {
			"Study in blue",
			"",
			"Study in red",
			"",
			"Study in green",
		},
	})

	var artworks []gallery.ArtworkResource
	err := raw.Extract("artworks", &artworks)
	assert.Nil(t, err)

	assert.Equal(t, 201, status)
	assert.Equal(t, 3, len(artworks))

	// IDs stay dense: absorbed items don't consume an ID.
	assert.Equal(t, int64(1), artworks[0].ID)
	assert.Equal(t, int64(2), artworks[1].ID)
	assert.Equal(t, int64(3), artworks[2].ID)

	artwork := u[0].MintArtwork(t, "Study in yellow")
	assert.Equal(t, int64(4), artwork.ID)
}

func TestCreateArtworkBatchWithAllInvalidItems(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupCreateArtworkBatch(t)
	defer tearDownCreateArtworkBatch(t, m)

	status, raw := u[0].Post(t, "/artworks/batch", url.Values{
		"details[]": {"", ""},
	})

	var artworks []gallery.ArtworkResource
	err := raw.Extract("artworks", &artworks)
	assert.Nil(t, err)

	assert.Equal(t, 201, status)
	assert.Equal(t, 0, len(artworks))

	artwork := u[0].MintArtwork(t, "Study in yellow")
	assert.Equal(t, int64(1), artwork.ID)
}

func TestCreateArtworkBatchWithNoItem(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupCreateArtworkBatch(t)
	defer tearDownCreateArtworkBatch(t, m)

	status, raw := u[0].Post(t, "/artworks/batch", url.Values{})

	var e errors.ConcreteUserError
	err := raw.Extract("error", &e)
	assert.Nil(t, err)

	assert.Equal(t, 400, status)
	assert.Equal(t, "batch_size_invalid", e.ErrCode)
}

func TestCreateArtworkBatchAboveMaxSize(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupCreateArtworkBatch(t)
	defer tearDownCreateArtworkBatch(t, m)

	detailsList := []string{}
	for i := int64(0); i < gallery.MaxBatchSize+1; i++ {
		detailsList = append(detailsList, fmt.Sprintf("Study #%d", i))
	}

	status, raw := u[0].Post(t, "/artworks/batch", url.Values{
		"details[]": detailsList,
	})

	var e errors.ConcreteUserError
	err := raw.Extract("error", &e)
	assert.Nil(t, err)

	assert.Equal(t, 400, status)
	assert.Equal(t, "batch_size_invalid", e.ErrCode)
}

func TestCreateArtworkBatchAtMaxSize(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupCreateArtworkBatch(t)
	defer tearDownCreateArtworkBatch(t, m)

	detailsList := []string{}
	for i := int64(0); i < gallery.MaxBatchSize; i++ {
		detailsList = append(detailsList, fmt.Sprintf("Study #%d", i))
	}

	status, raw := u[0].Post(t, "/artworks/batch", url.Values{
		"details[]": detailsList,
	})

	var artworks []gallery.ArtworkResource
	err := raw.Extract("artworks", &artworks)
	assert.Nil(t, err)

	assert.Equal(t, 201, status)
	assert.Equal(t, int(gallery.MaxBatchSize), len(artworks))
	assert.Equal(t, gallery.MaxBatchSize, artworks[len(artworks)-1].ID)
}

func TestCreateArtworkBatchWithNonAdmin(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupCreateArtworkBatch(t)
	defer tearDownCreateArtworkBatch(t, m)

	status, raw := u[1].Post(t, "/artworks/batch", url.Values{
		"details[]": {"Study in blue"},
	})

	var e errors.ConcreteUserError
	err := raw.Extract("error", &e)
	assert.Nil(t, err)

	assert.Equal(t, 400, status)
	assert.Equal(t, "not_admin", e.ErrCode)
}
