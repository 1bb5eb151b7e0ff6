package functional

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Sirdoh/NFTArtGallery/gallery"
	"github.com/Sirdoh/NFTArtGallery/gallery/test"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/stretchr/testify/assert"
)

func setupCreateArtwork(
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

func tearDownCreateArtwork(
	t *testing.T,
	galleries []*test.Gallery,
) {
	for _, m := range galleries {
		m.Close()
	}
}

func TestCreateArtworkSimple(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupCreateArtwork(t)
	defer tearDownCreateArtwork(t, m)

	status, raw := u[0].Post(t, "/artworks", url.Values{
		"details": {"Sunset over sand dunes, 2016"},
	})

	var artwork gallery.ArtworkResource
	err := raw.Extract("artwork", &artwork)
	assert.Nil(t, err)

	assert.Equal(t, 201, status)
	assert.Equal(t, int64(1), artwork.ID)
	assert.Equal(t, "Sunset over sand dunes, 2016", artwork.Details)
	assert.Equal(t, u[0].Username, artwork.Owner)
	assert.Equal(t, false, artwork.Transferred)
	assert.Equal(t, false, artwork.Livemode)
	assert.WithinDuration(t,
		time.Now(),
		time.Unix(0, artwork.Created*gallery.TimeResolutionNs),
		test.PostLatency)
}

func TestCreateArtworkSequentialIDs(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupCreateArtwork(t)
	defer tearDownCreateArtwork(t, m)

	a0 := u[0].MintArtwork(t, "Azure window")
	a1 := u[0].MintArtwork(t, "Blue lagoon")
	a2 := u[0].MintArtwork(t, "Salt pans")

	assert.Equal(t, int64(1), a0.ID)
	assert.Equal(t, int64(2), a1.ID)
	assert.Equal(t, int64(3), a2.ID)
}

func TestCreateArtworkWithNonAdmin(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupCreateArtwork(t)
	defer tearDownCreateArtwork(t, m)

	status, raw := u[1].Post(t, "/artworks", url.Values{
		"details": {"Sunset over sand dunes, 2016"},
	})

	var e errors.ConcreteUserError
	err := raw.Extract("error", &e)
	assert.Nil(t, err)

	assert.Equal(t, 400, status)
	assert.Equal(t, "not_admin", e.ErrCode)
}

func TestCreateArtworkWithoutAuthentication(
	t *testing.T,
) {
	t.Parallel()
	m, _ := setupCreateArtwork(t)
	defer tearDownCreateArtwork(t, m)

	status, raw := m[0].Post(t, nil, "/artworks", url.Values{
		"details": {"Sunset over sand dunes, 2016"},
	})

	var e errors.ConcreteUserError
	err := raw.Extract("error", &e)
	assert.Nil(t, err)

	assert.Equal(t, 400, status)
	assert.Equal(t, "username_invalid", e.ErrCode)
}

func TestCreateArtworkWithEmptyDetails(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupCreateArtwork(t)
	defer tearDownCreateArtwork(t, m)

	status, raw := u[0].Post(t, "/artworks", url.Values{
		"details": {""},
	})

	var e errors.ConcreteUserError
	err := raw.Extract("error", &e)
	assert.Nil(t, err)

	assert.Equal(t, 400, status)
	assert.Equal(t, "details_invalid", e.ErrCode)
}

func TestCreateArtworkWithTooLongDetails(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupCreateArtwork(t)
	defer tearDownCreateArtwork(t, m)

	status, raw := u[0].Post(t, "/artworks", url.Values{
		"details": {strings.Repeat("a", gallery.DetailsMaxLength+1)},
	})

	var e errors.ConcreteUserError
	err := raw.Extract("error", &e)
	assert.Nil(t, err)

	assert.Equal(t, 400, status)
	assert.Equal(t, "details_invalid", e.ErrCode)
}

func TestCreateArtworkWithMaxLengthDetails(
	t *testing.T,
) {
	t.Parallel()
	m, u := setupCreateArtwork(t)
	defer tearDownCreateArtwork(t, m)

	status, raw := u[0].Post(t, "/artworks", url.Values{
		"details": {strings.Repeat("a", gallery.DetailsMaxLength)},
	})

	var artwork gallery.ArtworkResource
	err := raw.Extract("artwork", &artwork)
	assert.Nil(t, err)

	assert.Equal(t, 201, status)
	assert.Equal(t, gallery.DetailsMaxLength, len(artwork.Details))
}
