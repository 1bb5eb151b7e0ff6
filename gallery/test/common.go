package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Sirdoh/NFTArtGallery/gallery"
	"github.com/Sirdoh/NFTArtGallery/gallery/app"
	"github.com/Sirdoh/NFTArtGallery/gallery/lib/authentication"
	"github.com/Sirdoh/NFTArtGallery/gallery/model"
	"github.com/Sirdoh/NFTArtGallery/lib/db"
	"github.com/Sirdoh/NFTArtGallery/lib/env"
	"github.com/Sirdoh/NFTArtGallery/lib/livemode"
	"github.com/Sirdoh/NFTArtGallery/lib/recoverer"
	"github.com/Sirdoh/NFTArtGallery/lib/requestlogger"
	"github.com/Sirdoh/NFTArtGallery/lib/svc"
	"github.com/Sirdoh/NFTArtGallery/lib/token"
	goji "goji.io"
)

// PostLatency is the accepted latency between a resource creation and the
// timestamp collected by the test asserting on it.
const PostLatency = time.Second

// Gallery represents a test gallery.
type Gallery struct {
	Server *httptest.Server
	Mux    *goji.Mux
	Env    *env.Env
	Ctx    context.Context

	// Admin is the administrator of the test gallery, created along with it.
	Admin *GalleryUser
}

// GalleryUser represents a user of a test gallery.
type GalleryUser struct {
	Gallery  *Gallery
	Username string
	Password string
	Address  string
}

// CreateGallery creates a new test gallery with an in-memory DB along with
// its administrator and returns a test.Gallery object.
func CreateGallery(
	t *testing.T,
) *Gallery {
	ctx := context.Background()

	galleryEnv := env.Env{
		Environment: env.QA,
		Config:      map[env.ConfigKey]string{},
	}
	ctx = env.With(ctx, &galleryEnv)

	galleryDB, err := db.NewSqlite3DBInMemory(ctx)
	if err != nil {
		t.Fatal(err)
	}
	err = db.CreateDBTables(ctx, "gallery", galleryDB)
	if err != nil {
		t.Fatal(err)
	}
	ctx = db.WithDB(ctx, "gallery", galleryDB)

	mux := goji.NewMux()
	mux.Use(requestlogger.Middleware)
	mux.Use(recoverer.Middleware)
	mux.Use(db.Middleware(db.GetDBMap(ctx)))
	mux.Use(env.Middleware(env.Get(ctx)))
	mux.Use(livemode.Middleware)
	mux.Use(authentication.Middleware)

	(&app.Controller{}).Bind(mux)

	m := Gallery{
		Server: httptest.NewServer(mux),
		Mux:    mux,
		Env:    &galleryEnv,
		Ctx:    ctx,
	}

	galleryEnv.Config[gallery.EnvCfgHost] =
		strings.TrimPrefix(m.Server.URL, "http://")

	m.Admin = m.CreateUser(t)
	galleryEnv.Config[gallery.EnvCfgAdmin] = m.Admin.Username

	return &m
}

// Close tears down the test gallery.
func (m *Gallery) Close() {
	m.Server.Close()
}

// CreateUser creates a new user on the test gallery.
func (m *Gallery) CreateUser(
	t *testing.T,
) *GalleryUser {
	username := token.RandStr()
	password := token.RandStr()

	_, err := model.CreateUser(m.Ctx, username, password)
	if err != nil {
		t.Fatal(err)
	}

	return &GalleryUser{
		Gallery:  m,
		Username: username,
		Password: password,
		Address: fmt.Sprintf("%s@%s",
			username, m.Env.Config[gallery.EnvCfgHost]),
	}
}

// Post performs a POST request on the test gallery, authenticated as user if
// user is not nil.
func (m *Gallery) Post(
	t *testing.T,
	user *GalleryUser,
	path string,
	params url.Values,
) (int, svc.Resp) {
	req, err := http.NewRequest("POST", m.Server.URL+path,
		strings.NewReader(params.Encode()))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if user != nil {
		req.SetBasicAuth(user.Username, user.Password)
	}

	r, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Body.Close()

	var raw svc.Resp
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		t.Fatal(err)
	}

	return r.StatusCode, raw
}

// Get performs a GET request on the test gallery, authenticated as user if
// user is not nil.
func (m *Gallery) Get(
	t *testing.T,
	user *GalleryUser,
	path string,
) (int, svc.Resp) {
	req, err := http.NewRequest("GET", m.Server.URL+path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if user != nil {
		req.SetBasicAuth(user.Username, user.Password)
	}

	r, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Body.Close()

	var raw svc.Resp
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		t.Fatal(err)
	}

	return r.StatusCode, raw
}

// Post performs a POST request on the user's gallery, authenticated as the
// user.
func (u *GalleryUser) Post(
	t *testing.T,
	path string,
	params url.Values,
) (int, svc.Resp) {
	return u.Gallery.Post(t, u, path, params)
}

// Get performs a GET request on the user's gallery, authenticated as the
// user.
func (u *GalleryUser) Get(
	t *testing.T,
	path string,
) (int, svc.Resp) {
	return u.Gallery.Get(t, u, path)
}

// MintArtwork mints an artwork as the user, which must be the gallery
// administrator.
func (u *GalleryUser) MintArtwork(
	t *testing.T,
	details string,
) gallery.ArtworkResource {
	status, raw := u.Post(t, "/artworks", url.Values{
		"details": {details},
	})
	if status != http.StatusCreated {
		t.Fatalf("Minting failed: status=%d", status)
	}

	var artwork gallery.ArtworkResource
	if err := raw.Extract("artwork", &artwork); err != nil {
		t.Fatal(err)
	}

	return artwork
}
