package model

import (
	"context"
	"testing"

	"github.com/Sirdoh/NFTArtGallery/lib/db"
	"github.com/Sirdoh/NFTArtGallery/lib/env"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/Sirdoh/NFTArtGallery/lib/livemode"

	// force initialization of schemas
	_ "github.com/Sirdoh/NFTArtGallery/gallery/model/schemas"
)

func createTestCtx(
	t *testing.T,
) context.Context {
	ctx := context.Background()

	ctx = env.With(ctx, &env.Env{
		Environment: env.QA,
		Config:      map[env.ConfigKey]string{},
	})
	ctx = livemode.With(ctx, false)

	galleryDB, err := db.NewSqlite3DBInMemory(ctx)
	if err != nil {
		t.Fatalf("test db setup failed: %+v", err)
	}
	err = db.CreateDBTables(ctx, "gallery", galleryDB)
	if err != nil {
		t.Fatalf("test db setup failed: %+v", err)
	}
	ctx = db.WithDB(ctx, "gallery", galleryDB)

	return ctx
}

func TestCreateArtworkAndLoad(t *testing.T) {
	ctx := createTestCtx(t)

	created, err := CreateArtwork(ctx, 1, "Red square", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	artwork, err := LoadArtworkByID(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if artwork == nil {
		t.Fatal("expected artwork, got nil")
	}
	if artwork.ID != 1 {
		t.Errorf("expected id 1, got %d", artwork.ID)
	}
	if artwork.Details != "Red square" {
		t.Errorf("expected details to round trip, got %s", artwork.Details)
	}
	if artwork.Owner != "alice" {
		t.Errorf("expected owner alice, got %s", artwork.Owner)
	}
	if artwork.Transferred {
		t.Errorf("expected transferred false")
	}
	if artwork.Token != created.Token {
		t.Errorf("expected token to round trip, got %s", artwork.Token)
	}

	artwork, err = LoadArtworkByID(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if artwork != nil {
		t.Errorf("expected nil for unminted id, got %+v", artwork)
	}
}

func TestCreateArtworkUniqueConstraint(t *testing.T) {
	ctx := createTestCtx(t)

	_, err := CreateArtwork(ctx, 1, "Red square", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	_, err = CreateArtwork(ctx, 1, "Blue square", "bob")
	if err == nil {
		t.Fatal("expected unique constraint error")
	}
	if _, ok := errors.Cause(err).(ErrUniqueConstraintViolation); !ok {
		t.Errorf("expected ErrUniqueConstraintViolation, got %+v",
			errors.Cause(err))
	}
}

func TestArtworkSave(t *testing.T) {
	ctx := createTestCtx(t)

	artwork, err := CreateArtwork(ctx, 1, "Red square", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	artwork.Details = "Red square, restored"
	artwork.Owner = "bob"
	artwork.Transferred = true
	err = artwork.Save(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	reloaded, err := LoadArtworkByID(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if reloaded.Details != "Red square, restored" {
		t.Errorf("expected saved details, got %s", reloaded.Details)
	}
	if reloaded.Owner != "bob" {
		t.Errorf("expected saved owner, got %s", reloaded.Owner)
	}
	if !reloaded.Transferred {
		t.Errorf("expected saved transferred flag")
	}
}

func TestLoadArtworkListByIDRange(t *testing.T) {
	ctx := createTestCtx(t)

	for i := int64(1); i <= 5; i++ {
		_, err := CreateArtwork(ctx, i, "Etching", "alice")
		if err != nil {
			t.Fatalf("unexpected error: %+v", err)
		}
	}

	artworks, err := LoadArtworkListByIDRange(ctx, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if len(artworks) != 2 {
		t.Fatalf("expected 2 artworks, got %d", len(artworks))
	}
	if artworks[0].ID != 2 || artworks[1].ID != 3 {
		t.Errorf("expected ids 2,3 got %d,%d",
			artworks[0].ID, artworks[1].ID)
	}

	artworks, err = LoadArtworkListByIDRange(ctx, 4, 10)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if len(artworks) != 2 {
		t.Fatalf("expected 2 artworks at tail, got %d", len(artworks))
	}
}

func TestLoadTransferredArtworkListByIDRange(t *testing.T) {
	ctx := createTestCtx(t)

	for i := int64(1); i <= 4; i++ {
		artwork, err := CreateArtwork(ctx, i, "Etching", "alice")
		if err != nil {
			t.Fatalf("unexpected error: %+v", err)
		}
		if i%2 == 0 {
			artwork.Transferred = true
			err = artwork.Save(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %+v", err)
			}
		}
	}

	artworks, err := LoadTransferredArtworkListByIDRange(ctx, 1, 4)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if len(artworks) != 2 {
		t.Fatalf("expected 2 transferred artworks, got %d", len(artworks))
	}
	if artworks[0].ID != 2 || artworks[1].ID != 4 {
		t.Errorf("expected ids 2,4 got %d,%d",
			artworks[0].ID, artworks[1].ID)
	}
}

func TestCountArtworks(t *testing.T) {
	ctx := createTestCtx(t)

	count, err := CountArtworks(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if count != 0 {
		t.Errorf("expected 0, got %d", count)
	}

	for i := int64(1); i <= 3; i++ {
		_, err := CreateArtwork(ctx, i, "Etching", "alice")
		if err != nil {
			t.Fatalf("unexpected error: %+v", err)
		}
	}

	count, err = CountArtworks(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if count != 3 {
		t.Errorf("expected 3, got %d", count)
	}
}

func TestArtworkLivemodeSegregation(t *testing.T) {
	ctx := createTestCtx(t)

	_, err := CreateArtwork(ctx, 1, "Etching", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	liveCtx := livemode.With(ctx, true)

	artwork, err := LoadArtworkByID(liveCtx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if artwork != nil {
		t.Errorf("expected test artwork invisible in livemode")
	}

	// The same id is free in livemode.
	_, err = CreateArtwork(liveCtx, 1, "Etching, live", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	count, err := CountArtworks(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if count != 1 {
		t.Errorf("expected testmode count 1, got %d", count)
	}
}
