package model

import (
	"testing"

	"github.com/Sirdoh/NFTArtGallery/lib/livemode"
)

func TestLoadOrCreateRegistry(t *testing.T) {
	ctx := createTestCtx(t)

	registry, err := LoadRegistry(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if registry != nil {
		t.Fatalf("expected no registry row, got %+v", registry)
	}

	registry, err = LoadOrCreateRegistry(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if registry.LatestID != 0 {
		t.Errorf("expected fresh counter 0, got %d", registry.LatestID)
	}

	registry.LatestID = 7
	err = registry.Save(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	reloaded, err := LoadOrCreateRegistry(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if reloaded.LatestID != 7 {
		t.Errorf("expected persisted counter 7, got %d", reloaded.LatestID)
	}
	if reloaded.Token != registry.Token {
		t.Errorf("expected the existing row, got a new one")
	}
}

func TestRegistryLivemodeSegregation(t *testing.T) {
	ctx := createTestCtx(t)

	registry, err := LoadOrCreateRegistry(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	registry.LatestID = 3
	err = registry.Save(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	liveCtx := livemode.With(ctx, true)

	liveRegistry, err := LoadOrCreateRegistry(liveCtx)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if liveRegistry.LatestID != 0 {
		t.Errorf("expected livemode counter 0, got %d",
			liveRegistry.LatestID)
	}

	reloaded, err := LoadRegistry(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if reloaded.LatestID != 3 {
		t.Errorf("expected testmode counter 3, got %d", reloaded.LatestID)
	}
}
