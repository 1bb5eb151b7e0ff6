package model

import (
	"testing"

	"github.com/Sirdoh/NFTArtGallery/lib/errors"
)

func TestCreateUserAndCheckPassword(t *testing.T) {
	ctx := createTestCtx(t)

	_, err := CreateUser(ctx, "alice", "opensesame")
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	user, err := LoadUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if user == nil {
		t.Fatal("expected user, got nil")
	}

	err = user.CheckPassword(ctx, "opensesame")
	if err != nil {
		t.Errorf("expected password to check: %+v", err)
	}

	err = user.CheckPassword(ctx, "letmein")
	if err == nil {
		t.Errorf("expected password mismatch")
	}

	user, err = LoadUserByUsername(ctx, "bob")
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if user != nil {
		t.Errorf("expected nil for unknown username, got %+v", user)
	}
}

func TestCreateUserUniqueConstraint(t *testing.T) {
	ctx := createTestCtx(t)

	_, err := CreateUser(ctx, "alice", "opensesame")
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	_, err = CreateUser(ctx, "alice", "another")
	if err == nil {
		t.Fatal("expected unique constraint error")
	}
	if _, ok := errors.Cause(err).(ErrUniqueConstraintViolation); !ok {
		t.Errorf("expected ErrUniqueConstraintViolation, got %+v",
			errors.Cause(err))
	}
}

func TestUserUpdatePassword(t *testing.T) {
	ctx := createTestCtx(t)

	_, err := CreateUser(ctx, "alice", "opensesame")
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	user, err := LoadUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	err = user.UpdatePassword(ctx, "correct-horse")
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	err = user.Save(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}

	reloaded, err := LoadUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if err := reloaded.CheckPassword(ctx, "correct-horse"); err != nil {
		t.Errorf("expected new password to check: %+v", err)
	}
	if err := reloaded.CheckPassword(ctx, "opensesame"); err == nil {
		t.Errorf("expected old password to be rejected")
	}
}
