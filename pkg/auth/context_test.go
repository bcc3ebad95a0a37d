package auth

import (
	"context"
	"errors"
	"testing"
)

func TestWithUsername_UsernameFromCtx(t *testing.T) {
	ctx := WithUsername(context.Background(), "alice")

	got, err := UsernameFromCtx(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "alice" {
		t.Fatalf("expected %q, got %q", "alice", got)
	}
}

func TestUsernameFromCtx_EmptyContext(t *testing.T) {
	_, err := UsernameFromCtx(context.Background())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUsernameFromCtx_EmptyUsername(t *testing.T) {
	ctx := WithUsername(context.Background(), "")
	_, err := UsernameFromCtx(ctx)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for empty username, got %v", err)
	}
}

func TestUsernameFromCtx_Isolation(t *testing.T) {
	ctx1 := WithUsername(context.Background(), "alice")
	ctx2 := WithUsername(context.Background(), "bob")

	got1, _ := UsernameFromCtx(ctx1)
	got2, _ := UsernameFromCtx(ctx2)

	if got1 != "alice" || got2 != "bob" {
		t.Fatalf("contexts leaked: got %q and %q", got1, got2)
	}
}
