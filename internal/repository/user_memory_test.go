package repository

import (
	"context"
	"errors"
	"testing"

	"realty-api/internal/domain"
)

func TestUserCreateAndLookup(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.UserInsert{Username: "agent", Password: "secret"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected an id to be assigned")
	}

	byID, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if byID.Username != "agent" {
		t.Fatalf("expected username agent, got %q", byID.Username)
	}

	byName, err := repo.GetByUsername(ctx, "agent")
	if err != nil {
		t.Fatalf("get by username failed: %v", err)
	}
	if byName.ID != created.ID {
		t.Fatal("expected lookup by username to find the same record")
	}
}

func TestUserLookupAbsence(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByUsername(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
