package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"realty-api/internal/domain"
)

func listingInsert(title, price string) domain.PropertyInsert {
	return domain.PropertyInsert{
		Title:        title,
		Description:  "A listing used in tests.",
		Price:        price,
		Address:      "1 Test Street",
		City:         "Springfield",
		State:        "CA",
		ZipCode:      "90210",
		PropertyType: "house",
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestPropertyCreateThenGet(t *testing.T) {
	repo := NewMemoryPropertyRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, listingInsert("Modern Family Home", "750000"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	fetched, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !reflect.DeepEqual(created, fetched) {
		t.Fatalf("expected fetched listing to equal created one\ncreated: %+v\nfetched: %+v", created, fetched)
	}
}

func TestPropertyGetUnknownID(t *testing.T) {
	repo := NewMemoryPropertyRepository()

	_, err := repo.GetByID(context.Background(), "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPropertyListExcludesInactive(t *testing.T) {
	repo := NewMemoryPropertyRepository()
	ctx := context.Background()

	inactive := false
	insert := listingInsert("Hidden Listing", "500000")
	insert.IsActive = &inactive
	hidden, err := repo.Create(ctx, insert)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := repo.Create(ctx, listingInsert("Visible Listing", "500000")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	properties, err := repo.List(ctx, domain.PropertyFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(properties) != 1 || properties[0].Title != "Visible Listing" {
		t.Fatalf("expected only the visible listing, got %d", len(properties))
	}

	// Direct lookup still reaches the inactive record.
	if _, err := repo.GetByID(ctx, hidden.ID); err != nil {
		t.Fatalf("expected inactive listing to be fetchable by id: %v", err)
	}
}

func TestPropertyListPriceRange(t *testing.T) {
	repo := NewMemoryPropertyRepository()
	ctx := context.Background()

	for _, price := range []string{"400000", "600000", "900000"} {
		if _, err := repo.Create(ctx, listingInsert("Listing "+price, price)); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	properties, err := repo.List(ctx, domain.PropertyFilter{
		MinPrice: floatPtr(500000),
		MaxPrice: floatPtr(800000),
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(properties) != 1 || properties[0].Price != "600000" {
		t.Fatalf("expected exactly the 600000 listing, got %+v", properties)
	}
}

func TestPropertyListInsertionOrder(t *testing.T) {
	repo := NewMemoryPropertyRepository()
	ctx := context.Background()

	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		if _, err := repo.Create(ctx, listingInsert(title, "500000")); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	properties, err := repo.List(ctx, domain.PropertyFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for i, title := range titles {
		if properties[i].Title != title {
			t.Fatalf("expected insertion order %v, got %s at %d", titles, properties[i].Title, i)
		}
	}
}

func TestPropertyUpdateMergesProvidedFields(t *testing.T) {
	repo := NewMemoryPropertyRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, listingInsert("Modern Family Home", "750000"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	status := domain.StatusSold
	updated, err := repo.Update(ctx, created.ID, domain.PropertyUpdate{Status: &status})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Status != domain.StatusSold {
		t.Fatalf("expected status %q, got %q", domain.StatusSold, updated.Status)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatal("expected updatedAt to strictly increase")
	}
	if updated.Title != created.Title || updated.Price != created.Price ||
		!updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("expected other fields to stay unchanged")
	}

	fetched, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if fetched.Status != domain.StatusSold {
		t.Fatal("expected the update to be persisted")
	}
}

func TestPropertyUpdateUnknownID(t *testing.T) {
	repo := NewMemoryPropertyRepository()

	_, err := repo.Update(context.Background(), "no-such-id", domain.PropertyUpdate{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPropertyDeleteIsIdempotentInEffect(t *testing.T) {
	repo := NewMemoryPropertyRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, listingInsert("Short-lived", "500000"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.GetByID(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected listing to be gone, got %v", err)
	}
	if err := repo.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete should report not found, got %v", err)
	}
}

func TestPropertyCallersHoldCopies(t *testing.T) {
	repo := NewMemoryPropertyRepository()
	ctx := context.Background()

	insert := listingInsert("Guarded", "500000")
	insert.Amenities = []string{"Pool"}
	created, err := repo.Create(ctx, insert)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	created.Amenities[0] = "Mutated"

	fetched, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if fetched.Amenities[0] != "Pool" {
		t.Fatal("expected stored record to be isolated from caller mutation")
	}
}
