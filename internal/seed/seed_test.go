package seed

import (
	"context"
	"testing"

	"realty-api/internal/domain"
	"realty-api/internal/repository"
	"realty-api/internal/validation"
)

func TestSamplePropertiesAreValid(t *testing.T) {
	for _, insert := range SampleProperties() {
		if err := validation.Struct(insert); err != nil {
			t.Errorf("sample %q does not validate: %v", insert.Title, err)
		}
	}
}

func TestLoadPopulatesStore(t *testing.T) {
	repo := repository.NewMemoryPropertyRepository()
	ctx := context.Background()

	if err := Load(ctx, repo); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	properties, err := repo.List(ctx, domain.PropertyFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(properties) != len(SampleProperties()) {
		t.Fatalf("expected %d listings, got %d", len(SampleProperties()), len(properties))
	}
	for _, p := range properties {
		if !p.IsActive {
			t.Errorf("sample %q should be active", p.Title)
		}
	}
}
