package seed

import (
	"context"
	"fmt"
	"log"

	"realty-api/internal/domain"
	"realty-api/internal/repository"
)

// Load stores the sample catalog. Meant for fresh in-memory stores; loading
// twice duplicates the listings.
func Load(ctx context.Context, repo repository.PropertyRepository) error {
	for _, insert := range SampleProperties() {
		if _, err := repo.Create(ctx, insert); err != nil {
			return fmt.Errorf("failed to seed %q: %w", insert.Title, err)
		}
	}
	log.Printf("[SEED] loaded %d sample listings", len(SampleProperties()))
	return nil
}

// SampleProperties returns the starter catalog.
func SampleProperties() []domain.PropertyInsert {
	return []domain.PropertyInsert{
		{
			Title:         "Modern Family Home",
			Description:   "Stunning modern home with gourmet kitchen, open floor plan, and premium finishes throughout. Perfect for entertaining with spacious living areas and a beautiful backyard oasis.",
			Price:         "750000",
			Address:       "123 Maple Ridge Drive",
			City:          "Springfield",
			State:         "CA",
			ZipCode:       "90210",
			PropertyType:  "house",
			Status:        domain.StatusForSale,
			Bedrooms:      intPtr(4),
			Bathrooms:     strPtr("3.0"),
			SquareFootage: intPtr(2800),
			LotSize:       strPtr("0.25"),
			YearBuilt:     intPtr(2018),
			Images:        []string{"/assets/a.png"},
			Amenities:     []string{"Central Air", "Hardwood Floors", "Granite Countertops", "Walk-in Closet"},
			Features:      []string{"Open Floor Plan", "Gourmet Kitchen", "Master Suite", "Two-Car Garage"},
		},
		{
			Title:         "Luxury Townhome",
			Description:   "Elegant townhome featuring spacious living areas, fireplace, and abundant natural light in desirable Heritage District location.",
			Price:         "425000",
			Address:       "456 Heritage Lane",
			City:          "Springfield",
			State:         "CA",
			ZipCode:       "90211",
			PropertyType:  "townhouse",
			Status:        domain.StatusForSale,
			Bedrooms:      intPtr(3),
			Bathrooms:     strPtr("2.0"),
			SquareFootage: intPtr(1950),
			LotSize:       strPtr("0.1"),
			YearBuilt:     intPtr(2015),
			Images:        []string{"/assets/b.png"},
			Amenities:     []string{"Fireplace", "Patio", "Storage", "Laundry Room"},
			Features:      []string{"Living Room Fireplace", "Private Patio", "Updated Kitchen"},
		},
		{
			Title:         "Executive Condo",
			Description:   "Sophisticated downtown condo with luxurious master suite, modern amenities, and city views.",
			Price:         "650000",
			Address:       "789 Downtown Plaza",
			City:          "Springfield",
			State:         "CA",
			ZipCode:       "90212",
			PropertyType:  "condo",
			Status:        domain.StatusPending,
			Bedrooms:      intPtr(2),
			Bathrooms:     strPtr("2.0"),
			SquareFootage: intPtr(1400),
			YearBuilt:     intPtr(2020),
			Images:        []string{"/assets/c.png"},
			Amenities:     []string{"City Views", "Balcony", "Gym Access", "Concierge"},
			Features:      []string{"Floor-to-Ceiling Windows", "Modern Appliances", "Master Suite"},
		},
		{
			Title:         "Suburban Retreat",
			Description:   "Charming family home on quiet street with large yard, updated interior, and move-in ready condition.",
			Price:         "595000",
			Address:       "321 Greenwood Estate",
			City:          "Springfield",
			State:         "CA",
			ZipCode:       "90213",
			PropertyType:  "house",
			Status:        domain.StatusForSale,
			Bedrooms:      intPtr(5),
			Bathrooms:     strPtr("3.0"),
			SquareFootage: intPtr(3200),
			LotSize:       strPtr("0.5"),
			YearBuilt:     intPtr(2010),
			Images:        []string{"/assets/d.png"},
			Amenities:     []string{"Large Yard", "Updated Kitchen", "Hardwood Floors", "Three-Car Garage"},
			Features:      []string{"Spacious Layout", "Family Room", "Formal Dining", "Home Office"},
		},
		{
			Title:         "Historic Townhouse",
			Description:   "Beautifully restored historic townhouse with original character, modern updates, and prime Old Town location.",
			Price:         "485000",
			Address:       "654 Old Town Square",
			City:          "Springfield",
			State:         "CA",
			ZipCode:       "90214",
			PropertyType:  "townhouse",
			Status:        domain.StatusForSale,
			Bedrooms:      intPtr(3),
			Bathrooms:     strPtr("2.0"),
			SquareFootage: intPtr(2100),
			LotSize:       strPtr("0.08"),
			YearBuilt:     intPtr(1925),
			Images:        []string{"/assets/e.png"},
			Amenities:     []string{"Historic Character", "Updated Systems", "Original Details", "Courtyard"},
			Features:      []string{"Restored Original Features", "Modern Kitchen", "Exposed Brick"},
		},
		{
			Title:         "Contemporary Villa",
			Description:   "Stunning contemporary home with panoramic views, premium materials, and resort-style backyard.",
			Price:         "950000",
			Address:       "987 Hillside Heights",
			City:          "Springfield",
			State:         "CA",
			ZipCode:       "90215",
			PropertyType:  "house",
			Status:        domain.StatusSold,
			Bedrooms:      intPtr(4),
			Bathrooms:     strPtr("4.0"),
			SquareFootage: intPtr(3500),
			LotSize:       strPtr("0.75"),
			YearBuilt:     intPtr(2021),
			Images:        []string{"/assets/b.png"},
			Amenities:     []string{"Panoramic Views", "Pool", "Spa", "Wine Cellar"},
			Features:      []string{"Gourmet Kitchen", "Master Suite", "Home Theater", "Guest House"},
		},
	}
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
