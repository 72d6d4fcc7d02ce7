package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a listing. The set is fixed but
// propertyType stays free-form.
type Status string

const (
	StatusForSale Status = "For Sale"
	StatusPending Status = "Pending"
	StatusSold    Status = "Sold"
)

// ValidStatus reports whether s is one of the known lifecycle states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusForSale, StatusPending, StatusSold:
		return true
	}
	return false
}

// Property represents a real-estate listing. Price, bathrooms and lotSize are
// exact decimal strings so amounts never pick up floating-point drift.
type Property struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         string    `json:"price"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	ZipCode       string    `json:"zipCode"`
	PropertyType  string    `json:"propertyType"`
	Status        Status    `json:"status"`
	Bedrooms      *int      `json:"bedrooms"`
	Bathrooms     *string   `json:"bathrooms"`
	SquareFootage *int      `json:"squareFootage"`
	LotSize       *string   `json:"lotSize"`
	YearBuilt     *int      `json:"yearBuilt"`
	Images        []string  `json:"images"`
	Amenities     []string  `json:"amenities"`
	Features      []string  `json:"features"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// PropertyInsert is the pre-creation shape of a listing. Identity and
// timestamps are assigned by the repository.
type PropertyInsert struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Price         string   `json:"price" validate:"required,decimal"`
	Address       string   `json:"address" validate:"required"`
	City          string   `json:"city" validate:"required"`
	State         string   `json:"state" validate:"required"`
	ZipCode       string   `json:"zipCode" validate:"required"`
	PropertyType  string   `json:"propertyType" validate:"required"`
	Status        Status   `json:"status" validate:"omitempty,liststatus"`
	Bedrooms      *int     `json:"bedrooms" validate:"omitempty,min=0"`
	Bathrooms     *string  `json:"bathrooms" validate:"omitempty,decimal"`
	SquareFootage *int     `json:"squareFootage" validate:"omitempty,min=0"`
	LotSize       *string  `json:"lotSize" validate:"omitempty,decimal"`
	YearBuilt     *int     `json:"yearBuilt"`
	Images        []string `json:"images"`
	Amenities     []string `json:"amenities"`
	Features      []string `json:"features"`
	IsActive      *bool    `json:"isActive"`
}

// PropertyUpdate carries a partial listing. Nil means "leave unchanged"; for
// the slice fields a decoded empty array counts as provided.
type PropertyUpdate struct {
	Title         *string  `json:"title" validate:"omitempty,min=1"`
	Description   *string  `json:"description" validate:"omitempty,min=1"`
	Price         *string  `json:"price" validate:"omitempty,decimal"`
	Address       *string  `json:"address" validate:"omitempty,min=1"`
	City          *string  `json:"city" validate:"omitempty,min=1"`
	State         *string  `json:"state" validate:"omitempty,min=1"`
	ZipCode       *string  `json:"zipCode" validate:"omitempty,min=1"`
	PropertyType  *string  `json:"propertyType" validate:"omitempty,min=1"`
	Status        *Status  `json:"status" validate:"omitempty,liststatus"`
	Bedrooms      *int     `json:"bedrooms" validate:"omitempty,min=0"`
	Bathrooms     *string  `json:"bathrooms" validate:"omitempty,decimal"`
	SquareFootage *int     `json:"squareFootage" validate:"omitempty,min=0"`
	LotSize       *string  `json:"lotSize" validate:"omitempty,decimal"`
	YearBuilt     *int     `json:"yearBuilt"`
	Images        []string `json:"images"`
	Amenities     []string `json:"amenities"`
	Features      []string `json:"features"`
	IsActive      *bool    `json:"isActive"`
}

// NewProperty builds a listing from its insert shape, assigning identity,
// defaults and timestamps.
func NewProperty(insert PropertyInsert) Property {
	now := time.Now()
	p := Property{
		ID:            uuid.New().String(),
		Title:         insert.Title,
		Description:   insert.Description,
		Price:         insert.Price,
		Address:       insert.Address,
		City:          insert.City,
		State:         insert.State,
		ZipCode:       insert.ZipCode,
		PropertyType:  insert.PropertyType,
		Status:        StatusForSale,
		Bedrooms:      insert.Bedrooms,
		Bathrooms:     insert.Bathrooms,
		SquareFootage: insert.SquareFootage,
		LotSize:       insert.LotSize,
		YearBuilt:     insert.YearBuilt,
		Images:        cloneStrings(insert.Images),
		Amenities:     cloneStrings(insert.Amenities),
		Features:      cloneStrings(insert.Features),
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if insert.Status != "" {
		p.Status = insert.Status
	}
	if insert.IsActive != nil {
		p.IsActive = *insert.IsActive
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	return p
}

// Merge returns a copy of p with the provided fields of update applied and
// updatedAt refreshed. Unset fields are left as they are; invariants are not
// re-checked here, that is the API boundary's job.
func (p Property) Merge(update PropertyUpdate) Property {
	merged := p.Clone()
	if update.Title != nil {
		merged.Title = *update.Title
	}
	if update.Description != nil {
		merged.Description = *update.Description
	}
	if update.Price != nil {
		merged.Price = *update.Price
	}
	if update.Address != nil {
		merged.Address = *update.Address
	}
	if update.City != nil {
		merged.City = *update.City
	}
	if update.State != nil {
		merged.State = *update.State
	}
	if update.ZipCode != nil {
		merged.ZipCode = *update.ZipCode
	}
	if update.PropertyType != nil {
		merged.PropertyType = *update.PropertyType
	}
	if update.Status != nil {
		merged.Status = *update.Status
	}
	if update.Bedrooms != nil {
		merged.Bedrooms = update.Bedrooms
	}
	if update.Bathrooms != nil {
		merged.Bathrooms = update.Bathrooms
	}
	if update.SquareFootage != nil {
		merged.SquareFootage = update.SquareFootage
	}
	if update.LotSize != nil {
		merged.LotSize = update.LotSize
	}
	if update.YearBuilt != nil {
		merged.YearBuilt = update.YearBuilt
	}
	if update.Images != nil {
		merged.Images = cloneStrings(update.Images)
	}
	if update.Amenities != nil {
		merged.Amenities = cloneStrings(update.Amenities)
	}
	if update.Features != nil {
		merged.Features = cloneStrings(update.Features)
	}
	if update.IsActive != nil {
		merged.IsActive = *update.IsActive
	}
	merged.UpdatedAt = time.Now()
	if !merged.UpdatedAt.After(p.UpdatedAt) {
		// Coarse clocks can return the same instant twice; updatedAt
		// must still strictly increase on every mutation.
		merged.UpdatedAt = p.UpdatedAt.Add(time.Nanosecond)
	}
	return merged
}

// Clone returns a copy that shares no slice storage with p, so repository
// callers never hold a handle into the store.
func (p Property) Clone() Property {
	clone := p
	clone.Images = cloneStrings(p.Images)
	clone.Amenities = cloneStrings(p.Amenities)
	clone.Features = cloneStrings(p.Features)
	return clone
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
