package domain

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry is a contact request, optionally tied to a listing. The property
// reference is weak: nothing checks that the listing still exists.
type Inquiry struct {
	ID         string    `json:"id"`
	PropertyID *string   `json:"propertyId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

// InquiryInsert is the pre-creation shape of an inquiry.
type InquiryInsert struct {
	PropertyID *string `json:"propertyId"`
	Name       string  `json:"name" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      *string `json:"phone"`
	Message    string  `json:"message" validate:"required"`
}

// NewInquiry builds an inquiry from its insert shape.
func NewInquiry(insert InquiryInsert) Inquiry {
	return Inquiry{
		ID:         uuid.New().String(),
		PropertyID: insert.PropertyID,
		Name:       insert.Name,
		Email:      insert.Email,
		Phone:      insert.Phone,
		Message:    insert.Message,
		CreatedAt:  time.Now(),
	}
}
