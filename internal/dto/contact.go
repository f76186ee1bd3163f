package dto

import (
	"time"

	"github.com/ayodiya/hux-assessment-backend/internal/model"
)

// ContactRequest is the full field set for both create and edit; partial
// updates are not supported.
type ContactRequest struct {
	FirstName string `json:"firstName" validate:"required,min=3"`
	LastName  string `json:"lastName" validate:"required,min=3"`
	Email     string `json:"email" validate:"omitempty,email"`
	PhoneNo   string `json:"phoneNo" validate:"required,min=11,max=11"`
}

type ContactResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email,omitempty"`
	PhoneNo   string    `json:"phoneNo"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewContactResponse(contact *model.Contact) *ContactResponse {
	return &ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		PhoneNo:   contact.PhoneNo,
		Slug:      contact.Slug,
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}
}

func NewContactResponses(contacts []model.Contact) []ContactResponse {
	responses := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		responses = append(responses, *NewContactResponse(&contacts[i]))
	}
	return responses
}
