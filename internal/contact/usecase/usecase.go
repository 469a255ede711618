package usecase

import (
	contactdomain "konexio-backend/internal/contact/domain"
	contactdto "konexio-backend/internal/contact/dto"
)

// Filter is one query-string criterion. Filters are applied in the order the
// client supplied them.
type Filter struct {
	Key   string
	Value string
}

// ContactUsecase defines the interface for contact operations
type ContactUsecase interface {
	// List dereferences the user's contact refs and applies the filters
	// as an ordered intersection of case-insensitive equality checks
	List(userID string, filters []Filter) ([]contactdomain.Contact, error)

	// Create runs the creation protocol and returns the stored contact
	Create(userID string, req *contactdto.CreateContactRequest) (*contactdomain.Contact, error)

	// Update applies a partial-field merge onto an existing contact
	Update(req *contactdto.UpdateContactRequest) (*contactdomain.Contact, error)

	// Delete removes the contact and returns it along with the owner's
	// remaining dereferenced contact list
	Delete(userID, contactID string) (*contactdomain.Contact, []contactdomain.Contact, error)
}
