package repository

import contactdomain "konexio-backend/internal/contact/domain"

// ContactRepository defines the interface for contact data access.
// CreateForUser and DeleteForUser also maintain the owning user's
// contact-ref list; both run as a single transaction.
type ContactRepository interface {
	// FindByID returns nil, nil when the id is unknown
	FindByID(id string) (*contactdomain.Contact, error)

	// FindByIDs dereferences a user's contact refs, preserving ref order.
	// Ids that no longer resolve are skipped.
	FindByIDs(ids []string) ([]contactdomain.Contact, error)

	// CreateForUser inserts the contact, stamps its owner, and appends its
	// id to the owner's contact refs
	CreateForUser(contact *contactdomain.Contact, userID string) error

	// Update persists changes to an existing contact
	Update(contact *contactdomain.Contact) error

	// DeleteForUser removes the contact and pulls its id from the owner's
	// contact refs. A failure in the refs stage is reported as
	// ErrUserDocUpdate.
	DeleteForUser(contact *contactdomain.Contact, userID string) error
}
