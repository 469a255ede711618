package usecase

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	authrepo "konexio-backend/internal/auth/repository"
	contactdomain "konexio-backend/internal/contact/domain"
	contactdto "konexio-backend/internal/contact/dto"
	"konexio-backend/internal/contact/repository"
)

var (
	// ErrContactNotFound is returned when the target contact id does not
	// exist. Checked before any mutation runs.
	ErrContactNotFound = errors.New("contact not found")

	// ErrNoMatch is returned when a filter eliminates every candidate.
	ErrNoMatch = errors.New("no contacts matching criteria")

	// ErrOwnerNotFound is returned when the authenticated user id no longer
	// resolves to an account.
	ErrOwnerNotFound = errors.New("owner not found")
)

// UnknownFilterError carries the offending filter key so the handler can
// echo it back.
type UnknownFilterError struct {
	Key string
}

func (e *UnknownFilterError) Error() string {
	return fmt.Sprintf("the filter %q doesn't exist", e.Key)
}

// contactUsecase implements ContactUsecase interface
type contactUsecase struct {
	contactRepo repository.ContactRepository
	userRepo    authrepo.UserRepository
}

// NewContactUsecase creates a new instance of contactUsecase
func NewContactUsecase(contactRepo repository.ContactRepository, userRepo authrepo.UserRepository) ContactUsecase {
	return &contactUsecase{
		contactRepo: contactRepo,
		userRepo:    userRepo,
	}
}

func (u *contactUsecase) List(userID string, filters []Filter) ([]contactdomain.Contact, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrOwnerNotFound
	}

	contacts, err := u.contactRepo.FindByIDs(user.ContactRefs)
	if err != nil {
		return nil, err
	}

	for _, f := range filters {
		if !knownFilterKey(f.Key) {
			return nil, &UnknownFilterError{Key: f.Key}
		}

		kept := contacts[:0]
		for _, c := range contacts {
			if strings.EqualFold(fieldValue(&c, f.Key), f.Value) {
				kept = append(kept, c)
			}
		}
		contacts = kept

		if len(contacts) == 0 {
			return nil, ErrNoMatch
		}
	}
	return contacts, nil
}

func (u *contactUsecase) Create(userID string, req *contactdto.CreateContactRequest) (*contactdomain.Contact, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrOwnerNotFound
	}

	contact := &contactdomain.Contact{
		Name:        strings.ToLower(req.Name),
		Email:       strings.ToLower(req.Email),
		Description: strings.ToLower(req.Description),
		Category:    req.Category,
	}
	if err := u.contactRepo.CreateForUser(contact, userID); err != nil {
		return nil, err
	}
	return contact, nil
}

func (u *contactUsecase) Update(req *contactdto.UpdateContactRequest) (*contactdomain.Contact, error) {
	contact, err := u.contactRepo.FindByID(req.ID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	if req.Name != nil {
		contact.Name = strings.ToLower(*req.Name)
	}
	if req.Email != nil {
		contact.Email = strings.ToLower(*req.Email)
	}
	if req.Description != nil {
		contact.Description = strings.ToLower(*req.Description)
	}
	if req.Category != nil {
		contact.Category = *req.Category
	}

	if err := u.contactRepo.Update(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (u *contactUsecase) Delete(userID, contactID string) (*contactdomain.Contact, []contactdomain.Contact, error) {
	contact, err := u.contactRepo.FindByID(contactID)
	if err != nil {
		return nil, nil, err
	}
	if contact == nil {
		return nil, nil, ErrContactNotFound
	}

	if err := u.contactRepo.DeleteForUser(contact, userID); err != nil {
		return nil, nil, err
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrOwnerNotFound
	}
	remaining, err := u.contactRepo.FindByIDs(user.ContactRefs)
	if err != nil {
		return nil, nil, err
	}
	return contact, remaining, nil
}

func knownFilterKey(key string) bool {
	switch key {
	case "_id", "userId", "name", "email", "description", "category":
		return true
	}
	return false
}

func fieldValue(c *contactdomain.Contact, key string) string {
	switch key {
	case "_id":
		return c.ID
	case "userId":
		return c.OwnerID
	case "name":
		return c.Name
	case "email":
		return c.Email
	case "description":
		return c.Description
	case "category":
		return strconv.Itoa(c.Category)
	}
	return ""
}
