package repository

import (
	"errors"
	"fmt"
	"time"

	authdomain "konexio-backend/internal/auth/domain"
	contactdomain "konexio-backend/internal/contact/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrUserDocUpdate marks a failure in the contact-refs stage of a delete, so
// callers can tell "contact row touched" apart from "owner index touched".
var ErrUserDocUpdate = errors.New("failed to update the user's document")

// contactRepository implements ContactRepository using GORM
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new instance of contactRepository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{
		db: db,
	}
}

func (r *contactRepository) FindByID(id string) (*contactdomain.Contact, error) {
	var contact contactdomain.Contact
	err := r.db.Where("id = ?", id).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) FindByIDs(ids []string) ([]contactdomain.Contact, error) {
	contacts := []contactdomain.Contact{}
	if len(ids) == 0 {
		return contacts, nil
	}

	var rows []contactdomain.Contact
	if err := r.db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]contactdomain.Contact, len(rows))
	for _, c := range rows {
		byID[c.ID] = c
	}
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			contacts = append(contacts, c)
		}
	}
	return contacts, nil
}

// CreateForUser runs the three-stage creation protocol inside one
// transaction: insert the contact, stamp its owner in a second write, then
// append the id to the owner's refs. Any stage error rolls the whole
// sequence back, so no orphan contact can survive a partial failure.
func (r *contactRepository) CreateForUser(contact *contactdomain.Contact, userID string) error {
	contact.ID = uuid.New().String()
	contact.CreatedAt = time.Now()
	contact.UpdatedAt = time.Now()

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(contact).Error; err != nil {
			return err
		}

		if err := tx.Model(&contactdomain.Contact{}).Where("id = ?", contact.ID).
			Update("owner_id", userID).Error; err != nil {
			return err
		}
		contact.OwnerID = userID

		var user authdomain.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		user.ContactRefs = append(user.ContactRefs, contact.ID)
		user.UpdatedAt = time.Now()
		return tx.Save(&user).Error
	})
}

func (r *contactRepository) Update(contact *contactdomain.Contact) error {
	contact.UpdatedAt = time.Now()
	return r.db.Save(contact).Error
}

// DeleteForUser deletes the contact row and pulls its id out of the owner's
// refs in the same transaction. The refs stage reports ErrUserDocUpdate so
// the caller can surface the distinct user-document failure.
func (r *contactRepository) DeleteForUser(contact *contactdomain.Contact, userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", contact.ID).Delete(&contactdomain.Contact{}).Error; err != nil {
			return err
		}

		var user authdomain.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrUserDocUpdate, err)
		}

		refs := authdomain.ContactRefs{}
		for _, id := range user.ContactRefs {
			if id != contact.ID {
				refs = append(refs, id)
			}
		}
		user.ContactRefs = refs
		user.UpdatedAt = time.Now()
		if err := tx.Save(&user).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrUserDocUpdate, err)
		}
		return nil
	})
}
