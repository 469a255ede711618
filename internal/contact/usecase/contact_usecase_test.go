package usecase

import (
	"fmt"
	"testing"

	authdomain "konexio-backend/internal/auth/domain"
	authrepo "konexio-backend/internal/auth/repository"
	contactdomain "konexio-backend/internal/contact/domain"
	contactdto "konexio-backend/internal/contact/dto"
	"konexio-backend/internal/contact/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestSetup(t *testing.T) (ContactUsecase, authrepo.UserRepository, repository.ContactRepository, *authdomain.User) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}, &contactdomain.Contact{}))

	userRepo := authrepo.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)

	owner := &authdomain.User{Email: "owner@example.com", Password: "hash"}
	require.NoError(t, userRepo.Create(owner))

	return NewContactUsecase(contactRepo, userRepo), userRepo, contactRepo, owner
}

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

func TestCreate_NormalizesAndIndexes(t *testing.T) {
	uc, userRepo, contactRepo, owner := newTestSetup(t)

	contact, err := uc.Create(owner.ID, &contactdto.CreateContactRequest{
		Name:        "Alice",
		Email:       "A@X.com",
		Description: "Friend",
		Category:    3,
	})
	require.NoError(t, err)
	require.Equal(t, "alice", contact.Name)
	require.Equal(t, "a@x.com", contact.Email)
	require.Equal(t, "friend", contact.Description)
	require.Equal(t, 3, contact.Category)
	require.Equal(t, owner.ID, contact.OwnerID)

	// Stored contact matches the returned one
	stored, err := contactRepo.FindByID(contact.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, contact.Email, stored.Email)

	// Owner's refs were appended in the same operation
	reloaded, err := userRepo.FindByID(owner.ID)
	require.NoError(t, err)
	require.Equal(t, authdomain.ContactRefs{contact.ID}, reloaded.ContactRefs)
}

func TestList_DereferencesRefsInOrder(t *testing.T) {
	uc, _, _, owner := newTestSetup(t)

	first, err := uc.Create(owner.ID, &contactdto.CreateContactRequest{Name: "a", Email: "a@x.com", Description: "d", Category: 1})
	require.NoError(t, err)
	second, err := uc.Create(owner.ID, &contactdto.CreateContactRequest{Name: "b", Email: "b@x.com", Description: "d", Category: 2})
	require.NoError(t, err)

	contacts, err := uc.List(owner.ID, nil)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	require.Equal(t, first.ID, contacts[0].ID)
	require.Equal(t, second.ID, contacts[1].ID)
}

func TestList_FiltersAreOrderedCaseInsensitiveIntersections(t *testing.T) {
	uc, _, _, owner := newTestSetup(t)

	_, err := uc.Create(owner.ID, &contactdto.CreateContactRequest{Name: "alice", Email: "a@x.com", Description: "friend", Category: 3})
	require.NoError(t, err)
	_, err = uc.Create(owner.ID, &contactdto.CreateContactRequest{Name: "bob", Email: "b@x.com", Description: "friend", Category: 3})
	require.NoError(t, err)

	// Values match case-insensitively
	got, err := uc.List(owner.ID, []Filter{{Key: "name", Value: "ALICE"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "a@x.com", got[0].Email)

	// Intersection of two filters
	got, err = uc.List(owner.ID, []Filter{{Key: "description", Value: "friend"}, {Key: "category", Value: "3"}})
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Unknown key fails with the offending key attached
	_, err = uc.List(owner.ID, []Filter{{Key: "nickname", Value: "al"}})
	var unknown *UnknownFilterError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "nickname", unknown.Key)

	// A filter that eliminates every candidate fails
	_, err = uc.List(owner.ID, []Filter{{Key: "name", Value: "nobody"}})
	require.ErrorIs(t, err, ErrNoMatch)
}

func TestList_FilterIsIdempotent(t *testing.T) {
	uc, _, _, owner := newTestSetup(t)

	_, err := uc.Create(owner.ID, &contactdto.CreateContactRequest{Name: "alice", Email: "a@x.com", Description: "friend", Category: 3})
	require.NoError(t, err)

	filters := []Filter{{Key: "category", Value: "3"}}
	first, err := uc.List(owner.ID, filters)
	require.NoError(t, err)
	second, err := uc.List(owner.ID, filters)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestUpdate_PartialMerge(t *testing.T) {
	uc, _, _, owner := newTestSetup(t)

	created, err := uc.Create(owner.ID, &contactdto.CreateContactRequest{Name: "alice", Email: "a@x.com", Description: "friend", Category: 3})
	require.NoError(t, err)

	updated, err := uc.Update(&contactdto.UpdateContactRequest{
		ID:   created.ID,
		Name: strptr("Alicia"),
	})
	require.NoError(t, err)
	require.Equal(t, "alicia", updated.Name)
	// Untouched fields survive the merge
	require.Equal(t, "a@x.com", updated.Email)
	require.Equal(t, "friend", updated.Description)
	require.Equal(t, 3, updated.Category)

	updated, err = uc.Update(&contactdto.UpdateContactRequest{
		ID:       created.ID,
		Category: intptr(7),
	})
	require.NoError(t, err)
	require.Equal(t, 7, updated.Category)
	require.Equal(t, "alicia", updated.Name)
}

func TestUpdate_UnknownID(t *testing.T) {
	uc, _, _, _ := newTestSetup(t)

	_, err := uc.Update(&contactdto.UpdateContactRequest{ID: "no-such-id", Name: strptr("x")})
	require.ErrorIs(t, err, ErrContactNotFound)
}

func TestDelete_RemovesContactAndRef(t *testing.T) {
	uc, userRepo, contactRepo, owner := newTestSetup(t)

	keep, err := uc.Create(owner.ID, &contactdto.CreateContactRequest{Name: "keep", Email: "k@x.com", Description: "d", Category: 1})
	require.NoError(t, err)
	doomed, err := uc.Create(owner.ID, &contactdto.CreateContactRequest{Name: "doomed", Email: "d@x.com", Description: "d", Category: 2})
	require.NoError(t, err)

	deleted, remaining, err := uc.Delete(owner.ID, doomed.ID)
	require.NoError(t, err)
	require.Equal(t, doomed.ID, deleted.ID)
	require.Len(t, remaining, 1)
	require.Equal(t, keep.ID, remaining[0].ID)

	// Gone from the contact collection
	found, err := contactRepo.FindByID(doomed.ID)
	require.NoError(t, err)
	require.Nil(t, found)

	// And from the owner's reference list
	reloaded, err := userRepo.FindByID(owner.ID)
	require.NoError(t, err)
	require.Equal(t, authdomain.ContactRefs{keep.ID}, reloaded.ContactRefs)

	_, _, err = uc.Delete(owner.ID, doomed.ID)
	require.ErrorIs(t, err, ErrContactNotFound)
}

func TestCreate_DuplicateContactEmailRollsBack(t *testing.T) {
	uc, userRepo, _, owner := newTestSetup(t)

	_, err := uc.Create(owner.ID, &contactdto.CreateContactRequest{Name: "alice", Email: "same@x.com", Description: "d", Category: 1})
	require.NoError(t, err)

	_, err = uc.Create(owner.ID, &contactdto.CreateContactRequest{Name: "clone", Email: "same@x.com", Description: "d", Category: 2})
	require.Error(t, err)

	// Failed creation left no dangling ref behind
	reloaded, err := userRepo.FindByID(owner.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.ContactRefs, 1)
}
