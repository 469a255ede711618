package repository

import authdomain "konexio-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user with a store-assigned id
	Create(user *authdomain.User) error

	// FindByEmail returns nil, nil when no user has the email
	FindByEmail(email string) (*authdomain.User, error)

	// FindByID returns nil, nil when the id is unknown
	FindByID(id string) (*authdomain.User, error)

	// FindAll returns every user account
	FindAll() ([]authdomain.User, error)

	// Update persists changes to an existing user
	Update(user *authdomain.User) error

	// Delete removes a user by id
	Delete(id string) error
}
