package usecase

import (
	authdomain "konexio-backend/internal/auth/domain"
	authdto "konexio-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for account operations
type AuthUsecase interface {
	// Register creates a new non-admin account, rejecting duplicate emails
	Register(req *authdto.RegisterRequest) (*authdomain.User, error)

	// Login verifies credentials and returns the user plus a session token
	Login(req *authdto.LoginRequest) (*authdomain.User, string, error)

	// GetUserByID loads a single account; nil, nil when unknown
	GetUserByID(id string) (*authdomain.User, error)

	// ListUsers returns every account (admin surface)
	ListUsers() ([]authdomain.User, error)

	// DeleteUser removes a non-admin account and returns the refreshed list
	DeleteUser(id string) ([]authdomain.User, error)
}
