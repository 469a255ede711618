package usecase

import (
	"errors"
	"strings"

	authdomain "konexio-backend/internal/auth/domain"
	authdto "konexio-backend/internal/auth/dto"
	"konexio-backend/internal/auth/repository"
	"konexio-backend/internal/auth/token"
)

var (
	// ErrDuplicateEmail is returned when the email already has an account.
	ErrDuplicateEmail = errors.New("email already has an account")

	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords, so callers cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("email or password incorrect")

	// ErrUserNotFound is returned when a target account id does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrPeerAdmin is returned when an admin tries to delete an admin account.
	ErrPeerAdmin = errors.New("cannot delete an admin account")
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Service) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdomain.User, error) {
	email := strings.ToLower(req.Email)

	existing, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:    email,
		Password: hashedPassword,
		IsAdmin:  false,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdomain.User, string, error) {
	user, err := u.userRepo.FindByEmail(strings.ToLower(req.Email))
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, tok, nil
}

func (u *authUsecase) GetUserByID(id string) (*authdomain.User, error) {
	return u.userRepo.FindByID(id)
}

func (u *authUsecase) ListUsers() ([]authdomain.User, error) {
	return u.userRepo.FindAll()
}

func (u *authUsecase) DeleteUser(id string) ([]authdomain.User, error) {
	target, err := u.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}
	if target.IsAdmin {
		return nil, ErrPeerAdmin
	}

	if err := u.userRepo.Delete(id); err != nil {
		return nil, err
	}
	return u.userRepo.FindAll()
}
