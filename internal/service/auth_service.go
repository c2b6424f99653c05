package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles signup and credential verification.
type AuthService struct {
	userRepo repository.UserRepository
}

type SignUpInput struct {
	UserID   string
	Password string
	Name     string
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// SignUp registers a new user with a bcrypt-hashed password. The user id is
// chosen by the caller and must be unique.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (*models.User, error) {
	if err := validation.ValidateUserID(in.UserID); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateDisplayName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.userRepo.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("User ID is already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		UserID:   in.UserID,
		Password: string(hashed),
		Name:     in.Name,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index is the real arbiter; a concurrent signup of the
		// same id surfaces here as a conflict.
		return nil, err
	}
	return user, nil
}

// SignIn verifies credentials and returns the user. Unknown user ids and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) SignIn(ctx context.Context, userID, password string) (*models.User, error) {
	if userID == "" || password == "" {
		return nil, models.NewInvalidCredentialsError()
	}

	user, err := s.userRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewInvalidCredentialsError()
	}
	return user, nil
}
