package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bloomafter40/platform/internal/entity"
)

// SessionTTL is how long a login stays valid.
const SessionTTL = 30 * 24 * time.Hour

type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthOutput struct {
	User    *entity.User    `json:"user"`
	Session *entity.Session `json:"-"`
}

type AuthUseCase struct {
	Users    entity.UserRepositoryInterface
	Sessions entity.SessionRepositoryInterface
}

func NewAuthUseCase(users entity.UserRepositoryInterface, sessions entity.SessionRepositoryInterface) *AuthUseCase {
	return &AuthUseCase{Users: users, Sessions: sessions}
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthOutput, error) {
	if validationErrors := ValidateRegisterInput(input); len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: joinValidationErrors(validationErrors),
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, &TechnicalError{Code: "HASH_ERROR", Message: err.Error()}
	}

	user, err := entity.NewUser(
		strings.ToLower(strings.TrimSpace(input.Email)),
		string(hash),
		strings.TrimSpace(input.FirstName),
		strings.TrimSpace(input.LastName),
	)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Users.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, &DomainError{Code: "EMAIL_TAKEN", Message: "email already registered"}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	session, err := uc.startSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthOutput{User: user, Session: session}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	user, err := uc.Users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			// Same answer as a bad password so the endpoint does not leak
			// which emails exist.
			return nil, &DomainError{Code: "INVALID_CREDENTIALS", Message: "invalid email or password"}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, &DomainError{Code: "INVALID_CREDENTIALS", Message: "invalid email or password"}
	}

	session, err := uc.startSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthOutput{User: user, Session: session}, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	if err := uc.Sessions.Delete(ctx, token); err != nil && !errors.Is(err, entity.ErrSessionNotFound) {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	return nil
}

func (uc *AuthUseCase) startSession(ctx context.Context, userID string) (*entity.Session, error) {
	session := entity.NewSession(userID, SessionTTL)
	if err := uc.Sessions.Create(ctx, session); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	return session, nil
}
