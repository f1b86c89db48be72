package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/password"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.Manager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.Manager) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

// Register creates an account and issues a token so the client is signed in
// immediately. Role is restricted to the two public roles.
func (u *authUsecase) Register(ctx context.Context, email, pass, role string) (*domain.AuthToken, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperror.BadRequest("Email is required")
	}
	if len(pass) < 8 {
		return nil, apperror.BadRequest("Password must be at least 8 characters")
	}
	if role != domain.RoleCandidate && role != domain.RoleRecruiter {
		return nil, apperror.BadRequest("Role must be candidate or recruiter")
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("An account with this email already exists")
		}
		return nil, apperror.Internal(err)
	}

	return u.issue(user)
}

func (u *authUsecase) Login(ctx context.Context, email, pass string) (*domain.AuthToken, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Same message for unknown email and wrong password
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	if !password.Verify(pass, user.PasswordHash) {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	return u.issue(user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) issue(user *domain.User) (*domain.AuthToken, error) {
	token, expiresAt, err := u.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthToken{Token: token, ExpiresAt: expiresAt, User: user}, nil
}
