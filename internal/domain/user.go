package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleCandidate = "candidate"
	RoleRecruiter = "recruiter"
)

type User struct {
	ID           string    `json:"id"` // UUID
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"` // candidate | recruiter
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// AuthToken is the issued credential returned by register/login.
type AuthToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *User     `json:"user"`
}

type AuthUsecase interface {
	Register(ctx context.Context, email, password, role string) (*AuthToken, error)
	Login(ctx context.Context, email, password string) (*AuthToken, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
