package identity

import (
	"context"

	"github.com/google/uuid"
)

// TokenInfo is the verified identity carried by a bearer token.
type TokenInfo struct {
	UID           uuid.UUID
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}

type UserRecord struct {
	UID           uuid.UUID
	Email         string
	EmailVerified bool
	DisplayName   string
	PhotoURL      string
	Disabled      bool
	Claims        map[string]interface{}
}

// Provider wraps the identity backend: token verification plus the admin
// user operations. Verification always round-trips to the backing store,
// no credential caching.
type Provider interface {
	VerifyToken(ctx context.Context, token string) (*TokenInfo, error)
	IssueToken(ctx context.Context, uid uuid.UUID) (string, error)

	GetUser(ctx context.Context, uid uuid.UUID) (*UserRecord, error)
	GetUserByEmail(ctx context.Context, email string) (*UserRecord, error)
	CreateUser(ctx context.Context, email, password, displayName string) (*UserRecord, error)
	DeleteUser(ctx context.Context, uid uuid.UUID) error
	UpdateClaims(ctx context.Context, uid uuid.UUID, claims map[string]interface{}) error
	ListUsers(ctx context.Context, pageSize int, pageToken string) ([]UserRecord, string, error)

	VerifyPassword(ctx context.Context, email, password string) (*UserRecord, error)
	UpdatePassword(ctx context.Context, uid uuid.UUID, newPassword string) error
}
