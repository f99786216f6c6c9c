package identity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"wellspring/internal/models/db_models"
	"wellspring/internal/repositories"
	"wellspring/pkg/utils"
)

type Claims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name,omitempty"`
	Picture       string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

type jwtProvider struct {
	repo     repositories.IdentityRepository
	key      []byte
	tokenTTL time.Duration
}

func NewJWTProvider(repo repositories.IdentityRepository, secret string, tokenTTL time.Duration) Provider {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &jwtProvider{
		repo:     repo,
		key:      []byte(secret),
		tokenTTL: tokenTTL,
	}
}

func (p *jwtProvider) VerifyToken(ctx context.Context, token string) (*TokenInfo, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return p.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, utils.ErrInvalidToken
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}

	return &TokenInfo{
		UID:           uid,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
		Name:          claims.Name,
		Picture:       claims.Picture,
	}, nil
}

func (p *jwtProvider) IssueToken(ctx context.Context, uid uuid.UUID) (string, error) {
	record, err := p.repo.FindByID(ctx, uid)
	if err != nil {
		return "", utils.ErrProviderError
	}
	if record == nil || record.Disabled {
		return "", utils.ErrUserNotFound
	}

	now := time.Now()
	claims := &Claims{
		Email:         record.Email,
		EmailVerified: record.EmailVerified,
		Name:          record.DisplayName,
		Picture:       record.PhotoURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   record.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.key)
}

func (p *jwtProvider) GetUser(ctx context.Context, uid uuid.UUID) (*UserRecord, error) {
	record, err := p.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, utils.ErrProviderError
	}
	if record == nil {
		return nil, utils.ErrUserNotFound
	}
	return toUserRecord(record), nil
}

func (p *jwtProvider) GetUserByEmail(ctx context.Context, email string) (*UserRecord, error) {
	record, err := p.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrProviderError
	}
	if record == nil {
		return nil, utils.ErrUserNotFound
	}
	return toUserRecord(record), nil
}

func (p *jwtProvider) CreateUser(ctx context.Context, email, password, displayName string) (*UserRecord, error) {
	existing, err := p.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrProviderError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, utils.ErrProviderError
	}

	record := &db_models.Identity{
		Email:        email,
		PasswordHash: hash,
		DisplayName:  displayName,
	}
	if err := p.repo.Insert(ctx, record); err != nil {
		return nil, utils.ErrProviderError
	}
	return toUserRecord(record), nil
}

func (p *jwtProvider) DeleteUser(ctx context.Context, uid uuid.UUID) error {
	record, err := p.repo.FindByID(ctx, uid)
	if err != nil {
		return utils.ErrProviderError
	}
	if record == nil {
		return utils.ErrUserNotFound
	}
	if err := p.repo.Delete(ctx, uid); err != nil {
		return utils.ErrProviderError
	}
	return nil
}

func (p *jwtProvider) UpdateClaims(ctx context.Context, uid uuid.UUID, claims map[string]interface{}) error {
	record, err := p.repo.FindByID(ctx, uid)
	if err != nil {
		return utils.ErrProviderError
	}
	if record == nil {
		return utils.ErrUserNotFound
	}

	raw, err := json.Marshal(claims)
	if err != nil {
		return utils.ErrInvalidInput
	}
	record.Claims = datatypes.JSON(raw)
	if err := p.repo.Update(ctx, record); err != nil {
		return utils.ErrProviderError
	}
	return nil
}

// ListUsers pages with an opaque cursor token (the last uid of the
// previous page). An empty next token means the listing is exhausted.
func (p *jwtProvider) ListUsers(ctx context.Context, pageSize int, pageToken string) ([]UserRecord, string, error) {
	if pageSize < 1 || pageSize > 1000 {
		pageSize = 100
	}

	afterID := uuid.Nil
	if pageToken != "" {
		parsed, err := uuid.Parse(pageToken)
		if err != nil {
			return nil, "", utils.ErrInvalidInput
		}
		afterID = parsed
	}

	records, err := p.repo.List(ctx, pageSize, afterID)
	if err != nil {
		return nil, "", utils.ErrProviderError
	}

	users := make([]UserRecord, 0, len(records))
	for i := range records {
		users = append(users, *toUserRecord(&records[i]))
	}

	next := ""
	if len(records) == pageSize {
		next = records[len(records)-1].ID.String()
	}
	return users, next, nil
}

func (p *jwtProvider) VerifyPassword(ctx context.Context, email, password string) (*UserRecord, error) {
	record, err := p.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrProviderError
	}
	if record == nil || record.Disabled {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(record.PasswordHash, password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}
	return toUserRecord(record), nil
}

func (p *jwtProvider) UpdatePassword(ctx context.Context, uid uuid.UUID, newPassword string) error {
	record, err := p.repo.FindByID(ctx, uid)
	if err != nil {
		return utils.ErrProviderError
	}
	if record == nil {
		return utils.ErrUserNotFound
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.ErrProviderError
	}
	record.PasswordHash = hash
	if err := p.repo.Update(ctx, record); err != nil {
		return utils.ErrProviderError
	}
	return nil
}

func toUserRecord(identity *db_models.Identity) *UserRecord {
	var claims map[string]interface{}
	if len(identity.Claims) > 0 {
		_ = json.Unmarshal(identity.Claims, &claims)
	}
	return &UserRecord{
		UID:           identity.ID,
		Email:         identity.Email,
		EmailVerified: identity.EmailVerified,
		DisplayName:   identity.DisplayName,
		PhotoURL:      identity.PhotoURL,
		Disabled:      identity.Disabled,
		Claims:        claims,
	}
}
