package identity_fx

import (
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"wellspring/internal/repositories"
	"wellspring/pkg/identity"
)

var Module = fx.Provide(
	provideIdentityRepo, provideIdentityProvider)

func provideIdentityRepo(db *gorm.DB) repositories.IdentityRepository {
	return repositories.NewIdentityRepository(db)
}

func provideIdentityProvider(repo repositories.IdentityRepository) identity.Provider {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	ttl := 24 * time.Hour
	if raw := os.Getenv("TOKEN_TTL_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			ttl = time.Duration(hours) * time.Hour
		}
	}

	return identity.NewJWTProvider(repo, secret, ttl)
}
