package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wellspring/internal/repositories"
	"wellspring/pkg/identity"
	"wellspring/pkg/utils"
)

// AuthMiddleware verifies the bearer token against the identity provider
// and stores the verified identity in the request context.
func AuthMiddleware(provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		info, err := provider.VerifyToken(c.Request.Context(), tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("uid", info.UID.String())
		c.Set("email", info.Email)
		c.Set("email_verified", info.EmailVerified)
		c.Set("name", info.Name)
		c.Set("picture", info.Picture)
		c.Next()
	}
}

// ProfileMiddleware resolves the caller's profile and stores its id.
// Routes behind it require a registered (non-deleted) profile.
func ProfileMiddleware(profileRepo repositories.ProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := UIDFromContext(c)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		profile, err := profileRepo.FindByUserID(c.Request.Context(), uid)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "internal server error")
			c.Abort()
			return
		}
		if profile == nil {
			utils.RespondError(c, http.StatusNotFound, "profile not found, register first")
			c.Abort()
			return
		}

		c.Set("profile_id", profile.ID.String())
		c.Next()
	}
}

func UIDFromContext(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetString("uid")
	if raw == "" {
		return uuid.Nil, utils.ErrInvalidToken
	}
	return uuid.Parse(raw)
}

func ProfileIDFromContext(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetString("profile_id")
	if raw == "" {
		return uuid.Nil, utils.ErrProfileNotFound
	}
	return uuid.Parse(raw)
}
