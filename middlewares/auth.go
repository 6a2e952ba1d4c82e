package middlewares

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gaurisonawane07/StoreRater/configs"
	"github.com/gaurisonawane07/StoreRater/entity"
	"github.com/gaurisonawane07/StoreRater/pkg/resp"
	"github.com/gaurisonawane07/StoreRater/utils"
)

var (
	errNoToken   = errors.New("No token provided")
	errMalformed = errors.New("Malformed authorization header")
)

// AuthMiddleware verifies the bearer token and, if roles are given,
// enforces the allow-list.
func AuthMiddleware(cfg *configs.Config, roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := bearerClaims(c, cfg.JWTSecret)
		if err != nil {
			resp.Unauthorized(c, err.Error())
			c.Abort()
			return
		}

		attachIdentity(c, claims)

		if len(roles) > 0 && !roleAllowed(claims.Role, roles) {
			resp.Forbidden(c, "Forbidden")
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuthMiddleware attaches the identity when a valid token is
// present and lets the request through unauthenticated otherwise. Used by
// the public store listing to personalize results.
func OptionalAuthMiddleware(cfg *configs.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := bearerClaims(c, cfg.JWTSecret); err == nil {
			attachIdentity(c, claims)
		}
		c.Next()
	}
}

func bearerClaims(c *gin.Context, secret string) (*utils.Claims, error) {
	h := c.GetHeader("Authorization")
	if h == "" {
		return nil, errNoToken
	}
	if !strings.HasPrefix(h, "Bearer ") {
		return nil, errMalformed
	}
	claims, err := utils.ParseToken(strings.TrimPrefix(h, "Bearer "), secret)
	if err != nil {
		return nil, errors.New("Invalid token")
	}
	if !claims.Role.Valid() {
		return nil, errors.New("Invalid token")
	}
	return claims, nil
}

func attachIdentity(c *gin.Context, claims *utils.Claims) {
	c.Set(utils.CtxUserID, claims.UserID)
	c.Set(utils.CtxRole, claims.Role)
	c.Set(utils.CtxEmail, claims.Email)
}

func roleAllowed(role entity.Role, allowed []entity.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
