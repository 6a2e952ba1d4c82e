package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/gaurisonawane07/StoreRater/entity"
)

// Identity keys set by the auth middlewares.
const (
	CtxUserID = "userId"
	CtxRole   = "role"
	CtxEmail  = "email"
)

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(CtxUserID)
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentRole(c *gin.Context) entity.Role {
	if v, ok := c.Get(CtxRole); ok {
		if r, ok := v.(entity.Role); ok {
			return r
		}
	}
	return ""
}

func CurrentEmail(c *gin.Context) string {
	if v, ok := c.Get(CtxEmail); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
