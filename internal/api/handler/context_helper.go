package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"minasle/backend/internal/api/middleware"
)

// currentUserID returns the authenticated user's id. Only valid behind
// JWTAuth.
func currentUserID(c *gin.Context) uint {
	v, _ := c.Get(middleware.CtxUserID)
	id, _ := v.(uint)
	return id
}

// currentTipoUsuario returns the authenticated user's role.
func currentTipoUsuario(c *gin.Context) string {
	return c.GetString(middleware.CtxTipoUsuario)
}

// paramUint parses a numeric path parameter. The second return value is
// false for absent or non-numeric values.
func paramUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
