package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"minasle/backend/pkg/jwt"
	"minasle/backend/pkg/redis"
	"minasle/backend/pkg/response"
)

// TokenCookieName is the cookie the frontend receives on login. The API
// accepts the token from the Authorization header or from this cookie.
const TokenCookieName = "minasle_token"

// Context keys set by JWTAuth.
const (
	CtxUserID      = "user_id"
	CtxTipoUsuario = "tipo_usuario"
	CtxEscolaID    = "escola_id"
)

// ExtractToken pulls the raw token from the Authorization header, falling
// back to the auth cookie. Empty string when neither is present.
func ExtractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookie, err := c.Cookie(TokenCookieName); err == nil {
		return cookie
	}
	return ""
}

// JWTAuth verifies the access token and injects the caller's identity into
// the request context. rdb may be nil; revocation checks are then skipped.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ExtractToken(c)
		if tokenString == "" {
			response.Unauthorized(c, "Autenticação necessária")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(tokenString)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				response.Unauthorized(c, "Token expirado")
			} else {
				response.Unauthorized(c, "Token inválido")
			}
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, "Token revogado")
				c.Abort()
				return
			}
			// on Redis errors the token is accepted; expiry still bounds it
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxTipoUsuario, claims.TipoUsuario)
		c.Set(CtxEscolaID, claims.EscolaID)

		c.Next()
	}
}

// RoleAuth allows only callers whose role is in roles. Must run after
// JWTAuth.
func RoleAuth(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tipo := c.GetString(CtxTipoUsuario)
		for _, role := range roles {
			if tipo == role {
				c.Next()
				return
			}
		}
		response.Forbidden(c, "Permissão insuficiente")
		c.Abort()
	}
}
