package middleware

import (
	"dossier_service/internal/domain/entities"
	"dossier_service/pkg"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const actorKey = "actor"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)

// Auth decodes the bearer token into an Actor. The token must be HMAC-signed with secret
// and carry the user id in "sub"; "role" defaults to client.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c, "missing or malformed authorization header")
			return
		}
		if len(secret) == 0 {
			abortUnauthorized(c, "JWT_SECRET not configured")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, fmt.Sprintf("invalid token: %v", err))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "invalid token claims")
			return
		}
		sub, err := claims.GetSubject()
		if err != nil || strings.TrimSpace(sub) == "" {
			abortUnauthorized(c, "token without subject")
			return
		}

		role := entities.RoleClient
		if r, ok := claims["role"].(string); ok && r != "" {
			role = entities.Role(strings.ToLower(r))
		}

		c.Set(actorKey, entities.Actor{UserID: sub, Role: role})
		c.Next()
	}
}

// ActorFromContext returns the authenticated actor, or a zero Actor on public routes.
func ActorFromContext(c *gin.Context) entities.Actor {
	v, ok := c.Get(actorKey)
	if !ok {
		return entities.Actor{}
	}
	actor, _ := v.(entities.Actor)
	return actor
}

func abortUnauthorized(c *gin.Context, reason string) {
	log.Printf("[auth][middleware] rejected path=%s reason=%q", c.FullPath(), reason)
	c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
}
