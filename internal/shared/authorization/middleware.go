package authorization

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextKeyActor is the gin context key under which the auth middleware
// stores the resolved Actor.
const ContextKeyActor = "actor"

// ActorFromContext returns the authenticated actor stored by the auth
// middleware.
func ActorFromContext(c *gin.Context) (Actor, bool) {
	v, ok := c.Get(ContextKeyActor)
	if !ok {
		return Actor{}, false
	}
	actor, ok := v.(Actor)
	return actor, ok
}

// RequireRoles aborts with 403 unless the authenticated actor holds one
// of the given roles. The role gate runs before the handler, so for
// mutation endpoints an unauthorized role is rejected before any
// existence check.
func RequireRoles(roles ...UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			c.Abort()
			return
		}

		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}

		names := make([]string, len(roles))
		for i, role := range roles {
			names[i] = role.String()
		}
		c.JSON(http.StatusForbidden, gin.H{
			"error": fmt.Sprintf("access denied, required role(s): %s", strings.Join(names, ", ")),
		})
		c.Abort()
	}
}
