package auth

import (
	"github.com/AdsulPratik2004/calendar-split-and-automation/internal/store"
	"github.com/gin-gonic/gin"
)

// Context keys set by Guard for downstream handlers
const (
	ContextIdentityKey = "auth_identity"
	ContextHandleKey   = "auth_handle"
)

// Guard is a middleware that authorizes the request through the resolver and
// stashes the resolved Identity and data handle in the request context.
func Guard(r *Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, handle, authErr := r.Resolve(c.Request.Context(), c.GetHeader("Authorization"))
		if authErr != nil {
			c.AbortWithStatusJSON(authErr.Status, gin.H{"error": authErr.Message})
			return
		}

		c.Set(ContextIdentityKey, identity)
		c.Set(ContextHandleKey, handle)
		c.Next()
	}
}

// IdentityFrom returns the Identity stored by Guard
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(ContextIdentityKey)
	if !ok {
		return Identity{}, false
	}
	identity, ok := v.(Identity)
	return identity, ok
}

// HandleFrom returns the data handle stored by Guard
func HandleFrom(c *gin.Context) (store.Handle, bool) {
	v, ok := c.Get(ContextHandleKey)
	if !ok {
		return nil, false
	}
	handle, ok := v.(store.Handle)
	return handle, ok
}
