package middleware

import "github.com/gin-gonic/gin"

// clientIDKey is the key used to store the authenticated client's ID.
// Using a custom type prevents collisions.
const clientIDKey = contextKey("clientID")

// GetClientIDFromContext retrieves the authenticated client ID from the
// request context. It returns the ID and a boolean indicating if it was found.
func GetClientIDFromContext(c *gin.Context) (string, bool) {
	clientIDVal := c.Request.Context().Value(clientIDKey)
	if clientIDVal == nil {
		return "", false
	}
	clientID, ok := clientIDVal.(string)
	return clientID, ok
}
