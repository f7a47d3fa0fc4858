package handlers

import (
	"github.com/gin-gonic/gin"

	"nagarsetu/internal/shared/authorization"
	"nagarsetu/internal/shared/constants"
)

// currentUserID extracts the authenticated caller's ID set by the auth
// middleware. The second return is false for anonymous requests.
func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	if !ok || userID == 0 {
		return 0, false
	}
	return userID, true
}

func isStaff(c *gin.Context) bool {
	role := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))
	return role.IsStaff()
}
