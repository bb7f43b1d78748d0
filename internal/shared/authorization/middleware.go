package authorization

import (
	"github.com/gin-gonic/gin"
)

const ContextKeyUserRole = "user_role"

// RequireTechnician admits technicians and administrators.
func RequireTechnician() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString(ContextKeyUserRole))
		if !role.IsTechnician() {
			c.JSON(403, gin.H{
				"error": "technician access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
