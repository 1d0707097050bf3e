package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jkimani/platepal-api/initializers"
	"github.com/jkimani/platepal-api/models"
)

// RequireOperator allows only users holding the operator role. The role is
// persisted on the user record (set when they create a restaurant) rather
// than inferred from a restaurant lookup on every request.
func RequireOperator() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var user models.User
		if err := initializers.DB.First(&user, GetUserID(ctx)).Error; err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not found"})
			return
		}

		if user.Role != models.RoleOperator {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Operator access required"})
			return
		}

		ctx.Next()
	}
}
