package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jkimani/platepal-api/controllers"
	"github.com/jkimani/platepal-api/middlewares"
)

func AuthRoutes(server *gin.Engine, auth *controllers.AuthController) {
	user := server.Group("/api/v1/user")
	{
		user.POST("/signup", auth.Signup)
		user.POST("/login", auth.Login)
		user.POST("/verify-email", auth.VerifyEmail)
		user.POST("/logout", auth.Logout)
		user.POST("/forgot-password", auth.ForgotPassword)
		user.POST("/reset-password/:resetToken", auth.ResetPassword)
		user.GET("/check-auth", middlewares.RequireAuth(), auth.CheckAuth)
		user.PUT("/profile/update", middlewares.RequireAuth(), auth.UpdateProfile)
	}
}
