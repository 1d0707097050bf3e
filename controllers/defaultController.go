package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the PlatePal API.

The following are the endpoints for this API:

USER
- POST "/api/v1/user/signup" - Create user account
- POST "/api/v1/user/login" - Access user account
- POST "/api/v1/user/verify-email" - Verify account with emailed code
- POST "/api/v1/user/logout" - Clear the session
- POST "/api/v1/user/forgot-password" - Request password reset
- POST "/api/v1/user/reset-password/:resetToken" - Reset user password
- GET  "/api/v1/user/check-auth" - Current user profile
- PUT  "/api/v1/user/profile/update" - Update profile

RESTURANT
- POST "/api/v1/resturant" - Create restaurant (multipart, one per user)
- GET  "/api/v1/resturant" - Get own restaurant
- PUT  "/api/v1/resturant" - Update own restaurant
- GET  "/api/v1/resturant/:id" - Get restaurant by ID
- GET  "/api/v1/resturant/search/:searchText" - Search restaurants
- GET  "/api/v1/resturant/order" - Orders for own restaurant
- PUT  "/api/v1/resturant/order/:orderId/status" - Update order status

MENU
- POST "/api/v1/menu" - Add menu item (multipart)
- PUT  "/api/v1/menu/:id" - Edit menu item

ORDER
- GET  "/api/v1/order" - Own orders
- POST "/api/v1/order/checkout/create-checkout-session" - Start checkout`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
