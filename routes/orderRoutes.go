package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jkimani/platepal-api/controllers"
	"github.com/jkimani/platepal-api/middlewares"
)

func OrderRoutes(server *gin.Engine, order *controllers.OrderController) {
	group := server.Group("/api/v1/order", middlewares.RequireAuth())
	{
		group.GET("", order.GetOrders)
		group.POST("/checkout/create-checkout-session", order.CreateCheckoutSession)
	}
}
