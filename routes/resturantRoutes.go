package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jkimani/platepal-api/controllers"
	"github.com/jkimani/platepal-api/middlewares"
)

func ResturantRoutes(server *gin.Engine, resturant *controllers.ResturantController) {
	group := server.Group("/api/v1/resturant", middlewares.RequireAuth())
	{
		group.POST("", resturant.CreateResturant)
		group.GET("", resturant.GetResturant)
		group.PUT("", resturant.UpdateResturant)
		group.GET("/order", middlewares.RequireOperator(), resturant.GetResturantOrders)
		group.PUT("/order/:orderId/status", middlewares.RequireOperator(), resturant.UpdateOrderStatus)
		group.GET("/search/:searchText", resturant.SearchResturant)
		group.GET("/:id", resturant.GetSingleResturant)
	}
}
