package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jkimani/platepal-api/controllers"
	"github.com/jkimani/platepal-api/middlewares"
)

func MenuRoutes(server *gin.Engine, menu *controllers.MenuController) {
	group := server.Group("/api/v1/menu", middlewares.RequireAuth(), middlewares.RequireOperator())
	{
		group.POST("", menu.AddMenu)
		group.PUT("/:id", menu.EditMenu)
	}
}
