package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jkimani/platepal-api/controllers"
	"github.com/jkimani/platepal-api/initializers"
	"github.com/jkimani/platepal-api/routes"
	"github.com/jkimani/platepal-api/services"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(os.Getenv("CORS_ORIGINS"), ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	images, err := services.NewS3ImageStore(context.Background())
	if err != nil {
		log.Fatal("Failed to configure image store: ", err)
	}
	mailer := services.NewSMTPMailer("templates")
	payments := services.NewHostedCheckoutClient()

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, controllers.NewAuthController(mailer, images))
	routes.ResturantRoutes(server, controllers.NewResturantController(images))
	routes.MenuRoutes(server, controllers.NewMenuController(images))
	routes.OrderRoutes(server, controllers.NewOrderController(payments))

	server.Run()
}
