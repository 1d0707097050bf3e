package initializers

import (
	"log"

	"github.com/jkimani/platepal-api/models"
)

func SyncDatabase() {
	err := DB.AutoMigrate(&models.User{}, &models.Resturant{}, &models.Menu{}, &models.Order{})
	if err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
	log.Println("Database synced successfully.")
}
