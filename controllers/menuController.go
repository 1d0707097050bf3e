package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jkimani/platepal-api/initializers"
	"github.com/jkimani/platepal-api/middlewares"
	"github.com/jkimani/platepal-api/models"
	"github.com/jkimani/platepal-api/services"
)

type MenuController struct {
	images services.ImageStore
}

func NewMenuController(images services.ImageStore) *MenuController {
	return &MenuController{images: images}
}

// AddMenu creates a menu item and appends it to the caller's restaurant
// reference list.
func (m *MenuController) AddMenu(ctx *gin.Context) {
	var resturant models.Resturant
	if result := initializers.DB.Where("user_id = ?", middlewares.GetUserID(ctx)).
		First(&resturant); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Create a restaurant before adding menus")
		return
	}

	name := ctx.PostForm("name")
	description := ctx.PostForm("description")
	price, err := strconv.Atoi(ctx.PostForm("price"))
	if name == "" || description == "" || err != nil || price <= 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Image is required")
		return
	}

	imageURL, err := m.images.UploadFile(ctx.Request.Context(), file)
	if err != nil {
		log.Println("Image upload error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to upload image")
		return
	}

	menu := models.Menu{
		Name:        name,
		Description: description,
		Price:       price,
		Image:       imageURL,
	}
	if result := initializers.DB.Create(&menu); result.Error != nil {
		log.Println("Menu creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := initializers.DB.Model(&resturant).Association("Menus").Append(&menu); err != nil {
		log.Println("Error linking menu to restaurant:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"success": true,
		"message": "Menu added successfully",
		"menu":    menu,
	})
}

// EditMenu updates fields of a menu item in place; image optional
func (m *MenuController) EditMenu(ctx *gin.Context) {
	menuID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse menu id")
		return
	}

	var menu models.Menu
	if result := initializers.DB.First(&menu, menuID); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Menu not found")
		return
	}

	if name := ctx.PostForm("name"); name != "" {
		menu.Name = name
	}
	if description := ctx.PostForm("description"); description != "" {
		menu.Description = description
	}
	if rawPrice := ctx.PostForm("price"); rawPrice != "" {
		price, err := strconv.Atoi(rawPrice)
		if err != nil || price <= 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}
		menu.Price = price
	}

	if file, err := ctx.FormFile("image"); err == nil {
		imageURL, err := m.images.UploadFile(ctx.Request.Context(), file)
		if err != nil {
			log.Println("Image upload error:", err)
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to upload image")
			return
		}
		menu.Image = imageURL
	}

	if result := initializers.DB.Save(&menu); result.Error != nil {
		log.Println("Menu update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Menu updated",
		"menu":    menu,
	})
}
