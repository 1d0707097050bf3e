package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jkimani/platepal-api/initializers"
	"github.com/jkimani/platepal-api/middlewares"
	"github.com/jkimani/platepal-api/models"
	"github.com/jkimani/platepal-api/services"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ResturantController struct {
	images services.ImageStore
}

func NewResturantController(images services.ImageStore) *ResturantController {
	return &ResturantController{images: images}
}

// parseCuisines validates the multipart "cuisines" field, a JSON array of
// strings, and returns it as a JSON column value.
func parseCuisines(raw string) (datatypes.JSON, error) {
	var cuisines []string
	if err := json.Unmarshal([]byte(raw), &cuisines); err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// CreateResturant registers the caller's restaurant. One per user.
func (r *ResturantController) CreateResturant(ctx *gin.Context) {
	userID := middlewares.GetUserID(ctx)

	var existing models.Resturant
	if err := initializers.DB.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Restaurant already exists for this user")
		return
	}

	resturantName := ctx.PostForm("resturantName")
	city := ctx.PostForm("city")
	deliveryTime, _ := strconv.Atoi(ctx.PostForm("deliveryTime"))
	if resturantName == "" || city == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	cuisines, err := parseCuisines(ctx.PostForm("cuisines"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	file, err := ctx.FormFile("imageFile")
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Image is required")
		return
	}

	imageURL, err := r.images.UploadFile(ctx.Request.Context(), file)
	if err != nil {
		log.Println("Image upload error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to upload image")
		return
	}

	resturant := models.Resturant{
		UserID:        userID,
		ResturantName: resturantName,
		City:          city,
		DeliveryTime:  deliveryTime,
		Cuisines:      cuisines,
		ImageURL:      imageURL,
	}
	if result := initializers.DB.Create(&resturant); result.Error != nil {
		log.Println("Restaurant creation error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	// Owning a restaurant makes the user an operator.
	if result := initializers.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("role", models.RoleOperator); result.Error != nil {
		log.Println("Error promoting user to operator:", result.Error)
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"success": true, "message": "Restaurant added"})
}

// GetResturant returns the caller's own restaurant with its menus
func (r *ResturantController) GetResturant(ctx *gin.Context) {
	var resturant models.Resturant
	result := initializers.DB.Preload("Menus").
		Where("user_id = ?", middlewares.GetUserID(ctx)).
		First(&resturant)
	if result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Restaurant not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "resturant": resturant})
}

// UpdateResturant edits the caller's restaurant, image optional
func (r *ResturantController) UpdateResturant(ctx *gin.Context) {
	var resturant models.Resturant
	result := initializers.DB.Where("user_id = ?", middlewares.GetUserID(ctx)).First(&resturant)
	if result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Restaurant not found")
		return
	}

	cuisines, err := parseCuisines(ctx.PostForm("cuisines"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	resturant.ResturantName = ctx.PostForm("resturantName")
	resturant.City = ctx.PostForm("city")
	resturant.DeliveryTime, _ = strconv.Atoi(ctx.PostForm("deliveryTime"))
	resturant.Cuisines = cuisines

	if file, err := ctx.FormFile("imageFile"); err == nil {
		imageURL, err := r.images.UploadFile(ctx.Request.Context(), file)
		if err != nil {
			log.Println("Image upload error:", err)
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to upload image")
			return
		}
		resturant.ImageURL = imageURL
	}

	if result := initializers.DB.Save(&resturant); result.Error != nil {
		log.Println("Restaurant update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Restaurant updated", "resturant": resturant})
}

// GetSingleResturant returns one restaurant by id, newest menus first
func (r *ResturantController) GetSingleResturant(ctx *gin.Context) {
	resturantID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse restaurant id")
		return
	}

	var resturant models.Resturant
	result := initializers.DB.
		Preload("Menus", func(db *gorm.DB) *gorm.DB {
			return db.Order("menus.created_at DESC")
		}).
		First(&resturant, resturantID)
	if result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Restaurant not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "resturant": resturant})
}

// GetResturantOrders lists orders placed with the caller's restaurant
func (r *ResturantController) GetResturantOrders(ctx *gin.Context) {
	var resturant models.Resturant
	result := initializers.DB.Where("user_id = ?", middlewares.GetUserID(ctx)).First(&resturant)
	if result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Restaurant not found")
		return
	}

	var orders []models.Order
	if result := initializers.DB.Preload("Resturant").
		Where("resturant_id = ?", resturant.ID).
		Order("created_at DESC").
		Find(&orders); result.Error != nil {
		log.Println("Error fetching restaurant orders:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "orders": orders})
}

// UpdateOrderStatus moves an order to one of the five statuses. Only the
// operator of the restaurant the order belongs to may do this; the cart
// snapshot and delivery details are left untouched.
func (r *ResturantController) UpdateOrderStatus(ctx *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if !models.ValidOrderStatus(body.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order status")
		return
	}

	orderID, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var resturant models.Resturant
	if result := initializers.DB.Where("user_id = ?", middlewares.GetUserID(ctx)).
		First(&resturant); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Restaurant not found")
		return
	}

	var order models.Order
	if result := initializers.DB.First(&order, orderID); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	if order.ResturantID != resturant.ID {
		sendErrorResponse(ctx, http.StatusForbidden, "This order does not belong to your restaurant")
		return
	}

	if result := initializers.DB.Model(&order).Update("status", body.Status); result.Error != nil {
		log.Println("Error updating order status:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Status updated"})
}

// SearchResturant combines a name/city match, a name/cuisine match and a
// cuisine membership filter. The two text filters union; the cuisine list
// narrows the result. No match is an empty list, not an error.
func (r *ResturantController) SearchResturant(ctx *gin.Context) {
	searchText := ctx.Param("searchText")
	searchQuery := ctx.Query("searchQuery")

	var selectedCuisines []string
	for _, c := range strings.Split(ctx.Query("selectedCuisines"), ",") {
		if c = strings.TrimSpace(c); c != "" {
			selectedCuisines = append(selectedCuisines, c)
		}
	}

	var conds []string
	var args []any
	if searchText != "" {
		conds = append(conds, "(resturant_name LIKE ? OR city LIKE ?)")
		pattern := "%" + searchText + "%"
		args = append(args, pattern, pattern)
	}
	if searchQuery != "" {
		conds = append(conds, "(resturant_name LIKE ? OR cuisines LIKE ?)")
		pattern := "%" + searchQuery + "%"
		args = append(args, pattern, pattern)
	}

	query := initializers.DB.Model(&models.Resturant{})
	if len(conds) > 0 {
		query = query.Where(strings.Join(conds, " OR "), args...)
	}

	var resturants []models.Resturant
	if result := query.Find(&resturants); result.Error != nil {
		log.Println("Restaurant search error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if len(selectedCuisines) > 0 {
		resturants = filterByCuisines(resturants, selectedCuisines)
	}
	if resturants == nil {
		resturants = []models.Resturant{}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": resturants})
}

// filterByCuisines keeps restaurants whose cuisine set intersects wanted.
// Membership is checked in-process; the candidate sets are small and JSON
// array queries are not portable across the mysql and sqlite drivers.
func filterByCuisines(resturants []models.Resturant, wanted []string) []models.Resturant {
	wantedSet := make(map[string]bool, len(wanted))
	for _, c := range wanted {
		wantedSet[strings.ToLower(c)] = true
	}

	var filtered []models.Resturant
	for _, resturant := range resturants {
		var cuisines []string
		if err := json.Unmarshal(resturant.Cuisines, &cuisines); err != nil {
			continue
		}
		for _, c := range cuisines {
			if wantedSet[strings.ToLower(c)] {
				filtered = append(filtered, resturant)
				break
			}
		}
	}
	return filtered
}
