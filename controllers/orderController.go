package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jkimani/platepal-api/initializers"
	"github.com/jkimani/platepal-api/middlewares"
	"github.com/jkimani/platepal-api/models"
	"github.com/jkimani/platepal-api/services"
	"gorm.io/datatypes"
)

// Countries the provider may collect a shipping address for.
var allowedShippingCountries = []string{"GB", "US", "CA"}

type CheckoutSessionRequest struct {
	CartItems       []models.CartItem      `json:"cartItems" binding:"required,min=1,dive"`
	DeliveryDetails models.DeliveryDetails `json:"deliveryDetails" binding:"required"`
	ResturantID     uint                   `json:"resturantId" binding:"required"`
	IdempotencyKey  string                 `json:"idempotencyKey"`
}

type OrderController struct {
	payments services.PaymentGateway
}

func NewOrderController(payments services.PaymentGateway) *OrderController {
	return &OrderController{payments: payments}
}

// GetOrders lists the caller's orders
func (o *OrderController) GetOrders(ctx *gin.Context) {
	var orders []models.Order
	result := initializers.DB.Preload("Resturant").
		Where("user_id = ?", middlewares.GetUserID(ctx)).
		Order("created_at DESC").
		Find(&orders)
	if result.Error != nil {
		log.Println("Error fetching orders:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "orders": orders})
}

// CreateCheckoutSession prices the cart against the live catalog, requests a
// hosted payment session and persists the pending order only once the
// provider has handed back a redirect URL. Line items are always priced from
// the catalog rows; the prices the client sent are ignored.
func (o *OrderController) CreateCheckoutSession(ctx *gin.Context) {
	userID := middlewares.GetUserID(ctx)

	var req CheckoutSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	// A retried checkout with the same key returns the session already
	// created instead of opening a second one.
	if req.IdempotencyKey != "" {
		var existing models.Order
		result := initializers.DB.
			Where("idempotency_key = ? AND user_id = ?", req.IdempotencyKey, userID).
			First(&existing)
		if result.Error == nil {
			sendJSONResponse(ctx, http.StatusOK, gin.H{
				"success": true,
				"session": services.Session{ID: existing.PaymentSessionID, RedirectURL: existing.PaymentSessionURL},
			})
			return
		}
	}

	var resturant models.Resturant
	if result := initializers.DB.Preload("Menus").First(&resturant, req.ResturantID); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Restaurant not found")
		return
	}

	menusByID := make(map[uint]models.Menu, len(resturant.Menus))
	for _, menu := range resturant.Menus {
		menusByID[menu.ID] = menu
	}

	// Every cart line must match a live menu of this restaurant before the
	// provider is contacted; one miss aborts the whole checkout.
	lineItems := make([]services.LineItem, 0, len(req.CartItems))
	metadataImages := make([]string, 0, len(req.CartItems))
	totalAmount := 0
	for _, cartItem := range req.CartItems {
		menu, ok := menusByID[cartItem.MenuID]
		if !ok {
			sendErrorResponse(ctx, http.StatusBadRequest, "Menu item not found")
			return
		}
		lineItems = append(lineItems, services.LineItem{
			Name:       menu.Name,
			Image:      menu.Image,
			UnitAmount: menu.Price,
			Quantity:   cartItem.Quantity,
		})
		metadataImages = append(metadataImages, menu.Image)
		totalAmount += menu.Price * cartItem.Quantity
	}

	snapshot, err := json.Marshal(req.CartItems)
	if err != nil {
		log.Println("Error encoding cart snapshot:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	order := models.Order{
		UserID:          userID,
		ResturantID:     resturant.ID,
		DeliveryDetails: req.DeliveryDetails,
		CartItems:       datatypes.JSON(snapshot),
		TotalAmount:     totalAmount,
		Status:          models.StatusPending,
		Reference:       uuid.NewString(),
		IdempotencyKey:  req.IdempotencyKey,
	}

	currency := os.Getenv("PAYMENT_CURRENCY")
	if currency == "" {
		currency = "usd"
	}

	session, err := o.payments.CreateCheckoutSession(ctx.Request.Context(), services.SessionParams{
		Reference:        order.Reference,
		Currency:         currency,
		LineItems:        lineItems,
		AllowedCountries: allowedShippingCountries,
		SuccessURL:       os.Getenv("FRONTEND_URL") + "/order/status",
		CancelURL:        os.Getenv("FRONTEND_URL") + "/cart",
		MetadataImages:   metadataImages,
	})
	if err != nil || session.RedirectURL == "" {
		// No session means no order row; the customer can simply retry.
		log.Println("Checkout session error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Error while creating session.")
		return
	}

	order.PaymentSessionID = session.ID
	order.PaymentSessionURL = session.RedirectURL
	if result := initializers.DB.Create(&order); result.Error != nil {
		// The provider session exists but the order write failed; keep the
		// session reference in the log so it can be reconciled by hand.
		log.Printf("Order persistence failed after session %s was created: %v", session.ID, result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "session": session})
}
