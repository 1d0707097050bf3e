package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "outForDelivery"
	StatusDelivered      = "delivered"
)

var orderStatuses = map[string]bool{
	StatusPending:        true,
	StatusConfirmed:      true,
	StatusPreparing:      true,
	StatusOutForDelivery: true,
	StatusDelivered:      true,
}

// ValidOrderStatus reports whether s is one of the five order statuses.
func ValidOrderStatus(s string) bool {
	return orderStatuses[s]
}

type DeliveryDetails struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
}

// CartItem is one line of the cart as submitted at checkout. The client
// sends display fields too, but Price on the wire is never trusted for
// billing; the catalog row wins.
type CartItem struct {
	MenuID   uint   `json:"menuId" binding:"required"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// Order records a purchase. CartItems is a denormalized snapshot taken at
// checkout time and is never rewritten afterwards, whatever happens to the
// catalog. Orders are never deleted.
type Order struct {
	gorm.Model
	UserID            uint            `json:"userId" gorm:"index"`
	ResturantID       uint            `json:"resturantId" gorm:"index"`
	Resturant         Resturant       `json:"resturant,omitempty" gorm:"foreignKey:ResturantID"`
	DeliveryDetails   DeliveryDetails `json:"deliveryDetails" gorm:"embedded;embeddedPrefix:delivery_"`
	CartItems         datatypes.JSON  `json:"cartItems"`
	TotalAmount       int             `json:"totalAmount"`
	Status            string          `json:"status"`
	Reference         string          `json:"reference" gorm:"index"`
	PaymentSessionID  string          `json:"-"`
	PaymentSessionURL string          `json:"-"`
	IdempotencyKey    string          `json:"-" gorm:"index"`
}
