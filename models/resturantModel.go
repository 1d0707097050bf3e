package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Resturant keeps the wire spelling used by the frontend. Menus is a
// one-directional reference list: a menu row does not know which
// restaurant(s) point at it.
type Resturant struct {
	gorm.Model
	UserID        uint           `json:"userId" gorm:"index"`
	ResturantName string         `json:"resturantName"`
	City          string         `json:"city"`
	DeliveryTime  int            `json:"deliveryTime"`
	Cuisines      datatypes.JSON `json:"cuisines"`
	ImageURL      string         `json:"imageUrl"`
	Menus         []Menu         `json:"menus" gorm:"many2many:resturant_menus"`
}
