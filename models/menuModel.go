package models

import "gorm.io/gorm"

// Menu price is in the smallest currency unit.
type Menu struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
}
