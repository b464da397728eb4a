package entity

import (
	"gorm.io/gorm"
)

// MenuItemOption is an add-on priced relative to its owning item. The FK is
// nullable on purpose: deleting an option requires persisting a cleared
// back-reference first (see repository.DetachAndDelete).
type MenuItemOption struct {
	gorm.Model
	MenuItemID *uint     `json:"menuItemId"`
	MenuItem   *MenuItem `json:"-" gorm:"foreignKey:MenuItemID"` // back-reference, never serialized
	Name       string    `json:"name"`
	DeltaPrice float64   `json:"deltaPrice" gorm:"not null"`
}

// GetID marks MenuItemOption as a persisted entity (validate.Entity).
func (o *MenuItemOption) GetID() uint {
	return o.ID
}
