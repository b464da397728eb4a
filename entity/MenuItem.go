package entity

import (
	"gorm.io/gorm"
)

// MenuItem is a sellable item with a base price. It exclusively owns its
// options: deleting an item cascades to them.
type MenuItem struct {
	gorm.Model
	Name      string  `json:"name"`
	ItemPrice float64 `json:"itemPrice" gorm:"not null"`

	AllowedOptions []MenuItemOption `json:"allowedOptions" gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`
}

// GetID marks MenuItem as a persisted entity (validate.Entity). An ID of zero
// means the item has not been saved yet and must not be used for identity.
func (m *MenuItem) GetID() uint {
	return m.ID
}
