// services/convert.go
package services

import (
	"backend/entity"
	"backend/models"
)

// menuItemFromDto converts one-directionally and then runs the back-reference
// fix-up. Conversion alone cannot populate the item/option cycle, so wiring
// the children is a named step rather than an incidental side effect.
func menuItemFromDto(dto *models.MenuItemDto) *entity.MenuItem {
	item := &entity.MenuItem{Name: dto.Name}
	if dto.ItemPrice != nil {
		item.ItemPrice = *dto.ItemPrice
	}
	for i := range dto.AllowedOptions {
		item.AllowedOptions = append(item.AllowedOptions, optionFromDto(&dto.AllowedOptions[i]))
	}
	wireOptions(item)
	return item
}

// wireOptions sets every option's back-reference to its owning item.
func wireOptions(item *entity.MenuItem) {
	for i := range item.AllowedOptions {
		item.AllowedOptions[i].MenuItem = item
	}
}

func optionFromDto(dto *models.MenuItemOptionDto) entity.MenuItemOption {
	option := entity.MenuItemOption{Name: dto.Name}
	if dto.DeltaPrice != nil {
		option.DeltaPrice = *dto.DeltaPrice
	}
	return option
}

func dtoFromMenuItem(item *entity.MenuItem) models.MenuItemDto {
	dto := models.MenuItemDto{
		Id:        ptr(item.ID),
		Name:      item.Name,
		ItemPrice: ptr(item.ItemPrice),
	}
	for i := range item.AllowedOptions {
		dto.AllowedOptions = append(dto.AllowedOptions, dtoFromOption(&item.AllowedOptions[i]))
	}
	return dto
}

func dtoFromOption(option *entity.MenuItemOption) models.MenuItemOptionDto {
	return models.MenuItemOptionDto{
		Id:         ptr(option.ID),
		Name:       option.Name,
		DeltaPrice: ptr(option.DeltaPrice),
	}
}

func ptr[T any](v T) *T {
	return &v
}
