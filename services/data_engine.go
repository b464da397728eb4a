// services/data_engine.go
package services

import (
	"backend/entity"
	"backend/models"
	"backend/pkg/validate"
	"backend/repository"
)

// DataEngine mediates between wire DTOs and persisted entities. It validates
// untrusted input before anything touches storage, converts DTOs into
// entities, wires the parent/child back-references conversion cannot produce,
// and drives the repositories. Every failure it returns is an apperr value,
// so controllers never have to interpret raw storage errors.
type DataEngine struct {
	Items   *repository.MenuItemRepository
	Options *repository.MenuItemOptionRepository
}

func NewDataEngine(items *repository.MenuItemRepository, options *repository.MenuItemOptionRepository) *DataEngine {
	return &DataEngine{Items: items, Options: options}
}

// GetMenuItemDto returns the item with the given id, or a 404.
func (e *DataEngine) GetMenuItemDto(id uint) (*models.MenuItemDto, error) {
	item, err := e.Items.FindByID(id)
	if err != nil {
		return nil, err
	}
	dto := dtoFromMenuItem(item)
	return &dto, nil
}

// GetAllMenuItems returns one DTO per stored item, in storage order.
func (e *DataEngine) GetAllMenuItems() ([]models.MenuItemDto, error) {
	items, err := e.Items.FindAll()
	if err != nil {
		return nil, err
	}
	dtos := make([]models.MenuItemDto, 0, len(items))
	for i := range items {
		dtos = append(dtos, dtoFromMenuItem(&items[i]))
	}
	return dtos, nil
}

// AddMenuItemFromDto creates an item together with its options in one request
// and returns the generated id. All validation runs before any persistence,
// so a bad nested option never leaves a partial item behind.
func (e *DataEngine) AddMenuItemFromDto(dto *models.MenuItemDto) (uint, error) {
	for i := range dto.AllowedOptions {
		option := &dto.AllowedOptions[i]
		if _, err := validate.ConfirmNotEmpty(option.Name, "MenuItemOptionDto.Name"); err != nil {
			return 0, err
		}
		if _, err := validate.ConfirmNotNil(option.DeltaPrice, "MenuItemOptionDto.deltaPrice"); err != nil {
			return 0, err
		}
		if err := validate.ConfirmNil(option.Id, "MenuItemOptionDto.ID"); err != nil {
			return 0, err
		}
	}
	if _, err := validate.ConfirmNotEmpty(dto.Name, "MenuItemDto.Name"); err != nil {
		return 0, err
	}
	if _, err := validate.ConfirmNotNil(dto.ItemPrice, "MenuItemDto.itemPrice"); err != nil {
		return 0, err
	}
	if err := validate.ConfirmNil(dto.Id, "MenuItemDto.ID"); err != nil {
		return 0, err
	}

	item := menuItemFromDto(dto)
	if err := e.Items.Save(item); err != nil {
		return 0, err
	}
	return item.ID, nil
}

// AddOption attaches a new option to an existing item and returns the new
// option's id.
func (e *DataEngine) AddOption(menuItemID uint, dto *models.MenuItemOptionDto) (uint, error) {
	option, err := e.validateOptionDto(dto)
	if err != nil {
		return 0, err
	}
	item, err := e.Items.FindByID(menuItemID)
	if err != nil {
		return 0, err
	}
	option.MenuItem = item
	option.MenuItemID = &item.ID
	if err := e.Options.Save(option); err != nil {
		return 0, err
	}
	return option.ID, nil
}

// CreateNewOption creates a standalone option, not yet attached to any item,
// and returns its id.
func (e *DataEngine) CreateNewOption(dto *models.MenuItemOptionDto) (uint, error) {
	option, err := e.validateOptionDto(dto)
	if err != nil {
		return 0, err
	}
	if err := e.Options.Save(option); err != nil {
		return 0, err
	}
	return option.ID, nil
}

func (e *DataEngine) validateOptionDto(dto *models.MenuItemOptionDto) (*entity.MenuItemOption, error) {
	if _, err := validate.ConfirmNotEmpty(dto.Name, "MenuItemOptionDto.Name"); err != nil {
		return nil, err
	}
	if _, err := validate.ConfirmNotNil(dto.DeltaPrice, "MenuItemOptionDto.deltaPrice"); err != nil {
		return nil, err
	}
	if err := validate.ConfirmNil(dto.Id, "MenuItemOptionDto.ID"); err != nil {
		return nil, err
	}
	option := optionFromDto(dto)
	return &option, nil
}

// DeleteByID removes an option. The detach step is fused into the repository
// call, so the unsafe delete-while-attached state cannot be reached from
// here.
func (e *DataEngine) DeleteByID(optionID uint) error {
	option, err := e.Options.FindByID(optionID)
	if err != nil {
		return err
	}
	return e.Options.DetachAndDelete(option)
}

// AddOptionToItem re-parents an existing option onto an item and flushes the
// item side, so the new composition is observable to subsequent reads.
func (e *DataEngine) AddOptionToItem(optionID, menuItemID uint) error {
	item, err := e.Items.FindByID(menuItemID)
	if err != nil {
		return err
	}
	option, err := e.Options.FindByID(optionID)
	if err != nil {
		return err
	}
	option.MenuItem = item
	option.MenuItemID = &item.ID
	item.AllowedOptions = append(item.AllowedOptions, *option)
	return e.Items.SaveAndFlush(item)
}
