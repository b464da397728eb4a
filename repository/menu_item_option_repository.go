// repository/menu_item_option_repository.go
package repository

import (
	"gorm.io/gorm"

	"backend/entity"
	"backend/pkg/cache"
)

// MenuItemOptionRepository is the storage boundary for options. It shares the
// menu cache with MenuItemRepository: any option write changes some item's
// option collection, so both repositories evict the same listing.
type MenuItemOptionRepository struct {
	DB    *gorm.DB
	Cache *cache.List[entity.MenuItem]
}

func NewMenuItemOptionRepository(db *gorm.DB, c *cache.List[entity.MenuItem]) *MenuItemOptionRepository {
	return &MenuItemOptionRepository{DB: db, Cache: c}
}

func (r *MenuItemOptionRepository) FindByID(id uint) (*entity.MenuItemOption, error) {
	return FindOrThrow[entity.MenuItemOption](r.DB, id)
}

func (r *MenuItemOptionRepository) Save(option *entity.MenuItemOption) error {
	defer r.Cache.InvalidateAll()
	return r.DB.Save(option).Error
}

// DetachAndDelete clears the option's back-reference, persists that state,
// and only then deletes the row. The cascade configuration on the owning side
// makes deleting a still-attached option unsafe, so the two steps are fused
// into one transactional operation instead of being left to callers.
func (r *MenuItemOptionRepository) DetachAndDelete(option *entity.MenuItemOption) error {
	defer r.Cache.InvalidateAll()
	return r.DB.Transaction(func(tx *gorm.DB) error {
		option.MenuItem = nil
		option.MenuItemID = nil
		if err := tx.Model(option).Update("menu_item_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(option).Error
	})
}
