// repository/menu_item_repository.go
package repository

import (
	"errors"

	"gorm.io/gorm"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/cache"
)

// MenuItemRepository is the storage boundary for menu items. Reads of the
// full listing go through the shared menu cache; every write evicts it.
type MenuItemRepository struct {
	DB    *gorm.DB
	Cache *cache.List[entity.MenuItem]
}

func NewMenuItemRepository(db *gorm.DB, c *cache.List[entity.MenuItem]) *MenuItemRepository {
	return &MenuItemRepository{DB: db, Cache: c}
}

// FindOrThrow retrieves an entity by id, reporting a missing row as a 404.
// This is the only sanctioned way to turn "no such entity" into an error;
// field-level absence belongs to pkg/validate and maps to 400.
func FindOrThrow[E any](db *gorm.DB, id uint) (*E, error) {
	var e E
	if err := db.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Missing object with %d", id)
		}
		return nil, err
	}
	return &e, nil
}

func (r *MenuItemRepository) FindByID(id uint) (*entity.MenuItem, error) {
	return FindOrThrow[entity.MenuItem](r.DB.Preload("AllowedOptions"), id)
}

// FindAll serves the listing from the cache when possible and repopulates it
// otherwise.
func (r *MenuItemRepository) FindAll() ([]entity.MenuItem, error) {
	if items, ok := r.Cache.Get(); ok {
		return items, nil
	}
	var items []entity.MenuItem
	if err := r.DB.Preload("AllowedOptions").Find(&items).Error; err != nil {
		return nil, err
	}
	r.Cache.Put(items)
	return items, nil
}

// Save persists the item and anything it owns. Eviction is unconditional: a
// failed write still leaves the cache in doubt.
func (r *MenuItemRepository) Save(item *entity.MenuItem) error {
	defer r.Cache.InvalidateAll()
	return r.DB.Save(item).Error
}

// SaveAndFlush writes the item and all of its associations through, so a
// re-parented option is observable to reads within the same unit of work.
func (r *MenuItemRepository) SaveAndFlush(item *entity.MenuItem) error {
	defer r.Cache.InvalidateAll()
	return r.DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(item).Error
}
