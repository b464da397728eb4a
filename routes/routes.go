package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"backend/controllers"
	"backend/entity"
	"backend/pkg/cache"
	"backend/repository"
	"backend/services"
)

// RegisterRoutes wires repositories, the data engine, and the controllers
// onto the router. The menu listing cache is shared between both
// repositories so any write evicts it.
func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	menuCache := &cache.List[entity.MenuItem]{}
	items := repository.NewMenuItemRepository(db, menuCache)
	options := repository.NewMenuItemOptionRepository(db, menuCache)
	engine := services.NewDataEngine(items, options)

	menuItemCtrl := controllers.NewMenuItemController(engine)
	adminCtrl := controllers.NewAdminController(engine)

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Public reads
	r.GET("/menuItem/:id", menuItemCtrl.Get)
	r.GET("/menuItem", menuItemCtrl.GetAll)

	// Admin writes
	admin := r.Group("/admin")
	{
		admin.POST("/menuItem", adminCtrl.AddMenuItem)
		admin.POST("/menuItem/:menuItemId/option", adminCtrl.AddMenuItemOption)
		admin.POST("/option", adminCtrl.AddNewMenuItemOption)
		admin.DELETE("/option/:optionId", adminCtrl.DeleteOption)
		admin.PUT("/menuItem/:menuItemId/option/:optionId", adminCtrl.AddOptionToMenuItem)
	}
}
