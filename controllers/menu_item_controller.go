package controllers

import (
	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/pkg/resp"
	"backend/pkg/validate"
	"backend/services"
)

// MenuItemController serves the public read endpoints.
type MenuItemController struct {
	Engine *services.DataEngine
}

func NewMenuItemController(engine *services.DataEngine) *MenuItemController {
	return &MenuItemController{Engine: engine}
}

// GET /menuItem/:id
func (ctl *MenuItemController) Get(c *gin.Context) {
	resp.ServeOK(c, func() (*models.MenuItemDto, error) {
		id, err := validate.DecodeUint(c.Param("id"))
		if err != nil {
			return nil, err
		}
		return ctl.Engine.GetMenuItemDto(id)
	})
}

// GET /menuItem
func (ctl *MenuItemController) GetAll(c *gin.Context) {
	resp.ServeOK(c, ctl.Engine.GetAllMenuItems)
}
