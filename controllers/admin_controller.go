package controllers

import (
	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/pkg/apperr"
	"backend/pkg/resp"
	"backend/pkg/validate"
	"backend/services"
)

// AdminController serves the mutating endpoints.
type AdminController struct {
	Engine *services.DataEngine
}

func NewAdminController(engine *services.DataEngine) *AdminController {
	return &AdminController{Engine: engine}
}

// POST /admin/menuItem
func (ctl *AdminController) AddMenuItem(c *gin.Context) {
	resp.ServeCreated(c, func() (uint, error) {
		var dto models.MenuItemDto
		if err := c.ShouldBindJSON(&dto); err != nil {
			return 0, apperr.BadRequest("%s", err.Error())
		}
		return ctl.Engine.AddMenuItemFromDto(&dto)
	})
}

// POST /admin/menuItem/:menuItemId/option
func (ctl *AdminController) AddMenuItemOption(c *gin.Context) {
	resp.ServeCreated(c, func() (uint, error) {
		menuItemID, err := validate.DecodeUint(c.Param("menuItemId"))
		if err != nil {
			return 0, err
		}
		var dto models.MenuItemOptionDto
		if err := c.ShouldBindJSON(&dto); err != nil {
			return 0, apperr.BadRequest("%s", err.Error())
		}
		return ctl.Engine.AddOption(menuItemID, &dto)
	})
}

// POST /admin/option
func (ctl *AdminController) AddNewMenuItemOption(c *gin.Context) {
	resp.ServeCreated(c, func() (uint, error) {
		var dto models.MenuItemOptionDto
		if err := c.ShouldBindJSON(&dto); err != nil {
			return 0, apperr.BadRequest("%s", err.Error())
		}
		return ctl.Engine.CreateNewOption(&dto)
	})
}

// DELETE /admin/option/:optionId
func (ctl *AdminController) DeleteOption(c *gin.Context) {
	resp.ServeOK(c, func() (gin.H, error) {
		optionID, err := validate.DecodeUint(c.Param("optionId"))
		if err != nil {
			return nil, err
		}
		if err := ctl.Engine.DeleteByID(optionID); err != nil {
			return nil, err
		}
		return gin.H{"message": "option deleted"}, nil
	})
}

// PUT /admin/menuItem/:menuItemId/option/:optionId
func (ctl *AdminController) AddOptionToMenuItem(c *gin.Context) {
	resp.ServeOK(c, func() (gin.H, error) {
		menuItemID, err := validate.DecodeUint(c.Param("menuItemId"))
		if err != nil {
			return nil, err
		}
		optionID, err := validate.DecodeUint(c.Param("optionId"))
		if err != nil {
			return nil, err
		}
		if err := ctl.Engine.AddOptionToItem(optionID, menuItemID); err != nil {
			return nil, err
		}
		return gin.H{"message": "option added to menu item"}, nil
	})
}
