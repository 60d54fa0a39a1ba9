// controllers/menu_controller.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/niksankarkee/restosaas-sub000/entity"
	"github.com/niksankarkee/restosaas-sub000/pkg/resp"
	"github.com/niksankarkee/restosaas-sub000/services"
)

// MenuController is the owner-facing menu CRUD; the public reads menus through
// the restaurant endpoints.
type MenuController struct {
	Service     *services.MenuService
	Restaurants *services.RestaurantService
}

func NewMenuController(s *services.MenuService, restaurants *services.RestaurantService) *MenuController {
	return &MenuController{Service: s, Restaurants: restaurants}
}

type CreateMenuRequest struct {
	MenuName     string `json:"menuName" binding:"required"`
	Detail       string `json:"detail"`
	Price        int64  `json:"price" binding:"min=0"` // cents
	Picture      string `json:"picture"`
	MenuTypeID   uint   `json:"menuTypeId" binding:"required"`
	MenuStatusID uint   `json:"menuStatusId" binding:"required"`
}

type UpdateMenuRequest struct {
	MenuName     string `json:"menuName"`
	Detail       string `json:"detail"`
	Price        *int64 `json:"price"`
	Picture      string `json:"picture"`
	MenuTypeID   uint   `json:"menuTypeId"`
	MenuStatusID uint   `json:"menuStatusId"`
}

// GET /partner/restaurant/menu
func (ctl *MenuController) List(c *gin.Context) {
	rest, ok := ownedRestaurant(c, ctl.Restaurants)
	if !ok {
		return
	}
	menus, err := ctl.Service.ListByRestaurant(rest.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": menus})
}

// POST /partner/restaurant/menu
func (ctl *MenuController) Create(c *gin.Context) {
	rest, ok := ownedRestaurant(c, ctl.Restaurants)
	if !ok {
		return
	}

	var req CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu := &entity.Menu{
		MenuName:     req.MenuName,
		Detail:       req.Detail,
		Price:        req.Price,
		Picture:      req.Picture,
		MenuTypeID:   req.MenuTypeID,
		MenuStatusID: req.MenuStatusID,
		RestaurantID: rest.ID,
	}
	if err := ctl.Service.Create(menu); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, menu)
}

// PATCH /partner/restaurant/menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	rest, ok := ownedRestaurant(c, ctl.Restaurants)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "bad menu id")
		return
	}

	existing, err := ctl.Service.Get(uint(id))
	if err != nil {
		resp.NotFound(c, "menu not found")
		return
	}
	if existing.RestaurantID != rest.ID {
		resp.Forbidden(c, "menu belongs to another restaurant")
		return
	}

	var req UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu, err := ctl.Service.Update(uint(id), func(m *entity.Menu) {
		if req.MenuName != "" {
			m.MenuName = req.MenuName
		}
		if req.Detail != "" {
			m.Detail = req.Detail
		}
		if req.Price != nil {
			m.Price = *req.Price
		}
		if req.Picture != "" {
			m.Picture = req.Picture
		}
		if req.MenuTypeID > 0 {
			m.MenuTypeID = req.MenuTypeID
		}
		if req.MenuStatusID > 0 {
			m.MenuStatusID = req.MenuStatusID
		}
	})
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, menu)
}

// DELETE /partner/restaurant/menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	rest, ok := ownedRestaurant(c, ctl.Restaurants)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "bad menu id")
		return
	}

	existing, err := ctl.Service.Get(uint(id))
	if err != nil {
		resp.NotFound(c, "menu not found")
		return
	}
	if existing.RestaurantID != rest.ID {
		resp.Forbidden(c, "menu belongs to another restaurant")
		return
	}

	if err := ctl.Service.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
