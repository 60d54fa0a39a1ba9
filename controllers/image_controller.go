// controllers/image_controller.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/niksankarkee/restosaas-sub000/pkg/resp"
	"github.com/niksankarkee/restosaas-sub000/services"
)

type ImageController struct {
	Service     *services.ImageService
	Restaurants *services.RestaurantService
}

func NewImageController(s *services.ImageService, restaurants *services.RestaurantService) *ImageController {
	return &ImageController{Service: s, Restaurants: restaurants}
}

type AddImageRequest struct {
	Image string `json:"image" binding:"required"` // base64, optionally data: prefixed
}

// GET /partner/restaurant/image
func (ctl *ImageController) List(c *gin.Context) {
	rest, ok := ownedRestaurant(c, ctl.Restaurants)
	if !ok {
		return
	}
	images, err := ctl.Service.List(rest.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": images})
}

// POST /partner/restaurant/image
func (ctl *ImageController) Add(c *gin.Context) {
	rest, ok := ownedRestaurant(c, ctl.Restaurants)
	if !ok {
		return
	}

	var req AddImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	img, err := ctl.Service.AddBase64(rest.ID, req.Image)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, img)
}

// DELETE /partner/restaurant/image/:id
func (ctl *ImageController) Remove(c *gin.Context) {
	rest, ok := ownedRestaurant(c, ctl.Restaurants)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "bad image id")
		return
	}

	if err := ctl.Service.Remove(rest.ID, uint(id)); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// PATCH /partner/restaurant/image/:id/main
func (ctl *ImageController) SetMain(c *gin.Context) {
	rest, ok := ownedRestaurant(c, ctl.Restaurants)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "bad image id")
		return
	}

	if err := ctl.Service.SetMain(rest.ID, uint(id)); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"mainImageId": id})
}
