// controllers/course_controller.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/niksankarkee/restosaas-sub000/entity"
	"github.com/niksankarkee/restosaas-sub000/pkg/resp"
	"github.com/niksankarkee/restosaas-sub000/services"
)

type CourseController struct {
	Service     *services.CourseService
	Restaurants *services.RestaurantService
}

func NewCourseController(s *services.CourseService, restaurants *services.RestaurantService) *CourseController {
	return &CourseController{Service: s, Restaurants: restaurants}
}

type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"min=0"` // cents
	IsActive    *bool  `json:"isActive"`
}

type UpdateCourseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       *int64 `json:"price"`
	IsActive    *bool  `json:"isActive"`
}

// GET /partner/restaurant/course
func (ctl *CourseController) List(c *gin.Context) {
	rest, ok := ownedRestaurant(c, ctl.Restaurants)
	if !ok {
		return
	}
	courses, err := ctl.Service.ListByRestaurant(rest.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": courses})
}

// POST /partner/restaurant/course
func (ctl *CourseController) Create(c *gin.Context) {
	rest, ok := ownedRestaurant(c, ctl.Restaurants)
	if !ok {
		return
	}

	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	course := &entity.Course{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		IsActive:     true,
		RestaurantID: rest.ID,
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}
	if err := ctl.Service.Create(course); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, course)
}

// PATCH /partner/restaurant/course/:id
func (ctl *CourseController) Update(c *gin.Context) {
	rest, ok := ownedRestaurant(c, ctl.Restaurants)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "bad course id")
		return
	}

	existing, err := ctl.Service.Get(uint(id))
	if err != nil {
		resp.NotFound(c, "course not found")
		return
	}
	if existing.RestaurantID != rest.ID {
		resp.Forbidden(c, "course belongs to another restaurant")
		return
	}

	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	course, err := ctl.Service.Update(uint(id), func(course *entity.Course) {
		if req.Name != "" {
			course.Name = req.Name
		}
		if req.Description != "" {
			course.Description = req.Description
		}
		if req.Price != nil {
			course.Price = *req.Price
		}
		if req.IsActive != nil {
			course.IsActive = *req.IsActive
		}
	})
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, course)
}

// DELETE /partner/restaurant/course/:id
func (ctl *CourseController) Delete(c *gin.Context) {
	rest, ok := ownedRestaurant(c, ctl.Restaurants)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "bad course id")
		return
	}

	existing, err := ctl.Service.Get(uint(id))
	if err != nil {
		resp.NotFound(c, "course not found")
		return
	}
	if existing.RestaurantID != rest.ID {
		resp.Forbidden(c, "course belongs to another restaurant")
		return
	}

	if err := ctl.Service.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
