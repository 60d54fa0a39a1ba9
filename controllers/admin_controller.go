// controllers/admin_controller.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/niksankarkee/restosaas-sub000/pkg/resp"
	"github.com/niksankarkee/restosaas-sub000/services"
)

// AdminController is the super-admin console over all tenants.
type AdminController struct {
	Service *services.AdminService
}

func NewAdminController(s *services.AdminService) *AdminController {
	return &AdminController{Service: s}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "bad id")
		return 0, false
	}
	return uint(id), true
}

// GET /admin/dashboard
func (ctl *AdminController) Dashboard(c *gin.Context) {
	counts, err := ctl.Service.Dashboard()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, counts)
}

// ====== Organizations ======

type OrganizationRequest struct {
	Name         string `json:"name" binding:"required"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email"`
}

// GET /admin/organizations
func (ctl *AdminController) Organizations(c *gin.Context) {
	orgs, err := ctl.Service.ListOrganizations()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orgs})
}

// GET /admin/organizations/:id
func (ctl *AdminController) Organization(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	org, err := ctl.Service.GetOrganization(id)
	if err != nil {
		resp.NotFound(c, "organization not found")
		return
	}
	resp.OK(c, org)
}

// POST /admin/organizations
func (ctl *AdminController) CreateOrganization(c *gin.Context) {
	var req OrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	org, err := ctl.Service.CreateOrganization(req.Name, req.ContactEmail)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, org)
}

// PATCH /admin/organizations/:id
func (ctl *AdminController) UpdateOrganization(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Name         string `json:"name"`
		ContactEmail string `json:"contactEmail" binding:"omitempty,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	org, err := ctl.Service.UpdateOrganization(id, req.Name, req.ContactEmail)
	if err != nil {
		resp.NotFound(c, "organization not found")
		return
	}
	resp.OK(c, org)
}

// DELETE /admin/organizations/:id
func (ctl *AdminController) DeleteOrganization(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.Service.DeleteOrganization(id); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// ====== Restaurants ======

type ProvisionRestaurantRequest struct {
	OrganizationID uint   `json:"organizationId" binding:"required"`
	OwnerID        uint   `json:"ownerId" binding:"required"`
	CategoryID     uint   `json:"categoryId" binding:"required"`
	StatusID       uint   `json:"statusId" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Address        string `json:"address"`
	Capacity       int    `json:"capacity" binding:"required,min=1"`
}

// GET /admin/restaurants
func (ctl *AdminController) Restaurants(c *gin.Context) {
	rests, err := ctl.Service.ListRestaurants()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rests})
}

// POST /admin/restaurants
func (ctl *AdminController) CreateRestaurant(c *gin.Context) {
	var req ProvisionRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := ctl.Service.ProvisionRestaurant(
		req.OrganizationID, req.OwnerID, req.CategoryID, req.StatusID,
		req.Name, req.Address, req.Capacity)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, rest)
}

// PATCH /admin/restaurants/:id/status
func (ctl *AdminController) SetRestaurantStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		StatusID uint `json:"statusId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := ctl.Service.SetRestaurantStatus(id, req.StatusID)
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	resp.OK(c, rest)
}

// ====== Users ======

type CreateUserRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName"`
	Role           string `json:"role" binding:"required,oneof=customer owner admin"`
	OrganizationID *uint  `json:"organizationId"`
}

// GET /admin/users?role=
func (ctl *AdminController) Users(c *gin.Context) {
	users, err := ctl.Service.ListUsers(c.Query("role"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users})
}

// POST /admin/users
func (ctl *AdminController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := ctl.Service.CreateUser(req.Email, req.Password, req.FirstName, req.LastName, req.Role, req.OrganizationID)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, user)
}

// PATCH /admin/users/:id/role
func (ctl *AdminController) SetUserRole(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.SetUserRole(id, req.Role); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"id": id, "role": req.Role})
}
