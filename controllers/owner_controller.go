// controllers/owner_controller.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/niksankarkee/restosaas-sub000/entity"
	"github.com/niksankarkee/restosaas-sub000/pkg/resp"
	"github.com/niksankarkee/restosaas-sub000/services"
	"github.com/niksankarkee/restosaas-sub000/utils"
	"github.com/niksankarkee/restosaas-sub000/ws"
)

// OwnerController is the restaurant back-office: profile, opening hours,
// reservations and the dashboard.
type OwnerController struct {
	Restaurants  *services.RestaurantService
	Hours        *services.OpeningHourService
	Reservations *services.ReservationService
	Reviews      *services.ReviewService
	Hub          *ws.ReservationHub
}

func NewOwnerController(
	restaurants *services.RestaurantService,
	hours *services.OpeningHourService,
	reservations *services.ReservationService,
	reviews *services.ReviewService,
	hub *ws.ReservationHub,
) *OwnerController {
	return &OwnerController{
		Restaurants:  restaurants,
		Hours:        hours,
		Reservations: reservations,
		Reviews:      reviews,
		Hub:          hub,
	}
}

// ownedRestaurant resolves which restaurant a partner request targets: owners
// get their own restaurant, admins may pick any via ?restaurantId=. Writes
// the error response itself when resolution fails.
func ownedRestaurant(c *gin.Context, svc *services.RestaurantService) (*entity.Restaurant, bool) {
	if utils.CurrentRole(c) == "admin" {
		idStr := c.Query("restaurantId")
		if idStr == "" {
			resp.BadRequest(c, "restaurantId query required for admin")
			return nil, false
		}
		id, err := strconv.Atoi(idStr)
		if err != nil {
			resp.BadRequest(c, "bad restaurantId")
			return nil, false
		}
		rest, err := svc.Repo.FindByID(uint(id))
		if err != nil {
			resp.NotFound(c, "restaurant not found")
			return nil, false
		}
		return rest, true
	}

	rest, err := svc.GetByOwner(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "no restaurant for this account")
		return nil, false
	}
	return rest, true
}

// ====== Dashboard ======

// GET /partner/restaurant/dashboard
func (ctl *OwnerController) Dashboard(c *gin.Context) {
	rest, ok := ownedRestaurant(c, ctl.Restaurants)
	if !ok {
		return
	}

	today := c.DefaultQuery("date", "")
	reservations, err := ctl.Reservations.ListForRestaurant(rest.ID, today)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	byStatus := map[string]int{}
	guests := 0
	for _, r := range reservations {
		byStatus[r.ReservationStatus.StatusName]++
		if r.ReservationStatus.StatusName != "Cancelled" {
			guests += r.Party
		}
	}
	avg, count, _ := ctl.Reviews.Rating(rest.ID)

	resp.OK(c, gin.H{
		"restaurant":         gin.H{"id": rest.ID, "name": rest.Name, "slug": rest.Slug, "capacity": rest.Capacity},
		"reservationsTotal":  len(reservations),
		"reservationsByStat": byStatus,
		"expectedGuests":     guests,
		"rating":             avg,
		"reviewCount":        count,
	})
}

// ====== Profile ======

type UpdateRestaurantRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	PhoneNumber string `json:"phoneNumber"`
	Capacity    int    `json:"capacity" binding:"omitempty,min=1"`
	CategoryID  uint   `json:"categoryId"`
}

// GET /partner/restaurant/profile
func (ctl *OwnerController) Profile(c *gin.Context) {
	rest, ok := ownedRestaurant(c, ctl.Restaurants)
	if !ok {
		return
	}
	resp.OK(c, rest)
}

// PATCH /partner/restaurant/profile
func (ctl *OwnerController) UpdateProfile(c *gin.Context) {
	rest, ok := ownedRestaurant(c, ctl.Restaurants)
	if !ok {
		return
	}

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Restaurants.UpdateProfile(rest, req.Name, req.Address, req.Description,
		req.PhoneNumber, req.Capacity, req.CategoryID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

// ====== Opening hours ======

type OpeningHourRow struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	OpenTime  string `json:"openTime" binding:"omitempty,datetime=15:04"`
	CloseTime string `json:"closeTime" binding:"omitempty,datetime=15:04"`
	IsClosed  bool   `json:"isClosed"`
}

type PutOpeningHoursRequest struct {
	Hours []OpeningHourRow `json:"hours" binding:"required,len=7,dive"`
}

// GET /partner/restaurant/hours
func (ctl *OwnerController) GetHours(c *gin.Context) {
	rest, ok := ownedRestaurant(c, ctl.Restaurants)
	if !ok {
		return
	}
	hours, err := ctl.Hours.Week(rest.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": hours})
}

// PUT /partner/restaurant/hours, always the full week at once
func (ctl *OwnerController) PutHours(c *gin.Context) {
	rest, ok := ownedRestaurant(c, ctl.Restaurants)
	if !ok {
		return
	}

	var req PutOpeningHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	hours := make([]entity.OpeningHour, 0, len(req.Hours))
	for _, row := range req.Hours {
		hours = append(hours, entity.OpeningHour{
			Weekday:   row.Weekday,
			OpenTime:  row.OpenTime,
			CloseTime: row.CloseTime,
			IsClosed:  row.IsClosed,
		})
	}

	if err := ctl.Hours.ReplaceWeek(rest.ID, hours); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	saved, err := ctl.Hours.Week(rest.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": saved})
}

// ====== Reservations ======

// GET /partner/restaurant/reservations?date=YYYY-MM-DD
func (ctl *OwnerController) ReservationList(c *gin.Context) {
	rest, ok := ownedRestaurant(c, ctl.Restaurants)
	if !ok {
		return
	}
	list, err := ctl.Reservations.ListForRestaurant(rest.ID, c.Query("date"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": list})
}

// transition shared by confirm/cancel/complete handlers
func (ctl *OwnerController) transition(c *gin.Context, target, eventKind string) {
	rest, ok := ownedRestaurant(c, ctl.Restaurants)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "bad reservation id")
		return
	}

	// the reservation must belong to this restaurant
	res, err := ctl.Reservations.Repo.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "reservation not found")
		return
	}
	if res.RestaurantID != rest.ID {
		resp.Forbidden(c, "reservation belongs to another restaurant")
		return
	}

	updated, err := ctl.Reservations.Transition(uint(id), target)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ctl.Hub.Notify(eventKind, updated)
	resp.OK(c, updated)
}

// PATCH /partner/restaurant/reservations/:id/confirm
func (ctl *OwnerController) ConfirmReservation(c *gin.Context) {
	ctl.transition(c, "Confirmed", "confirmed")
}

// PATCH /partner/restaurant/reservations/:id/cancel
func (ctl *OwnerController) CancelReservation(c *gin.Context) {
	ctl.transition(c, "Cancelled", "cancelled")
}

// PATCH /partner/restaurant/reservations/:id/complete
func (ctl *OwnerController) CompleteReservation(c *gin.Context) {
	ctl.transition(c, "Completed", "completed")
}
