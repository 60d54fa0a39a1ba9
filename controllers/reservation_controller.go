// controllers/reservation_controller.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/niksankarkee/restosaas-sub000/availability"
	"github.com/niksankarkee/restosaas-sub000/pkg/resp"
	"github.com/niksankarkee/restosaas-sub000/services"
	"github.com/niksankarkee/restosaas-sub000/ws"
)

type ReservationController struct {
	Service *services.ReservationService
	Hub     *ws.ReservationHub
}

func NewReservationController(s *services.ReservationService, hub *ws.ReservationHub) *ReservationController {
	return &ReservationController{Service: s, Hub: hub}
}

type CreateReservationRequest struct {
	RestaurantSlug  string `json:"restaurantSlug" binding:"required"`
	Date            string `json:"date" binding:"required,datetime=2006-01-02"`
	Time            string `json:"time" binding:"required,datetime=15:04"`
	Party           int    `json:"party" binding:"required,min=1"`
	CourseID        *uint  `json:"courseId"`
	SpecialRequests string `json:"specialRequests"`

	Customer struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
		Phone string `json:"phone"`
	} `json:"customer" binding:"required"`
}

// GET /restaurants/:slug/slots?date=YYYY-MM-DD&party=N
func (ctl *ReservationController) Slots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		resp.BadRequest(c, "date is required")
		return
	}
	party, _ := strconv.Atoi(c.DefaultQuery("party", "2"))

	slots, err := ctl.Service.Slots(c.Param("slug"), date, party)
	if err != nil {
		if services.IsNotFound(err) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"date": date, "slots": slots})
}

// GET /restaurants/:slug/availability?from=YYYY-MM-DD&days=N
func (ctl *ReservationController) Availability(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(availability.DefaultHorizonDays)))

	dates, err := ctl.Service.Dates(c.Param("slug"), c.Query("from"), days)
	if err != nil {
		if services.IsNotFound(err) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"dates": dates})
}

// POST /reservations. Guests welcome; a valid token attaches the booking to
// the account.
func (ctl *ReservationController) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	in := services.CreateReservationInput{
		RestaurantSlug:  req.RestaurantSlug,
		Date:            req.Date,
		Time:            req.Time,
		Party:           req.Party,
		CourseID:        req.CourseID,
		CustomerName:    req.Customer.Name,
		CustomerEmail:   req.Customer.Email,
		CustomerPhone:   req.Customer.Phone,
		SpecialRequests: req.SpecialRequests,
	}
	if v, ok := c.Get("userId"); ok {
		if id, ok := v.(uint); ok && id > 0 {
			in.UserID = &id
		}
	}

	res, err := ctl.Service.Create(in)
	if err != nil {
		if services.IsNotFound(err) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}

	ctl.Hub.Notify("created", res)
	resp.Created(c, res)
}

// GET /profile/reservations
func (ctl *ReservationController) ListForMe(c *gin.Context) {
	v, _ := c.Get("userId")
	userID, _ := v.(uint)

	list, err := ctl.Service.ListForUser(userID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": list})
}

// PATCH /reservations/:code/cancel. The confirmation code is the capability,
// so guests without accounts can cancel too.
func (ctl *ReservationController) CancelByCode(c *gin.Context) {
	res, err := ctl.Service.CancelByCode(c.Param("code"))
	if err != nil {
		if services.IsNotFound(err) {
			resp.NotFound(c, "reservation not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}

	ctl.Hub.Notify("cancelled", res)
	resp.OK(c, res)
}
