// controllers/review_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/niksankarkee/restosaas-sub000/pkg/resp"
	"github.com/niksankarkee/restosaas-sub000/services"
	"github.com/niksankarkee/restosaas-sub000/utils"
)

type ReviewController struct {
	Service     *services.ReviewService
	Restaurants *services.RestaurantService
}

func NewReviewController(s *services.ReviewService, restaurants *services.RestaurantService) *ReviewController {
	return &ReviewController{Service: s, Restaurants: restaurants}
}

type UpsertReviewRequest struct {
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comments string `json:"comments"`
}

// GET /restaurants/:slug/reviews (public)
func (ctl *ReviewController) List(c *gin.Context) {
	rest, err := ctl.Restaurants.GetBySlug(c.Param("slug"))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	reviews, err := ctl.Service.ListByRestaurant(rest.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	items := make([]gin.H, 0, len(reviews))
	for _, r := range reviews {
		items = append(items, gin.H{
			"id":         r.ID,
			"rating":     r.Rating,
			"comments":   r.Comments,
			"reviewDate": r.ReviewDate,
			"author":     r.User.FirstName,
		})
	}

	avg, count, _ := ctl.Service.Rating(rest.ID)
	resp.OK(c, gin.H{"items": items, "rating": avg, "reviewCount": count})
}

// PUT /restaurants/:slug/reviews (protected). One review per user per
// restaurant, create-or-update.
func (ctl *ReviewController) Upsert(c *gin.Context) {
	rest, err := ctl.Restaurants.GetBySlug(c.Param("slug"))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	var req UpsertReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := ctl.Service.Upsert(utils.CurrentUserID(c), rest.ID, req.Rating, req.Comments)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, review)
}

// DELETE /restaurants/:slug/reviews (protected). Removes the caller's review
func (ctl *ReviewController) Delete(c *gin.Context) {
	rest, err := ctl.Restaurants.GetBySlug(c.Param("slug"))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	if err := ctl.Service.Delete(utils.CurrentUserID(c), rest.ID); err != nil {
		resp.NotFound(c, "no review to delete")
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
