// controllers/restaurant_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/niksankarkee/restosaas-sub000/entity"
	"github.com/niksankarkee/restosaas-sub000/pkg/resp"
	"github.com/niksankarkee/restosaas-sub000/services"
)

type RestaurantController struct {
	Service *services.RestaurantService
	Reviews *services.ReviewService
	Menus   *services.MenuService
	Courses *services.CourseService
}

func NewRestaurantController(
	s *services.RestaurantService,
	reviews *services.ReviewService,
	menus *services.MenuService,
	courses *services.CourseService,
) *RestaurantController {
	return &RestaurantController{Service: s, Reviews: reviews, Menus: menus, Courses: courses}
}

// ====== Response DTOs ======

type RestaurantCardResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	Capacity    int     `json:"capacity"`
	MainImage   string  `json:"mainImage"`
	Rating      float64 `json:"rating"`
	ReviewCount int64   `json:"reviewCount"`

	Category struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	} `json:"category"`

	Status struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	} `json:"status"`
}

type RestaurantDetailResponse struct {
	RestaurantCardResponse
	PhoneNumber  string                   `json:"phoneNumber"`
	OpeningHours []entity.OpeningHour     `json:"openingHours"`
	Images       []entity.RestaurantImage `json:"images"`
	Menus        []entity.Menu            `json:"menus"`
	Courses      []entity.Course          `json:"courses"`
}

func (ctl *RestaurantController) mapToCard(r *entity.Restaurant) RestaurantCardResponse {
	item := RestaurantCardResponse{
		ID:          r.ID,
		Name:        r.Name,
		Slug:        r.Slug,
		Address:     r.Address,
		Description: r.Description,
		Capacity:    r.Capacity,
	}
	for _, img := range r.Images {
		if img.IsMain {
			item.MainImage = img.Path
			break
		}
	}
	item.Category.ID = r.RestaurantCategory.ID
	item.Category.Name = r.RestaurantCategory.CategoryName
	item.Status.ID = r.RestaurantStatus.ID
	item.Status.Name = r.RestaurantStatus.StatusName

	if avg, count, err := ctl.Reviews.Rating(r.ID); err == nil {
		item.Rating = avg
		item.ReviewCount = count
	}
	return item
}

// ====== Public: list/search restaurants ======
// GET /restaurants?name=&categoryId=&statusId=
func (ctl *RestaurantController) List(c *gin.Context) {
	rests, err := ctl.Service.Search(c.Query("name"), c.Query("categoryId"), c.Query("statusId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	items := make([]RestaurantCardResponse, 0, len(rests))
	for i := range rests {
		items = append(items, ctl.mapToCard(&rests[i]))
	}
	resp.OK(c, gin.H{"items": items})
}

// ====== Public: single restaurant ======
// GET /restaurants/:slug
func (ctl *RestaurantController) Detail(c *gin.Context) {
	r, err := ctl.Service.GetBySlug(c.Param("slug"))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	detail := RestaurantDetailResponse{
		RestaurantCardResponse: ctl.mapToCard(r),
		PhoneNumber:            r.PhoneNumber,
		OpeningHours:           r.OpeningHours,
		Images:                 r.Images,
	}
	if menus, err := ctl.Menus.ListByRestaurant(r.ID); err == nil {
		detail.Menus = menus
	}
	if courses, err := ctl.Courses.ListActive(r.ID); err == nil {
		detail.Courses = courses
	}
	resp.OK(c, detail)
}

// GET /restaurants/:slug/menus
func (ctl *RestaurantController) MenuList(c *gin.Context) {
	r, err := ctl.Service.GetBySlug(c.Param("slug"))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	menus, err := ctl.Menus.ListByRestaurant(r.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": menus})
}

// GET /restaurants/:slug/courses
func (ctl *RestaurantController) CourseList(c *gin.Context) {
	r, err := ctl.Service.GetBySlug(c.Param("slug"))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	courses, err := ctl.Courses.ListActive(r.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": courses})
}
