package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/niksankarkee/restosaas-sub000/configs"
	"github.com/niksankarkee/restosaas-sub000/controllers"
	"github.com/niksankarkee/restosaas-sub000/middlewares"
	"github.com/niksankarkee/restosaas-sub000/pkg/mailer"
	"github.com/niksankarkee/restosaas-sub000/repository"
	"github.com/niksankarkee/restosaas-sub000/services"
	"github.com/niksankarkee/restosaas-sub000/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.ReservationHub, m *mailer.Mailer) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	hourRepo := repository.NewOpeningHourRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	imageRepo := repository.NewImageRepository(db)
	resRepo := repository.NewReservationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo)
	hourSvc := services.NewOpeningHourService(hourRepo)
	menuSvc := services.NewMenuService(menuRepo)
	courseSvc := services.NewCourseService(courseRepo)
	imageSvc := services.NewImageService(imageRepo, "./uploads")
	reviewSvc := services.NewReviewService(reviewRepo)
	resSvc := services.NewReservationService(resRepo, restRepo, courseRepo, m)
	adminSvc := services.NewAdminService(orgRepo, restRepo, userRepo, restSvc)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc, reviewSvc, menuSvc, courseSvc)
	resCtrl := controllers.NewReservationController(resSvc, hub)
	reviewCtrl := controllers.NewReviewController(reviewSvc, restSvc)
	ownerCtrl := controllers.NewOwnerController(restSvc, hourSvc, resSvc, reviewSvc, hub)
	menuCtrl := controllers.NewMenuController(menuSvc, restSvc)
	courseCtrl := controllers.NewCourseController(courseSvc, restSvc)
	imageCtrl := controllers.NewImageController(imageSvc, restSvc)
	adminCtrl := controllers.NewAdminController(adminSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public discovery + booking
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:slug", restCtrl.Detail)
	r.GET("/restaurants/:slug/menus", restCtrl.MenuList)
	r.GET("/restaurants/:slug/courses", restCtrl.CourseList)
	r.GET("/restaurants/:slug/slots", resCtrl.Slots)
	r.GET("/restaurants/:slug/availability", resCtrl.Availability)
	r.GET("/restaurants/:slug/reviews", reviewCtrl.List)

	// Reservations: guests book with just the form, logged-in users get the
	// booking on their account
	r.POST("/reservations", middlewares.OptionalAuthMiddleware(), resCtrl.Create)
	r.PATCH("/reservations/:code/cancel", resCtrl.CancelByCode)

	// Reviews (must be logged in)
	rev := r.Group("/restaurants/:slug/reviews", middlewares.AuthMiddleware())
	{
		rev.PUT("", reviewCtrl.Upsert)
		rev.DELETE("", reviewCtrl.Delete)
	}

	// Profile
	profile := r.Group("/profile", middlewares.AuthMiddleware())
	{
		profile.GET("/reservations", resCtrl.ListForMe)
	}

	// Partner back-office (owner/admin)
	partner := r.Group("/partner/restaurant", middlewares.AuthMiddleware("owner", "admin"))
	{
		partner.GET("/dashboard", ownerCtrl.Dashboard) // admin: ?restaurantId=
		partner.GET("/profile", ownerCtrl.Profile)
		partner.PATCH("/profile", ownerCtrl.UpdateProfile)

		partner.GET("/hours", ownerCtrl.GetHours)
		partner.PUT("/hours", ownerCtrl.PutHours)

		partner.GET("/menu", menuCtrl.List)
		partner.POST("/menu", menuCtrl.Create)
		partner.PATCH("/menu/:id", menuCtrl.Update)
		partner.DELETE("/menu/:id", menuCtrl.Delete)

		partner.GET("/course", courseCtrl.List)
		partner.POST("/course", courseCtrl.Create)
		partner.PATCH("/course/:id", courseCtrl.Update)
		partner.DELETE("/course/:id", courseCtrl.Delete)

		partner.GET("/image", imageCtrl.List)
		partner.POST("/image", imageCtrl.Add)
		partner.DELETE("/image/:id", imageCtrl.Remove)
		partner.PATCH("/image/:id/main", imageCtrl.SetMain)

		partner.GET("/reservations", ownerCtrl.ReservationList) // ?date=
		partner.PATCH("/reservations/:id/confirm", ownerCtrl.ConfirmReservation)
		partner.PATCH("/reservations/:id/cancel", ownerCtrl.CancelReservation)
		partner.PATCH("/reservations/:id/complete", ownerCtrl.CompleteReservation)
	}

	// Live reservation feed for owner dashboards (token via ?token=)
	r.GET("/ws/partner/reservations/:restaurantId",
		middlewares.WSAuthMiddleware("owner", "admin"), hub.HandleWebSocket)

	// Super-admin console
	admin := r.Group("/admin", middlewares.AuthMiddleware("admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)

		admin.GET("/organizations", adminCtrl.Organizations)
		admin.GET("/organizations/:id", adminCtrl.Organization)
		admin.POST("/organizations", adminCtrl.CreateOrganization)
		admin.PATCH("/organizations/:id", adminCtrl.UpdateOrganization)
		admin.DELETE("/organizations/:id", adminCtrl.DeleteOrganization)

		admin.GET("/restaurants", adminCtrl.Restaurants)
		admin.POST("/restaurants", adminCtrl.CreateRestaurant)
		admin.PATCH("/restaurants/:id/status", adminCtrl.SetRestaurantStatus)

		admin.GET("/users", adminCtrl.Users)
		admin.POST("/users", adminCtrl.CreateUser)
		admin.PATCH("/users/:id/role", adminCtrl.SetUserRole)
	}
}
