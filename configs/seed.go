package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/niksankarkee/restosaas-sub000/entity"
)

// SeedAdmin creates the platform admin on first boot.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("⚠️ skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedLookups fills the status/category lookup tables.
func SeedLookups() error {
	db := DB()

	// Restaurant
	db.FirstOrCreate(&entity.RestaurantStatus{}, entity.RestaurantStatus{StatusName: "Open"})
	db.FirstOrCreate(&entity.RestaurantStatus{}, entity.RestaurantStatus{StatusName: "Closed"})
	db.FirstOrCreate(&entity.RestaurantStatus{}, entity.RestaurantStatus{StatusName: "Suspended"})
	db.FirstOrCreate(&entity.RestaurantCategory{}, entity.RestaurantCategory{CategoryName: "Cafe"})
	db.FirstOrCreate(&entity.RestaurantCategory{}, entity.RestaurantCategory{CategoryName: "Fine Dining"})
	db.FirstOrCreate(&entity.RestaurantCategory{}, entity.RestaurantCategory{CategoryName: "Izakaya"})
	db.FirstOrCreate(&entity.RestaurantCategory{}, entity.RestaurantCategory{CategoryName: "Fast Food"})

	// Menu
	db.FirstOrCreate(&entity.MenuStatus{}, entity.MenuStatus{StatusName: "Available"})
	db.FirstOrCreate(&entity.MenuStatus{}, entity.MenuStatus{StatusName: "Out of Stock"})
	db.FirstOrCreate(&entity.MenuType{}, entity.MenuType{TypeName: "Drink"})
	db.FirstOrCreate(&entity.MenuType{}, entity.MenuType{TypeName: "Appetizer"})
	db.FirstOrCreate(&entity.MenuType{}, entity.MenuType{TypeName: "Main Dish"})
	db.FirstOrCreate(&entity.MenuType{}, entity.MenuType{TypeName: "Dessert"})

	// Reservation lifecycle
	db.FirstOrCreate(&entity.ReservationStatus{}, entity.ReservationStatus{StatusName: "Pending"})
	db.FirstOrCreate(&entity.ReservationStatus{}, entity.ReservationStatus{StatusName: "Confirmed"})
	db.FirstOrCreate(&entity.ReservationStatus{}, entity.ReservationStatus{StatusName: "Cancelled"})
	db.FirstOrCreate(&entity.ReservationStatus{}, entity.ReservationStatus{StatusName: "Completed"})

	log.Println("✅ Lookup tables seeded")
	return nil
}
