package configs

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/niksankarkee/restosaas-sub000/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	default:
		dialector = sqlite.Open(cfg.DBSource)
	}

	database, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database (%s): %v", cfg.DBDriver, err)
	}
	db = database
}

func SetupDatabase() {
	// Migrate the schema
	db.AutoMigrate(
		&entity.Organization{}, &entity.User{},
		&entity.RestaurantCategory{}, &entity.RestaurantStatus{}, &entity.Restaurant{},
		&entity.OpeningHour{}, &entity.RestaurantImage{},
		&entity.MenuType{}, &entity.MenuStatus{}, &entity.Menu{},
		&entity.Course{},
		&entity.ReservationStatus{}, &entity.Reservation{},
		&entity.Review{},
	)
}
