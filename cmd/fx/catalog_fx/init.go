package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"swisstravel/internal/repositories"
)

var Module = fx.Provide(
	provideDestinationRepo, provideHotelRepo, provideActivityRepo)

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideHotelRepo(db *gorm.DB) repositories.HotelRepository {
	return repositories.NewHotelRepository(db)
}

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}
