package wishlist_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"swisstravel/internal/api/controllers"
	"swisstravel/internal/repositories"
	"swisstravel/internal/services"
)

var Module = fx.Provide(
	provideWishlistRepo, provideWishlistService, provideWishlistController)

func provideWishlistRepo(db *gorm.DB) repositories.WishlistRepository {
	return repositories.NewWishlistRepository(db)
}

func provideWishlistService(
	wishlistRepo repositories.WishlistRepository,
	destinationRepo repositories.DestinationRepository,
	hotelRepo repositories.HotelRepository,
	activityRepo repositories.ActivityRepository,
) services.WishlistServiceInterface {
	return services.NewWishlistService(wishlistRepo, destinationRepo, hotelRepo, activityRepo)
}

func provideWishlistController(wishlistService services.WishlistServiceInterface) *controllers.WishlistController {
	return controllers.NewWishlistController(wishlistService)
}
