package services

import (
	"context"
	"log"

	"swisstravel/internal/models/db_models"
	"swisstravel/internal/models/response_models"
	"swisstravel/internal/repositories"
	"swisstravel/pkg/utils"
)

type WishlistServiceInterface interface {
	GetWishlist(ctx context.Context) ([]db_models.WishlistItem, error)
	GetWishlistDetails(ctx context.Context) ([]response_models.WishlistDetailResponse, error)
	ClearWishlist(ctx context.Context) error
}

type WishlistService struct {
	wishlistRepo    repositories.WishlistRepository
	destinationRepo repositories.DestinationRepository
	hotelRepo       repositories.HotelRepository
	activityRepo    repositories.ActivityRepository
}

func NewWishlistService(
	wishlistRepo repositories.WishlistRepository,
	destinationRepo repositories.DestinationRepository,
	hotelRepo repositories.HotelRepository,
	activityRepo repositories.ActivityRepository,
) WishlistServiceInterface {
	return &WishlistService{
		wishlistRepo:    wishlistRepo,
		destinationRepo: destinationRepo,
		hotelRepo:       hotelRepo,
		activityRepo:    activityRepo,
	}
}

func (s *WishlistService) GetWishlist(ctx context.Context) ([]db_models.WishlistItem, error) {
	items, err := s.wishlistRepo.FindAll(ctx)
	if err != nil {
		log.Printf("Error listing wishlist: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if items == nil {
		items = []db_models.WishlistItem{}
	}
	return items, nil
}

// GetWishlistDetails resolves every item against the catalog so clients get
// display fields without a second round of lookups. The persisted shape
// stays purely relational.
func (s *WishlistService) GetWishlistDetails(ctx context.Context) ([]response_models.WishlistDetailResponse, error) {
	items, err := s.wishlistRepo.FindAll(ctx)
	if err != nil {
		log.Printf("Error listing wishlist: %v", err)
		return nil, utils.ErrDatabaseError
	}

	details := make([]response_models.WishlistDetailResponse, 0, len(items))
	for _, item := range items {
		detail := response_models.WishlistDetailResponse{
			ID:       item.ID,
			ItemType: item.ItemType,
			ItemID:   item.ItemID,
		}

		switch item.ItemType {
		case "destination":
			d, err := s.destinationRepo.FindByID(ctx, item.ItemID)
			if err != nil {
				log.Printf("Error resolving wishlist destination id=%d: %v", item.ItemID, err)
			}
			if d != nil {
				detail.Name = d.Name
				detail.Description = d.Description
			}
		case "hotel":
			h, err := s.hotelRepo.FindByID(ctx, item.ItemID)
			if err != nil {
				log.Printf("Error resolving wishlist hotel id=%d: %v", item.ItemID, err)
			}
			if h != nil {
				detail.Name = h.Name
				detail.Description = h.Description
			}
		case "activity":
			a, err := s.activityRepo.FindByID(ctx, item.ItemID)
			if err != nil {
				log.Printf("Error resolving wishlist activity id=%d: %v", item.ItemID, err)
			}
			if a != nil {
				detail.Name = a.Name
				detail.Description = a.Description
			}
		}

		details = append(details, detail)
	}
	return details, nil
}

func (s *WishlistService) ClearWishlist(ctx context.Context) error {
	if err := s.wishlistRepo.DeleteAll(ctx); err != nil {
		log.Printf("Error clearing wishlist: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}
