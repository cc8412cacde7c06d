package repositories

import (
	"context"

	"gorm.io/gorm"
	"swisstravel/internal/models/db_models"
)

type WishlistRepository interface {
	Save(ctx context.Context, item *db_models.WishlistItem) error
	FindAll(ctx context.Context) ([]db_models.WishlistItem, error)
	DeleteAll(ctx context.Context) error
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Save(ctx context.Context, item *db_models.WishlistItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *wishlistRepository) FindAll(ctx context.Context) ([]db_models.WishlistItem, error) {
	var items []db_models.WishlistItem
	err := r.db.WithContext(ctx).Order("id").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *wishlistRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("DELETE FROM wishlist_items").Error
}
