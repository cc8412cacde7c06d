package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"swisstravel/internal/models/db_models"
)

const hotelSelect = `SELECT h.id, h.destination_id, d.name AS destination_name, h.name, h.price_per_night, h.description FROM hotels h JOIN destinations d ON h.destination_id = d.id`

type HotelRepository interface {
	FindAll(ctx context.Context) ([]db_models.Hotel, error)
	FindByID(ctx context.Context, id int64) (*db_models.Hotel, error)
	FindWithoutEmbedding(ctx context.Context) ([]db_models.Hotel, error)
	UpdateEmbedding(ctx context.Context, id int64, embedding pgvector.Vector) error
	SearchByVector(ctx context.Context, vector pgvector.Vector, destinationID *int64, maxPrice *float64, limit int) ([]db_models.Hotel, error)
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) FindAll(ctx context.Context) ([]db_models.Hotel, error) {
	var hotels []db_models.Hotel
	err := r.db.WithContext(ctx).Raw(hotelSelect).Scan(&hotels).Error
	if err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *hotelRepository) FindByID(ctx context.Context, id int64) (*db_models.Hotel, error) {
	var hotels []db_models.Hotel
	err := r.db.WithContext(ctx).Raw(hotelSelect+" WHERE h.id = ?", id).Scan(&hotels).Error
	if err != nil {
		return nil, err
	}
	if len(hotels) == 0 {
		return nil, nil
	}
	return &hotels[0], nil
}

func (r *hotelRepository) FindWithoutEmbedding(ctx context.Context) ([]db_models.Hotel, error) {
	var hotels []db_models.Hotel
	err := r.db.WithContext(ctx).Raw(hotelSelect+" WHERE h.description_embedding IS NULL").Scan(&hotels).Error
	if err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *hotelRepository) UpdateEmbedding(ctx context.Context, id int64, embedding pgvector.Vector) error {
	return r.db.WithContext(ctx).
		Exec("UPDATE hotels SET description_embedding = ? WHERE id = ?", embedding, id).Error
}

func (r *hotelRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, destinationID *int64, maxPrice *float64, limit int) ([]db_models.Hotel, error) {
	query, args := buildHotelVectorQuery(vector, destinationID, maxPrice, limit)

	var hotels []db_models.Hotel
	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&hotels).Error
	if err != nil {
		return nil, err
	}
	return hotels, nil
}
