package repositories

import (
	"context"
	"errors"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"swisstravel/internal/models/db_models"
)

type DestinationRepository interface {
	FindAll(ctx context.Context) ([]db_models.Destination, error)
	FindByID(ctx context.Context, id int64) (*db_models.Destination, error)
	FindWithoutEmbedding(ctx context.Context) ([]db_models.Destination, error)
	UpdateEmbedding(ctx context.Context, id int64, embedding pgvector.Vector) error
	SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.Destination, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) FindAll(ctx context.Context) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).
		Select("id, name, region, description").
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) FindByID(ctx context.Context, id int64) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).
		Select("id, name, region, description").
		First(&destination, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

func (r *destinationRepository) FindWithoutEmbedding(ctx context.Context) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).
		Select("id, name, region, description").
		Where("description_embedding IS NULL").
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) UpdateEmbedding(ctx context.Context, id int64, embedding pgvector.Vector) error {
	return r.db.WithContext(ctx).
		Exec("UPDATE destinations SET description_embedding = ? WHERE id = ?", embedding, id).Error
}

func (r *destinationRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.Destination, error) {
	query, args := buildDestinationVectorQuery(vector, limit)

	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}
