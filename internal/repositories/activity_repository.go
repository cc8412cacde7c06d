package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"swisstravel/internal/models/db_models"
)

const activitySelect = `SELECT a.id, a.destination_id, d.name AS destination_name, a.name, a.season, a.description FROM activities a JOIN destinations d ON a.destination_id = d.id`

type ActivityRepository interface {
	FindAll(ctx context.Context) ([]db_models.Activity, error)
	FindByID(ctx context.Context, id int64) (*db_models.Activity, error)
	FindWithoutEmbedding(ctx context.Context) ([]db_models.Activity, error)
	UpdateEmbedding(ctx context.Context, id int64, embedding pgvector.Vector) error
	SearchByVector(ctx context.Context, vector pgvector.Vector, destinationID *int64, limit int) ([]db_models.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) FindAll(ctx context.Context) ([]db_models.Activity, error) {
	var activities []db_models.Activity
	err := r.db.WithContext(ctx).Raw(activitySelect).Scan(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) FindByID(ctx context.Context, id int64) (*db_models.Activity, error) {
	var activities []db_models.Activity
	err := r.db.WithContext(ctx).Raw(activitySelect+" WHERE a.id = ?", id).Scan(&activities).Error
	if err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		return nil, nil
	}
	return &activities[0], nil
}

func (r *activityRepository) FindWithoutEmbedding(ctx context.Context) ([]db_models.Activity, error) {
	var activities []db_models.Activity
	err := r.db.WithContext(ctx).Raw(activitySelect+" WHERE a.description_embedding IS NULL").Scan(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) UpdateEmbedding(ctx context.Context, id int64, embedding pgvector.Vector) error {
	return r.db.WithContext(ctx).
		Exec("UPDATE activities SET description_embedding = ? WHERE id = ?", embedding, id).Error
}

func (r *activityRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, destinationID *int64, limit int) ([]db_models.Activity, error) {
	query, args := buildActivityVectorQuery(vector, destinationID, limit)

	var activities []db_models.Activity
	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}
