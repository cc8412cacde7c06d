package db_models

import "github.com/pgvector/pgvector-go"

type Activity struct {
	ID                   int64 `gorm:"primaryKey"`
	DestinationID        int64
	DestinationName      string `gorm:"->"`
	Name                 string
	Season               string
	Description          string
	DescriptionEmbedding *pgvector.Vector `gorm:"type:vector(1536)"`
}

func (Activity) TableName() string {
	return "activities"
}
