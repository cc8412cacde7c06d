package db_models

import "github.com/pgvector/pgvector-go"

type Hotel struct {
	ID            int64 `gorm:"primaryKey"`
	DestinationID int64
	// DestinationName is filled from a join with destinations; it has no
	// column of its own on the hotels table.
	DestinationName      string `gorm:"->"`
	Name                 string
	PricePerNight        float64
	Description          string
	DescriptionEmbedding *pgvector.Vector `gorm:"type:vector(1536)"`
}

func (Hotel) TableName() string {
	return "hotels"
}
