package db_models

import "github.com/pgvector/pgvector-go"

type Destination struct {
	ID                   int64 `gorm:"primaryKey"`
	Name                 string
	Region               string
	Description          string
	DescriptionEmbedding *pgvector.Vector `gorm:"type:vector(1536)"`
}

func (Destination) TableName() string {
	return "destinations"
}
