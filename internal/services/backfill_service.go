package services

import (
	"context"
	"fmt"
	"log"

	"swisstravel/internal/repositories"
	"swisstravel/pkg/utils"
)

// BackfillServiceInterface generates embeddings for catalog rows that are
// missing one. It runs once per process, after the database is reachable.
type BackfillServiceInterface interface {
	EnsureEmbeddings(ctx context.Context)
}

type BackfillService struct {
	embeddingClient utils.EmbeddingClientInterface
	destinationRepo repositories.DestinationRepository
	hotelRepo       repositories.HotelRepository
	activityRepo    repositories.ActivityRepository
}

func NewBackfillService(
	embeddingClient utils.EmbeddingClientInterface,
	destinationRepo repositories.DestinationRepository,
	hotelRepo repositories.HotelRepository,
	activityRepo repositories.ActivityRepository,
) BackfillServiceInterface {
	return &BackfillService{
		embeddingClient: embeddingClient,
		destinationRepo: destinationRepo,
		hotelRepo:       hotelRepo,
		activityRepo:    activityRepo,
	}
}

// EnsureEmbeddings never aborts: individual failures are logged and skipped,
// partial progress is persisted row by row.
func (s *BackfillService) EnsureEmbeddings(ctx context.Context) {
	log.Println("Checking for missing embeddings...")

	destinationCount := 0
	hotelCount := 0
	activityCount := 0

	destinations, err := s.destinationRepo.FindWithoutEmbedding(ctx)
	if err != nil {
		log.Printf("Error listing destinations without embedding: %v", err)
	}
	for _, d := range destinations {
		text := fmt.Sprintf("%s %s. %s", d.Name, d.Region, d.Description)
		vector, err := s.embeddingClient.GetEmbedding(ctx, text)
		if err != nil {
			log.Printf("Error embedding destination id=%d: %v", d.ID, err)
			continue
		}
		if err := s.destinationRepo.UpdateEmbedding(ctx, d.ID, vector); err != nil {
			log.Printf("Error updating embedding for destination id=%d: %v", d.ID, err)
			continue
		}
		destinationCount++
	}

	hotels, err := s.hotelRepo.FindWithoutEmbedding(ctx)
	if err != nil {
		log.Printf("Error listing hotels without embedding: %v", err)
	}
	for _, h := range hotels {
		text := fmt.Sprintf("%s in %s. %s", h.Name, h.DestinationName, h.Description)
		vector, err := s.embeddingClient.GetEmbedding(ctx, text)
		if err != nil {
			log.Printf("Error embedding hotel id=%d: %v", h.ID, err)
			continue
		}
		if err := s.hotelRepo.UpdateEmbedding(ctx, h.ID, vector); err != nil {
			log.Printf("Error updating embedding for hotel id=%d: %v", h.ID, err)
			continue
		}
		hotelCount++
	}

	activities, err := s.activityRepo.FindWithoutEmbedding(ctx)
	if err != nil {
		log.Printf("Error listing activities without embedding: %v", err)
	}
	for _, a := range activities {
		text := fmt.Sprintf("%s in %s. %s", a.Name, a.DestinationName, a.Description)
		vector, err := s.embeddingClient.GetEmbedding(ctx, text)
		if err != nil {
			log.Printf("Error embedding activity id=%d: %v", a.ID, err)
			continue
		}
		if err := s.activityRepo.UpdateEmbedding(ctx, a.ID, vector); err != nil {
			log.Printf("Error updating embedding for activity id=%d: %v", a.ID, err)
			continue
		}
		activityCount++
	}

	if destinationCount+hotelCount+activityCount > 0 {
		log.Printf("Generated embeddings: %d destinations, %d hotels, %d activities",
			destinationCount, hotelCount, activityCount)
	} else {
		log.Println("All embeddings up to date")
	}
}
