package services

import (
	"context"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/mock"
	"swisstravel/internal/models/db_models"
)

// MockDestinationRepository is a mock implementation of repositories.DestinationRepository
type MockDestinationRepository struct {
	mock.Mock
}

func (m *MockDestinationRepository) FindAll(ctx context.Context) ([]db_models.Destination, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Destination), args.Error(1)
}

func (m *MockDestinationRepository) FindByID(ctx context.Context, id int64) (*db_models.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Destination), args.Error(1)
}

func (m *MockDestinationRepository) FindWithoutEmbedding(ctx context.Context) ([]db_models.Destination, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Destination), args.Error(1)
}

func (m *MockDestinationRepository) UpdateEmbedding(ctx context.Context, id int64, embedding pgvector.Vector) error {
	args := m.Called(ctx, id, embedding)
	return args.Error(0)
}

func (m *MockDestinationRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.Destination, error) {
	args := m.Called(ctx, vector, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Destination), args.Error(1)
}

// MockHotelRepository is a mock implementation of repositories.HotelRepository
type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) FindAll(ctx context.Context) ([]db_models.Hotel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Hotel), args.Error(1)
}

func (m *MockHotelRepository) FindByID(ctx context.Context, id int64) (*db_models.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Hotel), args.Error(1)
}

func (m *MockHotelRepository) FindWithoutEmbedding(ctx context.Context) ([]db_models.Hotel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Hotel), args.Error(1)
}

func (m *MockHotelRepository) UpdateEmbedding(ctx context.Context, id int64, embedding pgvector.Vector) error {
	args := m.Called(ctx, id, embedding)
	return args.Error(0)
}

func (m *MockHotelRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, destinationID *int64, maxPrice *float64, limit int) ([]db_models.Hotel, error) {
	args := m.Called(ctx, vector, destinationID, maxPrice, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Hotel), args.Error(1)
}

// MockActivityRepository is a mock implementation of repositories.ActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) FindAll(ctx context.Context) ([]db_models.Activity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Activity), args.Error(1)
}

func (m *MockActivityRepository) FindByID(ctx context.Context, id int64) (*db_models.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Activity), args.Error(1)
}

func (m *MockActivityRepository) FindWithoutEmbedding(ctx context.Context) ([]db_models.Activity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Activity), args.Error(1)
}

func (m *MockActivityRepository) UpdateEmbedding(ctx context.Context, id int64, embedding pgvector.Vector) error {
	args := m.Called(ctx, id, embedding)
	return args.Error(0)
}

func (m *MockActivityRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, destinationID *int64, limit int) ([]db_models.Activity, error) {
	args := m.Called(ctx, vector, destinationID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Activity), args.Error(1)
}

// MockWishlistRepository is a mock implementation of repositories.WishlistRepository
type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) Save(ctx context.Context, item *db_models.WishlistItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockWishlistRepository) FindAll(ctx context.Context) ([]db_models.WishlistItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.WishlistItem), args.Error(1)
}

func (m *MockWishlistRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockEmbeddingClient is a mock implementation of utils.EmbeddingClientInterface
type MockEmbeddingClient struct {
	mock.Mock
}

func (m *MockEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(pgvector.Vector), args.Error(1)
}

// MockChatCompleter is a mock implementation of ChatCompleter
type MockChatCompleter struct {
	mock.Mock
}

func (m *MockChatCompleter) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(openai.ChatCompletionResponse), args.Error(1)
}

// MockTravelTools is a mock implementation of TravelToolsInterface
type MockTravelTools struct {
	mock.Mock
}

func (m *MockTravelTools) Definitions() []openai.Tool {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]openai.Tool)
}

func (m *MockTravelTools) Dispatch(ctx context.Context, name string, arguments string) string {
	args := m.Called(ctx, name, arguments)
	return args.String(0)
}
