package assistant_fx

import (
	"log"
	"os"
	"strconv"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/fx"
	"swisstravel/internal/api/controllers"
	"swisstravel/internal/repositories"
	"swisstravel/internal/services"
	"swisstravel/pkg/utils"
)

var Module = fx.Provide(
	ProvideEmbeddingClient,
	ProvideLLMClient,
	ProvideTravelTools,
	ProvideAssistantService,
	ProvideBackfillService,
	ProvideChatController)

// EmbeddingConfig holds configuration for embedding clients
type EmbeddingConfig struct {
	Provider  string
	APIKey    string
	BaseURL   string
	Model     string
	Dimension int
}

// ProvideEmbeddingClient creates an embedding client based on environment variables
func ProvideEmbeddingClient() (utils.EmbeddingClientInterface, error) {
	config := getEmbeddingConfig()

	log.Printf("Initializing %s embedding client with model: %s", config.Provider, config.Model)

	client, err := utils.NewEmbeddingClient(config.Provider, config.APIKey, config.BaseURL, config.Model)
	if err != nil {
		return nil, err
	}
	return utils.WithDimensionCheck(client, config.Dimension), nil
}

// ProvideLLMClient builds the chat-completion client shared by every turn.
func ProvideLLMClient() services.ChatCompleter {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY is required")
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

func ProvideTravelTools(
	embeddingClient utils.EmbeddingClientInterface,
	destinationRepo repositories.DestinationRepository,
	hotelRepo repositories.HotelRepository,
	activityRepo repositories.ActivityRepository,
	wishlistRepo repositories.WishlistRepository,
) services.TravelToolsInterface {
	return services.NewTravelTools(embeddingClient, destinationRepo, hotelRepo, activityRepo, wishlistRepo)
}

func ProvideAssistantService(
	llm services.ChatCompleter,
	tools services.TravelToolsInterface,
) services.AssistantServiceInterface {
	model := getEnvWithDefault("LLM_MODEL", openai.GPT4oMini)
	return services.NewAssistantService(llm, model, tools)
}

func ProvideBackfillService(
	embeddingClient utils.EmbeddingClientInterface,
	destinationRepo repositories.DestinationRepository,
	hotelRepo repositories.HotelRepository,
	activityRepo repositories.ActivityRepository,
) services.BackfillServiceInterface {
	return services.NewBackfillService(embeddingClient, destinationRepo, hotelRepo, activityRepo)
}

func ProvideChatController(assistantService services.AssistantServiceInterface) *controllers.ChatController {
	return controllers.NewChatController(assistantService)
}

// getEmbeddingConfig reads configuration from environment variables
func getEmbeddingConfig() EmbeddingConfig {
	provider := getEnvWithDefault("EMBEDDING_PROVIDER", "openai")

	var apiKey, baseURL, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		baseURL = os.Getenv("OPENAI_BASE_URL")
		model = getEnvWithDefault("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_EMBEDDING_MODEL", "text-embedding-004")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	dimension, err := strconv.Atoi(getEnvWithDefault("EMBEDDING_DIMENSION", "1536"))
	if err != nil {
		log.Fatalf("EMBEDDING_DIMENSION must be an integer: %v", err)
	}

	return EmbeddingConfig{
		Provider:  provider,
		APIKey:    apiKey,
		BaseURL:   baseURL,
		Model:     model,
		Dimension: dimension,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
