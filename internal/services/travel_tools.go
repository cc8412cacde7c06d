package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"swisstravel/internal/models/db_models"
	"swisstravel/internal/repositories"
	"swisstravel/pkg/utils"
)

// searchLimit is the number of rows every catalog search returns at most.
const searchLimit = 5

// TravelToolsInterface is the toolset the assistant can call mid-turn. Every
// tool returns plain text so results can be appended to the LLM transcript
// verbatim, including dispatch failures.
type TravelToolsInterface interface {
	Definitions() []openai.Tool
	Dispatch(ctx context.Context, name string, arguments string) string
}

type TravelTools struct {
	embeddingClient utils.EmbeddingClientInterface
	destinationRepo repositories.DestinationRepository
	hotelRepo       repositories.HotelRepository
	activityRepo    repositories.ActivityRepository
	wishlistRepo    repositories.WishlistRepository
}

func NewTravelTools(
	embeddingClient utils.EmbeddingClientInterface,
	destinationRepo repositories.DestinationRepository,
	hotelRepo repositories.HotelRepository,
	activityRepo repositories.ActivityRepository,
	wishlistRepo repositories.WishlistRepository,
) TravelToolsInterface {
	return &TravelTools{
		embeddingClient: embeddingClient,
		destinationRepo: destinationRepo,
		hotelRepo:       hotelRepo,
		activityRepo:    activityRepo,
		wishlistRepo:    wishlistRepo,
	}
}

type searchDestinationsArgs struct {
	Query string `json:"query"`
}

type searchHotelsArgs struct {
	Query         string   `json:"query"`
	DestinationID *int64   `json:"destinationId,omitempty"`
	MaxPrice      *float64 `json:"maxPrice,omitempty"`
}

type searchActivitiesArgs struct {
	Query         string `json:"query"`
	DestinationID *int64 `json:"destinationId,omitempty"`
}

type addToWishlistArgs struct {
	ItemType string `json:"itemType"`
	ItemID   int64  `json:"itemId"`
}

func (t *TravelTools) Definitions() []openai.Tool {
	return []openai.Tool{
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "searchDestinations",
				Description: "Search for Swiss destinations by preference (e.g., 'mountain views', 'lakeside', 'winter sports').",
				Parameters: jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"query": {Type: jsonschema.String, Description: "What the user is looking for"},
					},
					Required: []string{"query"},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "searchHotels",
				Description: "Search for hotels. Optional filters: destinationId, maxPrice (CHF/night).",
				Parameters: jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"query":         {Type: jsonschema.String, Description: "What kind of hotel the user wants"},
						"destinationId": {Type: jsonschema.Integer, Description: "Restrict results to one destination"},
						"maxPrice":      {Type: jsonschema.Number, Description: "Maximum price per night in CHF, inclusive"},
					},
					Required: []string{"query"},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "searchActivities",
				Description: "Search for activities. Optional filter: destinationId.",
				Parameters: jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"query":         {Type: jsonschema.String, Description: "What the user wants to do"},
						"destinationId": {Type: jsonschema.Integer, Description: "Restrict results to one destination"},
					},
					Required: []string{"query"},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "addToWishlist",
				Description: "Add an item to the wishlist. itemType: 'destination', 'hotel', or 'activity'. itemId: from search results.",
				Parameters: jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"itemType": {Type: jsonschema.String, Enum: []string{"destination", "hotel", "activity"}},
						"itemId":   {Type: jsonschema.Integer, Description: "ID of the item, taken from search results"},
					},
					Required: []string{"itemType", "itemId"},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "getWishlist",
				Description: "Get the user's wishlist with all saved destinations, hotels, and activities.",
				Parameters: jsonschema.Definition{
					Type:       jsonschema.Object,
					Properties: map[string]jsonschema.Definition{},
				},
			},
		},
	}
}

func (t *TravelTools) Dispatch(ctx context.Context, name string, arguments string) string {
	switch name {
	case "searchDestinations":
		var args searchDestinationsArgs
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return fmt.Sprintf("Error: invalid arguments for searchDestinations: %v", err)
		}
		return t.SearchDestinations(ctx, args.Query)
	case "searchHotels":
		var args searchHotelsArgs
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return fmt.Sprintf("Error: invalid arguments for searchHotels: %v", err)
		}
		return t.SearchHotels(ctx, args.Query, args.DestinationID, args.MaxPrice)
	case "searchActivities":
		var args searchActivitiesArgs
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return fmt.Sprintf("Error: invalid arguments for searchActivities: %v", err)
		}
		return t.SearchActivities(ctx, args.Query, args.DestinationID)
	case "addToWishlist":
		var args addToWishlistArgs
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return fmt.Sprintf("Error: invalid arguments for addToWishlist: %v", err)
		}
		return t.AddToWishlist(ctx, args.ItemType, args.ItemID)
	case "getWishlist":
		return t.GetWishlist(ctx)
	default:
		return fmt.Sprintf("Error: unknown tool: %s", name)
	}
}

func (t *TravelTools) SearchDestinations(ctx context.Context, query string) string {
	vector, err := t.embeddingClient.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("Error embedding destination query: %v", err)
		return fmt.Sprintf("Error: could not process query: %v", err)
	}

	results, err := t.destinationRepo.SearchByVector(ctx, vector, searchLimit)
	if err != nil {
		log.Printf("Error searching destinations by vector: %v", err)
		results = nil
	}
	if len(results) == 0 {
		return "No destinations found matching: " + query
	}

	var sb strings.Builder
	sb.WriteString("Found destinations:\n")
	for _, d := range results {
		fmt.Fprintf(&sb, "- %s (ID:%d, %s): %s\n", d.Name, d.ID, d.Region, d.Description)
	}
	return sb.String()
}

func (t *TravelTools) SearchHotels(ctx context.Context, query string, destinationID *int64, maxPrice *float64) string {
	vector, err := t.embeddingClient.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("Error embedding hotel query: %v", err)
		return fmt.Sprintf("Error: could not process query: %v", err)
	}

	results, err := t.hotelRepo.SearchByVector(ctx, vector, destinationID, maxPrice, searchLimit)
	if err != nil {
		log.Printf("Error searching hotels by vector: %v", err)
		results = nil
	}
	if len(results) == 0 {
		return "No hotels found matching: " + query
	}

	var sb strings.Builder
	sb.WriteString("Found hotels:\n")
	for _, h := range results {
		fmt.Fprintf(&sb, "- %s (ID:%d, CHF %.0f/night): %s\n", h.Name, h.ID, h.PricePerNight, h.Description)
	}
	return sb.String()
}

func (t *TravelTools) SearchActivities(ctx context.Context, query string, destinationID *int64) string {
	vector, err := t.embeddingClient.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("Error embedding activity query: %v", err)
		return fmt.Sprintf("Error: could not process query: %v", err)
	}

	results, err := t.activityRepo.SearchByVector(ctx, vector, destinationID, searchLimit)
	if err != nil {
		log.Printf("Error searching activities by vector: %v", err)
		results = nil
	}
	if len(results) == 0 {
		return "No activities found matching: " + query
	}

	var sb strings.Builder
	sb.WriteString("Found activities:\n")
	for _, a := range results {
		fmt.Fprintf(&sb, "- %s (ID:%d, %s): %s\n", a.Name, a.ID, a.Season, a.Description)
	}
	return sb.String()
}

func (t *TravelTools) AddToWishlist(ctx context.Context, itemType string, itemID int64) string {
	kind := strings.ToLower(itemType)

	var name string
	switch kind {
	case "destination":
		d, err := t.destinationRepo.FindByID(ctx, itemID)
		if err != nil {
			log.Printf("Error looking up destination id=%d: %v", itemID, err)
		}
		if d != nil {
			name = d.Name
		}
	case "hotel":
		h, err := t.hotelRepo.FindByID(ctx, itemID)
		if err != nil {
			log.Printf("Error looking up hotel id=%d: %v", itemID, err)
		}
		if h != nil {
			name = h.Name
		}
	case "activity":
		a, err := t.activityRepo.FindByID(ctx, itemID)
		if err != nil {
			log.Printf("Error looking up activity id=%d: %v", itemID, err)
		}
		if a != nil {
			name = a.Name
		}
	}

	if name == "" {
		return fmt.Sprintf("Error: %s with ID %d not found.", itemType, itemID)
	}

	item := &db_models.WishlistItem{ItemType: kind, ItemID: itemID}
	if err := t.wishlistRepo.Save(ctx, item); err != nil {
		log.Printf("Error saving wishlist item: %v", err)
	}
	return "Added to wishlist: " + name
}

func (t *TravelTools) GetWishlist(ctx context.Context) string {
	items, err := t.wishlistRepo.FindAll(ctx)
	if err != nil {
		log.Printf("Error listing wishlist: %v", err)
		items = nil
	}
	if len(items) == 0 {
		return "Your wishlist is empty."
	}

	var sb strings.Builder
	sb.WriteString("Your wishlist:\n")
	for _, item := range items {
		var detail string
		switch item.ItemType {
		case "destination":
			d, err := t.destinationRepo.FindByID(ctx, item.ItemID)
			if err != nil {
				log.Printf("Error resolving wishlist destination id=%d: %v", item.ItemID, err)
			}
			if d != nil {
				detail = fmt.Sprintf("%s (%s)", d.Name, d.Region)
			} else {
				detail = "Unknown destination"
			}
		case "hotel":
			h, err := t.hotelRepo.FindByID(ctx, item.ItemID)
			if err != nil {
				log.Printf("Error resolving wishlist hotel id=%d: %v", item.ItemID, err)
			}
			if h != nil {
				detail = fmt.Sprintf("%s - CHF %.0f/night", h.Name, h.PricePerNight)
			} else {
				detail = "Unknown hotel"
			}
		case "activity":
			a, err := t.activityRepo.FindByID(ctx, item.ItemID)
			if err != nil {
				log.Printf("Error resolving wishlist activity id=%d: %v", item.ItemID, err)
			}
			if a != nil {
				detail = fmt.Sprintf("%s (%s)", a.Name, a.Season)
			} else {
				detail = "Unknown activity"
			}
		default:
			detail = "Unknown item"
		}
		sb.WriteString("- " + detail + "\n")
	}
	return sb.String()
}
