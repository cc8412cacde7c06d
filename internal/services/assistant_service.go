package services

import (
	"context"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"
	"swisstravel/pkg/utils"
)

// maxToolIterations bounds the LLM/tool round-trips inside a single chat
// turn so a model that keeps requesting tools cannot loop forever.
const maxToolIterations = 8

const fallbackReply = "Sorry, I couldn't complete that request."

const systemPrompt = `You are a friendly and knowledgeable Swiss travel advisor assistant.

Your role is to help users discover amazing destinations, hotels, and activities in Switzerland.

IMPORTANT INSTRUCTIONS:
- ALWAYS use the available tools (searchDestinations, searchHotels, searchActivities, addToWishlist, getWishlist)
- When users ask about places to visit, use searchDestinations
- When users ask about accommodations, use searchHotels (you can filter by destination and price)
- When users ask about things to do, use searchActivities
- When users express interest in something, proactively add it to their wishlist using addToWishlist
- Present search results in a clear, friendly format with relevant details
- Use 1-2 relevant emojis to make responses warm and engaging
- Be proactive but don't overexplain what you're doing - just do it and show results
- Mention prices in CHF for hotels
- Include seasonal information for activities
- If results include IDs, remember them for follow-up questions

Examples of good responses:
- "Here are some amazing mountain destinations for you!"
- "I found these cozy hotels in your budget range!"
- "Added to your wishlist! You're going to love it there!"

Be helpful and enthusiastic.`

// ChatCompleter is the slice of the OpenAI client the assistant needs;
// *openai.Client satisfies it.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type AssistantServiceInterface interface {
	Chat(ctx context.Context, userMessage string) (string, error)
}

type AssistantService struct {
	llm   ChatCompleter
	model string
	tools TravelToolsInterface
}

func NewAssistantService(llm ChatCompleter, model string, tools TravelToolsInterface) AssistantServiceInterface {
	return &AssistantService{
		llm:   llm,
		model: model,
		tools: tools,
	}
}

// Chat runs one turn: it keeps answering tool-call requests until the model
// produces a plain assistant message, or the iteration cap is hit.
func (s *AssistantService) Chat(ctx context.Context, userMessage string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: userMessage},
	}

	lastAssistantText := ""

	for i := 0; i < maxToolIterations; i++ {
		resp, err := s.llm.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    s.model,
			Messages: messages,
			Tools:    s.tools.Definitions(),
		})
		if err != nil {
			return "", fmt.Errorf("%w: %v", utils.ErrAssistantUnavailable, err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("%w: model returned no choices", utils.ErrAssistantUnavailable)
		}

		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			return msg.Content, nil
		}
		if msg.Content != "" {
			lastAssistantText = msg.Content
		}

		messages = append(messages, msg)
		for _, call := range msg.ToolCalls {
			result := s.tools.Dispatch(ctx, call.Function.Name, call.Function.Arguments)
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    result,
				ToolCallID: call.ID,
			})
		}
	}

	log.Printf("Chat turn exceeded %d tool iterations, returning fallback", maxToolIterations)
	if lastAssistantText != "" {
		return lastAssistantText, nil
	}
	return fallbackReply, nil
}
