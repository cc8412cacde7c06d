package services

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"swisstravel/pkg/utils"
)

func assistantResponse(msg openai.ChatCompletionMessage) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: msg}},
	}
}

func toolCallResponse(calls ...openai.ToolCall) openai.ChatCompletionResponse {
	return assistantResponse(openai.ChatCompletionMessage{
		Role:      openai.ChatMessageRoleAssistant,
		ToolCalls: calls,
	})
}

func TestChatReturnsDirectAnswer(t *testing.T) {
	llm := new(MockChatCompleter)
	tools := new(MockTravelTools)
	tools.On("Definitions").Return([]openai.Tool{})

	llm.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(assistantResponse(openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleAssistant,
			Content: "Zermatt is lovely in winter!",
		}), nil).Once()

	service := NewAssistantService(llm, "gpt-4o-mini", tools)
	reply, err := service.Chat(context.Background(), "tell me about Zermatt")

	require.NoError(t, err)
	assert.Equal(t, "Zermatt is lovely in winter!", reply)
}

func TestChatSeedsTranscript(t *testing.T) {
	llm := new(MockChatCompleter)
	tools := new(MockTravelTools)
	tools.On("Definitions").Return([]openai.Tool{})

	var captured openai.ChatCompletionRequest
	llm.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(openai.ChatCompletionRequest)
		}).
		Return(assistantResponse(openai.ChatCompletionMessage{Content: "hi"}), nil).Once()

	service := NewAssistantService(llm, "gpt-4o-mini", tools)
	_, err := service.Chat(context.Background(), "hello")

	require.NoError(t, err)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, captured.Messages[0].Role)
	assert.Equal(t, systemPrompt, captured.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, captured.Messages[1].Role)
	assert.Equal(t, "hello", captured.Messages[1].Content)
	assert.Equal(t, "gpt-4o-mini", captured.Model)
}

func TestChatDispatchesToolCallsInOrder(t *testing.T) {
	llm := new(MockChatCompleter)
	tools := new(MockTravelTools)
	tools.On("Definitions").Return([]openai.Tool{})

	first := toolCallResponse(
		openai.ToolCall{
			ID:   "call_1",
			Type: openai.ToolTypeFunction,
			Function: openai.FunctionCall{
				Name:      "searchDestinations",
				Arguments: `{"query":"lakes"}`,
			},
		},
		openai.ToolCall{
			ID:   "call_2",
			Type: openai.ToolTypeFunction,
			Function: openai.FunctionCall{
				Name:      "getWishlist",
				Arguments: `{}`,
			},
		},
	)

	var second openai.ChatCompletionRequest
	llm.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(first, nil).Once()
	llm.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			second = args.Get(1).(openai.ChatCompletionRequest)
		}).
		Return(assistantResponse(openai.ChatCompletionMessage{Content: "Here you go!"}), nil).Once()

	tools.On("Dispatch", mock.Anything, "searchDestinations", `{"query":"lakes"}`).
		Return("Found destinations:\n- Lucerne (ID:7, Lucerne): Lake city\n").Once()
	tools.On("Dispatch", mock.Anything, "getWishlist", `{}`).
		Return("Your wishlist is empty.").Once()

	service := NewAssistantService(llm, "gpt-4o-mini", tools)
	reply, err := service.Chat(context.Background(), "lakes please")

	require.NoError(t, err)
	assert.Equal(t, "Here you go!", reply)
	tools.AssertExpectations(t)

	// Transcript on the second round: system, user, assistant tool-call
	// message, then one tool result per call, in call order.
	require.Len(t, second.Messages, 5)
	assert.Equal(t, openai.ChatMessageRoleTool, second.Messages[3].Role)
	assert.Equal(t, "call_1", second.Messages[3].ToolCallID)
	assert.Equal(t, "Found destinations:\n- Lucerne (ID:7, Lucerne): Lake city\n", second.Messages[3].Content)
	assert.Equal(t, openai.ChatMessageRoleTool, second.Messages[4].Role)
	assert.Equal(t, "call_2", second.Messages[4].ToolCallID)
}

func TestChatStopsAtIterationCap(t *testing.T) {
	llm := new(MockChatCompleter)
	tools := new(MockTravelTools)
	tools.On("Definitions").Return([]openai.Tool{})

	llm.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(toolCallResponse(openai.ToolCall{
			ID:   "call_loop",
			Type: openai.ToolTypeFunction,
			Function: openai.FunctionCall{
				Name:      "searchDestinations",
				Arguments: `{"query":"x"}`,
			},
		}), nil)
	tools.On("Dispatch", mock.Anything, "searchDestinations", `{"query":"x"}`).
		Return("No destinations found matching: x")

	service := NewAssistantService(llm, "gpt-4o-mini", tools)
	reply, err := service.Chat(context.Background(), "x")

	require.NoError(t, err)
	assert.Equal(t, "Sorry, I couldn't complete that request.", reply)
	llm.AssertNumberOfCalls(t, "CreateChatCompletion", maxToolIterations)
}

func TestChatLLMFailure(t *testing.T) {
	llm := new(MockChatCompleter)
	tools := new(MockTravelTools)
	tools.On("Definitions").Return([]openai.Tool{})

	llm.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{}, errors.New("timeout"))

	service := NewAssistantService(llm, "gpt-4o-mini", tools)
	_, err := service.Chat(context.Background(), "hello")

	assert.ErrorIs(t, err, utils.ErrAssistantUnavailable)
}
