package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"swisstravel/internal/models/request_models"
	"swisstravel/internal/services"
	"swisstravel/pkg/utils"
)

type ChatController struct {
	assistantService services.AssistantServiceInterface
}

func NewChatController(assistantService services.AssistantServiceInterface) *ChatController {
	return &ChatController{
		assistantService: assistantService,
	}
}

// Chat handles POST /api/chat with a JSON body; the reply is plain text.
func (ct *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := ct.assistantService.Chat(c.Request.Context(), req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.String(http.StatusOK, reply)
}

// ChatQuery is the GET variant: /api/chat?q=...
func (ct *ChatController) ChatQuery(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "q query parameter is required")
		return
	}

	reply, err := ct.assistantService.Chat(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.String(http.StatusOK, reply)
}
