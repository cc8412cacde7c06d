package request_models

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}
