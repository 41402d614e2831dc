package dto

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	UserMessage string `json:"user_message"`
	BotResponse string `json:"bot_response"`
}
