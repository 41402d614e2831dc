package service

import (
	"context"

	"budaya-aceh-be/internal/dto"
	"budaya-aceh-be/internal/pkg/serverutils"
	"budaya-aceh-be/pkg/rag"

	"github.com/gofiber/fiber/v2"
)

// ErrChatUnavailable is returned for every request while the chat
// capability is disabled (knowledge store, embedder or generative backend
// missing at startup). Detail text mirrors the service's API contract.
var ErrChatUnavailable = serverutils.NewApiError(
	fiber.StatusServiceUnavailable,
	"RAG chain Budaya Aceh belum tersedia.",
)

type IChatbotService interface {
	Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatbotService struct {
	// orchestrator is nil when the capability could not be constructed at
	// bootstrap; every request then reports unavailable with no side effects.
	orchestrator *rag.Orchestrator
}

func NewChatbotService(orchestrator *rag.Orchestrator) IChatbotService {
	return &chatbotService{
		orchestrator: orchestrator,
	}
}

func (cs *chatbotService) Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	if cs.orchestrator == nil {
		return nil, ErrChatUnavailable
	}

	answer := cs.orchestrator.Answer(ctx, request.Message)

	return &dto.ChatResponse{
		UserMessage: request.Message,
		BotResponse: answer,
	}, nil
}
