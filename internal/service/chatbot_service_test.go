package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"budaya-aceh-be/internal/dto"
	"budaya-aceh-be/internal/entity"
	"budaya-aceh-be/pkg/llm"
	"budaya-aceh-be/pkg/rag"
	"budaya-aceh-be/pkg/rag/history"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type stubRetriever struct {
	chunks []*entity.DocumentChunk
	err    error
}

func (s *stubRetriever) Retrieve(ctx context.Context, query string, k int) ([]*entity.DocumentChunk, error) {
	return s.chunks, s.err
}

type stubResponder struct {
	result *llm.Result
	err    error
}

func (s *stubResponder) Chat(ctx context.Context, h []llm.Message, options ...llm.Option) (*llm.Result, error) {
	return s.result, s.err
}

func (s *stubResponder) Generate(ctx context.Context, prompt string, options ...llm.Option) (*llm.Result, error) {
	return s.result, s.err
}

func TestChatbotServiceChat(t *testing.T) {
	orchestrator := rag.NewOrchestrator(
		&stubRetriever{chunks: []*entity.DocumentChunk{{Document: "Kopi Gayo tumbuh di dataran tinggi Gayo."}}},
		&stubResponder{result: &llm.Result{Answer: "Kopi Gayo adalah kopi arabika khas Aceh."}},
		history.NewMemory(),
		nopLogger{},
		5,
		time.Second,
	)
	cs := NewChatbotService(orchestrator)

	res, err := cs.Chat(context.Background(), &dto.ChatRequest{Message: "Ceritakan tentang Kopi Gayo."})

	require.NoError(t, err)
	assert.Equal(t, "Ceritakan tentang Kopi Gayo.", res.UserMessage)
	assert.Equal(t, "Kopi Gayo adalah kopi arabika khas Aceh.", res.BotResponse)
}

func TestChatbotServiceChatDegraded(t *testing.T) {
	orchestrator := rag.NewOrchestrator(
		&stubRetriever{err: errors.New("connection refused")},
		&stubResponder{},
		history.NewMemory(),
		nopLogger{},
		5,
		time.Second,
	)
	cs := NewChatbotService(orchestrator)

	res, err := cs.Chat(context.Background(), &dto.ChatRequest{Message: "Apa itu Tari Saman?"})

	require.NoError(t, err, "pipeline failures surface as the apology answer, not an API error")
	assert.Equal(t, rag.FallbackMessage, res.BotResponse)
}

func TestChatbotServiceUnavailable(t *testing.T) {
	cs := NewChatbotService(nil)

	// The unavailable state is stable: every request gets the same error.
	for i := 0; i < 3; i++ {
		res, err := cs.Chat(context.Background(), &dto.ChatRequest{Message: "halo"})
		assert.Nil(t, res)
		assert.Equal(t, ErrChatUnavailable, err)
	}
}
