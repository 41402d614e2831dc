package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"budaya-aceh-be/internal/dto"
	"budaya-aceh-be/internal/pkg/serverutils"
	"budaya-aceh-be/internal/service"
	"budaya-aceh-be/pkg/sentiment"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatbotService struct {
	res *dto.ChatResponse
	err error
}

func (s *stubChatbotService) Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	return s.res, s.err
}

type stubSentimentService struct {
	res *dto.SentimentResponse
	err error
}

func (s *stubSentimentService) Predict(ctx context.Context, request *dto.SentimentRequest) (*dto.SentimentResponse, error) {
	return s.res, s.err
}

func newTestApp(chatbot service.IChatbotService, sentimentSvc service.ISentimentService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewHealthController().RegisterRoutes(app)
	NewChatbotController(chatbot).RegisterRoutes(app)
	NewSentimentController(sentimentSvc).RegisterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestHealthRoutes(t *testing.T) {
	app := newTestApp(&stubChatbotService{}, &stubSentimentService{})

	status, body := getJSON(t, app, "/healthz")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	status, body = getJSON(t, app, "/")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "API Budaya Aceh & Analisis Sentimen sedang berjalan", body["status"])
}

func TestChatEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app := newTestApp(&stubChatbotService{res: &dto.ChatResponse{
			UserMessage: "Ceritakan tentang Kopi Gayo.",
			BotResponse: "Kopi Gayo adalah kopi arabika khas Aceh.",
		}}, &stubSentimentService{})

		status, body := postJSON(t, app, "/chat_budaya", `{"message":"Ceritakan tentang Kopi Gayo."}`)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "Ceritakan tentang Kopi Gayo.", body["user_message"])
		assert.Equal(t, "Kopi Gayo adalah kopi arabika khas Aceh.", body["bot_response"])
	})

	t.Run("empty message is rejected", func(t *testing.T) {
		app := newTestApp(&stubChatbotService{}, &stubSentimentService{})

		status, body := postJSON(t, app, "/chat_budaya", `{"message":""}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.Contains(t, body["detail"], "Message")
	})

	t.Run("malformed body", func(t *testing.T) {
		app := newTestApp(&stubChatbotService{}, &stubSentimentService{})

		status, _ := postJSON(t, app, "/chat_budaya", `{"message":`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	})

	t.Run("unavailable", func(t *testing.T) {
		app := newTestApp(&stubChatbotService{err: service.ErrChatUnavailable}, &stubSentimentService{})

		status, body := postJSON(t, app, "/chat_budaya", `{"message":"halo"}`)
		assert.Equal(t, fiber.StatusServiceUnavailable, status)
		assert.Equal(t, "RAG chain Budaya Aceh belum tersedia.", body["detail"])
	})
}

func TestSentimentEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app := newTestApp(&stubChatbotService{}, &stubSentimentService{res: &dto.SentimentResponse{
			InputText:  "Kopi Gayo enak sekali",
			Sentiment:  sentiment.LabelPositive,
			Disclaimer: sentiment.Disclaimer,
		}})

		status, body := postJSON(t, app, "/predict_sentiment", `{"text":"Kopi Gayo enak sekali"}`)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "Kopi Gayo enak sekali", body["input_text"])
		assert.Equal(t, sentiment.LabelPositive, body["sentiment"])
		assert.Equal(t, sentiment.Disclaimer, body["disclaimer"])
	})

	t.Run("empty text is accepted", func(t *testing.T) {
		app := newTestApp(&stubChatbotService{}, &stubSentimentService{res: &dto.SentimentResponse{
			InputText:  "",
			Sentiment:  sentiment.LabelNegative,
			Disclaimer: sentiment.Disclaimer,
		}})

		status, body := postJSON(t, app, "/predict_sentiment", `{"text":""}`)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, sentiment.LabelNegative, body["sentiment"])
	})

	t.Run("unavailable", func(t *testing.T) {
		app := newTestApp(&stubChatbotService{}, &stubSentimentService{err: service.ErrSentimentUnavailable})

		status, body := postJSON(t, app, "/predict_sentiment", `{"text":"enak"}`)
		assert.Equal(t, fiber.StatusServiceUnavailable, status)
		assert.Equal(t, "Model atau tokenizer sentimen tidak tersedia.", body["detail"])
	})
}

func TestChatRateLimit(t *testing.T) {
	app := newTestApp(&stubChatbotService{res: &dto.ChatResponse{
		UserMessage: "halo",
		BotResponse: "halo juga",
	}}, &stubSentimentService{})

	var lastStatus int
	var lastBody map[string]interface{}
	for i := 0; i < 21; i++ {
		lastStatus, lastBody = postJSON(t, app, "/chat_budaya", `{"message":"halo"}`)
	}

	assert.Equal(t, fiber.StatusTooManyRequests, lastStatus)
	assert.Equal(t, "Rate limit exceeded: 20 per 1 minute", lastBody["detail"])
}
