package bootstrap

import (
	"time"

	"budaya-aceh-be/internal/config"
	"budaya-aceh-be/internal/controller"
	"budaya-aceh-be/internal/pkg/logger"
	"budaya-aceh-be/internal/repository/implementation"
	"budaya-aceh-be/internal/service"
	"budaya-aceh-be/pkg/embedding"
	"budaya-aceh-be/pkg/llm"
	"budaya-aceh-be/pkg/llm/factory"
	"budaya-aceh-be/pkg/rag"
	"budaya-aceh-be/pkg/rag/history"
	"budaya-aceh-be/pkg/rag/retriever"
	"budaya-aceh-be/pkg/sentiment"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatbotController   controller.IChatbotController
	SentimentController controller.ISentimentController
	HealthController    controller.IHealthController

	Logger logger.ILogger
}

// NewContainer wires every dependency explicitly. Collaborators are
// optional at startup: a missing knowledge store, embedder, generative
// backend or classifier artifact disables the corresponding capability
// (reported per-request as 503) instead of failing the process.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// --- Chat capability (RAG) ---
	embeddingProvider := NewEmbeddingProviderFromConfig(cfg, sysLogger)

	var llmProvider llm.LLMProvider
	provider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		sysLogger.Warn("bootstrap", "LLM provider unavailable, chat capability will be disabled", map[string]interface{}{
			"provider": cfg.Ai.LLMProvider,
			"error":    err.Error(),
		})
	} else {
		llmProvider = provider
		sysLogger.Info("bootstrap", "LLM provider ready", map[string]interface{}{
			"provider": cfg.Ai.LLMProvider,
			"model":    cfg.Ai.LLMModel,
		})
	}

	var orchestrator *rag.Orchestrator
	if db != nil && embeddingProvider != nil && llmProvider != nil {
		chunkRepo := implementation.NewDocumentChunkRepository(db)
		ragRetriever := retriever.NewRetriever(embeddingProvider, chunkRepo)
		orchestrator = rag.NewOrchestrator(
			ragRetriever,
			llmProvider,
			history.NewMemory(),
			sysLogger,
			cfg.Ai.RetrievalTopK,
			time.Duration(cfg.Ai.RequestTimeout)*time.Second,
		)
		sysLogger.Info("bootstrap", "RAG chain Budaya Aceh ready", map[string]interface{}{
			"top_k": cfg.Ai.RetrievalTopK,
		})
	} else {
		sysLogger.Warn("bootstrap", "RAG chain not constructed, chat capability disabled", map[string]interface{}{
			"store_ready":     db != nil,
			"embedder_ready":  embeddingProvider != nil,
			"responder_ready": llmProvider != nil,
		})
	}

	// --- Sentiment capability ---
	classifier, err := sentiment.Load(cfg.Sentiment.ModelPath)
	if err != nil {
		sysLogger.Warn("bootstrap", "Sentiment classifier unavailable", map[string]interface{}{
			"path":  cfg.Sentiment.ModelPath,
			"error": err.Error(),
		})
		classifier = nil
	} else {
		sysLogger.Info("bootstrap", "Sentiment classifier loaded", map[string]interface{}{
			"path": cfg.Sentiment.ModelPath,
		})
	}

	chatbotService := service.NewChatbotService(orchestrator)
	sentimentService := service.NewSentimentService(classifier)

	return &Container{
		ChatbotController:   controller.NewChatbotController(chatbotService),
		SentimentController: controller.NewSentimentController(sentimentService),
		HealthController:    controller.NewHealthController(),
		Logger:              sysLogger,
	}
}

// NewEmbeddingProviderFromConfig selects the embedding backend from config.
// Returns nil when the selected backend cannot be constructed.
func NewEmbeddingProviderFromConfig(cfg *config.Config, sysLogger logger.ILogger) embedding.EmbeddingProvider {
	if cfg.Ai.EmbeddingProvider == "ollama" {
		sysLogger.Info("bootstrap", "Using Embedding Provider: OLLAMA", map[string]interface{}{
			"model": cfg.Ai.OllamaModel,
		})
		return embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	}

	if cfg.Keys.GoogleGemini == "" {
		sysLogger.Warn("bootstrap", "GOOGLE_API_KEY not set, embedding provider unavailable", nil)
		return nil
	}
	sysLogger.Info("bootstrap", "Using Embedding Provider: GEMINI", nil)
	return embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
}
