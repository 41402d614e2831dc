package rag

import (
	"context"
	"time"

	"budaya-aceh-be/internal/entity"
	"budaya-aceh-be/internal/pkg/logger"
	"budaya-aceh-be/pkg/llm"
	"budaya-aceh-be/pkg/rag/history"
	"budaya-aceh-be/pkg/rag/prompt"
	"budaya-aceh-be/pkg/rag/safety"
)

const (
	// RefusalMessage is returned verbatim for inputs the safety filter flags.
	RefusalMessage = "Maaf, permintaan Anda tidak sesuai topik."

	// FallbackMessage is returned verbatim when retrieval or generation fails.
	FallbackMessage = "Mohon maaf, terjadi kendala saat mencari jawaban."
)

// ContextRetriever is what the orchestrator needs from the retrieval side.
type ContextRetriever interface {
	Retrieve(ctx context.Context, query string, k int) ([]*entity.DocumentChunk, error)
}

// Orchestrator wires the safety filter, retriever, prompt builder,
// conversation memory and responder into the answer pipeline. It is only
// constructed when every collaborator is available; a missing collaborator
// disables the chat capability entirely at bootstrap.
type Orchestrator struct {
	retriever ContextRetriever
	composer  *prompt.Builder
	memory    *history.Memory
	responder llm.LLMProvider
	logger    logger.ILogger
	topK      int
	timeout   time.Duration
}

func NewOrchestrator(
	retriever ContextRetriever,
	responder llm.LLMProvider,
	memory *history.Memory,
	log logger.ILogger,
	topK int,
	timeout time.Duration,
) *Orchestrator {
	if topK <= 0 {
		topK = 5
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Orchestrator{
		retriever: retriever,
		composer:  prompt.NewBuilder(),
		memory:    memory,
		responder: responder,
		logger:    log,
		topK:      topK,
		timeout:   timeout,
	}
}

// Memory exposes the shared conversation log (read side).
func (o *Orchestrator) Memory() *history.Memory {
	return o.memory
}

// Answer runs one question through the full pipeline and always returns a
// user-presentable string. Failures are logged and converted to the fixed
// fallback; callers never see a raw error from this path.
func (o *Orchestrator) Answer(ctx context.Context, question string) string {
	if safety.IsInjection(question) {
		// Rejected exchanges are logged for audit but never written into
		// conversation memory as a turn.
		o.logger.Warn("rag", "Injection attempt rejected", map[string]interface{}{
			"question": question,
		})
		return RefusalMessage
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	// The raw question is the retrieval query; follow-ups that lean on
	// pronouns are grounded by the responder's history handling instead.
	chunks, err := o.retriever.Retrieve(ctx, question, o.topK)
	if err != nil {
		o.logger.Error("rag", "Retrieval failed", map[string]interface{}{
			"question": question,
			"error":    err.Error(),
		})
		return FallbackMessage
	}

	promptText := o.composer.Compose(chunks, question)

	fullHistory := append(o.memory.History(), llm.Message{
		Role:    llm.RoleUser,
		Content: promptText,
	})

	result, err := o.responder.Chat(ctx, fullHistory)
	if err != nil {
		o.logger.Error("rag", "Generation failed", map[string]interface{}{
			"question": question,
			"error":    err.Error(),
		})
		return FallbackMessage
	}

	// Probe the primary answer field, then the alternate, then fall back
	// to the stringified body. Tolerates schema drift from the backend.
	answer := result.Text()

	o.memory.Append(llm.RoleUser, question)
	o.memory.Append(llm.RoleAssistant, answer)

	o.logger.Info("rag", "Answer generated", map[string]interface{}{
		"chunks_retrieved": len(chunks),
		"history_turns":    o.memory.Len(),
	})

	return answer
}
