package service

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"budaya-aceh-be/internal/entity"
	"budaya-aceh-be/internal/pkg/logger"
	"budaya-aceh-be/internal/repository/contract"
	"budaya-aceh-be/pkg/embedding"
	"budaya-aceh-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const (
	indexChunkSize    = 1000
	indexChunkOverlap = 200
)

// IndexChunkMessage is the payload flowing through the indexing pipeline.
type IndexChunkMessage struct {
	Source     string `json:"source"`
	ChunkIndex int    `json:"chunk_index"`
	Content    string `json:"content"`
}

// IIndexerService builds the knowledge store offline: documents are split
// into overlapping chunks, published on an in-process topic, and a consumer
// embeds each chunk and writes it to the store. The serving path never
// writes; it reads the result as a pre-built index.
type IIndexerService interface {
	PublishDocument(ctx context.Context, source, content string) (int, error)
	Consume(ctx context.Context) error
	Processed() int64
	Failed() int64
}

type indexerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	chunkRepo contract.DocumentChunkRepository
	embedder  embedding.EmbeddingProvider
	logger    logger.ILogger

	processed atomic.Int64
	failed    atomic.Int64
}

func NewIndexerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	chunkRepo contract.DocumentChunkRepository,
	embedder embedding.EmbeddingProvider,
	log logger.ILogger,
) IIndexerService {
	return &indexerService{
		pubSub:    pubSub,
		topicName: topicName,
		chunkRepo: chunkRepo,
		embedder:  embedder,
		logger:    log,
	}
}

// PublishDocument replaces any previously indexed chunks for the source and
// publishes one message per new chunk. Returns the number published.
func (is *indexerService) PublishDocument(ctx context.Context, source, content string) (int, error) {
	if err := is.chunkRepo.DeleteBySource(ctx, source); err != nil {
		return 0, err
	}

	chunks := utils.SplitText(content, indexChunkSize, indexChunkOverlap)
	for i, chunk := range chunks {
		payload, err := json.Marshal(IndexChunkMessage{
			Source:     source,
			ChunkIndex: i,
			Content:    chunk,
		})
		if err != nil {
			return i, err
		}
		msg := message.NewMessage(watermill.NewUUID(), payload)
		if err := is.pubSub.Publish(is.topicName, msg); err != nil {
			return i, err
		}
	}
	return len(chunks), nil
}

func (is *indexerService) Consume(ctx context.Context) error {
	messages, err := is.pubSub.Subscribe(ctx, is.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			is.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (is *indexerService) Processed() int64 {
	return is.processed.Load()
}

func (is *indexerService) Failed() int64 {
	return is.failed.Load()
}

func (is *indexerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload IndexChunkMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		is.logger.Error("indexer", "Failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		is.failed.Add(1)
		msg.Ack()
		return
	}

	embeddingRes, err := is.embedder.Generate(ctx, payload.Content, embedding.TaskTypeRetrievalDocument)
	if err != nil {
		is.logger.Error("indexer", "Failed to embed chunk", map[string]interface{}{
			"source":      payload.Source,
			"chunk_index": payload.ChunkIndex,
			"error":       err.Error(),
		})
		// The in-process channel redelivers nacked messages immediately;
		// failed chunks are counted and reported at the end of the run
		// instead of retried.
		is.failed.Add(1)
		msg.Ack()
		return
	}

	chunk := &entity.DocumentChunk{
		Id:         uuid.New(),
		Document:   payload.Content,
		Source:     payload.Source,
		ChunkIndex: payload.ChunkIndex,
		Embedding:  embeddingRes.Embedding.Values,
	}
	if err := is.chunkRepo.CreateBulk(ctx, []*entity.DocumentChunk{chunk}); err != nil {
		is.logger.Error("indexer", "Failed to store chunk", map[string]interface{}{
			"source":      payload.Source,
			"chunk_index": payload.ChunkIndex,
			"error":       err.Error(),
		})
		is.failed.Add(1)
		msg.Ack()
		return
	}

	is.processed.Add(1)
	msg.Ack()
}
