package contract

import (
	"context"

	"budaya-aceh-be/internal/entity"
)

// ScoredDocumentChunk pairs a chunk with its cosine similarity to a query.
type ScoredDocumentChunk struct {
	Chunk      *entity.DocumentChunk
	Similarity float64
}

type DocumentChunkRepository interface {
	CreateBulk(ctx context.Context, chunks []*entity.DocumentChunk) error
	Count(ctx context.Context) (int64, error)
	DeleteBySource(ctx context.Context, source string) error

	// SearchSimilar returns up to limit chunks ordered by descending cosine
	// similarity to the query embedding. An empty result is not an error.
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*ScoredDocumentChunk, error)
}
