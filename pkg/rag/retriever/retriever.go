package retriever

import (
	"context"
	"fmt"
	"time"

	"budaya-aceh-be/internal/entity"
	"budaya-aceh-be/internal/repository/contract"
	"budaya-aceh-be/pkg/embedding"

	"github.com/patrickmn/go-cache"
)

// Retriever embeds a query and runs a similarity search against the
// document chunk store. Query embeddings are cached so repeated questions
// do not re-hit the embedding backend.
type Retriever struct {
	embedder       embedding.EmbeddingProvider
	chunkRepo      contract.DocumentChunkRepository
	embeddingCache *cache.Cache
}

func NewRetriever(embedder embedding.EmbeddingProvider, chunkRepo contract.DocumentChunkRepository) *Retriever {
	return &Retriever{
		embedder:       embedder,
		chunkRepo:      chunkRepo,
		embeddingCache: cache.New(1*time.Hour, 10*time.Minute),
	}
}

// Retrieve returns up to k chunks ordered by descending similarity to the
// query. No matches is an empty slice, never an error.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) ([]*entity.DocumentChunk, error) {
	queryEmbedding, err := r.embedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	scored, err := r.chunkRepo.SearchSimilar(ctx, queryEmbedding, k)
	if err != nil {
		return nil, fmt.Errorf("similarity search failed: %w", err)
	}

	chunks := make([]*entity.DocumentChunk, 0, len(scored))
	for _, s := range scored {
		chunks = append(chunks, s.Chunk)
	}
	return chunks, nil
}

func (r *Retriever) embedQuery(ctx context.Context, query string) ([]float32, error) {
	if cached, found := r.embeddingCache.Get(query); found {
		return cached.([]float32), nil
	}

	res, err := r.embedder.Generate(ctx, query, embedding.TaskTypeRetrievalQuery)
	if err != nil {
		return nil, err
	}

	values := res.Embedding.Values
	r.embeddingCache.Set(query, values, cache.DefaultExpiration)
	return values, nil
}
