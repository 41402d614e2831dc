package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentChunk is one embedded fragment of the cultural knowledge corpus.
// Chunks are written by the indexer and read-only at query time.
type DocumentChunk struct {
	Id         uuid.UUID
	Document   string
	Source     string
	ChunkIndex int
	Embedding  []float32
	Similarity float64
	CreatedAt  time.Time
}
