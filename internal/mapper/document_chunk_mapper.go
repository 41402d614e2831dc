package mapper

import (
	"budaya-aceh-be/internal/entity"
	"budaya-aceh-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type DocumentChunkMapper struct{}

func NewDocumentChunkMapper() *DocumentChunkMapper {
	return &DocumentChunkMapper{}
}

func (m *DocumentChunkMapper) ToModel(e *entity.DocumentChunk) *model.DocumentChunk {
	return &model.DocumentChunk{
		Id:             e.Id,
		Document:       e.Document,
		Source:         e.Source,
		ChunkIndex:     e.ChunkIndex,
		EmbeddingValue: pgvector.NewVector(e.Embedding),
		CreatedAt:      e.CreatedAt,
	}
}

func (m *DocumentChunkMapper) ToEntity(mo *model.DocumentChunk) *entity.DocumentChunk {
	return &entity.DocumentChunk{
		Id:         mo.Id,
		Document:   mo.Document,
		Source:     mo.Source,
		ChunkIndex: mo.ChunkIndex,
		Embedding:  mo.EmbeddingValue.Slice(),
		CreatedAt:  mo.CreatedAt,
	}
}
