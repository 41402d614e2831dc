package service

import (
	"context"

	"budaya-aceh-be/internal/dto"
	"budaya-aceh-be/internal/pkg/serverutils"
	"budaya-aceh-be/pkg/sentiment"

	"github.com/gofiber/fiber/v2"
)

// ErrSentimentUnavailable is returned while the classifier artifact could
// not be loaded at startup. The cleaner and tokenizer are never invoked in
// that state.
var ErrSentimentUnavailable = serverutils.NewApiError(
	fiber.StatusServiceUnavailable,
	"Model atau tokenizer sentimen tidak tersedia.",
)

type ISentimentService interface {
	Predict(ctx context.Context, request *dto.SentimentRequest) (*dto.SentimentResponse, error)
}

type sentimentService struct {
	classifier *sentiment.Classifier // nil when the artifact failed to load
}

func NewSentimentService(classifier *sentiment.Classifier) ISentimentService {
	return &sentimentService{
		classifier: classifier,
	}
}

func (ss *sentimentService) Predict(ctx context.Context, request *dto.SentimentRequest) (*dto.SentimentResponse, error) {
	if ss.classifier == nil {
		return nil, ErrSentimentUnavailable
	}

	label := ss.classifier.Classify(request.Text)

	return &dto.SentimentResponse{
		InputText:  request.Text,
		Sentiment:  label,
		Disclaimer: sentiment.Disclaimer,
	}, nil
}
