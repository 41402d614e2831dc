package sentiment

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

const (
	LabelPositive = "positive"
	LabelNegative = "negative"

	// Disclaimer ships with every prediction; the model is a prototype
	// trained on a general (non-cultural) dataset.
	Disclaimer = "Model ini adalah prototipe yang dilatih pada dataset umum (non-budaya)."

	// MaxTokens is the fixed encoding window. Longer inputs are truncated,
	// shorter ones padded.
	MaxTokens = 128

	padTokenId = 0
)

// artifact is the serialized model: a token vocabulary and a weight per
// token id, exported from the training run. The classifier itself is a
// linear scorer over the token window; the heavy lifting happened at
// training time, which is out of scope here.
type artifact struct {
	Vocab   map[string]int `json:"vocab"`
	Weights []float64      `json:"weights"`
	Bias    float64        `json:"bias"`
}

type Classifier struct {
	vocab   map[string]int
	weights []float64
	bias    float64
}

// Load reads a classifier artifact from disk. A missing or malformed
// artifact is reported to the caller, which degrades the sentiment
// capability instead of crashing the process.
func Load(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sentiment artifact: %w", err)
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to parse sentiment artifact: %w", err)
	}
	if len(a.Vocab) == 0 || len(a.Weights) == 0 {
		return nil, fmt.Errorf("sentiment artifact is empty")
	}
	// An input that cleans to nothing scores as the bias alone; a positive
	// bias would label it "positive", so such artifacts are rejected.
	if a.Bias > 0 {
		return nil, fmt.Errorf("sentiment artifact has positive bias %v", a.Bias)
	}
	for _, id := range a.Vocab {
		if id <= padTokenId || id >= len(a.Weights) {
			return nil, fmt.Errorf("sentiment artifact has token id %d out of range", id)
		}
	}

	return &Classifier{
		vocab:   a.Vocab,
		weights: a.Weights,
		bias:    a.Bias,
	}, nil
}

// NewClassifier builds a classifier directly from its parameters (tests).
func NewClassifier(vocab map[string]int, weights []float64, bias float64) *Classifier {
	return &Classifier{vocab: vocab, weights: weights, bias: bias}
}

// Encode tokenizes cleaned text into the fixed window: whitespace split,
// vocabulary lookup (unknown words map to the pad id), truncate or pad to
// MaxTokens.
func (c *Classifier) Encode(cleaned string) []int {
	ids := make([]int, 0, MaxTokens)
	if cleaned != "" {
		for _, word := range strings.Fields(cleaned) {
			if len(ids) == MaxTokens {
				break
			}
			id, ok := c.vocab[word]
			if !ok {
				id = padTokenId
			}
			ids = append(ids, id)
		}
	}
	for len(ids) < MaxTokens {
		ids = append(ids, padTokenId)
	}
	return ids
}

// Classify cleans, encodes and scores the text. Deterministic for a fixed
// artifact: positive iff the linear score over the token window exceeds
// zero. An input that cleans to nothing scores as the bias alone.
func (c *Classifier) Classify(text string) string {
	ids := c.Encode(Clean(text))

	score := c.bias
	for _, id := range ids {
		if id == padTokenId {
			continue
		}
		score += c.weights[id]
	}

	if score > 0 {
		return LabelPositive
	}
	return LabelNegative
}
