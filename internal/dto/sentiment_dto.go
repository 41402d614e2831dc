package dto

// Text is intentionally not required: an empty input still gets a
// deterministic prediction.
type SentimentRequest struct {
	Text string `json:"text"`
}

type SentimentResponse struct {
	InputText  string `json:"input_text"`
	Sentiment  string `json:"sentiment"`
	Disclaimer string `json:"disclaimer"`
}
