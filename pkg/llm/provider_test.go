package llm

import (
	"encoding/json"
	"testing"
)

func TestResultText(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   string
	}{
		{
			"primary field wins",
			&Result{Answer: "jawaban utama", OutputText: "alternatif", Raw: json.RawMessage(`{}`)},
			"jawaban utama",
		},
		{
			"alternate field when primary is empty",
			&Result{OutputText: "alternatif", Raw: json.RawMessage(`{}`)},
			"alternatif",
		},
		{
			"stringified body as last resort",
			&Result{Raw: json.RawMessage(`{"weird":"shape"}`)},
			`{"weird":"shape"}`,
		},
		{
			"nil result",
			nil,
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	opts := &Options{}
	for _, apply := range []Option{
		WithTemperature(0.5),
		WithModel("gemini-2.0-flash"),
		WithMaxTokens(1024),
	} {
		apply(opts)
	}

	if opts.Temperature != 0.5 {
		t.Errorf("Temperature = %v, want 0.5", opts.Temperature)
	}
	if opts.Model != "gemini-2.0-flash" {
		t.Errorf("Model = %q, want gemini-2.0-flash", opts.Model)
	}
	if opts.MaxTokens != 1024 {
		t.Errorf("MaxTokens = %d, want 1024", opts.MaxTokens)
	}
}
