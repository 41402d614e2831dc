package sentiment

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testClassifier() *Classifier {
	// weights[0] is the pad slot and never contributes to the score.
	return NewClassifier(
		map[string]int{
			"enak":  1,
			"bagus": 2,
			"buruk": 3,
			"jelek": 4,
		},
		[]float64{0, 2.0, 1.5, -2.0, -1.5},
		-0.5,
	)
}

func TestClassify(t *testing.T) {
	c := testClassifier()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"positive words", "Kopi Gayo enak dan bagus", LabelPositive},
		{"negative words", "pelayanannya buruk dan jelek", LabelNegative},
		{"unknown words score as bias", "kata kata asing semua", LabelNegative},
		{"empty input scores as bias", "", LabelNegative},
		{"noise cleaned before scoring", "ENAK!!! http://x.co @user #tag", LabelPositive},
		{"mixed leans negative", "enak tapi buruk dan jelek", LabelNegative},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := testClassifier()
	first := c.Classify("Kopi Gayo enak")
	for i := 0; i < 10; i++ {
		if got := c.Classify("Kopi Gayo enak"); got != first {
			t.Fatalf("run %d: got %q, want %q", i, got, first)
		}
	}
}

func TestEncodeWindow(t *testing.T) {
	c := testClassifier()

	t.Run("pads short input", func(t *testing.T) {
		ids := c.Encode("enak bagus")
		if len(ids) != MaxTokens {
			t.Fatalf("len = %d, want %d", len(ids), MaxTokens)
		}
		if ids[0] != 1 || ids[1] != 2 {
			t.Errorf("leading ids = %v, want [1 2]", ids[:2])
		}
		for i := 2; i < MaxTokens; i++ {
			if ids[i] != padTokenId {
				t.Fatalf("ids[%d] = %d, want pad", i, ids[i])
			}
		}
	})

	t.Run("truncates long input", func(t *testing.T) {
		long := strings.TrimSpace(strings.Repeat("enak ", MaxTokens+40))
		ids := c.Encode(long)
		if len(ids) != MaxTokens {
			t.Fatalf("len = %d, want %d", len(ids), MaxTokens)
		}
		for i, id := range ids {
			if id != 1 {
				t.Fatalf("ids[%d] = %d, want 1", i, id)
			}
		}
	})

	t.Run("unknown words map to pad", func(t *testing.T) {
		ids := c.Encode("tidakdikenal enak")
		if ids[0] != padTokenId || ids[1] != 1 {
			t.Errorf("ids[:2] = %v, want [0 1]", ids[:2])
		}
	})
}

func TestLoad(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "model_kustom.json")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("valid artifact", func(t *testing.T) {
		path := write(t, `{"vocab":{"enak":1},"weights":[0,1.0],"bias":-0.2}`)
		c, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got := c.Classify("enak"); got != LabelPositive {
			t.Errorf("Classify = %q, want %q", got, LabelPositive)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
			t.Error("Load() expected error for missing file")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := write(t, `{"vocab":`)
		if _, err := Load(path); err == nil {
			t.Error("Load() expected error for malformed artifact")
		}
	})

	t.Run("empty artifact", func(t *testing.T) {
		path := write(t, `{"vocab":{},"weights":[],"bias":0}`)
		if _, err := Load(path); err == nil {
			t.Error("Load() expected error for empty artifact")
		}
	})

	t.Run("positive bias rejected", func(t *testing.T) {
		// Empty input scores as the bias alone and must stay "negative".
		path := write(t, `{"vocab":{"enak":1},"weights":[0,1.0],"bias":0.3}`)
		if _, err := Load(path); err == nil {
			t.Error("Load() expected error for positive bias")
		}
	})

	t.Run("token id out of range", func(t *testing.T) {
		path := write(t, `{"vocab":{"enak":5},"weights":[0,1.0],"bias":0}`)
		if _, err := Load(path); err == nil {
			t.Error("Load() expected error for out-of-range token id")
		}
	})
}
