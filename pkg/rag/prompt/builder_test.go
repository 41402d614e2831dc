package prompt

import (
	"strings"
	"testing"

	"budaya-aceh-be/internal/entity"
)

func TestComposeIncludesAllSlots(t *testing.T) {
	b := NewBuilder()

	chunks := []*entity.DocumentChunk{
		{Document: "Kopi Gayo berasal dari dataran tinggi Gayo."},
		{Document: "Mie Aceh adalah kuliner khas dengan bumbu rempah."},
	}
	question := "Ceritakan tentang Kopi Gayo."

	got := b.Compose(chunks, question)

	for _, want := range []string{
		`Juru Cerita Budaya Aceh`,
		"JANGAN MENGARANG",
		"<Konteks>",
		"</Konteks>",
		"Kopi Gayo berasal dari dataran tinggi Gayo.",
		"Mie Aceh adalah kuliner khas dengan bumbu rempah.",
		"<Pertanyaan Dari Pengguna>Ceritakan tentang Kopi Gayo.</Pertanyaan>",
		"Jawaban Juru Cerita:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("composed prompt missing %q", want)
		}
	}
}

func TestComposePreservesChunkOrder(t *testing.T) {
	b := NewBuilder()

	chunks := []*entity.DocumentChunk{
		{Document: "first chunk"},
		{Document: "second chunk"},
	}

	got := b.Compose(chunks, "q")
	if strings.Index(got, "first chunk") > strings.Index(got, "second chunk") {
		t.Error("chunks were reordered; retriever order must be preserved")
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	b := NewBuilder()
	chunks := []*entity.DocumentChunk{{Document: "c"}}

	if b.Compose(chunks, "q") != b.Compose(chunks, "q") {
		t.Error("Compose is not deterministic for identical inputs")
	}
}

func TestComposeEmptyContext(t *testing.T) {
	b := NewBuilder()

	got := b.Compose(nil, "Apa itu rencong?")
	if !strings.Contains(got, "<Konteks></Konteks>") {
		t.Error("empty retrieval should render an empty context block")
	}
	if !strings.Contains(got, "Apa itu rencong?") {
		t.Error("question missing from prompt")
	}
}
