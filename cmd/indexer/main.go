package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"budaya-aceh-be/internal/bootstrap"
	"budaya-aceh-be/internal/config"
	"budaya-aceh-be/internal/pkg/logger"
	"budaya-aceh-be/internal/repository/implementation"
	"budaya-aceh-be/internal/service"
	"budaya-aceh-be/pkg/database"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/fatih/color"
)

// One-shot corpus indexer. Splits every .txt/.md document under the corpus
// directory into overlapping chunks, embeds them and writes them to the
// knowledge store. Run before starting the REST server.
func main() {
	corpusDir := flag.String("corpus", "./corpus", "directory of .txt/.md documents to index")
	waitTimeout := flag.Duration("timeout", 10*time.Minute, "max time to wait for the pipeline to drain")
	flag.Parse()

	cfg := config.Load()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	defer sysLogger.Sync()

	if cfg.Database.Connection == "" {
		log.Fatal("DB_CONNECTION_STRING is required to build the knowledge store")
	}
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to knowledge store: %v", err)
	}

	embedder := bootstrap.NewEmbeddingProviderFromConfig(cfg, sysLogger)
	if embedder == nil {
		log.Fatal("Embedding provider unavailable (set GOOGLE_API_KEY or EMBEDDING_PROVIDER=ollama)")
	}

	chunkRepo := implementation.NewDocumentChunkRepository(db)

	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	indexer := service.NewIndexerService(pubSub, cfg.Keys.IndexTopic, chunkRepo, embedder, sysLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := indexer.Consume(ctx); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	published := publishCorpus(ctx, indexer, *corpusDir, embedderName(cfg))

	// Drain the pipeline
	deadline := time.Now().Add(*waitTimeout)
	for indexer.Processed()+indexer.Failed() < int64(published) {
		if time.Now().After(deadline) {
			color.Red("Timed out waiting for pipeline: %d/%d chunks done", indexer.Processed(), published)
			os.Exit(1)
		}
		time.Sleep(200 * time.Millisecond)
	}

	if failed := indexer.Failed(); failed > 0 {
		color.Red("Indexing finished with %d failed chunks (%d ok)", failed, indexer.Processed())
		os.Exit(1)
	}
	color.Green("✅ Indexed %d chunks into the knowledge store", indexer.Processed())
}

func publishCorpus(ctx context.Context, indexer service.IIndexerService, corpusDir, provider string) int {
	color.Cyan("Indexing corpus from %s (embedding: %s)", corpusDir, provider)

	total := 0
	err := filepath.WalkDir(corpusDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".txt" && ext != ".md" {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		source, _ := filepath.Rel(corpusDir, path)
		n, err := indexer.PublishDocument(ctx, source, string(content))
		if err != nil {
			return err
		}
		color.White("  %s -> %d chunks", source, n)
		total += n
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to read corpus: %v", err)
	}
	if total == 0 {
		log.Fatalf("No indexable documents found under %s", corpusDir)
	}
	return total
}

func embedderName(cfg *config.Config) string {
	if cfg.Ai.EmbeddingProvider == "ollama" {
		return "ollama/" + cfg.Ai.OllamaModel
	}
	return "gemini/text-embedding-004"
}
