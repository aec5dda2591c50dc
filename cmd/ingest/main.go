package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sunzid02/portfolio-chat-api/internal/config"
	"github.com/sunzid02/portfolio-chat-api/internal/rag/embedding/googleEmbedding"
	"github.com/sunzid02/portfolio-chat-api/internal/rag/ingest"
	"github.com/sunzid02/portfolio-chat-api/internal/rag/vectorDB/qdrantDB"
	"github.com/sunzid02/portfolio-chat-api/pkg/logger_i"
)

var (
	profilePath    string
	resumePath     string
	collectionName string
	inspect        bool
)

// Rebuilds the knowledge base from scratch: resolve sources, chunk,
// embed, upsert. With -inspect it only reports the current point count.
func main() {

	_ = godotenv.Load()

	logger_i.Init()
	logger := logger_i.NewLogger("ingest")

	flag.StringVar(&profilePath, "profile", config.ProfilePath, "path to the profile yaml")
	flag.StringVar(&resumePath, "resume", config.ResumePath, "path to the resume document")
	flag.StringVar(&collectionName, "collection", config.CollectionName, "vector collection name")
	flag.BoolVar(&inspect, "inspect", false, "print the collection point count and exit")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	index := qdrantDB.GetQdrantClient(ctx)
	if index == nil {
		logger.Error("Vector database is unavailable")
		os.Exit(1)
	}

	if inspect {
		count, err := index.Count(ctx, collectionName)
		if err != nil {
			logger.Error("Count failed", "collection", collectionName, "error", err)
			os.Exit(1)
		}
		fmt.Printf("%s: %d points\n", collectionName, count)
		return
	}

	embedder := googleEmbedding.GetGoogleEmbeddingClient(ctx, config.GoogleEmbeddingModel, os.Getenv(config.GeminiAPIKeyEnv))
	if embedder == nil {
		logger.Error("Embedding service is unavailable")
		os.Exit(1)
	}

	cfg := ingest.RunConfig{
		ProfilePath:    profilePath,
		ResumePath:     resumePath,
		CollectionName: collectionName,
	}
	if err := ingest.Run(ctx, cfg, embedder, index); err != nil {
		logger.Error("Ingestion failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Ingestion complete", "collection", collectionName)
}
