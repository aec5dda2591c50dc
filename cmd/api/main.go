package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sunzid02/portfolio-chat-api/internal/config"
	"github.com/sunzid02/portfolio-chat-api/internal/data/store"
	"github.com/sunzid02/portfolio-chat-api/internal/domain/chatModel"
	"github.com/sunzid02/portfolio-chat-api/internal/handlers"
	"github.com/sunzid02/portfolio-chat-api/internal/profile"
	"github.com/sunzid02/portfolio-chat-api/internal/rag"
	"github.com/sunzid02/portfolio-chat-api/internal/rag/embedding/googleEmbedding"
	"github.com/sunzid02/portfolio-chat-api/internal/rag/llm"
	"github.com/sunzid02/portfolio-chat-api/internal/rag/llm/gemini"
	"github.com/sunzid02/portfolio-chat-api/internal/rag/llm/groq"
	"github.com/sunzid02/portfolio-chat-api/internal/rag/vectorDB/qdrantDB"
	"github.com/sunzid02/portfolio-chat-api/internal/rules"
	"github.com/sunzid02/portfolio-chat-api/internal/server"
	"github.com/sunzid02/portfolio-chat-api/pkg/logger_i"
)

var (
	listenAddr  string
	profilePath string
)

func main() {

	_ = godotenv.Load()

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.StringVar(&profilePath, "profile", config.ProfilePath, "path to the profile yaml")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//offline responder: profile data with hot reload
	profileSource, err := profile.NewWatcher(profilePath)
	if err != nil {
		logger.Error("Could not load the profile", "path", profilePath, "error", err)
		return
	}
	ruleEngine := rules.NewEngine(profileSource)

	//online responder: vector search + generation
	vectorDB := qdrantDB.GetQdrantClient(serviceContext)
	embeddingService := googleEmbedding.GetGoogleEmbeddingClient(serviceContext, config.GoogleEmbeddingModel, os.Getenv(config.GeminiAPIKeyEnv))
	llmProvider := generationProvider(serviceContext)

	if vectorDB == nil || embeddingService == nil || llmProvider == nil {
		logger.Error("One or more external services failed to initialize. Shutting down.")
		logger.Debug("Available services : ", "VectorDB", vectorDB != nil, "EmbeddingService", embeddingService != nil, "LLMProvider", llmProvider != nil)
		return
	}

	ragService := rag.NewService(vectorDB, llmProvider, embeddingService)

	var transcript chatModel.TranscriptStore
	if redisTranscript := store.GetRedisTranscriptStore(serviceContext); redisTranscript != nil {
		transcript = redisTranscript
	} else {
		logger.Error("Redis transcript store is offline, using in-memory fallback")
		transcript = store.InitInMemoryTranscriptStore()
	}

	handlers.InitChatHandler(ragService, ruleEngine, transcript)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	profileSource.Close()
	logger.Info("Server stopped")
}

func generationProvider(ctx context.Context) llm.Provider {
	provider := os.Getenv("GENERATION_PROVIDER")
	if provider == "" {
		provider = config.GenerationProvider
	}
	if provider == "gemini" {
		return gemini.GetGeminiClient(ctx, os.Getenv(config.GeminiAPIKeyEnv), config.GeminiModelName)
	}
	return groq.GetGroqClient(os.Getenv(config.GroqAPIKeyEnv), config.GroqModelName)
}
