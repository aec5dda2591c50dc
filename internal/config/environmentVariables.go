package config

import (
	"log/slog"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//server listening port - same port the old dev API listened on
	ServerListenAddr = ":8787"

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 30 * time.Second //generation calls can be slow
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//knowledge base
	CollectionName                      = "portfolio_kb"
	ChunkSize                           = 1100
	ChunkOverlap                        = 200
	IngestBatchSize                     = 24
	RetrieveTopK                        = 6
	MaxAttributedSources                = 4
	EmbeddingOutputDimensionality int32 = 1536
	GoogleEmbeddingModel                = "gemini-embedding-001"

	//ingestion sources
	ProfilePath = "data/profile.yaml"
	ResumePath  = "data/resume.pdf"

	//generation
	GenerationProvider       = "groq" //or "gemini"
	GroqBaseURL              = "https://api.groq.com/openai/v1"
	GroqModelName            = "llama-3.1-8b-instant"
	GeminiModelName          = "gemini-2.5-flash-lite-preview-09-2025"
	ModelTemperature float64 = 0.2

	//grounding contract: the model may only answer from the supplied sources
	SystemInstruction = "You are a helpful assistant embedded in Sarker Sunzid Mahmud's portfolio.\n" +
		"Use ONLY the provided sources to answer.\n" +
		"If the sources do not contain the answer, say you do not know.\n" +
		"Do not reveal private or sensitive info like phone, address, secrets, tokens.\n" +
		"Keep it friendly and concise."

	//api key environment variables
	GeminiAPIKeyEnv = "GEMINI_API_KEY"
	GroqAPIKeyEnv   = "GROQ_API_KEY"

	//vectorDB
	QdrantHost     = ""
	QdrantGrpcPort = 6334
	QdrantUseTLS   = false
	QdrantPoolSize = 1

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	RedisPassword = ""

	RedisTranscriptStore = 0

	//transcript log
	RedisTranscriptTTL    = 24 * time.Hour
	TranscriptKey         = "chat:transcript"
	TranscriptMaxEntries  = 500
	TranscriptRecentCount = 20
)
