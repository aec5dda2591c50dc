package groq

import (
	"context"
	"sync"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/sunzid02/portfolio-chat-api/internal/config"
	"github.com/sunzid02/portfolio-chat-api/internal/rag/llm"
	"github.com/sunzid02/portfolio-chat-api/pkg/logger_i"
)

type llmClient struct {
	client    openai.Client
	modelName string
}

var logger *logger_i.Logger
var groqClient *llmClient
var once sync.Once

// GetGroqClient returns the Groq generation provider. Groq speaks the
// OpenAI wire protocol, so the OpenAI SDK pointed at Groq's base URL
// is all that is needed.
func GetGroqClient(apikey string, modelName string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_groq")
		newGroqClient(apikey, modelName)
	})

	if groqClient == nil {
		return nil
	}
	return &llmClient{client: groqClient.client, modelName: groqClient.modelName}
}

func newGroqClient(apikey string, modelName string) {
	if apikey == "" {
		logger.Error("Groq API key is empty")
		return
	}
	c := openai.NewClient(
		option.WithAPIKey(apikey),
		option.WithBaseURL(config.GroqBaseURL),
	)
	groqClient = &llmClient{client: c, modelName: modelName}
	logger.Info("Groq client created", "model", modelName)
}

func (c *llmClient) Generate(ctx context.Context, systemInstruction string, userPrompt string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.modelName),
		Temperature: openai.Float(config.ModelTemperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemInstruction),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		logger.Error("Groq completion failed", "error", err)
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", nil
	}
	return completion.Choices[0].Message.Content, nil
}
