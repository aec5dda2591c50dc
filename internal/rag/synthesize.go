package rag

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sunzid02/portfolio-chat-api/internal/api"
	"github.com/sunzid02/portfolio-chat-api/internal/config"
	"github.com/sunzid02/portfolio-chat-api/internal/domain/kbModel"
	"github.com/sunzid02/portfolio-chat-api/internal/metrics"
)

// NoAnswerSentinel is the reply text used when the generation service
// returns nothing usable. It is a valid reply, not an error.
const NoAnswerSentinel = "No answer."

// synthesize issues exactly one generation call constrained to the
// retrieved context and attaches attribution for the chunks that were
// actually placed in that context.
func (s *service) synthesize(ctx context.Context, question string, hits []kbModel.Retrieved) (api.ChatReply, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_generation", time.Since(start)) }()

	userPrompt := fmt.Sprintf("Question:\n%s\n\nSources:\n%s", question, buildContextBlock(hits))

	text, err := s.llmProvider.Generate(ctx, config.SystemInstruction, userPrompt)
	if err != nil {
		return api.ChatReply{}, err
	}

	answer := strings.TrimSpace(text)
	if answer == "" {
		answer = NoAnswerSentinel
	}

	reply := api.ChatReply{Answer: answer}
	for i, hit := range hits {
		if i == config.MaxAttributedSources {
			break
		}
		reply.Sources = append(reply.Sources, api.SourceRef{Source: sourceLabel(hit), Part: hit.Part})
	}
	return reply, nil
}

// buildContextBlock labels every chunk with a 1-based index and its
// origin so the model can cite what it used.
func buildContextBlock(hits []kbModel.Retrieved) string {
	blocks := make([]string, 0, len(hits))
	for i, hit := range hits {
		blocks = append(blocks, fmt.Sprintf("Source %d (%s):\n%s", i+1, sourceLabel(hit), hit.Text))
	}
	return strings.Join(blocks, "\n\n")
}

func sourceLabel(hit kbModel.Retrieved) string {
	if hit.Source == "" {
		return "unknown"
	}
	return hit.Source
}
