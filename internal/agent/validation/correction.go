package validation

import (
	"context"
	"strings"

	"book-summarizer/backend/internal/agent/deps"
	"book-summarizer/backend/internal/agent/prompt"
	"book-summarizer/backend/internal/model"

	"go.uber.org/zap"
)

// ResponseCorrector generates corrected replies when validation fails
type ResponseCorrector struct {
	llmClient     deps.LLMClient
	promptBuilder *prompt.Builder
	logger        *zap.Logger
}

// NewResponseCorrector creates a new ResponseCorrector
func NewResponseCorrector(llmClient deps.LLMClient, promptBuilder *prompt.Builder, logger *zap.Logger) *ResponseCorrector {
	return &ResponseCorrector{
		llmClient:     llmClient,
		promptBuilder: promptBuilder,
		logger:        logger.With(zap.String("component", "corrector")),
	}
}

// Generate regenerates a reply with the stricter correction prompt.
// On failure the apology message is returned alongside the error.
func (c *ResponseCorrector) Generate(ctx context.Context, question string, summary model.BookSummary) (string, error) {
	c.logger.Info("generating corrected reply", zap.String("question", truncateForLog(question, 50)))

	correctionPrompt := c.promptBuilder.BuildCorrectionPrompt(summary, question)

	result, err := c.llmClient.GenerateContent(ctx, correctionPrompt, 0.2, 256)
	if err != nil {
		c.logger.Warn("correction failed", zap.Error(err))
		return prompt.ChatApologyMessage, err
	}

	result = strings.TrimSpace(result)
	if result == "" {
		return prompt.ChatApologyMessage, nil
	}

	c.logger.Info("generated corrected reply", zap.String("reply", truncateForLog(result, 100)))
	return result, nil
}
