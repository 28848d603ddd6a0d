package agent

import (
	"context"
	"errors"
	"time"

	"book-summarizer/backend/internal/agent/deps"
	"book-summarizer/backend/internal/agent/failure"
	"book-summarizer/backend/internal/agent/prompt"
	"book-summarizer/backend/internal/agent/response"
	"book-summarizer/backend/internal/agent/sanitize"
	"book-summarizer/backend/internal/agent/validation"
	"book-summarizer/backend/internal/model"

	"go.uber.org/zap"
)

const (
	// DefaultModel is the Gemini model used for summaries and chat
	DefaultModel = "gemini-2.5-flash"
	// DefaultTimeout bounds a single generation call
	DefaultTimeout = 60 * time.Second

	summaryTemperature     = 0.4
	summaryMaxOutputTokens = 8192
	chatTemperature        = 0.7
	chatMaxOutputTokens    = 1024
	// chatMaxWords is well above the 150 words the prompt asks for
	chatMaxWords = 300
)

var (
	// ErrTitleRequired is returned when the title is blank after normalization
	ErrTitleRequired = errors.New("book title is required")
	// ErrEmptyQuestion is returned when a chat question is blank
	ErrEmptyQuestion = errors.New("question is required")
)

// Summarizer turns a title into a BookSummary and answers follow-up questions about it
type Summarizer struct {
	llm           deps.LLMClient
	transcripts   deps.TranscriptRepository
	promptBuilder *prompt.Builder
	pipeline      *validation.Pipeline
	timeout       time.Duration
	logger        *zap.Logger
}

// Options configures a Summarizer
type Options struct {
	// Timeout bounds each generation call; zero uses DefaultTimeout
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewSummarizer creates a Summarizer backed by llm and transcripts
func NewSummarizer(llm deps.LLMClient, transcripts deps.TranscriptRepository, opts Options) *Summarizer {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	promptBuilder := prompt.NewBuilder()
	corrector := validation.NewResponseCorrector(llm, promptBuilder, logger)
	pipeline := validation.NewPipeline(
		[]validation.Check{
			validation.NewEmptyReplyCheck(),         // First: nothing to show
			validation.NewPromptLeakCheck(),         // Second: prompt echo
			validation.NewLengthCheck(chatMaxWords), // Last: trim runaway replies
		},
		corrector,
		logger,
	)

	return &Summarizer{
		llm:           llm,
		transcripts:   transcripts,
		promptBuilder: promptBuilder,
		pipeline:      pipeline,
		timeout:       timeout,
		logger:        logger.With(zap.String("component", "summarizer")),
	}
}

// Summarize generates a summary for title and optional author.
// Failures are *failure.Error values except ErrTitleRequired.
func (s *Summarizer) Summarize(ctx context.Context, title, author string) (*model.BookSummary, error) {
	title = sanitize.Input(title)
	author = sanitize.Input(author)
	if title == "" {
		return nil, ErrTitleRequired
	}

	start := time.Now()
	p := s.promptBuilder.BuildSummaryPrompt(title, author)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.llm.GenerateContent(ctx, p, summaryTemperature, summaryMaxOutputTokens)
	if err != nil {
		s.logger.Warn("generation failed",
			zap.String("title", title),
			zap.String("kind", failure.KindOf(err).String()),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, ensureClassified(err)
	}

	s.logger.Debug("raw summary response", zap.String("response", raw))

	summary, err := response.ParseSummary(raw)
	if err != nil {
		s.logger.Warn("summary parse failed", zap.String("title", title), zap.Error(err))
		return nil, err
	}

	s.logger.Info("summary generated",
		zap.String("title", summary.Title),
		zap.String("author", summary.Author),
		zap.Duration("elapsed", time.Since(start)),
	)
	return summary, nil
}

// OpenChat starts a transcript about summary, seeded with the greeting
func (s *Summarizer) OpenChat(summary model.BookSummary) model.ChatTranscript {
	t := s.transcripts.Open(summary, s.promptBuilder.BuildChatGreeting(summary))
	s.logger.Info("chat opened", zap.String("session", t.ID), zap.String("title", summary.Title))
	return t
}

// Transcript returns the current state of an open chat
func (s *Summarizer) Transcript(id string) (model.ChatTranscript, bool) {
	return s.transcripts.Get(id)
}

// CloseChat destroys a transcript and returns its final state
func (s *Summarizer) CloseChat(id string) (model.ChatTranscript, bool) {
	t, ok := s.transcripts.Close(id)
	if ok {
		s.logger.Info("chat closed", zap.String("session", id), zap.Int("messages", len(t.Messages)))
	}
	return t, ok
}

// Configured reports whether the generation client can make calls at all
func (s *Summarizer) Configured() bool {
	if c, ok := s.llm.(interface{ Configured() bool }); ok {
		return c.Configured()
	}
	return true
}

// OpenChats is the number of live chat transcripts
func (s *Summarizer) OpenChats() int {
	return s.transcripts.Count()
}

// Ask runs one chat round trip. Generation failures never surface: the
// apology message is appended in place of the reply.
func (s *Summarizer) Ask(ctx context.Context, id, question string) (model.ChatTranscript, error) {
	shown := sanitize.Input(question)
	if shown == "" {
		return model.ChatTranscript{}, ErrEmptyQuestion
	}

	t, err := s.transcripts.Append(id, model.ChatMessage{Role: model.RoleUser, Content: shown})
	if err != nil {
		return model.ChatTranscript{}, err
	}

	// the transcript shows what the user typed; the model sees the neutralized form
	reply := s.reply(ctx, t.Summary, sanitize.Question(question))

	t, err = s.transcripts.Append(id, model.ChatMessage{Role: model.RoleAssistant, Content: reply})
	if err != nil {
		// closed while the request was in flight
		s.logger.Info("dropping reply for closed chat", zap.String("session", id))
		return model.ChatTranscript{}, err
	}
	return t, nil
}

func (s *Summarizer) reply(ctx context.Context, summary model.BookSummary, question string) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.llm.GenerateContent(ctx, s.promptBuilder.BuildChatPrompt(summary, question), chatTemperature, chatMaxOutputTokens)
	if err != nil {
		s.logger.Warn("chat generation failed", zap.String("kind", failure.KindOf(err).String()), zap.Error(err))
		return prompt.ChatApologyMessage
	}

	validated, err := s.pipeline.Run(ctx, validation.Reply{
		Question: question,
		Text:     response.CleanReply(raw),
		Summary:  summary,
	})
	if err != nil {
		s.logger.Warn("chat validation failed", zap.Error(err))
	}
	return validated
}

// ensureClassified wraps errors from LLMClient implementations that do not
// classify their own failures
func ensureClassified(err error) error {
	var f *failure.Error
	if errors.As(err, &f) {
		return err
	}
	return failure.Wrap(failure.Request, "generate summary", err)
}
