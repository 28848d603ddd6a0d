package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"book-summarizer/backend/internal/agent"
	"book-summarizer/backend/internal/agent/failure"
	"book-summarizer/backend/internal/config"
	"book-summarizer/backend/internal/logging"
	"book-summarizer/backend/internal/model"
	"book-summarizer/backend/internal/view"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	title        string
	author       string
	outputFormat string
	chat         bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Generate a structured book summary with Gemini",
	Long: `summarize asks Gemini for a structured summary of a book and prints it
as markdown or JSON. With --chat it then reads follow-up questions from
stdin, one per line, and answers them about the same book.

The API key is read from GEMINI_API_KEY (or .env.local / .env).`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runSummarize,
}

func init() {
	rootCmd.Flags().StringVarP(&title, "title", "t", "", "book title (required)")
	rootCmd.Flags().StringVarP(&author, "author", "a", "", "book author (optional)")
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "markdown", "output format: markdown or json")
	rootCmd.Flags().BoolVar(&chat, "chat", false, "ask follow-up questions from stdin after the summary")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log requests to stderr")
	_ = rootCmd.MarkFlagRequired("title")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	if outputFormat != "markdown" && outputFormat != "json" {
		return fmt.Errorf("unknown output format %q: use markdown or json", outputFormat)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if verbose {
		if logger, err = logging.New(logging.Options{Level: "debug"}); err != nil {
			return err
		}
		defer logger.Sync()
	}

	ctx := cmd.Context()
	llm, err := agent.NewGeminiLLMClient(ctx, agent.GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.Model,
		BaseURL: cfg.GeminiBaseURL,
	})
	if err != nil {
		return err
	}

	summarizer := agent.NewSummarizer(llm, agent.NewInMemoryTranscriptRepository(cfg.ChatTTL), agent.Options{
		Timeout: cfg.GenerationTimeout,
		Logger:  logger,
	})

	summary, err := summarizer.Summarize(ctx, title, author)
	if err != nil {
		return userError(err)
	}

	out := cmd.OutOrStdout()
	if err := printSummary(out, summary); err != nil {
		return err
	}

	if !chat {
		return nil
	}
	return runChat(cmd, summarizer, *summary)
}

func printSummary(w io.Writer, summary *model.BookSummary) error {
	if outputFormat == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	_, err := fmt.Fprint(w, view.SummaryMarkdown(summary))
	return err
}

func runChat(cmd *cobra.Command, summarizer *agent.Summarizer, summary model.BookSummary) error {
	out := cmd.OutOrStdout()
	t := summarizer.OpenChat(summary)
	defer summarizer.CloseChat(t.ID)

	fmt.Fprintf(out, "\n%s\n> ", t.Messages[0].Content)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			fmt.Fprint(out, "> ")
			continue
		}

		reply, err := summarizer.Ask(cmd.Context(), t.ID, question)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s\n\n> ", reply.Messages[len(reply.Messages)-1].Content)
	}
	return scanner.Err()
}

// userError replaces generation failures with their fixed user-facing message
func userError(err error) error {
	var f *failure.Error
	if !errors.As(err, &f) {
		return err
	}
	return fmt.Errorf("%s", f.Kind.Message())
}
