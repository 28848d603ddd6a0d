package validation

import (
	"context"

	"book-summarizer/backend/internal/agent/prompt"

	"go.uber.org/zap"
)

// Pipeline runs checks over a chat reply in order
type Pipeline struct {
	checks    []Check
	corrector *ResponseCorrector
	logger    *zap.Logger
}

// NewPipeline creates a new validation pipeline
func NewPipeline(checks []Check, corrector *ResponseCorrector, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		checks:    checks,
		corrector: corrector,
		logger:    logger.With(zap.String("component", "pipeline")),
	}
}

// Run returns the text to show for reply. A rejected reply is regenerated
// once; if the regenerated one is rejected too, the apology is shown.
func (p *Pipeline) Run(ctx context.Context, reply Reply) (string, error) {
	text, ok := p.apply(reply)
	if ok {
		return text, nil
	}

	regenerated, err := p.corrector.Generate(ctx, reply.Question, reply.Summary)
	if err != nil {
		return regenerated, err
	}

	reply.Text = regenerated
	if text, ok = p.apply(reply); !ok {
		p.logger.Warn("regenerated reply rejected", zap.String("reply", truncateForLog(regenerated, 100)))
		return prompt.ChatApologyMessage, nil
	}
	return text, nil
}

// apply runs every check; replacements are seen by the checks after them.
// It reports false as soon as a check asks for regeneration.
func (p *Pipeline) apply(reply Reply) (string, bool) {
	for _, c := range p.checks {
		v := c.Check(reply)
		switch v.Action {
		case ActionReplace:
			p.logger.Info("reply repaired", zap.String("check", c.Name()), zap.String("reason", v.Reason))
			reply.Text = v.Replacement
		case ActionRegenerate:
			p.logger.Info("reply rejected", zap.String("check", c.Name()), zap.String("reason", v.Reason))
			return "", false
		default:
			p.logger.Debug("check passed", zap.String("check", c.Name()))
		}
	}
	return reply.Text, true
}
