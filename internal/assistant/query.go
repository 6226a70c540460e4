package assistant

import (
	"context"
	"log/slog"
)

// User-facing fallback strings. The presentation layer renders these
// verbatim; raw provider errors never cross the orchestrator boundary.
const (
	// QueryApology is returned when answering a question fails.
	QueryApology = "I'm sorry, I encountered an error while processing your question. Please try again."

	// ContextualApology is returned when rewriting the display fails.
	ContextualApology = "I'm sorry, I couldn't generate a contextual highlight at this time."

	// ContextualPromptForInput is returned when no question has been asked yet.
	ContextualPromptForInput = "Please ask a question first to get a contextual highlight."
)

// ArtGenerator is the slice of Client the query service consumes.
// Defined here, by the consumer, so tests can substitute a mock.
type ArtGenerator interface {
	AnswerArtQuery(ctx context.Context, in ArtInfoQueryInput) (ArtInfoQueryOutput, error)
	ContextualizeDisplay(ctx context.Context, in ContextualDisplayInput) (ContextualDisplayOutput, error)
}

// QueryService answers visitor questions about artworks and produces
// contextual display rewrites. It is stateless per call: each invocation
// carries the full context (description + question) and nothing is kept
// between requests.
type QueryService struct {
	gen    ArtGenerator
	logger *slog.Logger
}

// NewQueryService creates a query service over the given generator.
func NewQueryService(gen ArtGenerator, logger *slog.Logger) *QueryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryService{gen: gen, logger: logger}
}

// AnswerQuery answers a free-text question about an artwork using its
// description as context. Generation failures degrade to a fixed apology
// string; the cause is logged, never shown to the visitor.
func (s *QueryService) AnswerQuery(ctx context.Context, description, userQuery string) string {
	out, err := s.gen.AnswerArtQuery(ctx, ArtInfoQueryInput{
		ArtworkDescription: description,
		UserQuery:          userQuery,
	})
	if err != nil {
		s.logger.Error("answering art query", "error", err)
		return QueryApology
	}
	return out.Answer
}

// Contextualize produces a display description rewritten around the
// visitor's query. An empty query short-circuits with a fixed prompt for
// input and makes no model call; generation failures degrade to a fixed
// apology string.
func (s *QueryService) Contextualize(ctx context.Context, description, userQuery string) string {
	if userQuery == "" {
		return ContextualPromptForInput
	}

	out, err := s.gen.ContextualizeDisplay(ctx, ContextualDisplayInput{
		ArtworkDescription: description,
		UserQuery:          userQuery,
	})
	if err != nil {
		s.logger.Error("contextualizing art display", "error", err)
		return ContextualApology
	}
	return out.ModifiedDisplay
}
