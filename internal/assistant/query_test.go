package assistant

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

// mockGenerator implements ArtGenerator with canned responses and call tracking.
type mockGenerator struct {
	answer     string
	display    string
	answerErr  error
	displayErr error

	answerCalls  int
	displayCalls int
	lastInput    ArtInfoQueryInput
}

func (m *mockGenerator) AnswerArtQuery(_ context.Context, in ArtInfoQueryInput) (ArtInfoQueryOutput, error) {
	m.answerCalls++
	m.lastInput = in
	if m.answerErr != nil {
		return ArtInfoQueryOutput{}, m.answerErr
	}
	return ArtInfoQueryOutput{Answer: m.answer}, nil
}

func (m *mockGenerator) ContextualizeDisplay(_ context.Context, in ContextualDisplayInput) (ContextualDisplayOutput, error) {
	m.displayCalls++
	if m.displayErr != nil {
		return ContextualDisplayOutput{}, m.displayErr
	}
	return ContextualDisplayOutput{ModifiedDisplay: m.display}, nil
}

func TestAnswerQuery(t *testing.T) {
	gen := &mockGenerator{answer: "It was cast in 1998."}
	svc := NewQueryService(gen, slog.New(slog.DiscardHandler))

	got := svc.AnswerQuery(context.Background(), "A bronze sculpture.", "When was it made?")
	if got != "It was cast in 1998." {
		t.Errorf("AnswerQuery() = %q, want the generated answer", got)
	}
	if gen.lastInput.ArtworkDescription != "A bronze sculpture." {
		t.Errorf("AnswerQuery() passed description %q", gen.lastInput.ArtworkDescription)
	}
	if gen.lastInput.UserQuery != "When was it made?" {
		t.Errorf("AnswerQuery() passed query %q", gen.lastInput.UserQuery)
	}
}

func TestAnswerQueryFailure(t *testing.T) {
	gen := &mockGenerator{answerErr: errors.New("model unavailable")}
	svc := NewQueryService(gen, slog.New(slog.DiscardHandler))

	got := svc.AnswerQuery(context.Background(), "desc", "question")
	if got != QueryApology {
		t.Errorf("AnswerQuery() on failure = %q, want the apology", got)
	}
}

func TestContextualize(t *testing.T) {
	gen := &mockGenerator{display: "The brushwork you asked about shimmers here."}
	svc := NewQueryService(gen, slog.New(slog.DiscardHandler))

	got := svc.Contextualize(context.Background(), "A painting.", "tell me about the brushwork")
	if got != "The brushwork you asked about shimmers here." {
		t.Errorf("Contextualize() = %q, want the generated display", got)
	}
}

func TestContextualizeEmptyQuery(t *testing.T) {
	gen := &mockGenerator{display: "should never be produced"}
	svc := NewQueryService(gen, slog.New(slog.DiscardHandler))

	got := svc.Contextualize(context.Background(), "A painting.", "")
	if got != ContextualPromptForInput {
		t.Errorf("Contextualize(empty query) = %q, want the input prompt", got)
	}
	if gen.displayCalls != 0 {
		t.Errorf("Contextualize(empty query) made %d model calls, want 0", gen.displayCalls)
	}
}

func TestContextualizeFailure(t *testing.T) {
	gen := &mockGenerator{displayErr: errors.New("model unavailable")}
	svc := NewQueryService(gen, slog.New(slog.DiscardHandler))

	got := svc.Contextualize(context.Background(), "desc", "question")
	if got != ContextualApology {
		t.Errorf("Contextualize() on failure = %q, want the apology", got)
	}
}
