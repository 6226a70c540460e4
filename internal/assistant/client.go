package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
)

// ErrGeneration indicates a structured-generation call failed: the remote
// call errored, returned nothing, or returned output that does not conform
// to the declared schema. Calls are never retried here.
var ErrGeneration = errors.New("generation failed")

// Client binds a Genkit instance and a model to the gallery's prompt
// templates. Construct one at startup and share it across requests; it
// holds no per-call state.
type Client struct {
	g        *genkit.Genkit
	modelRef ai.ModelRef
	logger   *slog.Logger
}

// NewClient creates a structured-generation client.
func NewClient(g *genkit.Genkit, modelRef ai.ModelRef, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{g: g, modelRef: modelRef, logger: logger}
}

// AnswerArtQuery answers a visitor's question using the artwork description
// as context (artInfoQuery template).
func (c *Client) AnswerArtQuery(ctx context.Context, in ArtInfoQueryInput) (ArtInfoQueryOutput, error) {
	return generate[ArtInfoQueryOutput](ctx, c, "artInfoQuery", in)
}

// ContextualizeDisplay rewrites the artwork description so it subtly
// incorporates the focus of the visitor's query (contextualArtDisplay template).
func (c *Client) ContextualizeDisplay(ctx context.Context, in ContextualDisplayInput) (ContextualDisplayOutput, error) {
	return generate[ContextualDisplayOutput](ctx, c, "contextualArtDisplay", in)
}

// ImageToPlane turns an uploaded image plus metadata into an artwork-shaped
// record (imageToPlane template). The image travels as a media part of the
// rendered prompt, never as interpolated text. The output schema requests
// no identifier; ids are assigned by the store, not the model.
func (c *Client) ImageToPlane(ctx context.Context, in ImageToPlaneInput) (ImageToPlaneOutput, error) {
	return generate[ImageToPlaneOutput](ctx, c, "imageToPlane", in)
}

// generate renders the named dotprompt template with in and generates
// structured output conforming to Out's JSON schema. All failure modes
// (missing template, render failure, remote error, empty or malformed
// output) wrap ErrGeneration.
func generate[Out any](ctx context.Context, c *Client, promptName string, in any) (Out, error) {
	var out Out

	prompt := genkit.LookupPrompt(c.g, promptName)
	if prompt == nil {
		return out, fmt.Errorf("%w: prompt %q not found", ErrGeneration, promptName)
	}

	actionOpts, err := prompt.Render(ctx, in)
	if err != nil {
		return out, fmt.Errorf("%w: rendering prompt %q: %v", ErrGeneration, promptName, err)
	}

	response, err := genkit.Generate(ctx, c.g,
		ai.WithModel(c.modelRef),
		ai.WithMessages(actionOpts.Messages...),
		ai.WithOutputType(out),
	)
	if err != nil {
		return out, fmt.Errorf("%w: prompt %q: %v", ErrGeneration, promptName, err)
	}
	if response == nil {
		return out, fmt.Errorf("%w: prompt %q returned no response", ErrGeneration, promptName)
	}

	if err := response.Output(&out); err != nil {
		return out, fmt.Errorf("%w: parsing %q output: %v", ErrGeneration, promptName, err)
	}

	c.logger.Debug("structured generation completed", "prompt", promptName)
	return out, nil
}
