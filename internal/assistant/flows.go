package assistant

import (
	"context"

	"github.com/firebase/genkit/go/genkit"
)

// DefineFlows registers the gallery's generation flows with Genkit.
// This is the single entry point for flow registration; the flows show up
// in the Genkit developer UI and flow server under these names.
//
// Flows are stateless: all context arrives in the input on each invocation.
func DefineFlows(g *genkit.Genkit, client *Client) {
	genkit.DefineFlow(g, "artInfoQuery",
		func(ctx context.Context, input ArtInfoQueryInput) (ArtInfoQueryOutput, error) {
			return client.AnswerArtQuery(ctx, input)
		})

	genkit.DefineFlow(g, "contextualArtDisplay",
		func(ctx context.Context, input ContextualDisplayInput) (ContextualDisplayOutput, error) {
			return client.ContextualizeDisplay(ctx, input)
		})

	genkit.DefineFlow(g, "imageToPlane",
		func(ctx context.Context, input ImageToPlaneInput) (ImageToPlaneOutput, error) {
			return client.ImageToPlane(ctx, input)
		})
}
