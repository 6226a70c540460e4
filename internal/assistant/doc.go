// Package assistant wraps the gallery's generative-AI calls.
//
// Every call is a structured generation: a named dotprompt template is
// rendered with a typed input, the model is asked for output conforming to
// the declared schema, and the parsed result is returned or the call fails
// with ErrGeneration. A single attempt is made per call; retry policy, if
// any, belongs to callers.
package assistant
