// Package llm wraps the Gemini completion oracle behind a typed result.
//
// The model is instructed (by the prompt layer) to emit a fixed sentinel
// token when it cannot answer from the FAQ corpus. That magic string is
// matched exactly once, here at the oracle boundary, and surfaced as
// Result.Unanswerable so downstream logic branches on a typed outcome
// rather than string equality.
//
// Failure policy is fail-safe: any provider, network, or parsing fault is
// collapsed into Unanswerable. Callers always receive a Result, never an
// error. A single attempt is made per call — no retry, no backoff, no
// caller-visible timeout beyond the transport default.
package llm

import (
	"context"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"google.golang.org/genai"

	"github.com/Aviral-Dwivedi-0/ai-customer-support-bot/internal/config"
	"github.com/Aviral-Dwivedi-0/ai-customer-support-bot/internal/log"
)

// Sentinel is the wire token the model emits when the answer is not in the
// FAQ corpus. It only appears in prompt instructions and in this package's
// response handling.
const Sentinel = "ESCALATE"

// Result is the outcome of a completion request: either answer text or an
// unanswerable marker. Exactly one of the two is meaningful.
type Result struct {
	Text         string
	Unanswerable bool
}

// Client calls the Gemini model through Genkit with generation parameters
// fixed at construction time. Identical prompts may still yield different
// outputs across calls; sampling is non-deterministic.
type Client struct {
	g         *genkit.Genkit
	modelName string
	genCfg    *genai.GenerateContentConfig
	logger    log.Logger
}

// New creates a Client bound to an initialized Genkit instance.
// Generation knobs come from config and are not per-request parameters.
func New(g *genkit.Genkit, cfg *config.Config, logger log.Logger) *Client {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Client{
		g:         g,
		modelName: "googleai/" + cfg.ModelName,
		genCfg: &genai.GenerateContentConfig{
			Temperature:     genai.Ptr(cfg.Temperature),
			TopP:            genai.Ptr(cfg.TopP),
			TopK:            genai.Ptr(float32(cfg.TopK)),
			MaxOutputTokens: int32(cfg.MaxOutputTokens),
		},
		logger: logger,
	}
}

// Complete sends the prompt to the model and returns its output stripped
// of surrounding whitespace, or an unanswerable Result on any failure.
func (c *Client) Complete(ctx context.Context, prompt string) Result {
	resp, err := genkit.Generate(ctx, c.g,
		ai.WithModelName(c.modelName),
		ai.WithPrompt(prompt),
		ai.WithConfig(c.genCfg),
	)
	if err != nil {
		c.logger.Error("completion call failed", "model", c.modelName, "error", err)
		return Result{Unanswerable: true}
	}
	return interpret(resp.Text())
}

// interpret maps raw model output to a Result. Trims whitespace and matches
// the escalation sentinel exactly.
func interpret(text string) Result {
	text = strings.TrimSpace(text)
	if text == Sentinel {
		return Result{Unanswerable: true}
	}
	return Result{Text: text}
}
