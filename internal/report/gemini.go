package report

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// Generator produces a natural-language report from a prompt. It is an
// external collaborator with real latency; callers must treat it as
// fire-and-forget and never let its failure affect the numeric design.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator talks to the Gemini API via the official GenAI SDK.
type GeminiGenerator struct {
	Model string // e.g. "gemini-2.0-flash"
}

var _ Generator = (*GeminiGenerator)(nil)

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	model := g.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create GenAI client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.2)),
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// Narrative asks the generator for a report on the snapshot. Any failure
// is folded into a descriptive fallback string so the caller always gets
// text; the numeric result is untouched either way.
func Narrative(ctx context.Context, gen Generator, s Snapshot) string {
	text, err := gen.Generate(ctx, BuildPrompt(s))
	if err != nil {
		return fmt.Sprintf("Automatic report unavailable (%v). Refer to the numeric design summary.", err)
	}
	return text
}
