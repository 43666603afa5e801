// Package summarize adapts the external generative-AI endpoint for text
// and audio summarization, complete or streamed. The adapter performs no
// retries; endpoint failures surface as SummarizeError.
package summarize

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"drivenotes/internal/domain"
	"drivenotes/internal/domain/services"
)

// GeminiSummarizer implements Summarizer against the Gemini API.
type GeminiSummarizer struct {
	client  *genai.Client
	model   string
	prompts *Prompts
	logger  *slog.Logger
}

// NewGeminiSummarizer creates a summarizer using the given API key and
// model name.
func NewGeminiSummarizer(ctx context.Context, apiKey, model string, logger *slog.Logger) (services.Summarizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	prompts, err := LoadPrompts()
	if err != nil {
		return nil, err
	}

	logger.Info("summarizer initialized", "model", model)

	return &GeminiSummarizer{
		client:  client,
		model:   model,
		prompts: prompts,
		logger:  logger,
	}, nil
}

func (g *GeminiSummarizer) textContents(text, custom string) []*genai.Content {
	return genai.Text(g.prompts.TextPrompt(text, custom))
}

func (g *GeminiSummarizer) audioContents(data []byte, mimeType string) []*genai.Content {
	parts := []*genai.Part{
		genai.NewPartFromBytes(data, mimeType),
		genai.NewPartFromText(g.prompts.AudioInstruction),
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

func (g *GeminiSummarizer) SummarizeText(ctx context.Context, text, custom string) (string, error) {
	return g.generate(ctx, g.textContents(text, custom))
}

func (g *GeminiSummarizer) SummarizeTextStream(ctx context.Context, text, custom string, fn services.ChunkFunc) error {
	return g.generateStream(ctx, g.textContents(text, custom), fn)
}

func (g *GeminiSummarizer) SummarizeAudio(ctx context.Context, data []byte, mimeType string) (string, error) {
	return g.generate(ctx, g.audioContents(data, mimeType))
}

func (g *GeminiSummarizer) SummarizeAudioStream(ctx context.Context, data []byte, mimeType string, fn services.ChunkFunc) error {
	return g.generateStream(ctx, g.audioContents(data, mimeType), fn)
}

func (g *GeminiSummarizer) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		g.logger.Error("summarization failed", "model", g.model, "error", err)
		return "", &domain.SummarizeError{Message: "summarization failed"}
	}
	return resp.Text(), nil
}

func (g *GeminiSummarizer) generateStream(ctx context.Context, contents []*genai.Content, fn services.ChunkFunc) error {
	for resp, err := range g.client.Models.GenerateContentStream(ctx, g.model, contents, nil) {
		if err != nil {
			g.logger.Error("summarization stream failed", "model", g.model, "error", err)
			return &domain.SummarizeError{Message: "summarization failed"}
		}
		chunk := resp.Text()
		if chunk == "" {
			continue
		}
		if err := fn(chunk); err != nil {
			return fmt.Errorf("deliver chunk: %w", err)
		}
	}
	return nil
}
