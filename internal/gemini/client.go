// Package gemini wraps the Gemini API client used by every panel.
//
// The Client is built once at startup from a Config and is never mutated
// afterwards; handlers receive it as a Generator argument.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// ErrNoAPIKey is returned by NewClient when the config carries no API key.
var ErrNoAPIKey = errors.New("gemini: API key is required")

// Config is the immutable client configuration.
type Config struct {
	APIKey string
	Models Models
}

// Generator is the single operation every panel needs.
type Generator interface {
	Generate(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) Result
}

// Client is the process-wide handle to the Gemini API.
type Client struct {
	genai *genai.Client
}

var _ Generator = (*Client)(nil)

// NewClient creates the Gemini client. It fails fast when the key is absent;
// an invalid key surfaces on the first call.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	log.Ctx(ctx).Debug().
		Str("image_model", cfg.Models.Image).
		Str("vision_model", cfg.Models.Vision).
		Str("video_model", cfg.Models.Video).
		Msg("Gemini client created")

	return &Client{genai: gc}, nil
}

// Generate performs one GenerateContent call. Errors are returned as a
// failed Result, never retried.
func (c *Client) Generate(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) Result {
	start := time.Now()
	log.Ctx(ctx).Debug().
		Str("model", model).
		Int("contents", len(contents)).
		Msg("Sending request to Gemini")

	resp, err := c.genai.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("model", model).Dur("duration", time.Since(start)).Msg("Gemini call failed")
		return Failure(fmt.Errorf("failed to generate content: %w", err))
	}
	if resp == nil {
		return Failure(errors.New("received empty response from Gemini API"))
	}

	if resp.UsageMetadata != nil {
		log.Ctx(ctx).Debug().
			Int32("prompt_tokens", resp.UsageMetadata.PromptTokenCount).
			Int32("candidate_tokens", resp.UsageMetadata.CandidatesTokenCount).
			Int32("total_tokens", resp.UsageMetadata.TotalTokenCount).
			Msg("Gemini usage")
	}
	log.Ctx(ctx).Debug().Str("model", model).Dur("duration", time.Since(start)).Msg("Gemini response received")

	return Success(resp)
}
