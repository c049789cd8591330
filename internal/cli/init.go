package cli

import (
	"context"

	"github.com/fpang/ai-media-hub/internal/auth"
	"github.com/fpang/ai-media-hub/internal/gemini"
	"github.com/rs/zerolog/log"
)

// InitGeminiClient resolves the API key and builds the shared client.
// When validate is set the key is checked with one minimal call against the
// vision model. Exits fatally on failure.
func InitGeminiClient(ctx context.Context, models gemini.Models, validate bool) *gemini.Client {
	apiKey, err := auth.GetAPIKey()
	if err != nil {
		HandleValidationError(&auth.ValidationError{Type: auth.ErrTypeNoKey, Message: "no API key", Err: err})
	}

	client, err := gemini.NewClient(ctx, gemini.Config{APIKey: apiKey, Models: models})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Gemini client")
	}

	log.Debug().Msg("Gemini client initialized")

	if validate {
		if err := auth.ValidateAPIKey(ctx, client, models.Vision); err != nil {
			HandleValidationError(err)
		}
		log.Info().Msg("API key validation complete")
	}

	return client
}
