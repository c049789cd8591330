package cli

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fpang/ai-media-hub/internal/auth"
	"github.com/rs/zerolog/log"
)

// ResolveOutputDir creates the output directory if needed and returns its
// absolute path. Exits fatally when the path exists and is not a directory.
func ResolveOutputDir(dirPath string) string {
	if dirPath == "" {
		dirPath = "."
	}

	info, err := os.Stat(dirPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := os.MkdirAll(dirPath, 0o755); err != nil {
			log.Fatal().Err(err).Str("path", dirPath).Msg("Failed to create output directory")
		}
	case err != nil:
		log.Fatal().Err(err).Str("path", dirPath).Msg("Failed to access output directory")
	case !info.IsDir():
		log.Fatal().Str("path", dirPath).Msg("Output path is not a directory")
	}

	absPath, err := filepath.Abs(dirPath)
	if err == nil {
		dirPath = absPath
	}

	return dirPath
}

// HandleValidationError processes auth.ValidationError and exits with appropriate messaging.
func HandleValidationError(err error) {
	var validationErr *auth.ValidationError
	if errors.As(err, &validationErr) {
		switch validationErr.Type {
		case auth.ErrTypeNoKey:
			log.Fatal().Msg("No API key configured. Set " + auth.APIKeyEnv + " or add it to a .env file")
		case auth.ErrTypeInvalidKey:
			log.Fatal().Err(err).Msg("Invalid API key. Please check your API key and try again")
		case auth.ErrTypeNetworkError:
			log.Fatal().Err(err).Msg("Network error. Please check your internet connection")
		case auth.ErrTypeQuotaExceeded:
			log.Fatal().Err(err).Msg("API quota exceeded. Please try again later or check your usage limits")
		default:
			log.Fatal().Err(err).Msg("API key validation failed")
		}
	} else {
		log.Fatal().Err(err).Msg("unexpected error during API key validation")
	}
	os.Exit(1)
}
