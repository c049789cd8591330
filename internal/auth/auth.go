package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// APIKeyEnv is the environment variable holding the Gemini API key.
const APIKeyEnv = "GEMINI_API_KEY"

// dotEnvFile is read when the environment does not carry the key.
const dotEnvFile = ".env"

// ErrNoAPIKey is returned when no source provides an API key.
var ErrNoAPIKey = errors.New("API key not found. Set " + APIKeyEnv + " or add it to a .env file")

// GetAPIKey retrieves the Gemini API key from available sources.
// Priority order:
//  1. GEMINI_API_KEY environment variable
//  2. GEMINI_API_KEY entry in ./.env
func GetAPIKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv(APIKeyEnv)); key != "" {
		log.Debug().Msg("Using API key from environment variable")
		return key, nil
	}

	key, err := getFromDotEnv(dotEnvFile)
	if err == nil && key != "" {
		log.Debug().Str("file", dotEnvFile).Msg("Using API key from .env file")
		return key, nil
	}

	log.Error().Err(err).Msg("Failed to retrieve API key")
	return "", ErrNoAPIKey
}

// getFromDotEnv reads the API key from a dotenv file without touching the
// process environment.
func getFromDotEnv(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("dotenv file not available: %w", err)
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", path, err)
	}

	key := strings.TrimSpace(values[APIKeyEnv])
	if key == "" {
		return "", fmt.Errorf("%s not set in %s", APIKeyEnv, path)
	}
	return key, nil
}
