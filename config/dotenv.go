package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// LoadDotEnv loads the first .env file found in the working directory or its
// parent. Variables already present in the environment win.
func LoadDotEnv() bool {
	possiblePaths := []string{
		".env",
		filepath.Join("..", ".env"),
	}

	for _, envPath := range possiblePaths {
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded .env file")
			return true
		}
	}

	log.Debug().Msg("No .env file found, using existing environment variables")
	return false
}
