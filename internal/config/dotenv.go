package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultDotEnvPath = ".env"
	dotEnvPathEnv     = "ENV_FILE"
)

func dotEnvPath() string {
	if path := os.Getenv(dotEnvPathEnv); path != "" {
		return path
	}

	return defaultDotEnvPath
}

// loadDotEnv copies variables from the file at path into the process
// environment. Variables that are already set are not overridden.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading env file %q: %w", path, err)
	}

	return nil
}
