package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// defaultDotEnvFile is looked up in the working directory.
const defaultDotEnvFile = ".env"

// loadDotEnv reads KEY=VALUE pairs from path into the process environment.
// Variables that are already set keep their value. A missing file is not an
// error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading %s: %w", path, err)
}
