package project

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envOverrides — переменные окружения; nil означает «не задано».
type envOverrides struct {
	RepoDir  *string `env:"REPO_DIR"`
	CleanDir *string `env:"CLEAN_DIR"`
	Jobs     *int    `env:"JSTRIP_JOBS"`
	Charset  *string `env:"JSTRIP_CHARSET"`
	NoCache  *bool   `env:"JSTRIP_NO_CACHE"`
}

// Environment merges a .env file with the process environment. Process
// variables win, as with a dotenv loader that does not override.
// A missing .env file is not an error.
func Environment(dotenv string, environ []string) (map[string]string, error) {
	vars := make(map[string]string)
	if dotenv != "" {
		fileVars, err := godotenv.Read(dotenv)
		switch {
		case err == nil:
			vars = fileVars
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("%s: %w", dotenv, err)
		}
	}
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars, nil
}

// ApplyEnv overrides cfg with the variables in vars.
func ApplyEnv(cfg *Config, vars map[string]string) error {
	var o envOverrides
	if err := env.ParseWithOptions(&o, env.Options{Environment: vars}); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	if o.RepoDir != nil && *o.RepoDir != "" {
		cfg.Repo = *o.RepoDir
	}
	if o.CleanDir != nil && *o.CleanDir != "" {
		cfg.Out = *o.CleanDir
	}
	if o.Jobs != nil {
		if *o.Jobs < 0 {
			return fmt.Errorf("environment: JSTRIP_JOBS must not be negative, got %d", *o.Jobs)
		}
		if *o.Jobs > 0 {
			cfg.Jobs = *o.Jobs
		}
	}
	if o.Charset != nil {
		cfg.Charset = strings.TrimSpace(*o.Charset)
	}
	if o.NoCache != nil && *o.NoCache {
		cfg.Cache = false
	}
	return nil
}
