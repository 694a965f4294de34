package project

import (
	"os"
	"path/filepath"
)

// LoadOptions says where Load looks. Zero values mean the working directory,
// the process environment and ".env" next to the manifest (or in StartDir).
type LoadOptions struct {
	StartDir string
	Environ  []string
	DotEnv   string
	// NoManifest skips the jstrip.toml lookup.
	NoManifest bool
}

// Load resolves defaults, jstrip.toml and the environment into one Config.
func Load(opts LoadOptions) (Config, error) {
	cfg := Default()

	dotenvDir := opts.StartDir
	if !opts.NoManifest {
		path, ok, err := FindManifest(opts.StartDir)
		if err != nil {
			return cfg, err
		}
		if ok {
			if err := ApplyManifest(&cfg, path); err != nil {
				return cfg, err
			}
			dotenvDir = filepath.Dir(path)
		}
	}

	dotenv := opts.DotEnv
	if dotenv == "" {
		if dotenvDir == "" {
			dotenvDir = "."
		}
		dotenv = filepath.Join(dotenvDir, ".env")
	}
	environ := opts.Environ
	if environ == nil {
		environ = os.Environ()
	}
	vars, err := Environment(dotenv, environ)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg, vars); err != nil {
		return cfg, err
	}
	return cfg, nil
}
