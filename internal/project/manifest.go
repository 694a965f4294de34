package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ErrProjectNameMissing indicates a [[project]] entry without a name.
	ErrProjectNameMissing = errors.New("missing [[project]].name")
	// ErrDuplicateProject indicates two [[project]] entries with the same name.
	ErrDuplicateProject = errors.New("duplicate [[project]].name")
)

type manifestFile struct {
	Clean struct {
		Repo       string   `toml:"repo"`
		Out        string   `toml:"out"`
		Jobs       int      `toml:"jobs"`
		Extensions []string `toml:"extensions"`
		Charset    string   `toml:"charset"`
		Cache      bool     `toml:"cache"`
	} `toml:"clean"`
	Project []struct {
		Name string `toml:"name"`
	} `toml:"project"`
}

// FindManifest walks up from startDir to locate jstrip.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// ApplyManifest decodes path into cfg. Only keys present in the file
// override cfg; relative directories are resolved against the file's directory.
func ApplyManifest(cfg *Config, path string) error {
	var mf manifestFile
	meta, err := toml.DecodeFile(path, &mf)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	base := filepath.Dir(path)

	if meta.IsDefined("clean", "repo") {
		cfg.Repo = resolveDir(base, mf.Clean.Repo)
	}
	if meta.IsDefined("clean", "out") {
		cfg.Out = resolveDir(base, mf.Clean.Out)
	}
	if meta.IsDefined("clean", "jobs") {
		if mf.Clean.Jobs < 0 {
			return fmt.Errorf("%s: [clean].jobs must not be negative", path)
		}
		if mf.Clean.Jobs > 0 {
			cfg.Jobs = mf.Clean.Jobs
		}
	}
	if meta.IsDefined("clean", "extensions") {
		exts, err := normalizeExtensions(mf.Clean.Extensions)
		if err != nil {
			return fmt.Errorf("%s: [clean].extensions: %w", path, err)
		}
		cfg.Extensions = exts
	}
	if meta.IsDefined("clean", "charset") {
		cfg.Charset = strings.TrimSpace(mf.Clean.Charset)
	}
	if meta.IsDefined("clean", "cache") {
		cfg.Cache = mf.Clean.Cache
	}

	if meta.IsDefined("project") {
		seen := make(map[string]bool, len(mf.Project))
		cfg.Projects = cfg.Projects[:0]
		for _, p := range mf.Project {
			name := strings.TrimSpace(p.Name)
			if name == "" {
				return fmt.Errorf("%s: %w", path, ErrProjectNameMissing)
			}
			if seen[name] {
				return fmt.Errorf("%s: %w: %q", path, ErrDuplicateProject, name)
			}
			seen[name] = true
			cfg.Projects = append(cfg.Projects, name)
		}
	}
	cfg.Manifest = path
	return nil
}

func resolveDir(base, dir string) string {
	dir = strings.TrimSpace(dir)
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, filepath.FromSlash(dir))
}

func normalizeExtensions(in []string) ([]string, error) {
	if len(in) == 0 {
		return nil, errors.New("must not be empty")
	}
	out := make([]string, 0, len(in))
	for _, ext := range in {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return nil, errors.New("empty extension")
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out, nil
}
