package project

import (
	"runtime"
	"slices"
)

// ManifestName is the file FindManifest looks for.
const ManifestName = "jstrip.toml"

// Config is the resolved configuration of a clean run.
type Config struct {
	Repo       string   // REPO_DIR: directory with one subdirectory per project
	Out        string   // CLEAN_DIR: mirror root
	Jobs       int      // parallel files
	Extensions []string // file suffixes to clean
	Charset    string   // source charset, "" is UTF-8
	Cache      bool     // use the on-disk content cache
	Projects   []string // project names from [[project]]

	Manifest string // path of the loaded jstrip.toml, "" if none
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Repo:       "data/repositories",
		Out:        "data/clean",
		Jobs:       runtime.GOMAXPROCS(0),
		Extensions: []string{".java"},
		Cache:      true,
	}
}

// Clone returns a copy that shares no slices with c.
func (c Config) Clone() Config {
	c.Extensions = slices.Clone(c.Extensions)
	c.Projects = slices.Clone(c.Projects)
	return c
}
