package project

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

const sampleManifest = `
[clean]
repo = "data/repositories"
out = "/tmp/clean"
jobs = 3
extensions = ["java", ".jav"]
charset = "windows-1252"
cache = false

[[project]]
name = "jsoup"

[[project]]
name = "guava"
`

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), "")
	deep := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := FindManifest(deep)
	if err != nil || !ok {
		t.Fatalf("FindManifest: ok=%v err=%v", ok, err)
	}
	if path != filepath.Join(root, ManifestName) {
		t.Errorf("path = %q", path)
	}
}

func TestApplyManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)
	writeFile(t, path, sampleManifest)

	cfg := Default()
	if err := ApplyManifest(&cfg, path); err != nil {
		t.Fatal(err)
	}
	if cfg.Repo != filepath.Join(dir, "data", "repositories") {
		t.Errorf("repo = %q", cfg.Repo)
	}
	if cfg.Out != "/tmp/clean" {
		t.Errorf("out = %q", cfg.Out)
	}
	if cfg.Jobs != 3 || cfg.Cache || cfg.Charset != "windows-1252" {
		t.Errorf("cfg = %+v", cfg)
	}
	if !slices.Equal(cfg.Extensions, []string{".java", ".jav"}) {
		t.Errorf("extensions = %v", cfg.Extensions)
	}
	if !slices.Equal(cfg.Projects, []string{"jsoup", "guava"}) {
		t.Errorf("projects = %v", cfg.Projects)
	}
	if cfg.Manifest != path {
		t.Errorf("manifest = %q", cfg.Manifest)
	}
}

func TestApplyManifestKeepsUnsetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestName)
	writeFile(t, path, "[clean]\njobs = 0\n")

	cfg := Default()
	want := cfg.Clone()
	if err := ApplyManifest(&cfg, path); err != nil {
		t.Fatal(err)
	}
	if cfg.Jobs != want.Jobs || !cfg.Cache || cfg.Repo != want.Repo {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestApplyManifestErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		is      error
	}{
		{"nameless project", "[[project]]\nname = \"  \"\n", ErrProjectNameMissing},
		{"duplicate project", "[[project]]\nname = \"a\"\n[[project]]\nname = \"a\"\n", ErrDuplicateProject},
		{"unknown key", "[clean]\nthreads = 4\n", nil},
		{"negative jobs", "[clean]\njobs = -1\n", nil},
		{"empty extensions", "[clean]\nextensions = []\n", nil},
		{"bad toml", "[clean\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ManifestName)
			writeFile(t, path, tt.content)
			cfg := Default()
			err := ApplyManifest(&cfg, path)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("err = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestEnvironmentProcessWins(t *testing.T) {
	dotenv := filepath.Join(t.TempDir(), ".env")
	writeFile(t, dotenv, "REPO_DIR=from-file\nCLEAN_DIR=file-clean\n")

	vars, err := Environment(dotenv, []string{"REPO_DIR=from-process", "IGNORED"})
	if err != nil {
		t.Fatal(err)
	}
	if vars["REPO_DIR"] != "from-process" || vars["CLEAN_DIR"] != "file-clean" {
		t.Errorf("vars = %v", vars)
	}

	if _, err := Environment(filepath.Join(t.TempDir(), "missing.env"), nil); err != nil {
		t.Errorf("missing .env must be ignored, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := ApplyEnv(&cfg, map[string]string{
		"REPO_DIR":        "/repos",
		"CLEAN_DIR":       "/clean",
		"JSTRIP_JOBS":     "5",
		"JSTRIP_CHARSET":  " utf-16 ",
		"JSTRIP_NO_CACHE": "true",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Repo != "/repos" || cfg.Out != "/clean" || cfg.Jobs != 5 || cfg.Charset != "utf-16" || cfg.Cache {
		t.Errorf("cfg = %+v", cfg)
	}

	if err := ApplyEnv(&cfg, map[string]string{"JSTRIP_JOBS": "many"}); err == nil {
		t.Error("expected error for non-numeric JSTRIP_JOBS")
	}
	if err := ApplyEnv(&cfg, map[string]string{"JSTRIP_JOBS": "-2"}); err == nil {
		t.Error("expected error for negative JSTRIP_JOBS")
	}
}

func TestLoadPrecedence(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), "[clean]\nrepo = \"repos\"\nout = \"clean\"\n[[project]]\nname = \"jsoup\"\n")
	writeFile(t, filepath.Join(root, ".env"), "CLEAN_DIR=/env-clean\n")
	sub := filepath.Join(root, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(LoadOptions{StartDir: sub, Environ: []string{}})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Repo != filepath.Join(root, "repos") {
		t.Errorf("repo = %q, want manifest value", cfg.Repo)
	}
	if cfg.Out != "/env-clean" {
		t.Errorf("out = %q, want .env value", cfg.Out)
	}
	if !slices.Equal(cfg.Projects, []string{"jsoup"}) {
		t.Errorf("projects = %v", cfg.Projects)
	}

	cfg, err = Load(LoadOptions{StartDir: sub, Environ: []string{"CLEAN_DIR=/proc-clean"}})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Out != "/proc-clean" {
		t.Errorf("out = %q, want process value", cfg.Out)
	}
}
