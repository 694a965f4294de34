package driver_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"jstrip/internal/driver"
)

func TestCleanProjectsSkipsMissing(t *testing.T) {
	repo := t.TempDir()
	clean := t.TempDir()
	writeFile(t, filepath.Join(repo, "jsoup", "src", "Node.java"), "@Deprecated\nclass Node {}\n")

	res, err := driver.CleanProjects(context.Background(), repo, clean, []string{"jsoup", "guava"}, driver.TreeOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 {
		t.Fatalf("results = %d, want 2", len(res))
	}
	if res[0].Skipped || res[0].Tree == nil || res[0].Tree.Summary().Success != 1 {
		t.Errorf("jsoup = %+v", res[0])
	}
	if !res[1].Skipped || res[1].Warning == "" {
		t.Errorf("guava should be skipped with a warning: %+v", res[1])
	}
	if got := readFile(t, filepath.Join(clean, "jsoup", "src", "Node.java")); got != "class Node {}\n\n" {
		t.Errorf("Node.java = %q", got)
	}
}

func TestCleanProjectsPrefixesEvents(t *testing.T) {
	repo := t.TempDir()
	writeFile(t, filepath.Join(repo, "jsoup", "Node.java"), "class Node {}\n")

	var (
		mu    sync.Mutex
		files = map[string]bool{}
	)
	sink := driver.SinkFunc(func(evt driver.Event) {
		mu.Lock()
		files[evt.File] = true
		mu.Unlock()
	})
	if _, err := driver.CleanProjects(context.Background(), repo, t.TempDir(), []string{"jsoup"}, driver.TreeOptions{Sink: sink}); err != nil {
		t.Fatal(err)
	}
	if !files["jsoup/Node.java"] || files["Node.java"] {
		t.Errorf("event files = %v", files)
	}
}

func TestCleanProjectsMissingRepo(t *testing.T) {
	_, err := driver.CleanProjects(context.Background(), filepath.Join(t.TempDir(), "nope"), t.TempDir(), []string{"x"}, driver.TreeOptions{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not-exist", err)
	}
}

func TestLookup(t *testing.T) {
	base := t.TempDir()
	project := filepath.Join(base, "repos", "jsoup")
	clean := filepath.Join(base, "clean", "jsoup")
	writeFile(t, filepath.Join(clean, "src", "Node.java"), "class Node {}\n")

	tests := []struct {
		name   string
		path   string
		wantOK bool
		outErr bool
	}{
		{"relative to project", filepath.Join("src", "Node.java"), true, false},
		{"prefixed with project", filepath.Join(project, "src", "Node.java"), true, false},
		{"not cleaned", filepath.Join("src", "Other.java"), false, false},
		{"escapes project", filepath.Join("..", "guava", "A.java"), false, true},
		{"absolute elsewhere", filepath.Join(base, "elsewhere", "A.java"), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ok, err := driver.Lookup(project, clean, tt.path)
			if tt.outErr {
				if !errors.Is(err, driver.ErrOutsideProject) {
					t.Fatalf("err = %v, want ErrOutsideProject", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && string(text) != "class Node {}\n" {
				t.Errorf("text = %q", text)
			}
		})
	}
}

func TestCleanedPath(t *testing.T) {
	got, err := driver.CleanedPath("repos/jsoup", "clean/jsoup", "repos/jsoup/src/A.java")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("clean", "jsoup", "src", "A.java"); got != want {
		t.Errorf("CleanedPath = %q, want %q", got, want)
	}
}
