package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ProjectResult is the outcome of cleaning one named project.
type ProjectResult struct {
	Name    string      `json:"name"`
	Skipped bool        `json:"skipped,omitempty"`
	Warning string      `json:"warning,omitempty"`
	Tree    *TreeResult `json:"tree,omitempty"`
}

// CleanProjects mirrors repoDir/<name> into cleanDir/<name> for every name.
// A missing project directory is a warning and the project is skipped.
// tmpl supplies every TreeOptions field except Root and Out.
func CleanProjects(ctx context.Context, repoDir, cleanDir string, names []string, tmpl TreeOptions) ([]ProjectResult, error) {
	info, err := os.Stat(repoDir)
	if err != nil {
		return nil, fmt.Errorf("repository folder %s: %w", repoDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("repository folder %s is not a directory", repoDir)
	}

	out := make([]ProjectResult, 0, len(names))
	for _, name := range names {
		pr := ProjectResult{Name: name}
		root := filepath.Join(repoDir, name)
		if st, err := os.Stat(root); err != nil || !st.IsDir() {
			pr.Skipped = true
			pr.Warning = fmt.Sprintf("repository %s does not exist, skipping", root)
			out = append(out, pr)
			continue
		}

		opts := tmpl
		opts.Root = root
		opts.Out = filepath.Join(cleanDir, name)
		opts.Files = nil
		if tmpl.Sink != nil {
			opts.Sink = prefixSink(name, tmpl.Sink)
		}
		tree, err := CleanTree(ctx, opts)
		pr.Tree = tree
		out = append(out, pr)
		if err != nil {
			return out, fmt.Errorf("project %s: %w", name, err)
		}
	}
	return out, nil
}

// prefixSink reports files as <project>/<path> so runs over several projects
// can share one sink.
func prefixSink(name string, sink ProgressSink) ProgressSink {
	return SinkFunc(func(evt Event) {
		if evt.File != "" {
			evt.File = name + "/" + evt.File
		}
		sink.OnEvent(evt)
	})
}

// ErrOutsideProject is returned by Lookup for paths that do not belong to the project.
var ErrOutsideProject = errors.New("path does not belong to this project")

// Lookup returns the cleaned counterpart of path. path may be relative to
// projectRoot, or carry projectRoot as a prefix, or be absolute. ok is false
// when no cleaned file exists.
func Lookup(projectRoot, cleanRoot, path string) (text []byte, ok bool, err error) {
	rel, err := projectRelative(projectRoot, path)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(filepath.Join(cleanRoot, rel))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// CleanedPath maps path to its location under cleanRoot without reading it.
func CleanedPath(projectRoot, cleanRoot, path string) (string, error) {
	rel, err := projectRelative(projectRoot, path)
	if err != nil {
		return "", err
	}
	return filepath.Join(cleanRoot, rel), nil
}

func projectRelative(projectRoot, path string) (string, error) {
	root := filepath.Clean(projectRoot)
	orig := filepath.Clean(path)
	p := orig

	if filepath.IsAbs(p) != filepath.IsAbs(root) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return "", err
		}
		absP, err := filepath.Abs(p)
		if err != nil {
			return "", err
		}
		root, p = absRoot, absP
	}

	if rel, err := filepath.Rel(root, p); err == nil && filepath.IsLocal(rel) && rel != "." {
		return rel, nil
	}
	// относительный путь без префикса проекта считается путём внутри проекта
	if filepath.IsLocal(orig) {
		return orig, nil
	}
	return "", fmt.Errorf("%w: %s", ErrOutsideProject, path)
}
