package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"jstrip/internal/observ"
	"jstrip/internal/source"
	"jstrip/internal/trace"
)

// DefaultExtensions are the file suffixes CleanTree picks up when none are given.
var DefaultExtensions = []string{".java"}

// TreeOptions configures CleanTree.
type TreeOptions struct {
	Root       string   // source tree
	Out        string   // mirror root; created if missing
	Files      []string // paths relative to Root; nil means walk Root
	Extensions []string
	Jobs       int // <= 0 means GOMAXPROCS
	Charset    string
	Version    string // part of the cache key
	Cache      *DiskCache
	Clean      Options
	Sink       ProgressSink
	Timings    *observ.Aggregate
}

// FileResult is what happened to one file of the tree.
type FileResult struct {
	Path    string  `json:"path"` // relative to Root
	Outcome Outcome `json:"outcome"`
	Reason  string  `json:"reason,omitempty"`
	Stats   Stats   `json:"stats"`
	Cached  bool    `json:"cached,omitempty"`
	Err     error   `json:"-"` // read or write failure; the file was skipped
}

// TreeResult collects per-file results sorted by path.
type TreeResult struct {
	Root  string       `json:"root"`
	Out   string       `json:"out"`
	Files []FileResult `json:"files"`
}

// Summary counts outcomes across the tree.
type Summary struct {
	Files         int   `json:"files"`
	Success       int   `json:"success"`
	ParseFailures int   `json:"parse_failures"`
	Fallbacks     int   `json:"fallbacks"`
	Errors        int   `json:"errors"`
	Cached        int   `json:"cached"`
	Removed       Stats `json:"removed"`
}

// Summary aggregates the per-file results.
func (r *TreeResult) Summary() Summary {
	var s Summary
	if r == nil {
		return s
	}
	s.Files = len(r.Files)
	for i := range r.Files {
		f := &r.Files[i]
		if f.Err != nil {
			s.Errors++
			continue
		}
		if f.Cached {
			s.Cached++
		}
		switch f.Outcome {
		case OutcomeSuccess:
			s.Success++
		case OutcomeParseFailure:
			s.ParseFailures++
		case OutcomeFallback:
			s.Fallbacks++
		}
		s.Removed = s.Removed.Add(f.Stats)
	}
	return s
}

// ListFiles returns the files under root with one of exts, relative to root, sorted.
func ListFiles(root string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !hasExt(path, exts) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	slices.Sort(files)
	return files, nil
}

func hasExt(path string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// CleanTree cleans every file of opts.Root into the same relative path under
// opts.Out. Unreadable or unwritable files are recorded in FileResult.Err and
// skipped; the returned error is only for a failed walk or a cancelled ctx.
func CleanTree(ctx context.Context, opts TreeOptions) (*TreeResult, error) {
	files := opts.Files
	if files == nil {
		var err error
		files, err = ListFiles(opts.Root, opts.Extensions)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", opts.Root, err)
		}
	}

	result := &TreeResult{Root: opts.Root, Out: opts.Out, Files: make([]FileResult, len(files))}
	if len(files) == 0 {
		return result, nil
	}

	runSpan, ctx := trace.StartSpan(ctx, trace.ScopeRun, "clean:"+opts.Root)
	defer func() { runSpan.End(fmt.Sprintf("%d files", len(files))) }()

	for _, rel := range files {
		emit(opts.Sink, Event{File: rel, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, rel := range files {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			// индекс i уникален для горутины, мьютекс не нужен
			result.Files[i] = cleanOne(gctx, &opts, rel)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}
	slices.SortFunc(result.Files, func(a, b FileResult) int { return strings.Compare(a.Path, b.Path) })
	return result, nil
}

func cleanOne(ctx context.Context, opts *TreeOptions, rel string) FileResult {
	started := time.Now()
	fr := FileResult{Path: rel}
	fail := func(stage Stage, err error) FileResult {
		fr.Err = err
		trace.Error(trace.FromContext(ctx), trace.CurrentSpan(ctx), "file error", err.Error())
		emit(opts.Sink, Event{File: rel, Stage: stage, Status: StatusError, Err: err, Elapsed: time.Since(started)})
		return fr
	}

	emit(opts.Sink, Event{File: rel, Stage: StageRead, Status: StatusWorking})
	in := filepath.Join(opts.Root, filepath.FromSlash(rel))
	// #nosec G304 -- path comes from walking the project root
	raw, err := os.ReadFile(in)
	if err != nil {
		return fail(StageRead, err)
	}
	content, _, err := source.Normalize(raw, opts.Charset)
	if err != nil {
		return fail(StageRead, fmt.Errorf("%s: %w", rel, err))
	}

	emit(opts.Sink, Event{File: rel, Stage: StageClean, Status: StatusWorking})
	res, cached := cleanCached(ctx, opts, rel, content)
	fr.Outcome = res.Outcome
	fr.Stats = res.Stats
	fr.Cached = cached
	if res.Reason != nil {
		fr.Reason = res.Reason.Error()
	}

	emit(opts.Sink, Event{File: rel, Stage: StageWrite, Status: StatusWorking})
	out := filepath.Join(opts.Out, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fail(StageWrite, err)
	}
	if err := os.WriteFile(out, res.Text(), 0o644); err != nil {
		return fail(StageWrite, err)
	}

	emit(opts.Sink, Event{
		File:    rel,
		Stage:   StageWrite,
		Status:  StatusDone,
		Outcome: res.Outcome,
		Cached:  cached,
		Elapsed: time.Since(started),
	})
	return fr
}

func cleanCached(ctx context.Context, opts *TreeOptions, rel string, content []byte) (Result, bool) {
	var key Digest
	if opts.Cache != nil {
		key = CacheKey(opts.Version, opts.Charset, content)
		var cc CachedClean
		ok, err := opts.Cache.Get(key, &cc)
		if err != nil {
			trace.Point(trace.FromContext(ctx), trace.ScopeNode, trace.CurrentSpan(ctx), "cache", err.Error())
		}
		if ok {
			return fromCached(&cc), true
		}
	}

	cleanOpts := opts.Clean
	if opts.Timings != nil {
		cleanOpts.Timer = observ.NewTimer()
	}
	res := Clean(ctx, rel, content, cleanOpts)
	if opts.Timings != nil {
		opts.Timings.Add(cleanOpts.Timer.Report())
	}

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, toCached(&res)); err != nil {
			trace.Point(trace.FromContext(ctx), trace.ScopeNode, trace.CurrentSpan(ctx), "cache", err.Error())
		}
	}
	return res, false
}
