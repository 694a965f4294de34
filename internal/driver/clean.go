package driver

import (
	"context"
	"fmt"

	"jstrip/internal/ast"
	"jstrip/internal/diag"
	"jstrip/internal/format"
	"jstrip/internal/observ"
	"jstrip/internal/parser"
	"jstrip/internal/source"
	"jstrip/internal/strip"
	"jstrip/internal/trace"
)

// ParseFunc builds a tree for file or reports why it cannot.
type ParseFunc func(file *source.File, opts parser.Options) (parser.Result, error)

// RenderFunc serializes an edited tree back to text.
type RenderFunc func(u *ast.Unit) ([]byte, error)

// Options configures a single Clean run. The zero value is usable.
type Options struct {
	MaxDiagnostics int
	Timer          *observ.Timer
	Parse          ParseFunc  // default parser.Parse
	Render         RenderFunc // default format.Render
}

// Result is the outcome of one Clean run.
type Result struct {
	Output  []byte
	Outcome Outcome
	Reason  error // nil on success
	Stats   Stats
	File    *source.File // header-stripped text as the parser saw it
	FileSet *source.FileSet
	Bag     *diag.Bag
}

// Text returns the output the way the CLI prints it: followed by one newline.
func (r Result) Text() []byte {
	out := make([]byte, 0, len(r.Output)+1)
	out = append(out, r.Output...)
	return append(out, '\n')
}

// Clean runs the pipeline on src. It never returns an error: parse and
// render failures degrade to the header-stripped text.
func Clean(ctx context.Context, name string, src []byte, opts Options) Result {
	if opts.Parse == nil {
		opts.Parse = parser.Parse
	}
	if opts.Render == nil {
		opts.Render = format.Render
	}
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = 100
	}
	tracer := trace.FromContext(ctx)
	fileSpan, ctx := trace.StartSpan(ctx, trace.ScopeFile, "file:"+name)

	res := run(ctx, name, src, opts)

	if res.Outcome.Degraded() {
		trace.Error(tracer, fileSpan.ID(), res.Outcome.String(), fmt.Sprintf("%s: %v", name, res.Reason))
	}
	fileSpan.
		WithExtra("imports", fmt.Sprint(res.Stats.Imports)).
		WithExtra("annotations", fmt.Sprint(res.Stats.Annotations)).
		WithExtra("comments", fmt.Sprint(res.Stats.Comments)).
		End(res.Outcome.String())
	return res
}

func run(ctx context.Context, name string, src []byte, opts Options) Result {
	var headerless []byte
	stage(ctx, opts.Timer, "header", func() string {
		headerless = strip.Header(src)
		return ""
	})

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, headerless))
	bag := diag.NewBag(opts.MaxDiagnostics)
	res := Result{Output: headerless, File: file, FileSet: fs, Bag: bag}

	var (
		parsed parser.Result
		err    error
	)
	stage(ctx, opts.Timer, "parse", func() string {
		parsed, err = opts.Parse(file, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
		if err == nil && parsed.Unit == nil {
			err = fmt.Errorf("%w: no tree", parser.ErrParse)
		}
		return errNote(err)
	})
	if err != nil {
		res.Outcome = OutcomeParseFailure
		res.Reason = err
		return res
	}
	unit := parsed.Unit

	var stats Stats
	stage(ctx, opts.Timer, "imports", func() string {
		stats.Imports = strip.Imports(unit)
		return fmt.Sprint(stats.Imports)
	})
	stage(ctx, opts.Timer, "annotations", func() string {
		stats.Annotations = strip.Annotations(unit)
		return fmt.Sprint(stats.Annotations)
	})
	stage(ctx, opts.Timer, "comments", func() string {
		stats.Comments = strip.Comments(unit)
		return fmt.Sprint(stats.Comments)
	})

	var rendered []byte
	stage(ctx, opts.Timer, "render", func() string {
		rendered, err = opts.Render(unit)
		return errNote(err)
	})
	if err != nil {
		res.Outcome = OutcomeFallback
		res.Reason = fmt.Errorf("render: %w", err)
		return res
	}

	stage(ctx, opts.Timer, "compact", func() string {
		res.Output = strip.Compact(rendered)
		return ""
	})
	res.Outcome = OutcomeSuccess
	res.Stats = stats
	return res
}

// stage times fn and wraps it in a trace span; fn returns the span note.
func stage(ctx context.Context, timer *observ.Timer, name string, fn func() string) {
	span, _ := trace.StartSpan(ctx, trace.ScopeStage, name)
	idx := timer.Begin(name)
	note := fn()
	timer.End(idx, note)
	span.End(note)
}

func errNote(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
