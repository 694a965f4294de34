package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"jstrip/internal/driver"
	"jstrip/internal/observ"
	"jstrip/internal/project"
	"jstrip/internal/trace"
	"jstrip/internal/ui"
	"jstrip/internal/version"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [project...]",
	Short: "Clean every source of the given projects into a mirror tree",
	Long: `Clean mirrors <repo>/<project> into <out>/<project>, writing the cleaned form
of every source file at the same relative path. Projects default to the
[[project]] entries of jstrip.toml. Missing projects are skipped with a warning.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().String("repo", "", "directory holding one subdirectory per project (REPO_DIR)")
	cleanCmd.Flags().String("out", "", "mirror root for cleaned files (CLEAN_DIR)")
	cleanCmd.Flags().Int("jobs", 0, "max parallel files (0=auto)")
	cleanCmd.Flags().StringSlice("ext", nil, "file extensions to clean (default .java)")
	cleanCmd.Flags().Bool("no-cache", false, "do not use the on-disk cache")
	cleanCmd.Flags().Bool("no-manifest", false, "ignore jstrip.toml")
	cleanCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	cleanCmd.Flags().String("format", "text", "summary format (text|json)")
}

// errFilesFailed is returned when some files could not be read or written.
var errFilesFailed = errors.New("some files could not be cleaned")

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(format)
	if format != "text" && format != "json" {
		return fmt.Errorf("unsupported format %q (must be text or json)", format)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	flags := cmd.Root().PersistentFlags()
	quiet, _ := flags.GetBool("quiet")
	showTimings, _ := flags.GetBool("timings")
	maxDiagnostics, _ := flags.GetInt("max-diagnostics")

	names := args
	if len(names) == 0 {
		names = cfg.Projects
	}
	if len(names) == 0 {
		return fmt.Errorf("no projects: pass project names or list them in %s", project.ManifestName)
	}

	tmpl := driver.TreeOptions{
		Extensions: cfg.Extensions,
		Jobs:       cfg.Jobs,
		Charset:    cfg.Charset,
		Version:    version.Version,
		Clean:      driver.Options{MaxDiagnostics: maxDiagnostics},
	}
	if cfg.Cache {
		cache, err := driver.OpenDiskCache("jstrip")
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "[WARN] cache disabled: %v\n", err)
		} else {
			tmpl.Cache = cache
		}
	}
	if showTimings {
		tmpl.Timings = observ.NewAggregate()
	}

	ctx := cmd.Context()
	var results []driver.ProjectResult
	var runErr error
	switch {
	case format == "text" && !quiet && shouldUseTUI(mode):
		results, runErr = cleanWithProgress(ctx, cmd.OutOrStdout(), cfg, names, tmpl)
	default:
		if format == "text" && !quiet {
			tmpl.Sink = lineSink(cmd.ErrOrStderr())
		}
		results, runErr = driver.CleanProjects(ctx, cfg.Repo, cfg.Out, names, tmpl)
	}

	for _, pr := range results {
		if pr.Skipped {
			fmt.Fprintf(cmd.ErrOrStderr(), "[WARN] %s\n", pr.Warning)
		}
	}

	var printErr error
	if format == "json" {
		printErr = printCleanJSON(cmd.OutOrStdout(), results)
	} else if !quiet {
		printCleanSummary(cmd.OutOrStdout(), results)
	}
	if printErr != nil {
		return printErr
	}

	degraded, failed := countProblems(results)
	if degraded > 0 && !quiet {
		dumpTraceRing(ctx, cmd.ErrOrStderr())
	}
	if tmpl.Timings != nil {
		fmt.Fprint(cmd.ErrOrStderr(), tmpl.Timings.Report().Summary())
	}
	if runErr != nil {
		return runErr
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d file(s)", errFilesFailed, failed)
	}
	return nil
}

// loadConfig layers clean flags on top of jstrip.toml and the environment.
func loadConfig(cmd *cobra.Command) (project.Config, error) {
	noManifest, err := cmd.Flags().GetBool("no-manifest")
	if err != nil {
		return project.Config{}, fmt.Errorf("failed to get no-manifest flag: %w", err)
	}
	cfg, err := project.Load(project.LoadOptions{NoManifest: noManifest})
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("repo") {
		cfg.Repo, _ = flags.GetString("repo")
	}
	if flags.Changed("out") {
		cfg.Out, _ = flags.GetString("out")
	}
	if flags.Changed("jobs") {
		cfg.Jobs, _ = flags.GetInt("jobs")
	}
	if flags.Changed("ext") {
		exts, _ := flags.GetStringSlice("ext")
		cfg.Extensions = normalizeExts(exts)
	}
	if flags.Changed("no-cache") {
		noCache, _ := flags.GetBool("no-cache")
		cfg.Cache = !noCache
	}
	if root := cmd.Root().PersistentFlags(); root.Changed("charset") {
		cfg.Charset, _ = root.GetString("charset")
	}
	return cfg, nil
}

func normalizeExts(in []string) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

// cleanWithProgress runs the projects behind the progress view.
func cleanWithProgress(ctx context.Context, out io.Writer, cfg project.Config, names []string, tmpl driver.TreeOptions) ([]driver.ProjectResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 64)
	tmpl.Sink = driver.ChannelSink{Ch: events}

	var (
		results []driver.ProjectResult
		runErr  error
		wg      sync.WaitGroup
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(events)
		results, runErr = driver.CleanProjects(ctx, cfg.Repo, cfg.Out, names, tmpl)
	}()

	uiErr := ui.RunProgress(out, "jstrip clean", nil, events)
	// UI мог выйти раньше (q или ctrl+c): останавливаем работу и дочитываем канал
	cancel()
	for range events {
	}
	wg.Wait()

	if runErr == nil && uiErr != nil {
		runErr = fmt.Errorf("progress ui: %w", uiErr)
	}
	return results, runErr
}

// lineSink prints one line per degraded or failed file.
func lineSink(w io.Writer) driver.ProgressSink {
	var mu sync.Mutex
	return driver.SinkFunc(func(evt driver.Event) {
		var line string
		switch {
		case evt.Status == driver.StatusError:
			line = fmt.Sprintf("error         %s: %v", evt.File, evt.Err)
		case evt.Status == driver.StatusDone && evt.Outcome.Degraded():
			line = fmt.Sprintf("%-13s %s", evt.Outcome, evt.File)
		default:
			return
		}
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(w, line)
	})
}

func printCleanSummary(w io.Writer, results []driver.ProjectResult) {
	for _, pr := range results {
		if pr.Skipped {
			continue
		}
		s := pr.Tree.Summary()
		fmt.Fprintf(w, "%s: %d files, %d cleaned, %d parse failures, %d fallbacks, %d errors",
			pr.Name, s.Files, s.Success, s.ParseFailures, s.Fallbacks, s.Errors)
		if s.Cached > 0 {
			fmt.Fprintf(w, " (%d cached)", s.Cached)
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  removed %d imports, %d annotations, %d comments\n",
			s.Removed.Imports, s.Removed.Annotations, s.Removed.Comments)
	}
}

type fileReportJSON struct {
	driver.FileResult
	Error string `json:"error,omitempty"`
}

type projectReportJSON struct {
	Name    string           `json:"name"`
	Skipped bool             `json:"skipped,omitempty"`
	Warning string           `json:"warning,omitempty"`
	Root    string           `json:"root,omitempty"`
	Out     string           `json:"out,omitempty"`
	Summary *driver.Summary  `json:"summary,omitempty"`
	Files   []fileReportJSON `json:"files,omitempty"`
}

func printCleanJSON(w io.Writer, results []driver.ProjectResult) error {
	payload := make([]projectReportJSON, 0, len(results))
	for _, pr := range results {
		rep := projectReportJSON{Name: pr.Name, Skipped: pr.Skipped, Warning: pr.Warning}
		if pr.Tree != nil {
			s := pr.Tree.Summary()
			rep.Summary = &s
			rep.Root = pr.Tree.Root
			rep.Out = pr.Tree.Out
			rep.Files = make([]fileReportJSON, len(pr.Tree.Files))
			for i, f := range pr.Tree.Files {
				rep.Files[i] = fileReportJSON{FileResult: f}
				if f.Err != nil {
					rep.Files[i].Error = f.Err.Error()
				}
			}
		}
		payload = append(payload, rep)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func countProblems(results []driver.ProjectResult) (degraded, failed int) {
	for _, pr := range results {
		s := pr.Tree.Summary()
		degraded += s.ParseFailures + s.Fallbacks
		failed += s.Errors
	}
	return degraded, failed
}

// dumpTraceRing печатает кольцевой буфер трассировки, если он включён.
func dumpTraceRing(ctx context.Context, w io.Writer) {
	ring, ok := trace.Ring(trace.FromContext(ctx))
	if !ok {
		return
	}
	fmt.Fprintln(w, "recent trace events:")
	if err := ring.Dump(w, trace.FormatText); err != nil {
		fmt.Fprintf(w, "trace: dump error: %v\n", err)
	}
}
