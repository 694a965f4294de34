package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jstrip/internal/driver"
	"jstrip/internal/observ"
	"jstrip/internal/source"
)

const stdinName = "<stdin>"

var stripCmd = &cobra.Command{
	Use:   "strip [file]",
	Short: "Clean one Java source to stdout",
	Long: `Strip prints the cleaned form of a Java source, followed by a newline.
When the file cannot be parsed the header-stripped text is printed instead.
Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStrip,
}

type stripOptions struct {
	charset        string
	maxDiagnostics int
	timer          *observ.Timer
}

func runStrip(cmd *cobra.Command, args []string) error {
	flags := cmd.Root().PersistentFlags()
	charset, err := flags.GetString("charset")
	if err != nil {
		return fmt.Errorf("failed to get charset flag: %w", err)
	}
	maxDiagnostics, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	showTimings, err := flags.GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	name, raw, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	opts := stripOptions{charset: charset, maxDiagnostics: maxDiagnostics}
	if showTimings {
		opts.timer = observ.NewTimer()
	}
	res, err := cleanSource(cmd.Context(), name, raw, opts)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(res.Text()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if !quiet && res.Outcome.Degraded() {
		fmt.Fprintf(cmd.ErrOrStderr(), "jstrip: %s\n", degradedLine(name, res))
		if err := printDiagnostics(cmd, cmd.ErrOrStderr(), res.Bag, res.FileSet); err != nil {
			return err
		}
	}
	if opts.timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), opts.timer.Summary())
	}
	return nil
}

// readInput returns the display name and raw bytes of the single input.
func readInput(stdin io.Reader, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return stdinName, nil, fmt.Errorf("read stdin: %w", err)
		}
		return stdinName, raw, nil
	}
	// #nosec G304 -- path is provided by the user
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return args[0], nil, fmt.Errorf("read input: %w", err)
	}
	return args[0], raw, nil
}

// cleanSource decodes raw and runs the clean pipeline on it.
func cleanSource(ctx context.Context, name string, raw []byte, opts stripOptions) (driver.Result, error) {
	content, _, err := source.Normalize(raw, opts.charset)
	if err != nil {
		return driver.Result{}, fmt.Errorf("%s: %w", name, err)
	}
	return driver.Clean(ctx, name, content, driver.Options{
		MaxDiagnostics: opts.maxDiagnostics,
		Timer:          opts.timer,
	}), nil
}

// degradedLine объясняет, почему вывод не был очищен.
func degradedLine(name string, res driver.Result) string {
	return fmt.Sprintf("%s: %s: %v", name, res.Outcome, res.Reason)
}
