package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"jstrip/internal/diag"
	"jstrip/internal/diagfmt"
	"jstrip/internal/parser"
	"jstrip/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.java>",
	Short: "Parse a Java source and print its outline",
	Long: `Parse reads one Java source and prints the declarations the cleaner sees:
package, imports, and types with their members. Diagnostics go to stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "outline", "output format (outline|json)")
}

var errParseFailed = errors.New("parse failed")

// loadFile читает файл в новый FileSet с учётом --charset.
func loadFile(cmd *cobra.Command, path string) (*source.FileSet, *source.File, error) {
	charset, err := cmd.Root().PersistentFlags().GetString("charset")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get charset flag: %w", err)
	}
	fs := source.NewFileSet()
	id, err := fs.LoadCharset(path, charset)
	if err != nil {
		return nil, nil, fmt.Errorf("read input: %w", err)
	}
	return fs, fs.Get(id), nil
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "outline" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	fs, file, err := loadFile(cmd, args[0])
	if err != nil {
		return err
	}
	bag := diag.NewBag(maxDiagnostics)
	res, parseErr := parser.Parse(file, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})

	if format == "json" {
		if err := diagfmt.JSON(cmd.OutOrStdout(), bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		}); err != nil {
			return err
		}
	} else {
		if err := printDiagnostics(cmd, cmd.ErrOrStderr(), bag, fs); err != nil {
			return err
		}
		if res.Unit != nil {
			if err := diagfmt.Outline(cmd.OutOrStdout(), res.Unit); err != nil {
				return err
			}
		}
	}

	if parseErr != nil {
		return fmt.Errorf("%w: %s", errParseFailed, file.Path)
	}
	return nil
}
