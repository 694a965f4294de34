package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jstrip/internal/diag"
	"jstrip/internal/diagfmt"
	"jstrip/internal/source"
)

// printDiagnostics сортирует, убирает дубли и печатает диагностику в w.
func printDiagnostics(cmd *cobra.Command, w io.Writer, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	useColor, err := colorEnabled(cmd, os.Stderr)
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	bag.Sort()
	bag.Dedup()
	return diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor,
		PathMode:  diagfmt.PathModeRelative,
		ShowNotes: true,
		Max:       maxDiagnostics,
	})
}
