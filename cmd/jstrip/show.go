package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"jstrip/internal/driver"
)

var showCmd = &cobra.Command{
	Use:   "show <project> <path>",
	Short: "Print the cleaned counterpart of a project file",
	Long: `Show looks up the cleaned form of a file written by clean. path may be
relative to the project, or carry the project directory as a prefix.`,
	Args: cobra.ExactArgs(2),
	RunE: runShow,
}

func init() {
	showCmd.Flags().String("repo", "", "directory holding one subdirectory per project (REPO_DIR)")
	showCmd.Flags().String("out", "", "mirror root for cleaned files (CLEAN_DIR)")
	showCmd.Flags().Bool("no-manifest", false, "ignore jstrip.toml")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	name, path := args[0], args[1]

	text, ok, err := lookupCleaned(cfg.Repo, cfg.Out, name, path)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("cleaned file for %s not found, run clean first", path)
	}
	_, err = cmd.OutOrStdout().Write(text)
	return err
}

// lookupCleaned reads <out>/<name>/<path> for a file of <repo>/<name>.
func lookupCleaned(repo, out, name, path string) ([]byte, bool, error) {
	return driver.Lookup(filepath.Join(repo, name), filepath.Join(out, name), path)
}
