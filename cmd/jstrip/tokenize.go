package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jstrip/internal/diag"
	"jstrip/internal/diagfmt"
	"jstrip/internal/lexer"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.java>",
	Short: "Tokenize a Java source file",
	Long:  `Tokenize breaks a Java source into tokens with their leading trivia`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
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
	tokens := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}}).All()

	// Выводим диагностику в stderr, если есть
	if bag.HasErrors() || bag.HasWarnings() {
		if err := printDiagnostics(cmd, cmd.ErrOrStderr(), bag, fs); err != nil {
			return err
		}
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), tokens, fs)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
