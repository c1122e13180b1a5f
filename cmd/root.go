// Package cmd implements the mazegen command line.
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/beka-birhanu/vinom-mazegen/config"
	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/spf13/cobra"
)

const version = "v0.0.1"

type generateFlags struct {
	outputFile string
	passChar   string
	wallChar   string
	seed       int64
}

// newRootCmd builds the root command, which generates a single maze.
func newRootCmd() *cobra.Command {
	flags := &generateFlags{}

	rootCmd := &cobra.Command{
		Use:     "mazegen ROWS COLUMNS",
		Short:   "Generate maze to STDOUT or to the output file.",
		Version: version,
		Long: `Generate a perfect maze with a randomized depth-first backtracker.

Both sides must be odd numbers and at least 3.

Examples:
  mazegen 21 41
  mazegen 11 11 -p . -w X
  mazegen 31 31 --seed 42 -o maze.txt`,
		Args: parseSizeArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runGenerate(cmd, args, flags)
		},
	}

	rootCmd.Flags().StringVarP(&flags.outputFile, "out", "o", "", "Output file (default: print to console)")
	rootCmd.Flags().StringVarP(&flags.passChar, "pass-char", "p", "", "Character for passes")
	rootCmd.Flags().StringVarP(&flags.wallChar, "wall-char", "w", "", "Character for walls")
	rootCmd.Flags().Int64Var(&flags.seed, "seed", 0, "Seed for a reproducible maze (0 = random)")

	rootCmd.AddCommand(newServeCmd())
	return rootCmd
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// parseSizeArgs checks that exactly two integer sides were given.
func parseSizeArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return err
	}
	for idx, name := range []string{"ROWS", "COLUMNS"} {
		if _, err := strconv.Atoi(args[idx]); err != nil {
			return fmt.Errorf("invalid value for %s: %q is not an integer", name, args[idx])
		}
	}
	return nil
}

// runGenerate generates the maze and writes it to the console or the output file.
func runGenerate(cmd *cobra.Command, args []string, flags *generateFlags) error {
	rows, _ := strconv.Atoi(args[0])
	columns, _ := strconv.Atoi(args[1])

	passChar, err := charOrDefault(flags.passChar, config.Envs.PassChar)
	if err != nil {
		return fmt.Errorf("pass-char: %w", err)
	}
	wallChar, err := charOrDefault(flags.wallChar, config.Envs.WallChar)
	if err != nil {
		return fmt.Errorf("wall-char: %w", err)
	}

	out, err := maze.New(maze.Config{
		Rows:     rows,
		Columns:  columns,
		PassChar: passChar,
		WallChar: wallChar,
		Seed:     flags.seed,
		MaxBytes: config.Envs.MaxBytes,
	}).Generate()
	if err != nil {
		return err
	}

	if flags.outputFile == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	}

	if err := os.WriteFile(flags.outputFile, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write maze file: %w", err)
	}
	return nil
}

// charOrDefault parses s as a single character, returning def when s is empty.
func charOrDefault(s string, def rune) (rune, error) {
	if s == "" {
		return def, nil
	}
	return config.ParseChar(s)
}
