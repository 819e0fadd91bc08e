package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/docsift/docsift"
	"github.com/docsift/docsift/report"
)

func newAnalyzeCmd(configPath *string) *cobra.Command {
	var baseDir string

	cmd := &cobra.Command{
		Use:   "analyze <input.json> <output.json>",
		Short: "Analyze a document collection and write the ranked report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath, outputPath := args[0], args[1]

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if baseDir != "" {
				cfg.BaseDir = baseDir
			} else if cfg.BaseDir == "" {
				// Resolve documents next to the input file, like the
				// input's other relative references.
				cfg.BaseDir = filepath.Dir(inputPath)
			}

			input, err := docsift.LoadRunInput(inputPath)
			if err != nil {
				return err
			}

			eng, err := docsift.New(cfg)
			if err != nil {
				return err
			}
			defer eng.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			start := time.Now()
			rep, err := eng.Analyze(ctx, input)
			if err != nil {
				if docsift.IsInputError(err) {
					return err
				}
				slog.Error("analysis failed", "error", err)
				return err
			}

			out, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("creating output: %w", err)
			}
			if err := report.WriteJSON(out, rep); err != nil {
				out.Close()
				return fmt.Errorf("writing output: %w", err)
			}
			if err := out.Close(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), report.Summary(rep, time.Since(start)))
			return nil
		},
	}

	cmd.Flags().StringVar(&baseDir, "base-dir", "", "directory document filenames are resolved against (default: input file's directory)")

	return cmd
}
