package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"podsight/internal/config"
	"podsight/internal/results"
)

func newResultsCommand(ctx *commandContext) *cobra.Command {
	resultsCmd := &cobra.Command{
		Use:   "results",
		Short: "Inspect the analysis library",
	}

	resultsCmd.AddCommand(newResultsListCommand(ctx))
	resultsCmd.AddCommand(newResultsShowCommand(ctx))
	resultsCmd.AddCommand(newResultsExportCommand(ctx))

	return resultsCmd
}

func withStore(ctx *commandContext, fn func(*results.Store) error) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	store, err := results.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func newResultsListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored analyses, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(ctx, func(store *results.Store) error {
				records, err := store.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, records)
				}
				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No analyses stored yet")
					return nil
				}
				rows := make([][]string, 0, len(records))
				for _, record := range records {
					primary := ""
					if record.Payload.Categorization != nil {
						primary = record.Payload.Categorization.PrimaryCategory
					}
					rows = append(rows, []string{
						record.Label,
						record.Source,
						primary,
						record.CreatedAt.Local().Format(time.DateTime),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Label", "Source", "Primary Category", "Created"}, rows))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum analyses to list (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit records as JSON")
	return cmd
}

func newResultsShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <label-or-id>",
		Short: "Show one stored analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(ctx, func(store *results.Store) error {
				record, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, record)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Label:   %s\n", record.Label)
				fmt.Fprintf(out, "Source:  %s\n", record.Source)
				fmt.Fprintf(out, "Created: %s\n\n", record.CreatedAt.Local().Format(time.DateTime))
				renderResult(cmd, &record.Payload, nil)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the record as JSON")
	return cmd
}

func newResultsExportCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export <label-or-id>",
		Short: "Export one analysis as a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(ctx, func(store *results.Store) error {
				record, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				target := outputPath
				if target == "" {
					target = record.Label + ".json"
				}
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return err
				}

				encoded, err := json.MarshalIndent(record.Payload, "", "  ")
				if err != nil {
					return fmt.Errorf("encode analysis: %w", err)
				}
				if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
					return fmt.Errorf("create export directory: %w", err)
				}
				if err := os.WriteFile(expanded, append(encoded, '\n'), 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", record.Label, expanded)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination file (defaults to <label>.json)")
	return cmd
}
