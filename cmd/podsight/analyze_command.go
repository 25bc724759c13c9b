package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"podsight/internal/analysis"
	"podsight/internal/config"
	"podsight/internal/pipeline"
	"podsight/internal/results"
	"podsight/internal/services/assess"
)

var transcriptExtensions = map[string]bool{
	".txt":  true,
	".text": true,
	".md":   true,
}

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var asText bool
	var asJSON bool
	var noSave bool
	var skipStages []string
	var summarySentences int
	var maxTopics int
	var topCategories int

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze an audio file or transcript",
		Long: "Analyze runs the full pipeline against the given input. Audio files are " +
			"transcribed first; files with a transcript extension (.txt, .md) or the " +
			"--text flag skip transcription and analyze the file contents directly.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			runCfg := *cfg
			if err := applyStageSkips(&runCfg, skipStages); err != nil {
				return err
			}
			if summarySentences > 0 {
				runCfg.Analysis.SummarySentences = summarySentences
			}
			if maxTopics > 0 {
				runCfg.Analysis.MaxTopics = maxTopics
			}
			if topCategories > 0 {
				runCfg.Analysis.TopCategories = topCategories
			}
			cfg = &runCfg

			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("inspect input %q: %w", path, err)
			}

			var store *results.Store
			if !noSave {
				store, err = results.Open(cfg)
				if err != nil {
					return err
				}
				defer store.Close()
			}

			opts := []pipeline.Option{}
			if cfg.Assessment.Enabled {
				client := assess.NewClient(assess.Config{
					Endpoint:       cfg.Assessment.Endpoint,
					Model:          cfg.Assessment.Model,
					TimeoutSeconds: cfg.Assessment.TimeoutSeconds,
				})
				opts = append(opts, pipeline.WithAssessor(client))
			}
			orch, err := pipeline.New(cfg, logger, store, opts...)
			if err != nil {
				return err
			}

			var result *analysis.Result
			var record *results.Record
			if asText || transcriptExtensions[strings.ToLower(filepath.Ext(path))] {
				data, readErr := os.ReadFile(path)
				if readErr != nil {
					return fmt.Errorf("read transcript %q: %w", path, readErr)
				}
				result, record, err = orch.AnalyzeText(cmd.Context(), filepath.Base(path), string(data))
			} else {
				result, record, err = orch.AnalyzeFile(cmd.Context(), path)
			}
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, result)
			}
			renderResult(cmd, result, record)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asText, "text", false, "Treat the input file as a transcript")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the result as JSON")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Skip persisting the result to the library")
	cmd.Flags().StringSliceVar(&skipStages, "skip", nil, "Stages to skip for this run (summary, research, categorization, validation, impact)")
	cmd.Flags().IntVar(&summarySentences, "summary-sentences", 0, "Override the summary sentence count")
	cmd.Flags().IntVar(&maxTopics, "max-topics", 0, "Override the topic cap")
	cmd.Flags().IntVar(&topCategories, "top-categories", 0, "Override the category cap")
	return cmd
}

func applyStageSkips(cfg *config.Config, skips []string) error {
	for _, name := range skips {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "transcription":
			cfg.Stages.Transcription = false
		case "summary":
			cfg.Stages.Summary = false
		case "research":
			cfg.Stages.Research = false
		case "categorization":
			cfg.Stages.Categorization = false
		case "validation":
			cfg.Stages.Validation = false
		case "impact":
			cfg.Stages.Impact = false
		default:
			return fmt.Errorf("unknown stage %q", name)
		}
	}
	return nil
}

func renderResult(cmd *cobra.Command, result *analysis.Result, record *results.Record) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	if result.TranscriptionError != "" {
		fmt.Fprintf(out, "Transcription failed: %s\n\n", result.TranscriptionError)
	}

	if result.Summary != nil {
		fmt.Fprintln(out, sectionTitle("Summary", colorize))
		if result.Summary.Error != "" {
			fmt.Fprintf(out, "  (stage failed: %s)\n", result.Summary.Error)
		} else {
			fmt.Fprintf(out, "  %s\n", result.Summary.Text)
			for _, takeaway := range result.Summary.KeyTakeaways {
				fmt.Fprintf(out, "  - %s\n", takeaway)
			}
		}
		fmt.Fprintln(out)
	}

	if result.Research != nil {
		fmt.Fprintln(out, sectionTitle("Research", colorize))
		if result.Research.Error != "" {
			fmt.Fprintf(out, "  (stage failed: %s)\n", result.Research.Error)
		} else {
			fmt.Fprintf(out, "  Areas: %s\n", strings.Join(result.Research.ResearchAreas, ", "))
			for _, finding := range result.Research.Findings {
				fmt.Fprintf(out, "  - %s\n", finding)
			}
		}
		fmt.Fprintln(out)
	}

	if result.Categorization != nil && result.Categorization.Error == "" {
		rows := make([][]string, 0, len(result.Categorization.Categories))
		for _, cat := range result.Categorization.Categories {
			rows = append(rows, []string{cat.Name, strconv.Itoa(cat.Confidence)})
		}
		fmt.Fprintln(out, renderTable([]string{"Category", "Confidence"}, rows, 2))
		if len(result.Categorization.Tags) > 0 {
			fmt.Fprintf(out, "Tags: %s\n", strings.Join(result.Categorization.Tags, ", "))
		}
		fmt.Fprintln(out)
	}

	if result.Validation != nil {
		fmt.Fprintln(out, sectionTitle("Validation", colorize))
		fmt.Fprintf(out, "  Validated: %s\n", yesNo(result.Validation.Validated))
		if result.Validation.Reason != "" {
			fmt.Fprintf(out, "  Reason: %s\n", result.Validation.Reason)
		}
		printSectionScore(out, "transcription", result.Validation.Transcription)
		printSectionScore(out, "summary", result.Validation.Summary)
		printSectionScore(out, "research", result.Validation.Research)
		printSectionScore(out, "categorization", result.Validation.Categorization)
		fmt.Fprintln(out)
	}

	if record != nil {
		fmt.Fprintf(out, "Saved as %s\n", record.Label)
	}
}

func sectionTitle(title string, colorize bool) string {
	line := "== " + title + " =="
	if colorize {
		return "\x1b[34m" + line + "\x1b[0m"
	}
	return line
}

func printSectionScore(out io.Writer, name string, sv *analysis.SectionValidation) {
	if sv == nil {
		return
	}
	fmt.Fprintf(out, "  %-15s %3d/100", name, sv.QualityScore)
	if len(sv.Issues) > 0 {
		fmt.Fprintf(out, "  (%s)", strings.Join(sv.Issues, "; "))
	}
	fmt.Fprintln(out)
	if sv.Assessment != "" {
		fmt.Fprintf(out, "    %s\n", sv.Assessment)
	}
}
