package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/db"
	"github.com/jonathan/resume-ranker/internal/ingestion"
	"github.com/jonathan/resume-ranker/internal/observability"
	"github.com/jonathan/resume-ranker/internal/profile"
	"github.com/jonathan/resume-ranker/internal/ranking"
	"github.com/jonathan/resume-ranker/internal/schemas"
	"github.com/jonathan/resume-ranker/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a directory of resumes against a job description",
	Long:  "Extracts a structured profile from every resume in a directory, scores each against the job description, and writes the ranked table as CSV and/or JSON.",
	RunE:  runRank,
}

var (
	rankJob      string
	rankResumes  string
	rankTaxonomy string
	rankSynonyms string
	rankOut      string
	rankJSONOut  string
	rankExplain  bool
	rankVerbose  bool
	rankConfig   string
)

func init() {
	rankCmd.Flags().StringVarP(&rankJob, "job", "j", "", "Path to job description text file (required)")
	rankCmd.Flags().StringVarP(&rankResumes, "resumes", "r", "", "Directory of resume files (required)")
	rankCmd.Flags().StringVarP(&rankTaxonomy, "taxonomy", "t", "", "Path to skill taxonomy file (required)")
	rankCmd.Flags().StringVar(&rankSynonyms, "synonyms", "", "Path to synonym table JSON (built-in table when omitted)")
	rankCmd.Flags().StringVarP(&rankOut, "out", "o", "", "Path for the exported CSV table")
	rankCmd.Flags().StringVar(&rankJSONOut, "json-out", "", "Path for the ranked results JSON")
	rankCmd.Flags().BoolVar(&rankExplain, "explain", false, "Print a score breakdown per candidate")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print detailed extraction and ranking output")
	rankCmd.Flags().StringVarP(&rankConfig, "config", "c", "", "Path to JSON config file")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadMergedConfig(rankConfig, config.Config{
		Job:      rankJob,
		Resumes:  rankResumes,
		Taxonomy: rankTaxonomy,
		Synonyms: rankSynonyms,
		Output:   rankOut,
		Verbose:  rankVerbose,
	})
	if err != nil {
		return err
	}
	if cfg.Job == "" {
		return fmt.Errorf("a job description file is required (--job)")
	}
	if cfg.Resumes == "" {
		return fmt.Errorf("a resume directory is required (--resumes)")
	}

	jobText, err := os.ReadFile(cfg.Job)
	if err != nil {
		return fmt.Errorf("failed to read job description %s: %w", cfg.Job, err)
	}

	resumes, err := ingestion.ReadResumeDir(cfg.Resumes)
	if err != nil {
		return err
	}

	index, engine, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}

	candidateIDs := make([]string, len(resumes))
	rawTexts := make([]string, len(resumes))
	for i, r := range resumes {
		candidateIDs[i] = r.CandidateID
		rawTexts[i] = r.Text
	}

	profiles, err := profile.ExtractAll(ctx, candidateIDs, rawTexts, index)
	if err != nil {
		return fmt.Errorf("profile extraction failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		for i := range profiles {
			printer.PrintProfile(&profiles[i])
		}
	}

	ranked, err := engine.Rank(ctx, profiles, string(jobText))
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer.PrintRanking(ranked)
	} else {
		for i, row := range ranked.Results {
			fmt.Fprintf(os.Stdout, "%2d. %-32s %.4f\n", i+1, row.CandidateID, row.FinalScore)
		}
	}

	if rankExplain {
		for i := range ranked.Results {
			fmt.Fprintf(os.Stdout, "\n--- %s ---\n%s\n", ranked.Results[i].CandidateID, ranking.Explain(&ranked.Results[i]))
		}
	}

	if cfg.Output != "" {
		if err := writeCSV(cfg.Output, ranked); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote %d ranked candidates to %s\n", len(ranked.Results), cfg.Output)
	}

	if rankJSONOut != "" {
		if err := writeRankedJSON(rankJSONOut, ranked); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote ranked results JSON to %s\n", rankJSONOut)
	}

	if cfg.DatabaseURL != "" {
		if err := persistRun(ctx, cfg.DatabaseURL, string(jobText), ranked); err != nil {
			// Persistence is best-effort from the CLI; the ranking already succeeded.
			fmt.Fprintf(os.Stderr, "Warning: failed to persist run: %v\n", err)
		}
	}

	return nil
}

func writeCSV(path string, ranked *types.RankedCandidates) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := ranking.WriteResults(f, ranked); err != nil {
		return fmt.Errorf("failed to export CSV: %w", err)
	}
	return nil
}

func writeRankedJSON(path string, ranked *types.RankedCandidates) error {
	jsonOutput, err := json.MarshalIndent(ranked, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ranked results to JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write ranked results to %s: %w", path, err)
	}

	// Validate output against schema (optional - non-fatal)
	schemaPath := schemas.ResolveSchemaPath("schemas/ranking_results.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
		}
	}

	return nil
}

// persistRun stores a completed run when a database is configured.
func persistRun(ctx context.Context, databaseURL, jobDescription string, ranked *types.RankedCandidates) error {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return err
	}

	runID, err := database.CreateRun(ctx, jobDescription, len(ranked.Results))
	if err != nil {
		return err
	}
	if err := database.SaveResults(ctx, runID, ranked); err != nil {
		_ = database.CompleteRun(ctx, runID, db.StatusFailed)
		return err
	}
	return database.CompleteRun(ctx, runID, db.StatusCompleted)
}
