package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/ingestion"
	"github.com/jonathan/resume-ranker/internal/observability"
	"github.com/jonathan/resume-ranker/internal/profile"
)

var extractProfileCmd = &cobra.Command{
	Use:   "extract-profile",
	Short: "Extract a structured profile from a single resume",
	Long:  "Reads one resume file and prints the extracted profile (experience, education, contacts, skills, recency, CGPA) without ranking it.",
	RunE:  runExtractProfile,
}

var (
	extractResume   string
	extractTaxonomy string
	extractSynonyms string
	extractJSON     bool
	extractConfig   string
)

func init() {
	extractProfileCmd.Flags().StringVarP(&extractResume, "resume", "r", "", "Path to a single resume file (required)")
	extractProfileCmd.Flags().StringVarP(&extractTaxonomy, "taxonomy", "t", "", "Path to skill taxonomy file (required)")
	extractProfileCmd.Flags().StringVar(&extractSynonyms, "synonyms", "", "Path to synonym table JSON (built-in table when omitted)")
	extractProfileCmd.Flags().BoolVar(&extractJSON, "json", false, "Print the profile as JSON instead of the box view")
	extractProfileCmd.Flags().StringVarP(&extractConfig, "config", "c", "", "Path to JSON config file")

	rootCmd.AddCommand(extractProfileCmd)
}

func runExtractProfile(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(extractConfig, config.Config{
		Taxonomy: extractTaxonomy,
		Synonyms: extractSynonyms,
	})
	if err != nil {
		return err
	}
	if extractResume == "" {
		return fmt.Errorf("a resume file is required (--resume)")
	}

	index, err := buildIndex(cfg)
	if err != nil {
		return err
	}

	if _, err := os.Stat(extractResume); err != nil {
		return fmt.Errorf("resume file not found: %s", extractResume)
	}

	resume := ingestion.ReadResumeFile(extractResume)
	p := profile.Extract(resume.CandidateID, resume.Text, index)

	if extractJSON {
		out, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal profile: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintProfile(&p)
	return nil
}
