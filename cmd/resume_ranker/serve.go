package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the resume ranker HTTP API server",
	Long:  "Starts the REST API server. Scoring runs are accepted on POST /rank as JSON or multipart uploads; persisted runs are browsable under GET /runs when a database is configured.",
	RunE:  runServe,
}

var (
	servePort     int
	serveTaxonomy string
	serveSynonyms string
	serveConfig   string
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVarP(&serveTaxonomy, "taxonomy", "t", "", "Path to skill taxonomy file (required)")
	serveCmd.Flags().StringVar(&serveSynonyms, "synonyms", "", "Path to synonym table JSON (built-in table when omitted)")
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "Path to JSON config file")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadMergedConfig(serveConfig, config.Config{
		Taxonomy: serveTaxonomy,
		Synonyms: serveSynonyms,
		Port:     servePort,
	})
	if err != nil {
		return err
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	index, engine, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
	}, index, engine)
	if err != nil {
		return err
	}

	return srv.Start()
}
