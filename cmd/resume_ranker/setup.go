package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/embedding"
	"github.com/jonathan/resume-ranker/internal/ingestion"
	"github.com/jonathan/resume-ranker/internal/ranking"
	"github.com/jonathan/resume-ranker/internal/skills"
)

// loadMergedConfig layers CLI-provided values over an optional config file
// over environment defaults, then validates the result.
func loadMergedConfig(configPath string, flags config.Config) (config.Config, error) {
	merged := flags

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		merged = merged.MergeWithDefaults(*fileCfg)
	}
	merged = merged.MergeWithDefaults(config.FromEnv())

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// buildIndex loads the taxonomy and synonym table and builds the shared
// skill index. The index is read-only afterwards and safe to share across
// concurrent scoring runs.
func buildIndex(cfg config.Config) (*skills.Index, error) {
	if cfg.Taxonomy == "" {
		return nil, fmt.Errorf("a skill taxonomy file is required (--taxonomy)")
	}

	taxonomy, err := ingestion.LoadTaxonomy(cfg.Taxonomy)
	if err != nil {
		return nil, err
	}

	synonyms := skills.DefaultSynonyms
	if cfg.Synonyms != "" {
		synonyms, err = config.LoadSynonyms(cfg.Synonyms)
		if err != nil {
			return nil, err
		}
	}

	return skills.Build(taxonomy, synonyms), nil
}

// buildEmbedder selects the embedding backend: Gemini when an API key is
// configured, otherwise the in-process term-frequency fallback. The ranking
// engine never needs to know which one it got.
func buildEmbedder(ctx context.Context, cfg config.Config) (embedding.Embedder, error) {
	if cfg.GeminiAPIKey != "" {
		return embedding.NewGeminiEmbedder(ctx, cfg.GeminiAPIKey, cfg.EmbeddingModel)
	}
	log.Printf("no Gemini API key configured; using term-frequency fallback embedder")
	return embedding.NewTermFreqEmbedder(), nil
}

// buildEngine wires the index and embedder into a ranking engine.
func buildEngine(ctx context.Context, cfg config.Config) (*skills.Index, *ranking.Engine, error) {
	index, err := buildIndex(cfg)
	if err != nil {
		return nil, nil, err
	}
	embedder, err := buildEmbedder(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return index, ranking.NewEngine(index, embedder), nil
}
