package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/maximdx/TrendRadar/internal/domain"
)

// FileRunner reads a stat-groups document, runs one enrichment pass and
// writes the enriched document back for the report renderer.
type FileRunner struct {
	service    *EnrichService
	inputPath  string
	outputPath string
	logger     *slog.Logger
}

// NewFileRunner creates a runner. An empty outputPath enriches in place.
func NewFileRunner(service *EnrichService, inputPath, outputPath string, logger *slog.Logger) *FileRunner {
	if outputPath == "" {
		outputPath = inputPath
	}
	return &FileRunner{
		service:    service,
		inputPath:  inputPath,
		outputPath: outputPath,
		logger:     logger.With("component", "runner"),
	}
}

func (r *FileRunner) Run(ctx context.Context) (*domain.EnrichmentSummary, error) {
	raw, err := os.ReadFile(r.inputPath)
	if err != nil {
		return nil, fmt.Errorf("read stat groups: %w", err)
	}

	var groups []domain.StatGroup
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, fmt.Errorf("parse stat groups: %w", err)
	}

	summary, err := r.service.Enrich(ctx, groups)
	if err != nil {
		return nil, err
	}

	enriched, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode stat groups: %w", err)
	}

	if dir := filepath.Dir(r.outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(r.outputPath, enriched, 0o644); err != nil {
		return nil, fmt.Errorf("write stat groups: %w", err)
	}

	return summary, nil
}
