package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/profile-engine/internal/catalog"
	"github.com/jonathan/profile-engine/internal/logging"
	"github.com/jonathan/profile-engine/internal/observability"
	"github.com/jonathan/profile-engine/internal/profile"
	"github.com/jonathan/profile-engine/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadProfile reads and normalizes a raw profile JSON file.
func loadProfile(path string) (*types.Profile, error) {
	p, err := profile.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	appLogger.Debug("profile loaded", zap.String("path", path), zap.String("profile_id", p.ID))
	return p, nil
}

// loadCatalog loads the catalog at override, the configured path, or the bundled one,
// logging every rejected row.
func loadCatalog(override string) (catalog.Catalog, error) {
	path := override
	if path == "" {
		path = appConfig.Catalog.Path
	}
	result, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logging.Skipped(appLogger, "catalog entry", result.Rejected)
	appLogger.Debug("catalog loaded", zap.Int("careers", len(result.Catalog)), zap.Int("rejected", len(result.Rejected)))
	return result.Catalog, nil
}

// writeJSON writes v as indented JSON to outPath, or to the command's stdout when
// outPath is empty.
func writeJSON(cmd *cobra.Command, outPath string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')
	return writeOutput(cmd.OutOrStdout(), outPath, data)
}

func writeOutput(stdout io.Writer, outPath string, data []byte) error {
	if outPath == "" {
		_, err := stdout.Write(data)
		return err
	}

	outputDir := filepath.Dir(outPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	appLogger.Info("output written", zap.String("path", outPath))
	return nil
}

// printer returns a verbose printer on the command's stderr, or nil when not verbose.
func printer(cmd *cobra.Command) *observability.Printer {
	if !verbose {
		return nil
	}
	return observability.NewPrinter(cmd.ErrOrStderr())
}
