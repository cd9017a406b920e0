package main

import (
	"fmt"

	"github.com/jonathan/profile-engine/internal/schemas"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE.json [FILE.json...]",
	Short: "Check JSON files against the raw profile or career catalog schema",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

var validateSchema string

// schemaNames maps --schema values onto embedded schemas.
var schemaNames = map[string]schemas.Name{
	"profile": schemas.RawProfile,
	"catalog": schemas.CareerCatalog,
}

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "profile", "Schema to check against: profile or catalog")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	name, ok := schemaNames[validateSchema]
	if !ok {
		return fmt.Errorf("unknown schema %q (want profile or catalog)", validateSchema)
	}

	failed := 0
	for _, path := range args {
		if err := schemas.ValidateFile(name, path); err != nil {
			failed++
			appLogger.Warn("validation failed", zap.String("path", path), zap.Error(err))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s\n%v\n", path, err)
			continue
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ok   %s\n", path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}
