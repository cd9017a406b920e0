package main

import (
	"fmt"

	"github.com/jonathan/profile-engine/internal/layout"
	"github.com/jonathan/profile-engine/internal/rendering"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble a profile into a document tree",
	Long: "Selects a layout strategy, assembles the document tree and writes it as JSON, " +
		"or as LaTeX with --latex.",
	RunE: runAssemble,
}

var (
	assembleProfileFile  string
	assembleTheme        string
	assembleLaTeX        bool
	assembleTemplateFile string
	assembleOutputFile   string
)

func init() {
	assembleCmd.Flags().StringVarP(&assembleProfileFile, "profile", "p", "", "Path to raw profile JSON file (required)")
	assembleCmd.Flags().StringVarP(&assembleTheme, "theme", "t", "", "Theme hint (default: config, then inferred)")
	assembleCmd.Flags().BoolVar(&assembleLaTeX, "latex", false, "Render LaTeX instead of JSON")
	assembleCmd.Flags().StringVar(&assembleTemplateFile, "template", "", "Path to LaTeX template (default: bundled)")
	assembleCmd.Flags().StringVarP(&assembleOutputFile, "out", "o", "", "Path to output file (default stdout)")

	_ = assembleCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(assembleCmd)
}

func runAssemble(cmd *cobra.Command, _ []string) error {
	p, err := loadProfile(assembleProfileFile)
	if err != nil {
		return err
	}
	hint, err := themeHint(assembleTheme)
	if err != nil {
		return err
	}

	strategy, err := layout.SelectStrategy(p, hint)
	if err != nil {
		return err
	}
	tree, err := rendering.Assemble(p, strategy)
	if err != nil {
		return fmt.Errorf("failed to assemble document: %w", err)
	}

	if pr := printer(cmd); pr != nil {
		pr.PrintLayout(strategy)
		pr.PrintDocument(tree)
	}
	appLogger.Info("document assembled", zap.String("profile_id", p.ID), zap.String("document_id", tree.ID))

	if !assembleLaTeX {
		return writeJSON(cmd, assembleOutputFile, tree)
	}

	latex, err := rendering.RenderLaTeX(tree, assembleTemplateFile)
	if err != nil {
		return fmt.Errorf("failed to render LaTeX: %w", err)
	}
	return writeOutput(cmd.OutOrStdout(), assembleOutputFile, []byte(latex))
}
