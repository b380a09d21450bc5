// Package cli provides the Cobra command structure for gomdbuild.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdbuild/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags holds the persistent flags shared by all subcommands.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root gomdbuild command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	globals := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "gomdbuild",
		Short: "Generate Markdown documents from structured descriptions",
		Long: `gomdbuild renders Markdown from a YAML description of its blocks.

Headings, lists, tables, code blocks, blockquotes and collapsible sections are
written in a fixed, predictable style. Rendered output can be verified by
parsing it back as CommonMark or GitHub Flavored Markdown (GFM) and comparing
the blocks found with the blocks described.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if globals.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&globals.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&globals.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&globals.color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupDocuments, Title: "Documents:"},
		&cobra.Group{ID: groupAnalysis, Title: "Analysis:"},
	)

	rootCmd.AddCommand(newRenderCommand(globals))
	rootCmd.AddCommand(newInspectCommand(globals))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(globals.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
