package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdbuild/internal/logging"
	"github.com/yaklabco/gomdbuild/pkg/config"
	"github.com/yaklabco/gomdbuild/pkg/docspec"
	"github.com/yaklabco/gomdbuild/pkg/fsutil"
)

// Kinds of file init can create.
const (
	initDocument = "document"
	initConfig   = "config"
)

const documentHeader = `# gomdbuild document description
# Render with: gomdbuild render document.yml -o README.md`

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init [document|config]",
		Short: "Create a sample document description or configuration file",
		Long: `Create a starter file in the current directory.

"init document" (the default) writes document.yml, a description that uses
every block type. "init config" writes .gomdbuild.yml with the default
settings.`,
		Example: `  gomdbuild init                          Create document.yml
  gomdbuild init -o docs/readme.yml       Write the sample elsewhere
  gomdbuild init config                   Create minimal .gomdbuild.yml
  gomdbuild init config --full            Document every setting
  gomdbuild init config --format json     Create .gomdbuild.json instead`,
		GroupID:   groupDocuments,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{initDocument, initConfig},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := initDocument
			if len(args) == 1 {
				kind = args[0]
			}
			return runInit(cmd, kind, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Document every setting (config only)")
	cmd.Flags().StringVar(&flags.format, "format", config.TemplateFormatYAML, "Config format: yaml or json (config only)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path")

	return cmd
}

func runInit(cmd *cobra.Command, kind string, flags *initFlags) error {
	logger := logging.NewInteractive()

	var (
		content    []byte
		outputPath string
		err        error
	)

	switch kind {
	case initConfig:
		content, err = config.GenerateTemplate(config.TemplateOptions{Full: flags.full, Format: flags.format})
		if err != nil {
			return fmt.Errorf("generate template: %w", err)
		}
		outputPath = ".gomdbuild.yml"
		if flags.format == config.TemplateFormatJSON {
			outputPath = ".gomdbuild.json"
		}
	default:
		content, err = docspec.Sample().ToYAMLWithHeader(documentHeader)
		if err != nil {
			return fmt.Errorf("generate sample: %w", err)
		}
		outputPath = "document.yml"
	}
	if flags.output != "" {
		outputPath = flags.output
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	if err := fsutil.WriteAtomic(commandContext(cmd), absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created "+kind+" file", logging.FieldPath, outputPath)
	if kind == initDocument {
		logger.Info("render it with 'gomdbuild render " + outputPath + "'")
	}

	return nil
}
