package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdbuild/internal/logging"
	"github.com/yaklabco/gomdbuild/internal/ui/pretty"
	"github.com/yaklabco/gomdbuild/pkg/docspec"
	"github.com/yaklabco/gomdbuild/pkg/fsutil"
	"github.com/yaklabco/gomdbuild/pkg/inspect"
)

// ErrVerificationFailed is returned when rendered output does not parse into
// the described blocks. The differences have already been printed.
var ErrVerificationFailed = errors.New("verification failed")

type renderFlags struct {
	output         string
	flavor         string
	verify         bool
	detectLanguage bool
}

func newRenderCommand(globals *globalFlags) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render <document.yml>",
		Short: "Render a document description to Markdown",
		Long:  renderLongDescription,
		Example: `  gomdbuild render document.yml                  # Print to stdout
  gomdbuild render document.yml -o README.md     # Write README.md
  gomdbuild render document.yml --verify         # Check the parsed structure`,
		GroupID: groupDocuments,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, globals, flags, args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "gfm", "Markdown flavor used for verification: commonmark, gfm")
	cmd.Flags().BoolVar(&flags.verify, "verify", false, "parse the output and fail on structure mismatches")
	cmd.Flags().BoolVar(&flags.detectLanguage, "detect-language", false,
		"detect the language of code blocks that do not set one")

	return cmd
}

const renderLongDescription = `Render a YAML document description to Markdown.

Relative code block sources are resolved against the directory of the
description. With --output the file is replaced atomically and left untouched
when its content would not change.`

func runRender(cmd *cobra.Command, globals *globalFlags, flags *renderFlags, path string) error {
	cfg, err := loadConfig(cmd, globals, flagLayer(cmd, flags.flavor, flags.detectLanguage, flags.verify))
	if err != nil {
		return err
	}

	// The child logger copies the level, so it is created after loadConfig.
	ctx := logging.WithFields(commandContext(cmd), logging.FieldInput, path)
	logger := logging.FromContext(ctx)
	cfg.Output = flags.output

	doc, err := docspec.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	markdown, err := docspec.Render(ctx, doc, docspec.Options{
		BaseDir:        filepath.Dir(path),
		DetectLanguage: cfg.DetectLanguage,
	})
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	logger.Debug("rendered document",
		logging.FieldBlocks, len(doc.Blocks),
		logging.FieldBytes, len(markdown),
	)

	styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), cmd.ErrOrStderr()))

	if cfg.Verify {
		if err := docspec.Verify(ctx, doc, markdown, string(cfg.Flavor)); err != nil {
			var mismatch *inspect.MismatchError
			if errors.As(err, &mismatch) {
				for _, m := range mismatch.Mismatches {
					logger.Debug("structure mismatch",
						logging.FieldBlock, m.Block,
						logging.FieldExpected, m.Expected,
						logging.FieldActual, m.Actual,
					)
				}
				name := cfg.Output
				if name == "" {
					name = path
				}
				fmt.Fprint(cmd.ErrOrStderr(), styles.FormatMismatches(name, mismatch.Mismatches))
				return ErrVerificationFailed
			}
			return fmt.Errorf("verify: %w", err)
		}
		logger.Debug("verified structure", logging.FieldFlavor, cfg.Flavor)
	}

	content := markdown + "\n"

	if cfg.Output == "" || cfg.Output == "-" {
		if _, err := fmt.Fprint(cmd.OutOrStdout(), content); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, cfg.Output, []byte(content), 0)
	if err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	logger.Debug("wrote output", logging.FieldOutput, cfg.Output, logging.FieldWritten, written)

	fmt.Fprint(cmd.ErrOrStderr(), styles.FormatRenderSummary(pretty.RenderStats{
		Output:   cfg.Output,
		Blocks:   len(doc.Blocks),
		Bytes:    len(content),
		Written:  written,
		Verified: cfg.Verify,
	}))
	return nil
}
