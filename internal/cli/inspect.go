package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdbuild/internal/logging"
	"github.com/yaklabco/gomdbuild/pkg/inspect"
	"github.com/yaklabco/gomdbuild/pkg/reporter"
	"github.com/yaklabco/gomdbuild/pkg/runner"
)

// ErrInspectFailed is returned when at least one file could not be inspected.
var ErrInspectFailed = errors.New("some files could not be inspected")

type inspectFlags struct {
	flavor         string
	format         string
	jobs           int
	include        []string
	exclude        []string
	followSymlinks bool
}

func newInspectCommand(globals *globalFlags) *cobra.Command {
	flags := &inspectFlags{}

	cmd := &cobra.Command{
		Use:   "inspect [paths...]",
		Short: "Report the block structure of Markdown files",
		Long: `Parse Markdown files and count the blocks they contain.

Directories are searched for .md and .markdown files; hidden entries are
skipped. With no paths the current directory is searched. Use "-" to read a
single document from stdin.`,
		Example: `  gomdbuild inspect README.md
  gomdbuild inspect docs --exclude 'drafts/**'
  gomdbuild inspect README.md --flavor commonmark
  gomdbuild inspect . --format summary
  cat README.md | gomdbuild inspect - --format json`,
		GroupID: groupAnalysis,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, globals, flags, args)
		},
	}

	cmd.Flags().StringVar(&flags.flavor, "flavor", "gfm", "Markdown flavor: commonmark, gfm")
	cmd.Flags().StringVar(&flags.format, "format", string(reporter.FormatText), "output format: text, json, summary")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.include, "include", nil, "only inspect paths matching these globs")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "skip paths matching these globs")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "descend into symlinked directories")

	return cmd
}

func runInspect(cmd *cobra.Command, globals *globalFlags, flags *inspectFlags, paths []string) error {
	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)

	cfg, err := loadConfig(cmd, globals, flagLayer(cmd, flags.flavor, false, false))
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	var result *runner.Result
	if len(paths) == 1 && paths[0] == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		report, err := inspect.New(string(cfg.Flavor)).Inspect(ctx, content)
		if err != nil {
			return err
		}
		result = runner.Single("-", report)
	} else {
		result, err = runner.Run(ctx, runner.Options{
			Paths:          paths,
			WorkingDir:     workDir,
			IncludeGlobs:   flags.include,
			ExcludeGlobs:   flags.exclude,
			FollowSymlinks: flags.followSymlinks,
			Jobs:           flags.jobs,
			Flavor:         string(cfg.Flavor),
		})
		if err != nil {
			return err
		}
	}

	logger := logging.FromContext(ctx)
	for _, file := range result.Files {
		if file.Error != nil {
			logger.Debug("inspect failed", logging.FieldPath, file.Path, logging.FieldError, file.Error)
		}
	}
	logger.Debug("inspected files",
		logging.FieldFiles, result.Stats.FilesDiscovered,
		logging.FieldWorkingDir, workDir,
		logging.FieldFlavor, string(cfg.Flavor),
		logging.FieldFormat, string(format),
	)

	out := cmd.OutOrStdout()
	rep, err := reporter.New(reporter.Options{
		Writer:     out,
		Format:     format,
		Color:      string(cfg.Color),
		TermWidth:  terminalWidth(out),
		WorkingDir: workDir,
	})
	if err != nil {
		return err
	}
	if err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if result.HasErrors() {
		return fmt.Errorf("%w: %d of %d", ErrInspectFailed, result.Stats.FilesErrored, result.Stats.FilesDiscovered)
	}
	return nil
}
