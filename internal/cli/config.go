package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gomdbuild/internal/configloader"
	"github.com/yaklabco/gomdbuild/internal/logging"
	"github.com/yaklabco/gomdbuild/pkg/config"
)

// loadConfig resolves configuration for a subcommand, applying the global
// flags and the command's own overrides.
func loadConfig(cmd *cobra.Command, globals *globalFlags, cli *configloader.Layer) (*config.Config, error) {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: globals.configPath,
		CLI:          cli,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config
	cfg.Color = config.ColorMode(globals.color)
	if !cfg.Color.IsValid() {
		return nil, fmt.Errorf("%w: --color %q must be auto, always or never", config.ErrInvalidConfig, globals.color)
	}

	if !globals.debug {
		logging.SetLevel(cfg.LogLevel)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfigFiles, loadResult.LoadedFrom)
	}
	logger.Debug("configuration resolved",
		logging.FieldFlavor, cfg.Flavor,
		logging.FieldVerify, cfg.Verify,
		logging.FieldDetectLanguage, cfg.DetectLanguage,
	)

	return cfg, nil
}

// flagLayer collects the configuration flags the user actually set.
func flagLayer(cmd *cobra.Command, flavor string, detectLanguage, verify bool) *configloader.Layer {
	layer := &configloader.Layer{}
	if cmd.Flags().Changed("flavor") {
		f := config.Flavor(flavor)
		layer.Flavor = &f
	}
	if cmd.Flags().Lookup("detect-language") != nil && cmd.Flags().Changed("detect-language") {
		layer.DetectLanguage = &detectLanguage
	}
	if cmd.Flags().Lookup("verify") != nil && cmd.Flags().Changed("verify") {
		layer.Verify = &verify
	}
	return layer
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// terminalWidth returns the width of w when it is a terminal, or 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
