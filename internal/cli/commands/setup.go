package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tabwell-labs/tabwell/internal/cli/config"
	"github.com/tabwell-labs/tabwell/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext loads configuration from the command's flags
// (which include inherited persistent flags) and builds the logger and
// renderer for the run.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.DiscardHandler)
	if cfg.Verbose {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		if file := config.GetConfigFileUsed(); file != "" {
			logger.Debug("using config file", "path", file)
		}
	}

	mode, err := output.ParseMode(cfg.Format)
	if err != nil {
		return nil, err
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{Cfg: cfg, Logger: logger, Renderer: r}, nil
}
