package cmd

import (
	"fmt"
	"os"

	"confsync/internal/check"
	"confsync/internal/config"
	"confsync/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const fallbackText = " | "

var (
	cfg   *config.Config
	debug bool
)

var rootCmd = &cobra.Command{
	Use:           "confsync",
	Short:         "Report drift between ~/.config and its dotfiles mirror",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runCheck,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		logger.Init(debug)

		var err error
		cfg, err = config.Load()
		if err != nil {
			logger.Log.Error("failed to load config", zap.Error(err))
			if !cmd.HasParent() || cmd.Name() == checkCmd.Name() {
				_ = check.Write(cmd.OutOrStdout(), check.ConfigErrorPayload(fallbackText, err))
			}
			return err
		}

		logger.Log.Debug("config loaded",
			zap.String("config_dir", cfg.ConfigDir),
			zap.String("mirror_dir", cfg.MirrorDir),
			zap.String("sync_script", cfg.SyncScript))

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func daemonURL(path string) string {
	return fmt.Sprintf("http://127.0.0.1:%d%s", cfg.Port, path)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging on stderr")
}
