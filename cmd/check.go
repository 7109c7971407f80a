package cmd

import (
	"confsync/internal/check"
	"confsync/internal/logger"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Compare once and print the widget JSON",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

// runCheck backs both `confsync check` and the bare root command.
func runCheck(cmd *cobra.Command, args []string) error {
	defer logger.Sync()

	payload, runErr := check.Run(cfg)
	if err := check.Write(cmd.OutOrStdout(), payload); err != nil {
		return err
	}

	return runErr
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
