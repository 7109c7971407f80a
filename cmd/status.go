package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"confsync/internal/display"
	"confsync/internal/model"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the drift report of a running server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := http.Get(daemonURL("/report"))
		if err != nil {
			return fmt.Errorf("server not running: %w", err)
		}

		defer func(Body io.ReadCloser) {
			_ = Body.Close()
		}(resp.Body)

		if resp.StatusCode != http.StatusOK {
			var body struct {
				Error string `json:"error"`
			}
			_ = json.NewDecoder(resp.Body).Decode(&body)
			return fmt.Errorf("server error: %s", body.Error)
		}

		var report model.Report
		if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
			return fmt.Errorf("failed to decode report: %w", err)
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "%-8s %s\n", "CONFIG", report.ConfigDir)
		_, _ = fmt.Fprintf(out, "%-8s %s\n", "MIRROR", report.MirrorDir)
		_, _ = fmt.Fprintf(out, "%d watched, %d out of sync\n", len(report.Watched), len(report.Mismatched))

		if len(report.Mismatched) > 0 {
			_, _ = fmt.Fprintln(out)
			_, _ = fmt.Fprintln(out, display.Tooltip(report.Mismatched, report.Watched))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
