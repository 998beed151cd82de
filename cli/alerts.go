package cli

import (
	"fmt"

	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Check for dams at alert water levels",
	Long:  "Scan every dam and report those at or above the blue, orange or red alert level",
	RunE:  runAlerts,
}

func init() {
	rootCmd.AddCommand(alertsCmd)
}

func runAlerts(cmd *cobra.Command, args []string) error {
	report, err := newMonitor().Alerts(cmd.Context(), forceUpdateFlag)
	if err != nil {
		return failure.Wrap(err)
	}

	fmt.Println(report)
	return nil
}
