package cli

import (
	"fmt"

	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"

	"github.com/steve-cse/keralam-mcp-server/api/dam"
)

var compareMetric = metricFlag{Value: dam.MetricWaterLevel}

var compareCmd = &cobra.Command{
	Use:   "compare <dam_id> <second_dam_id>",
	Short: "Compare two dams on a metric",
	Long:  "Compare two dams on a specific metric (water level by default)",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().VarP(&compareMetric, "metric", "m", "Metric to compare (waterLevel, storagePercentage, inflow, totalOutflow)")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	report, err := newMonitor().Compare(cmd.Context(), args[0], args[1], compareMetric.Value, forceUpdateFlag)
	if err != nil {
		return failure.Wrap(err)
	}

	fmt.Println(report)
	return nil
}
