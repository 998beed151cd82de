package cli

import (
	"fmt"
	"sort"

	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

var damsCmd = &cobra.Command{
	Use:   "dams",
	Short: "List monitored dams and their IDs",
	Long:  "Display a list of all monitored dams with the IDs accepted by other commands",
	RunE:  runDams,
}

func init() {
	rootCmd.AddCommand(damsCmd)
}

func runDams(cmd *cobra.Command, args []string) error {
	dams, err := newMonitor().Dams(cmd.Context(), forceUpdateFlag)
	if err != nil {
		return failure.Wrap(err)
	}

	sort.Slice(dams, func(i, j int) bool {
		return dams[i].ID < dams[j].ID
	})

	fmt.Println("Monitored Dams:")

	for _, d := range dams {
		if d.OfficialName != "" && d.OfficialName != d.Name {
			fmt.Printf("  %-16s %s (%s)\n", d.ID, d.Name, d.OfficialName)
		} else {
			fmt.Printf("  %-16s %s\n", d.ID, d.Name)
		}
	}

	return nil
}
