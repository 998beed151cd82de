package cli

import (
	"fmt"

	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"

	"github.com/steve-cse/keralam-mcp-server/api/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the feed cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached feed data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cache.Clear(); err != nil {
			return failure.Wrap(err)
		}
		fmt.Println("Cache cleared")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
