package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/morikuni/failure/v2"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/steve-cse/keralam-mcp-server/api"
	"github.com/steve-cse/keralam-mcp-server/api/feed"
	"github.com/steve-cse/keralam-mcp-server/mcp"
)

var (
	// Command line flags
	browserFlag     bool
	forceUpdateFlag bool

	// Root command
	rootCmd = &cobra.Command{
		Use:           "keralam [dam_id]",
		Short:         "Monitor Kerala dam water levels",
		SilenceErrors: true,
		Long: `keralam is a CLI tool and MCP server for monitoring the water levels,
storage, inflow and outflow of Kerala's dams from the public live feed.

Run without arguments for a status overview of every dam, or pass a dam ID
for a detailed report:
1. Overview of all dams: keralam
2. One dam in detail:    keralam idukki`,
		Args: func(cmd *cobra.Command, args []string) error {
			// Subcommands do their own argument validation
			if cmd.CommandPath() != "keralam" {
				return nil
			}
			if len(args) > 1 {
				return failure.New(InvalidArguments,
					failure.Message(fmt.Sprintf("accepts at most 1 arg, but received %d", len(args))),
				)
			}
			return nil
		},
		RunE: runRoot,
	}

	// Version information
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Version command
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print detailed version information about keralam",
		Run: func(cmd *cobra.Command, args []string) {
			commit := Commit
			if commit == "none" && api.VersionCommit != "" {
				commit = api.VersionCommit
			}
			fmt.Printf("keralam version %s\n", Version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", Date)
		},
	}
)

func init() {
	rootCmd.Flags().BoolVarP(&browserFlag, "browser", "b", false, "Open the live dam dashboard in browser")
	rootCmd.PersistentFlags().BoolVarP(&forceUpdateFlag, "force-update", "f", false, "Ignore cached feed data")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mcp.Command())
}

// Run executes the main CLI functionality
func Run() error {
	return rootCmd.Execute()
}

func newMonitor() *api.Monitor {
	return api.NewMonitor(feed.NewClient())
}

func runRoot(cmd *cobra.Command, args []string) error {
	if browserFlag {
		fmt.Printf("Opening dam dashboard in browser: %s\n", feed.DashboardURL)
		return browser.OpenURL(feed.DashboardURL)
	}

	monitor := newMonitor()
	ctx := cmd.Context()

	if len(args) == 0 {
		report, err := monitor.Overview(ctx, forceUpdateFlag)
		if err != nil {
			return failure.Wrap(err)
		}
		fmt.Print(report)
		return nil
	}

	report, err := monitor.Detail(ctx, args[0], forceUpdateFlag)
	if err != nil {
		return failure.Wrap(err)
	}

	return display(report)
}

// display renders a markdown report. On a terminal the report goes
// through glamour and the pager; otherwise it is printed as-is.
func display(report string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(report)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return failure.Wrap(err)
	}

	out, err := renderer.Render(report)
	if err != nil {
		return failure.Wrap(err)
	}

	if err := RunPager(out); err != nil {
		return failure.Wrap(err)
	}

	return nil
}
