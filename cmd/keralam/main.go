// Command keralam provides a command-line tool and MCP server for
// monitoring Kerala dam water levels.
package main

import (
	"fmt"
	"os"

	"github.com/morikuni/failure/v2"

	"github.com/steve-cse/keralam-mcp-server/cli"
)

func main() {
	if err := cli.Run(); err != nil {
		var userMessage string
		if fmsg := failure.MessageOf(err); fmsg != "" {
			userMessage = fmsg.String()
		} else {
			userMessage = err.Error()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", userMessage)
		os.Exit(1)
	}
}
