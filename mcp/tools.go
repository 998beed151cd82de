package mcp

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
	"github.com/morikuni/failure/v2"

	"github.com/steve-cse/keralam-mcp-server/api"
	"github.com/steve-cse/keralam-mcp-server/api/dam"
	"github.com/steve-cse/keralam-mcp-server/api/feed"
)

var validate = validator.New()

func InitTools(monitor *api.Monitor) []server.ServerTool {
	tools := []server.ServerTool{}

	tools = append(tools, newServerTool(DamMonitor(monitor)))

	return tools
}

// DamMonitor returns the dam_monitor tool: water level, storage, inflow
// and outflow insight over all monitored Kerala dams.
func DamMonitor(monitor *api.Monitor) (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"dam_monitor",
			mcp.WithDescription("Monitor dam data and provide insights on water levels, storage, inflow and outflow"),
			mcp.WithString("action",
				mcp.Description("The type of monitoring action to perform: get_dam (detailed information about a specific dam), list_all (list all dams with current status), check_alerts (check for any dams with alert conditions), compare (compare two dams on a specific metric)"),
			),
			mcp.WithString("dam_id",
				mcp.Description("ID of the dam to get information for (required for get_dam and compare)"),
			),
			mcp.WithString("second_dam_id",
				mcp.Description("ID of the second dam for comparison (required for compare)"),
			),
			mcp.WithString("metric",
				mcp.Description("The metric to compare when using the compare action: waterLevel, storagePercentage, inflow or totalOutflow"),
			),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Action      string `json:"action" mapstructure:"action" validate:"omitempty"`
				DamID       string `json:"dam_id" mapstructure:"dam_id" validate:"omitempty"`
				SecondDamID string `json:"second_dam_id" mapstructure:"second_dam_id" validate:"omitempty"`
				Metric      string `json:"metric" mapstructure:"metric" validate:"omitempty,oneof=waterLevel storagePercentage inflow totalOutflow"`
			}
			var args ToolArguments
			if err := mapstructure.Decode(req.Params.Arguments, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := validate.StructCtx(ctx, args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if args.Action == "" {
				args.Action = "list_all"
			}

			switch args.Action {
			case "list_all":
				report, err := monitor.Overview(ctx, false)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return mcp.NewToolResultText(report), nil

			case "get_dam":
				if args.DamID == "" {
					return mcp.NewToolResultError("Error: dam_id is required for get_dam action"), nil
				}
				report, err := monitor.Detail(ctx, args.DamID, false)
				if err != nil {
					if failure.Is(err, feed.ErrDamNotFound) {
						return mcp.NewToolResultText("No data found for dam ID: " + args.DamID), nil
					}
					return mcp.NewToolResultError(err.Error()), nil
				}
				return mcp.NewToolResultText(report), nil

			case "check_alerts":
				report, err := monitor.Alerts(ctx, false)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return mcp.NewToolResultText(report), nil

			case "compare":
				if args.DamID == "" || args.SecondDamID == "" {
					return mcp.NewToolResultError("Error: Both dam_id and second_dam_id are required for comparison"), nil
				}
				metric, ok := dam.MetricFromString(args.Metric)
				if !ok {
					return mcp.NewToolResultError("Error: metric is required for comparison"), nil
				}
				report, err := monitor.Compare(ctx, args.DamID, args.SecondDamID, metric, false)
				if err != nil {
					if failure.Is(err, feed.ErrDamNotFound) {
						return mcp.NewToolResultError("Error: One or both dam IDs are invalid"), nil
					}
					return mcp.NewToolResultError(err.Error()), nil
				}
				return mcp.NewToolResultText(report), nil
			}

			return mcp.NewToolResultError("Invalid action specified. Please use 'get_dam', 'list_all', 'check_alerts', or 'compare'."), nil
		}
}
