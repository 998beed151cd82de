package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/steve-cse/keralam-mcp-server/api"
)

const (
	damListURI          = "dams://list"
	damURIScheme        = "dam://"
	damResourceTemplate = damURIScheme + "{dam_id}"
)

// registerResources registers the raw data resources with the MCP server
func registerResources(s *server.MCPServer, monitor *api.Monitor) {
	s.AddResource(
		mcp.NewResource(
			damListURI,
			"All dams",
			mcp.WithResourceDescription("List of all monitored dams with their reading history"),
			mcp.WithMIMEType("application/json"),
		),
		listDamsHandler(monitor),
	)

	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			damResourceTemplate,
			"Dam data",
			mcp.WithTemplateDescription("Data for a specific dam by its ID"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		getDamHandler(monitor),
	)
}

func listDamsHandler(monitor *api.Monitor) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		dams, err := monitor.Dams(ctx, false)
		if err != nil {
			return nil, err
		}

		b, err := json.Marshal(dams)
		if err != nil {
			return nil, err
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      damListURI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

func getDamHandler(monitor *api.Monitor) server.ResourceTemplateHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		damID := strings.TrimPrefix(req.Params.URI, damURIScheme)

		d, err := monitor.Dam(ctx, damID, false)
		if err != nil {
			return nil, err
		}

		b, err := json.Marshal(d)
		if err != nil {
			return nil, err
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}
