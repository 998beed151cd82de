package api

import (
	"context"

	"github.com/steve-cse/keralam-mcp-server/api/dam"
	"github.com/steve-cse/keralam-mcp-server/api/feed"
)

// Monitor answers dam monitoring queries from the live feed.
// It is the single entry point shared by the CLI and the MCP server.
type Monitor struct {
	client *feed.Client
}

// NewMonitor creates a monitor backed by the given feed client
func NewMonitor(client *feed.Client) *Monitor {
	return &Monitor{client: client}
}

// Dams returns all dams from the live feed
func (m *Monitor) Dams(ctx context.Context, forceUpdate bool) ([]dam.Dam, error) {
	return m.client.Dams(ctx, forceUpdate)
}

// Dam returns a single dam by ID
func (m *Monitor) Dam(ctx context.Context, id string, forceUpdate bool) (dam.Dam, error) {
	return m.client.Dam(ctx, id, forceUpdate)
}

// Overview returns the status overview report for all dams
func (m *Monitor) Overview(ctx context.Context, forceUpdate bool) (string, error) {
	dams, err := m.client.Dams(ctx, forceUpdate)
	if err != nil {
		return "", err
	}
	return OverviewReport(dams), nil
}

// Detail returns the detailed report for one dam
func (m *Monitor) Detail(ctx context.Context, id string, forceUpdate bool) (string, error) {
	d, err := m.client.Dam(ctx, id, forceUpdate)
	if err != nil {
		return "", err
	}
	return DetailReport(d), nil
}

// Alerts returns the alert scan report for all dams
func (m *Monitor) Alerts(ctx context.Context, forceUpdate bool) (string, error) {
	dams, err := m.client.Dams(ctx, forceUpdate)
	if err != nil {
		return "", err
	}
	return AlertsReport(dams), nil
}

// Compare returns a metric comparison report for two dams.
// Both dams come from the same feed snapshot, so forceUpdate refreshes
// them together and the difference is never computed across fetches.
func (m *Monitor) Compare(ctx context.Context, firstID, secondID string, metric dam.Metric, forceUpdate bool) (string, error) {
	f, err := m.client.Fetch(ctx, forceUpdate)
	if err != nil {
		return "", err
	}

	first, err := feed.DamFrom(f, firstID)
	if err != nil {
		return "", err
	}
	second, err := feed.DamFrom(f, secondID)
	if err != nil {
		return "", err
	}

	return CompareReport(first, second, metric), nil
}
