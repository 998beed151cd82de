package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/morikuni/failure/v2"

	"github.com/steve-cse/keralam-mcp-server/api/dam"
	"github.com/steve-cse/keralam-mcp-server/api/feed"
)

func newTestMonitor(t *testing.T) *Monitor {
	t.Helper()

	f := dam.Feed{
		LastUpdate: "2026-08-29 07:00",
		Dams:       []dam.Dam{idukki(), mullaperiyar()},
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(f)
	}))
	t.Cleanup(ts.Close)

	return NewMonitor(feed.NewClient(
		feed.WithURL(ts.URL),
		feed.WithCacheDir(t.TempDir()),
	))
}

func TestMonitorOverview(t *testing.T) {
	m := newTestMonitor(t)

	report, err := m.Overview(context.Background(), false)
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}
	if !strings.HasPrefix(report, "Current Dam Status Overview:") {
		t.Errorf("Overview() = %q", report)
	}
	if !strings.Contains(report, "Idukki (idukki)") {
		t.Errorf("Overview() missing Idukki entry:\n%s", report)
	}
}

func TestMonitorDetail(t *testing.T) {
	m := newTestMonitor(t)

	report, err := m.Detail(context.Background(), "idukki", false)
	if err != nil {
		t.Fatalf("Detail() error = %v", err)
	}
	if !strings.HasPrefix(report, "## Idukki (Idukki Arch Dam)") {
		t.Errorf("Detail() = %q", report)
	}
}

func TestMonitorDetailUnknownDam(t *testing.T) {
	m := newTestMonitor(t)

	_, err := m.Detail(context.Background(), "atlantis", false)
	if !failure.Is(err, feed.ErrDamNotFound) {
		t.Errorf("Detail() error = %v, want code %v", err, feed.ErrDamNotFound)
	}
}

func TestMonitorAlerts(t *testing.T) {
	m := newTestMonitor(t)

	report, err := m.Alerts(context.Background(), false)
	if err != nil {
		t.Fatalf("Alerts() error = %v", err)
	}
	if !strings.Contains(report, "Idukki is at ORANGE alert level") {
		t.Errorf("Alerts() = %q", report)
	}
}

func TestMonitorCompare(t *testing.T) {
	m := newTestMonitor(t)

	report, err := m.Compare(context.Background(), "idukki", "mullaperiyar", dam.MetricWaterLevel, false)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if !strings.Contains(report, "Idukki is 595.5 meters higher than Mullaperiyar") {
		t.Errorf("Compare() = %q", report)
	}
}

func TestMonitorCompareForceUpdate(t *testing.T) {
	var mu sync.Mutex
	f := dam.Feed{
		LastUpdate: "2026-08-29 07:00",
		Dams:       []dam.Dam{idukki(), mullaperiyar()},
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(f)
	}))
	t.Cleanup(ts.Close)

	m := NewMonitor(feed.NewClient(
		feed.WithURL(ts.URL),
		feed.WithCacheDir(t.TempDir()),
	))

	ctx := context.Background()
	if _, err := m.Compare(ctx, "idukki", "mullaperiyar", dam.MetricWaterLevel, false); err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	mu.Lock()
	f.Dams[0].Data[len(f.Dams[0].Data)-1].WaterLevel = "700.00"
	f.Dams[1].Data[len(f.Dams[1].Data)-1].WaterLevel = "100.00"
	mu.Unlock()

	report, err := m.Compare(ctx, "idukki", "mullaperiyar", dam.MetricWaterLevel, true)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	// Both sides must reflect the refreshed feed, not a mix of snapshots
	if !strings.Contains(report, "• Idukki: 700.00 meters") {
		t.Errorf("Compare() first dam not refreshed:\n%s", report)
	}
	if !strings.Contains(report, "• Mullaperiyar: 100.00 meters") {
		t.Errorf("Compare() second dam not refreshed:\n%s", report)
	}
	if !strings.Contains(report, "Idukki is 600 meters higher than Mullaperiyar") {
		t.Errorf("Compare() difference not computed from refreshed values:\n%s", report)
	}
}

func TestMonitorCompareUnknownDam(t *testing.T) {
	m := newTestMonitor(t)

	_, err := m.Compare(context.Background(), "idukki", "atlantis", dam.MetricWaterLevel, false)
	if !failure.Is(err, feed.ErrDamNotFound) {
		t.Errorf("Compare() error = %v, want code %v", err, feed.ErrDamNotFound)
	}
}
