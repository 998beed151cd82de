package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/steve-cse/keralam-mcp-server/api/dam"
)

// OverviewReport renders the current status of every dam as a bullet list
func OverviewReport(dams []dam.Dam) string {
	var b strings.Builder
	b.WriteString("Current Dam Status Overview:\n\n")

	for _, d := range dams {
		latest, ok := d.Latest()
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "• %s (%s): %sm (%s%% full)\n",
			d.Name, d.ID, latest.WaterLevel, latest.StoragePercentage)
	}

	return b.String()
}

// DetailReport renders the full status of one dam, including alert lines
// when the water level has reached the orange or red threshold.
func DetailReport(d dam.Dam) string {
	latest, ok := d.Latest()
	if !ok {
		return fmt.Sprintf("No data found for dam ID: %s", d.ID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s (%s)\n\n", d.Name, d.OfficialName)
	fmt.Fprintf(&b, "**Current Status** (as of %s):\n", latest.Date)
	fmt.Fprintf(&b, "- Water Level: %sm (FRL: %sm)\n", latest.WaterLevel, d.FRL)
	fmt.Fprintf(&b, "- Storage: %s MCM (%s%% of capacity)\n", latest.LiveStorage, latest.StoragePercentage)
	fmt.Fprintf(&b, "- Inflow: %s m³/s\n", latest.Inflow)
	fmt.Fprintf(&b, "- Outflow: %s m³/s (Power: %s m³/s, Spillway: %s m³/s)\n",
		latest.TotalOutflow, latest.PowerHouseDischarge, latest.SpillwayRelease)
	fmt.Fprintf(&b, "- Recent Rainfall: %s mm\n\n", latest.Rainfall)

	switch level, _ := d.Alert(); level {
	case dam.AlertRed:
		b.WriteString("⚠️ **DANGER ALERT**: Water level has reached or exceeded red alert level!\n")
	case dam.AlertOrange:
		b.WriteString("⚠️ **WARNING**: Water level has reached or exceeded orange alert level!\n")
	}

	return b.String()
}

// AlertsReport renders one line per dam at or above an alert threshold
func AlertsReport(dams []dam.Dam) string {
	alerts := lo.FilterMap(dams, func(d dam.Dam, _ int) (string, bool) {
		level, waterLevel := d.Alert()
		value := formatLevel(waterLevel)

		switch level {
		case dam.AlertRed:
			return fmt.Sprintf("🚨 CRITICAL: %s is at RED alert level (%sm)", d.Name, value), true
		case dam.AlertOrange:
			return fmt.Sprintf("⚠️ WARNING: %s is at ORANGE alert level (%sm)", d.Name, value), true
		case dam.AlertBlue:
			return fmt.Sprintf("ℹ️ NOTICE: %s is at BLUE alert level (%sm)", d.Name, value), true
		default:
			return "", false
		}
	})

	if len(alerts) == 0 {
		return "No dams currently at alert levels."
	}

	return "Dam Alert Status:\n\n" + strings.Join(alerts, "\n")
}

// CompareReport renders a metric comparison between two dams
func CompareReport(first, second dam.Dam, metric dam.Metric) string {
	var firstValue, secondValue string
	if latest, ok := first.Latest(); ok {
		firstValue = latest.Metric(metric)
	}
	if latest, ok := second.Latest(); ok {
		secondValue = latest.Metric(metric)
	}

	unit := metric.Unit()

	var b strings.Builder
	fmt.Fprintf(&b, "Comparison of %s between dams:\n\n", metric)
	fmt.Fprintf(&b, "• %s: %s %s\n", first.Name, firstValue, unit)
	fmt.Fprintf(&b, "• %s: %s %s\n\n", second.Name, secondValue, unit)

	v1, ok1 := dam.ParseLevel(firstValue)
	v2, ok2 := dam.ParseLevel(secondValue)
	switch {
	case !ok1 || !ok2:
		b.WriteString("Unable to calculate numerical difference")
	case v1 > v2:
		fmt.Fprintf(&b, "%s is %s %s higher than %s", first.Name, formatLevel(v1-v2), unit, second.Name)
	case v2 > v1:
		fmt.Fprintf(&b, "%s is %s %s higher than %s", second.Name, formatLevel(v2-v1), unit, first.Name)
	default:
		fmt.Fprintf(&b, "Both dams have the same %s value", metric)
	}

	return b.String()
}

func formatLevel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
