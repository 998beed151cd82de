package dam

import (
	"strconv"
	"strings"
)

// Fallback values used when a feed value does not parse. A missing water
// level reads as 0 so it never triggers an alert; a missing threshold
// reads as 999 so it can never be reached.
const (
	fallbackReading   = 0
	fallbackThreshold = 999
)

// ParseLevel parses a feed value as a non-negative decimal number.
// A value parses only if, after removing at most one dot, it consists
// entirely of ASCII digits. Signs, empty strings, and multi-dot strings
// are rejected.
func ParseLevel(s string) (float64, bool) {
	trimmed := strings.Replace(s, ".", "", 1)
	if trimmed == "" || strings.ContainsFunc(trimmed, func(r rune) bool {
		return r < '0' || r > '9'
	}) {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func levelOr(s string, fallback float64) float64 {
	if v, ok := ParseLevel(s); ok {
		return v
	}
	return fallback
}

// AlertLevel represents the alert severity of a dam
type AlertLevel int

const (
	AlertNone AlertLevel = iota
	AlertBlue
	AlertOrange
	AlertRed
)

// String returns the level name used in alert output
func (l AlertLevel) String() string {
	switch l {
	case AlertBlue:
		return "BLUE"
	case AlertOrange:
		return "ORANGE"
	case AlertRed:
		return "RED"
	default:
		return "NONE"
	}
}

// Alert classifies the dam's latest water level against its thresholds.
// The returned water level is the parsed current level (0 when the feed
// value does not parse).
func (d Dam) Alert() (AlertLevel, float64) {
	var waterLevel float64
	if latest, ok := d.Latest(); ok {
		waterLevel = levelOr(latest.WaterLevel, fallbackReading)
	}

	switch {
	case waterLevel >= levelOr(d.RedLevel, fallbackThreshold):
		return AlertRed, waterLevel
	case waterLevel >= levelOr(d.OrangeLevel, fallbackThreshold):
		return AlertOrange, waterLevel
	case waterLevel >= levelOr(d.BlueLevel, fallbackThreshold):
		return AlertBlue, waterLevel
	default:
		return AlertNone, waterLevel
	}
}
