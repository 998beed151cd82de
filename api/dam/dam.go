// Package dam defines the domain types for the Kerala dam water level feed.
//
// Every numeric value in the feed is transported as a string; parsing
// rules live in level.go.
package dam

// Feed is the top-level document served by the live feed
type Feed struct {
	LastUpdate string `json:"lastUpdate"`
	Dams       []Dam  `json:"dams"`
}

// Dam represents one dam with its static attributes and reading history
type Dam struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	OfficialName string `json:"officialName"`

	// MWL is the maximum water level, FRL the full reservoir level (meters)
	MWL string `json:"MWL"`
	FRL string `json:"FRL"`

	// Alert thresholds in meters, lowest to highest severity
	BlueLevel   string `json:"blueLevel"`
	OrangeLevel string `json:"orangeLevel"`
	RedLevel    string `json:"redLevel"`

	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`

	// Data holds readings in chronological order; the last entry is current
	Data []Reading `json:"data"`
}

// Reading is a single observation of a dam's state
type Reading struct {
	Date                string `json:"date"`
	WaterLevel          string `json:"waterLevel"`
	LiveStorage         string `json:"liveStorage"`
	StoragePercentage   string `json:"storagePercentage"`
	Inflow              string `json:"inflow"`
	PowerHouseDischarge string `json:"powerHouseDischarge"`
	SpillwayRelease     string `json:"spillwayRelease"`
	TotalOutflow        string `json:"totalOutflow"`
	Rainfall            string `json:"rainfall"`
}

// Latest returns the most recent reading and true, or a zero reading and
// false when the dam has no data.
func (d Dam) Latest() (Reading, bool) {
	if len(d.Data) == 0 {
		return Reading{}, false
	}
	return d.Data[len(d.Data)-1], true
}

// Metric returns the raw string value of the given metric from the reading
func (r Reading) Metric(m Metric) string {
	switch m {
	case MetricWaterLevel:
		return r.WaterLevel
	case MetricStoragePercentage:
		return r.StoragePercentage
	case MetricInflow:
		return r.Inflow
	case MetricTotalOutflow:
		return r.TotalOutflow
	default:
		return ""
	}
}
