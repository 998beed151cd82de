package dam

// Metric identifies a comparable reading value
type Metric string

const (
	MetricWaterLevel        Metric = "waterLevel"
	MetricStoragePercentage Metric = "storagePercentage"
	MetricInflow            Metric = "inflow"
	MetricTotalOutflow      Metric = "totalOutflow"
)

// Metrics lists all comparable metrics
func Metrics() []Metric {
	return []Metric{
		MetricWaterLevel,
		MetricStoragePercentage,
		MetricInflow,
		MetricTotalOutflow,
	}
}

// MetricFromString creates a Metric from a string, returning false for
// unknown metric names
func MetricFromString(s string) (Metric, bool) {
	switch Metric(s) {
	case MetricWaterLevel, MetricStoragePercentage, MetricInflow, MetricTotalOutflow:
		return Metric(s), true
	default:
		return "", false
	}
}

// String returns the string representation of the Metric
func (m Metric) String() string {
	return string(m)
}

// Unit returns the display unit for the metric
func (m Metric) Unit() string {
	switch m {
	case MetricWaterLevel:
		return "meters"
	case MetricStoragePercentage:
		return "%"
	case MetricInflow, MetricTotalOutflow:
		return "m³/s"
	default:
		return ""
	}
}
