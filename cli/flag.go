package cli

import (
	"strings"

	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"github.com/steve-cse/keralam-mcp-server/api/dam"
)

// metricFlag is a pflag.Value accepting only known comparison metrics
type metricFlag struct {
	Value dam.Metric
}

// String implements pflag.Value.
func (f *metricFlag) String() string {
	return f.Value.String()
}

func (f *metricFlag) Set(value string) error {
	m, ok := dam.MetricFromString(value)
	if !ok {
		known := lo.Map(dam.Metrics(), func(m dam.Metric, _ int) string {
			return m.String()
		})
		return failure.New(UnsupportedMetric,
			failure.Message("Unsupported metric, expected one of: "+strings.Join(known, ", ")),
			failure.Context{
				"metric": value,
			},
		)
	}
	f.Value = m
	return nil
}

func (f *metricFlag) Type() string {
	return "metric"
}

var _ pflag.Value = &metricFlag{}
