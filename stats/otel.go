package stats

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lixenwraith/vi-golf/stats"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
