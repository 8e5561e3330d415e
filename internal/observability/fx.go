package observability

import (
	"github.com/smallbiznis/sica/internal/observability/metrics"
	"go.uber.org/fx"
)

// Module wires observability configuration and HTTP metrics.
var Module = fx.Module("observability",
	fx.Provide(NewConfig),
	fx.Provide(metrics.NewHTTPMetrics),
)
