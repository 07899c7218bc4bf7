package metrics

import "go.uber.org/fx"

// Module wires the metrics registry for dependency injection.
var Module = fx.Provide(New)
