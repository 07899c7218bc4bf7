package view

import "go.uber.org/fx"

// Module provides the shared snapshot store.
var Module = fx.Options(
	fx.Provide(NewStore),
)
