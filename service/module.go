package service

import "go.uber.org/fx"

// Module provides the gin engine serving the API
var Module = fx.Module("service",
	fx.Provide(
		NewHandler,
		SetupRoutes,
	),
)
