package config

import "go.uber.org/fx"

// Module provides the parsed Config to the fx graph.
var Module = fx.Provide(Load)
