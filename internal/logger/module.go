package logger

import "go.uber.org/fx"

// Module provides the shared application logger.
var Module = fx.Provide(New)
