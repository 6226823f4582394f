package router

import (
	"go.uber.org/fx"

	"github.com/bestcobb/orderapi/internal/server/http/validation"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(validation.New),
	fx.Provide(Setup),
)
