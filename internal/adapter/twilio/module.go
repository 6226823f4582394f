package twilio

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/bestcobb/orderapi/internal/config"
)

// Module exposes the messaging gateway client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(
		p.Config.TwilioBaseURL,
		p.Config.TwilioAccountSID,
		p.Config.TwilioAuthToken,
		p.Config.TwilioFromNumber,
		p.Config.GatewayTimeout,
		p.Logger,
	)
}
