package mpesa

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/sweetcrumb/bakehouse/internal/config"
)

// Module exposes mpesa client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.MpesaBaseURL, p.Logger)
}
