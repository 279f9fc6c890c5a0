package auth

import (
	"go.uber.org/fx"

	"github.com/moriwell/storefront/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Provide(newTokenStrategy)

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	return NewHMACStrategy(p.Config.AuthSecret, Options{})
}
