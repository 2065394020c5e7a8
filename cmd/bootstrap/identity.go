package bootstrap

import (
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/identity"

	"go.uber.org/fx"
)

var IdentityModule = fx.Module("identity",
	fx.Provide(
		func(cfg config.Config) *identity.Verifier {
			return identity.NewVerifier(cfg.Auth)
		},
	),
)
