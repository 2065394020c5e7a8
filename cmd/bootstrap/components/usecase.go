package components

import (
	"slotbook/internal/pkg/clock"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewBookingCommands,
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewCatalogQueries,
	),
)
