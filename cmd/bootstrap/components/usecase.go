package components

import (
	"roomdesk/internal/pkg/clock"
	"roomdesk/internal/usecase/commands"
	"roomdesk/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewReservationCommands,
		queries.NewReservationQueries,
	),
)
