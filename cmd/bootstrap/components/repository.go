package components

import (
	"roomdesk/internal/infra/readstore"
	"roomdesk/internal/infra/repository"
	"roomdesk/internal/usecase/commands"
	"roomdesk/internal/usecase/queries"
	"roomdesk/internal/worker"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side, shared by the booking engine and the sweeper
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
			fx.As(new(worker.ReservationSource)),
		),
		// Read side for the calendar, availability and history views
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)
