package components

import (
	"beads-store/internal/pkg/clock"
	"beads-store/internal/usecase/commands"
	"beads-store/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
		queries.NewCartQueries,
		queries.NewCouponQueries,
		queries.NewAddressQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderCommands,
		commands.NewCartCommands,
		commands.NewCouponCommands,
		commands.NewOfferCommands,
		commands.NewAddressCommands,
	),
)
