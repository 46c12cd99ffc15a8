package components

import (
	"sponsor-portal/internal/pkg/clock"
	"sponsor-portal/internal/pkg/config"
	"sponsor-portal/internal/usecase"
	"sponsor-portal/internal/usecase/commands"
	"sponsor-portal/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) commands.ChannelMatch {
		return commands.ChannelMatch(cfg.Auth.ChannelMatch)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewApplicationCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCampaignQueries,
		queries.NewApplicationQueries,
		queries.NewChannelQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
