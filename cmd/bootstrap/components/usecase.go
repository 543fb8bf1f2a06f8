package components

import (
	"engage-api/internal/pkg/clock"
	"engage-api/internal/usecase"
	"engage-api/internal/usecase/commands"
	"engage-api/internal/usecase/queries"

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
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewIntentUseCase,
		commands.NewCardUseCase,
		commands.NewReferralUseCase,
		commands.NewGiftUseCase,
		commands.NewSurveyUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCardQueries,
		queries.NewIntentQueries,
		queries.NewReferralQueries,
		queries.NewGiftQueries,
		queries.NewSurveyQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
