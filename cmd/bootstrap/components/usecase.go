package components

import (
	"unistay/internal/domain/booking"
	"unistay/internal/pkg/clock"
	"unistay/internal/pkg/config"
	"unistay/internal/usecase"
	"unistay/internal/usecase/commands"
	"unistay/internal/usecase/queries"

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
	func(cfg config.Config) booking.PriceCalculator {
		return &booking.StandardPriceCalculator{
			ServiceFeeRate: cfg.Booking.ServiceFeeRate,
			DaysPerMonth:   cfg.Booking.DaysPerMonth,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingUseCase,
		commands.NewPropertyUseCase,
		commands.NewReviewUseCase,
		commands.NewWishlistUseCase,
		commands.NewMessageUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewPropertyQueries,
		queries.NewAvailabilityQueries,
		queries.NewReviewQueries,
		queries.NewWishlistQueries,
		queries.NewConversationQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
