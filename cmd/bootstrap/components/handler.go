package components

import (
	"unistay/internal/handler"
	"unistay/internal/handler/api"
	"unistay/internal/handler/middleware"
	"unistay/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewPropertyHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewWishlistHandler,
		api.NewMessageHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
		func(
			auth *api.AuthHandler,
			property *api.PropertyHandler,
			booking *api.BookingHandler,
			review *api.ReviewHandler,
			wishlist *api.WishlistHandler,
			message *api.MessageHandler,
			notification *api.NotificationHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:         auth,
				Property:     property,
				Booking:      booking,
				Review:       review,
				Wishlist:     wishlist,
				Message:      message,
				Notification: notification,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
