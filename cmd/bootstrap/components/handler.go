package components

import (
	"log/slog"

	"sponsor-portal/internal/handler"
	"sponsor-portal/internal/handler/api"
	"sponsor-portal/internal/handler/middleware"
	"sponsor-portal/internal/pkg/clock"
	"sponsor-portal/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCampaignHandler,
		api.NewApplicationHandler,
		api.NewChannelHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
		NewLoginRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	campaign *api.CampaignHandler,
	application *api.ApplicationHandler,
	channel *api.ChannelHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Campaign:    campaign,
		Application: application,
		Channel:     channel,
	}
}

func NewLoginRateLimiter(cfg config.Config, clk clock.Clock, logger *slog.Logger) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit, clk, logger)
}
