package middleware

import (
	"log/slog"
	"slices"

	"sponsor-portal/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware allows the portal front end to send the session cookie cross-origin
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	// browsers reject credentialed responses for a wildcard origin
	if cfg.AllowCredentials && slices.Contains(cfg.AllowOrigins, "*") {
		logger.Warn("CORS wildcard origin with credentials, echoing request origin instead")
		corsCfg.AllowOrigins = nil
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	}
	logger.Info("CORS middleware initialized", slog.Any("allow_origins", cfg.AllowOrigins))
	return cors.New(corsCfg)
}
