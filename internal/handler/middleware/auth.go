package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"sponsor-portal/internal/handler/httperr"
	"sponsor-portal/internal/pkg/cookie"
	"sponsor-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	MsgLoginRequired  = "로그인이 필요한 서비스입니다."
	MsgInvalidSession = "유효하지 않은 세션입니다."
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	logger         *slog.Logger
}

const ctxSessionKey = "session"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		logger:         logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, MsgLoginRequired)
			return
		}

		session, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			m.logger.Warn("Token validation failed in auth middleware", slog.String("error", err.Error()))
			httperr.AbortWithError(c, http.StatusUnauthorized, err, MsgInvalidSession)
			return
		}

		c.Set(ctxSessionKey, session)
		c.Next()
	}
}

// the cookie wins; the Bearer header is for non-browser clients
func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetSession(c *gin.Context) (*usecase.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	session, ok := v.(*usecase.Session)
	return session, ok && session != nil
}

// SetSession is used by handler tests that bypass RequireAuth
func SetSession(c *gin.Context, session *usecase.Session) {
	c.Set(ctxSessionKey, session)
}
