package api

import (
	"errors"
	"net/http"

	"sponsor-portal/internal/domain/influencer"
	reqdto "sponsor-portal/internal/handler/dto/request"
	resdto "sponsor-portal/internal/handler/dto/response"
	"sponsor-portal/internal/handler/httperr"
	"sponsor-portal/internal/handler/middleware"
	"sponsor-portal/internal/pkg/config"
	"sponsor-portal/internal/pkg/cookie"
	"sponsor-portal/internal/pkg/jwt"
	"sponsor-portal/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	jwtService   *jwt.Service
	cookieConfig config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		jwtService:   jwtService,
		cookieConfig: cfg.Cookie,
	}
}

// @Summary Influencer login
// @Description Login with channel name, 6-digit birth date and the last 4 digits of the phone number
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgAllFieldsRequired)
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		switch {
		case errors.Is(err, influencer.ErrInvalidBirthDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBirthDate)
		case errors.Is(err, influencer.ErrImpossibleBirthDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgImpossibleBirthDate)
		case errors.Is(err, influencer.ErrInvalidPhoneSuffix):
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidPhoneSuffix)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgAllFieldsRequired)
		}
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), credentials, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, msgCredentialsMismatch)
		case errors.Is(err, commands.ErrTooManyAttempts):
			httperr.AbortWithError(c, http.StatusTooManyRequests, err, msgTooManyAttempts)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgLoginFailed)
		}
		return
	}

	cookie.SetSessionCookie(c, h.cookieConfig, result.Token, h.jwtService.TokenDuration())

	c.JSON(http.StatusOK, resdto.LoginResponse{
		Success: true,
		Influencer: resdto.SessionUser{
			ChannelName: result.ChannelName,
			Tier:        result.Tier.String(),
		},
	})
}

// @Summary Logout
// @Description Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.SuccessResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// tokens are stateless; dropping the cookie ends the session
	cookie.ClearSessionCookie(c, h.cookieConfig)
	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}

// @Summary Current session
// @Description Channel name and tier of the logged-in influencer
// @Tags auth
// @Security CookieAuth
// @Produce json
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, middleware.MsgLoginRequired)
		return
	}
	c.JSON(http.StatusOK, resdto.MeResponse{User: resdto.FromSession(session)})
}
