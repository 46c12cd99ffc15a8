package api

import (
	"errors"
	"net/http"

	"sponsor-portal/internal/domain/application"
	reqdto "sponsor-portal/internal/handler/dto/request"
	resdto "sponsor-portal/internal/handler/dto/response"
	"sponsor-portal/internal/handler/httperr"
	"sponsor-portal/internal/handler/middleware"
	"sponsor-portal/internal/usecase/commands"
	"sponsor-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationQueries  queries.ApplicationQueries
	reservationCommands commands.ReservationCommands
}

func NewApplicationHandler(applicationQueries queries.ApplicationQueries, reservationCommands commands.ReservationCommands) *ApplicationHandler {
	return &ApplicationHandler{
		applicationQueries:  applicationQueries,
		reservationCommands: reservationCommands,
	}
}

// @Summary My applications
// @Description Applications filed under the session's channel name
// @Tags applications
// @Security CookieAuth
// @Produce json
// @Success 200 {object} resdto.ApplicationListResponse
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /applications/my [get]
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok || session.ChannelName == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, msgInvalidSessionInfo)
		return
	}

	views, err := h.applicationQueries.ListMine(c.Request.Context(), session.ChannelName)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgApplicationListFailed)
		return
	}

	res, err := resdto.FromApplicationViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgApplicationListFailed)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Register check-in
// @Description Sets check-in date and site on one of the session's applications
// @Tags applications
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CheckinRequest true "Check-in request"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /applications/checkin [patch]
func (h *ApplicationHandler) UpdateCheckin(c *gin.Context) {
	var req reqdto.CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgRequiredMissing)
		return
	}

	checkin, err := req.ToDomain()
	if err != nil {
		if errors.Is(err, application.ErrInvalidCheckinDate) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidCheckinDate)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgRequiredMissing)
		return
	}

	if !h.requireOwnership(c, req.RecordID, msgCheckinFailed) {
		return
	}

	if err := h.reservationCommands.SetCheckin(c.Request.Context(), req.RecordID, checkin); err != nil {
		if errors.Is(err, commands.ErrApplicationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, msgApplicationNotFound)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgCheckinFailed)
		return
	}

	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}

// @Summary Change or cancel a reservation
// @Description status is 변경 (changed, clears check-in) or 취소 (cancelled, terminal)
// @Tags applications
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param request body reqdto.StatusRequest true "Status request"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /applications/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgBadRequest)
		return
	}

	status, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgBadRequest)
		return
	}

	if !h.requireOwnership(c, req.RecordID, msgStatusFailed) {
		return
	}

	if err := h.reservationCommands.SetReservationStatus(c.Request.Context(), req.RecordID, status); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, msgInvalidTransition)
		case errors.Is(err, commands.ErrApplicationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, msgApplicationNotFound)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgStatusFailed)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}

// requireOwnership aborts unless the application belongs to the session's channel
func (h *ApplicationHandler) requireOwnership(c *gin.Context, applicationID, failureMsg string) bool {
	session, ok := middleware.GetSession(c)
	if !ok || session.ChannelName == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, msgInvalidSessionInfo)
		return false
	}

	if _, err := h.applicationQueries.GetOwned(c.Request.Context(), applicationID, session.ChannelName); err != nil {
		if errors.Is(err, queries.ErrApplicationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, msgApplicationNotFound)
			return false
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, failureMsg)
		return false
	}
	return true
}
