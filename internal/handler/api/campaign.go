package api

import (
	"errors"
	"net/http"

	reqdto "sponsor-portal/internal/handler/dto/request"
	resdto "sponsor-portal/internal/handler/dto/response"
	"sponsor-portal/internal/handler/httperr"
	"sponsor-portal/internal/handler/middleware"
	"sponsor-portal/internal/usecase/commands"
	"sponsor-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	campaignQueries     queries.CampaignQueries
	applicationCommands commands.ApplicationCommands
}

func NewCampaignHandler(campaignQueries queries.CampaignQueries, applicationCommands commands.ApplicationCommands) *CampaignHandler {
	return &CampaignHandler{
		campaignQueries:     campaignQueries,
		applicationCommands: applicationCommands,
	}
}

// @Summary List campaigns
// @Description Campaigns with the price and seats of the session's tier. A store outage yields an empty list.
// @Tags campaigns
// @Security CookieAuth
// @Produce json
// @Success 200 {object} resdto.CampaignListResponse
// @Failure 401 {object} httperr.Response
// @Router /campaigns [get]
func (h *CampaignHandler) List(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, middleware.MsgLoginRequired)
		return
	}

	views := h.campaignQueries.ListCampaigns(c.Request.Context(), session.Tier)

	res, err := resdto.FromCampaignViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgCampaignListFailed)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Apply to a campaign
// @Description Records the application and returns the campaign's coupon code
// @Tags campaigns
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ApplyRequest true "Apply request"
// @Success 200 {object} resdto.ApplyResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /campaigns/apply [post]
func (h *CampaignHandler) Apply(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok || session.InfluencerID == "" || session.ChannelName == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, msgInvalidSessionInfo)
		return
	}

	var req reqdto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgRequiredMissing)
		return
	}

	couponCode, err := h.applicationCommands.Apply(c.Request.Context(), req.ToInput(session))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAlreadyApplied):
			httperr.AbortWithError(c, http.StatusConflict, err, msgAlreadyApplied)
		case errors.Is(err, commands.ErrCouponNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, msgCouponNotFound)
		case errors.Is(err, commands.ErrCampaignNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, msgCampaignNotFound)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgApplyFailed)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ApplyResponse{Success: true, CouponCode: couponCode})
}
