package api

import (
	"net/http"

	resdto "sponsor-portal/internal/handler/dto/response"
	"sponsor-portal/internal/handler/httperr"
	"sponsor-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ChannelHandler struct {
	channelQueries queries.ChannelQueries
}

func NewChannelHandler(channelQueries queries.ChannelQueries) *ChannelHandler {
	return &ChannelHandler{channelQueries: channelQueries}
}

// @Summary List channel names
// @Description Every registered channel name, sorted, for the login search box
// @Tags channels
// @Produce json
// @Success 200 {object} resdto.ChannelListResponse
// @Failure 500 {object} httperr.Response
// @Router /channels [get]
func (h *ChannelHandler) List(c *gin.Context) {
	names, err := h.channelQueries.ListChannelNames(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgChannelListFailed)
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, resdto.ChannelListResponse{ChannelNames: names})
}
