//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"sponsor-portal/internal/handler/api"
	resdto "sponsor-portal/internal/handler/dto/response"
	"sponsor-portal/tests/common/httptest"
	queriesmock "sponsor-portal/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ChannelHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockChannelQueries
}

func (s *ChannelHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockChannelQueries(s.mockCtrl)
	s.router.GET("/channels", api.NewChannelHandler(s.mockQueries).List)
}

func (s *ChannelHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestChannelHandlerSuite(t *testing.T) {
	suite.Run(t, new(ChannelHandlerTestSuite))
}

func (s *ChannelHandlerTestSuite) TestList() {
	s.Run("success: returns channel names", func() {
		s.mockQueries.EXPECT().ListChannelNames(gomock.Any()).Return([]string{"bob", "jane_camp"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/channels", nil, "")

		var response resdto.ChannelListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]string{"bob", "jane_camp"}, response.ChannelNames)
	})

	s.Run("success: no channels renders an empty array", func() {
		s.mockQueries.EXPECT().ListChannelNames(gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/channels", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"channelNames":[]}`, rec.Body.String())
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().ListChannelNames(gomock.Any()).Return(nil, errors.New("store down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/channels", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "채널 목록")
	})
}
