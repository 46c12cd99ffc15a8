//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"sponsor-portal/internal/domain/application"
	"sponsor-portal/internal/domain/tier"
	"sponsor-portal/internal/handler/api"
	reqdto "sponsor-portal/internal/handler/dto/request"
	resdto "sponsor-portal/internal/handler/dto/response"
	"sponsor-portal/internal/handler/middleware"
	"sponsor-portal/internal/usecase"
	"sponsor-portal/internal/usecase/commands"
	"sponsor-portal/internal/usecase/queries"
	"sponsor-portal/tests/common/builder"
	"sponsor-portal/tests/common/httptest"
	"sponsor-portal/tests/common/testutil"
	commandsmock "sponsor-portal/tests/mock/commands"
	queriesmock "sponsor-portal/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ApplicationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockApplicationQueries
	mockCommands *commandsmock.MockReservationCommands
	handler      *api.ApplicationHandler
	session      *usecase.Session
}

func (s *ApplicationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockApplicationQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.handler = api.NewApplicationHandler(s.mockQueries, s.mockCommands)
	s.session = &usecase.Session{
		InfluencerID: "recInfluencer0001",
		ChannelName:  "jane_camp",
		Tier:         tier.Partner,
	}

	withSession := func(c *gin.Context) {
		if s.session != nil {
			middleware.SetSession(c, s.session)
		}
		c.Next()
	}
	s.router.GET("/applications/my", withSession, s.handler.ListMine)
	s.router.PATCH("/applications/checkin", withSession, s.handler.UpdateCheckin)
	s.router.PATCH("/applications/status", withSession, s.handler.UpdateStatus)
}

func (s *ApplicationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestApplicationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ApplicationHandlerTestSuite))
}

func (s *ApplicationHandlerTestSuite) ownedView() *queries.ApplicationView {
	view := builder.NewApplicationBuilder().BuildView()
	return &view
}

func (s *ApplicationHandlerTestSuite) TestListMine() {
	s.Run("success: lists the session's applications", func() {
		views := []queries.ApplicationView{
			builder.NewApplicationBuilder().WithCheckin("2025-08-01", "야놀자").BuildView(),
			builder.NewApplicationBuilder().WithID("recApplication02").WithStatus(application.StatusCancelled).AsDepositConfirmed().BuildView(),
		}
		s.mockQueries.EXPECT().ListMine(gomock.Any(), "jane_camp").Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/applications/my", nil, "")

		var response resdto.ApplicationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		want := []resdto.ApplicationResponse{
			{ID: "recApplication01", AccommodationName: "솔숲 오토캠핑장", CouponCode: "CAMP-ABC123", CheckinDate: "2025-08-01", CheckinSite: "야놀자"},
			{ID: "recApplication02", AccommodationName: "솔숲 오토캠핑장", CouponCode: "CAMP-ABC123", Status: "취소", DepositConfirmed: true},
		}
		if diff := cmp.Diff(want, response.Applications); diff != "" {
			s.T().Errorf("applications mismatch (-want +got):\n%s", diff)
		}
		s.NotContains(rec.Body.String(), "channelName")
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), "jane_camp").Return(nil, errors.New("store down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/applications/my", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "신청 내역을 불러오는")
	})

	s.Run("error: 401 without a session", func() {
		s.session = nil

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/applications/my", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "세션 정보")
	})
}

func (s *ApplicationHandlerTestSuite) TestUpdateCheckin() {
	url := "/applications/checkin"
	reqBody := builder.NewApplicationBuilder().WithCheckin("2025-08-01", "야놀자").BuildCheckinDTO()
	checkin, err := reqBody.ToDomain()
	s.Require().NoError(err)

	s.Run("success: sets check-in on an owned application", func() {
		gomock.InOrder(
			s.mockQueries.EXPECT().GetOwned(gomock.Any(), "recApplication01", "jane_camp").Return(s.ownedView(), nil),
			s.mockCommands.EXPECT().SetCheckin(gomock.Any(), "recApplication01", checkin).Return(nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")

		var response resdto.SuccessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
	})

	s.Run("error: 400 on bad input", func() {
		cases := []struct {
			name      string
			mutate    func(m map[string]any)
			expectMsg string
		}{
			{name: "missing recordId", mutate: testutil.Field("recordId", nil), expectMsg: "필수 정보가 누락"},
			{name: "missing checkInDate", mutate: testutil.Field("checkInDate", nil), expectMsg: "필수 정보가 누락"},
			{name: "missing checkInSite", mutate: testutil.Field("checkInSite", nil), expectMsg: "필수 정보가 누락"},
			{name: "date not ISO", mutate: testutil.Field("checkInDate", "2025/08/01"), expectMsg: "YYYY-MM-DD"},
			{name: "impossible date", mutate: testutil.Field("checkInDate", "2025-02-30"), expectMsg: "YYYY-MM-DD"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectMsg)
			})
		}
	})

	s.Run("error: 404 for someone else's application and no write happens", func() {
		s.mockQueries.EXPECT().GetOwned(gomock.Any(), "recApplication01", "jane_camp").
			Return(nil, queries.ErrApplicationNotFound).Times(1)
		s.mockCommands.EXPECT().SetCheckin(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "신청 내역을 찾을 수 없습니다")
	})

	s.Run("error: 500 when the ownership lookup fails", func() {
		s.mockQueries.EXPECT().GetOwned(gomock.Any(), "recApplication01", "jane_camp").
			Return(nil, errors.New("store down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "입실 정보 등록 중 오류")
	})

	s.Run("error: 500 when the write fails", func() {
		s.mockQueries.EXPECT().GetOwned(gomock.Any(), "recApplication01", "jane_camp").Return(s.ownedView(), nil)
		s.mockCommands.EXPECT().SetCheckin(gomock.Any(), "recApplication01", checkin).Return(errors.New("store down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "입실 정보 등록 중 오류")
		s.NotContains(rec.Body.String(), "store down")
	})
}

func (s *ApplicationHandlerTestSuite) TestUpdateStatus() {
	url := "/applications/status"

	s.Run("success: accepts both requestable statuses", func() {
		for _, status := range []application.Status{application.StatusChanged, application.StatusCancelled} {
			s.Run(status.String(), func() {
				s.mockQueries.EXPECT().GetOwned(gomock.Any(), "recApplication01", "jane_camp").Return(s.ownedView(), nil)
				s.mockCommands.EXPECT().SetReservationStatus(gomock.Any(), "recApplication01", status).Return(nil)

				body := reqdto.StatusRequest{RecordID: "recApplication01", Status: status.String()}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "")

				s.Equal(http.StatusOK, rec.Code)
				s.JSONEq(`{"success":true}`, rec.Body.String())
			})
		}
	})

	s.Run("error: 400 for statuses an influencer cannot request", func() {
		for _, status := range []string{"", "active", "확정"} {
			s.Run("status "+status, func() {
				body := reqdto.StatusRequest{RecordID: "recApplication01", Status: status}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "잘못된 요청")
			})
		}
	})

	s.Run("error: maps command failures", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "cancelled is terminal", err: commands.ErrInvalidTransition, expectCode: http.StatusConflict, expectMsg: "이미 취소된 예약"},
			{name: "vanished after the ownership check", err: commands.ErrApplicationNotFound, expectCode: http.StatusNotFound, expectMsg: "신청 내역을 찾을 수 없습니다"},
			{name: "store outage", err: errors.New("store down"), expectCode: http.StatusInternalServerError, expectMsg: "상태 변경 중 오류"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetOwned(gomock.Any(), "recApplication01", "jane_camp").Return(s.ownedView(), nil)
				s.mockCommands.EXPECT().SetReservationStatus(gomock.Any(), "recApplication01", application.StatusChanged).Return(tc.err)

				body := reqdto.StatusRequest{RecordID: "recApplication01", Status: application.StatusChanged.String()}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "")

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})

	s.Run("error: 404 for someone else's application", func() {
		s.mockQueries.EXPECT().GetOwned(gomock.Any(), "recApplication09", "jane_camp").
			Return(nil, queries.ErrApplicationNotFound)

		body := reqdto.StatusRequest{RecordID: "recApplication09", Status: application.StatusCancelled.String()}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "신청 내역을 찾을 수 없습니다")
	})
}
