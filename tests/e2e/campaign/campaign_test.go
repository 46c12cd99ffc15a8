//go:build e2e

package campaign_test

import (
	"net/http"
	"testing"

	"sponsor-portal/internal/domain/application"
	"sponsor-portal/internal/domain/tier"
	reqdto "sponsor-portal/internal/handler/dto/request"
	resdto "sponsor-portal/internal/handler/dto/response"
	"sponsor-portal/internal/infra/recordstore"
	"sponsor-portal/internal/infra/schema"
	"sponsor-portal/tests/common/authtest"
	"sponsor-portal/tests/common/builder"
	"sponsor-portal/tests/common/httptest"
	"sponsor-portal/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	campaignsURL    = "/api/campaigns"
	applyURL        = "/api/campaigns/apply"
	myAppsURL       = "/api/applications/my"
	checkinURL      = "/api/applications/checkin"
	statusURL       = "/api/applications/status"
	applicantsEmail = "jane@example.com"
)

type campaignSuite struct {
	e2e.SharedSuite
	influencerID string
	campaignID   string
	token        string
}

func TestCampaignSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(campaignSuite))
}

func (s *campaignSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	s.influencerID = s.Fixtures.CreateInfluencer(s.T(), builder.NewInfluencerBuilder())
	s.campaignID = s.Fixtures.CreateCampaign(s.T(), builder.NewCampaignBuilder())
	s.token = authtest.Login(s.T(), s.Router, builder.NewInfluencerBuilder())
}

func (s *campaignSuite) apply(campaignID string) *resdto.ApplyResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, applyURL,
		reqdto.ApplyRequest{CampaignID: campaignID, Email: applicantsEmail}, s.token)
	var res resdto.ApplyResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	return &res
}

func (s *campaignSuite) myApplications() []resdto.ApplicationResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, myAppsURL, nil, s.token)
	var res resdto.ApplicationListResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	return res.Applications
}

func (s *campaignSuite) TestListUsesSessionTier() {
	s.Fixtures.CreateCampaign(s.T(), builder.NewCampaignBuilder().
		WithID("recCampaign00002").
		WithAccommodationName("바다뷰 글램핑").
		WithoutTerms(tier.Partner))

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, campaignsURL, nil, s.token)

	var res resdto.CampaignListResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	require.Len(s.T(), res.Campaigns, 2)
	require.Equal(s.T(), 80000, res.Campaigns[0].Price)
	require.Equal(s.T(), 5, res.Campaigns[0].TotalCount)
	require.Equal(s.T(), 2, res.Campaigns[0].AvailableCount)
	require.False(s.T(), res.Campaigns[0].IsClosed)
	// no Partner terms on the second campaign
	require.True(s.T(), res.Campaigns[1].IsClosed)
}

func (s *campaignSuite) TestListRequiresLogin() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, campaignsURL, nil, "")
	require.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *campaignSuite) TestApplyFlow() {
	res := s.apply(s.campaignID)
	require.Equal(s.T(), "CAMP-ABC123", res.CouponCode)

	apps := s.Fixtures.All(s.T(), s.Config.Store.ApplicationTable)
	require.Len(s.T(), apps, 1)

	camp := s.Fixtures.Get(s.T(), s.Config.Store.CampaignTable, s.campaignID)
	require.Equal(s.T(), []string{apps[0].ID}, recordstore.Strings(camp.Fields, schema.Campaign.Applicants))

	// second attempt is rejected and writes nothing
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, applyURL,
		reqdto.ApplyRequest{CampaignID: s.campaignID, Email: applicantsEmail}, s.token)
	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "이미 신청한")
	require.Len(s.T(), s.Fixtures.All(s.T(), s.Config.Store.ApplicationTable), 1)
}

func (s *campaignSuite) TestApplyWithoutCoupon() {
	noCoupon := s.Fixtures.CreateCampaign(s.T(), builder.NewCampaignBuilder().
		WithID("recCampaign00003").
		WithoutCoupon())

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, applyURL,
		reqdto.ApplyRequest{CampaignID: noCoupon, Email: applicantsEmail}, s.token)

	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "쿠폰 코드")
	require.Empty(s.T(), s.Fixtures.All(s.T(), s.Config.Store.ApplicationTable))
}

func (s *campaignSuite) TestReservationLifecycle() {
	s.apply(s.campaignID)
	apps := s.myApplications()
	require.Len(s.T(), apps, 1)
	appID := apps[0].ID

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, checkinURL,
		reqdto.CheckinRequest{RecordID: appID, CheckInDate: "2025-08-01", CheckInSite: "야놀자"}, s.token)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	apps = s.myApplications()
	require.Equal(s.T(), "2025-08-01", apps[0].CheckinDate)
	require.Equal(s.T(), "야놀자", apps[0].CheckinSite)

	// changing the reservation clears check-in
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, statusURL,
		reqdto.StatusRequest{RecordID: appID, Status: application.StatusChanged.String()}, s.token)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	apps = s.myApplications()
	require.Equal(s.T(), application.StatusChanged.String(), apps[0].Status)
	require.Empty(s.T(), apps[0].CheckinDate)
	require.Empty(s.T(), apps[0].CheckinSite)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, statusURL,
		reqdto.StatusRequest{RecordID: appID, Status: application.StatusCancelled.String()}, s.token)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	// cancelled is terminal
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, statusURL,
		reqdto.StatusRequest{RecordID: appID, Status: application.StatusChanged.String()}, s.token)
	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
}

func (s *campaignSuite) TestOtherInfluencersApplicationIsHidden() {
	otherID := s.Fixtures.CreateApplication(s.T(), builder.NewApplicationBuilder().
		WithChannelName("bob_outdoor").
		WithInfluencerID("recInfluencer0002").
		WithCampaignID(s.campaignID))

	require.Empty(s.T(), s.myApplications())

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, statusURL,
		reqdto.StatusRequest{RecordID: otherID, Status: application.StatusCancelled.String()}, s.token)
	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")

	rec := s.Fixtures.Get(s.T(), s.Config.Store.ApplicationTable, otherID)
	require.Empty(s.T(), recordstore.Text(rec.Fields, schema.Application.Status))
}
