package commands

import (
	"context"
	"log/slog"

	"sponsor-portal/internal/domain/campaign"
	"sponsor-portal/internal/infra"
	"sponsor-portal/internal/pkg/errs"
	"sponsor-portal/internal/pkg/metrics"
)

var (
	ErrAlreadyApplied   = errs.New("already applied to this campaign")
	ErrCouponNotFound   = errs.New("campaign has no coupon code")
	ErrCampaignNotFound = errs.New("campaign not found")
	ErrCreateFailed     = errs.New("failed to create application")
)

type ApplyInput struct {
	CampaignID   string
	InfluencerID string
	ChannelName  string
	Email        string
}

type ApplicationCommands interface {
	// Apply returns the campaign's coupon code once the application is recorded and linked
	Apply(ctx context.Context, in ApplyInput) (string, error)
}

type applicationCommandsImpl struct {
	applications ApplicationRepository
	campaigns    CampaignRepository
	logger       *slog.Logger
}

func NewApplicationCommands(applications ApplicationRepository, campaigns CampaignRepository, logger *slog.Logger) ApplicationCommands {
	return &applicationCommandsImpl{
		applications: applications,
		campaigns:    campaigns,
		logger:       logger,
	}
}

// sagaStep pairs an action with the undo for what it created. Steps that create nothing have no compensate.
type sagaStep struct {
	name       string
	action     func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

// applyState is shared by the steps of one Apply call
type applyState struct {
	in            ApplyInput
	campaign      *campaign.Campaign
	applicationID string
}

func (c *applicationCommandsImpl) Apply(ctx context.Context, in ApplyInput) (string, error) {
	st := &applyState{in: in}

	steps := []sagaStep{
		{name: "duplicate_check", action: func(ctx context.Context) error { return c.checkDuplicate(ctx, st) }},
		{name: "coupon_lookup", action: func(ctx context.Context) error { return c.lookupCoupon(ctx, st) }},
		{
			name:       "create_application",
			action:     func(ctx context.Context) error { return c.createApplication(ctx, st) },
			compensate: func(ctx context.Context) error { return c.applications.Delete(ctx, st.applicationID) },
		},
		{name: "link_applicant", action: func(ctx context.Context) error { return c.linkApplicant(ctx, st) }},
	}

	if err := c.runSaga(ctx, steps, in); err != nil {
		metrics.RecordApplyOutcome(applyOutcome(err))
		return "", err
	}

	metrics.RecordApplyOutcome("success")
	return st.campaign.CouponCode, nil
}

func (c *applicationCommandsImpl) runSaga(ctx context.Context, steps []sagaStep, in ApplyInput) error {
	for i, step := range steps {
		err := step.action(ctx)
		if err == nil {
			continue
		}

		for j := i - 1; j >= 0; j-- {
			done := steps[j]
			if done.compensate == nil {
				continue
			}
			// the request context may already be cancelled; the undo must still reach the store
			if cErr := done.compensate(context.WithoutCancel(ctx)); cErr != nil {
				metrics.RecordCompensation("failed")
				c.logger.Error("compensation failed, orphaned record needs manual cleanup",
					slog.String("failed_step", step.name),
					slog.String("compensated_step", done.name),
					slog.String("campaign_id", in.CampaignID),
					slog.String("influencer_id", in.InfluencerID),
					slog.Any("error", cErr))
				continue
			}
			metrics.RecordCompensation("succeeded")
		}
		return err
	}
	return nil
}

func (c *applicationCommandsImpl) checkDuplicate(ctx context.Context, st *applyState) error {
	exists, err := c.applications.ExistsFor(ctx, ApplicationKey{
		InfluencerID: st.in.InfluencerID,
		CampaignID:   st.in.CampaignID,
		ChannelName:  st.in.ChannelName,
	})
	if err != nil {
		return errs.Wrap(err, "duplicate check failed")
	}
	if exists {
		return ErrAlreadyApplied
	}
	return nil
}

func (c *applicationCommandsImpl) lookupCoupon(ctx context.Context, st *applyState) error {
	camp, err := c.campaigns.FindByID(ctx, st.in.CampaignID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrCampaignNotFound)
		}
		return errs.Wrap(err, "campaign lookup failed")
	}
	if !camp.HasCoupon() {
		return ErrCouponNotFound
	}
	st.campaign = camp
	return nil
}

func (c *applicationCommandsImpl) createApplication(ctx context.Context, st *applyState) error {
	id, err := c.applications.Create(ctx, NewApplication{
		ChannelName:  st.in.ChannelName,
		InfluencerID: st.in.InfluencerID,
		CampaignID:   st.in.CampaignID,
		Email:        st.in.Email,
	})
	if err != nil {
		return errs.Mark(err, ErrCreateFailed)
	}
	if id == "" {
		return ErrCreateFailed
	}
	st.applicationID = id
	return nil
}

// linkApplicant writes back the list read during coupon lookup. Concurrent applies to one
// campaign can overwrite each other's entry here.
func (c *applicationCommandsImpl) linkApplicant(ctx context.Context, st *applyState) error {
	applicants := st.campaign.WithApplicant(st.applicationID)
	if err := c.campaigns.ReplaceApplicants(ctx, st.campaign.ID, applicants); err != nil {
		return errs.Wrap(err, "failed to register applicant on campaign")
	}
	return nil
}

func applyOutcome(err error) string {
	switch {
	case errs.Is(err, ErrAlreadyApplied):
		return "already_applied"
	case errs.Is(err, ErrCouponNotFound):
		return "coupon_not_found"
	case errs.Is(err, ErrCampaignNotFound):
		return "campaign_not_found"
	case errs.Is(err, ErrCreateFailed):
		return "create_failed"
	default:
		return "store_error"
	}
}
