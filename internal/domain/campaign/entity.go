package campaign

import (
	"slices"

	"sponsor-portal/internal/domain/tier"
)

// Campaign is the read side of a campaign record. Only the applicant list is ever written back.
type Campaign struct {
	ID                string
	AccommodationName string
	Location          string
	Deadline          string
	DetailURL         string
	ApplicationURL    string
	Features          string
	CouponCode        string
	ApplicantIDs      []string
	Terms             map[tier.Level]Terms
}

func (c *Campaign) TermsFor(level tier.Level) Terms {
	return c.Terms[level]
}

func (c *Campaign) HasCoupon() bool {
	return c.CouponCode != ""
}

// WithApplicant returns the applicant list with id appended, keeping first-seen order and dropping duplicates
func (c *Campaign) WithApplicant(id string) []string {
	out := make([]string, 0, len(c.ApplicantIDs)+1)
	for _, existing := range append(slices.Clone(c.ApplicantIDs), id) {
		if existing == "" || slices.Contains(out, existing) {
			continue
		}
		out = append(out, existing)
	}
	return out
}
