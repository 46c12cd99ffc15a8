//go:build unit

package influencer_test

import (
	"testing"

	"sponsor-portal/internal/domain/influencer"
	"sponsor-portal/internal/domain/tier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBirthDate(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   string
		errIs  error
	}{
		{name: "2000s year", digits: "240115", want: "2024-01-15"},
		{name: "1900s year", digits: "990101", want: "1999-01-01"},
		{name: "pivot year stays in 2000s", digits: "300101", want: "2030-01-01"},
		{name: "year after pivot goes to 1900s", digits: "310101", want: "1931-01-01"},
		{name: "year 00", digits: "000229", want: "2000-02-29"},
		{name: "invalid month", digits: "991301", errIs: influencer.ErrImpossibleBirthDate},
		{name: "invalid day", digits: "990230", errIs: influencer.ErrImpossibleBirthDate},
		{name: "too short", digits: "99011", errIs: influencer.ErrInvalidBirthDate},
		{name: "non digits", digits: "99-1-1", errIs: influencer.ErrInvalidBirthDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := influencer.NormalizeBirthDate(tt.digits)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPhoneSuffixMatches(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		suffix string
		want   bool
	}{
		{name: "dashes ignored", stored: "010-1234-5678", suffix: "5678", want: true},
		{name: "spaces and plus ignored", stored: "+82 10 9999 4321", suffix: "4321", want: true},
		{name: "plain digits", stored: "01099994321", suffix: "4321", want: true},
		{name: "wrong suffix", stored: "010-1234-5678", suffix: "1234", want: false},
		{name: "stored too short", stored: "123", suffix: "0123", want: false},
		{name: "empty stored", stored: "", suffix: "5678", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, influencer.PhoneSuffixMatches(tt.stored, tt.suffix))
		})
	}
}

func TestNewCredentials(t *testing.T) {
	t.Run("valid input is normalized", func(t *testing.T) {
		c, err := influencer.NewCredentials("  jane_camp ", "990101", "4321")
		require.NoError(t, err)
		assert.Equal(t, "jane_camp", c.ChannelName())
		assert.Equal(t, "1999-01-01", c.BirthDate())
		assert.Equal(t, "4321", c.PhoneSuffix())
	})

	cases := []struct {
		name    string
		channel string
		birth   string
		phone   string
		errIs   error
	}{
		{name: "missing channel", channel: " ", birth: "990101", phone: "4321", errIs: influencer.ErrMissingCredentials},
		{name: "missing birth", channel: "a", birth: "", phone: "4321", errIs: influencer.ErrMissingCredentials},
		{name: "missing phone", channel: "a", birth: "990101", phone: "", errIs: influencer.ErrMissingCredentials},
		{name: "birth 8 digits", channel: "a", birth: "19990101", phone: "4321", errIs: influencer.ErrInvalidBirthDate},
		{name: "birth not a calendar date", channel: "a", birth: "991301", phone: "4321", errIs: influencer.ErrImpossibleBirthDate},
		{name: "phone 3 digits", channel: "a", birth: "990101", phone: "321", errIs: influencer.ErrInvalidPhoneSuffix},
		{name: "phone letters", channel: "a", birth: "990101", phone: "43a1", errIs: influencer.ErrInvalidPhoneSuffix},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := influencer.NewCredentials(tc.channel, tc.birth, tc.phone)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestInfluencerMatches(t *testing.T) {
	inf := influencer.NewInfluencer("recA", "jane_camp", "1999-01-01", "010-9999-4321", tier.Partner)

	ok, err := influencer.NewCredentials("jane_camp", "990101", "4321")
	require.NoError(t, err)
	assert.True(t, inf.Matches(ok))

	wrongBirth, err := influencer.NewCredentials("jane_camp", "990102", "4321")
	require.NoError(t, err)
	assert.False(t, inf.Matches(wrongBirth))

	wrongPhone, err := influencer.NewCredentials("jane_camp", "990101", "1234")
	require.NoError(t, err)
	assert.False(t, inf.Matches(wrongPhone))
}
