package influencer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrMissingCredentials  = errors.New("channel name, birth date and phone suffix are required")
	ErrInvalidBirthDate    = errors.New("birth date must be 6 digits (YYMMDD)")
	ErrImpossibleBirthDate = errors.New("birth date is not a calendar date")
	ErrInvalidPhoneSuffix  = errors.New("phone suffix must be 4 digits")
)

// CenturyPivot is the last two-digit year mapped into the 2000s; later years map to the 1900s
const CenturyPivot = 30

const canonicalDateLayout = "2006-01-02"

var (
	birthDigitsRegex = regexp.MustCompile(`^\d{6}$`)
	phoneSuffixRegex = regexp.MustCompile(`^\d{4}$`)
	nonDigitRegex    = regexp.MustCompile(`\D`)
)

// Credentials is what an influencer types into the login form
type Credentials struct {
	channelName string
	birthDate   string
	phoneSuffix string
}

func NewCredentials(channelName, birthDigits, phoneSuffix string) (Credentials, error) {
	channelName = strings.TrimSpace(channelName)
	if channelName == "" || birthDigits == "" || phoneSuffix == "" {
		return Credentials{}, ErrMissingCredentials
	}
	if !birthDigitsRegex.MatchString(birthDigits) {
		return Credentials{}, ErrInvalidBirthDate
	}
	if !phoneSuffixRegex.MatchString(phoneSuffix) {
		return Credentials{}, ErrInvalidPhoneSuffix
	}

	birthDate, err := NormalizeBirthDate(birthDigits)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		channelName: channelName,
		birthDate:   birthDate,
		phoneSuffix: phoneSuffix,
	}, nil
}

func (c Credentials) ChannelName() string { return c.channelName }

// BirthDate is already canonical YYYY-MM-DD
func (c Credentials) BirthDate() string   { return c.birthDate }
func (c Credentials) PhoneSuffix() string { return c.phoneSuffix }

// NormalizeBirthDate turns YYMMDD into YYYY-MM-DD using CenturyPivot
func NormalizeBirthDate(digits string) (string, error) {
	if !birthDigitsRegex.MatchString(digits) {
		return "", ErrInvalidBirthDate
	}

	var yy, mm, dd int
	if _, err := fmt.Sscanf(digits, "%2d%2d%2d", &yy, &mm, &dd); err != nil {
		return "", ErrInvalidBirthDate
	}

	year := 1900 + yy
	if yy <= CenturyPivot {
		year = 2000 + yy
	}

	s := fmt.Sprintf("%04d-%02d-%02d", year, mm, dd)
	// 13th months, Feb 30 and the like
	if _, err := time.Parse(canonicalDateLayout, s); err != nil {
		return "", ErrImpossibleBirthDate
	}
	return s, nil
}

// PhoneSuffixMatches compares the last four digits of a free-text phone number
func PhoneSuffixMatches(storedPhone, suffix string) bool {
	digits := nonDigitRegex.ReplaceAllString(storedPhone, "")
	if len(digits) < 4 || len(suffix) != 4 {
		return false
	}
	return digits[len(digits)-4:] == suffix
}
