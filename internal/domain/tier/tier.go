package tier

import (
	"errors"
	"strings"
)

var ErrInvalidTier = errors.New("invalid tier")

// Level is the ordinal membership level; higher is more senior
type Level string

const (
	Rising  Level = "1"
	Partner Level = "2"
	Icon    Level = "3"
)

// All lists the defined levels from lowest to highest
var All = []Level{Rising, Partner, Icon}

func (l Level) String() string {
	return string(l)
}

func (l Level) IsValid() bool {
	switch l {
	case Rising, Partner, Icon:
		return true
	default:
		return false
	}
}

// Name is the program's display name for the level
func (l Level) Name() string {
	switch l {
	case Icon:
		return "Icon"
	case Partner:
		return "Partner"
	case Rising:
		return "Rising"
	default:
		return ""
	}
}

// Parse accepts the ordinal ("1".."3") or the display name, case-insensitively
func Parse(s string) (Level, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "1", "rising":
		return Rising, nil
	case "2", "partner":
		return Partner, nil
	case "3", "icon":
		return Icon, nil
	default:
		return "", ErrInvalidTier
	}
}
