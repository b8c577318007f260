package sport

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSport = errors.New("unknown sport")

type Sport string

const (
	Football Sport = "football"
	Handball Sport = "handball"
)

func Parse(raw string) (Sport, error) {
	switch Sport(strings.ToLower(strings.TrimSpace(raw))) {
	case Football:
		return Football, nil
	case Handball:
		return Handball, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSport, raw)
	}
}

func All() []Sport {
	return []Sport{Football, Handball}
}

// DefaultSupportedYears is the season range offered by every season filter.
func DefaultSupportedYears() []int {
	return []int{2020, 2021, 2022, 2023, 2024}
}

// IsSupportedYear reports whether season is one of years.
func IsSupportedYear(years []int, season int) bool {
	for _, y := range years {
		if y == season {
			return true
		}
	}
	return false
}
