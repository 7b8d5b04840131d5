package opacity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	MinPercent = 0
	MaxPercent = 100
)

// Alpha converts percent (0 = transparent, 100 = opaque) into the native
// layered-window alpha, round(percent/100*255) rounding halves up.
func Alpha(percent int) (uint8, error) {
	if err := ValidatePercent(percent); err != nil {
		return 0, err
	}
	return uint8((percent*255 + 50) / 100), nil
}

// ValidatePercent rejects values outside [0, 100]. It never clamps.
func ValidatePercent(percent int) error {
	if percent < MinPercent || MaxPercent < percent {
		return invalidPercent(fmt.Sprintf("percent should be between %d and %d, got %d", MinPercent, MaxPercent, percent))
	}
	return nil
}

// ParsePercent parses "50" or "50%".
func ParsePercent(s string) (int, error) {
	t := strings.TrimSuffix(strings.TrimSpace(s), "%")
	p, err := strconv.Atoi(strings.TrimSpace(t))
	if err != nil {
		return 0, invalidPercent(fmt.Sprintf("percent should be an integer, got %q", s))
	}
	if err := ValidatePercent(p); err != nil {
		return 0, err
	}
	return p, nil
}

// PercentFromFloat accepts JSON-style numbers that hold a whole percent.
func PercentFromFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, invalidPercent(fmt.Sprintf("percent should be an integer, got %v", f))
	}
	if f < MinPercent || MaxPercent < f {
		return 0, invalidPercent(fmt.Sprintf("percent should be between %d and %d, got %v", MinPercent, MaxPercent, f))
	}
	return int(f), nil
}

func invalidPercent(detail string) error {
	return &Error{Kind: ErrInvalidPercent, Detail: detail}
}
