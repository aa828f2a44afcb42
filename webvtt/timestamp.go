// Package webvtt decodes WebVTT subtitle text into positioned, styled cues.
package webvtt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTimestamp reports a cue timestamp token that does not follow the
// [hh:]mm:ss.mmm form. A cue with an invalid timestamp is skipped as a whole.
var ErrInvalidTimestamp = errors.New("invalid webvtt timestamp")

// ParseTimestampUs parses a WebVTT timestamp ([hh:]mm:ss.mmm, hours may
// exceed two digits) into microseconds.
func ParseTimestampUs(timestamp string) (uint64, error) {
	whole, frac, hasFrac := strings.Cut(timestamp, ".")
	if !hasFrac || len(frac) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, timestamp)
	}

	var value uint64
	parts := strings.Split(whole, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, timestamp)
	}
	for _, part := range parts {
		v, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, timestamp)
		}
		value = value*60 + v
	}
	value *= 1000

	ms, err := strconv.ParseUint(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, timestamp)
	}
	return (value + ms) * 1000, nil
}

// ParsePercentage parses a percentage token ("10%", "12.5%") into a fraction.
// Only the numeric form is checked here; range clamping is the caller's
// business.
func ParsePercentage(s string) (float64, error) {
	num, ok := strings.CutSuffix(s, "%")
	if !ok {
		return 0, fmt.Errorf("percentage %q must end with %%", s)
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percentage %q: %w", s, err)
	}
	return v / 100, nil
}
