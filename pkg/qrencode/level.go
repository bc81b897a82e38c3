package qrencode

import (
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/maxwalkley/dotqr/pkg/errors"
)

// Level is the error-correction tier requested for a symbol.
//
// Higher tiers add redundancy so that more obscured or damaged modules
// can be tolerated by scanners. LevelAuto defers the choice until logo
// presence is known; Resolve maps it to a concrete tier.
type Level int

// Error-correction levels in increasing order of redundancy.
const (
	LevelAuto Level = iota
	LevelLow        // L: ~7% recovery
	LevelMedium     // M: ~15% recovery
	LevelQuartile   // Q: ~25% recovery
	LevelHigh       // H: ~30% recovery
)

// String returns the canonical short name for the level.
func (l Level) String() string {
	switch l {
	case LevelAuto:
		return "auto"
	case LevelLow:
		return "L"
	case LevelMedium:
		return "M"
	case LevelQuartile:
		return "Q"
	case LevelHigh:
		return "H"
	}
	return "unknown"
}

// ParseLevel parses a level name ("auto", "L", "M", "Q", "H",
// case-insensitive) into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return LevelAuto, nil
	case "l":
		return LevelLow, nil
	case "m":
		return LevelMedium, nil
	case "q":
		return LevelQuartile, nil
	case "h":
		return LevelHigh, nil
	}
	return LevelAuto, errors.New(errors.ErrCodeInvalidLevel,
		"invalid error-correction level: %q (must be auto, L, M, Q, or H)", s)
}

// Resolve maps a requested level to the concrete tier handed to the
// encoder. LevelAuto becomes LevelHigh when a logo will cover part of
// the symbol (reserved modules reduce usable redundancy) and LevelLow
// otherwise. Explicit levels pass through unchanged.
func Resolve(choice Level, logoPresent bool) Level {
	if choice != LevelAuto {
		return choice
	}
	if logoPresent {
		return LevelHigh
	}
	return LevelLow
}

// recovery converts a concrete level to the encoder's recovery tier.
func (l Level) recovery() (qrcode.RecoveryLevel, error) {
	switch l {
	case LevelLow:
		return qrcode.Low, nil
	case LevelMedium:
		return qrcode.Medium, nil
	case LevelQuartile:
		return qrcode.High, nil
	case LevelHigh:
		return qrcode.Highest, nil
	}
	return qrcode.Low, errors.New(errors.ErrCodeInvalidLevel,
		"level %s must be resolved before encoding", l)
}
