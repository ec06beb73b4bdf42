package poker

import (
	"fmt"
	"strings"
)

// Street is a betting round, ordered preflop through river
type Street uint8

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

// String returns the upper-case street name used on the wire
func (s Street) String() string {
	switch s {
	case Preflop:
		return "PREFLOP"
	case Flop:
		return "FLOP"
	case Turn:
		return "TURN"
	case River:
		return "RIVER"
	default:
		return "UNKNOWN"
	}
}

// BoardSize returns how many community cards are visible on the street
func (s Street) BoardSize() int {
	switch s {
	case Flop:
		return 3
	case Turn:
		return 4
	case River:
		return 5
	default:
		return 0
	}
}

// ParseStreet parses a street name, case-insensitively
func ParseStreet(s string) (Street, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PREFLOP", "PRE-FLOP", "PRE":
		return Preflop, nil
	case "FLOP":
		return Flop, nil
	case "TURN":
		return Turn, nil
	case "RIVER":
		return River, nil
	default:
		return 0, fmt.Errorf("unknown street %q", s)
	}
}

// MarshalText encodes the street name
func (s Street) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a street name
func (s *Street) UnmarshalText(text []byte) error {
	street, err := ParseStreet(string(text))
	if err != nil {
		return err
	}
	*s = street
	return nil
}
