package bucket

import (
	"fmt"
	"strings"
)

// Policy selects which element of a bucket is evicted on Pop.
type Policy int

const (
	// FIFO evicts the oldest element.
	FIFO Policy = iota
	// LIFO evicts the newest element.
	LIFO
	// Random evicts a uniformly drawn element.
	Random
)

// String returns the name of the policy.
func (p Policy) String() string {
	switch p {
	case FIFO:
		return "FIFO"
	case LIFO:
		return "LIFO"
	case Random:
		return "RANDOM"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	if p < FIFO || p > Random {
		return nil, fmt.Errorf("unknown queue type %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePolicy parses a policy name, case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FIFO":
		return FIFO, nil
	case "LIFO":
		return LIFO, nil
	case "RANDOM":
		return Random, nil
	default:
		return FIFO, fmt.Errorf("unknown queue type %q", s)
	}
}
