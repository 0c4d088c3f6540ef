package order

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"catering/internal/pkg/errs"
)

const (
	// DefaultPrefix is used when the caller does not choose a prefix.
	DefaultPrefix = "KA"

	prefixLength  = 2
	prefixPadding = 'A'
	minDigits     = 5
)

var numberPattern = regexp.MustCompile(`^([A-Z]{2})(\d{5,})$`)

// Number is the human-readable order identifier: a two-letter prefix followed by a
// sequence zero-padded to at least five digits (KA00001, ..., KA99999, KA100000).
type Number struct {
	prefix   string
	sequence int64
}

// NormalizePrefix upper-cases raw, right-pads it with 'A' to two characters and
// truncates anything longer. An empty prefix selects DefaultPrefix. Prefixes
// containing anything but ASCII letters are rejected.
func NormalizePrefix(raw string) (string, error) {
	if raw == "" {
		return DefaultPrefix, nil
	}

	for _, r := range raw {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return "", errs.NewValueIsInvalidErrorWithCause(
				"order number prefix is invalid",
				fmt.Errorf("%q must contain letters only", raw),
			)
		}
	}

	prefix := strings.ToUpper(raw)
	if len(prefix) < prefixLength {
		prefix += strings.Repeat(string(prefixPadding), prefixLength-len(prefix))
	}
	return prefix[:prefixLength], nil
}

// NewNumber builds a Number from a raw prefix and a positive sequence.
func NewNumber(prefix string, sequence int64) (Number, error) {
	normalized, err := NormalizePrefix(prefix)
	if err != nil {
		return Number{}, err
	}
	if sequence < 1 {
		return Number{}, errs.NewValueIsOutOfRangeError("order number sequence", sequence, 1, "unbounded")
	}
	return Number{prefix: normalized, sequence: sequence}, nil
}

// ParseNumber parses a stored order number, enforcing ^[A-Z]{2}\d{5,}$.
func ParseNumber(s string) (Number, error) {
	match := numberPattern.FindStringSubmatch(s)
	if match == nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause(
			"order number is invalid",
			fmt.Errorf("%q does not match %s", s, numberPattern),
		)
	}

	sequence, err := strconv.ParseInt(match[2], 10, 64)
	if err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number is invalid", err)
	}
	return NewNumber(match[1], sequence)
}

// NextNumber returns the number following the highest existing suffix for prefix.
// Suffixes are matched regardless of their length, so legacy numbers shorter than
// five digits still count. With no match the sequence starts at 1.
//
// NextNumber is not safe against concurrent writers on its own; callers must hold
// the per-prefix counter lock (see ports.OrderNumberSequence).
func NextNumber(prefix string, existing []string) (Number, error) {
	normalized, err := NormalizePrefix(prefix)
	if err != nil {
		return Number{}, err
	}

	pattern := regexp.MustCompile(`^` + normalized + `(\d+)$`)
	var highest int64
	for _, candidate := range existing {
		match := pattern.FindStringSubmatch(candidate)
		if match == nil {
			continue
		}
		suffix, parseErr := strconv.ParseInt(match[1], 10, 64)
		if parseErr != nil {
			continue
		}
		if suffix > highest {
			highest = suffix
		}
	}

	return NewNumber(normalized, highest+1)
}

func (n Number) Prefix() string {
	return n.prefix
}

func (n Number) Sequence() int64 {
	return n.sequence
}

// String formats the number, e.g. "KA00042".
func (n Number) String() string {
	return fmt.Sprintf("%s%0*d", n.prefix, minDigits, n.sequence)
}

func (n Number) IsEqual(other Number) bool {
	return n.prefix == other.prefix && n.sequence == other.sequence
}

// Validate rejects the zero Number.
func (n Number) Validate() error {
	if n.prefix == "" || n.sequence < 1 {
		return errs.NewValueIsRequiredError("order number")
	}
	return nil
}
