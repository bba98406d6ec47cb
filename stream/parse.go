package stream

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseType accepts a type name ("hot", "external_cold", ...) or the numeric
// code used in stream tables (0 auto, 1 cold, 2 hot, 3 external cold,
// 4 external hot). An empty string yields Auto.
func ParseType(s string) (Type, error) {
	key := normalise(s)
	if key == "" {
		return Auto, nil
	}
	for t, name := range typeNames {
		if key == name || key == strings.ReplaceAll(name, "_", "") {
			return Type(t), nil
		}
	}
	if n, err := strconv.Atoi(key); err == nil && n >= int(Auto) && n <= int(ExternalHot) {
		return Type(n), nil
	}

	return Auto, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// ParseState accepts a state name ("liquid", "gas_condensation", ...) or its
// numeric code (0 unknown .. 4 liquid evaporation). An empty string yields
// Unknown.
func ParseState(s string) (State, error) {
	key := normalise(s)
	if key == "" {
		return Unknown, nil
	}
	for st, name := range stateNames {
		if key == name || key == strings.ReplaceAll(name, "_", "") {
			return State(st), nil
		}
	}
	if n, err := strconv.Atoi(key); err == nil && n >= int(Unknown) && n <= int(LiquidEvaporation) {
		return State(n), nil
	}

	return Unknown, fmt.Errorf("%w: %q", ErrUnknownState, s)
}

func normalise(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}
