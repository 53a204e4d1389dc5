package enums

import (
	"fmt"
	"strings"
)

// lookup resolves a wire name case-insensitively.
func lookup[T comparable](names map[string]T, s string) (T, bool) {
	val, ok := names[strings.ToLower(strings.TrimSpace(s))]
	return val, ok
}

func unmarshalName[T comparable](names map[string]T, kind string, text []byte, dst *T) error {
	val, ok := lookup(names, string(text))
	if !ok {
		return fmt.Errorf("unknown %s %q", kind, string(text))
	}
	*dst = val
	return nil
}
