package utils

import "fmt"

// EnumValidator returns a string field validator that accepts only the
// provided values.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, v := range allowed {
		set[v] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; !ok {
			return fmt.Errorf("value %q is not one of %v", s, allowed)
		}
		return nil
	}
}
