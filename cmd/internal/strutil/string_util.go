package strutil

import (
	"strings"
)

func EnsureSuffix(input string, suffix string) string {
	if strings.HasSuffix(input, suffix) {
		return input
	}

	return input + suffix
}

// JSONExtension returns name with a .json extension.
func JSONExtension(name string) string {
	return EnsureSuffix(strings.TrimSuffix(name, ".JSON"), ".json")
}
