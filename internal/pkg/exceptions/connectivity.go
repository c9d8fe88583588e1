package exceptions

import "strings"

// connectivitySubstrings are matched case-insensitively against error text to
// spot unreachable-store failures. Heuristic on purpose: the drivers wrap
// network errors in free-form messages.
var connectivitySubstrings = []string{
	"network error",
	"connection refused",
	"connection reset",
	"no such host",
	"i/o timeout",
	"dial tcp",
	"broken pipe",
	"server selection error",
}

func IsConnectivityError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, s := range connectivitySubstrings {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
