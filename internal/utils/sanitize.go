package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeIdentifier strips markup and surrounding whitespace from
// client-supplied ids and codes.
func SanitizeIdentifier(value string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(value))
}
