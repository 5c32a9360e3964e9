// Package sanitize strips markup from user-supplied text before it is
// persisted. Ticket titles, descriptions, and comments are plain text;
// any embedded HTML is removed rather than escaped.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type Sanitizer struct {
	policy *bluemonday.Policy
}

func New() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Clean removes all HTML elements and trims surrounding whitespace.
func (s *Sanitizer) Clean(text string) string {
	return strings.TrimSpace(s.policy.Sanitize(text))
}
