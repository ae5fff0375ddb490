package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// StrictPolicy removes every tag. Used for names, titles, keywords and remarks.
	StrictPolicy = bluemonday.StrictPolicy()

	// UGCPolicy keeps safe formatting. Used for blog bodies.
	UGCPolicy = bluemonday.UGCPolicy()
)

// Text strips all HTML and surrounding whitespace.
func Text(input string) string {
	return strings.TrimSpace(StrictPolicy.Sanitize(input))
}

// HTML keeps basic formatting and drops scripts, iframes, event handlers and styles.
func HTML(input string) string {
	return UGCPolicy.Sanitize(input)
}

// TextSlice sanitizes every element and drops the ones that end up empty.
func TextSlice(inputs []string) []string {
	if inputs == nil {
		return nil
	}
	out := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if s := Text(in); s != "" {
			out = append(out, s)
		}
	}
	return out
}
