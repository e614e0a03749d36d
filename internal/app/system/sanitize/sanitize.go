// internal/app/system/sanitize/sanitize.go

// Package sanitize strips markup from user-supplied free text before it is
// persisted. Profile names, team names, skills, and roles are plain text in
// this app; a strict policy removes every tag and normalizes surrounding
// whitespace.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes all HTML from s and trims whitespace.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// List applies Text to every element and drops entries that become empty.
// The relative order of surviving entries is preserved.
func List(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if cleaned := Text(it); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
