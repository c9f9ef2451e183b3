// Package sanitize strips markup from user-supplied free text before it is
// stored or displayed. This is a security boundary: script payloads embedded
// in form fields must come out inert.
package sanitize

import "github.com/microcosm-cc/bluemonday"

// The strict policy allows no elements and no attributes; script and style
// element content is dropped entirely rather than unwrapped.
var strict = bluemonday.StrictPolicy()

// StripTags removes all markup tags and attributes from s, preserving plain
// text content. Empty input is returned unchanged. Remaining text is
// entity-escaped by the policy, so stored values can never contain a tag.
//
// Email addresses must not pass through here; stripping markup could mask
// or alter the address, so email is format-validated instead.
func StripTags(s string) string {
	if s == "" {
		return s
	}
	return strict.Sanitize(s)
}
