package studio

import (
	"regexp"
	"strings"
)

// customName matches objects in the customer namespace (Z* and Y*).
var customName = regexp.MustCompile(`\b[ZY][A-Z_0-9]{2,30}\b`)

// WildcardHint is returned when a prompt names no custom object.
const WildcardHint = "Z*"

// ObjectHints returns the custom-namespace object names mentioned in prompt,
// upper-cased and in order of first appearance, without duplicates.
func ObjectHints(prompt string) []string {
	matches := customName.FindAllString(strings.ToUpper(prompt), -1)
	seen := make(map[string]bool, len(matches))
	var out []string
	for _, m := range matches {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

// PrimaryHint returns the first object hint in prompt, or WildcardHint.
func PrimaryHint(prompt string) string {
	if hints := ObjectHints(prompt); len(hints) > 0 {
		return hints[0]
	}
	return WildcardHint
}
