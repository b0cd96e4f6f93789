package alias

import "strings"

// NormalizeForms returns the three normalized lookup forms of a key, in
// match priority order: lowercase trimmed raw, lowercase with all
// whitespace removed, and lowercase reduced to [a-z0-9@.].
//
// Every key entering the alias map is inserted under all three forms,
// which makes lookups insensitive to case and to incidental whitespace
// and punctuation variance.
func NormalizeForms(s string) [3]string {
	raw := strings.ToLower(strings.TrimSpace(s))

	var noSpace strings.Builder
	noSpace.Grow(len(raw))
	for _, r := range raw {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		noSpace.WriteRune(r)
	}

	var compact strings.Builder
	compact.Grow(len(raw))
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '@' || r == '.' {
			compact.WriteRune(r)
		}
	}

	return [3]string{raw, noSpace.String(), compact.String()}
}
