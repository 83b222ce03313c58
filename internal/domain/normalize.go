package domain

import (
	"strings"
)

// NormalizeText trims surrounding whitespace and compresses inner runs of
// spaces into one. Case is preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ParseUserRole maps free-form input such as " Investor " onto a UserRole.
// The result is not validated; call IsValid on it.
func ParseUserRole(s string) UserRole {
	return UserRole(strings.ToLower(strings.TrimSpace(s)))
}

// NormalizeTags normalizes every tag and drops the ones left empty.
// Tags compare case-sensitively, so case is kept. A nil slice stays nil and
// a non-nil slice stays non-nil, since the two mean different things to
// User.CompareTags.
func NormalizeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = NormalizeText(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
