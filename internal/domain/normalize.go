package domain

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var hexColorRe = regexp.MustCompile(`^#[0-9A-F]{6}$`)

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// TrimToNil trims s and returns nil when nothing is left.
func TrimToNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// NormalizeHexColor upper-cases a #RRGGBB color and reports whether it is well formed.
func NormalizeHexColor(color string) (string, bool) {
	c := strings.ToUpper(strings.TrimSpace(color))
	return c, hexColorRe.MatchString(c)
}

// IsHTTPURL reports whether raw is an absolute http or https URL.
func IsHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// DedupeIDs removes repeated ids, keeping the first occurrence of each.
func DedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
