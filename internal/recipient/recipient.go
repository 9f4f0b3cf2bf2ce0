package recipient

import (
	"regexp"
	"strings"

	"recipfit/internal/constants"
)

var addressPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Item is a single validated recipient address.
type Item string

func (i Item) String() string { return string(i) }

// List is an ordered sequence of valid recipients. Earlier entries are
// preferred for display.
type List []Item

// Valid reports whether s looks like a deliverable address.
func Valid(s string) bool {
	if s == "" || len(s) > constants.MaxAddressLength {
		return false
	}
	return addressPattern.MatchString(s)
}

// Parse splits a comma separated source string into a List. Tokens are
// trimmed and malformed ones are dropped without error.
func Parse(raw string) List {
	if strings.TrimSpace(raw) == "" {
		return List{}
	}

	parts := strings.Split(raw, ",")
	items := make(List, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		if Valid(token) {
			items = append(items, Item(token))
		}
	}
	return items
}

// Strings returns the list as plain strings.
func (l List) Strings() []string {
	out := make([]string, len(l))
	for i, item := range l {
		out[i] = string(item)
	}
	return out
}

// Join concatenates the first n items with sep.
func (l List) Join(n int, sep string) string {
	if n > len(l) {
		n = len(l)
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(string(l[i]))
	}
	return b.String()
}
