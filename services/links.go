package services

import (
	"fmt"
	"strings"
)

// AdminContactsURL is the dashboard page listing contact messages, or ""
// when no base URL is configured.
func AdminContactsURL(baseURL string) string {
	if baseURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/admin/contacts", strings.TrimSuffix(baseURL, "/"))
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
