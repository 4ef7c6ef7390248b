package models

import (
	"regexp"
	"strings"
	"unicode"
)

// SlugPattern is the accepted shape of a caller-supplied slug.
var SlugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

const wordsPerMinute = 200

// Slugify turns a title into a URL-safe slug. Runs of anything that is not an
// ASCII letter or digit collapse into a single hyphen.
func Slugify(title string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// NormalizeTags trims every tag, drops empty ones and removes case-insensitive
// duplicates while keeping the first spelling. The result is never nil.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	return out
}

// EstimateReadTime returns the reading time in minutes, never less than 1.
func EstimateReadTime(content string) int {
	words := len(strings.FieldsFunc(content, unicode.IsSpace))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
