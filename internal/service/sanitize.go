package service

import (
	"html"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips every tag; postings and applications are plain text.
var strictPolicy = bluemonday.StrictPolicy()

// maxSanitizePasses bounds the decode/strip loop for nested encodings.
const maxSanitizePasses = 8

// plainText returns s as decoded plain text with every tag removed. Entity
// encoded markup is decoded before stripping, repeatedly, so "&lt;b&gt;" is
// removed like "<b>". Input that does not settle is stored still escaped.
func plainText(s string) string {
	s = strings.TrimSpace(s)
	for i := 0; i < maxSanitizePasses; i++ {
		next := strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(html.UnescapeString(s))))
		if next == s {
			return s
		}
		s = next
	}
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// plainLines cleans each line and drops the ones left empty.
func plainLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if cleaned := plainText(line); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
