// internal/report/filename.go
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// slugify lowercases the company name and collapses every run of
// non-alphanumeric characters to a single hyphen, trimming hyphens at both
// ends. An empty or fully symbolic name yields "report".
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "report"
	}
	return slug
}

// reportFilename derives the output filename from the company name, a date
// stamp, and a uniqueness token. Two calls for the same company in the same
// process never collide: the token is a fresh random UUID fragment.
func reportFilename(companyName string, generatedAt time.Time) string {
	token := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("benchmark-report-%s-%s-%s.pdf",
		slugify(companyName),
		generatedAt.Format("2006-01-02"),
		token)
}
