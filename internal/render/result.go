package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of one render call. It is built once and
// never mutated; the caller owns it on return.
type Result struct {
	Buffer      []byte
	Filename    string
	Size        int64
	GeneratedAt time.Time
}

// ContentType is the MIME type for the buffer.
func (r *Result) ContentType() string { return "application/pdf" }

// buildFilename derives the output name from the identifying key, a
// document kind, the generation date and a short random fragment. The
// fragment hardens the coarse date suffix against collisions under
// concurrent generation.
func buildFilename(key, kind string, generatedAt time.Time) string {
	k := sanitizeKey(key)
	if k == "" {
		k = "form"
	}
	frag := uuid.NewString()[:8]
	return fmt.Sprintf("%s-%s-%s-%s.pdf", k, kind, generatedAt.Format("2006-01-02"), frag)
}

// sanitizeKey lowercases the key and collapses anything outside
// [a-z0-9] into single dashes so the name is filesystem-safe.
func sanitizeKey(key string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(foldLatin(key)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
