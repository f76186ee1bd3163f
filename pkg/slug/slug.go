// Package slug derives URL-safe, human-readable identifiers from free-text
// names. A random suffix keeps independently generated slugs from colliding;
// uniqueness is entropy-based, not guaranteed, so storage keeps its own
// unique index as a backstop.
package slug

import (
	"crypto/rand"
	"strings"
)

const (
	// SuffixLength is the number of random characters appended to every slug.
	SuffixLength = 6

	suffixCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Generate produces a lowercase, hyphen-joined slug from name plus a random
// alphanumeric suffix. An empty name yields the suffix alone.
func Generate(name string) string {
	return Slugify(name + " " + randomSuffix(SuffixLength))
}

// Slugify normalizes text into a URL-safe token: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, edges trimmed.
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pendingHyphen := false
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}

	return b.String()
}

func randomSuffix(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is in no state to serve
		// requests at all.
		panic("slug: reading random source: " + err.Error())
	}

	for i, b := range buf {
		buf[i] = suffixCharset[int(b)%len(suffixCharset)]
	}

	return string(buf)
}
