package format

import (
	"fmt"
	"strings"
	"time"
)

// Date renders t according to a token pattern. Recognized tokens:
// yyyy, MM, dd, HH, mm, ss, SSS. Tokens are substituted longest-first
// so SSS never collides with ss; anything unrecognized passes through.
func Date(t time.Time, pattern string) string {
	replacements := []struct {
		token string
		value string
	}{
		{"yyyy", fmt.Sprintf("%04d", t.Year())},
		{"SSS", fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))},
		{"MM", fmt.Sprintf("%02d", int(t.Month()))},
		{"dd", fmt.Sprintf("%02d", t.Day())},
		{"HH", fmt.Sprintf("%02d", t.Hour())},
		{"mm", fmt.Sprintf("%02d", t.Minute())},
		{"ss", fmt.Sprintf("%02d", t.Second())},
	}

	var b strings.Builder
	b.Grow(len(pattern))
	for i := 0; i < len(pattern); {
		matched := false
		for _, r := range replacements {
			if strings.HasPrefix(pattern[i:], r.token) {
				b.WriteString(r.value)
				i += len(r.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(pattern[i])
			i++
		}
	}
	return b.String()
}
