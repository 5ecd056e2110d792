package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// tokenPattern matches ticker-style mentions like $BTC or $DOGE: a
// dollar sign followed by 3-10 uppercase letters, with no further
// word character after them (so $BTCUSDTPAIRX doesn't half-match).
var tokenPattern = regexp.MustCompile(`\$([A-Z]{3,10})\b`)

// excerptRadius is how much surrounding text is kept on each side of
// a match when building its excerpt.
const excerptRadius = 100

// Mention is one token match with the excerpt around it.
type Mention struct {
	Token   string
	Excerpt string
}

// Mentions scans text and returns every token mention in order of
// appearance. Each mention gets its own excerpt clipped to the text
// bounds, so excerpts of nearby tokens may overlap. No side effects,
// no dedup; the same token twice yields two mentions.
func Mentions(text string) []Mention {
	idx := tokenPattern.FindAllStringSubmatchIndex(text, -1)
	if len(idx) == 0 {
		return nil
	}

	out := make([]Mention, 0, len(idx))
	for _, m := range idx {
		start := m[0] - excerptRadius
		if start < 0 {
			start = 0
		}
		end := m[1] + excerptRadius
		if end > len(text) {
			end = len(text)
		}
		// don't cut a multi-byte rune at the window edges
		for start > 0 && !utf8.RuneStart(text[start]) {
			start--
		}
		for end < len(text) && !utf8.RuneStart(text[end]) {
			end++
		}

		out = append(out, Mention{
			Token:   text[m[2]:m[3]],
			Excerpt: strings.TrimSpace(text[start:end]),
		})
	}
	return out
}
