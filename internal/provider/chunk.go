package provider

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var pageMarkerRe = regexp.MustCompile(`\n\[PÁGINA \d+\]\n`)

// SplitChunks divides the concatenated process text into chunks of at most
// maxChars characters, splitting on the [PÁGINA n] markers the loader
// inserts. A single page larger than maxChars is hard-split. The result is
// never empty: degenerate input yields one truncated chunk.
func SplitChunks(text string, maxChars int) []string {
	if maxChars <= 0 {
		return []string{text}
	}

	pages := pageMarkerRe.Split(text, -1)
	var chunks []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			chunks = append(chunks, s)
		}
		current.Reset()
	}

	for _, page := range pages {
		if strings.TrimSpace(page) == "" {
			continue
		}
		if current.Len()+len(page) < maxChars {
			current.WriteString("\n")
			current.WriteString(page)
			continue
		}
		flush()
		if len(page) > maxChars {
			for start := 0; start < len(page); {
				piece := cutRunes(page[start:], maxChars)
				if piece == "" {
					break
				}
				chunks = append(chunks, piece)
				start += len(piece)
			}
			continue
		}
		current.WriteString(page)
	}
	flush()

	if len(chunks) == 0 {
		chunks = []string{cutRunes(text, maxChars)}
	}
	return chunks
}

// cutRunes returns s cut to at most max bytes, backing the cut up so a
// multi-byte character is never split.
func cutRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
