package synthesis

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"sintese/internal/domain"
)

var (
	trailingCommaObjRe = regexp.MustCompile(`,\s*}`)
	trailingCommaArrRe = regexp.MustCompile(`,\s*]`)
	missingCommaObjRe  = regexp.MustCompile(`}\s*"`)
	missingCommaArrRe  = regexp.MustCompile(`]\s*"`)
)

// ParseExtraction turns the raw model answer into an Extraction. Models
// wrap JSON in markdown fences, chat around it, or emit slightly broken
// JSON; this parser is total over those failure modes and only errors when
// no object can be recovered at all.
func ParseExtraction(raw string) (domain.Extraction, error) {
	var ext domain.Extraction

	cleaned := stripFences(raw)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return ext, fmt.Errorf("no JSON object in response (starts with: %s)", truncate(strings.TrimSpace(raw), 200))
	}
	cleaned = cleaned[start : end+1]

	if err := json.Unmarshal([]byte(cleaned), &ext); err == nil {
		return ext, nil
	}

	repaired := repairJSON(cleaned)
	if err := json.Unmarshal([]byte(repaired), &ext); err != nil {
		return ext, fmt.Errorf("response is not valid JSON even after repair: %w", err)
	}
	return ext, nil
}

// stripFences removes markdown code fences around the JSON payload.
func stripFences(s string) string {
	if strings.Contains(s, "```json") {
		s = strings.ReplaceAll(s, "```json", "")
	}
	return strings.ReplaceAll(s, "```", "")
}

// repairJSON fixes the malformations models most often produce: trailing
// commas, missing commas between a closing brace and the next key, and raw
// newlines inside string values.
func repairJSON(s string) string {
	s = trailingCommaObjRe.ReplaceAllString(s, "}")
	s = trailingCommaArrRe.ReplaceAllString(s, "]")
	s = missingCommaObjRe.ReplaceAllString(s, `}, "`)
	s = missingCommaArrRe.ReplaceAllString(s, `], "`)
	return flattenNewlines(s)
}

// flattenNewlines replaces unescaped newlines with spaces. Escaped \n
// sequences inside strings are two characters and stay untouched.
func flattenNewlines(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' && (i == 0 || s[i-1] != '\\') {
			b.WriteByte(' ')
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
