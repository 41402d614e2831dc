package safety

import "strings"

// Known role-override phrases. This is a heuristic gate against casual
// prompt injection, not a security boundary: anything that slips through
// still hits the persona rules baked into the generation prompt.
var injectionPhrases = []string{
	"ignore previous instructions",
	"abaikan instruksi",
	"kamu sekarang adalah",
}

// IsInjection reports whether the message contains a known injection
// phrase, case-insensitively. Pure function, no side effects.
func IsInjection(message string) bool {
	lowered := strings.ToLower(message)
	for _, phrase := range injectionPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}
