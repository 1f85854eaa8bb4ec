// Package stats derives player, pairing and opponent statistics from the
// match table. Every function here is a pure fold over its inputs: no
// hidden state, no errors — malformed data is normalized away at load time,
// and an empty selection simply produces an empty result.
package stats

import "strings"

// CleanName trims a raw cell value and reports whether it names a player.
// Blank and NA cells are rejected so no empty-string "player" can ever
// reach an accumulator.
func CleanName(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "na") || strings.EqualFold(s, "n/a") {
		return "", false
	}
	return s, true
}

// GivenFirst converts a canonical "Surname Given" name to the display form
// "Given Surname". The last token is the given name; everything before it
// is the (possibly multi-word) surname. Single-token names pass through.
// Internal keys always stay in canonical form; this is display only.
func GivenFirst(name string) string {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return name
	}
	given := parts[len(parts)-1]
	surname := strings.Join(parts[:len(parts)-1], " ")
	return given + " " + surname
}

// ShortForm abbreviates a display name to "G. Surname": the first token's
// initial plus the last token. Single-token names are returned unchanged.
func ShortForm(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 1 {
		return parts[0]
	}
	// Given names like "Ľuboš" start with a multi-byte rune.
	initial := string([]rune(parts[0])[:1])
	return initial + ". " + parts[len(parts)-1]
}

// ShortPair abbreviates each member of a comma-joined pair of display
// names, "Given1 Surname1, Given2 Surname2" -> "G. Surname1, G. Surname2".
func ShortPair(pair string) string {
	if strings.TrimSpace(pair) == "" {
		return ""
	}
	parts := strings.Split(pair, ",")
	for i, p := range parts {
		parts[i] = ShortForm(strings.TrimSpace(p))
	}
	return strings.Join(parts, ", ")
}

// Surname returns the sort key of a display name: its last token.
func Surname(display string) string {
	parts := strings.Fields(display)
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
