package stats

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Alphabetic ordering follows the Slovak alphabet: diacritics are letters
// of their own (š after s, ž after z, ...) and the digraph "ch" collates as
// a single unit between "h" and "i". The CLDR tailoring shipped with
// x/text encodes exactly this, so ordering never depends on host locale
// data. The collator keeps an internal buffer and the whole application is
// single-threaded request/response, so one shared instance is enough.
var collator = collate.New(language.Slovak, collate.IgnoreCase)

// Less reports whether a orders before b under Slovak collation.
func Less(a, b string) bool {
	return collator.CompareString(a, b) < 0
}

// Compare is the three-way form of Less.
func Compare(a, b string) int {
	return collator.CompareString(a, b)
}
