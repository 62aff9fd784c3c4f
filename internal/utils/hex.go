package utils

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ByteLiteralPrefix is prepended to every chunk produced by ByteLiterals.
const ByteLiteralPrefix = "0x"

// Chunk splits s into consecutive pieces of size characters (runes),
// starting at the first one. The last piece is shorter when the rune count
// is not a multiple of size. A size below 1 is treated as 1.
func Chunk(s string, size int) []string {
	if size < 1 {
		size = 1
	}
	out := make([]string, 0, (utf8.RuneCountInString(s)+size-1)/size)
	for len(s) > 0 {
		end := 0
		for n := 0; n < size && end < len(s); n++ {
			_, w := utf8.DecodeRuneInString(s[end:])
			end += w
		}
		out = append(out, s[:end])
		s = s[end:]
	}
	return out
}

// ByteLiterals turns a hex string such as "02b4" into byte literals
// ("0x02", "0xb4"). The input is not validated; an odd trailing
// character becomes a short literal ("0xc").
func ByteLiterals(s string) []string {
	out := Chunk(s, 2)
	for i, c := range out {
		out[i] = ByteLiteralPrefix + c
	}
	return out
}

// FormatList renders tokens as "[a, b, c]".
func FormatList(tokens []string) string {
	return "[" + strings.Join(tokens, ", ") + "]"
}

// FormatLength renders the token count line, e.g. "length:  2".
func FormatLength(n int) string {
	return "length:  " + strconv.Itoa(n)
}
