package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name string
		in   string
		size int
		want []string
	}{
		{name: "empty", in: "", size: 2, want: []string{}},
		{name: "even", in: "02b4", size: 2, want: []string{"02", "b4"}},
		{name: "odd", in: "abc", size: 2, want: []string{"ab", "c"}},
		{name: "single char", in: "f", size: 2, want: []string{"f"}},
		{name: "size larger than input", in: "abc", size: 8, want: []string{"abc"}},
		{name: "size three", in: "abcdefg", size: 3, want: []string{"abc", "def", "g"}},
		{name: "zero size treated as one", in: "ab", size: 0, want: []string{"a", "b"}},
		{name: "negative size treated as one", in: "ab", size: -4, want: []string{"a", "b"}},
		{name: "multi-byte runes stay whole", in: "aé€b", size: 2, want: []string{"aé", "€b"}},
		{name: "odd multi-byte tail", in: "ab€", size: 2, want: []string{"ab", "€"}},
		{name: "invalid utf-8 bytes count singly", in: "a\xffb", size: 2, want: []string{"a\xff", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Chunk(tt.in, tt.size)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestByteLiterals(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: []string{}},
		{name: "two bytes", in: "02b4", want: []string{"0x02", "0xb4"}},
		{name: "odd length", in: "abc", want: []string{"0xab", "0xc"}},
		{name: "non-hex kept verbatim", in: "zz!", want: []string{"0xzz", "0x!"}},
		{name: "uppercase kept verbatim", in: "DEADbeef", want: []string{"0xDE", "0xAD", "0xbe", "0xef"}},
		{name: "multi-byte pair", in: "aé", want: []string{"0xaé"}},
		{name: "multi-byte odd tail", in: "00ü", want: []string{"0x00", "0xü"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ByteLiterals(tt.in))
		})
	}
}

func TestByteLiterals_Properties(t *testing.T) {
	inputs := []string{
		"",
		"0",
		"02",
		"abc",
		"02b4632d08485ff1df2db55b9dafd23347d1c47a457072a1e87be26896549a8737",
		"not hex at all",
		strings.Repeat("f", 101),
		"aé",
		"日本語",
		"ff\u00e9\u20ac0",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			tokens := ByteLiterals(in)

			n := utf8.RuneCountInString(in)
			assert.Len(t, tokens, (n+1)/2, "token count is ceil(len/2)")

			var joined strings.Builder
			for i, tok := range tokens {
				require.True(t, strings.HasPrefix(tok, ByteLiteralPrefix))
				width := utf8.RuneCountInString(tok)
				if i == len(tokens)-1 && n%2 == 1 {
					assert.Equal(t, 3, width, "odd tail token %q", tok)
				} else {
					assert.Equal(t, 4, width, "token %q", tok)
				}
				assert.True(t, utf8.ValidString(tok) || !utf8.ValidString(in), "token %q", tok)
				joined.WriteString(strings.TrimPrefix(tok, ByteLiteralPrefix))
			}
			assert.Equal(t, in, joined.String(), "round trip")
		})
	}
}

func TestFormatList(t *testing.T) {
	assert.Equal(t, "[]", FormatList(nil))
	assert.Equal(t, "[]", FormatList([]string{}))
	assert.Equal(t, "[0x02]", FormatList([]string{"0x02"}))
	assert.Equal(t, "[0x02, 0xb4]", FormatList([]string{"0x02", "0xb4"}))
}

func TestFormatLength(t *testing.T) {
	assert.Equal(t, "length:  0", FormatLength(0))
	assert.Equal(t, "length:  2", FormatLength(2))
	assert.Equal(t, "length:  33", FormatLength(33))
}
