package sanitizer

import (
	"strings"
	"unicode"
)

// allowed lists the code points kept by StripEmoji.
var allowed = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x000A, Hi: 0x000A, Stride: 1},
		{Lo: 0x000D, Hi: 0x000D, Stride: 1},
		{Lo: 0x0020, Hi: 0x007E, Stride: 1},
		{Lo: 0x0080, Hi: 0x009F, Stride: 1},
		{Lo: 0x00A0, Hi: 0x00BE, Stride: 1},
		{Lo: 0x2000, Hi: 0x201F, Stride: 1},
		{Lo: 0x2022, Hi: 0x2022, Stride: 1},
		{Lo: 0x2026, Hi: 0x2026, Stride: 1},
		{Lo: 0x20AC, Hi: 0x20AC, Stride: 1},
		{Lo: 0x2E80, Hi: 0xA4CF, Stride: 1},
		{Lo: 0xF900, Hi: 0xFAFF, Stride: 1},
		{Lo: 0xFE30, Hi: 0xFE4F, Stride: 1},
		{Lo: 0xFF00, Hi: 0xFFEF, Stride: 1},
	},
	LatinOffset: 5,
}

// StripEmoji removes every rune outside the allowed ranges and all whitespace.
func StripEmoji(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '\uFEFF' || !unicode.Is(allowed, r) {
			return -1
		}
		return r
	}, s)
}
