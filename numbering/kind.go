package numbering

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// render dispatches a single number to its kind-specific text, applying
// case where the kind supports it.
func render(k Kind, n int, c Case) string {
	switch k {
	case Arabic:
		return renderArabic(n)
	case Letter:
		return renderLetter(n, c)
	case Roman:
		return renderRoman(n, c)
	case Symbol:
		return renderSymbol(n)
	default:
		return ""
	}
}

// renderArabic is the plain decimal rendering; it carries no case.
func renderArabic(n int) string {
	return itoa(n)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

// letterCaser and letterLower apply the requested case to the lower-case
// bijective base-26 letters renderLetter builds, using
// golang.org/x/text/cases the same way other user-facing strings in
// this codebase are cased, rather than a bespoke byte-shifting helper.
var letterCaser = cases.Upper(language.Und)
var letterLower = cases.Lower(language.Und)

// renderLetter renders n (1-indexed) as bijective base-26 letters: 1 is
// "a", 26 is "z", 27 is "aa". n == 0 renders as "-".
func renderLetter(n int, c Case) string {
	if n == 0 {
		return "-"
	}
	var letters []byte
	for n > 0 {
		n--
		letters = append(letters, byte('a'+n%26))
		n /= 26
	}
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}

	s := string(letters)
	if c == Upper {
		return letterCaser.String(s)
	}
	return letterLower.String(s)
}

// romanTable lists Roman-numeral values from largest to smallest,
// including the combining-macron (U+0305) extension used for values at
// or above 4000, adapted verbatim from numbering.rs's ROMAN table
// (itself adapted from Yann Villessuzanne's roman.rs, Unlicense).
var romanTable = []struct {
	name  string
	value int
}{
	{"M̅", 1_000_000},
	{"D̅", 500_000},
	{"C̅", 100_000},
	{"L̅", 50_000},
	{"X̅", 10_000},
	{"V̅", 5_000},
	{"I̅V̅", 4_000},
	{"M", 1_000},
	{"CM", 900},
	{"D", 500},
	{"CD", 400},
	{"C", 100},
	{"XC", 90},
	{"L", 50},
	{"XL", 40},
	{"X", 10},
	{"IX", 9},
	{"V", 5},
	{"IV", 4},
	{"I", 1},
}

// renderRoman renders n using greedy subtraction over romanTable. n == 0
// renders as "N" (nulla) unconditionally, before any case handling —
// matching numbering.rs, which returns 'N'.into() for the zero case
// ahead of the per-char case loop. Lower case for n != 0 is produced by
// lower-casing each rendered rune individually, matching the per-char
// `to_lowercase()` of the original so the combining macron is preserved
// as a separate rune.
func renderRoman(n int, c Case) string {
	if n == 0 {
		return "N"
	}

	var b strings.Builder
	for _, entry := range romanTable {
		for n >= entry.value {
			n -= entry.value
			for _, r := range entry.name {
				if c == Lower {
					b.WriteString(strings.ToLower(string(r)))
				} else {
					b.WriteRune(r)
				}
			}
		}
	}
	return b.String()
}

// symbolTable repeats in the order *, †, ‡, §, ¶, ‖ for items beyond the
// sixth, doubling up (**, ††, ...) rather than introducing a seventh
// symbol.
var symbolTable = []rune{'*', '†', '‡', '§', '¶', '‖'}

// renderSymbol renders n (1-indexed) as a repeated footnote symbol. n ==
// 0 renders as "-".
func renderSymbol(n int) string {
	if n == 0 {
		return "-"
	}
	symbol := symbolTable[(n-1)%len(symbolTable)]
	amount := (n-1)/len(symbolTable) + 1
	return strings.Repeat(string(symbol), amount)
}
