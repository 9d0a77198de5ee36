package numerology

// letterValues is the Pythagorean cipher indexed by letter offset from 'a'.
var letterValues = [26]int{
	1, 2, 3, 4, 5, 6, 7, 8, 9, // a-i
	1, 2, 3, 4, 5, 6, 7, 8, 9, // j-r
	1, 2, 3, 4, 5, 6, 7, 8, // s-z
}

// LetterValue returns the cipher value of a single character.
//
// Only ASCII is case-folded, so a letter such as 'İ' or the Kelvin sign never
// maps onto a-z. Anything outside a-z, including accented letters and digits,
// is worth 0. A zero is a silent "no contribution", never an error.
func LetterValue(r rune) int {
	lower := toLowerASCII(r)
	if lower < 'a' || lower > 'z' {
		return 0
	}
	return letterValues[lower-'a']
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 'a' - 'A'
	}
	return r
}

// isASCIILetter reports whether r is in a-z or A-Z.
func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsVowel reports whether r is one of a, e, i, o, u in either case.
// Y is treated as a consonant.
func IsVowel(r rune) bool {
	switch toLowerASCII(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	default:
		return false
	}
}
