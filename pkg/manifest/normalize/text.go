package normalize

import (
	"strings"
	"unicode"
)

// Text trims s and collapses every whitespace run into a single space.
func Text(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Upper is Text in upper case.
func Upper(s string) string {
	return strings.ToUpper(Text(s))
}

// ContainerNumber upper-cases s and strips every separator.
func ContainerNumber(s string) string {
	return Code(s)
}

// Code keeps only the letters and digits of s, upper-cased. Used for port and type codes.
func Code(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToUpper(r)
		}
		return -1
	}, s)
}

var containerLetterValues = func() map[byte]int {
	values := map[byte]int{}
	v := 10
	for c := byte('A'); c <= 'Z'; c++ {
		if v%11 == 0 {
			v++
		}
		values[c] = v
		v++
	}
	return values
}()

// ValidContainerNumber reports whether number has the ISO 6346 shape (4 letters, 7 digits)
// and whether its check digit matches.
func ValidContainerNumber(number string) (shape bool, checkDigit bool) {
	if len(number) != 11 {
		return false, false
	}
	for i := 0; i < 4; i++ {
		if number[i] < 'A' || number[i] > 'Z' {
			return false, false
		}
	}
	for i := 4; i < 11; i++ {
		if number[i] < '0' || number[i] > '9' {
			return false, false
		}
	}

	sum := 0
	for i := 0; i < 10; i++ {
		var v int
		if i < 4 {
			v = containerLetterValues[number[i]]
		} else {
			v = int(number[i] - '0')
		}
		sum += v << i
	}
	return true, sum%11%10 == int(number[10]-'0')
}
