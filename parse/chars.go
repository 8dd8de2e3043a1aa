/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package parse

import (
	"strings"

	"golang.org/x/text/cases"
)

// IsASCIILetter checks if a byte is an ASCII letter.
func IsASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// IsASCIIDigit checks if a byte is an ASCII digit.
func IsASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsASCIIAlphanumeric checks if a byte is an ASCII letter or digit.
func IsASCIIAlphanumeric(c byte) bool {
	return IsASCIILetter(c) || IsASCIIDigit(c)
}

// IsAlphanumericHyphen checks if a byte is an ASCII letter, digit or '-'.
func IsAlphanumericHyphen(c byte) bool {
	return c == '-' || IsASCIIAlphanumeric(c)
}

// Tag matches the literal t exactly.
func Tag(t string) Parser[string] {
	return func(input string) (string, string, error) {
		if !strings.HasPrefix(input, t) {
			return "", "", NewError(input, KindTag)
		}
		return input[len(t):], input[:len(t)], nil
	}
}

// TagNoCase matches the literal t under Unicode case folding. The returned
// value is the matched slice of the input, in its original case.
func TagNoCase(t string) Parser[string] {
	folded := cases.Fold().String(t)
	return func(input string) (string, string, error) {
		if len(input) < len(t) {
			return "", "", NewError(input, KindTag)
		}
		// A Caser keeps state between calls, so one is made per match.
		if cases.Fold().String(input[:len(t)]) != folded {
			return "", "", NewError(input, KindTag)
		}
		return input[len(t):], input[:len(t)], nil
	}
}

// TakeWhile1 consumes the longest non-empty prefix whose bytes all satisfy
// pred. It fails with kind when the first byte does not.
func TakeWhile1(pred func(byte) bool, kind ErrorKind) Parser[string] {
	return func(input string) (string, string, error) {
		i := 0
		for i < len(input) && pred(input[i]) {
			i++
		}
		if i == 0 {
			return "", "", NewError(input, kind)
		}
		return input[i:], input[:i], nil
	}
}

var (
	// Alpha1 consumes a non-empty run of ASCII letters.
	Alpha1 = TakeWhile1(IsASCIILetter, KindAlpha)
	// Digit1 consumes a non-empty run of ASCII digits.
	Digit1 = TakeWhile1(IsASCIIDigit, KindDigit)
	// Alphanumeric1 consumes a non-empty run of ASCII letters and digits.
	Alphanumeric1 = TakeWhile1(IsASCIIAlphanumeric, KindAlphaNumeric)
	// AlphanumericHyphen1 consumes a non-empty run of ASCII letters, digits
	// and hyphens. It is the character class shared by host labels and
	// identifier tokens.
	AlphanumericHyphen1 = TakeWhile1(IsAlphanumericHyphen, KindAlphaNumeric)
)

// IsNot consumes a non-empty run of bytes that are not in seps.
func IsNot(seps string) Parser[string] {
	return TakeWhile1(func(c byte) bool {
		return strings.IndexByte(seps, c) < 0
	}, KindIsNot)
}

// TakeNoneOf consumes a possibly empty run of bytes that are not in seps.
// It never fails.
func TakeNoneOf(seps string) Parser[string] {
	return func(input string) (string, string, error) {
		i := strings.IndexAny(input, seps)
		if i < 0 {
			i = len(input)
		}
		return input[i:], input[:i], nil
	}
}

// OneOf consumes a single byte contained in set.
func OneOf(set string) Parser[byte] {
	return func(input string) (string, byte, error) {
		if input == "" || strings.IndexByte(set, input[0]) < 0 {
			return "", 0, NewError(input, KindOneOf)
		}
		return input[1:], input[0], nil
	}
}

// Rest consumes the whole remaining input.
var Rest Parser[string] = func(input string) (string, string, error) {
	return "", input, nil
}

// EOF succeeds only on empty input.
var EOF Parser[string] = func(input string) (string, string, error) {
	if input != "" {
		return "", "", NewError(input, KindEOF)
	}
	return input, input, nil
}
