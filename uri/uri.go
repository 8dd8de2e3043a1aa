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

// Package uri parses a restricted dialect of web URIs into a structured URI
// value.
//
// The accepted grammar is:
//
//	uri       = scheme [authority] (ipv4 / host) [port] [path] [query] [fragment]
//	scheme    = "http://" / "https://"            ; case-insensitive
//	authority = 1*alnum [":"] [1*alnum] "@"
//	host      = 1*(label ".") 1*ALPHA / label
//	label     = 1*(ALPHA / DIGIT / "-")
//	ipv4      = 3(octet ".") octet                 ; octet = 1*3DIGIT, <= 255
//	port      = ":" 1*DIGIT                        ; fits 16 bits
//	path      = "/" *(segment "/") [segment]
//	query     = "?" pair *("&" pair)               ; pair = key "=" value
//	fragment  = "#" *CHAR
//
// Only http and https, IPv4 and ASCII host names are supported; there is no
// percent-decoding. Parsing is a single left-to-right pass with no
// backtracking between components. An IPv4 octet reads at most three digits,
// so "1.2.3.1444" yields 1.2.3.144 and leaves "4" unparsed.
//
// ParseURI parses a prefix and returns what follows it; Parse requires the
// whole input to be a URI. Grammar failures are *parse.Error values whose
// entries record every component the failure unwound through, from the
// precise mismatch out to "uri".
package uri

import (
	"github.com/jplu/weburi/parse"
)

var (
	optAuthority = parse.Opt(authority)
	optPort      = parse.Opt(port)
	optPath      = parse.Opt(path)
	optQuery     = parse.Opt(query)
	optFragment  = parse.Opt(fragment)
)

// uri sequences the components. Optional ones cannot fail: a mismatch only
// leaves them nil and the input untouched for the next component.
var uri = parse.Context[*URI](ContextURI, func(input string) (string, *URI, error) {
	rest, s, err := scheme(input)
	if err != nil {
		return "", nil, err
	}
	rest, auth, _ := optAuthority(rest)
	rest, h, err := hostOrIP(rest)
	if err != nil {
		return "", nil, err
	}
	rest, p, _ := optPort(rest)
	rest, segments, _ := optPath(rest)
	rest, params, _ := optQuery(rest)
	rest, frag, _ := optFragment(rest)

	u := &URI{
		Scheme:    s,
		Authority: auth,
		Host:      h,
		Port:      p,
		Fragment:  frag,
	}
	if segments != nil {
		u.Path = *segments
	}
	if params != nil {
		u.Query = *params
	}
	return rest, u, nil
})

// ParseURI parses a URI at the start of input. It returns the unparsed
// remainder, empty when the whole input was consumed. On failure the error
// is a *parse.Error.
func ParseURI(input string) (string, *URI, error) {
	return uri(input)
}

// Parse parses s, which must be a URI in its entirety. Errors are of type
// *ParseError.
func Parse(s string) (*URI, error) {
	rest, u, err := ParseURI(s)
	if err != nil {
		return nil, newParseError(err)
	}
	if rest != "" {
		return nil, newParseError(ErrTrailingInput.withDetails(rest))
	}
	return u, nil
}

// Valid reports whether s is a URI in its entirety.
func Valid(s string) bool {
	rest, _, err := ParseURI(s)
	return err == nil && rest == ""
}
