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
	"errors"
	"fmt"
	"strings"
)

// ErrorKind identifies the low-level reason a primitive or combinator failed.
type ErrorKind int

const (
	KindTag ErrorKind = iota + 1
	KindAlt
	KindAlpha
	KindAlphaNumeric
	KindDigit
	KindOneOf
	KindIsNot
	KindMany0
	KindMany1
	KindManyMN
	KindCount
	KindMapRes
	KindEOF
)

var kindNames = map[ErrorKind]string{
	KindTag:          "Tag",
	KindAlt:          "Alt",
	KindAlpha:        "Alpha",
	KindAlphaNumeric: "AlphaNumeric",
	KindDigit:        "Digit",
	KindOneOf:        "OneOf",
	KindIsNot:        "IsNot",
	KindMany0:        "Many0",
	KindMany1:        "Many1",
	KindManyMN:       "ManyMN",
	KindCount:        "Count",
	KindMapRes:       "MapRes",
	KindEOF:          "Eof",
}

var kindDescriptions = map[ErrorKind]string{
	KindTag:          "expected literal tag",
	KindAlt:          "no alternative matched",
	KindAlpha:        "expected alphabetic",
	KindAlphaNumeric: "expected alphanumeric",
	KindDigit:        "expected digit",
	KindOneOf:        "expected one of the allowed characters",
	KindIsNot:        "expected a character outside the separators",
	KindMany0:        "repetition made no progress",
	KindMany1:        "expected at least one repetition",
	KindManyMN:       "expected valid count of repetitions",
	KindCount:        "expected valid count of repetitions",
	KindMapRes:       "value conversion failed",
	KindEOF:          "expected end of input",
}

// String returns the short name of the kind, e.g. "Tag".
func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Description returns a human readable reason for the kind.
func (k ErrorKind) Description() string {
	if s, ok := kindDescriptions[k]; ok {
		return s
	}
	return k.String()
}

// Entry is one frame of an error chain. Exactly one of Kind or Context is set.
type Entry struct {
	// Input is the remainder of the input at the point of failure.
	Input   string
	Kind    ErrorKind
	Context string
}

// IsContext reports whether the entry names a grammar component rather than
// a low-level mismatch.
func (e Entry) IsContext() bool { return e.Context != "" }

// String formats the entry as "cause at remainder".
func (e Entry) String() string {
	if e.IsContext() {
		return fmt.Sprintf("in %s at %q", e.Context, e.Input)
	}
	return fmt.Sprintf("%s at %q", e.Kind.Description(), e.Input)
}

// Error is the failure returned by every parser of this package. Entries are
// ordered innermost first: the first entry is the precise mismatch and the
// last one is the outermost context the failure unwound through.
type Error struct {
	Entries []Entry
}

// NewError creates an error holding a single low-level entry.
func NewError(input string, kind ErrorKind) *Error {
	return &Error{Entries: []Entry{{Input: input, Kind: kind}}}
}

// Append returns a copy of e with a low-level entry added on the outside.
// The receiver is never modified, so alternative branches may share a prefix.
func (e *Error) Append(input string, kind ErrorKind) *Error {
	return e.push(Entry{Input: input, Kind: kind})
}

// WithContext returns a copy of e with a named context added on the outside.
func (e *Error) WithContext(input, context string) *Error {
	return e.push(Entry{Input: input, Context: context})
}

func (e *Error) push(entry Entry) *Error {
	var entries []Entry
	if e != nil {
		entries = make([]Entry, 0, len(e.Entries)+1)
		entries = append(entries, e.Entries...)
	}
	return &Error{Entries: append(entries, entry)}
}

// Contexts returns the named contexts of the chain, innermost first.
func (e *Error) Contexts() []string {
	var out []string
	for _, entry := range e.Entries {
		if entry.IsContext() {
			out = append(out, entry.Context)
		}
	}
	return out
}

// HasContext reports whether the chain unwound through the named context.
func (e *Error) HasContext(context string) bool {
	for _, entry := range e.Entries {
		if entry.Context == context {
			return true
		}
	}
	return false
}

// Error renders the chain outermost first, e.g.
// `uri: ip or host: host: expected alphanumeric at "$$$.com"`.
func (e *Error) Error() string {
	if len(e.Entries) == 0 {
		return "parse error"
	}
	var b strings.Builder
	for i := len(e.Entries) - 1; i >= 0; i-- {
		if entry := e.Entries[i]; entry.IsContext() {
			b.WriteString(entry.Context)
			b.WriteString(": ")
		}
	}
	// The innermost low-level cause is the most precise one.
	for _, entry := range e.Entries {
		if !entry.IsContext() {
			fmt.Fprintf(&b, "%s at %q", entry.Kind.Description(), entry.Input)
			return b.String()
		}
	}
	fmt.Fprintf(&b, "failed at %q", e.Entries[0].Input)
	return b.String()
}

// Describe renders every entry on its own line together with the byte offset
// of its remainder inside original, which must be the string handed to the
// outermost parser.
func (e *Error) Describe(original string) string {
	var b strings.Builder
	for i, entry := range e.Entries {
		offset := len(original) - len(entry.Input)
		if offset < 0 || !strings.HasSuffix(original, entry.Input) {
			offset = -1
		}
		fmt.Fprintf(&b, "%d: at offset %d, %s\n", i, offset, entry)
	}
	return b.String()
}

// AsError extracts a *Error from err.
func AsError(err error) (*Error, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// wrap turns any failure returned by a sub-parser into a *Error. Parsers
// built from this package only ever return *Error, so the fallback only
// triggers for hand-written parsers.
func wrap(err error, input string) *Error {
	if pe, ok := AsError(err); ok {
		return pe
	}
	return NewError(input, KindMapRes)
}
