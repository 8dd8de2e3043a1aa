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

//nolint:testpackage // White-box tests share the package to build chains by hand.
package parse

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func hostChain() *Error {
	const in = "$$$.com"
	return NewError(in, KindAlphaNumeric).
		Append(in, KindManyMN).
		Append(in, KindAlt).
		WithContext(in, "host").
		WithContext(in, "ip or host").
		WithContext(in, "uri")
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		wantName string
		wantDesc string
	}{
		{KindTag, "Tag", "expected literal tag"},
		{KindAlphaNumeric, "AlphaNumeric", "expected alphanumeric"},
		{KindManyMN, "ManyMN", "expected valid count of repetitions"},
		{KindCount, "Count", "expected valid count of repetitions"},
		{KindEOF, "Eof", "expected end of input"},
		{ErrorKind(99), "ErrorKind(99)", "ErrorKind(99)"},
	}
	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.wantName {
				t.Errorf("String() = %q, want %q", got, tt.wantName)
			}
			if got := tt.kind.Description(); got != tt.wantDesc {
				t.Errorf("Description() = %q, want %q", got, tt.wantDesc)
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "contexts outermost first",
			err:  hostChain(),
			want: `uri: ip or host: host: expected alphanumeric at "$$$.com"`,
		},
		{
			name: "no context",
			err:  NewError("x", KindDigit),
			want: `expected digit at "x"`,
		},
		{
			name: "only contexts",
			err:  (&Error{}).WithContext("x", "port"),
			want: `port: failed at "x"`,
		},
		{
			name: "empty",
			err:  &Error{},
			want: "parse error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorAppendDoesNotShareEntries(t *testing.T) {
	base := NewError("x", KindTag)
	a := base.Append("x", KindAlt)
	b := base.WithContext("x", "scheme")

	if len(base.Entries) != 1 {
		t.Fatalf("receiver modified: %v", base.Entries)
	}
	if a.Entries[1].Kind != KindAlt || b.Entries[1].Context != "scheme" {
		t.Errorf("branches interfere: a=%v b=%v", a.Entries, b.Entries)
	}
}

func TestErrorContexts(t *testing.T) {
	err := hostChain()
	if diff := cmp.Diff([]string{"host", "ip or host", "uri"}, err.Contexts()); diff != "" {
		t.Errorf("Contexts mismatch (-want +got):\n%s", diff)
	}
	if !err.HasContext("ip or host") {
		t.Error("HasContext(\"ip or host\") = false")
	}
	if err.HasContext("scheme") {
		t.Error("HasContext(\"scheme\") = true")
	}
}

func TestErrorDescribe(t *testing.T) {
	original := "http://$$$.com"
	err := NewError("$$$.com", KindAlphaNumeric).WithContext(original, "uri")

	want := "0: at offset 7, expected alphanumeric at \"$$$.com\"\n" +
		"1: at offset 0, in uri at \"http://$$$.com\"\n"
	if got := err.Describe(original); got != want {
		t.Errorf("Describe() =\n%s\nwant\n%s", got, want)
	}

	// Remainders that are not a suffix of original get offset -1.
	got := NewError("zzz", KindTag).Describe("abc")
	if want := "0: at offset -1, expected literal tag at \"zzz\"\n"; got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}

func TestAsError(t *testing.T) {
	wrapped := fmt.Errorf("wrapped: %w", hostChain())
	pe, ok := AsError(wrapped)
	if !ok || len(pe.Entries) != 6 {
		t.Errorf("AsError(wrapped) = (%v, %v)", pe, ok)
	}
	if _, ok := AsError(fmt.Errorf("plain")); ok {
		t.Error("AsError(plain) = true")
	}
}
