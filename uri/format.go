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

package uri

import (
	"encoding/json"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// String recomposes the URI from its components. The scheme is written in
// lower case and a trailing path slash is not reproduced, so the result may
// differ from the parsed text while parsing back to an equal URI.
func (u *URI) String() string {
	var b strings.Builder
	b.WriteString(u.Scheme.String())
	b.WriteString("://")
	if u.Authority != nil {
		b.WriteString(u.Authority.String())
		b.WriteByte('@')
	}
	if u.Host != nil {
		b.WriteString(u.Host.String())
	}
	if u.Port != nil {
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(uint64(*u.Port), 10))
	}
	if u.Path != nil {
		b.WriteString(u.Path.String())
	}
	if u.Query != nil {
		b.WriteByte('?')
		b.WriteString(u.Query.String())
	}
	if u.Fragment != nil {
		b.WriteByte('#')
		b.WriteString(*u.Fragment)
	}
	return b.String()
}

// Normalize returns a copy of the URI with a lower-case host name and
// without a port equal to the scheme's default.
func (u *URI) Normalize() *URI {
	n := *u
	if name, ok := u.Host.(Name); ok {
		n.Host = normalizeName(name)
	}
	if u.Port != nil && *u.Port == u.Scheme.DefaultPort() {
		n.Port = nil
	}
	return &n
}

// normalizeName lower-cases a host name through the IDNA lookup mapping,
// falling back to plain ASCII lower-casing for names the lookup profile
// rejects (e.g. labels starting or ending with a hyphen).
func normalizeName(name Name) Name {
	if ascii, err := idna.Lookup.ToASCII(string(name)); err == nil {
		return Name(ascii)
	}
	return Name(strings.ToLower(string(name)))
}

// MarshalJSON implements the json.Marshaler interface, encoding the URI as a
// JSON string.
func (u *URI) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface. The string must
// be a URI in its entirety.
func (u *URI) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}
