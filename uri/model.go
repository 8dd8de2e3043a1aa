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
	"fmt"
	"net/netip"
	"strings"
)

// URI is the structured form of a parsed URI. Optional components are nil
// exactly when they were absent from the input. All strings except a host
// name are substrings of the parsed input.
type URI struct {
	Scheme    Scheme
	Authority *Authority
	Host      Host
	Port      *uint16
	// Path is nil when the input had no path. A bare "/" gives an empty,
	// non-nil Path.
	Path     Path
	Query    QueryParams
	Fragment *string
}

// Scheme is one of the two supported URI schemes.
type Scheme int

const (
	HTTP Scheme = iota + 1
	HTTPS
)

// schemeFromLiteral maps a literal matched by the scheme parser to its
// Scheme. The parser only ever matches the two literals, so anything else is
// a programming error.
func schemeFromLiteral(lit string) Scheme {
	switch strings.ToLower(lit) {
	case "http://":
		return HTTP
	case "https://":
		return HTTPS
	}
	panic(fmt.Sprintf("uri: unsupported scheme literal %q", lit))
}

// String returns the lower-case scheme name without the "://" separator.
func (s Scheme) String() string {
	switch s {
	case HTTP:
		return "http"
	case HTTPS:
		return "https"
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

// DefaultPort returns the port implied by the scheme.
func (s Scheme) DefaultPort() uint16 {
	if s == HTTPS {
		return 443
	}
	return 80
}

// MarshalText implements encoding.TextMarshaler.
func (s Scheme) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Authority is the user information preceding "@".
type Authority struct {
	Username string
	Password *string
}

// String renders the authority without the trailing "@".
func (a Authority) String() string {
	if a.Password == nil {
		return a.Username
	}
	return a.Username + ":" + *a.Password
}

// Host is either a Name or an Address.
type Host interface {
	fmt.Stringer
	isHost()
}

// Name is a host name made of labels joined by ".".
type Name string

func (Name) isHost() {}

func (n Name) String() string { return string(n) }

// Labels splits the name into its dot-separated labels.
func (n Name) Labels() []string { return strings.Split(string(n), ".") }

// Address is a dotted IPv4 address, octets in written order.
type Address [4]byte

func (Address) isHost() {}

func (a Address) String() string { return a.Addr().String() }

// Addr converts the address to a netip.Addr.
func (a Address) Addr() netip.Addr { return netip.AddrFrom4(a) }

// Path is the ordered list of non-empty path segments.
type Path []string

// String renders the path with a leading "/".
func (p Path) String() string {
	return "/" + strings.Join(p, "/")
}

// QueryParam is one key=value pair of a query.
type QueryParam struct {
	Key   string
	Value string
}

// QueryParams keeps the pairs of a query in input order. Duplicate keys are
// preserved.
type QueryParams []QueryParam

// Get returns the value of the first pair with the given key.
func (q QueryParams) Get(key string) (string, bool) {
	for _, p := range q {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Values returns the values of every pair with the given key, in order.
func (q QueryParams) Values(key string) []string {
	var out []string
	for _, p := range q {
		if p.Key == key {
			out = append(out, p.Value)
		}
	}
	return out
}

// String renders the pairs joined by "&", without the leading "?".
func (q QueryParams) String() string {
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	return b.String()
}
