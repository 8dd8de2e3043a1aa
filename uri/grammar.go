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
	"strconv"
	"strings"

	"github.com/jplu/weburi/parse"
)

// Context names reported in error chains.
const (
	ContextURI       = "uri"
	ContextScheme    = "scheme"
	ContextAuthority = "authority"
	ContextHost      = "host"
	ContextIP        = "ip"
	ContextIPNumber  = "ip number"
	ContextIPOrHost  = "ip or host"
	ContextPort      = "port"
	ContextPath      = "path"
	ContextQuery     = "query"
	ContextFragment  = "fragment"
)

const (
	decimalDigits = "0123456789"
	// ipv4Groups is the number of dotted groups of an IPv4 address.
	ipv4Groups = 4
	// maxGroupDigits bounds the digits read for one IPv4 group.
	maxGroupDigits = 3
)

var scheme = parse.Context(ContextScheme, parse.Map(
	parse.Alt(parse.TagNoCase("http://"), parse.TagNoCase("https://")),
	schemeFromLiteral,
))

// ParseScheme consumes "http://" or "https://" in any case.
func ParseScheme(input string) (string, Scheme, error) {
	return scheme(input)
}

var authority = parse.Context(ContextAuthority, parse.Map(
	parse.Terminated(
		parse.SeparatedPair(parse.Alphanumeric1, parse.Opt(parse.Tag(":")), parse.Opt(parse.Alphanumeric1)),
		parse.Tag("@"),
	),
	func(p parse.Pair[string, *string]) Authority {
		return Authority{Username: p.First, Password: p.Second}
	},
))

// ParseAuthority consumes "user@" or "user:password@". On failure nothing
// is consumed; callers decide whether a missing authority is an error.
func ParseAuthority(input string) (string, Authority, error) {
	return authority(input)
}

// label is a maximal run of ASCII letters, digits and hyphens.
var label = parse.AlphanumericHyphen1

var host = parse.Context(ContextHost, parse.Map(
	parse.Alt(
		parse.Map(
			parse.PairOf(parse.Many1(parse.Terminated(label, parse.Tag("."))), parse.Alpha1),
			func(p parse.Pair[[]string, string]) []string {
				return append(p.First, p.Second)
			},
		),
		parse.ManyMN(1, 1, label),
	),
	func(labels []string) Host { return Name(strings.Join(labels, ".")) },
))

// ParseHost consumes a host name: dot-separated labels ending with an
// alphabetic top-level label, or a single bare label.
func ParseHost(input string) (string, Host, error) {
	return host(input)
}

func parseOctet(digits string) (byte, error) {
	n, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		return 0, err
	}
	return byte(n), nil
}

// ipNumber reads at most three digits, so "1444" yields 144 and leaves "4".
var ipNumber = parse.Context(ContextIPNumber, parse.MapRes(
	parse.Recognize(parse.ManyMN(1, maxGroupDigits, parse.OneOf(decimalDigits))),
	parseOctet,
))

var ipv4 = parse.Context(ContextIP, parse.Map(
	parse.PairOf(parse.Count(parse.Terminated(ipNumber, parse.Tag(".")), ipv4Groups-1), ipNumber),
	func(p parse.Pair[[]byte, byte]) Host {
		var a Address
		copy(a[:], p.First)
		a[ipv4Groups-1] = p.Second
		return a
	},
))

// ParseIPv4 consumes a dotted-decimal IPv4 address.
func ParseIPv4(input string) (string, Host, error) {
	return ipv4(input)
}

var hostOrIP = parse.Context(ContextIPOrHost, parse.Alt(ipv4, host))

// ParseHostOrIP consumes an IPv4 address or, failing that, a host name.
func ParseHostOrIP(input string) (string, Host, error) {
	return hostOrIP(input)
}

func parsePortNumber(digits string) (uint16, error) {
	n, err := strconv.ParseUint(digits, 10, 16)
	if err != nil {
		return 0, err
	}
	return uint16(n), nil
}

var port = parse.Context(ContextPort, parse.Preceded(
	parse.Tag(":"),
	parse.MapRes(parse.Digit1, parsePortNumber),
))

// ParsePort consumes ":" followed by a decimal port number.
func ParsePort(input string) (string, uint16, error) {
	return port(input)
}

var segment = parse.IsNot("/?#")

var path = parse.Context(ContextPath, parse.Map(
	parse.Preceded(
		parse.Tag("/"),
		parse.PairOf(parse.Many0(parse.Terminated(segment, parse.Tag("/"))), parse.Opt(segment)),
	),
	func(p parse.Pair[[]string, *string]) Path {
		segments := make(Path, 0, len(p.First)+1)
		segments = append(segments, p.First...)
		if p.Second != nil {
			segments = append(segments, *p.Second)
		}
		return segments
	},
))

// ParsePath consumes "/" followed by "/"-separated segments. A trailing
// slash does not produce an empty segment.
func ParsePath(input string) (string, Path, error) {
	return path(input)
}

var queryParam = parse.Map(
	parse.SeparatedPair(parse.IsNot("=&#"), parse.Tag("="), parse.TakeNoneOf("&#")),
	func(p parse.Pair[string, string]) QueryParam {
		return QueryParam{Key: p.First, Value: p.Second}
	},
)

var query = parse.Context(ContextQuery, parse.Map(
	parse.Preceded(
		parse.Tag("?"),
		parse.PairOf(queryParam, parse.Many0(parse.Preceded(parse.Tag("&"), queryParam))),
	),
	func(p parse.Pair[QueryParam, []QueryParam]) QueryParams {
		params := make(QueryParams, 0, len(p.Second)+1)
		params = append(params, p.First)
		return append(params, p.Second...)
	},
))

// ParseQuery consumes "?" followed by "&"-separated key=value pairs.
func ParseQuery(input string) (string, QueryParams, error) {
	return query(input)
}

var fragment = parse.Context(ContextFragment, parse.Preceded(parse.Tag("#"), parse.Rest))

// ParseFragment consumes "#" and everything after it.
func ParseFragment(input string) (string, string, error) {
	return fragment(input)
}
