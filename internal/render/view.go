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

// Package render turns parse results into the output formats of uriparse.
package render

import (
	"errors"

	"github.com/jplu/weburi/parse"
	"github.com/jplu/weburi/uri"
)

// Host kinds reported in views.
const (
	HostKindName = "name"
	HostKindIPv4 = "ipv4"
)

// View is the serializable result of parsing one input. Path and Query are
// null when absent and empty lists when present without elements.
type View struct {
	Input     string         `json:"input" msgpack:"input"`
	Remainder string         `json:"remainder" msgpack:"remainder"`
	Scheme    string         `json:"scheme,omitempty" msgpack:"scheme,omitempty"`
	Authority *AuthorityView `json:"authority" msgpack:"authority"`
	Host      string         `json:"host,omitempty" msgpack:"host,omitempty"`
	HostKind  string         `json:"host_kind,omitempty" msgpack:"host_kind,omitempty"`
	Port      *uint16        `json:"port" msgpack:"port"`
	Path      []string       `json:"path" msgpack:"path"`
	Query     []QueryView    `json:"query" msgpack:"query"`
	Fragment  *string        `json:"fragment" msgpack:"fragment"`
	Error     *ErrorView     `json:"error,omitempty" msgpack:"error,omitempty"`
}

// AuthorityView is the user information of a URI.
type AuthorityView struct {
	Username string  `json:"username" msgpack:"username"`
	Password *string `json:"password" msgpack:"password"`
}

// QueryView is one query pair.
type QueryView struct {
	Key   string `json:"key" msgpack:"key"`
	Value string `json:"value" msgpack:"value"`
}

// ErrorView describes a failed parse.
type ErrorView struct {
	Message string      `json:"message" msgpack:"message"`
	Chain   []EntryView `json:"chain,omitempty" msgpack:"chain,omitempty"`
}

// EntryView is one frame of a failure chain, innermost first.
type EntryView struct {
	Offset  int    `json:"offset" msgpack:"offset"`
	Kind    string `json:"kind,omitempty" msgpack:"kind,omitempty"`
	Context string `json:"context,omitempty" msgpack:"context,omitempty"`
}

// NewView builds the view of a parse of input. err may be nil.
func NewView(input, remainder string, u *uri.URI, err error) *View {
	v := &View{Input: input, Remainder: remainder}
	if err != nil {
		v.Remainder = ""
		v.Error = newErrorView(input, err)
		return v
	}
	if u == nil {
		return v
	}

	v.Scheme = u.Scheme.String()
	if u.Authority != nil {
		v.Authority = &AuthorityView{Username: u.Authority.Username, Password: u.Authority.Password}
	}
	switch h := u.Host.(type) {
	case uri.Name:
		v.Host, v.HostKind = string(h), HostKindName
	case uri.Address:
		v.Host, v.HostKind = h.String(), HostKindIPv4
	}
	v.Port = u.Port
	if u.Path != nil {
		v.Path = append(make([]string, 0, len(u.Path)), u.Path...)
	}
	if u.Query != nil {
		v.Query = make([]QueryView, 0, len(u.Query))
		for _, p := range u.Query {
			v.Query = append(v.Query, QueryView{Key: p.Key, Value: p.Value})
		}
	}
	v.Fragment = u.Fragment
	return v
}

func newErrorView(input string, err error) *ErrorView {
	ev := &ErrorView{Message: err.Error()}
	var pe *parse.Error
	if !errors.As(err, &pe) {
		return ev
	}
	for _, e := range pe.Entries {
		entry := EntryView{Offset: len(input) - len(e.Input), Context: e.Context}
		if !e.IsContext() {
			entry.Kind = e.Kind.String()
		}
		ev.Chain = append(ev.Chain, entry)
	}
	return ev
}

// Evaluate parses input and returns its view. In strict mode trailing text
// is an error instead of a remainder.
func Evaluate(input string, strict bool) *View {
	if strict {
		u, err := uri.Parse(input)
		return NewView(input, "", u, err)
	}
	rest, u, err := uri.ParseURI(input)
	return NewView(input, rest, u, err)
}

// OK reports whether the view holds a successful parse.
func (v *View) OK() bool { return v.Error == nil }
