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

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/emicklei/dot"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v4"

	"github.com/jplu/weburi/internal/config"
)

// Write encodes v to w in the given format.
func Write(w io.Writer, format string, v *View) error {
	var err error
	switch format {
	case config.FormatText:
		_, err = io.WriteString(w, Text(v))
	case config.FormatJSON:
		err = json.NewEncoder(w).Encode(v)
	case config.FormatMsgpack:
		err = msgpack.NewEncoder(w).Encode(v)
	case config.FormatDump:
		_, err = io.WriteString(w, spew.Sdump(v))
	case config.FormatDOT:
		_, err = io.WriteString(w, Graph(v).String())
	default:
		return errors.Errorf("unknown format %q", format)
	}
	return errors.Wrapf(err, "writing %s", format)
}

// Text renders v as "field: value" lines followed by a blank line.
func Text(v *View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "input: %s\n", v.Input)
	if v.Error != nil {
		fmt.Fprintf(&b, "error: %s\n", v.Error.Message)
		for i, e := range v.Error.Chain {
			cause := e.Kind
			if e.Context != "" {
				cause = "in " + e.Context
			}
			fmt.Fprintf(&b, "  %d: offset %d: %s\n", i, e.Offset, cause)
		}
		b.WriteByte('\n')
		return b.String()
	}
	fmt.Fprintf(&b, "scheme: %s\n", v.Scheme)
	if v.Authority != nil {
		fmt.Fprintf(&b, "username: %s\n", v.Authority.Username)
		if v.Authority.Password != nil {
			fmt.Fprintf(&b, "password: %s\n", *v.Authority.Password)
		}
	}
	fmt.Fprintf(&b, "host: %s (%s)\n", v.Host, v.HostKind)
	if v.Port != nil {
		fmt.Fprintf(&b, "port: %d\n", *v.Port)
	}
	if v.Path != nil {
		fmt.Fprintf(&b, "path: %s\n", strconv.Quote(strings.Join(v.Path, "/")))
	}
	for _, q := range v.Query {
		fmt.Fprintf(&b, "query: %s = %s\n", q.Key, q.Value)
	}
	if v.Fragment != nil {
		fmt.Fprintf(&b, "fragment: %s\n", *v.Fragment)
	}
	if v.Remainder != "" {
		fmt.Fprintf(&b, "remainder: %s\n", v.Remainder)
	}
	b.WriteByte('\n')
	return b.String()
}

// Graph builds a Graphviz graph with the URI as root and one node per
// present component. Path segments and query pairs are chained in order.
func Graph(v *View) *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "LR")
	root := g.Node("uri")
	root.Attr("label", v.Input)

	if v.Error != nil {
		n := g.Node("error")
		n.Attr("label", v.Error.Message)
		g.Edge(root, n)
		return g
	}

	child := func(id, label string) dot.Node {
		n := g.Node(id)
		n.Attr("label", label)
		g.Edge(root, n)
		return n
	}
	child("scheme", "scheme: "+v.Scheme)
	if v.Authority != nil {
		child("authority", "user: "+v.Authority.Username)
	}
	child("host", v.HostKind+": "+v.Host)
	if v.Port != nil {
		child("port", "port: "+strconv.Itoa(int(*v.Port)))
	}
	if v.Path != nil {
		prev := child("path", "path")
		for i, s := range v.Path {
			n := g.Node("path/" + strconv.Itoa(i))
			n.Attr("label", s)
			g.Edge(prev, n)
			prev = n
		}
	}
	if v.Query != nil {
		prev := child("query", "query")
		for i, q := range v.Query {
			n := g.Node("query/" + strconv.Itoa(i))
			n.Attr("label", q.Key+"="+q.Value)
			g.Edge(prev, n)
			prev = n
		}
	}
	if v.Fragment != nil {
		child("fragment", "#"+*v.Fragment)
	}
	return g
}
