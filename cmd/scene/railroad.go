package main

import (
	"fmt"
	"strings"

	"github.com/alecthomas/repr"
	"golang.org/x/exp/ebnf"
	"golang.org/x/exp/slices"
)

const railroadHeader = `<!DOCTYPE html>
<style>
body {
	background-color: hsl(30,20%, 95%);
}
h1 {
	font-family: sans-serif;
	font-size: 1em;
}
</style>
<!-- From https://github.com/tabatkins/railroad-diagrams -->
<link rel='stylesheet' href='railroad-diagrams.css'>
<script src='railroad-diagrams.js'></script>
<body>
`

// railroad renders one diagram per production, in the order the productions are written.
func railroad(grammar ebnf.Grammar) string {
	productions := make([]*ebnf.Production, 0, len(grammar))
	for _, p := range grammar {
		productions = append(productions, p)
	}
	slices.SortFunc(productions, func(a, b *ebnf.Production) int {
		return a.Pos().Offset - b.Pos().Offset
	})
	s := railroadHeader
	for _, p := range productions {
		s += `<h1 id="` + p.Name.String + `">` + p.Name.String + "</h1>\n"
		s += "<script>\n"
		s += "Diagram(" + generate(p.Expr) + ").addTo();\n"
		s += "</script>\n"
	}
	s += "</body>\n"
	return s
}

func generate(n ebnf.Expression) string {
	switch n := n.(type) {
	case nil:
		return "Skip()"

	case ebnf.Alternative:
		return "Choice(0, " + generateAll(n) + ")"

	case ebnf.Sequence:
		return "Sequence(" + generateAll(n) + ")"

	case *ebnf.Name:
		return fmt.Sprintf("NonTerminal(%q, {href:\"#%s\"})", n.String, n.String)

	case *ebnf.Token:
		return fmt.Sprintf("Terminal(%q)", n.String)

	case *ebnf.Range:
		return fmt.Sprintf("Terminal(%q)", n.Begin.String+"…"+n.End.String)

	case *ebnf.Group:
		return generate(n.Body)

	case *ebnf.Option:
		return "Optional(" + generate(n.Body) + ")"

	case *ebnf.Repetition:
		return "ZeroOrMore(" + generate(n.Body) + ")"
	}
	panic(repr.String(n))
}

func generateAll(nodes []ebnf.Expression) string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = generate(n)
	}
	return strings.Join(out, ", ")
}
