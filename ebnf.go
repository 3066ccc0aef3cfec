package scene

import (
	"strings"

	"golang.org/x/exp/ebnf"
)

// Grammar of the scene language in the EBNF dialect of "golang.org/x/exp/ebnf".
//
// Upper-case productions are syntactic, lower-case productions are lexical. Newlines end
// expressions and are otherwise insignificant, which EBNF has no way to say, so they are omitted.
const Grammar = `
Program     = { Statement } .
Statement   = Declaration | Shape | Move | Reset | Color | For | Conditional .
Declaration = ident ":" Expr .
Shape       = ( "circle" | "square" ) [ Expr [ Expr ] ] .
Move        = "move" Expr "," Expr .
Reset       = "reset_m" .
Color       = "color" Expr Expr Expr .
For         = "for" [ "+" | "-" ] integer "{" Program "}" .
Conditional = "if" BoolExpr Program { "else" "if" BoolExpr Program } [ "else" Program ] "end" "if" .
BoolExpr    = BoolTerm { "or" BoolTerm } .
BoolTerm    = BoolFactor { "and" BoolFactor } .
BoolFactor  = "(" BoolExpr ")" | Comparison | "true" | "false" .
Comparison  = Expr ( "<=" | ">=" | "=" | "<" | ">" ) Expr .
Expr        = Term { ( "+" | "-" ) Term } .
Term        = Factor { ( "*" | "/" ) Factor } .
Factor      = "(" Expr ")" | "sin" "(" Expr ")" | "cos" "(" Expr ")" | "time" | number | ident .

number      = [ "+" | "-" ] mantissa [ exponent ] .
mantissa    = digits [ "." { digit } ] | "." digits .
exponent    = ( "e" | "E" ) [ "+" | "-" ] digits .
integer     = digits .
ident       = letter { letter | digit } .
digits      = digit { digit } .
digit       = "0" … "9" .
letter      = "a" … "z" | "A" … "Z" | "_" .
`

// VerifyGrammar parses Grammar and checks that every production is defined and reachable from
// Program.
func VerifyGrammar() error {
	grammar, err := ebnf.Parse("scene.ebnf", strings.NewReader(Grammar))
	if err != nil {
		return err
	}
	return ebnf.Verify(grammar, "Program")
}
