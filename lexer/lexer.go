package lexer

import (
	"fmt"
	"strings"

	plexer "github.com/alecthomas/participle/v2/lexer"
)

type (
	// Token is a single lexed token.
	Token = plexer.Token
	// Position of a token in the source.
	Position = plexer.Position
	// TokenType of a Token.
	TokenType = plexer.TokenType
	// PeekingLexer is participle's rewindable token cursor.
	PeekingLexer = plexer.PeekingLexer
	// Checkpoint of a PeekingLexer, restored with LoadCheckpoint.
	Checkpoint = plexer.Checkpoint
)

// Definition of the scene lexer.
var Definition = plexer.MustSimple([]plexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Newline", Pattern: `[\r\n]+`},
	{Name: "Whitespace", Pattern: `[ \t\f\v]+`},
	{Name: "Number", Pattern: `(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Operator", Pattern: `<=|>=|[-+*/()=<>:,{}]`},
	{Name: "Invalid", Pattern: `.`},
})

var symbols = Definition.Symbols()

// Token types produced by Lex.
var (
	EOF      = plexer.EOF
	Newline  = symbols["Newline"]
	Number   = symbols["Number"]
	Ident    = symbols["Ident"]
	Operator = symbols["Operator"]
	Invalid  = symbols["Invalid"]

	comment    = symbols["Comment"]
	whitespace = symbols["Whitespace"]
)

var names = plexer.SymbolsByRune(Definition)

// TypeName returns the symbolic name of a token type, eg. "Ident".
func TypeName(t TokenType) string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// Upgrade lexes src into a PeekingLexer that elides comments and horizontal whitespace.
func Upgrade(filename, src string) (*PeekingLexer, error) {
	lex, err := Definition.LexString(filename, src)
	if err != nil {
		return nil, err
	}
	plex, err := plexer.Upgrade(lex, comment, whitespace)
	if err != nil {
		return nil, err
	}
	return plex, nil
}

// Lex src into the tokens the parser sees, terminated by an EOF token.
func Lex(filename, src string) ([]Token, error) {
	plex, err := Upgrade(filename, src)
	if err != nil {
		return nil, err
	}
	tokens := []Token{}
	for {
		tok := *plex.Next()
		tokens = append(tokens, tok)
		if tok.EOF() {
			return tokens, nil
		}
	}
}

// Describe a token for use in diagnostics.
func Describe(tok Token) string {
	switch {
	case tok.EOF():
		return "end of input"
	case tok.Type == Newline:
		return "end of line"
	case tok.Type == Ident && IsKeyword(tok.Value):
		return fmt.Sprintf("keyword %q", tok.Value)
	default:
		return fmt.Sprintf("%s %q", strings.ToLower(TypeName(tok.Type)), tok.Value)
	}
}
