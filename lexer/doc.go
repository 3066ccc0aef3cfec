// Package lexer tokenizes scene source text.
//
// Tokenization is delegated to a Participle simple lexer. Comments and horizontal whitespace are
// elided and newlines are kept, as they terminate expressions. Any rune the grammar does not know
// about is emitted as an Invalid token rather than failing the lex.
package lexer
