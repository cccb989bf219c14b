// Package token defines the closed set of lexical categories the scanner
// recognises, plus the unary/binary operator enumerations spec §3 requires.
package token

import "slices"

// Token is a pair (kind, lexeme) reduced to just the kind; the lexeme
// (identifier text, numeric text, string text) travels alongside it on the
// scanner, not inside the Token value itself.
type Token int

const (
	Illegal Token = iota
	Eof

	// literals
	Identifier
	Numeric
	String
	Boolean
	Null

	// punctuation
	LeftBrace
	RightBrace
	LeftParenthesis
	RightParenthesis
	Semicolon
	Colon
	Comma

	// single-character operators
	Plus
	Minus
	Star
	Slash
	Not
	BitNot

	// the equal family
	Assign
	Equal
	StrictEqual

	// declared for the default precedence table (§4.3); the scanner never
	// emits these two — the grammar this parser recognises only reaches
	// +, -, *, / as binary operators, exactly as in the source this was
	// distilled from (whose own precedence table carries the same dead
	// entries, now documented rather than accidental — see DESIGN.md).
	Less
	ShiftLeft

	// keywords (true/false/null share this table but surface as the
	// Boolean/Null literal kinds above, not as their own token)
	keywordBeg
	Const
	Let
	Var
	Function
	Return
	Break
	Continue
	If
	Else
	Switch
	Case
	Default
	For
	In
	Of
	While
	Do
	Throw
	Try
	Catch
	Finally
	Async
	Await
	TypeOf
	Void
	Delete
	Debugger
	Import
	Export
	From
	As
	keywordEnd
)

var tokenNames = map[Token]string{
	Illegal:          "ILLEGAL",
	Eof:              "EOF",
	Identifier:       "IDENTIFIER",
	Numeric:          "NUMERIC",
	String:           "STRING",
	Boolean:          "BOOLEAN",
	Null:             "null",
	LeftBrace:        "{",
	RightBrace:       "}",
	LeftParenthesis:  "(",
	RightParenthesis: ")",
	Semicolon:        ";",
	Colon:            ":",
	Comma:            ",",
	Plus:             "+",
	Minus:            "-",
	Star:             "*",
	Slash:            "/",
	Not:              "!",
	BitNot:           "~",
	Assign:           "=",
	Equal:            "==",
	StrictEqual:      "===",
	Less:             "<",
	ShiftLeft:        "<<",
	Const:            "const",
	Let:              "let",
	Var:              "var",
	Function:         "function",
	Return:           "return",
	Break:            "break",
	Continue:         "continue",
	If:               "if",
	Else:             "else",
	Switch:           "switch",
	Case:             "case",
	Default:          "default",
	For:              "for",
	In:               "in",
	Of:               "of",
	While:            "while",
	Do:               "do",
	Throw:            "throw",
	Try:              "try",
	Catch:            "catch",
	Finally:          "finally",
	Async:            "async",
	Await:            "await",
	TypeOf:           "typeof",
	Void:             "void",
	Delete:           "delete",
	Debugger:         "debugger",
	Import:           "import",
	Export:           "export",
	From:             "from",
	As:               "as",
}

func (t Token) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// keywords maps every reserved word the lexer's keyword table knows about
// to its token. A run of alphabetic/digit/underscore characters that isn't
// in this table is an Identifier, per spec §4.1 step 2.
var keywords = map[string]Token{
	"const":    Const,
	"let":      Let,
	"var":      Var,
	"function": Function,
	"return":   Return,
	"break":    Break,
	"continue": Continue,
	"if":       If,
	"else":     Else,
	"switch":   Switch,
	"case":     Case,
	"default":  Default,
	"for":      For,
	"in":       In,
	"of":       Of,
	"while":    While,
	"do":       Do,
	"throw":    Throw,
	"try":      Try,
	"catch":    Catch,
	"finally":  Finally,
	"async":    Async,
	"await":    Await,
	"typeof":   TypeOf,
	"void":     Void,
	"delete":   Delete,
	"debugger": Debugger,
	"true":     Boolean,
	"false":    Boolean,
	"null":     Null,
	"import":   Import,
	"export":   Export,
	"from":     From,
	"as":       As,
}

// Lookup resolves an identifier-shaped run of characters to a keyword
// token, or reports it's a plain Identifier.
func Lookup(literal string) (tok Token, isKeyword bool) {
	if tok, ok := keywords[literal]; ok {
		return tok, true
	}
	return Identifier, false
}

// IsKeyword reports whether t is one of the reserved-word tokens (as
// opposed to Boolean/Null, which share the keyword table but are literal
// kinds, not keywords, per spec §3).
func (t Token) IsKeyword() bool {
	return t > keywordBeg && t < keywordEnd
}

// Keywords returns every reserved word the scanner recognises, sorted for
// deterministic iteration in tests.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for w := range keywords {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}
