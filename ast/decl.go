package ast

import "github.com/jameslahm/yajp/token"

type (
	// VariableDeclaration.Token carries the kind (var/let/const) as the
	// lexer token that introduced it, matching how the parser already
	// has that token in hand at the point of construction.
	VariableDeclaration struct {
		Idx   Idx
		Token token.Token
		List  []*VariableDeclarator
	}

	VariableDeclarator struct {
		Id          *Identifier
		Initializer Expr // optional
	}
)

func (*VariableDeclaration) _stmt() {}

func (n *VariableDeclaration) Idx0() Idx { return n.Idx }
func (n *VariableDeclarator) Idx0() Idx  { return n.Id.Idx0() }

// Kind renders the declaration keyword exactly as the lexer saw it.
func (n *VariableDeclaration) Kind() string {
	switch n.Token {
	case token.Var:
		return "var"
	case token.Let:
		return "let"
	case token.Const:
		return "const"
	}
	return ""
}
