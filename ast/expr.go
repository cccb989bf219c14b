package ast

import "github.com/jameslahm/yajp/token"

// Expr is the closed family of expression node variants. The _expr marker
// method closes the family the way a sum type would in a language with
// native variants: only types in this package can satisfy it.
type Expr interface {
	Node
	VisitableNode
	GenJs() string
	_expr()
}

type (
	// UnaryExpression covers the prefix operator keywords/tokens
	// (+ - ! ~ typeof void delete throw); spec §4.3 dispatches all of
	// them to the same production.
	UnaryExpression struct {
		Idx      Idx
		Operator token.UnaryOperator
		Operand  Expr
	}

	// BinaryExpression is always left-associative within a precedence
	// class; see parser.parseBinaryExpression for the precedence-climbing
	// construction that guarantees this.
	BinaryExpression struct {
		Operator token.BinaryOperator
		Left     Expr
		Right    Expr
	}

	// CallExpression.Arguments accepts arbitrary expressions, not just
	// identifiers — the source this was distilled from restricted call
	// arguments to identifiers only; this is the documented fix.
	CallExpression struct {
		Callee           Expr
		Arguments        []Expr
		RightParenthesis Idx
	}

	// ParenthesizedExpression records an explicit "( ... )" the source
	// wrote; GenJs re-emits it literally so precedence survives a
	// gen/reparse round trip without the generator inferring where
	// parens are needed.
	ParenthesizedExpression struct {
		LeftParenthesis Idx
		Expression      Expr
	}
)

func (*UnaryExpression) _expr()         {}
func (*BinaryExpression) _expr()        {}
func (*CallExpression) _expr()          {}
func (*ParenthesizedExpression) _expr() {}

func (n *UnaryExpression) Idx0() Idx         { return n.Idx }
func (n *BinaryExpression) Idx0() Idx        { return n.Left.Idx0() }
func (n *CallExpression) Idx0() Idx          { return n.Callee.Idx0() }
func (n *ParenthesizedExpression) Idx0() Idx { return n.LeftParenthesis }
