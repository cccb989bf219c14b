package ast

// FunctionDeclaration and FunctionExpression share this shape; spec §3
// requires FunctionDeclaration.Id and makes FunctionExpression.Id optional,
// which is the only structural difference between the two variants. The
// source this was distilled from built a FunctionDeclarationNode even for
// ParseFunctionExpression's call sites — fixed here by giving the
// expression form its own type, actually used by the parser.
type (
	FunctionDeclaration struct {
		Function  Idx
		Id        *Identifier
		Params    []*Identifier
		Body      *BlockStatement
		Generator bool
		Async     bool
	}

	FunctionExpression struct {
		Function  Idx
		Id        *Identifier // optional
		Params    []*Identifier
		Body      *BlockStatement
		Generator bool
		Async     bool
	}
)

func (*FunctionDeclaration) _stmt() {}
func (*FunctionExpression) _expr()  {}

func (n *FunctionDeclaration) Idx0() Idx { return n.Function }
func (n *FunctionExpression) Idx0() Idx  { return n.Function }
