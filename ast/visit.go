package ast

// Visitor is a single-interface polymorphic walker: one method per node
// variant. NoopVisitor supplies the default-recursive implementation for
// all of them, so a client embeds it and overrides only the methods it
// cares about.
type Visitor interface {
	VisitProgram(node *Program)

	VisitIdentifier(node *Identifier)
	VisitBooleanLiteral(node *BooleanLiteral)
	VisitNullLiteral(node *NullLiteral)
	VisitNumberLiteral(node *NumberLiteral)
	VisitStringLiteral(node *StringLiteral)
	VisitUnaryExpression(node *UnaryExpression)
	VisitBinaryExpression(node *BinaryExpression)
	VisitCallExpression(node *CallExpression)
	VisitParenthesizedExpression(node *ParenthesizedExpression)
	VisitFunctionExpression(node *FunctionExpression)

	VisitExpressionStatement(node *ExpressionStatement)
	VisitBlockStatement(node *BlockStatement)
	VisitEmptyStatement(node *EmptyStatement)
	VisitDebuggerStatement(node *DebuggerStatement)
	VisitReturnStatement(node *ReturnStatement)
	VisitContinueStatement(node *ContinueStatement)
	VisitBreakStatement(node *BreakStatement)
	VisitIfStatement(node *IfStatement)
	VisitSwitchStatement(node *SwitchStatement)
	VisitSwitchCase(node *SwitchCase)
	VisitWhileStatement(node *WhileStatement)
	VisitDoWhileStatement(node *DoWhileStatement)
	VisitForStatement(node *ForStatement)
	VisitForInStatement(node *ForInStatement)
	VisitForOfStatement(node *ForOfStatement)
	VisitThrowStatement(node *ThrowStatement)
	VisitCatchClause(node *CatchClause)
	VisitTryStatement(node *TryStatement)

	VisitVariableDeclaration(node *VariableDeclaration)
	VisitVariableDeclarator(node *VariableDeclarator)
	VisitFunctionDeclaration(node *FunctionDeclaration)

	VisitImportDeclaration(node *ImportDeclaration)
	VisitNamedImportSpecifier(node *NamedImportSpecifier)
	VisitImportDefaultSpecifier(node *ImportDefaultSpecifier)
	VisitImportNamespaceSpecifier(node *ImportNamespaceSpecifier)
	VisitExportNamedDeclaration(node *ExportNamedDeclaration)
	VisitExportDefaultDeclaration(node *ExportDefaultDeclaration)
	VisitExportAllDeclaration(node *ExportAllDeclaration)
	VisitNamedExportSpecifier(node *NamedExportSpecifier)
	VisitExportDefaultSpecifier(node *ExportDefaultSpecifier)
	VisitExportNamespaceSpecifier(node *ExportNamespaceSpecifier)
}

// NoopVisitor recurses into every child in source order and does nothing
// else; embed it, set V to the outermost visitor, and override only the
// methods a traversal cares about.
//
// V exists because Go's embedding is not virtual dispatch: a client that
// embeds *NoopVisitor and overrides only VisitIdentifier would, without V,
// have every other default method recurse via the embedded NoopVisitor
// itself, never re-entering the client's override. Recursing through
// node.VisitChildrenWith(nv.V) instead routes every step back through the
// outermost visitor, so set V to self before traversing, e.g.:
//
//	v := &myVisitor{}
//	v.V = v
//	program.VisitWith(v)
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) VisitProgram(node *Program) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitIdentifier(node *Identifier) {}
func (nv *NoopVisitor) VisitBooleanLiteral(node *BooleanLiteral) {}
func (nv *NoopVisitor) VisitNullLiteral(node *NullLiteral) {}
func (nv *NoopVisitor) VisitNumberLiteral(node *NumberLiteral) {}
func (nv *NoopVisitor) VisitStringLiteral(node *StringLiteral) {}

func (nv *NoopVisitor) VisitUnaryExpression(node *UnaryExpression) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBinaryExpression(node *BinaryExpression) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitCallExpression(node *CallExpression) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitParenthesizedExpression(node *ParenthesizedExpression) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitFunctionExpression(node *FunctionExpression) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitExpressionStatement(node *ExpressionStatement) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitBlockStatement(node *BlockStatement) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitEmptyStatement(node *EmptyStatement) {}
func (nv *NoopVisitor) VisitDebuggerStatement(node *DebuggerStatement) {}
func (nv *NoopVisitor) VisitReturnStatement(node *ReturnStatement) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitContinueStatement(node *ContinueStatement) {}
func (nv *NoopVisitor) VisitBreakStatement(node *BreakStatement) {}
func (nv *NoopVisitor) VisitIfStatement(node *IfStatement) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSwitchStatement(node *SwitchStatement) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSwitchCase(node *SwitchCase) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitWhileStatement(node *WhileStatement) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitDoWhileStatement(node *DoWhileStatement) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitForStatement(node *ForStatement) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitForInStatement(node *ForInStatement) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitForOfStatement(node *ForOfStatement) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitThrowStatement(node *ThrowStatement) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitCatchClause(node *CatchClause) { node.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitTryStatement(node *TryStatement) { node.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitVariableDeclaration(node *VariableDeclaration) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitVariableDeclarator(node *VariableDeclarator) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitFunctionDeclaration(node *FunctionDeclaration) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitImportDeclaration(node *ImportDeclaration) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitNamedImportSpecifier(node *NamedImportSpecifier) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitImportDefaultSpecifier(node *ImportDefaultSpecifier) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitImportNamespaceSpecifier(node *ImportNamespaceSpecifier) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitExportNamedDeclaration(node *ExportNamedDeclaration) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitExportDefaultDeclaration(node *ExportDefaultDeclaration) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitExportAllDeclaration(node *ExportAllDeclaration) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitNamedExportSpecifier(node *NamedExportSpecifier) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitExportDefaultSpecifier(node *ExportDefaultSpecifier) {
	node.VisitChildrenWith(nv.V)
}
func (nv *NoopVisitor) VisitExportNamespaceSpecifier(node *ExportNamespaceSpecifier) {
	node.VisitChildrenWith(nv.V)
}

// --- double dispatch: VisitWith calls the matching Visit<Variant> hook ---

func (n *Program) VisitWith(v Visitor) { v.VisitProgram(n) }
func (n *Program) VisitChildrenWith(v Visitor) {
	for _, s := range n.Body {
		s.VisitWith(v)
	}
}

func (n *Identifier) VisitWith(v Visitor) { v.VisitIdentifier(n) }
func (n *Identifier) VisitChildrenWith(v Visitor) {}
func (n *BooleanLiteral) VisitWith(v Visitor) { v.VisitBooleanLiteral(n) }
func (n *BooleanLiteral) VisitChildrenWith(v Visitor) {}
func (n *NullLiteral) VisitWith(v Visitor) { v.VisitNullLiteral(n) }
func (n *NullLiteral) VisitChildrenWith(v Visitor) {}
func (n *NumberLiteral) VisitWith(v Visitor) { v.VisitNumberLiteral(n) }
func (n *NumberLiteral) VisitChildrenWith(v Visitor) {}
func (n *StringLiteral) VisitWith(v Visitor) { v.VisitStringLiteral(n) }
func (n *StringLiteral) VisitChildrenWith(v Visitor) {}

func (n *UnaryExpression) VisitWith(v Visitor) { v.VisitUnaryExpression(n) }
func (n *UnaryExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *BinaryExpression) VisitWith(v Visitor) { v.VisitBinaryExpression(n) }
func (n *BinaryExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *CallExpression) VisitWith(v Visitor) { v.VisitCallExpression(n) }
func (n *CallExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	for _, a := range n.Arguments {
		a.VisitWith(v)
	}
}

func (n *ParenthesizedExpression) VisitWith(v Visitor) { v.VisitParenthesizedExpression(n) }
func (n *ParenthesizedExpression) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *FunctionExpression) VisitWith(v Visitor) { v.VisitFunctionExpression(n) }
func (n *FunctionExpression) VisitChildrenWith(v Visitor) {
	if n.Id != nil {
		n.Id.VisitWith(v)
	}
	for _, p := range n.Params {
		p.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *ExpressionStatement) VisitWith(v Visitor) { v.VisitExpressionStatement(n) }
func (n *ExpressionStatement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *BlockStatement) VisitWith(v Visitor) { v.VisitBlockStatement(n) }
func (n *BlockStatement) VisitChildrenWith(v Visitor) {
	for _, s := range n.Body {
		s.VisitWith(v)
	}
}

func (n *EmptyStatement) VisitWith(v Visitor) { v.VisitEmptyStatement(n) }
func (n *EmptyStatement) VisitChildrenWith(v Visitor) {}
func (n *DebuggerStatement) VisitWith(v Visitor) { v.VisitDebuggerStatement(n) }
func (n *DebuggerStatement) VisitChildrenWith(v Visitor) {}

func (n *ReturnStatement) VisitWith(v Visitor) { v.VisitReturnStatement(n) }
func (n *ReturnStatement) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *ContinueStatement) VisitWith(v Visitor) { v.VisitContinueStatement(n) }
func (n *ContinueStatement) VisitChildrenWith(v Visitor) {}
func (n *BreakStatement) VisitWith(v Visitor) { v.VisitBreakStatement(n) }
func (n *BreakStatement) VisitChildrenWith(v Visitor) {}

func (n *IfStatement) VisitWith(v Visitor) { v.VisitIfStatement(n) }
func (n *IfStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	if n.Alternate != nil {
		n.Alternate.VisitWith(v)
	}
}

func (n *SwitchStatement) VisitWith(v Visitor) { v.VisitSwitchStatement(n) }
func (n *SwitchStatement) VisitChildrenWith(v Visitor) {
	n.Discriminant.VisitWith(v)
	for _, c := range n.Cases {
		c.VisitWith(v)
	}
}

func (n *SwitchCase) VisitWith(v Visitor) { v.VisitSwitchCase(n) }
func (n *SwitchCase) VisitChildrenWith(v Visitor) {
	if n.Test != nil {
		n.Test.VisitWith(v)
	}
	for _, s := range n.Consequent {
		s.VisitWith(v)
	}
}

func (n *WhileStatement) VisitWith(v Visitor) { v.VisitWhileStatement(n) }
func (n *WhileStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *DoWhileStatement) VisitWith(v Visitor) { v.VisitDoWhileStatement(n) }
func (n *DoWhileStatement) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
	n.Test.VisitWith(v)
}

func (n *ForStatement) VisitWith(v Visitor) { v.VisitForStatement(n) }
func (n *ForStatement) VisitChildrenWith(v Visitor) {
	visitForInit(n.Init, v)
	if n.Test != nil {
		n.Test.VisitWith(v)
	}
	if n.Update != nil {
		n.Update.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *ForInStatement) VisitWith(v Visitor) { v.VisitForInStatement(n) }
func (n *ForInStatement) VisitChildrenWith(v Visitor) {
	visitForInit(n.Left, v)
	n.Right.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ForOfStatement) VisitWith(v Visitor) { v.VisitForOfStatement(n) }
func (n *ForOfStatement) VisitChildrenWith(v Visitor) {
	visitForInit(n.Left, v)
	n.Right.VisitWith(v)
	n.Body.VisitWith(v)
}

// visitForInit dispatches on the two possible shapes of a for-head's
// initializer/left-hand-side: a single-declarator VariableDeclaration or
// an arbitrary expression.
func visitForInit(init Node, v Visitor) {
	switch n := init.(type) {
	case nil:
	case *VariableDeclaration:
		n.VisitWith(v)
	case Expr:
		n.VisitWith(v)
	}
}

func (n *ThrowStatement) VisitWith(v Visitor) { v.VisitThrowStatement(n) }
func (n *ThrowStatement) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *CatchClause) VisitWith(v Visitor) { v.VisitCatchClause(n) }
func (n *CatchClause) VisitChildrenWith(v Visitor) {
	if n.Param != nil {
		n.Param.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *TryStatement) VisitWith(v Visitor) { v.VisitTryStatement(n) }
func (n *TryStatement) VisitChildrenWith(v Visitor) {
	n.Block.VisitWith(v)
	if n.Handler != nil {
		n.Handler.VisitWith(v)
	}
	if n.Finalizer != nil {
		n.Finalizer.VisitWith(v)
	}
}

func (n *VariableDeclaration) VisitWith(v Visitor) { v.VisitVariableDeclaration(n) }
func (n *VariableDeclaration) VisitChildrenWith(v Visitor) {
	for _, d := range n.List {
		d.VisitWith(v)
	}
}

func (n *VariableDeclarator) VisitWith(v Visitor) { v.VisitVariableDeclarator(n) }
func (n *VariableDeclarator) VisitChildrenWith(v Visitor) {
	n.Id.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *FunctionDeclaration) VisitWith(v Visitor) { v.VisitFunctionDeclaration(n) }
func (n *FunctionDeclaration) VisitChildrenWith(v Visitor) {
	n.Id.VisitWith(v)
	for _, p := range n.Params {
		p.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *ImportDeclaration) VisitWith(v Visitor) { v.VisitImportDeclaration(n) }
func (n *ImportDeclaration) VisitChildrenWith(v Visitor) {
	for _, s := range n.Specifiers {
		switch sp := s.(type) {
		case *NamedImportSpecifier:
			sp.VisitWith(v)
		case *ImportDefaultSpecifier:
			sp.VisitWith(v)
		case *ImportNamespaceSpecifier:
			sp.VisitWith(v)
		}
	}
	n.Source.VisitWith(v)
}

func (n *NamedImportSpecifier) VisitWith(v Visitor) { v.VisitNamedImportSpecifier(n) }
func (n *NamedImportSpecifier) VisitChildrenWith(v Visitor) {
	n.Imported.VisitWith(v)
	n.Local.VisitWith(v)
}

func (n *ImportDefaultSpecifier) VisitWith(v Visitor) { v.VisitImportDefaultSpecifier(n) }
func (n *ImportDefaultSpecifier) VisitChildrenWith(v Visitor) {
	n.Local.VisitWith(v)
}

func (n *ImportNamespaceSpecifier) VisitWith(v Visitor) { v.VisitImportNamespaceSpecifier(n) }
func (n *ImportNamespaceSpecifier) VisitChildrenWith(v Visitor) {
	n.Local.VisitWith(v)
}

func (n *ExportNamedDeclaration) VisitWith(v Visitor) { v.VisitExportNamedDeclaration(n) }
func (n *ExportNamedDeclaration) VisitChildrenWith(v Visitor) {
	if n.Declaration != nil {
		n.Declaration.VisitWith(v)
	}
	for _, s := range n.Specifiers {
		switch sp := s.(type) {
		case *NamedExportSpecifier:
			sp.VisitWith(v)
		case *ExportDefaultSpecifier:
			sp.VisitWith(v)
		case *ExportNamespaceSpecifier:
			sp.VisitWith(v)
		}
	}
	if n.Source != nil {
		n.Source.VisitWith(v)
	}
}

func (n *ExportDefaultDeclaration) VisitWith(v Visitor) { v.VisitExportDefaultDeclaration(n) }
func (n *ExportDefaultDeclaration) VisitChildrenWith(v Visitor) {
	switch d := n.Declaration.(type) {
	case Stmt:
		d.VisitWith(v)
	case Expr:
		d.VisitWith(v)
	}
}

func (n *ExportAllDeclaration) VisitWith(v Visitor) { v.VisitExportAllDeclaration(n) }
func (n *ExportAllDeclaration) VisitChildrenWith(v Visitor) {
	n.Source.VisitWith(v)
}

func (n *NamedExportSpecifier) VisitWith(v Visitor) { v.VisitNamedExportSpecifier(n) }
func (n *NamedExportSpecifier) VisitChildrenWith(v Visitor) {
	n.Local.VisitWith(v)
	n.Exported.VisitWith(v)
}

func (n *ExportDefaultSpecifier) VisitWith(v Visitor) { v.VisitExportDefaultSpecifier(n) }
func (n *ExportDefaultSpecifier) VisitChildrenWith(v Visitor) {
	n.Local.VisitWith(v)
}

func (n *ExportNamespaceSpecifier) VisitWith(v Visitor) { v.VisitExportNamespaceSpecifier(n) }
func (n *ExportNamespaceSpecifier) VisitChildrenWith(v Visitor) {
	n.Local.VisitWith(v)
}
