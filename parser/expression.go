package parser

import (
	"strconv"

	"github.com/jameslahm/yajp/ast"
	"github.com/jameslahm/yajp/token"
)

// parseExpression parses a unary expression as the left operand, then
// enters the precedence climber with minPrec = -1, per spec §4.3.
func (p *Parser) parseExpression() ast.Expr {
	left := p.parseUnaryExpression()
	return p.parseBinaryExpression(left, -1)
}

// parseBinaryExpression implements the precedence-climbing state machine
// of spec §4.3 exactly: (left, minPrec) -> final return, or shift-recurse-
// fold-loop when the current operator's precedence exceeds minPrec.
func (p *Parser) parseBinaryExpression(left ast.Expr, minPrec int) ast.Expr {
	for {
		op, ok := token.BinaryOperatorFromToken(p.tok)
		if !ok {
			return left
		}
		prec := token.Precedence(op)
		if prec == token.Undefined || prec <= minPrec {
			return left
		}

		p.next()
		right := p.parseUnaryExpression()
		right = p.parseBinaryExpression(right, prec)

		left = &ast.BinaryExpression{Operator: op, Left: left, Right: right}
	}
}

// parseUnaryExpression dispatches on the current token per spec §4.3. The
// Boolean/Null branches are the documented fix for spec §9's note that the
// source lacked them in ParseUnaryExpression.
func (p *Parser) parseUnaryExpression() ast.Expr {
	idx := p.offset()

	if op, ok := token.UnaryOperatorFromToken(p.tok); ok {
		p.next()
		operand := p.parseUnaryExpression()
		return &ast.UnaryExpression{Idx: idx, Operator: op, Operand: operand}
	}

	switch p.tok {
	case token.LeftParenthesis:
		p.next()
		inner := p.parseExpression()
		p.expect(token.RightParenthesis)
		return &ast.ParenthesizedExpression{LeftParenthesis: idx, Expression: inner}

	case token.Function:
		return p.parseFunctionExpression(false, idx)

	case token.Async:
		mark := p.mark()
		p.next()
		if p.tok == token.Function {
			return p.parseFunctionExpression(true, idx)
		}
		p.restore(mark)
		return p.parseIdentifierOrCallExpression()

	case token.Identifier:
		return p.parseIdentifierOrCallExpression()

	case token.Numeric:
		lit := p.lit
		p.next()
		value, _ := strconv.ParseFloat(lit, 64)
		return &ast.NumberLiteral{Idx: idx, Value: value}

	case token.String:
		lit := p.lit
		p.next()
		return &ast.StringLiteral{Idx: idx, Value: lit}

	case token.Boolean:
		lit := p.lit
		p.next()
		return &ast.BooleanLiteral{Idx: idx, Value: lit == "true"}

	case token.Null:
		p.next()
		return &ast.NullLiteral{Idx: idx}
	}

	// Anything else is absent (spec §4.3: "Anything else -> absent (null
	// child)"); the caller is left holding a nil Expr rather than the
	// parser aborting on an UNREACHABLE branch (spec §9's error-handling
	// note). The offending token is consumed so every statement loop keeps
	// advancing towards Eof.
	p.errorUnexpectedToken()
	if p.tok != token.Eof {
		p.next()
	}
	return nil
}

// parseIdentifierOrCallExpression captures the identifier text, advances,
// and if the following token is '(' parses a call; otherwise returns the
// bare identifier. Call arguments accept arbitrary expressions — spec §9's
// documented fix over the source's identifiers-only restriction.
func (p *Parser) parseIdentifierOrCallExpression() ast.Expr {
	idx := p.offset()
	name := p.lit
	p.next()
	ident := &ast.Identifier{Idx: idx, Name: name}

	if p.tok != token.LeftParenthesis {
		return ident
	}
	p.next()

	var args []ast.Expr
	for p.tok != token.RightParenthesis && p.tok != token.Eof {
		args = append(args, p.parseExpression())
		if !p.accept(token.Comma) {
			break
		}
	}
	rparen := p.expect(token.RightParenthesis)

	return &ast.CallExpression{Callee: ident, Arguments: args, RightParenthesis: rparen}
}
