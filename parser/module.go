package parser

import (
	"github.com/jameslahm/yajp/ast"
	"github.com/jameslahm/yajp/token"
)

// parseProgram consumes the whole token stream, dispatching import/export
// declarations to the module-level parsers and everything else to
// parseStatement, terminating on Eof. This is the top-level loop the
// source this was distilled from never reliably reached — its ParseProgram
// dropped into a default-unaware export branch; SPEC_FULL.md's documented
// fix routes every "export ..." form through one default-aware dispatch.
func (p *Parser) parseProgram() *ast.Program {
	program := &ast.Program{SourceType: ast.SourceTypeModule, Body: []ast.Stmt{}}
	for p.tok != token.Eof {
		var stmt ast.Stmt
		switch p.tok {
		case token.Import:
			stmt = p.parseImportDeclaration()
		case token.Export:
			stmt = p.parseExportDeclaration()
		default:
			stmt = p.parseStatement()
		}
		program.Body = append(program.Body, stmt)
	}
	return program
}

// parseImportDeclaration covers the three specifier shapes spec §4.3
// names: namespace ("* as name"), default (bare identifier before the
// first comma or "from"), and named ("{ a, b as c }").
func (p *Parser) parseImportDeclaration() ast.Stmt {
	idx := p.offset()
	p.next()

	var specifiers []ast.ImportSpecifier

	if p.tok == token.String {
		// import "module" — side-effect only, no specifiers.
		source := p.parseStringLiteral()
		p.semicolon()
		return &ast.ImportDeclaration{Import: idx, Source: source}
	}

	if p.tok == token.Star {
		specifiers = append(specifiers, p.parseImportNamespaceSpecifier())
	} else if p.tok == token.Identifier {
		specifiers = append(specifiers, p.parseImportDefaultSpecifier())
		if p.accept(token.Comma) {
			specifiers = append(specifiers, p.parseNamedImportSpecifiers()...)
		}
	} else if p.tok == token.LeftBrace {
		specifiers = append(specifiers, p.parseNamedImportSpecifiers()...)
	}

	p.expect(token.From)
	source := p.parseStringLiteral()
	p.semicolon()
	return &ast.ImportDeclaration{Import: idx, Specifiers: specifiers, Source: source}
}

func (p *Parser) parseImportNamespaceSpecifier() ast.ImportSpecifier {
	star := p.offset()
	p.next()
	p.expect(token.As)
	local := p.parseBindingIdentifier()
	return &ast.ImportNamespaceSpecifier{Star: star, Local: local}
}

func (p *Parser) parseImportDefaultSpecifier() ast.ImportSpecifier {
	local := p.parseBindingIdentifier()
	return &ast.ImportDefaultSpecifier{Local: local}
}

func (p *Parser) parseNamedImportSpecifiers() []ast.ImportSpecifier {
	p.expect(token.LeftBrace)
	var specs []ast.ImportSpecifier
	for p.tok != token.RightBrace && p.tok != token.Eof {
		imported := p.parseBindingIdentifier()
		local := imported
		if p.accept(token.As) {
			local = p.parseBindingIdentifier()
		}
		specs = append(specs, &ast.NamedImportSpecifier{Imported: imported, Local: local})
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expect(token.RightBrace)
	return specs
}

// parseExportDeclaration dispatches on what follows "export": "*" (all,
// with optional re-export-as), "default" (default export of an
// expression or declaration), "{...}" (named specifiers, optionally "from
// ..."), or a declaration (function/var/let/const) exported as-is.
func (p *Parser) parseExportDeclaration() ast.Stmt {
	idx := p.offset()
	p.next()

	switch p.tok {
	case token.Star:
		p.next()
		if p.accept(token.As) {
			local := p.parseBindingIdentifier()
			p.expect(token.From)
			source := p.parseStringLiteral()
			p.semicolon()
			return &ast.ExportNamedDeclaration{
				Export:     idx,
				Specifiers: []ast.ExportSpecifier{&ast.ExportNamespaceSpecifier{Local: local}},
				Source:     source,
			}
		}
		p.expect(token.From)
		source := p.parseStringLiteral()
		p.semicolon()
		return &ast.ExportAllDeclaration{Export: idx, Source: source}

	case token.Default:
		p.next()
		var decl ast.Node
		switch p.tok {
		case token.Function:
			decl = p.parseFunctionDeclaration(false, p.offset())
		case token.Async:
			asyncIdx := p.offset()
			mark := p.mark()
			p.next()
			if p.tok == token.Function {
				decl = p.parseFunctionDeclaration(true, asyncIdx)
			} else {
				p.restore(mark)
				decl = p.parseExpression()
				p.semicolon()
			}
		default:
			decl = p.parseExpression()
			p.semicolon()
		}
		return &ast.ExportDefaultDeclaration{Export: idx, Declaration: decl}

	case token.LeftBrace:
		specifiers := p.parseNamedExportSpecifiers()
		var source *ast.StringLiteral
		if p.accept(token.From) {
			source = p.parseStringLiteral()
		}
		p.semicolon()
		return &ast.ExportNamedDeclaration{Export: idx, Specifiers: specifiers, Source: source}

	case token.Identifier:
		// export v from "mod" — the default shape of the three export
		// specifier forms, mirroring ImportDefaultSpecifier on the import
		// side (spec §4.3: "Export mirrors this").
		local := p.parseBindingIdentifier()
		p.expect(token.From)
		source := p.parseStringLiteral()
		p.semicolon()
		return &ast.ExportNamedDeclaration{
			Export:     idx,
			Specifiers: []ast.ExportSpecifier{&ast.ExportDefaultSpecifier{Local: local}},
			Source:     source,
		}

	default:
		decl := p.parseStatement()
		return &ast.ExportNamedDeclaration{Export: idx, Declaration: decl}
	}
}

func (p *Parser) parseNamedExportSpecifiers() []ast.ExportSpecifier {
	p.expect(token.LeftBrace)
	var specs []ast.ExportSpecifier
	for p.tok != token.RightBrace && p.tok != token.Eof {
		local := p.parseBindingIdentifier()
		exported := local
		if p.accept(token.As) {
			exported = p.parseBindingIdentifier()
		}
		specs = append(specs, &ast.NamedExportSpecifier{Local: local, Exported: exported})
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expect(token.RightBrace)
	return specs
}

func (p *Parser) parseBindingIdentifier() *ast.Identifier {
	idx := p.offset()
	name := p.lit
	p.expect(token.Identifier)
	return &ast.Identifier{Idx: idx, Name: name}
}

func (p *Parser) parseStringLiteral() *ast.StringLiteral {
	idx := p.offset()
	value := p.lit
	p.expect(token.String)
	return &ast.StringLiteral{Idx: idx, Value: value}
}
