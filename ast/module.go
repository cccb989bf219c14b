package ast

// ImportSpecifier is the closed family of the three import-clause element
// shapes spec §3 names: named ({a, b as c}), default (bare identifier) and
// namespace (* as name).
type ImportSpecifier interface {
	Node
	GenJs() string
	_importSpecifier()
}

type (
	// NamedImportSpecifier is spec's ImportSpecifier{imported, local}.
	// Named ImportSpecifier here to avoid colliding with the interface
	// name above.
	NamedImportSpecifier struct {
		Imported *Identifier
		Local    *Identifier
	}

	ImportDefaultSpecifier struct {
		Local *Identifier
	}

	ImportNamespaceSpecifier struct {
		Star  Idx
		Local *Identifier
	}

	ImportDeclaration struct {
		Import      Idx
		Specifiers  []ImportSpecifier
		Source      *StringLiteral
	}
)

func (*NamedImportSpecifier) _importSpecifier()     {}
func (*ImportDefaultSpecifier) _importSpecifier()   {}
func (*ImportNamespaceSpecifier) _importSpecifier() {}
func (*ImportDeclaration) _stmt()                   {}

func (n *NamedImportSpecifier) Idx0() Idx     { return n.Imported.Idx0() }
func (n *ImportDefaultSpecifier) Idx0() Idx   { return n.Local.Idx0() }
func (n *ImportNamespaceSpecifier) Idx0() Idx { return n.Star }
func (n *ImportDeclaration) Idx0() Idx        { return n.Import }

// ExportSpecifier is the closed family of export-clause element shapes
// spec §3 names: named ({a as b}), default and namespace re-export forms.
type ExportSpecifier interface {
	Node
	GenJs() string
	_exportSpecifier()
}

type (
	NamedExportSpecifier struct {
		Local    *Identifier
		Exported *Identifier
	}

	ExportDefaultSpecifier struct {
		Local *Identifier
	}

	ExportNamespaceSpecifier struct {
		Star  Idx
		Local *Identifier
	}

	// ExportNamedDeclaration: Declaration present means `export <decl>`;
	// otherwise Specifiers (+ optional Source) means `export {..} [from
	// "..."]`. Spec §3 models these as alternatives on the same node.
	ExportNamedDeclaration struct {
		Export      Idx
		Declaration Stmt // optional
		Specifiers  []ExportSpecifier
		Source      *StringLiteral // optional
	}

	ExportDefaultDeclaration struct {
		Export      Idx
		Declaration Node // Stmt or Expr
	}

	ExportAllDeclaration struct {
		Export Idx
		Source *StringLiteral
	}
)

func (*NamedExportSpecifier) _exportSpecifier()     {}
func (*ExportDefaultSpecifier) _exportSpecifier()   {}
func (*ExportNamespaceSpecifier) _exportSpecifier() {}
func (*ExportNamedDeclaration) _stmt()              {}
func (*ExportDefaultDeclaration) _stmt()            {}
func (*ExportAllDeclaration) _stmt()                {}

func (n *NamedExportSpecifier) Idx0() Idx     { return n.Local.Idx0() }
func (n *ExportDefaultSpecifier) Idx0() Idx   { return n.Local.Idx0() }
func (n *ExportNamespaceSpecifier) Idx0() Idx { return n.Star }
func (n *ExportNamedDeclaration) Idx0() Idx   { return n.Export }
func (n *ExportDefaultDeclaration) Idx0() Idx { return n.Export }
func (n *ExportAllDeclaration) Idx0() Idx     { return n.Export }
