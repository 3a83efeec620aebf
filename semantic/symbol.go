/*
File    : rainbow/semantic/symbol.go
*/

// Package semantic implements Rainbow's scoped symbol table and type
// checker (spec.md §4.3). It walks the parser's AST, never panicking,
// and always produces a usable symbol table even over a partial tree.
package semantic

// Type is one of Rainbow's four declared data types, plus Undefined for
// values the analyzer could not pin down.
type Type string

const (
	Number    Type = "Number"
	Text      Type = "Text"
	Logical   Type = "Logical"
	List      Type = "List"
	Undefined Type = "Undefined"
)

// ScopeKind tags the kind of frame a symbol was declared in.
type ScopeKind string

const (
	ScopeGlobal ScopeKind = "Global"
	ScopeBlock  ScopeKind = "Block"
	ScopeLoop   ScopeKind = "Loop"
)

// Symbol is one entry in the symbol table: a declared or implicitly
// declared name, its inferred/declared type, where it lives, and whether
// it has been read at least once.
type Symbol struct {
	Name       string
	Type       Type
	Scope      ScopeKind
	Linha      int
	Coluna     int
	Declarado  bool
	Usado      bool
	ValorInicial interface{}
}
