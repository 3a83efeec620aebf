/*
File    : rainbow/parser/node.go
*/
package parser

import "github.com/akashmaji946/rainbow/lexer"

// NodeKind tags the concrete type of an AST node so visitors and the
// `.ast` / `.ast.json` formatters can switch on it without a type
// assertion chain.
type NodeKind string

const (
	KindProgram    NodeKind = "Program"
	KindVarDecl    NodeKind = "VarDecl"
	KindAssign     NodeKind = "Assign"
	KindIf         NodeKind = "If"
	KindForRange   NodeKind = "ForRange"
	KindWhile      NodeKind = "While"
	KindCall       NodeKind = "Call"
	KindBinOp      NodeKind = "BinOp"
	KindUnOp       NodeKind = "UnOp"
	KindVar        NodeKind = "Var"
	KindLiteral    NodeKind = "Literal"
	KindBlock      NodeKind = "Block"
)

// Node is implemented by every AST node variant. Position() reports the
// (line, column) of the node's leading token, 1-indexed, matching the
// token it was built from.
type Node interface {
	Kind() NodeKind
	Position() (linha, coluna int)
}

type pos struct {
	Linha, Coluna int
}

func (p pos) Position() (int, int) { return p.Linha, p.Coluna }

// Program is the root node: the ordered list of top-level statements that
// follow the RAINBOW header.
type Program struct {
	pos
	Children []Node
}

func (*Program) Kind() NodeKind { return KindProgram }

// VarDecl declares a variable with a stated type and no initializer
// (e.g. `numero #x.`).
type VarDecl struct {
	pos
	DeclaredType lexer.TokenType // TIPO_NUMERO / TIPO_TEXTO / TIPO_LOGICO / TIPO_LISTA
	Name         string
}

func (*VarDecl) Kind() NodeKind { return KindVarDecl }

// Assign binds the value of Expr to the variable Name, implicitly
// declaring it if this is its first appearance (spec.md §4.3).
type Assign struct {
	pos
	Name string
	Expr Node
}

func (*Assign) Kind() NodeKind { return KindAssign }

// If models se/senaose/senao. ElifConds[i] guards ElifBlocks[i]; Else may
// be nil. The elif chain is flattened into these parallel slices rather
// than nested, matching spec.md's description of the node shape.
type If struct {
	pos
	Cond       Node
	Then       *Block
	ElifConds  []Node
	ElifBlocks []*Block
	Else       *Block
}

func (*If) Kind() NodeKind { return KindIf }

// ForRange models `para #v de start ate end passo step { body }`.
type ForRange struct {
	pos
	Var   string
	Start Node
	End   Node
	Step  Node
	Body  *Block
}

func (*ForRange) Kind() NodeKind { return KindForRange }

// While models `enquanto (cond) { body }`.
type While struct {
	pos
	Cond Node
	Body *Block
}

func (*While) Kind() NodeKind { return KindWhile }

// Call models mostrar(...) / ler(...). The parser accepts zero or one
// argument for either call, so Args holds at most one node (ler's
// optional prompt, or the value mostrar prints); the argument count is
// not checked by the semantic analyzer.
type Call struct {
	pos
	Name string
	Args []Node
}

func (*Call) Kind() NodeKind { return KindCall }

// BinOp is a binary expression; Op is the operator's token kind (e.g.
// OPER_SOMA, OPER_E, OPER_MENOR).
type BinOp struct {
	pos
	Op  lexer.TokenType
	Lhs Node
	Rhs Node
}

func (*BinOp) Kind() NodeKind { return KindBinOp }

// UnOp is a unary expression: NAO or unary '-'.
type UnOp struct {
	pos
	Op      lexer.TokenType
	Operand Node
}

func (*UnOp) Kind() NodeKind { return KindUnOp }

// Var references a #-prefixed variable by name.
type Var struct {
	pos
	Name string
}

func (*Var) Kind() NodeKind { return KindVar }

// LiteralKind tags which of the four literal forms a Literal node carries.
type LiteralKind string

const (
	LiteralInteiro LiteralKind = "inteiro"
	LiteralDecimal LiteralKind = "decimal"
	LiteralTexto   LiteralKind = "texto"
	LiteralLogico  LiteralKind = "logico"
)

// Literal is a constant value fixed at parse time. Value holds an int64,
// float64, string (unquoted, escapes resolved), or bool depending on
// LitKind. The original quoted form is retained in Raw for re-emission.
type Literal struct {
	pos
	LitKind LiteralKind
	Value   interface{}
	Raw     string
}

func (*Literal) Kind() NodeKind { return KindLiteral }

// Block is an ordered list of statements delimited by `{ }`.
type Block struct {
	pos
	Children []Node
}

func (*Block) Kind() NodeKind { return KindBlock }
