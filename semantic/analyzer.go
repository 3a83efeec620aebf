/*
File    : rainbow/semantic/analyzer.go
*/
package semantic

import (
	"github.com/akashmaji946/rainbow/lexer"
	"github.com/akashmaji946/rainbow/parser"
	"github.com/akashmaji946/rainbow/rainbowerr"
)

// Result bundles everything a semantic analysis pass produces: the
// symbol table (current frames + history), and separate error/warning
// lists (spec.md §4.3's output artifacts).
type Result struct {
	Table    *Table
	Erros    []string
	Avisos   []string
}

// Analyzer walks an AST maintaining a Table, emitting errors for type and
// scope violations and warnings for the softer diagnostics (unused
// variables, implicit declarations, dissimilar-type comparisons). It is
// defensive: even over a partial AST (missing children from a failed
// parse) it still produces a usable Result — it never panics.
type Analyzer struct {
	table  *Table
	erros  []string
	avisos []string
}

// NewAnalyzer creates an Analyzer with a fresh Global-only Table.
func NewAnalyzer() *Analyzer {
	return &Analyzer{table: NewTable()}
}

func (a *Analyzer) erro(linha, coluna int, msg string, args ...interface{}) {
	a.erros = append(a.erros, rainbowerr.Erro(rainbowerr.Semantico, linha, coluna, msg, args...))
}

func (a *Analyzer) aviso(linha, coluna int, msg string, args ...interface{}) {
	a.avisos = append(a.avisos, rainbowerr.Aviso(linha, coluna, msg, args...))
}

// Analisar walks prog end to end and returns the accumulated Result. At
// least the Global frame is guaranteed to remain on the stack throughout
// (spec.md's scope-stack invariant).
func (a *Analyzer) Analisar(prog *parser.Program) *Result {
	if prog != nil {
		for _, stmt := range prog.Children {
			a.statement(stmt)
		}
	}

	for _, sym := range a.table.NaoUsadas() {
		a.aviso(sym.Linha, sym.Coluna, "variavel declarada mas nunca usada: %s", sym.Name)
	}

	return &Result{Table: a.table, Erros: a.erros, Avisos: a.avisos}
}

func declType(tok lexer.TokenType) Type {
	switch tok {
	case lexer.TIPO_NUMERO:
		return Number
	case lexer.TIPO_TEXTO:
		return Text
	case lexer.TIPO_LOGICO:
		return Logical
	case lexer.TIPO_LISTA:
		return List
	default:
		return Undefined
	}
}

func (a *Analyzer) statement(n parser.Node) {
	if n == nil {
		return
	}
	switch node := n.(type) {
	case *parser.VarDecl:
		linha, coluna := node.Position()
		if !a.table.Declarar(node.Name, declType(node.DeclaredType), linha, coluna) {
			a.erro(linha, coluna, "variavel ja declarada neste escopo: %s", node.Name)
		}
	case *parser.Assign:
		a.assign(node)
	case *parser.If:
		a.ifStmt(node)
	case *parser.ForRange:
		a.forRange(node)
	case *parser.While:
		a.whileStmt(node)
	case *parser.Call:
		a.call(node)
	}
}

func (a *Analyzer) assign(node *parser.Assign) {
	linha, coluna := node.Position()
	rhsType := a.expr(node.Expr)

	if sym := a.table.Buscar(node.Name); sym != nil {
		if sym.Type == Undefined {
			sym.Type = rhsType
		}
		return
	}
	a.table.Declarar(node.Name, rhsType, linha, coluna)
}

func (a *Analyzer) block(b *parser.Block, kind ScopeKind) {
	a.table.Entrar(kind)
	if b != nil {
		for _, stmt := range b.Children {
			a.statement(stmt)
		}
	}
	a.table.Sair()
}

func (a *Analyzer) ifStmt(node *parser.If) {
	a.checkCondType(node.Cond)
	a.block(node.Then, ScopeBlock)
	for i, cond := range node.ElifConds {
		a.checkCondType(cond)
		a.block(node.ElifBlocks[i], ScopeBlock)
	}
	if node.Else != nil {
		a.block(node.Else, ScopeBlock)
	}
}

// checkCondType evaluates a branch/loop condition and ensures it is
// Logical; Undefined operands suppress the error (spec.md §4.3).
func (a *Analyzer) checkCondType(cond parser.Node) {
	t := a.expr(cond)
	if t != Logical && t != Undefined {
		linha, coluna := cond.Position()
		a.erro(linha, coluna, "condicao deve ser do tipo logico, encontrado %s", t)
	}
}

func (a *Analyzer) forRange(node *parser.ForRange) {
	linha, coluna := node.Position()
	a.checkNumeric(node.Start, "limite inicial do para")
	a.checkNumeric(node.End, "limite final do para")
	a.checkNumeric(node.Step, "passo do para")

	a.table.Entrar(ScopeLoop)
	a.table.Declarar(node.Var, Number, linha, coluna)
	if node.Body != nil {
		for _, stmt := range node.Body.Children {
			a.statement(stmt)
		}
	}
	a.table.Sair()
}

func (a *Analyzer) checkNumeric(n parser.Node, what string) {
	t := a.expr(n)
	if t != Number && t != Undefined {
		linha, coluna := n.Position()
		a.erro(linha, coluna, "%s deve ser numero, encontrado %s", what, t)
	}
}

func (a *Analyzer) whileStmt(node *parser.While) {
	a.checkCondType(node.Cond)
	a.block(node.Body, ScopeBlock)
}

func (a *Analyzer) call(node *parser.Call) {
	switch node.Name {
	case "mostrar":
		for _, arg := range node.Args {
			a.expr(arg) // any type accepted
		}
	case "ler":
		if len(node.Args) > 0 {
			t := a.expr(node.Args[0])
			if t != Text && t != Undefined {
				linha, coluna := node.Args[0].Position()
				a.aviso(linha, coluna, "prompt de ler deveria ser do tipo texto, encontrado %s", t)
			}
		}
	default:
		linha, coluna := node.Position()
		a.erro(linha, coluna, "chamada de funcao desconhecida: %s", node.Name)
	}
}

// expr type-checks an expression node and returns its inferred Type.
// Errors are recorded for the strict arithmetic/logical rules, but the
// function always returns a best-effort type so callers higher up the
// tree can keep going.
func (a *Analyzer) expr(n parser.Node) Type {
	if n == nil {
		return Undefined
	}
	switch node := n.(type) {
	case *parser.Literal:
		switch node.LitKind {
		case parser.LiteralInteiro, parser.LiteralDecimal:
			return Number
		case parser.LiteralTexto:
			return Text
		case parser.LiteralLogico:
			return Logical
		}
		return Undefined
	case *parser.Var:
		return a.varRef(node)
	case *parser.Call:
		a.call(node)
		if node.Name == "ler" {
			return Text
		}
		return Undefined
	case *parser.UnOp:
		return a.unOp(node)
	case *parser.BinOp:
		return a.binOp(node)
	}
	return Undefined
}

func (a *Analyzer) varRef(node *parser.Var) Type {
	linha, coluna := node.Position()
	sym := a.table.Buscar(node.Name)
	if sym == nil {
		a.aviso(linha, coluna, "variavel usada sem declaracao explicita: %s", node.Name)
		a.table.Declarar(node.Name, Undefined, linha, coluna)
		a.table.MarcarUsado(node.Name)
		return Undefined
	}
	sym.Usado = true
	return sym.Type
}

func (a *Analyzer) unOp(node *parser.UnOp) Type {
	linha, coluna := node.Position()
	t := a.expr(node.Operand)
	switch node.Op {
	case lexer.OPER_NAO:
		if t != Logical && t != Undefined {
			a.erro(linha, coluna, "operador NAO requer operando logico, encontrado %s", t)
		}
		return Logical
	case lexer.OPER_SUBTRACAO:
		if t != Number && t != Undefined {
			a.erro(linha, coluna, "operador unario '-' requer operando numerico, encontrado %s", t)
		}
		return Number
	}
	return Undefined
}

func (a *Analyzer) binOp(node *parser.BinOp) Type {
	linha, coluna := node.Position()
	lt := a.expr(node.Lhs)
	rt := a.expr(node.Rhs)

	switch node.Op {
	case lexer.OPER_SOMA:
		if lt == Text || rt == Text {
			return Text
		}
		if lt == Number && rt == Number {
			return Number
		}
		if lt != Undefined && rt != Undefined {
			a.erro(linha, coluna, "operador '+' requer operandos numericos ou texto, encontrado %s e %s", lt, rt)
		}
		return Number
	case lexer.OPER_SUBTRACAO, lexer.OPER_MULTIPLICACAO, lexer.OPER_DIVISAO, lexer.OPER_MODULO:
		if (lt != Number && lt != Undefined) || (rt != Number && rt != Undefined) {
			a.erro(linha, coluna, "operador '%s' requer operandos numericos, encontrado %s e %s", node.Op, lt, rt)
		}
		return Number
	case lexer.OPER_MENOR, lexer.OPER_MAIOR, lexer.OPER_MENOR_IGUAL, lexer.OPER_MAIOR_IGUAL,
		lexer.OPER_IGUAL, lexer.OPER_DIFERENTE:
		if lt != rt && lt != Undefined && rt != Undefined && !numberTextPair(lt, rt) {
			a.aviso(linha, coluna, "comparando tipos diferentes: %s e %s", lt, rt)
		}
		return Logical
	case lexer.OPER_E, lexer.OPER_OU:
		if (lt != Logical && lt != Undefined) || (rt != Logical && rt != Undefined) {
			a.erro(linha, coluna, "operador '%s' requer operandos logicos, encontrado %s e %s", node.Op, lt, rt)
		}
		return Logical
	}
	return Undefined
}

// numberTextPair reports whether (a, b) is the Number/Text pair spec.md
// permits without a warning via implicit coercion.
func numberTextPair(a, b Type) bool {
	return (a == Number && b == Text) || (a == Text && b == Number)
}
