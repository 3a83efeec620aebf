/*
File    : rainbow/interp/interp.go
*/
package interp

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/rainbow/lexer"
	"github.com/akashmaji946/rainbow/parser"
	"github.com/akashmaji946/rainbow/rainbowerr"
)

// maxLoopIterations bounds enquanto/para execution so a runaway condition
// cannot hang the interpreter; exceeding it is a runtime error, not a
// silent truncation (spec.md §5's "Loop infinito detectado" behavior,
// carried over from the original implementation).
const maxLoopIterations = 1000

// RuntimeError is a single "Erro Execucao" diagnostic. Interp stops
// walking the program as soon as one is produced (spec.md §5: runtime
// errors are fatal, not accumulated like lexical/syntax/semantic ones).
type RuntimeError struct {
	Linha, Coluna int
	Msg           string
}

func (e *RuntimeError) Error() string {
	return rainbowerr.Erro(rainbowerr.Execucao, e.Linha, e.Coluna, "%s", e.Msg)
}

// Interp walks a parser.Program and executes it against a flat variable
// store, with mostrar/ler wired to a configurable Writer/Reader pair.
type Interp struct {
	vars   map[string]Value
	Writer io.Writer
	Reader *bufio.Reader
	erro   *RuntimeError
}

// New creates an Interp writing to stdout and reading from stdin.
func New() *Interp {
	return &Interp{
		vars:   make(map[string]Value),
		Writer: os.Stdout,
		Reader: bufio.NewReader(os.Stdin),
	}
}

// SetWriter redirects mostrar's output, mainly for tests.
func (in *Interp) SetWriter(w io.Writer) { in.Writer = w }

// SetReader redirects ler's input, mainly for tests.
func (in *Interp) SetReader(r *bufio.Reader) { in.Reader = r }

// Executar runs prog to completion or until the first runtime error, and
// returns that error (nil on a clean run). Callers gate this behind a
// successful lex/parse pass (cli.Run does; the repl also requires a clean
// semantic pass) — Executar itself does not re-check those stages.
func (in *Interp) Executar(prog *parser.Program) error {
	return in.ExecutarDesde(prog, 0)
}

// ExecutarDesde executes only prog.Children[from:], leaving the variable
// store intact from any prior call. The repl package uses this to
// re-analyze an accumulated buffer on every line (so later lines see
// earlier declarations) while executing each line's statements exactly
// once.
func (in *Interp) ExecutarDesde(prog *parser.Program, from int) error {
	in.erro = nil
	if prog == nil || from >= len(prog.Children) {
		return nil
	}
	for _, stmt := range prog.Children[from:] {
		if !in.exec(stmt) {
			break
		}
	}
	return in.erro
}

func (in *Interp) falha(linha, coluna int, msg string, args ...interface{}) {
	if in.erro == nil {
		in.erro = &RuntimeError{Linha: linha, Coluna: coluna, Msg: fmt.Sprintf(msg, args...)}
	}
}

// exec runs one statement, returning false to signal the caller should
// stop walking (a runtime error was recorded).
func (in *Interp) exec(n parser.Node) bool {
	if n == nil || in.erro != nil {
		return in.erro == nil
	}
	switch node := n.(type) {
	case *parser.VarDecl:
		return true // declaration alone has no runtime effect
	case *parser.Assign:
		v, ok := in.eval(node.Expr)
		if !ok {
			return false
		}
		in.vars[node.Name] = v
		return true
	case *parser.If:
		return in.execIf(node)
	case *parser.ForRange:
		return in.execForRange(node)
	case *parser.While:
		return in.execWhile(node)
	case *parser.Call:
		_, ok := in.evalCall(node)
		return ok
	}
	return true
}

func (in *Interp) execBlock(b *parser.Block) bool {
	if b == nil {
		return true
	}
	for _, stmt := range b.Children {
		if !in.exec(stmt) {
			return false
		}
	}
	return true
}

func (in *Interp) execIf(node *parser.If) bool {
	cond, ok := in.eval(node.Cond)
	if !ok {
		return false
	}
	if cond.Verdadeiro() {
		return in.execBlock(node.Then)
	}
	for i, ec := range node.ElifConds {
		ev, ok := in.eval(ec)
		if !ok {
			return false
		}
		if ev.Verdadeiro() {
			return in.execBlock(node.ElifBlocks[i])
		}
	}
	if node.Else != nil {
		return in.execBlock(node.Else)
	}
	return true
}

func (in *Interp) execForRange(node *parser.ForRange) bool {
	linha, coluna := node.Position()
	start, ok := in.evalNumeric(node.Start)
	if !ok {
		return false
	}
	end, ok := in.evalNumeric(node.End)
	if !ok {
		return false
	}
	step, ok := in.evalNumeric(node.Step)
	if !ok {
		return false
	}
	if step == 0 {
		in.falha(linha, coluna, "passo do para nao pode ser zero")
		return false
	}

	iterations := 0
	for (step > 0 && start <= end) || (step < 0 && start >= end) {
		in.vars[node.Var] = Numero(int64(start))
		if !in.execBlock(node.Body) {
			return false
		}
		start += step
		iterations++
		if iterations > maxLoopIterations {
			in.falha(linha, coluna, "Loop infinito detectado!")
			return false
		}
	}
	return true
}

func (in *Interp) execWhile(node *parser.While) bool {
	linha, coluna := node.Position()
	iterations := 0
	for {
		cond, ok := in.eval(node.Cond)
		if !ok {
			return false
		}
		if !cond.Verdadeiro() {
			return true
		}
		if !in.execBlock(node.Body) {
			return false
		}
		iterations++
		if iterations > maxLoopIterations {
			in.falha(linha, coluna, "Loop infinito detectado!")
			return false
		}
	}
}

// evalNumeric evaluates n and requires it to be a Numero value, failing
// with a runtime error otherwise.
func (in *Interp) evalNumeric(n parser.Node) (float64, bool) {
	v, ok := in.eval(n)
	if !ok {
		return 0, false
	}
	if v.Kind != KindNumero {
		linha, coluna := n.Position()
		in.falha(linha, coluna, "esperado valor numerico, encontrado %s", v.Kind)
		return 0, false
	}
	return v.AsFloat64(), true
}

func (in *Interp) evalCall(node *parser.Call) (Value, bool) {
	switch node.Name {
	case "mostrar":
		var out string
		if len(node.Args) > 0 {
			v, ok := in.eval(node.Args[0])
			if !ok {
				return Indefinido, false
			}
			out = v.ToString()
		}
		fmt.Fprintln(in.Writer, out)
		return Indefinido, true
	case "ler":
		if len(node.Args) > 0 {
			v, ok := in.eval(node.Args[0])
			if !ok {
				return Indefinido, false
			}
			fmt.Fprint(in.Writer, v.ToString())
		}
		line, err := in.Reader.ReadString('\n')
		if err != nil && err != io.EOF {
			linha, coluna := node.Position()
			in.falha(linha, coluna, "falha ao ler entrada: %s", err)
			return Indefinido, false
		}
		return Texto(trimNewline(line)), true
	default:
		linha, coluna := node.Position()
		in.falha(linha, coluna, "chamada de funcao desconhecida: %s", node.Name)
		return Indefinido, false
	}
}

func trimNewline(s string) string {
	n := len(s)
	if n > 0 && s[n-1] == '\n' {
		n--
		if n > 0 && s[n-1] == '\r' {
			n--
		}
	}
	return s[:n]
}

func (in *Interp) eval(n parser.Node) (Value, bool) {
	if n == nil {
		return Indefinido, true
	}
	switch node := n.(type) {
	case *parser.Literal:
		return in.evalLiteral(node), true
	case *parser.Var:
		if v, ok := in.vars[node.Name]; ok {
			return v, true
		}
		linha, coluna := node.Position()
		in.falha(linha, coluna, "variavel indefinida: %s", node.Name)
		return Indefinido, false
	case *parser.Call:
		return in.evalCall(node)
	case *parser.UnOp:
		return in.evalUnOp(node)
	case *parser.BinOp:
		return in.evalBinOp(node)
	}
	return Indefinido, true
}

func (in *Interp) evalLiteral(node *parser.Literal) Value {
	switch node.LitKind {
	case parser.LiteralInteiro:
		return Numero(node.Value.(int64))
	case parser.LiteralDecimal:
		return NumeroDecimal(node.Value.(float64))
	case parser.LiteralTexto:
		return Texto(node.Value.(string))
	case parser.LiteralLogico:
		return Logico(node.Value.(bool))
	}
	return Indefinido
}

func (in *Interp) evalUnOp(node *parser.UnOp) (Value, bool) {
	v, ok := in.eval(node.Operand)
	if !ok {
		return Indefinido, false
	}
	linha, coluna := node.Position()
	switch node.Op {
	case lexer.OPER_NAO:
		return Logico(!v.Verdadeiro()), true
	case lexer.OPER_SUBTRACAO:
		if v.Kind != KindNumero {
			in.falha(linha, coluna, "operador unario '-' requer operando numerico")
			return Indefinido, false
		}
		if v.IsFloat {
			return NumeroDecimal(-v.Decimal), true
		}
		return Numero(-v.Inteiro), true
	}
	return Indefinido, false
}

func (in *Interp) evalBinOp(node *parser.BinOp) (Value, bool) {
	lv, ok := in.eval(node.Lhs)
	if !ok {
		return Indefinido, false
	}
	rv, ok := in.eval(node.Rhs)
	if !ok {
		return Indefinido, false
	}
	linha, coluna := node.Position()

	switch node.Op {
	case lexer.OPER_SOMA:
		if lv.Kind == KindTexto || rv.Kind == KindTexto {
			return Texto(lv.ToString() + rv.ToString()), true
		}
		return arith(lv, rv, func(a, b float64) float64 { return a + b }), true
	case lexer.OPER_SUBTRACAO:
		return arith(lv, rv, func(a, b float64) float64 { return a - b }), true
	case lexer.OPER_MULTIPLICACAO:
		return arith(lv, rv, func(a, b float64) float64 { return a * b }), true
	case lexer.OPER_DIVISAO:
		if rv.AsFloat64() == 0 {
			in.falha(linha, coluna, "divisao por zero")
			return Indefinido, false
		}
		return arith(lv, rv, func(a, b float64) float64 { return a / b }), true
	case lexer.OPER_MODULO:
		if rv.AsFloat64() == 0 {
			in.falha(linha, coluna, "modulo por zero")
			return Indefinido, false
		}
		if !lv.IsFloat && !rv.IsFloat {
			return Numero(lv.Inteiro % rv.Inteiro), true
		}
		return NumeroDecimal(modFloat(lv.AsFloat64(), rv.AsFloat64())), true
	case lexer.OPER_MENOR:
		return Logico(compare(lv, rv) < 0), true
	case lexer.OPER_MAIOR:
		return Logico(compare(lv, rv) > 0), true
	case lexer.OPER_MENOR_IGUAL:
		return Logico(compare(lv, rv) <= 0), true
	case lexer.OPER_MAIOR_IGUAL:
		return Logico(compare(lv, rv) >= 0), true
	case lexer.OPER_IGUAL:
		return Logico(equal(lv, rv)), true
	case lexer.OPER_DIFERENTE:
		return Logico(!equal(lv, rv)), true
	case lexer.OPER_E:
		return Logico(lv.Verdadeiro() && rv.Verdadeiro()), true
	case lexer.OPER_OU:
		return Logico(lv.Verdadeiro() || rv.Verdadeiro()), true
	}
	in.falha(linha, coluna, "operador desconhecido: %s", node.Op)
	return Indefinido, false
}

func arith(a, b Value, f func(x, y float64) float64) Value {
	result := f(a.AsFloat64(), b.AsFloat64())
	if a.IsFloat || b.IsFloat {
		return NumeroDecimal(result)
	}
	return Numero(int64(result))
}

func modFloat(a, b float64) float64 {
	for a >= b {
		a -= b
	}
	return a
}

// compare orders two values numerically when both are Numero, and
// lexically when both are Texto; any other pairing compares their string
// forms (spec.md §9's Number<->Text coercion).
func compare(a, b Value) int {
	if a.Kind == KindNumero && b.Kind == KindNumero {
		af, bf := a.AsFloat64(), b.AsFloat64()
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	as, bs := a.ToString(), b.ToString()
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func equal(a, b Value) bool {
	if a.Kind == KindNumero && b.Kind == KindNumero {
		return a.AsFloat64() == b.AsFloat64()
	}
	if a.Kind == KindLogico && b.Kind == KindLogico {
		return a.Logico == b.Logico
	}
	return a.ToString() == b.ToString()
}
