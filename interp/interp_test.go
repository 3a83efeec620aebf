/*
File    : rainbow/interp/interp_test.go
*/
package interp

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/rainbow/lexer"
	"github.com/akashmaji946/rainbow/parser"
	"github.com/akashmaji946/rainbow/semantic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run lexes, parses, and interprets src, gating execution on a clean
// lex/parse pass the way cmd/rainbow's `run` subcommand does.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	tokens, lexErros, _ := lexer.New(src).Analisar()
	require.Empty(t, lexErros)
	prog, synErros := parser.New(tokens).Analisar()
	require.Empty(t, synErros)

	var buf bytes.Buffer
	in := New()
	in.SetWriter(&buf)
	err := in.Executar(prog)
	return buf.String(), err
}

func TestExecutar_HelloWorld(t *testing.T) {
	out, err := run(t, "RAINBOW.\nmostrar(\"Ola, mundo!\").\n")
	require.NoError(t, err)
	assert.Equal(t, "Ola, mundo!\n", out)
}

func TestExecutar_ArithmeticAndAssignment(t *testing.T) {
	out, err := run(t, "RAINBOW.\n#a recebe 10.\n#b recebe 5.\nmostrar(#a + #b).\nmostrar(#a * #b).\n")
	require.NoError(t, err)
	assert.Equal(t, "15\n50\n", out)
}

func TestExecutar_Conditional(t *testing.T) {
	src := "RAINBOW.\n#idade recebe 20.\nse (#idade >= 18) {\nmostrar(\"adulto\").\n} senao {\nmostrar(\"menor\").\n}\n"
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, "adulto\n", out)
}

func TestExecutar_ForLoop(t *testing.T) {
	out, err := run(t, "RAINBOW.\npara #i de 1 ate 3 passo 1 {\nmostrar(#i).\n}\n")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestExecutar_ForLoopStepZeroIsRejected(t *testing.T) {
	_, err := run(t, "RAINBOW.\npara #i de 1 ate 3 passo 0 {\nmostrar(#i).\n}\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passo")
}

func TestExecutar_WhileLoopCapsInfiniteLoop(t *testing.T) {
	_, err := run(t, "RAINBOW.\n#i recebe 1.\nenquanto (#i > 0) {\n#i recebe #i + 1.\n}\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Loop infinito")
}

func TestExecutar_DivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, "RAINBOW.\n#a recebe 10 / 0.\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "divisao por zero")
}

func TestExecutar_ModuloByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, "RAINBOW.\n#a recebe 10 % 0.\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "modulo por zero")
}

func TestExecutar_StringConcatenationWithNumber(t *testing.T) {
	out, err := run(t, "RAINBOW.\n#a recebe \"idade: \" + 10.\nmostrar(#a).\n")
	require.NoError(t, err)
	assert.Equal(t, "idade: 10\n", out)
}

func TestExecutar_LerReturnsInputLine(t *testing.T) {
	tokens, lexErros, _ := lexer.New("RAINBOW.\n#nome recebe ler(\"Nome: \").\nmostrar(#nome).\n").Analisar()
	require.Empty(t, lexErros)
	prog, synErros := parser.New(tokens).Analisar()
	require.Empty(t, synErros)

	var out bytes.Buffer
	in := New()
	in.SetWriter(&out)
	in.SetReader(bufio.NewReader(strings.NewReader("Ana\n")))
	err := in.Executar(prog)
	require.NoError(t, err)
	assert.Equal(t, "Nome: Ana\n", out.String())
}

func TestExecutar_LerReturnsEmptyStringOnEOF(t *testing.T) {
	tokens, _, _ := lexer.New("RAINBOW.\n#x recebe ler(\"\").\nmostrar(#x).\n").Analisar()
	prog, _ := parser.New(tokens).Analisar()

	var out bytes.Buffer
	in := New()
	in.SetWriter(&out)
	in.SetReader(bufio.NewReader(strings.NewReader("")))
	err := in.Executar(prog)
	require.NoError(t, err)
	assert.Equal(t, "\n", out.String())
}

func TestExecutar_UninitializedVariableAccessIsRuntimeError(t *testing.T) {
	_, err := run(t, "RAINBOW.\nnumero #x.\nmostrar(#x).\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "variavel indefinida")
}

func TestExecutar_SubtractionAfterLiteralIsNotMergedIntoNegativeNumber(t *testing.T) {
	// "5 -3" tokenizes as NUMERO(5), OPER_SUBTRACAO, NUMERO(3) — spec.md §9's
	// documented ambiguity, preserved as subtraction.
	out, err := run(t, "RAINBOW.\n#a recebe 5 -3.\nmostrar(#a).\n")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestValue_TipoSemanticoMapsToSemanticTypes(t *testing.T) {
	assert.Equal(t, semantic.Number, Numero(1).TipoSemantico())
	assert.Equal(t, semantic.Text, Texto("a").TipoSemantico())
	assert.Equal(t, semantic.Logical, Logico(true).TipoSemantico())
}
