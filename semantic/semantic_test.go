/*
File    : rainbow/semantic/semantic_test.go
*/
package semantic

import (
	"testing"

	"github.com/akashmaji946/rainbow/lexer"
	"github.com/akashmaji946/rainbow/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, src string) *Result {
	t.Helper()
	tokens, lexErros, _ := lexer.New(src).Analisar()
	require.Empty(t, lexErros)
	prog, synErros := parser.New(tokens).Analisar()
	require.Empty(t, synErros)
	return NewAnalyzer().Analisar(prog)
}

func TestAnalisar_ExplicitDeclThenAssignIsClean(t *testing.T) {
	res := analyze(t, "RAINBOW.\nnumero #x.\n#x recebe 10.\nmostrar(#x).\n")
	assert.Empty(t, res.Erros)
	assert.Empty(t, res.Avisos)
}

func TestAnalisar_RedeclarationInSameScopeErrors(t *testing.T) {
	res := analyze(t, "RAINBOW.\nnumero #x.\nnumero #x.\n")
	require.NotEmpty(t, res.Erros)
	assert.Contains(t, res.Erros[0], "ja declarada")
}

func TestAnalisar_ImplicitDeclarationOnAssignNoWarning(t *testing.T) {
	res := analyze(t, "RAINBOW.\n#y recebe 5.\nmostrar(#y).\n")
	assert.Empty(t, res.Erros)
	assert.Empty(t, res.Avisos)
	sym := res.Table.Buscar("#y")
	require.NotNil(t, sym)
	assert.Equal(t, Number, sym.Type)
}

func TestAnalisar_UseBeforeDeclarationWarns(t *testing.T) {
	res := analyze(t, "RAINBOW.\nmostrar(#z).\n")
	assert.Empty(t, res.Erros)
	require.NotEmpty(t, res.Avisos)
	assert.Contains(t, res.Avisos[0], "sem declaracao explicita")
}

func TestAnalisar_UnusedVariableWarns(t *testing.T) {
	res := analyze(t, "RAINBOW.\nnumero #naoUsada.\n")
	require.NotEmpty(t, res.Avisos)
	found := false
	for _, w := range res.Avisos {
		if w != "" && contains(w, "nunca usada") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAnalisar_ArithmeticOnTextIsError(t *testing.T) {
	res := analyze(t, "RAINBOW.\ntexto #s.\n#s recebe \"oi\".\n#a recebe #s - 1.\n")
	require.NotEmpty(t, res.Erros)
	assert.Contains(t, res.Erros[0], "numericos")
}

func TestAnalisar_ConcatenationWithNumberIsAllowed(t *testing.T) {
	res := analyze(t, "RAINBOW.\ntexto #s.\n#s recebe \"idade: \".\n#a recebe #s + 10.\n")
	assert.Empty(t, res.Erros)
}

func TestAnalisar_LogicalOperatorRequiresLogical(t *testing.T) {
	res := analyze(t, "RAINBOW.\n#a recebe 1 E 2.\n")
	require.NotEmpty(t, res.Erros)
	assert.Contains(t, res.Erros[0], "logicos")
}

func TestAnalisar_ConditionMustBeLogical(t *testing.T) {
	res := analyze(t, "RAINBOW.\nse (5) {\nmostrar(\"x\").\n}\n")
	require.NotEmpty(t, res.Erros)
	assert.Contains(t, res.Erros[0], "condicao")
}

func TestAnalisar_ForRangeBoundsMustBeNumeric(t *testing.T) {
	res := analyze(t, "RAINBOW.\ntexto #s.\n#s recebe \"a\".\npara #i de #s ate 3 passo 1 {\nmostrar(#i).\n}\n")
	require.NotEmpty(t, res.Erros)
	assert.Contains(t, res.Erros[0], "numero")
}

func TestAnalisar_ForRangeControlVarIsScopedToLoop(t *testing.T) {
	res := analyze(t, "RAINBOW.\npara #i de 1 ate 3 passo 1 {\nmostrar(#i).\n}\nmostrar(#i).\n")
	require.NotEmpty(t, res.Avisos)
	found := false
	for _, w := range res.Avisos {
		if contains(w, "sem declaracao explicita") {
			found = true
		}
	}
	assert.True(t, found, "control var should not leak past the loop body")
}

func TestAnalisar_ComparingNumberAndTextIsPermitted(t *testing.T) {
	res := analyze(t, "RAINBOW.\n#a recebe 1 igual \"1\".\nmostrar(#a).\n")
	assert.Empty(t, res.Erros)
	assert.Empty(t, res.Avisos)
}

func TestAnalisar_ComparingLogicalAndNumberWarns(t *testing.T) {
	res := analyze(t, "RAINBOW.\n#a recebe Verdadeiro igual 1.\n")
	assert.Empty(t, res.Erros)
	require.NotEmpty(t, res.Avisos)
	assert.Contains(t, res.Avisos[0], "comparando tipos diferentes")
}

func TestAnalisar_ListValueRejectedInArithmetic(t *testing.T) {
	res := analyze(t, "RAINBOW.\nlista #l.\n#a recebe #l + 1.\n")
	require.NotEmpty(t, res.Erros)
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
