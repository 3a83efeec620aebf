/*
File    : rainbow/repl/repl_test.go
*/
package repl

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/rainbow/lexer"
	"github.com/stretchr/testify/assert"
)

func TestSessao_ExecutesEachLineExactlyOnce(t *testing.T) {
	var out bytes.Buffer
	sess := novaSessao(&out, lexer.DefaultLimits)

	sess.executarLinha(&out, "#a recebe 10.")
	sess.executarLinha(&out, "#b recebe 5.")
	sess.executarLinha(&out, "mostrar(#a + #b).")
	sess.executarLinha(&out, "mostrar(#a * #b).")

	assert.Equal(t, "15\n50\n", out.String())
}

func TestSessao_LaterLinesSeeEarlierDeclarations(t *testing.T) {
	var out bytes.Buffer
	sess := novaSessao(&out, lexer.DefaultLimits)

	sess.executarLinha(&out, "numero #x.")
	sess.executarLinha(&out, "#x recebe 42.")
	sess.executarLinha(&out, "mostrar(#x).")

	assert.Equal(t, "42\n", out.String())
}

func TestSessao_SyntaxErrorOnOneLineDoesNotReplayPriorOutput(t *testing.T) {
	var out bytes.Buffer
	sess := novaSessao(&out, lexer.DefaultLimits)

	sess.executarLinha(&out, "mostrar(\"oi\").")
	out.Reset()
	sess.executarLinha(&out, "#a recebe.")

	assert.NotContains(t, out.String(), "oi")
}
