/*
File    : rainbow/cli/runner.go
*/
package cli

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/akashmaji946/rainbow/config"
	"github.com/akashmaji946/rainbow/interp"
	"github.com/akashmaji946/rainbow/lexer"
	"github.com/akashmaji946/rainbow/parser"
	"github.com/akashmaji946/rainbow/semantic"
)

// Color definitions for console echo, one per diagnostic severity plus
// an informational and a success tone.
var (
	corErro    = color.New(color.FgRed)
	corAviso   = color.New(color.FgYellow)
	corInfo    = color.New(color.FgCyan)
	corSucesso = color.New(color.FgGreen)
	corSaida   = color.New(color.FgBlue)
)

func lerFonte(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// carregarConfig loads `.rainbowrc.yaml` from the same directory as path
// (Padrao() when absent), and applies its Cores flag to the package's
// color output so a config that disables colors takes effect immediately.
func carregarConfig(path string) config.Config {
	cfg, err := config.Carregar(filepath.Join(filepath.Dir(path), ".rainbowrc.yaml"))
	if err != nil {
		cfg = config.Padrao()
	}
	color.NoColor = !cfg.Cores
	return cfg
}

// Lex runs the lexer stage over path, writes its sidecars, echoes errors
// to w, and returns the process exit code (0 only when the lex produced
// no errors).
func Lex(path string, w io.Writer) int {
	cfg := carregarConfig(path)
	src, err := lerFonte(path)
	if err != nil {
		corErro.Fprintf(w, "nao foi possivel ler '%s': %v\n", path, err)
		return 1
	}
	tokens, erros, stats := lexer.NewWithLimits(src, cfg.Limits()).Analisar()

	_ = EscreverTokens(path, tokens)
	_ = EscreverErrosLexicos(path, erros)
	_ = EscreverStats(path, stats)
	_ = EscreverLexicoJSON(path, tokens, erros, stats)

	for _, e := range erros {
		corErro.Fprintln(w, e)
	}
	if len(erros) == 0 {
		corSucesso.Fprintf(w, "analise lexica concluida: %d tokens, nenhum erro\n", len(tokens))
		return 0
	}
	return 1
}

// Parse runs lex then parse, writes the parser's sidecars, and returns
// the parser's own exit code — a clean lex with dirty parse still
// returns nonzero, matching spec.md §6.
func Parse(path string, w io.Writer) int {
	cfg := carregarConfig(path)
	src, err := lerFonte(path)
	if err != nil {
		corErro.Fprintf(w, "nao foi possivel ler '%s': %v\n", path, err)
		return 1
	}
	tokens, _, _ := lexer.NewWithLimits(src, cfg.Limits()).Analisar()
	prog, erros := parser.New(tokens).Analisar()

	_ = EscreverAST(path, prog)
	_ = EscreverASTJSON(path, prog, erros)
	_ = EscreverErrosSintaticos(path, erros)

	for _, e := range erros {
		corErro.Fprintln(w, e)
	}
	if len(erros) == 0 {
		corSucesso.Fprintln(w, "analise sintatica concluida sem erros")
		return 0
	}
	return 1
}

// Analyze runs lex, parse, and the semantic pass, writes its sidecars and
// the combined `.analysis.json`, and returns the semantic stage's exit
// code (errors block; warnings don't, per spec.md §7).
func Analyze(path string, w io.Writer) int {
	cfg := carregarConfig(path)
	src, err := lerFonte(path)
	if err != nil {
		corErro.Fprintf(w, "nao foi possivel ler '%s': %v\n", path, err)
		return 1
	}
	tokens, lexErros, stats := lexer.NewWithLimits(src, cfg.Limits()).Analisar()
	prog, synErros := parser.New(tokens).Analisar()
	result := semantic.NewAnalyzer().Analisar(prog)

	_ = EscreverAnalysisJSON(path, tokens, lexErros, stats, prog, synErros)
	_ = EscreverSimbolos(path, result.Table)
	_ = EscreverErrosSemanticos(path, result.Erros, result.Avisos)
	_ = EscreverSemanticoJSON(path, result)

	for _, e := range result.Erros {
		corErro.Fprintln(w, e)
	}
	for _, a := range result.Avisos {
		corAviso.Fprintln(w, a)
	}
	if len(result.Erros) == 0 {
		corSucesso.Fprintln(w, "analise semantica concluida")
		return 0
	}
	return 1
}

// Run gates execution behind a clean lex + parse (spec.md §4.4's compile
// check), then interprets the program, streaming mostrar output to w and
// reading ler prompts from r.
func Run(path string, w io.Writer, r io.Reader) int {
	cfg := carregarConfig(path)
	src, err := lerFonte(path)
	if err != nil {
		corErro.Fprintf(w, "nao foi possivel ler '%s': %v\n", path, err)
		return 1
	}
	tokens, lexErros, _ := lexer.NewWithLimits(src, cfg.Limits()).Analisar()
	if len(lexErros) > 0 {
		corErro.Fprintln(w, "execucao recusada: erros lexicos presentes")
		for _, e := range lexErros {
			corErro.Fprintln(w, e)
		}
		return 1
	}
	prog, synErros := parser.New(tokens).Analisar()
	if len(synErros) > 0 {
		corErro.Fprintln(w, "execucao recusada: erros sintaticos presentes")
		for _, e := range synErros {
			corErro.Fprintln(w, e)
		}
		return 1
	}

	result := semantic.NewAnalyzer().Analisar(prog)
	for _, a := range result.Avisos {
		corAviso.Fprintln(w, a)
	}

	in := interp.New()
	in.SetWriter(w)
	in.SetReader(bufio.NewReader(r))

	if err := in.Executar(prog); err != nil {
		corErro.Fprintln(w, err.Error())
		return 1
	}
	return 0
}
