/*
File    : rainbow/cli/sidecars.go
*/

// Package cli implements the `<stage> <path>` command surface spec.md §6
// describes: a uniform shape for running the lexer, parser, or semantic
// analyzer over a `.rainbow` source file and writing its sidecar
// artifacts next to it.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/akashmaji946/rainbow/lexer"
	"github.com/akashmaji946/rainbow/parser"
	"github.com/akashmaji946/rainbow/rainbowerr"
	"github.com/akashmaji946/rainbow/semantic"
)

// stem strips a known source extension, leaving the path sidecars are
// written alongside (`foo.rainbow` -> `foo`).
func stem(path string) string {
	return strings.TrimSuffix(path, ".rainbow")
}

func escreverLinhas(path string, linhas []string, vazio string) error {
	var b strings.Builder
	if len(linhas) == 0 {
		b.WriteString(vazio + "\n")
	}
	for _, l := range linhas {
		b.WriteString(l + "\n")
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// EscreverTokens writes the `.tokens` sidecar: one line per token plus a
// summary footer of how many tokens were produced.
func EscreverTokens(path string, tokens []lexer.Token) error {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.String() + "\n")
	}
	fmt.Fprintf(&b, "--- %d tokens ---\n", len(tokens))
	return os.WriteFile(stem(path)+".tokens", []byte(b.String()), 0o644)
}

// EscreverErrosLexicos writes the `.errors` sidecar.
func EscreverErrosLexicos(path string, erros []string) error {
	return escreverLinhas(stem(path)+".errors", erros, rainbowerr.SemNenhumErro)
}

// EscreverStats writes the `.stats` sidecar: totals, per-kind token
// counts, reserved words used, and variables seen, each sorted for
// deterministic output.
func EscreverStats(path string, stats *lexer.Stats) error {
	var b strings.Builder
	fmt.Fprintf(&b, "linhas: %d\n", stats.TotalLinhas)
	fmt.Fprintf(&b, "caracteres: %d\n", stats.TotalCaracteres)

	b.WriteString("tokens por tipo:\n")
	for _, tipo := range sortedTokenTypeKeys(stats.TokensPorTipo) {
		fmt.Fprintf(&b, "  %s: %d\n", tipo, stats.TokensPorTipo[tipo])
	}

	b.WriteString("palavras reservadas usadas:\n")
	for _, p := range sortedStringKeys(stats.PalavrasUsadas) {
		fmt.Fprintf(&b, "  %s\n", p)
	}

	b.WriteString("variaveis vistas:\n")
	for _, v := range sortedStringKeys(stats.VariaveisVistas) {
		fmt.Fprintf(&b, "  %s\n", v)
	}

	return os.WriteFile(stem(path)+".stats", []byte(b.String()), 0o644)
}

func sortedStringKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedTokenTypeKeys(m map[lexer.TokenType]int) []lexer.TokenType {
	out := make([]lexer.TokenType, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// lexicoJSON is the `.json` sidecar's shape: the full machine-readable
// form of the token stream, errors, and stats.
type lexicoJSON struct {
	Tokens []lexer.Token   `json:"tokens"`
	Erros  []string        `json:"erros"`
	Stats  *lexer.Stats    `json:"stats"`
}

// EscreverLexicoJSON writes the `.json` sidecar.
func EscreverLexicoJSON(path string, tokens []lexer.Token, erros []string, stats *lexer.Stats) error {
	data, err := json.MarshalIndent(lexicoJSON{Tokens: tokens, Erros: erros, Stats: stats}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(stem(path)+".json", data, 0o644)
}

// EscreverAST writes the `.ast` sidecar: the indented tree dump.
func EscreverAST(path string, prog *parser.Program) error {
	return os.WriteFile(stem(path)+".ast", []byte(prog.Dump()), 0o644)
}

type astJSON struct {
	AST   *parser.JSONNode `json:"ast"`
	Erros []string         `json:"erros"`
}

// EscreverASTJSON writes the `.ast.json` sidecar: the JSON AST plus the
// syntax-error list gathered during the same parse.
func EscreverASTJSON(path string, prog *parser.Program, erros []string) error {
	data, err := json.MarshalIndent(astJSON{AST: prog.ToJSON(), Erros: erros}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(stem(path)+".ast.json", data, 0o644)
}

// EscreverErrosSintaticos writes the `.syntax.errors` sidecar.
func EscreverErrosSintaticos(path string, erros []string) error {
	return escreverLinhas(stem(path)+".syntax.errors", erros, rainbowerr.SemNenhumErro)
}

// EscreverSimbolos writes the `.simbolos` sidecar: every known symbol with
// its used/unused marker, scope, and type.
func EscreverSimbolos(path string, table *semantic.Table) error {
	simbolos := table.Todas()
	sort.Slice(simbolos, func(i, j int) bool {
		if simbolos[i].Linha != simbolos[j].Linha {
			return simbolos[i].Linha < simbolos[j].Linha
		}
		return simbolos[i].Coluna < simbolos[j].Coluna
	})

	var b strings.Builder
	for _, s := range simbolos {
		marcador := "usado"
		if !s.Usado {
			marcador = "nao usado"
		}
		fmt.Fprintf(&b, "Linha: %02d - Coluna: %02d - %s : %s [%s] (%s)\n", s.Linha, s.Coluna, s.Name, s.Type, s.Scope, marcador)
	}
	if len(simbolos) == 0 {
		b.WriteString("nenhum simbolo declarado\n")
	}
	return os.WriteFile(stem(path)+".simbolos", []byte(b.String()), 0o644)
}

// EscreverErrosSemanticos writes the `.semantic.errors` sidecar: errors
// followed by warnings, in that order.
func EscreverErrosSemanticos(path string, erros, avisos []string) error {
	todas := append(append([]string{}, erros...), avisos...)
	return escreverLinhas(stem(path)+".semantic.errors", todas, rainbowerr.SemNenhumErro)
}

type semanticoJSON struct {
	Erros   []string          `json:"erros"`
	Avisos  []string          `json:"avisos"`
	Simbolos []*semantic.Symbol `json:"simbolos"`
}

// EscreverSemanticoJSON writes the `.semantic.json` sidecar.
func EscreverSemanticoJSON(path string, result *semantic.Result) error {
	data, err := json.MarshalIndent(semanticoJSON{
		Erros: result.Erros, Avisos: result.Avisos, Simbolos: result.Table.Todas(),
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(stem(path)+".semantic.json", data, 0o644)
}

type analysisJSON struct {
	Lexico lexicoJSON `json:"lexico"`
	AST    astJSON    `json:"ast"`
}

// EscreverAnalysisJSON writes the `.analysis.json` sidecar: the combined
// lex + parse artifact, for hosts that want a single file to read.
func EscreverAnalysisJSON(path string, tokens []lexer.Token, lexErros []string, stats *lexer.Stats, prog *parser.Program, synErros []string) error {
	data, err := json.MarshalIndent(analysisJSON{
		Lexico: lexicoJSON{Tokens: tokens, Erros: lexErros, Stats: stats},
		AST:    astJSON{AST: prog.ToJSON(), Erros: synErros},
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(stem(path)+".analysis.json", data, 0o644)
}
