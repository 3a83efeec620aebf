/*
File    : rainbow/repl/repl.go
*/

// Package repl implements Rainbow's interactive Read-Eval-Print Loop: one
// line in, lexed/parsed/analyzed/executed against a session that persists
// across lines, one result or diagnostic out.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/rainbow/config"
	"github.com/akashmaji946/rainbow/interp"
	"github.com/akashmaji946/rainbow/lexer"
	"github.com/akashmaji946/rainbow/parser"
	"github.com/akashmaji946/rainbow/semantic"
)

// arquivoConfig is the config file the REPL looks for in the current
// working directory, same as cli's per-source-file lookup but rooted at
// the shell's cwd since a REPL session has no source file of its own.
const arquivoConfig = ".rainbowrc.yaml"

var (
	corAzul     = color.New(color.FgBlue)
	corAmarelo  = color.New(color.FgYellow)
	corVermelho = color.New(color.FgRed)
	corVerde    = color.New(color.FgGreen)
	corCiano    = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session: the
// banner, version/author/license strings shown at startup, and the
// prompt readline displays before each line.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Linha   string
	License string
	Prompt  string
}

// NewRepl builds a Repl with the given display configuration.
func NewRepl(banner, version, author, linha, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Linha: linha, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to w.
func (r *Repl) PrintBannerInfo(w io.Writer) {
	corAzul.Fprintf(w, "%s\n", r.Linha)
	corVerde.Fprintf(w, "%s\n", r.Banner)
	corAzul.Fprintf(w, "%s\n", r.Linha)
	corAmarelo.Fprintln(w, "Versao: "+r.Version+" | Autor: "+r.Author+" | Licenca: "+r.License)
	corAzul.Fprintf(w, "%s\n", r.Linha)
	corCiano.Fprintln(w, "Bem-vindo ao Rainbow!")
	corCiano.Fprintln(w, "Digite seu codigo e pressione Enter")
	corCiano.Fprintln(w, "Digite '.sair' para encerrar")
	corCiano.Fprintln(w, "Use as setas para cima/baixo para navegar pelo historico")
	corAzul.Fprintf(w, "%s\n", r.Linha)
}

// sessao accumulates a program across lines: each line is appended,
// re-lexed, re-parsed, and re-analyzed against the whole buffer so later
// lines see variables declared by earlier ones, then only the freshly
// added statements are executed against a persistent interpreter.
type sessao struct {
	fonte     strings.Builder
	executor  *interp.Interp
	linhas    int
	executado int // count of Program.Children already executed
	limites   lexer.Limits
}

func novaSessao(w io.Writer, limites lexer.Limits) *sessao {
	in := interp.New()
	in.SetWriter(w)
	return &sessao{executor: in, limites: limites}
}

// Start runs the REPL main loop, writing banner/results/errors to w.
// Lines are read by readline (history/editing) from the process's
// standard input; rd is not read.
func (r *Repl) Start(rd io.Reader, w io.Writer) {
	cfg, err := config.Carregar(arquivoConfig)
	if err != nil {
		cfg = config.Padrao()
	}
	color.NoColor = !cfg.Cores

	r.PrintBannerInfo(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		corVermelho.Fprintf(w, "nao foi possivel iniciar o readline: %v\n", err)
		return
	}
	defer rl.Close()

	sess := novaSessao(w, cfg.Limits())

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Ate logo!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".sair" {
			w.Write([]byte("Ate logo!\n"))
			return
		}
		rl.SaveHistory(line)
		sess.executarLinha(w, line)
	}
}

// executarLinha appends line to the session buffer and re-analyzes the
// whole program so far, executing only the statements not yet executed.
// A line that yields a lexical, syntax, semantic, or runtime error is
// reported and then removed from the buffer, so later lines are not
// blocked by it. Warnings cover the whole buffer, so a warning from an
// earlier line is printed again with each later line.
func (s *sessao) executarLinha(w io.Writer, line string) {
	anterior, linhasAnteriores := s.fonte.String(), s.linhas
	aceita := false
	defer func() {
		if !aceita {
			s.fonte.Reset()
			s.fonte.WriteString(anterior)
			s.linhas = linhasAnteriores
		}
	}()

	if s.linhas == 0 && !strings.HasPrefix(strings.TrimSpace(line), "RAINBOW") {
		s.fonte.WriteString("RAINBOW.\n")
	}
	s.fonte.WriteString(line + "\n")
	s.linhas++

	src := s.fonte.String()
	tokens, lexErros, _ := lexer.NewWithLimits(src, s.limites).Analisar()
	if len(lexErros) > 0 {
		corVermelho.Fprintln(w, lexErros[len(lexErros)-1])
		return
	}
	prog, synErros := parser.New(tokens).Analisar()
	if len(synErros) > 0 {
		corVermelho.Fprintln(w, synErros[len(synErros)-1])
		return
	}

	result := semantic.NewAnalyzer().Analisar(prog)
	for _, a := range result.Avisos {
		corAmarelo.Fprintln(w, a)
	}
	if len(result.Erros) > 0 {
		corVermelho.Fprintln(w, result.Erros[len(result.Erros)-1])
		return
	}

	if err := s.executor.ExecutarDesde(prog, s.executado); err != nil {
		corVermelho.Fprintln(w, err.Error())
		return
	}
	s.executado = len(prog.Children)
	aceita = true
}
