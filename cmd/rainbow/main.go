/*
File    : rainbow/cmd/rainbow/main.go
*/

// Command rainbow is the entry point for the Rainbow language tools. It
// provides both the pipeline-stage CLI (`rainbow lex|parse|analyze|run
// <file>`) and an interactive REPL when invoked with no arguments.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/rainbow/cli"
	"github.com/akashmaji946/rainbow/repl"
)

// VERSION is the current release of the Rainbow tools.
var VERSION = "v1.0.0"

// AUTHOR is the contact listed in --version output.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE is the software license shown in --version output.
var LICENCE = "MIT"

// PROMPT is the line readline displays before each REPL input.
var PROMPT = "rainbow >>> "

// BANNER is the ASCII art shown at REPL startup.
var BANNER = `
 ____       _       _
|  _ \ __ _(_)_ __ | |__   _____      __
| |_) / _' | | '_ \| '_ \ / _ \ \ /\ / /
|  _ < (_| | | | | | |_) | (_) \ V  V /
|_| \_\__,_|_|_| |_|_.__/ \___/ \_/\_/
`

// LINHA is the separator rule used around the REPL banner.
var LINHA = "----------------------------------------------------------------"

var (
	corVermelho = color.New(color.FgRed)
	corCiano    = color.New(color.FgCyan)
	corAmarelo  = color.New(color.FgYellow)
)

func main() {
	if len(os.Args) < 2 {
		startRepl()
		return
	}

	switch os.Args[1] {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		showVersion()
	case "lex", "parse", "analyze", "run":
		if len(os.Args) < 3 {
			corVermelho.Fprintf(os.Stderr, "uso: rainbow %s <arquivo.rainbow>\n", os.Args[1])
			os.Exit(1)
		}
		os.Exit(runStage(os.Args[1], os.Args[2]))
	default:
		corVermelho.Fprintf(os.Stderr, "comando desconhecido: %s\n", os.Args[1])
		showHelp()
		os.Exit(1)
	}
}

func runStage(stage, path string) int {
	switch stage {
	case "lex":
		return cli.Lex(path, os.Stdout)
	case "parse":
		return cli.Parse(path, os.Stdout)
	case "analyze":
		return cli.Analyze(path, os.Stdout)
	case "run":
		return cli.Run(path, os.Stdout, os.Stdin)
	}
	return 1
}

func startRepl() {
	r := repl.NewRepl(BANNER, VERSION, AUTHOR, LINHA, LICENCE, PROMPT)
	r.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	corCiano.Println("Rainbow - uma linguagem de programacao pedagogica")
	corCiano.Println("")
	corCiano.Println("USO:")
	corAmarelo.Println("  rainbow                        Inicia o REPL interativo")
	corAmarelo.Println("  rainbow lex <arquivo>          Executa o analisador lexico")
	corAmarelo.Println("  rainbow parse <arquivo>        Executa o analisador sintatico")
	corAmarelo.Println("  rainbow analyze <arquivo>      Executa o analisador semantico")
	corAmarelo.Println("  rainbow run <arquivo>          Executa o programa")
	corAmarelo.Println("  rainbow --help                 Mostra esta mensagem")
	corAmarelo.Println("  rainbow --version              Mostra a versao")
}

func showVersion() {
	fmt.Printf("Rainbow %s | Licenca: %s | Autor: %s\n", VERSION, LICENCE, AUTHOR)
}
