/*
File    : rainbow/rainbowerr/rainbowerr.go
*/

// Package rainbowerr formats the diagnostics every pipeline stage
// produces into the single stable line shape spec.md §6 requires:
//
//	Linha: LL - Coluna: CC - Erro <Stage>: <message>
//	Linha: LL - Coluna: CC - Aviso: <message>
//
// with LL/CC zero-padded to two digits. The lexer, parser, semantic
// analyzer, and interpreter all build their position-tagged diagnostics
// through this package, so every stage shares one format, one place.
package rainbowerr

import "fmt"

// Estagio names which pipeline stage raised a diagnostic.
type Estagio string

const (
	Lexico    Estagio = "Lexico"
	Sintatico Estagio = "Sintatico"
	Semantico Estagio = "Semantico"
	Execucao  Estagio = "Execucao"
)

// Erro formats a stage error line.
func Erro(estagio Estagio, linha, coluna int, msg string, args ...interface{}) string {
	return fmt.Sprintf("Linha: %02d - Coluna: %02d - Erro %s: %s", linha, coluna, estagio, fmt.Sprintf(msg, args...))
}

// Aviso formats a warning line; warnings never carry a stage tag (they
// read `Aviso:`, not `Aviso <Stage>:`), matching every warning emitted
// elsewhere in the pipeline.
func Aviso(linha, coluna int, msg string, args ...interface{}) string {
	return fmt.Sprintf("Linha: %02d - Coluna: %02d - Aviso: %s", linha, coluna, fmt.Sprintf(msg, args...))
}

// SemNenhumErro is the line the `.errors`/`.syntax.errors`/`.semantic.errors`
// sidecars write when a stage produced no diagnostics of its kind, so the
// file is never silently empty.
const SemNenhumErro = "nenhum erro encontrado"
