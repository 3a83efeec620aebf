/*
File    : rainbow/interp/value.go
*/

// Package interp implements the tree-walking interpreter for Rainbow
// (spec.md §5). It executes a parser.Program directly rather than
// re-lexing source text line by line.
package interp

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/rainbow/semantic"
)

// ValueKind tags the runtime shape of a Value.
type ValueKind string

const (
	KindNumero  ValueKind = "numero"
	KindTexto   ValueKind = "texto"
	KindLogico  ValueKind = "logico"
	KindIndef   ValueKind = "indefinido"
)

// Value is Rainbow's single runtime value representation: a tagged union
// over the three executable types (numero/texto/logico). Numero keeps
// both an int64 and a float64 so integer arithmetic stays exact until a
// decimal operand forces promotion (spec.md §5).
type Value struct {
	Kind    ValueKind
	Inteiro int64
	Decimal float64
	IsFloat bool
	Texto   string
	Logico  bool
}

// Numero builds an integer-valued Value.
func Numero(i int64) Value { return Value{Kind: KindNumero, Inteiro: i} }

// NumeroDecimal builds a float-valued Value.
func NumeroDecimal(f float64) Value { return Value{Kind: KindNumero, Decimal: f, IsFloat: true} }

// Texto builds a text-valued Value.
func Texto(s string) Value { return Value{Kind: KindTexto, Texto: s} }

// Logico builds a boolean-valued Value.
func Logico(b bool) Value { return Value{Kind: KindLogico, Logico: b} }

// Indefinido is the zero value returned where a statement produces no
// meaningful result and on unrecoverable runtime errors.
var Indefinido = Value{Kind: KindIndef}

// AsFloat64 returns v's numeric value as a float64, regardless of whether
// it is carrying an int64 or a float64 internally. Only valid for Numero.
func (v Value) AsFloat64() float64 {
	if v.IsFloat {
		return v.Decimal
	}
	return float64(v.Inteiro)
}

// TipoSemantico maps a runtime Value back to its semantic.Type, giving
// the name the analyzer uses for the same type. Runtime error messages
// report the ValueKind instead.
func (v Value) TipoSemantico() semantic.Type {
	switch v.Kind {
	case KindNumero:
		return semantic.Number
	case KindTexto:
		return semantic.Text
	case KindLogico:
		return semantic.Logical
	default:
		return semantic.Undefined
	}
}

// ToString renders a Value the way `mostrar` prints it: integers with no
// decimal point, floats with Go's shortest round-trip form, booleans as
// the capitalized Rainbow literals, matching spec.md §5's display rules.
func (v Value) ToString() string {
	switch v.Kind {
	case KindNumero:
		if v.IsFloat {
			return strconv.FormatFloat(v.Decimal, 'g', -1, 64)
		}
		return strconv.FormatInt(v.Inteiro, 10)
	case KindTexto:
		return v.Texto
	case KindLogico:
		if v.Logico {
			return "Verdadeiro"
		}
		return "Falso"
	default:
		return ""
	}
}

// Verdadeiro implements Rainbow's truthiness rule used by se/enquanto:
// Logico uses its own value; Numero is true when non-zero; Texto is true
// when non-empty; Indefinido is always false.
func (v Value) Verdadeiro() bool {
	switch v.Kind {
	case KindLogico:
		return v.Logico
	case KindNumero:
		return v.AsFloat64() != 0
	case KindTexto:
		return v.Texto != ""
	default:
		return false
	}
}

func (v Value) String() string {
	return fmt.Sprintf("%s(%s)", v.Kind, v.ToString())
}
