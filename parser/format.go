/*
File    : rainbow/parser/format.go
*/
package parser

import (
	"fmt"
	"strings"
)

const dumpIndentSize = 2

// Dump renders the AST as the indented tree the `.ast` sidecar expects:
// each node's kind, a short value summary, and its source position.
func (prog *Program) Dump() string {
	var b strings.Builder
	dumpNode(&b, prog, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, n Node, indent int) {
	if n == nil {
		return
	}
	linha, coluna := n.Position()
	pad := strings.Repeat(" ", indent*dumpIndentSize)

	switch node := n.(type) {
	case *Program:
		fmt.Fprintf(b, "%s%s (linha %d, coluna %d)\n", pad, node.Kind(), linha, coluna)
		for _, c := range node.Children {
			dumpNode(b, c, indent+1)
		}
	case *VarDecl:
		fmt.Fprintf(b, "%s%s tipo=%s nome=%s (linha %d, coluna %d)\n", pad, node.Kind(), node.DeclaredType, node.Name, linha, coluna)
	case *Assign:
		fmt.Fprintf(b, "%s%s nome=%s (linha %d, coluna %d)\n", pad, node.Kind(), node.Name, linha, coluna)
		dumpNode(b, node.Expr, indent+1)
	case *If:
		fmt.Fprintf(b, "%s%s (linha %d, coluna %d)\n", pad, node.Kind(), linha, coluna)
		fmt.Fprintf(b, "%scond:\n", strings.Repeat(" ", (indent+1)*dumpIndentSize))
		dumpNode(b, node.Cond, indent+2)
		fmt.Fprintf(b, "%sentao:\n", strings.Repeat(" ", (indent+1)*dumpIndentSize))
		dumpNode(b, node.Then, indent+2)
		for i, ec := range node.ElifConds {
			fmt.Fprintf(b, "%ssenaose:\n", strings.Repeat(" ", (indent+1)*dumpIndentSize))
			dumpNode(b, ec, indent+2)
			dumpNode(b, node.ElifBlocks[i], indent+2)
		}
		if node.Else != nil {
			fmt.Fprintf(b, "%ssenao:\n", strings.Repeat(" ", (indent+1)*dumpIndentSize))
			dumpNode(b, node.Else, indent+2)
		}
	case *ForRange:
		fmt.Fprintf(b, "%s%s var=%s (linha %d, coluna %d)\n", pad, node.Kind(), node.Var, linha, coluna)
		dumpNode(b, node.Start, indent+1)
		dumpNode(b, node.End, indent+1)
		dumpNode(b, node.Step, indent+1)
		dumpNode(b, node.Body, indent+1)
	case *While:
		fmt.Fprintf(b, "%s%s (linha %d, coluna %d)\n", pad, node.Kind(), linha, coluna)
		dumpNode(b, node.Cond, indent+1)
		dumpNode(b, node.Body, indent+1)
	case *Call:
		fmt.Fprintf(b, "%s%s nome=%s (linha %d, coluna %d)\n", pad, node.Kind(), node.Name, linha, coluna)
		for _, a := range node.Args {
			dumpNode(b, a, indent+1)
		}
	case *BinOp:
		fmt.Fprintf(b, "%s%s op=%s (linha %d, coluna %d)\n", pad, node.Kind(), node.Op, linha, coluna)
		dumpNode(b, node.Lhs, indent+1)
		dumpNode(b, node.Rhs, indent+1)
	case *UnOp:
		fmt.Fprintf(b, "%s%s op=%s (linha %d, coluna %d)\n", pad, node.Kind(), node.Op, linha, coluna)
		dumpNode(b, node.Operand, indent+1)
	case *Var:
		fmt.Fprintf(b, "%s%s nome=%s (linha %d, coluna %d)\n", pad, node.Kind(), node.Name, linha, coluna)
	case *Literal:
		fmt.Fprintf(b, "%s%s tipo=%s valor=%v (linha %d, coluna %d)\n", pad, node.Kind(), node.LitKind, node.Value, linha, coluna)
	case *Block:
		fmt.Fprintf(b, "%s%s (linha %d, coluna %d)\n", pad, node.Kind(), linha, coluna)
		for _, c := range node.Children {
			dumpNode(b, c, indent+1)
		}
	default:
		fmt.Fprintf(b, "%s<desconhecido> (linha %d, coluna %d)\n", pad, linha, coluna)
	}
}

// JSONNode is the serializable shape written to `.ast.json`. Children is
// populated with nested JSONNode values so the whole tree round-trips
// through encoding/json without custom (Un)MarshalJSON methods on Node.
type JSONNode struct {
	Kind     NodeKind    `json:"kind"`
	Linha    int         `json:"linha"`
	Coluna   int         `json:"coluna"`
	Fields   map[string]interface{} `json:"fields,omitempty"`
	Children []*JSONNode `json:"children,omitempty"`
}

// ToJSON converts the AST into its JSON-serializable shape.
func (prog *Program) ToJSON() *JSONNode {
	return toJSONNode(prog)
}

func toJSONNode(n Node) *JSONNode {
	if n == nil {
		return nil
	}
	linha, coluna := n.Position()
	jn := &JSONNode{Kind: n.Kind(), Linha: linha, Coluna: coluna, Fields: map[string]interface{}{}}

	switch node := n.(type) {
	case *Program:
		for _, c := range node.Children {
			jn.Children = append(jn.Children, toJSONNode(c))
		}
	case *VarDecl:
		jn.Fields["tipo"] = string(node.DeclaredType)
		jn.Fields["nome"] = node.Name
	case *Assign:
		jn.Fields["nome"] = node.Name
		jn.Children = append(jn.Children, toJSONNode(node.Expr))
	case *If:
		jn.Children = append(jn.Children, toJSONNode(node.Cond), toJSONNode(node.Then))
		for i := range node.ElifConds {
			jn.Children = append(jn.Children, toJSONNode(node.ElifConds[i]), toJSONNode(node.ElifBlocks[i]))
		}
		if node.Else != nil {
			jn.Children = append(jn.Children, toJSONNode(node.Else))
		}
	case *ForRange:
		jn.Fields["var"] = node.Var
		jn.Children = append(jn.Children, toJSONNode(node.Start), toJSONNode(node.End), toJSONNode(node.Step), toJSONNode(node.Body))
	case *While:
		jn.Children = append(jn.Children, toJSONNode(node.Cond), toJSONNode(node.Body))
	case *Call:
		jn.Fields["nome"] = node.Name
		for _, a := range node.Args {
			jn.Children = append(jn.Children, toJSONNode(a))
		}
	case *BinOp:
		jn.Fields["op"] = string(node.Op)
		jn.Children = append(jn.Children, toJSONNode(node.Lhs), toJSONNode(node.Rhs))
	case *UnOp:
		jn.Fields["op"] = string(node.Op)
		jn.Children = append(jn.Children, toJSONNode(node.Operand))
	case *Var:
		jn.Fields["nome"] = node.Name
	case *Literal:
		jn.Fields["litKind"] = string(node.LitKind)
		jn.Fields["valor"] = node.Value
	case *Block:
		for _, c := range node.Children {
			jn.Children = append(jn.Children, toJSONNode(c))
		}
	}
	return jn
}
