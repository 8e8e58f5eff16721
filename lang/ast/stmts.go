package ast

import (
	"fmt"

	"github.com/mna/golox/lang/token"
)

type (
	// ExpressionStmt represents an expression evaluated for its side effect.
	ExpressionStmt struct {
		Expr Expr
	}

	// PrintStmt represents a "print" statement.
	PrintStmt struct {
		Keyword token.Token
		Expr    Expr
	}

	// VarStmt represents a "var" declaration, with an optional initializer.
	VarStmt struct {
		Name        token.Token
		Initializer Expr // may be nil
	}

	// BlockStmt represents a brace-delimited statement list introducing a new
	// lexical scope.
	BlockStmt struct {
		Block *Block
	}

	// IfStmt represents an "if" statement with an optional "else" branch.
	IfStmt struct {
		Keyword    token.Token
		Cond       Expr
		Then       Stmt
		ElseBranch Stmt // may be nil
	}

	// WhileStmt represents a "while" statement. The parser also desugars
	// "for" loops into a WhileStmt wrapped in a BlockStmt.
	WhileStmt struct {
		Keyword token.Token
		Cond    Expr
		Body    Stmt
	}

	// FunctionStmt represents a function declaration, or a method inside a
	// ClassStmt's Methods list.
	FunctionStmt struct {
		Name   token.Token
		Params []token.Token
		Body   *Block
	}

	// ReturnStmt represents a "return" statement with an optional value.
	ReturnStmt struct {
		Keyword token.Token
		Value   Expr // may be nil
	}

	// ClassStmt represents a class declaration with an optional superclass
	// and a set of methods.
	ClassStmt struct {
		Name       token.Token
		Superclass *VariableExpr // may be nil
		Methods    []*FunctionStmt
	}
)

func (n *ExpressionStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "expr stmt", nil) }
func (n *ExpressionStmt) Span() (start, end int)        { return n.Expr.Span() }
func (n *ExpressionStmt) Walk(v Visitor)                { Walk(v, n.Expr) }
func (n *ExpressionStmt) stmt()                         {}

func (n *PrintStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "print", nil) }
func (n *PrintStmt) Span() (start, end int) {
	_, end = n.Expr.Span()
	return n.Keyword.Line, end
}
func (n *PrintStmt) Walk(v Visitor) { Walk(v, n.Expr) }
func (n *PrintStmt) stmt()          {}

func (n *VarStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "var "+n.Name.Lexeme, nil)
}
func (n *VarStmt) Span() (start, end int) {
	end = n.Name.Line
	if n.Initializer != nil {
		_, end = n.Initializer.Span()
	}
	return n.Name.Line, end
}
func (n *VarStmt) Walk(v Visitor) {
	if n.Initializer != nil {
		Walk(v, n.Initializer)
	}
}
func (n *VarStmt) stmt() {}

func (n *BlockStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "block", map[string]int{"stmts": len(n.Block.Stmts)})
}
func (n *BlockStmt) Span() (start, end int) { return n.Block.Span() }
func (n *BlockStmt) Walk(v Visitor)         { Walk(v, n.Block) }
func (n *BlockStmt) stmt()                  {}

func (n *IfStmt) Format(f fmt.State, verb rune) {
	lbl := "if"
	if n.ElseBranch != nil {
		lbl += " else"
	}
	format(f, verb, n, lbl, nil)
}
func (n *IfStmt) Span() (start, end int) {
	_, end = n.Then.Span()
	if n.ElseBranch != nil {
		_, end = n.ElseBranch.Span()
	}
	return n.Keyword.Line, end
}
func (n *IfStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Then)
	if n.ElseBranch != nil {
		Walk(v, n.ElseBranch)
	}
}
func (n *IfStmt) stmt() {}

func (n *WhileStmt) Format(f fmt.State, verb rune) { format(f, verb, n, "while", nil) }
func (n *WhileStmt) Span() (start, end int) {
	_, end = n.Body.Span()
	return n.Keyword.Line, end
}
func (n *WhileStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Body)
}
func (n *WhileStmt) stmt() {}

func (n *FunctionStmt) Format(f fmt.State, verb rune) {
	format(f, verb, n, "fun "+n.Name.Lexeme, map[string]int{"params": len(n.Params)})
}
func (n *FunctionStmt) Span() (start, end int) {
	_, end = n.Body.Span()
	return n.Name.Line, end
}
func (n *FunctionStmt) Walk(v Visitor) { Walk(v, n.Body) }
func (n *FunctionStmt) stmt()          {}

func (n *ReturnStmt) Format(f fmt.State, verb rune) {
	var count int
	if n.Value != nil {
		count = 1
	}
	format(f, verb, n, "return", map[string]int{"expr": count})
}
func (n *ReturnStmt) Span() (start, end int) {
	end = n.Keyword.Line
	if n.Value != nil {
		_, end = n.Value.Span()
	}
	return n.Keyword.Line, end
}
func (n *ReturnStmt) Walk(v Visitor) {
	if n.Value != nil {
		Walk(v, n.Value)
	}
}
func (n *ReturnStmt) stmt() {}

func (n *ClassStmt) Format(f fmt.State, verb rune) {
	var inherits int
	if n.Superclass != nil {
		inherits = 1
	}
	format(f, verb, n, "class "+n.Name.Lexeme, map[string]int{
		"inherits": inherits,
		"methods":  len(n.Methods),
	})
}
func (n *ClassStmt) Span() (start, end int) {
	end = n.Name.Line
	for _, m := range n.Methods {
		_, end = m.Span()
	}
	return n.Name.Line, end
}
func (n *ClassStmt) Walk(v Visitor) {
	if n.Superclass != nil {
		Walk(v, n.Superclass)
	}
	for _, m := range n.Methods {
		Walk(v, m)
	}
}
func (n *ClassStmt) stmt() {}
