package ast

import (
	"fmt"

	"github.com/mna/golox/lang/token"
)

type (
	// LiteralExpr represents a literal nil, boolean, number or string value.
	LiteralExpr struct {
		Token token.Token
		Value any // nil, bool, float64 or string
	}

	// GroupingExpr represents a parenthesized expression.
	GroupingExpr struct {
		Lparen token.Token
		Expr   Expr
		Rparen token.Token
	}

	// UnaryExpr represents a unary operator expression, e.g. -x or !x.
	UnaryExpr struct {
		Op    token.Token // BANG or MINUS
		Right Expr
	}

	// BinaryExpr represents a binary operator expression, e.g. x + y.
	BinaryExpr struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// LogicalExpr represents an "and" or "or" expression. Unlike BinaryExpr,
	// the right operand is only evaluated if short-circuiting does not apply.
	LogicalExpr struct {
		Left  Expr
		Op    token.Token // AND or OR
		Right Expr
	}

	// VariableExpr represents a variable reference by name. It is resolved by
	// node identity, so it must always be handled through its pointer.
	VariableExpr struct {
		Name token.Token
	}

	// AssignExpr represents an assignment to a variable, e.g. x = y. Like
	// VariableExpr, it is a resolver target keyed by node identity.
	AssignExpr struct {
		Name  token.Token
		Value Expr
	}

	// CallExpr represents a function or method call, e.g. f(a, b).
	CallExpr struct {
		Callee Expr
		Paren  token.Token // closing ')', used to report the call's line
		Args   []Expr
	}

	// GetExpr represents a property access, e.g. obj.field.
	GetExpr struct {
		Object Expr
		Name   token.Token
	}

	// SetExpr represents a property assignment, e.g. obj.field = value.
	SetExpr struct {
		Object Expr
		Name   token.Token
		Value  Expr
	}

	// ThisExpr represents a "this" reference inside a method body. It is a
	// resolver target keyed by node identity.
	ThisExpr struct {
		Keyword token.Token
	}

	// SuperExpr represents a "super.method" reference inside a method body
	// whose enclosing class has a superclass. It is a resolver target keyed
	// by node identity.
	SuperExpr struct {
		Keyword token.Token
		Method  token.Token
	}
)

func (n *LiteralExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, fmt.Sprintf("literal %v", n.Value), nil)
}
func (n *LiteralExpr) Span() (start, end int) { return n.Token.Line, n.Token.Line }
func (n *LiteralExpr) Walk(Visitor)           {}
func (n *LiteralExpr) expr()                  {}

func (n *GroupingExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "(expr)", nil) }
func (n *GroupingExpr) Span() (start, end int)        { return n.Lparen.Line, n.Rparen.Line }
func (n *GroupingExpr) Walk(v Visitor)                { Walk(v, n.Expr) }
func (n *GroupingExpr) expr()                         {}

func (n *UnaryExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "unary "+n.Op.Lexeme, nil)
}
func (n *UnaryExpr) Span() (start, end int) {
	_, end = n.Right.Span()
	return n.Op.Line, end
}
func (n *UnaryExpr) Walk(v Visitor) { Walk(v, n.Right) }
func (n *UnaryExpr) expr()          {}

func (n *BinaryExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "binary "+n.Op.Lexeme, nil)
}
func (n *BinaryExpr) Span() (start, end int) {
	start, _ = n.Left.Span()
	_, end = n.Right.Span()
	return start, end
}
func (n *BinaryExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *BinaryExpr) expr() {}

func (n *LogicalExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "logical "+n.Op.Lexeme, nil)
}
func (n *LogicalExpr) Span() (start, end int) {
	start, _ = n.Left.Span()
	_, end = n.Right.Span()
	return start, end
}
func (n *LogicalExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *LogicalExpr) expr() {}

func (n *VariableExpr) Format(f fmt.State, verb rune) { format(f, verb, n, n.Name.Lexeme, nil) }
func (n *VariableExpr) Span() (start, end int)        { return n.Name.Line, n.Name.Line }
func (n *VariableExpr) Walk(Visitor)                  {}
func (n *VariableExpr) expr()                         {}

func (n *AssignExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "assign "+n.Name.Lexeme, nil)
}
func (n *AssignExpr) Span() (start, end int) {
	_, end = n.Value.Span()
	return n.Name.Line, end
}
func (n *AssignExpr) Walk(v Visitor) { Walk(v, n.Value) }
func (n *AssignExpr) expr()          {}

func (n *CallExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "call", map[string]int{"args": len(n.Args)})
}
func (n *CallExpr) Span() (start, end int) {
	start, _ = n.Callee.Span()
	return start, n.Paren.Line
}
func (n *CallExpr) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}
func (n *CallExpr) expr() {}

func (n *GetExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "get "+n.Name.Lexeme, nil)
}
func (n *GetExpr) Span() (start, end int) {
	start, _ = n.Object.Span()
	return start, n.Name.Line
}
func (n *GetExpr) Walk(v Visitor) { Walk(v, n.Object) }
func (n *GetExpr) expr()          {}

func (n *SetExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "set "+n.Name.Lexeme, nil)
}
func (n *SetExpr) Span() (start, end int) {
	start, _ = n.Object.Span()
	_, end = n.Value.Span()
	return start, end
}
func (n *SetExpr) Walk(v Visitor) {
	Walk(v, n.Object)
	Walk(v, n.Value)
}
func (n *SetExpr) expr() {}

func (n *ThisExpr) Format(f fmt.State, verb rune) { format(f, verb, n, "this", nil) }
func (n *ThisExpr) Span() (start, end int)        { return n.Keyword.Line, n.Keyword.Line }
func (n *ThisExpr) Walk(Visitor)                  {}
func (n *ThisExpr) expr()                         {}

func (n *SuperExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "super."+n.Method.Lexeme, nil)
}
func (n *SuperExpr) Span() (start, end int) { return n.Keyword.Line, n.Method.Line }
func (n *SuperExpr) Walk(Visitor)           {}
func (n *SuperExpr) expr()                  {}
