package value

import "github.com/mna/golox/lang/ast"

// Interp is the slice of the interpreter that Function.Call needs: enough
// to execute a function body in a fresh environment without Function
// itself depending on the concrete Interpreter type.
type Interp interface {
	ExecuteBlock(stmts []ast.Stmt, env *Environment) error
}

// Callable is implemented by every Lox value that can appear as the callee
// of a Call expression: user functions, bound methods, classes, and native
// functions.
type Callable interface {
	Arity() int
	Call(in Interp, args []Value) (Value, error)
	String() string
}

// Return is the non-local control-flow signal a return statement raises,
// per spec.md §4.6/§7. It is caught only by the innermost Function.Call
// frame and must never be reported as a runtime error.
type Return struct {
	Value Value
}

func (r *Return) Error() string { return "return outside of a function call" }
