// Package interpreter implements the tree-walking evaluator described in
// spec.md §4.6: it executes the statement list a parser produced, using the
// resolver's scope-distance side table to resolve variable references and
// the lang/value runtime object model for everything it manipulates.
package interpreter

import (
	"fmt"
	"io"

	"github.com/mna/golox/lang/ast"
	"github.com/mna/golox/lang/errs"
	"github.com/mna/golox/lang/token"
	"github.com/mna/golox/lang/value"
)

// Interpreter walks a parsed, resolved program. Globals is the outermost
// environment, preseeded with the native clock function; environment is
// the current scope, saved and restored around every block.
type Interpreter struct {
	Globals     *value.Environment
	environment *value.Environment
	locals      map[ast.Node]int
	errs        *errs.List
	output      io.Writer

	// IsREPL controls whether a bare expression statement's value is echoed
	// to Output, per spec.md §7's "in REPL mode each line is independent".
	IsREPL bool

	// maxCallDepth caps nested calls made through evalCall (functions,
	// bound methods, classes and natives alike), per
	// internal/config.Config.MaxCallDepth; 0 means unlimited.
	maxCallDepth int
	callDepth    int
}

var _ value.Interp = (*Interpreter)(nil)

// New returns an Interpreter that writes print output to output and reports
// runtime errors to sink. maxCallDepth caps nested function calls (0 means
// unlimited), per internal/config.Config.MaxCallDepth.
func New(output io.Writer, sink *errs.List, maxCallDepth int) *Interpreter {
	globals := value.NewEnvironment(nil)
	globals.Define("clock", value.Clock)
	return &Interpreter{
		Globals:      globals,
		environment:  globals,
		locals:       make(map[ast.Node]int),
		errs:         sink,
		output:       output,
		maxCallDepth: maxCallDepth,
	}
}

// Interpret executes program, using locals as the resolver's scope-distance
// side table. It stops and reports at the first runtime error, per spec.md
// §7 ("caught at the interpret top level").
func (in *Interpreter) Interpret(program []ast.Stmt, locals map[ast.Node]int) {
	in.locals = locals
	for _, stmt := range program {
		if stmt == nil {
			continue
		}
		if err := in.exec(stmt); err != nil {
			in.reportRuntimeError(err)
			return
		}
	}
}

func (in *Interpreter) reportRuntimeError(err error) {
	if rerr, ok := err.(*errs.RuntimeError); ok {
		in.errs.ReportRuntime(rerr.Token, rerr.Msg)
		return
	}
	in.errs.ReportRuntime(token.Token{}, err.Error())
}

// ExecuteBlock runs stmts in env, restoring the interpreter's previous
// environment on every exit path: normal completion, a propagated runtime
// error, or a Return signal. It implements value.Interp so Function.Call
// can invoke it without importing this package.
func (in *Interpreter) ExecuteBlock(stmts []ast.Stmt, env *value.Environment) error {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range stmts {
		if stmt == nil {
			continue
		}
		if err := in.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// EnterCall increments the nested-call counter, reporting a runtime error
// against tok (the call's closing paren) if maxCallDepth is set and
// exceeded. Called from evalCall around every Callable invocation, so it
// catches Lox-level recursion regardless of whether the callee is a
// Function, a bound method, or a Class constructor.
func (in *Interpreter) EnterCall(tok token.Token) error {
	if in.maxCallDepth > 0 && in.callDepth >= in.maxCallDepth {
		return &errs.RuntimeError{Token: tok, Msg: "Stack overflow."}
	}
	in.callDepth++
	return nil
}

// ExitCall decrements the nested-call counter. It must be called once for
// every successful EnterCall, regardless of how the call returns.
func (in *Interpreter) ExitCall() { in.callDepth-- }

func (in *Interpreter) exec(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		v, err := in.eval(s.Expr)
		if err != nil {
			return err
		}
		if in.IsREPL {
			switch s.Expr.(type) {
			case *ast.AssignExpr, *ast.CallExpr:
				// assignments and calls are not echoed: their side effect, not
				// their value, is usually what the REPL user is after.
			default:
				fmt.Fprintln(in.output, value.Stringify(v))
			}
		}
		return nil

	case *ast.PrintStmt:
		v, err := in.eval(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.output, value.Stringify(v))
		return nil

	case *ast.VarStmt:
		var v value.Value
		if s.Initializer != nil {
			var err error
			v, err = in.eval(s.Initializer)
			if err != nil {
				return err
			}
		}
		in.environment.Define(s.Name.Lexeme, v)
		return nil

	case *ast.BlockStmt:
		return in.ExecuteBlock(s.Block.Stmts, value.NewEnvironment(in.environment))

	case *ast.IfStmt:
		cond, err := in.eval(s.Cond)
		if err != nil {
			return err
		}
		if value.Truthy(cond) {
			return in.exec(s.Then)
		} else if s.ElseBranch != nil {
			return in.exec(s.ElseBranch)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := in.eval(s.Cond)
			if err != nil {
				return err
			}
			if !value.Truthy(cond) {
				return nil
			}
			if err := in.exec(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := value.NewFunction(s, in.environment, false)
		in.environment.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var v value.Value
		if s.Value != nil {
			var err error
			v, err = in.eval(s.Value)
			if err != nil {
				return err
			}
		}
		return &value.Return{Value: v}

	case *ast.ClassStmt:
		return in.execClass(s)

	default:
		panic("interpreter: unexpected statement type")
	}
}

func (in *Interpreter) execClass(s *ast.ClassStmt) error {
	var super *value.Class
	if s.Superclass != nil {
		superVal, err := in.eval(s.Superclass)
		if err != nil {
			return err
		}
		var ok bool
		super, ok = superVal.(*value.Class)
		if !ok {
			return &errs.RuntimeError{Token: s.Superclass.Name, Msg: "Superclass must be a class."}
		}

		in.environment = value.NewEnvironment(in.environment)
		in.environment.Define("super", super)
	}

	methods := make(map[string]*value.Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = value.NewFunction(m, in.environment, m.Name.Lexeme == "init")
	}
	class := value.NewClass(s.Name.Lexeme, super, methods)

	if s.Superclass != nil {
		in.environment = in.environment.Enclosing
	}
	in.environment.Define(s.Name.Lexeme, class)
	return nil
}

func (in *Interpreter) eval(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return e.Value, nil

	case *ast.GroupingExpr:
		return in.eval(e.Expr)

	case *ast.UnaryExpr:
		return in.evalUnary(e)

	case *ast.BinaryExpr:
		return in.evalBinary(e)

	case *ast.LogicalExpr:
		return in.evalLogical(e)

	case *ast.VariableExpr:
		return in.lookUpVariable(e.Name, e)

	case *ast.AssignExpr:
		v, err := in.eval(e.Value)
		if err != nil {
			return nil, err
		}
		if dist, ok := in.locals[e]; ok {
			in.environment.AssignAt(dist, e.Name.Lexeme, v)
		} else if err := in.Globals.Assign(e.Name, v); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.CallExpr:
		return in.evalCall(e)

	case *ast.GetExpr:
		obj, err := in.eval(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*value.Instance)
		if !ok {
			return nil, &errs.RuntimeError{Token: e.Name, Msg: "Only instances have properties."}
		}
		return inst.Get(e.Name)

	case *ast.SetExpr:
		obj, err := in.eval(e.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*value.Instance)
		if !ok {
			return nil, &errs.RuntimeError{Token: e.Name, Msg: "Only instances have fields."}
		}
		v, err := in.eval(e.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(e.Name.Lexeme, v)
		return v, nil

	case *ast.ThisExpr:
		return in.lookUpVariable(e.Keyword, e)

	case *ast.SuperExpr:
		return in.evalSuper(e)

	default:
		panic("interpreter: unexpected expression type")
	}
}

func (in *Interpreter) evalUnary(e *ast.UnaryExpr) (value.Value, error) {
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Type {
	case token.BANG:
		return !value.Truthy(right), nil
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, &errs.RuntimeError{Token: e.Op, Msg: "Operand must be a number."}
		}
		return -n, nil
	default:
		panic("interpreter: unexpected unary operator")
	}
}

func (in *Interpreter) evalLogical(e *ast.LogicalExpr) (value.Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	switch e.Op.Type {
	case token.OR:
		if value.Truthy(left) {
			return left, nil
		}
	case token.AND:
		if !value.Truthy(left) {
			return left, nil
		}
	default:
		panic("interpreter: unexpected logical operator")
	}
	return in.eval(e.Right)
}

func (in *Interpreter) evalBinary(e *ast.BinaryExpr) (value.Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	numbers := func() (float64, float64, bool) {
		l, lok := left.(float64)
		r, rok := right.(float64)
		return l, r, lok && rok
	}

	switch e.Op.Type {
	case token.BANG_EQUAL:
		return !value.Equal(left, right), nil
	case token.EQUAL_EQUAL:
		return value.Equal(left, right), nil
	case token.GREATER:
		l, r, ok := numbers()
		if !ok {
			return nil, &errs.RuntimeError{Token: e.Op, Msg: "Operands must be numbers."}
		}
		return l > r, nil
	case token.GREATER_EQUAL:
		l, r, ok := numbers()
		if !ok {
			return nil, &errs.RuntimeError{Token: e.Op, Msg: "Operands must be numbers."}
		}
		return l >= r, nil
	case token.LESS:
		l, r, ok := numbers()
		if !ok {
			return nil, &errs.RuntimeError{Token: e.Op, Msg: "Operands must be numbers."}
		}
		return l < r, nil
	case token.LESS_EQUAL:
		l, r, ok := numbers()
		if !ok {
			return nil, &errs.RuntimeError{Token: e.Op, Msg: "Operands must be numbers."}
		}
		return l <= r, nil
	case token.MINUS:
		l, r, ok := numbers()
		if !ok {
			return nil, &errs.RuntimeError{Token: e.Op, Msg: "Operands must be numbers."}
		}
		return l - r, nil
	case token.SLASH:
		l, r, ok := numbers()
		if !ok {
			return nil, &errs.RuntimeError{Token: e.Op, Msg: "Operands must be numbers."}
		}
		return l / r, nil
	case token.STAR:
		l, r, ok := numbers()
		if !ok {
			return nil, &errs.RuntimeError{Token: e.Op, Msg: "Operands must be numbers."}
		}
		return l * r, nil
	case token.PLUS:
		if l, r, ok := numbers(); ok {
			return l + r, nil
		}
		if l, ok := left.(string); ok {
			if r, ok := right.(string); ok {
				return l + r, nil
			}
		}
		return nil, &errs.RuntimeError{Token: e.Op, Msg: "Operands must be two numbers or two strings."}
	default:
		panic("interpreter: unexpected binary operator")
	}
}

func (in *Interpreter) evalCall(e *ast.CallExpr) (value.Value, error) {
	callee, err := in.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := callee.(value.Callable)
	if !ok {
		return nil, &errs.RuntimeError{Token: e.Paren, Msg: "Can only call functions and classes."}
	}
	if len(args) != fn.Arity() {
		return nil, &errs.RuntimeError{
			Token: e.Paren,
			Msg:   fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)),
		}
	}

	if err := in.EnterCall(e.Paren); err != nil {
		return nil, err
	}
	defer in.ExitCall()
	return fn.Call(in, args)
}

func (in *Interpreter) evalSuper(e *ast.SuperExpr) (value.Value, error) {
	dist := in.locals[e]
	super, _ := in.environment.GetAt(dist, "super").(*value.Class)
	this, _ := in.environment.GetAt(dist-1, "this").(*value.Instance)

	method, ok := super.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, &errs.RuntimeError{
			Token: e.Method,
			Msg:   "Undefined property '" + e.Method.Lexeme + "'.",
		}
	}
	return method.Bind(this), nil
}

// lookUpVariable resolves name via the scope-distance side table if node
// was recorded there by the resolver, else falls back to globals.
func (in *Interpreter) lookUpVariable(name token.Token, node ast.Node) (value.Value, error) {
	if dist, ok := in.locals[node]; ok {
		return in.environment.GetAt(dist, name.Lexeme), nil
	}
	return in.Globals.Get(name)
}
