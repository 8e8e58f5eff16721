// Package resolver performs a static pass over the parsed AST between
// parsing and interpretation. It resolves every variable reference to the
// number of lexical scopes between the reference and the scope that
// declares it, so the interpreter can look variables up in its environment
// chain by distance instead of by walking parent links and comparing names
// at every level.
//
// The resolver also catches a handful of errors statically rather than at
// runtime: returning from top-level code, using "this" or "super" outside
// a method, and a variable initializer that refers to the variable being
// declared.
package resolver

import (
	"github.com/mna/golox/lang/ast"
	"github.com/mna/golox/lang/errs"
	"github.com/mna/golox/lang/token"
)

type functionType int

const (
	noFunction functionType = iota
	inFunction
	inInitializer
	inMethod
)

type classType int

const (
	noClass classType = iota
	inClass
	inSubclass
)

// Resolver walks a parsed program once, statically resolving every
// variable reference to a scope distance recorded in Locals, keyed by the
// identity of the referencing AST node (VariableExpr, AssignExpr, ThisExpr
// or SuperExpr).
type Resolver struct {
	errs   *errs.List
	Locals map[ast.Node]int

	scopes []map[string]bool
	fn     functionType
	class  classType
}

// New returns a Resolver reporting static errors to sink.
func New(sink *errs.List) *Resolver {
	return &Resolver{errs: sink, Locals: make(map[ast.Node]int)}
}

// Resolve statically resolves every statement in program.
func (r *Resolver) Resolve(program []ast.Stmt) {
	r.resolveStmts(program)
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expr)

	case *ast.PrintStmt:
		r.resolveExpr(s.Expr)

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Block.Stmts)
		r.endScope()

	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)

	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, inFunction)

	case *ast.ReturnStmt:
		if r.fn == noFunction {
			r.errs.ReportAt(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.fn == inInitializer {
				r.errs.ReportAt(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.ClassStmt:
		r.resolveClass(s)

	default:
		panic("resolver: unexpected statement type")
	}
}

func (r *Resolver) resolveClass(s *ast.ClassStmt) {
	enclosingClass := r.class
	r.class = inClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.errs.ReportAt(s.Superclass.Name, "A class can't inherit from itself.")
		}
		r.class = inSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, m := range s.Methods {
		kind := inMethod
		if m.Name.Lexeme == "init" {
			kind = inInitializer
		}
		r.resolveFunction(m, kind)
	}

	r.endScope()
	if s.Superclass != nil {
		r.endScope()
	}

	r.class = enclosingClass
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionType) {
	enclosingFn := r.fn
	r.fn = kind

	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(fn.Body.Stmts)
	r.endScope()

	r.fn = enclosingFn
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		// nothing to resolve

	case *ast.GroupingExpr:
		r.resolveExpr(e.Expr)

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if declared, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !declared {
				r.errs.ReportAt(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name.Lexeme)

	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Lexeme)

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.GetExpr:
		r.resolveExpr(e.Object)

	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.ThisExpr:
		if r.class == noClass {
			r.errs.ReportAt(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, "this")

	case *ast.SuperExpr:
		switch r.class {
		case noClass:
			r.errs.ReportAt(e.Keyword, "Can't use 'super' outside of a class.")
		case inClass:
			r.errs.ReportAt(e.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, "super")

	default:
		panic("resolver: unexpected expression type")
	}
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, make(map[string]bool)) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.errs.ReportAt(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward and records, in
// Locals, the number of scopes between node and the one that declares name.
// A name never found in any scope is left unresolved: the interpreter
// treats that as a reference to be looked up at the outermost scope, and
// reports "undefined variable" at runtime if it is not there either.
func (r *Resolver) resolveLocal(node ast.Node, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.Locals[node] = len(r.scopes) - 1 - i
			return
		}
	}
}
