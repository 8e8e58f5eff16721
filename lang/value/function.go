package value

import "github.com/mna/golox/lang/ast"

// Function is a user-defined callable: a FunctionStmt AST node paired with
// the environment captured at declaration time, per spec.md §4.5. Closures
// capture their declaration-site environment, not their call-site one.
type Function struct {
	Declaration   *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

// NewFunction returns a Function closing over env.
func NewFunction(decl *ast.FunctionStmt, env *Environment, isInitializer bool) *Function {
	return &Function{Declaration: decl, Closure: env, IsInitializer: isInitializer}
}

func (f *Function) Arity() int { return len(f.Declaration.Params) }

func (f *Function) String() string { return "<fn " + f.Declaration.Name.Lexeme + ">" }

// Call runs the function body in a fresh environment enclosed by its
// closure, with each parameter bound to the matching argument. A Return
// signal raised by the body supplies the result; falling off the end
// yields nil, except for an initializer, which always yields the `this`
// bound in its closure.
func (f *Function) Call(in Interp, args []Value) (Value, error) {
	env := NewEnvironment(f.Closure)
	for i, p := range f.Declaration.Params {
		env.Define(p.Lexeme, args[i])
	}

	err := in.ExecuteBlock(f.Declaration.Body.Stmts, env)
	if ret, ok := err.(*Return); ok {
		if f.IsInitializer {
			return f.Closure.GetAt(0, "this"), nil
		}
		return ret.Value, nil
	}
	if err != nil {
		return nil, err
	}
	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// Bind returns a new Function whose closure is a fresh child of f's own
// closure with "this" defined as instance, per spec.md §4.5.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnvironment(f.Closure)
	env.Define("this", instance)
	return NewFunction(f.Declaration, env, f.IsInitializer)
}
