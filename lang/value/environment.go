package value

import (
	"github.com/dolthub/swiss"

	"github.com/mna/golox/lang/errs"
	"github.com/mna/golox/lang/token"
)

// Environment is a chained name-to-value mapping, per spec.md §4.4. The
// global environment has a nil Enclosing. A fresh child Environment is
// created per block, per function call, and per method bind.
type Environment struct {
	Enclosing *Environment
	vars      *swiss.Map[string, Value]
}

// NewEnvironment returns an environment enclosed by parent, or a global
// environment if parent is nil.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{Enclosing: parent, vars: swiss.NewMap[string, Value](8)}
}

// Define unconditionally inserts or overwrites name in this environment.
func (e *Environment) Define(name string, v Value) {
	e.vars.Put(name, v)
}

// Get returns the value bound to name, searching enclosing environments if
// not found here, or a runtime error naming tok if the name is undefined
// anywhere in the chain.
func (e *Environment) Get(tok token.Token) (Value, error) {
	if v, ok := e.vars.Get(tok.Lexeme); ok {
		return v, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(tok)
	}
	return nil, &errs.RuntimeError{Token: tok, Msg: "Undefined variable '" + tok.Lexeme + "'."}
}

// Assign sets name to v in the nearest environment in the chain where it is
// already defined, or reports a runtime error naming tok if it is undefined
// everywhere.
func (e *Environment) Assign(tok token.Token, v Value) error {
	if _, ok := e.vars.Get(tok.Lexeme); ok {
		e.vars.Put(tok.Lexeme, v)
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(tok, v)
	}
	return &errs.RuntimeError{Token: tok, Msg: "Undefined variable '" + tok.Lexeme + "'."}
}

// Ancestor returns the environment distance hops out from e.
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt returns the value bound to name in the environment distance hops
// out. The resolver guarantees the binding is present.
func (e *Environment) GetAt(distance int, name string) Value {
	v, _ := e.Ancestor(distance).vars.Get(name)
	return v
}

// AssignAt assigns v to name in the environment distance hops out.
func (e *Environment) AssignAt(distance int, name string, v Value) {
	e.Ancestor(distance).vars.Put(name, v)
}
