package value

import (
	"github.com/dolthub/swiss"

	"github.com/mna/golox/lang/errs"
	"github.com/mna/golox/lang/token"
)

// Instance is a runtime object created by calling a Class, per spec.md
// §4.5. Fields are created on first assignment.
type Instance struct {
	Class  *Class
	fields *swiss.Map[string, Value]
}

// NewInstance returns a fresh instance of class with no fields set.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, fields: swiss.NewMap[string, Value](4)}
}

func (i *Instance) String() string { return i.Class.Name + " instance" }

// Get looks up name as a field first, then as a bound method on the
// instance's class (and its superclass chain), per spec.md §4.5. An
// undefined property is a runtime error naming tok.
func (i *Instance) Get(tok token.Token) (Value, error) {
	if v, ok := i.fields.Get(tok.Lexeme); ok {
		return v, nil
	}
	if method, ok := i.Class.FindMethod(tok.Lexeme); ok {
		return method.Bind(i), nil
	}
	return nil, &errs.RuntimeError{Token: tok, Msg: "Undefined property '" + tok.Lexeme + "'."}
}

// Set assigns v to name in the field map, creating it if absent.
func (i *Instance) Set(name string, v Value) {
	i.fields.Put(name, v)
}
