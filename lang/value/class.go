package value

import "github.com/dolthub/swiss"

// Class is a callable that acts as an instance factory, per spec.md §4.5.
type Class struct {
	Name       string
	Superclass *Class
	Methods    *swiss.Map[string, *Function]
}

// NewClass returns a class with the given methods, keyed by method name.
func NewClass(name string, super *Class, methods map[string]*Function) *Class {
	m := swiss.NewMap[string, *Function](uint32(len(methods)))
	for k, v := range methods {
		m.Put(k, v)
	}
	return &Class{Name: name, Superclass: super, Methods: m}
}

func (c *Class) String() string { return c.Name }

// FindMethod searches c's own method map, then its superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if fn, ok := c.Methods.Get(name); ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of "init" if the class (or an ancestor) declares one,
// else 0.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call allocates a new Instance and, if an initializer exists, binds and
// invokes it with args before returning the instance.
func (c *Class) Call(in Interp, args []Value) (Value, error) {
	inst := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(inst).Call(in, args); err != nil {
			return nil, err
		}
	}
	return inst, nil
}
