/*
File   : golox/interp/class.go
Package: interp

Class and Instance implement spec.md §4.6's single-level class model:
no inheritance, instance state is a flat field map, methods are looked
up on the class and bound to the instance on access. Static methods
(golox's supplemented feature, SPEC_FULL.md §C) live in a separate
staticMethods map on the same Class value rather than a distinct
metaclass type, since nothing else needs a metaclass to exist as its
own runtime value.
*/
package interp

import "github.com/pan-de-salita/golox/loxerr"
import "github.com/pan-de-salita/golox/token"

// Class is a callable that constructs Instances.
type Class struct {
	name          string
	methods       map[string]*function
	staticMethods map[string]*function
}

func newClass(name string, methods, staticMethods map[string]*function) *Class {
	return &Class{name: name, methods: methods, staticMethods: staticMethods}
}

func (c *Class) String() string { return "<class " + c.name + ">" }

func (c *Class) findMethod(name string) (*function, bool) {
	m, ok := c.methods[name]
	return m, ok
}

func (c *Class) findStaticMethod(name string) (*function, bool) {
	m, ok := c.staticMethods[name]
	return m, ok
}

// Arity is the constructor's arity: init's, if present, else zero.
func (c *Class) Arity() int {
	if init, ok := c.findMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

func (c *Class) Call(in *Interpreter, args []Value) (Value, error) {
	instance := newInstance(c)
	if init, ok := c.findMethod("init"); ok {
		if _, err := init.bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Get implements property access on the class value itself, i.e.
// ClassName.staticMethod — static methods are visible only this way,
// never through an instance.
func (c *Class) Get(name token.Token) (Value, error) {
	if m, ok := c.findStaticMethod(name.Lexeme); ok {
		return m, nil
	}
	return nil, loxerr.NewRuntimeError(name, "Undefined static property '%s'.", name.Lexeme)
}

// Instance is a single object built from a Class: a flat field map
// plus a back-pointer to its class for method lookup.
type Instance struct {
	class  *Class
	fields map[string]Value
}

func newInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]Value)}
}

func (i *Instance) String() string { return "<" + i.class.name + " instance>" }

// Get reads a field, falling back to a bound method. A zero-arg
// getter method is invoked immediately instead of returning the bound
// function, per spec.md's supplemented getter syntax.
func (i *Instance) Get(name token.Token, in *Interpreter) (Value, error) {
	if v, ok := i.fields[name.Lexeme]; ok {
		return v, nil
	}
	if m, ok := i.class.findMethod(name.Lexeme); ok {
		bound := m.bind(i)
		if bound.isGetter {
			return bound.Call(in, nil)
		}
		return bound, nil
	}
	return nil, loxerr.NewRuntimeError(name, "Undefined property '%s'.", name.Lexeme)
}

func (i *Instance) Set(name token.Token, value Value) {
	i.fields[name.Lexeme] = value
}
