package interp

// Callable is anything golox can invoke with call syntax: native
// builtins, user-defined functions/lambdas, and classes (construction).
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
	String() string
}

// NativeFunction wraps a Go function as a callable builtin, the way
// spec.md §5 describes `clock`. go-mix registers its builtins the same
// shape (function/builtins.go: name, arity, Go func), just keyed into
// a different host table.
type NativeFunction struct {
	Name    string
	ArityN  int
	Fn      func(in *Interpreter, args []Value) (Value, error)
}

func (n *NativeFunction) Arity() int { return n.ArityN }

func (n *NativeFunction) Call(in *Interpreter, args []Value) (Value, error) {
	return n.Fn(in, args)
}

func (n *NativeFunction) String() string { return "<native fn>" }
