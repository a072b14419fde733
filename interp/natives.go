/*
File   : golox/interp/natives.go
Package: interp

registerNatives installs the small builtin set from spec.md §5 into
the global environment. go-mix registers its builtins the same way
(function/builtins.go's init-time table into the global scope); golox
keeps just `clock`, the one builtin spec.md actually names.
*/
package interp

import "time"

func registerNatives(globals *Environment) {
	globals.Define("clock", &NativeFunction{
		Name:   "clock",
		ArityN: 0,
		Fn: func(in *Interpreter, args []Value) (Value, error) {
			return float64(time.Now().UnixNano()) / 1e9, nil
		},
	}, true)
}
