/*
File   : golox/interp/value.go
Package: interp

The runtime value universe from spec.md §3: nil, bool, float64
number, string, Callable, *Class, *Instance. Go's own nil/bool/
float64/string stand in directly for the first four; there is no
wrapper struct the way go-mix's objects.Object interface (objects/
objects.go) boxes every value, since spec.md's value set is small
enough that plain `interface{}` plus type switches reads more directly
than an Object interface with an Inspect()/Type() method set that
nothing here needs.
*/
package interp

// Value is any golox runtime value: nil, bool, float64, string,
// Callable, *Class, or *Instance.
type Value = interface{}

// IsTruthy implements spec.md §4.4's truthiness rule: nil and false
// are falsy, everything else (including 0 and "") is truthy.
func IsTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// IsEqual implements spec.md §4.4's equality rule: nil equals only
// nil, numbers and strings and bools compare by value, and distinct
// dynamic types are never equal (no coercion).
func IsEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	an, aok := a.(float64)
	bn, bok := b.(float64)
	if aok && bok {
		return an == bn
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return as == bs
	}
	ab, aok := a.(bool)
	bb, bok := b.(bool)
	if aok && bok {
		return ab == bb
	}
	return a == b
}
