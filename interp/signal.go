/*
File   : golox/interp/signal.go
Package: interp

Non-local control flow (break, return) is modeled as a tagged signal
value threaded back up through statement execution, per spec.md §9's
explicit design note preferring this over Go panic/recover for control
flow that isn't actually exceptional. Panic/recover is reserved for the
parser's error-synchronization use (parser/parser.go), which is a
genuinely exceptional, unwind-to-a-checkpoint situation; break/return
happen on every loop and every function call, which is ordinary control
flow and cheap to propagate as values.
*/
package interp

type signalKind int

const (
	signalNone signalKind = iota
	signalBreak
	signalReturn
)

type signal struct {
	kind  signalKind
	value Value
}

var noSignal = signal{kind: signalNone}

func breakSignal() signal { return signal{kind: signalBreak} }

func returnSignal(v Value) signal { return signal{kind: signalReturn, value: v} }
