package internal

import (
	"strings"

	"go.uber.org/zap"
)

// tracing reports whether the VM's logger records debug output. Every trace
// method checks it first so that a disabled trace costs no allocations.
func (vm *VM) tracing() bool {
	return vm.Log != nil && vm.Log.Core().Enabled(zap.DebugLevel)
}

func (vm *VM) traceTokens(toks []Token) {
	if vm.tracing() {
		vm.traceTokensSlow(toks)
	}
}

// traceTokensSlow is an outlined path of traceTokens.
func (vm *VM) traceTokensSlow(toks []Token) {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Kind.String())
		b.WriteByte('(')
		b.WriteString(tok.Value)
		b.WriteByte(')')
	}
	vm.Log.Debug("lexed", zap.Int("count", len(toks)), zap.String("tokens", b.String()))
}

func (vm *VM) traceProgram(prog []Stmt) {
	if vm.tracing() {
		for _, s := range prog {
			vm.Log.Debug("parsed", zap.Int("line", s.Pos()), zap.Stringer("stmt", s))
		}
	}
}

func (vm *VM) traceStmt(s Stmt, vars Vars) {
	if vm.tracing() {
		vm.Log.Debug("exec",
			zap.Int("line", s.Pos()),
			zap.Stringer("stmt", s),
			zap.Int("depth", vm.depth),
			zap.Strings("vars", vars.Names()),
		)
	}
}

func (vm *VM) traceCall(fn *FuncDef, local Vars) {
	if vm.tracing() {
		fields := make([]zap.Field, 0, len(fn.Params)+2)
		fields = append(fields, zap.String("func", fn.Name), zap.Int("depth", vm.depth+1))
		for _, p := range fn.Params {
			if v, ok := local[p]; ok {
				fields = append(fields, zap.String(p, v.String()))
			}
		}
		vm.Log.Debug("call", fields...)
	}
}
