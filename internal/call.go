package internal

import (
	"context"
)

// execCall invokes a procedure. The callee runs against a copy of the
// caller's variables, so nothing it assigns is visible after it returns.
// Arguments pair with parameters up to the shorter of the two lists; extra
// parameters keep whatever the caller had bound under the same name.
func (vm *VM) execCall(ctx context.Context, s *Call, vars Vars) error {
	fn, ok := vm.Funcs[s.Name]
	if !ok {
		return atLine(s.Line, &UndefinedFunctionError{Name: s.Name})
	}
	if vm.MaxDepth > 0 && vm.depth >= vm.MaxDepth {
		return atLine(s.Line, &CallDepthError{Name: s.Name, Depth: vm.MaxDepth})
	}
	local := vars.Clone()
	n := len(fn.Params)
	if len(s.Args) < n {
		n = len(s.Args)
	}
	for i := 0; i < n; i++ {
		v, err := vm.eval(s.Args[i], vars)
		if err != nil {
			return atLine(s.Line, err)
		}
		local[fn.Params[i]] = v
	}
	vm.traceCall(fn, local)
	vm.depth++
	defer func() { vm.depth-- }()
	return vm.execBlock(ctx, fn.Body, local)
}

// execUse runs another source file against the current variables and the
// shared function table. Each file runs at most once per VM.
func (vm *VM) execUse(ctx context.Context, s *Use, vars Vars) error {
	if vm.Importer == nil {
		return atLine(s.Line, &ImportError{Path: s.Path, Err: errNoImporter})
	}
	name, lines, err := vm.Importer.Import(s.Path)
	if err != nil {
		return atLine(s.Line, &ImportError{Path: s.Path, Err: err})
	}
	if vm.imported[name] {
		return nil
	}
	prog, err := vm.Load(lines)
	if err != nil {
		return atLine(s.Line, &ImportError{Path: s.Path, Err: err})
	}
	vm.imported[name] = true
	return vm.execBlock(ctx, prog, vars)
}
