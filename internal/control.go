package internal

import (
	"context"
	"io"
	"strconv"
	"strings"
)

// test evaluates a condition. Errors are annotated with line, the line of the
// statement owning the condition.
func (vm *VM) test(c *Condition, vars Vars, line int) (bool, error) {
	l, err := vm.eval(c.Left, vars)
	if err != nil {
		return false, atLine(line, err)
	}
	r, err := vm.eval(c.Right, vars)
	if err != nil {
		return false, atLine(line, err)
	}
	ok, err := compare(c.Op, l, r)
	return ok, atLine(line, err)
}

func (vm *VM) execIf(ctx context.Context, s *If, vars Vars) error {
	ok, err := vm.test(s.Cond, vars, s.Line)
	if err != nil {
		return err
	}
	if ok {
		return vm.execBlock(ctx, s.Then, vars)
	}
	return vm.execBlock(ctx, s.Else, vars)
}

// execWhile runs the loop body until its condition fails. There is no
// iteration limit; the loop ends early only when ctx is done.
func (vm *VM) execWhile(ctx context.Context, s *While, vars Vars) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ok, err := vm.test(s.Cond, vars, s.Line)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := vm.execBlock(ctx, s.Body, vars); err != nil {
			return err
		}
	}
}

// execInput reads one line from the VM's input and binds it according to the
// statement's type tag. The line is consumed before the tag is checked.
func (vm *VM) execInput(s *Input, vars Vars) error {
	line, err := vm.Stdin.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return &InputError{Type: s.Type, Err: err}
	}
	line = strings.TrimRight(line, "\r\n")
	switch s.Type {
	case "int":
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return &InputError{Type: s.Type, Err: err}
		}
		vars[s.Name] = NewInteger(n)
	case "string":
		vars[s.Name] = NewText(line)
	default:
		return &UnsupportedInputTypeError{Type: s.Type}
	}
	return nil
}
