package internal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Version is the interpreter version reported by the command line tool.
const Version = "0.1.0"

// DefaultMaxDepth is the call depth limit of a new VM.
const DefaultMaxDepth = 1000

// An Importer locates the source for a use statement. Import returns a
// canonical name for the file, used to import each file at most once, and
// its lines.
type Importer interface {
	Import(path string) (name string, lines []string, err error)
}

// VM is an object for running Z-- programs.
type VM struct {
	// Vars is the top-level variable environment. Calls receive copies.
	Vars Vars
	// Funcs is the function table, shared by all calls.
	Funcs Funcs

	// Stdout receives one line per print statement.
	Stdout io.Writer
	// Stdin supplies one line per input statement.
	Stdin *bufio.Reader

	// Importer resolves use statements. If it is nil, use fails.
	Importer Importer
	// Log receives trace output at debug level. It must not be nil.
	Log *zap.Logger
	// MaxDepth limits nested calls. Zero means no limit.
	MaxDepth int

	// depth is the number of active calls.
	depth int
	// imported is the set of canonical names already run.
	imported map[string]bool
}

// NewVM prepares a new VM reading input from stdin and printing to stdout.
// Either may be nil, in which case input fails and output is discarded.
func NewVM(stdin io.Reader, stdout io.Writer) *VM {
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	if stdout == nil {
		stdout = io.Discard
	}
	return &VM{
		Vars:     make(Vars),
		Funcs:    make(Funcs),
		Stdout:   stdout,
		Stdin:    bufio.NewReader(stdin),
		Log:      zap.NewNop(),
		MaxDepth: DefaultMaxDepth,
		imported: make(map[string]bool),
	}
}

// Load lexes and parses source lines.
func (vm *VM) Load(lines []string) ([]Stmt, error) {
	toks, err := Lex(lines)
	if err != nil {
		return nil, err
	}
	vm.traceTokens(toks)
	prog, err := Parse(toks)
	if err != nil {
		return nil, err
	}
	vm.traceProgram(prog)
	return prog, nil
}

// Run loads and executes a program. name identifies the source for use
// statements; a file that later uses itself, directly or not, is not run
// again. name may be empty.
func (vm *VM) Run(ctx context.Context, name string, lines []string) error {
	if name != "" {
		vm.imported[name] = true
	}
	prog, err := vm.Load(lines)
	if err != nil {
		return err
	}
	return vm.Exec(ctx, prog)
}

// DoLines loads and executes source lines.
func (vm *VM) DoLines(ctx context.Context, lines []string) error {
	return vm.Run(ctx, "", lines)
}

// DoString loads and executes source text.
func (vm *VM) DoString(ctx context.Context, src string) error {
	return vm.DoLines(ctx, SplitLines(src))
}

// DoReader loads and executes source read from r.
func (vm *VM) DoReader(ctx context.Context, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "reading source")
	}
	return vm.DoString(ctx, string(b))
}

// SplitLines splits source text into lines, dropping carriage returns before
// newlines.
func SplitLines(src string) []string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Exec executes top-level statements against vm.Vars. The first error aborts
// the program. Exec stops with ctx's error between statements once ctx is
// done.
func (vm *VM) Exec(ctx context.Context, prog []Stmt) error {
	return vm.execBlock(ctx, prog, vm.Vars)
}

// execBlock executes statements in order against vars.
func (vm *VM) execBlock(ctx context.Context, stmts []Stmt, vars Vars) error {
	for _, s := range stmts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := vm.execStmt(ctx, s, vars); err != nil {
			return err
		}
	}
	return nil
}

// execStmt executes a single statement. Errors raised directly by the
// statement are annotated with its line.
func (vm *VM) execStmt(ctx context.Context, s Stmt, vars Vars) error {
	vm.traceStmt(s, vars)
	var err error
	switch s := s.(type) {
	case *Print:
		err = vm.execPrint(s, vars)
	case *Assign:
		var v Value
		if v, err = vm.eval(s.Expr, vars); err == nil {
			vars[s.Name] = v
		}
	case *Increment:
		err = step(vars, s.Name, 1, "++")
	case *Decrement:
		err = step(vars, s.Name, -1, "--")
	case *If:
		return vm.execIf(ctx, s, vars)
	case *While:
		return vm.execWhile(ctx, s, vars)
	case *Input:
		err = vm.execInput(s, vars)
	case *FuncDef:
		vm.Funcs[s.Name] = s
	case *Call:
		return vm.execCall(ctx, s, vars)
	case *Use:
		return vm.execUse(ctx, s, vars)
	default:
		panic(fmt.Sprintf("zminus: unknown statement type %T", s))
	}
	return atLine(s.Pos(), err)
}

// atLine wraps err in a RuntimeError unless it already carries a line or is
// a context error.
func atLine(line int, err error) error {
	if err == nil {
		return nil
	}
	var re *RuntimeError
	if errors.As(err, &re) || err == context.Canceled || err == context.DeadlineExceeded {
		return err
	}
	return &RuntimeError{Line: line, Err: err}
}

// eval resolves an expression. Identifiers that are not bound evaluate to
// their own names as text.
func (vm *VM) eval(e Expr, vars Vars) (Value, error) {
	switch e := e.(type) {
	case *Literal:
		return e.Value, nil
	case *Ident:
		if v, ok := vars[e.Name]; ok {
			return v, nil
		}
		return NewText(e.Name), nil
	case *Binary:
		l, err := vm.eval(e.Left, vars)
		if err != nil {
			return Value{}, err
		}
		r, err := vm.eval(e.Right, vars)
		if err != nil {
			return Value{}, err
		}
		return arith(e.Op, l, r)
	}
	panic(fmt.Sprintf("zminus: unknown expression type %T", e))
}

func (vm *VM) execPrint(s *Print, vars Vars) error {
	v, err := vm.eval(s.Expr, vars)
	if err != nil {
		return err
	}
	text := v.String()
	if lit, ok := s.Expr.(*Literal); ok && lit.Value.Kind() == TextKind {
		text = unquote(text)
	}
	if _, err := fmt.Fprintln(vm.Stdout, text); err != nil {
		return errors.Wrap(err, "writing output")
	}
	return nil
}

// step adds delta to the integer bound to name.
func step(vars Vars, name string, delta int64, op string) error {
	v, ok := vars[name]
	if !ok {
		return &UndefinedVariableError{Name: name}
	}
	n, ok := v.Integer()
	if !ok {
		return &TypeError{Op: op, Left: v.Kind(), Right: IntegerKind}
	}
	n, ok = addInt(n, delta)
	if !ok {
		return &OverflowError{Op: op, Kind: IntegerKind}
	}
	vars[name] = NewInteger(n)
	return nil
}
