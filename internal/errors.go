package internal

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// errNoImporter is the cause of an ImportError from a VM with no Importer.
var errNoImporter = errors.New("imports are not enabled")

// A LexError is raised when no token rule matches the remaining input.
type LexError struct {
	Char rune
	Line int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character: %c on line %d", e.Char, e.Line)
}

// A SyntaxError is raised when the token sequence does not match any
// production. Line is the line of the token being examined.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return "syntax error on line " + strconv.Itoa(e.Line) + ": " + e.Msg
}

// An UndefinedVariableError is raised by ++ or -- on an unbound name.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("variable '%s' not defined", e.Name)
}

// An UndefinedFunctionError is raised by a call to an unregistered function.
type UndefinedFunctionError struct {
	Name string
}

func (e *UndefinedFunctionError) Error() string {
	return fmt.Sprintf("function '%s' not defined", e.Name)
}

// An UnsupportedInputTypeError is raised by an input statement whose type tag
// is neither int nor string.
type UnsupportedInputTypeError struct {
	Type string
}

func (e *UnsupportedInputTypeError) Error() string {
	return "unsupported input type: " + e.Type
}

// An InvalidOperatorError is raised when a condition's operator is not one of
// the six comparisons.
type InvalidOperatorError struct {
	Op string
}

func (e *InvalidOperatorError) Error() string {
	return "invalid operator in condition: " + e.Op
}

// An OverflowError is raised when an arithmetic result does not fit: an
// integer outside 64 bits, or text longer than MaxTextLen.
type OverflowError struct {
	Op   string
	Kind Kind
}

func (e *OverflowError) Error() string {
	if e.Kind == TextKind {
		return fmt.Sprintf("text result of %s longer than %d bytes", e.Op, MaxTextLen)
	}
	return "integer overflow in " + e.Op
}

// A TypeError is raised by an operation that does not apply to the kinds of
// its operands.
type TypeError struct {
	Op          string
	Left, Right Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("unsupported operand types for %s: %v and %v", e.Op, e.Left, e.Right)
}

// A DivisionByZeroError is raised by integer division by zero.
type DivisionByZeroError struct{}

func (*DivisionByZeroError) Error() string {
	return "division by zero"
}

// An InputError is raised when an input statement cannot obtain a value.
type InputError struct {
	Type string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("could not read %s input: %v", e.Type, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// A CallDepthError is raised when nested calls exceed the VM's MaxDepth.
type CallDepthError struct {
	Name  string
	Depth int
}

func (e *CallDepthError) Error() string {
	return fmt.Sprintf("maximum call depth %d exceeded calling %s", e.Depth, e.Name)
}

// An ImportError is raised when a use statement cannot load its file.
type ImportError struct {
	Path string
	Err  error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("could not use %q: %v", e.Path, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// A RuntimeError annotates an evaluation error with the line of the statement
// that raised it. Use errors.As to recover the underlying error type.
type RuntimeError struct {
	Line int
	Err  error
}

func (e *RuntimeError) Error() string {
	return "line " + strconv.Itoa(e.Line) + ": " + e.Err.Error()
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// Cause returns the underlying error, for github.com/pkg/errors.Cause.
func (e *RuntimeError) Cause() error {
	return e.Err
}
