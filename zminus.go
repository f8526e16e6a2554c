package zminus

import (
	"context"
	"io"

	"github.com/zephyrtronium/zminus/internal"
)

// Version is the interpreter version.
const Version = internal.Version

// A VM runs Z-- programs.
type VM = internal.VM

// An Importer locates source files for use statements.
type Importer = internal.Importer

// A Token is a single lexical element.
type Token = internal.Token

// TokenKind classifies a token.
type TokenKind = internal.TokenKind

// Stmt is a parsed statement.
type Stmt = internal.Stmt

// Expr is a parsed expression.
type Expr = internal.Expr

// Value is a Z-- scalar, an integer or text.
type Value = internal.Value

// Kind identifies which variant a Value holds.
type Kind = internal.Kind

// Vars is a variable environment.
type Vars = internal.Vars

// Funcs is a function table.
type Funcs = internal.Funcs

// Value kinds.
const (
	IntegerKind = internal.IntegerKind
	TextKind    = internal.TextKind
)

// DefaultMaxDepth is the call depth limit of a new VM.
const DefaultMaxDepth = internal.DefaultMaxDepth

// MaxTextLen is the longest text arithmetic can produce.
const MaxTextLen = internal.MaxTextLen

// Error types. Runtime errors arrive wrapped in a RuntimeError carrying the
// line of the failing statement; use errors.As to reach the specific type.
type (
	LexError                  = internal.LexError
	SyntaxError               = internal.SyntaxError
	UndefinedVariableError    = internal.UndefinedVariableError
	UndefinedFunctionError    = internal.UndefinedFunctionError
	UnsupportedInputTypeError = internal.UnsupportedInputTypeError
	InvalidOperatorError      = internal.InvalidOperatorError
	TypeError                 = internal.TypeError
	DivisionByZeroError       = internal.DivisionByZeroError
	OverflowError             = internal.OverflowError
	InputError                = internal.InputError
	CallDepthError            = internal.CallDepthError
	ImportError               = internal.ImportError
	RuntimeError              = internal.RuntimeError
)

// NewInteger creates an integer value.
func NewInteger(n int64) Value {
	return internal.NewInteger(n)
}

// NewText creates a text value.
func NewText(s string) Value {
	return internal.NewText(s)
}

// NewVM prepares a new VM reading input from stdin and printing to stdout.
func NewVM(stdin io.Reader, stdout io.Writer) *VM {
	return internal.NewVM(stdin, stdout)
}

// Lex converts source lines into tokens.
func Lex(lines []string) ([]Token, error) {
	return internal.Lex(lines)
}

// Parse converts tokens into statements.
func Parse(toks []Token) ([]Stmt, error) {
	return internal.Parse(toks)
}

// SplitLines splits source text into lines.
func SplitLines(src string) []string {
	return internal.SplitLines(src)
}

// RunLines runs a program on a new VM and returns the VM for inspection.
func RunLines(ctx context.Context, lines []string, stdin io.Reader, stdout io.Writer) (*VM, error) {
	vm := NewVM(stdin, stdout)
	return vm, vm.DoLines(ctx, lines)
}

// RunReader runs the program read from src on a new VM and returns the VM for
// inspection.
func RunReader(ctx context.Context, src, stdin io.Reader, stdout io.Writer) (*VM, error) {
	vm := NewVM(stdin, stdout)
	return vm, vm.DoReader(ctx, src)
}
