package internal

import "strings"

// Expr is an expression node: a *Literal, an *Ident, or a *Binary.
type Expr interface {
	String() string
	exprNode()
}

// A Literal is an integer or string literal. Text is the source lexeme. A
// string literal's Value keeps its quotes; only printing the literal directly
// removes them.
type Literal struct {
	Value Value
	Text  string
}

// An Ident is a bare identifier reference.
type Ident struct {
	Name string
}

// A Binary is an arithmetic operation. The parser only produces an *Ident on
// the left; the right side may be another *Binary, making chains
// right-associative.
type Binary struct {
	Left  Expr
	Op    TokenKind
	Right Expr
}

func (*Literal) exprNode() {}
func (*Ident) exprNode()   {}
func (*Binary) exprNode()  {}

func (e *Literal) String() string { return e.Text }
func (e *Ident) String() string   { return e.Name }
func (e *Binary) String() string {
	return e.Left.String() + " " + opText(e.Op) + " " + e.Right.String()
}

// A Condition is a parenthesized comparison gating if and while. Op is the
// literal text of the operator token and is only validated when evaluated.
type Condition struct {
	Left  Expr
	Op    string
	Right Expr
}

func (c *Condition) String() string {
	return "(" + c.Left.String() + " " + c.Op + " " + c.Right.String() + ")"
}

// Stmt is a statement node. Statements are immutable once parsed.
type Stmt interface {
	// Pos returns the line of the statement's first token.
	Pos() int
	String() string
	stmtNode()
}

// Print writes the value of an expression.
type Print struct {
	Line int
	Expr Expr
}

// Assign binds a name to the value of an expression.
type Assign struct {
	Line int
	Name string
	Expr Expr
}

// Increment adds one to a bound integer.
type Increment struct {
	Line int
	Name string
}

// Decrement subtracts one from a bound integer.
type Decrement struct {
	Line int
	Name string
}

// If executes Then when Cond holds and Else otherwise. Else is empty when the
// source has no else block.
type If struct {
	Line int
	Cond *Condition
	Then []Stmt
	Else []Stmt
}

// While executes Body as long as Cond holds.
type While struct {
	Line int
	Cond *Condition
	Body []Stmt
}

// Input reads a line into Name. Type and Name are the verbatim lexemes of the
// two tokens after the input keyword.
type Input struct {
	Line int
	Type string
	Name string
}

// FuncDef registers a procedure.
type FuncDef struct {
	Line   int
	Name   string
	Params []string
	Body   []Stmt
}

// Call invokes a procedure with a copy of the caller's variables.
type Call struct {
	Line int
	Name string
	Args []Expr
}

// Use executes another source file in the current variables.
type Use struct {
	Line int
	Path string
}

func (s *Print) Pos() int     { return s.Line }
func (s *Assign) Pos() int    { return s.Line }
func (s *Increment) Pos() int { return s.Line }
func (s *Decrement) Pos() int { return s.Line }
func (s *If) Pos() int        { return s.Line }
func (s *While) Pos() int     { return s.Line }
func (s *Input) Pos() int     { return s.Line }
func (s *FuncDef) Pos() int   { return s.Line }
func (s *Call) Pos() int      { return s.Line }
func (s *Use) Pos() int       { return s.Line }

func (*Print) stmtNode()     {}
func (*Assign) stmtNode()    {}
func (*Increment) stmtNode() {}
func (*Decrement) stmtNode() {}
func (*If) stmtNode()        {}
func (*While) stmtNode()     {}
func (*Input) stmtNode()     {}
func (*FuncDef) stmtNode()   {}
func (*Call) stmtNode()      {}
func (*Use) stmtNode()       {}

func (s *Print) String() string     { return "print " + s.Expr.String() + ";" }
func (s *Assign) String() string    { return s.Name + " = " + s.Expr.String() + ";" }
func (s *Increment) String() string { return s.Name + "++;" }
func (s *Decrement) String() string { return s.Name + "--;" }
func (s *Input) String() string     { return "input " + s.Type + " " + s.Name + ";" }
func (s *Use) String() string       { return `use "` + s.Path + `";` }

func (s *If) String() string {
	r := "if " + s.Cond.String() + " " + blockString(s.Then)
	if len(s.Else) > 0 {
		r += " else " + blockString(s.Else)
	}
	return r
}

func (s *While) String() string {
	return "while " + s.Cond.String() + " " + blockString(s.Body)
}

func (s *FuncDef) String() string {
	return "fc " + s.Name + "(" + strings.Join(s.Params, ", ") + ") " + blockString(s.Body)
}

func (s *Call) String() string {
	args := make([]string, len(s.Args))
	for i, arg := range s.Args {
		args[i] = arg.String()
	}
	return s.Name + "(" + strings.Join(args, ", ") + ");"
}

func blockString(stmts []Stmt) string {
	if len(stmts) == 0 {
		return "{ }"
	}
	var b strings.Builder
	b.WriteString("{ ")
	for _, s := range stmts {
		b.WriteString(s.String())
		b.WriteByte(' ')
	}
	b.WriteByte('}')
	return b.String()
}
