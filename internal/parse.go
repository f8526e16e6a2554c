package internal

/*
This file converts lexer tokens into statements. Parsing is recursive descent
with one token of lookahead; every mismatch is a SyntaxError, and nothing is
recovered.
*/

import (
	"fmt"
	"strconv"
)

// parser holds the token sequence and the read position.
type parser struct {
	toks []Token
	pos  int
}

// Parse converts a token sequence into the program's top-level statements.
func Parse(toks []Token) ([]Stmt, error) {
	p := &parser{toks: toks}
	var prog []Stmt
	for p.pos < len(p.toks) {
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		prog = append(prog, s)
	}
	return prog, nil
}

// peek returns the current token. At the end of input, it returns a BadToken
// carrying the last line so errors can still name a location.
func (p *parser) peek() Token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	line := 1
	if len(p.toks) > 0 {
		line = p.toks[len(p.toks)-1].Line
	}
	return Token{Kind: BadToken, Line: line}
}

// next consumes and returns the current token.
func (p *parser) next() Token {
	tok := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

// errorf creates a SyntaxError located at the current token.
func (p *parser) errorf(format string, args ...interface{}) error {
	return &SyntaxError{Line: p.peek().Line, Msg: fmt.Sprintf(format, args...)}
}

// expect consumes a token of the given kind or fails.
func (p *parser) expect(kind TokenKind, what string) (Token, error) {
	tok := p.peek()
	if tok.Kind != kind {
		return tok, p.errorf("expected %s, got %s", what, describe(tok))
	}
	return p.next(), nil
}

// describe names a token for error messages.
func describe(tok Token) string {
	if tok.Kind == BadToken {
		return "end of input"
	}
	return strconv.Quote(tok.Value)
}

// statement parses one statement, choosing the production by the first token.
func (p *parser) statement() (Stmt, error) {
	tok := p.peek()
	switch tok.Kind {
	case PrintToken:
		return p.printStmt()
	case IdentifierToken:
		return p.identStmt()
	case IfToken:
		return p.ifStmt()
	case WhileToken:
		return p.whileStmt()
	case InputToken:
		return p.inputStmt()
	case FunctionToken:
		return p.funcDef()
	case ImportToken:
		return p.useStmt()
	}
	return nil, p.errorf("invalid statement starting with %s", describe(tok))
}

func (p *parser) printStmt() (Stmt, error) {
	line := p.next().Line
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SemicolonToken, "';'"); err != nil {
		return nil, err
	}
	return &Print{Line: line, Expr: e}, nil
}

// identStmt parses the statements that begin with an identifier: assignment,
// increment, decrement, and call.
func (p *parser) identStmt() (Stmt, error) {
	name := p.next()
	var s Stmt
	switch p.peek().Kind {
	case EqualsToken:
		p.next()
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		s = &Assign{Line: name.Line, Name: name.Value, Expr: e}
	case IncrementToken:
		p.next()
		s = &Increment{Line: name.Line, Name: name.Value}
	case DecrementToken:
		p.next()
		s = &Decrement{Line: name.Line, Name: name.Value}
	case LParenToken:
		p.next()
		args, err := p.argList()
		if err != nil {
			return nil, err
		}
		s = &Call{Line: name.Line, Name: name.Value, Args: args}
	default:
		return nil, p.errorf("expected '=', '++', '--', or '(' after %s, got %s", name.Value, describe(p.peek()))
	}
	if _, err := p.expect(SemicolonToken, "';'"); err != nil {
		return nil, err
	}
	return s, nil
}

// argList parses comma-separated call arguments through the closing paren.
func (p *parser) argList() ([]Expr, error) {
	var args []Expr
	if p.peek().Kind == RParenToken {
		p.next()
		return args, nil
	}
	for {
		e, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, e)
		switch p.peek().Kind {
		case CommaToken:
			p.next()
		case RParenToken:
			p.next()
			return args, nil
		default:
			return nil, p.errorf("expected ',' or ')' in argument list, got %s", describe(p.peek()))
		}
	}
}

func (p *parser) ifStmt() (Stmt, error) {
	line := p.next().Line
	cond, err := p.condition()
	if err != nil {
		return nil, err
	}
	then, err := p.block()
	if err != nil {
		return nil, err
	}
	s := &If{Line: line, Cond: cond, Then: then}
	if p.peek().Kind == ElseToken {
		p.next()
		if s.Else, err = p.block(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (p *parser) whileStmt() (Stmt, error) {
	line := p.next().Line
	cond, err := p.condition()
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &While{Line: line, Cond: cond, Body: body}, nil
}

// inputStmt parses input TYPE NAME; where TYPE and NAME may be any tokens.
// The type is checked when the statement runs.
func (p *parser) inputStmt() (Stmt, error) {
	line := p.next().Line
	if p.pos+2 > len(p.toks) {
		p.pos = len(p.toks)
		return nil, p.errorf("incomplete input statement")
	}
	typ := p.next()
	name := p.next()
	if _, err := p.expect(SemicolonToken, "';'"); err != nil {
		return nil, err
	}
	return &Input{Line: line, Type: typ.Value, Name: name.Value}, nil
}

func (p *parser) funcDef() (Stmt, error) {
	line := p.next().Line
	name, err := p.expect(IdentifierToken, "function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LParenToken, "'('"); err != nil {
		return nil, err
	}
	var params []string
	if p.peek().Kind == RParenToken {
		p.next()
	} else {
	loop:
		for {
			param, err := p.expect(IdentifierToken, "parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param.Value)
			switch p.peek().Kind {
			case CommaToken:
				p.next()
			case RParenToken:
				p.next()
				break loop
			default:
				return nil, p.errorf("expected ',' or ')' in parameter list, got %s", describe(p.peek()))
			}
		}
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &FuncDef{Line: line, Name: name.Value, Params: params, Body: body}, nil
}

func (p *parser) useStmt() (Stmt, error) {
	line := p.next().Line
	path, err := p.expect(StringToken, "quoted path")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SemicolonToken, "';'"); err != nil {
		return nil, err
	}
	return &Use{Line: line, Path: unquote(path.Value)}, nil
}

// block parses { STMT* }.
func (p *parser) block() ([]Stmt, error) {
	if _, err := p.expect(LBraceToken, "'{'"); err != nil {
		return nil, err
	}
	var stmts []Stmt
	for {
		switch p.peek().Kind {
		case RBraceToken:
			p.next()
			return stmts, nil
		case BadToken:
			return nil, p.errorf("unclosed block")
		}
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
}

// condition parses ( EXPR OP EXPR ). The operator may be any token; its text
// is validated during evaluation.
func (p *parser) condition() (*Condition, error) {
	if _, err := p.expect(LParenToken, "'(' to open condition"); err != nil {
		return nil, err
	}
	left, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind == BadToken {
		return nil, p.errorf("invalid condition")
	}
	op := p.next()
	right, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RParenToken, "')' to close condition"); err != nil {
		return nil, err
	}
	return &Condition{Left: left, Op: op.Value, Right: right}, nil
}

// expression parses a primary, and for identifiers an optional arithmetic
// operator followed by another expression.
func (p *parser) expression() (Expr, error) {
	tok := p.peek()
	switch tok.Kind {
	case StringToken:
		p.next()
		return &Literal{Value: NewText(tok.Value), Text: tok.Value}, nil
	case NumberToken:
		p.next()
		n, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, &SyntaxError{Line: tok.Line, Msg: fmt.Sprintf("integer literal %s out of range", tok.Value)}
		}
		return &Literal{Value: NewInteger(n), Text: tok.Value}, nil
	case IdentifierToken:
		p.next()
		left := &Ident{Name: tok.Value}
		switch op := p.peek().Kind; op {
		case PlusToken, MinusToken, MultiplyToken, DivideToken:
			p.next()
			right, err := p.expression()
			if err != nil {
				return nil, err
			}
			return &Binary{Left: left, Op: op, Right: right}, nil
		}
		return left, nil
	}
	return nil, p.errorf("invalid expression %s", describe(tok))
}

// unquote strips the first and last characters of a quote-delimited lexeme.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
