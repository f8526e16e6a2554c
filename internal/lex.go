package internal

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Token is a single lexical element.
type Token struct {
	Kind  TokenKind
	Value string
	Err   error

	Line int
}

// TokenKind classifies a token.
type TokenKind int

const (
	BadToken TokenKind = iota

	StringToken     // "string", greedy to the last quote on the line
	PrintToken      // print
	SemicolonToken  // ;
	CommaToken      // ,
	EqualsToken     // =
	IfToken         // if
	ElseToken       // else
	WhileToken      // while
	InputToken      // input
	ImportToken     // use
	FunctionToken   // fc
	IncrementToken  // ++
	DecrementToken  // --
	IdentifierToken // identifier
	PlusToken       // +
	MinusToken      // -
	MultiplyToken   // *
	DivideToken     // /
	NumberToken     // decimal digits
	LParenToken     // (
	RParenToken     // )
	LBraceToken     // {
	RBraceToken     // }
	EqToken         // ==
	NeqToken        // !=
	LtToken         // <
	GtToken         // >
	LteToken        // <=
	GteToken        // >=
)

var tokenNames = [...]string{
	BadToken:        "BAD",
	StringToken:     "STRING",
	PrintToken:      "PRINT",
	SemicolonToken:  "SEMICOLON",
	CommaToken:      "COMMA",
	EqualsToken:     "EQUALS",
	IfToken:         "IF",
	ElseToken:       "ELSE",
	WhileToken:      "WHILE",
	InputToken:      "INPUT",
	ImportToken:     "IMPORT",
	FunctionToken:   "FUNCTION",
	IncrementToken:  "INCREMENT",
	DecrementToken:  "DECREMENT",
	IdentifierToken: "IDENTIFIER",
	PlusToken:       "PLUS",
	MinusToken:      "MINUS",
	MultiplyToken:   "MULTIPLY",
	DivideToken:     "DIVIDE",
	NumberToken:     "NUMBER",
	LParenToken:     "LPAREN",
	RParenToken:     "RPAREN",
	LBraceToken:     "LBRACE",
	RBraceToken:     "RBRACE",
	EqToken:         "EQ",
	NeqToken:        "NEQ",
	LtToken:         "LT",
	GtToken:         "GT",
	LteToken:        "LTE",
	GteToken:        "GTE",
}

// String returns the name of a token kind.
func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenNames[k]
}

// A lexRule matches one kind of token at the start of the remaining input.
type lexRule struct {
	kind TokenKind
	pat  *regexp.Regexp
}

// lexRules is the rule table. The lexer takes the longest match among all
// rules; when two rules match the same length, the earlier one wins. Keywords
// therefore precede IDENTIFIER, which lets "print" lex as PRINT while
// "printer" stays a single IDENTIFIER.
var lexRules = []lexRule{
	{StringToken, regexp.MustCompile(`^".*"`)},
	{PrintToken, regexp.MustCompile(`^print`)},
	{SemicolonToken, regexp.MustCompile(`^;`)},
	{CommaToken, regexp.MustCompile(`^,`)},
	{EqToken, regexp.MustCompile(`^==`)},
	{NeqToken, regexp.MustCompile(`^!=`)},
	{LteToken, regexp.MustCompile(`^<=`)},
	{GteToken, regexp.MustCompile(`^>=`)},
	{EqualsToken, regexp.MustCompile(`^=`)},
	{IfToken, regexp.MustCompile(`^if`)},
	{ElseToken, regexp.MustCompile(`^else`)},
	{WhileToken, regexp.MustCompile(`^while`)},
	{InputToken, regexp.MustCompile(`^input`)},
	{ImportToken, regexp.MustCompile(`^use`)},
	{FunctionToken, regexp.MustCompile(`^fc`)},
	{IncrementToken, regexp.MustCompile(`^\+\+`)},
	{DecrementToken, regexp.MustCompile(`^--`)},
	{IdentifierToken, regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*`)},
	{PlusToken, regexp.MustCompile(`^\+`)},
	{MinusToken, regexp.MustCompile(`^-`)},
	{MultiplyToken, regexp.MustCompile(`^\*`)},
	{DivideToken, regexp.MustCompile(`^/`)},
	{NumberToken, regexp.MustCompile(`^[0-9]+`)},
	{LParenToken, regexp.MustCompile(`^\(`)},
	{RParenToken, regexp.MustCompile(`^\)`)},
	{LBraceToken, regexp.MustCompile(`^\{`)},
	{RBraceToken, regexp.MustCompile(`^\}`)},
	{LtToken, regexp.MustCompile(`^<`)},
	{GtToken, regexp.MustCompile(`^>`)},
}

// lexFn is a lexer state function. Each lexFn consumes a prefix of the
// remaining line, possibly sends a token, and returns the next lexFn along
// with the unconsumed remainder. A nil lexFn ends the line; if the remainder
// is not empty at that point, lexing failed.
type lexFn func(src string, tokens chan<- Token, line int) (lexFn, string)

// lex converts source lines into a stream of tokens. Lexing stops after the
// first bad token.
func lex(lines []string, tokens chan<- Token) {
	defer close(tokens)
	for i, src := range lines {
		state := eatSpace
		for state != nil {
			state, src = state(src, tokens, i+1)
		}
		if src != "" {
			return
		}
	}
}

// Lex converts source lines into tokens. Each line is scanned on its own, so
// no token spans a line break.
func Lex(lines []string) ([]Token, error) {
	tokens := make(chan Token)
	go lex(lines, tokens)
	var r []Token
	for tok := range tokens {
		if tok.Kind == BadToken {
			// The lexer closes the channel right after a bad token.
			return r, tok.Err
		}
		r = append(r, tok)
	}
	return r, nil
}

// eatSpace consumes leading whitespace and decides whether the line is done.
func eatSpace(src string, tokens chan<- Token, line int) (lexFn, string) {
	src = strings.TrimLeftFunc(src, unicode.IsSpace)
	if src == "" {
		return nil, ""
	}
	return lexRuleMatch, src
}

// lexRuleMatch emits the longest token any rule matches at the start of src.
func lexRuleMatch(src string, tokens chan<- Token, line int) (lexFn, string) {
	best := -1
	n := 0
	for i, rule := range lexRules {
		m := rule.pat.FindStringIndex(src)
		if m != nil && m[1] > n {
			best, n = i, m[1]
		}
	}
	if best < 0 {
		r, _ := utf8.DecodeRuneInString(src)
		tokens <- Token{
			Kind:  BadToken,
			Value: string(r),
			Err:   &LexError{Char: r, Line: line},
			Line:  line,
		}
		return nil, src
	}
	tokens <- Token{Kind: lexRules[best].kind, Value: src[:n], Line: line}
	return eatSpace, src[n:]
}
