package internal

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestLexSingles tests that individual tokens have the correct kinds and
// values.
func TestLexSingles(t *testing.T) {
	cases := map[string]struct {
		text string
		kind TokenKind
		val  string
	}{
		"String":            {`"abcd"`, StringToken, `"abcd"`},
		"String-empty":      {`""`, StringToken, `""`},
		"String-spaces":     {`"a b  c"`, StringToken, `"a b  c"`},
		"String-greedy":     {`"a" + "b"`, StringToken, `"a" + "b"`},
		"Print":             {"print", PrintToken, "print"},
		"Semicolon":         {";", SemicolonToken, ";"},
		"Comma":             {",", CommaToken, ","},
		"Equals":            {"=", EqualsToken, "="},
		"If":                {"if", IfToken, "if"},
		"Else":              {"else", ElseToken, "else"},
		"While":             {"while", WhileToken, "while"},
		"Input":             {"input", InputToken, "input"},
		"Use":               {"use", ImportToken, "use"},
		"Fc":                {"fc", FunctionToken, "fc"},
		"Increment":         {"++", IncrementToken, "++"},
		"Decrement":         {"--", DecrementToken, "--"},
		"Ident-alpha":       {"abcd", IdentifierToken, "abcd"},
		"Ident-alnum":       {"a123", IdentifierToken, "a123"},
		"Ident-underscore":  {"_a_b", IdentifierToken, "_a_b"},
		"Ident-keyword-pre": {"printer", IdentifierToken, "printer"},
		"Ident-keyword-fc":  {"fcx", IdentifierToken, "fcx"},
		"Ident-keyword-if":  {"iffy", IdentifierToken, "iffy"},
		"Ident-user":        {"user", IdentifierToken, "user"},
		"Plus":              {"+", PlusToken, "+"},
		"Minus":             {"-", MinusToken, "-"},
		"Multiply":          {"*", MultiplyToken, "*"},
		"Divide":            {"/", DivideToken, "/"},
		"Number":            {"1234", NumberToken, "1234"},
		"Number-zero":       {"0", NumberToken, "0"},
		"LParen":            {"(", LParenToken, "("},
		"RParen":            {")", RParenToken, ")"},
		"LBrace":            {"{", LBraceToken, "{"},
		"RBrace":            {"}", RBraceToken, "}"},
		"Eq":                {"==", EqToken, "=="},
		"Neq":               {"!=", NeqToken, "!="},
		"Lt":                {"<", LtToken, "<"},
		"Gt":                {">", GtToken, ">"},
		"Lte":               {"<=", LteToken, "<="},
		"Gte":               {">=", GteToken, ">="},
		"Space":             {"   abcd   ", IdentifierToken, "abcd"},
		"Tab":               {"\tabcd", IdentifierToken, "abcd"},
		"Error-bang":        {"!", BadToken, "!"},
		"Error-backtick":    {"`", BadToken, "`"},
		"Error-unclosed":    {`"abcd`, BadToken, `"`},
		"Error-unicode":     {"é", BadToken, "é"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			ch := make(chan Token, 100) // large buffer so failures complete
			lex([]string{c.text}, ch)
			tok, ok := <-ch
			if !ok {
				t.Fatal("no token lexed")
			}
			if tok.Kind != c.kind {
				t.Errorf("%q lexed as wrong kind: wanted %v, got %v", c.text, c.kind, tok.Kind)
			}
			if tok.Value != c.val {
				t.Errorf("%q lexed with wrong text: wanted %q, got %q", c.text, c.val, tok.Value)
			}
			if tok.Line != 1 {
				t.Errorf("%q lexed on wrong line %d", c.text, tok.Line)
			}
			tok, ok = <-ch
			if ok {
				t.Errorf("lexed extra token %v", tok)
			}
		})
	}
}

// TestLexMulti tests that the lexer obtains the correct sequences of token
// kinds.
func TestLexMulti(t *testing.T) {
	cases := map[string]struct {
		lines []string
		kinds []TokenKind
	}{
		"Assign":    {[]string{"x = 5;"}, []TokenKind{IdentifierToken, EqualsToken, NumberToken, SemicolonToken}},
		"NoSpaces":  {[]string{"x=a+1;"}, []TokenKind{IdentifierToken, EqualsToken, IdentifierToken, PlusToken, NumberToken, SemicolonToken}},
		"Increment": {[]string{"i++;"}, []TokenKind{IdentifierToken, IncrementToken, SemicolonToken}},
		"Compare":   {[]string{"if (a<=b) {"}, []TokenKind{IfToken, LParenToken, IdentifierToken, LteToken, IdentifierToken, RParenToken, LBraceToken}},
		"EqEq":      {[]string{"a===b"}, []TokenKind{IdentifierToken, EqToken, EqualsToken, IdentifierToken}},
		"Keywords":  {[]string{"print printx"}, []TokenKind{PrintToken, IdentifierToken}},
		"Call":      {[]string{"f(a, 1);"}, []TokenKind{IdentifierToken, LParenToken, IdentifierToken, CommaToken, NumberToken, RParenToken, SemicolonToken}},
		"NumIdent":  {[]string{"12ab"}, []TokenKind{NumberToken, IdentifierToken}},
		"Lines":     {[]string{"a = 1;", "", "  print a;"}, []TokenKind{IdentifierToken, EqualsToken, NumberToken, SemicolonToken, PrintToken, IdentifierToken, SemicolonToken}},
		"Spaces":    {[]string{" \t "}, nil},
		"Empty":     {nil, nil},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			toks, err := Lex(c.lines)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var kinds []TokenKind
			for _, tok := range toks {
				kinds = append(kinds, tok.Kind)
			}
			if diff := cmp.Diff(c.kinds, kinds); diff != "" {
				t.Errorf("wrong kinds (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLexLines(t *testing.T) {
	toks, err := Lex([]string{"a = 1;", "", "print a;"})
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 1, 1, 1, 3, 3, 3}
	var got []int
	for _, tok := range toks {
		got = append(got, tok.Line)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong lines (-want +got):\n%s", diff)
	}
}

func TestLexError(t *testing.T) {
	toks, err := Lex([]string{"a = 1;", "b = a @ 2;", "print b;"})
	var lerr *LexError
	if !errors.As(err, &lerr) {
		t.Fatalf("wrong error: %v", err)
	}
	if lerr.Char != '@' || lerr.Line != 2 {
		t.Errorf("wrong error fields: %+v", lerr)
	}
	if got, want := err.Error(), "unexpected character: @ on line 2"; got != want {
		t.Errorf("wrong message: want %q, got %q", want, got)
	}
	// Tokens before the error are still returned.
	if len(toks) != 7 {
		t.Errorf("wrong number of tokens before error: %d", len(toks))
	}
}

// TestLexRoundTrip checks that joining token values with single spaces
// reproduces a whitespace-normalized statement.
func TestLexRoundTrip(t *testing.T) {
	cases := []string{
		"x = 5 ;",
		"print \"hello world\" ;",
		"if ( a >= b ) { print a ; } else { print b ; }",
		"fc f ( a , b ) { print a + b ; }",
		"while ( i != 10 ) { i ++ ; }",
	}
	for _, src := range cases {
		toks, err := Lex([]string{src})
		if err != nil {
			t.Errorf("%q: %v", src, err)
			continue
		}
		vals := make([]string, len(toks))
		for i, tok := range toks {
			vals[i] = tok.Value
		}
		if got := strings.Join(vals, " "); got != src {
			t.Errorf("round trip: want %q, got %q", src, got)
		}
	}
}

func TestTokenKindString(t *testing.T) {
	if got := GteToken.String(); got != "GTE" {
		t.Errorf("GteToken: got %q", got)
	}
	if got := ImportToken.String(); got != "IMPORT" {
		t.Errorf("ImportToken: got %q", got)
	}
	if got := TokenKind(-1).String(); got != "TokenKind(-1)" {
		t.Errorf("invalid kind: got %q", got)
	}
}
