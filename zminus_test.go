package zminus_test

import (
	"context"
	"strings"
	"testing"

	"github.com/zephyrtronium/zminus"
	"github.com/zephyrtronium/zminus/testutils"
)

func TestPrograms(t *testing.T) {
	cases := map[string]testutils.SourceTestCase{
		"Hello": {
			Source: `print "Hello, world!";`,
			Pass:   testutils.PassLines("Hello, world!"),
		},
		"AssignPrint": {
			Source: "x = 5;\nprint x;",
			Pass:   testutils.PassLines("5"),
		},
		"Arithmetic": {
			Source: "a = 10;\nb = 3;\nc = a - b;\nprint c;\nd = a / b;\nprint d;\ne = a * b;\nprint e;",
			Pass:   testutils.PassLines("7", "3", "30"),
		},
		"Counter": {
			Source: "i = 0;\nwhile (i < 5) {\n\ti++;\n}\nprint i;",
			Pass:   testutils.PassLines("5"),
		},
		"Branches": {
			Source: "x = 3;\nif (x > 2) {\n\tprint \"big\";\n} else {\n\tprint \"small\";\n}",
			Pass:   testutils.PassLines("big"),
		},
		"Echo": {
			Source: "input string name;\ninput int n;\nprint name;\nprint n * 2;",
			Input:  "zed\n21\n",
			Pass:   testutils.PassLines("zed", "42"),
		},
		"Procedure": {
			Source: "fc greet(who) {\n\tprint who;\n}\ngreet(\"a\");\ngreet(\"b\");",
			Pass:   testutils.PassLines(`"a"`, `"b"`),
		},
		"Factorial": {
			Source: "n = 5;\nacc = 1;\nwhile (n > 1) {\n\tacc = acc * n;\n\tn--;\n}\nprint acc;",
			Pass:   testutils.PassLines("120"),
		},
		"IncrementDecrement": {
			Source: "x = 5;\nx++;\nprint x;\ny = 5;\ny--;\nprint y;",
			Pass:   testutils.PassLines("6", "4"),
		},
		"CopyIn": {
			Source: "a = 1;\nb = 1;\nc = 1;\nfc add(a, b) {\n\tc = a + b;\n\tprint c;\n}\nadd(2, 3);\nprint c;",
			Pass:   testutils.PassLines("5", "1"),
		},
		"CopyInVars": {
			Source: "a = 1;\nb = 1;\nc = 1;\nfc add(a, b) {\n\tc = a + b;\n}\nadd(2, 3);",
			Pass: testutils.PassVars(map[string]zminus.Value{
				"a": zminus.NewInteger(1),
				"b": zminus.NewInteger(1),
				"c": zminus.NewInteger(1),
			}),
		},
		"CallLeavesCaller": {
			Source: "x = 1;\nfc f(x) {\n\tx = 100;\n\ty = 2;\n}\nf(50);",
			Pass:   testutils.PassVars(map[string]zminus.Value{"x": zminus.NewInteger(1)}),
		},
		"Types": {
			Source: "i = 3;\ns = \"3\";\nu = unbound;",
			Pass: testutils.PassVars(map[string]zminus.Value{
				"i": zminus.NewInteger(3),
				"s": zminus.NewText(`"3"`),
				"u": zminus.NewText("unbound"),
			}),
		},
		"Silent": {
			Source: "x = 1;\nif (x == 2) {\n\tprint x;\n}",
			Pass:   testutils.PassLines(),
		},
		"Empty": {
			Source: "",
			Pass:   testutils.PassSuccess(),
		},
		"DivideByZero": {
			Source: "a = 1;\nb = 0;\nc = a / b;",
			Pass:   testutils.PassError[*zminus.DivisionByZeroError](),
		},
		"Undefined": {
			Source: "y--;",
			Pass:   testutils.PassError[*zminus.UndefinedVariableError](),
		},
		"NoFunction": {
			Source: "nothing();",
			Pass:   testutils.PassError[*zminus.UndefinedFunctionError](),
		},
		"BadInputType": {
			Source: "input char c;",
			Input:  "c\n",
			Pass:   testutils.PassError[*zminus.UnsupportedInputTypeError](),
		},
		"BadOperator": {
			Source: "if (1 is 1) { }",
			Pass:   testutils.PassError[*zminus.InvalidOperatorError](),
		},
		"Syntax": {
			Source: "print 1",
			Pass:   testutils.PassError[*zminus.SyntaxError](),
		},
		"Lex": {
			Source: "x = 1 % 2;",
			Pass:   testutils.PassError[*zminus.LexError](),
		},
		"Recursion": {
			Source: "fc f() {\n\tf();\n}\nf();",
			Pass:   testutils.PassError[*zminus.CallDepthError](),
		},
		"Overflow": {
			Source: "s = \"z\";\nn = 9223372036854775807;\nt = s * n;",
			Pass:   testutils.PassError[*zminus.OverflowError](),
		},
		"NoImporter": {
			Source: `use "x.zm";`,
			Pass:   testutils.PassFailure(),
		},
	}
	testutils.CheckCases(t, cases)
}

func TestLexParse(t *testing.T) {
	toks, err := zminus.Lex([]string{"fc f(a) {", "\tprint a;", "}"})
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 10 {
		t.Errorf("wrong number of tokens: %d", len(toks))
	}
	prog, err := zminus.Parse(toks)
	if err != nil {
		t.Fatal(err)
	}
	if len(prog) != 1 || prog[0].String() != "fc f(a) { print a; }" {
		t.Errorf("wrong program %v", prog)
	}
}

func TestRunReader(t *testing.T) {
	var out strings.Builder
	src := strings.NewReader("x = \"a\";\r\ny = x * 3;\r\nprint y;\r\n")
	vm, err := zminus.RunReader(context.Background(), src, nil, &out)
	if err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "\"a\"\"a\"\"a\"\n" {
		t.Errorf("wrong output %q", got)
	}
	if v, ok := vm.Vars.Lookup("y"); !ok || !v.Equal(zminus.NewText(`"a""a""a"`)) {
		t.Errorf("wrong y: %#v", v)
	}
}

func TestVMReuse(t *testing.T) {
	var out strings.Builder
	vm := zminus.NewVM(nil, &out)
	vm.Vars["seed"] = zminus.NewInteger(40)
	ctx := context.Background()
	if err := vm.DoString(ctx, "fc bump(n) {\n\tn++;\n\tn++;\n\tprint n;\n}"); err != nil {
		t.Fatal(err)
	}
	if err := vm.DoString(ctx, "bump(seed);"); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "42\n" {
		t.Errorf("wrong output %q", got)
	}
}
