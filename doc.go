/*
Package zminus implements Z--, a small line-oriented scripting language.

Z-- has integers, text, variables, arithmetic, printing, if/else, while,
line-at-a-time input, and procedures. A program is lexed into tokens, parsed
into statements, and executed by walking the resulting tree against a set of
variables and a table of functions.

The interpreter can be embedded in another program. Use NewVM to create an
interpreter reading input from one stream and printing to another, then pass
source lines to its DoLines method or a reader to DoReader. The Vars and Funcs
fields hold the program state between runs, so a host can seed variables
before running a program or inspect them after. RunLines and RunReader wrap
the common case of running one program on a fresh VM.

Z-- Primer

Hello World in Z--:

	print "Hello, world!";

Every statement but the block forms ends with a semicolon. Variables are
created by assignment and hold either an integer or text:

	count = 3;
	name = z;
	total = count * 4;
	print total;

An expression is a literal, a variable, or a variable followed by one of
+ - * / and another expression. Operators group to the right, so

	d = a - b - c;

computes a - (b - c). Integers use 64-bit arithmetic with division truncated
toward zero, and a result that does not fit is an error. Text joins with +,
and text times an integer repeats it. A name that has never been assigned
stands for its own name as text.

Integer variables can be stepped in place:

	count++;
	count--;

Conditions compare two expressions with one of == != < > <= >=, and gate if
and while:

	if (count < 10) {
		print "small";
	} else {
		print "large";
	}

	i = 0;
	while (i < 3) {
		print i;
		i++;
	}

Text made entirely of digits compares as a number. Text and integers are never
equal and cannot be ordered against each other.

The input statement reads one line into a variable, either as an integer or as
text:

	input int n;
	input string who;

Procedures are declared with fc and called by name:

	fc greet(who, times) {
		print who * times;
	}
	greet(hi, 2);

A quoted literal keeps its quotes once it is stored in a variable or passed as
an argument; only print applied directly to a literal drops them. So

	x = "hi";
	print x;

prints "hi" with the quotes. A bare word such as hi above is unquoted text.

A procedure sees a copy of the caller's variables, with its parameters bound
to the arguments, and nothing it assigns survives the call. Procedures return
no value. They must be declared before the call executes, and a later fc with
the same name replaces the earlier one.

Finally, use runs another file in the current variables, which is the way to
share procedures between programs:

	use "lib.zm";
	greet(there, 1);

Each file runs at most once per interpreter, no matter how many times it is
used.
*/
package zminus
