package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/zminus"
)

const (
	ps1 = "zm> "
	ps2 = "... "
)

// replEnv provides the environment for the repl command.
type replEnv struct {
	vmFlags
	quiet bool
}

// getREPLCmd returns the definition of the repl command.
func getREPLCmd() *cobra.Command {
	env := &replEnv{}
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Run Z-- statements interactively.",
		Long: `Run Z-- statements interactively.

Each line is executed as soon as it completes a statement; a line that leaves a
block open continues on the next line. Variables and procedures persist between
lines. Errors are reported without ending the session. Input statements read
from the same stream as the prompt.`,
		Args: cobra.NoArgs,
		RunE: env.runREPLCmd,
	}
	env.register(cmd)
	cmd.Flags().BoolVarP(&env.quiet, "quiet", "q", false, "do not print prompts")
	return cmd
}

// runREPLCmd executes the repl command.
func (r *replEnv) runREPLCmd(cmd *cobra.Command, args []string) error {
	c, err := r.settings(cmd, "")
	if err != nil {
		return err
	}
	vm := newVM(cmd, c)
	defer vm.Log.Sync()
	ctx := cmd.Context()
	out, errs := cmd.OutOrStdout(), cmd.ErrOrStderr()
	red := color.New(color.FgRed)
	var pending []string
	for {
		if !r.quiet {
			if len(pending) == 0 {
				fmt.Fprint(out, ps1)
			} else {
				fmt.Fprint(out, ps2)
			}
		}
		line, err := vm.Stdin.ReadString('\n')
		if line == "" && err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		pending = append(pending, strings.TrimRight(line, "\r\n"))
		if openBlocks(pending) {
			continue
		}
		prog, lerr := vm.Load(pending)
		pending = pending[:0]
		if lerr == nil {
			lerr = vm.Exec(ctx, prog)
		}
		if lerr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			red.Fprintf(errs, "error: %v\n", lerr)
		}
		if err == io.EOF {
			return nil
		}
	}
}

// openBlocks reports whether lines leave a brace open. Lines that do not lex
// are complete, so that the error is reported right away.
func openBlocks(lines []string) bool {
	toks, err := zminus.Lex(lines)
	if err != nil {
		return false
	}
	depth := 0
	for _, tok := range toks {
		switch tok.Value {
		case "{":
			depth++
		case "}":
			depth--
		}
	}
	return depth > 0
}
