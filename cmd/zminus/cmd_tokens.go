package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/zminus"
	"github.com/zephyrtronium/zminus/source"
)

// getTokensCmd returns the definition of the tokens command.
func getTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the tokens of a Z-- program, one per line.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := source.ReadFile(args[0])
			if err != nil {
				return err
			}
			toks, err := zminus.Lex(lines)
			w := cmd.OutOrStdout()
			for _, tok := range toks {
				fmt.Fprintf(w, "%d\t%v\t%s\n", tok.Line, tok.Kind, tok.Value)
			}
			return err
		},
	}
}

// getASTCmd returns the definition of the ast command.
func getASTCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ast FILE",
		Short: "Print the parsed statements of a Z-- program, one per line.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := source.ReadFile(args[0])
			if err != nil {
				return err
			}
			toks, err := zminus.Lex(lines)
			if err != nil {
				return err
			}
			prog, err := zminus.Parse(toks)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, s := range prog {
				fmt.Fprintf(w, "%d\t%v\n", s.Pos(), s)
			}
			return nil
		},
	}
}
