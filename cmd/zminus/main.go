// Command zminus runs Z-- programs.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zephyrtronium/zminus"
	"github.com/zephyrtronium/zminus/config"
	"github.com/zephyrtronium/zminus/source"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// rootCmd returns the definition of the zminus command and its subcommands.
func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "zminus",
		Short: "Run Z-- programs.",
		Long: `Run Z-- programs.

The different tools are sub-commands, for example to run a program:

	zminus run hello.zm
`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(getRunCmd(), getTokensCmd(), getASTCmd(), getREPLCmd(), getVersionCmd())
	return root
}

// vmFlags are the interpreter settings shared by commands that execute code.
type vmFlags struct {
	configPath  string
	trace       bool
	maxDepth    int
	importPaths []string
}

func (f *vmFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "configuration file (default "+config.FileName+" beside the program)")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "log lexing, parsing, and execution to stderr")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", 0, "maximum procedure call depth, 0 for no limit")
	cmd.Flags().StringSliceVarP(&f.importPaths, "include", "I", nil, "directories searched by use statements")
}

// settings loads the configuration for a program and applies flag overrides.
// program may be empty when there is no program file.
func (f *vmFlags) settings(cmd *cobra.Command, program string) (config.Config, error) {
	var c config.Config
	var err error
	switch {
	case f.configPath != "":
		c, err = config.Load(f.configPath)
	case program != "":
		c, err = config.ForProgram(program)
	default:
		c = config.Default()
	}
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("trace") {
		c.Trace = f.trace
	}
	if cmd.Flags().Changed("max-depth") {
		c.MaxCallDepth = f.maxDepth
	}
	c.ImportPaths = append(f.importPaths, c.ImportPaths...)
	return c, c.Validate()
}

// newVM creates a VM wired to the command's streams and configured by c.
func newVM(cmd *cobra.Command, c config.Config) *zminus.VM {
	vm := zminus.NewVM(cmd.InOrStdin(), cmd.OutOrStdout())
	vm.MaxDepth = c.MaxCallDepth
	vm.Importer = &source.Loader{Paths: c.ImportPaths}
	if c.Trace {
		vm.Log = traceLogger(cmd.ErrOrStderr())
	}
	return vm
}

// traceLogger builds a development console logger writing to w.
func traceLogger(w io.Writer) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), zap.DebugLevel)
	return zap.New(core)
}

// getVersionCmd returns the definition of the version command.
func getVersionCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the interpreter version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "zminus "+zminus.Version)
			if verbose {
				fmt.Fprintln(cmd.OutOrStdout(), "platform "+platformVersion())
			}
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print the platform")
	return cmd
}
