package main

import (
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/zminus/source"
)

// runEnv provides the environment for the run command.
type runEnv struct {
	vmFlags
	cpuProfile string
	memProfile string
}

// getRunCmd returns the definition of the run command.
func getRunCmd() *cobra.Command {
	env := &runEnv{}
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run a Z-- program.",
		Long: `Run a Z-- program.

Input statements read lines from standard input, and print statements write to
standard output. The program stops at the first error.`,
		Args: cobra.ExactArgs(1),
		RunE: env.runRunCmd,
	}
	env.register(cmd)
	cmd.Flags().StringVar(&env.cpuProfile, "cpuprofile", "", "write a CPU profile of the run to this file")
	cmd.Flags().StringVar(&env.memProfile, "memprofile", "", "write a heap profile after the run to this file")
	return cmd
}

// runRunCmd executes the run command.
func (r *runEnv) runRunCmd(cmd *cobra.Command, args []string) error {
	c, err := r.settings(cmd, args[0])
	if err != nil {
		return err
	}
	lines, err := source.ReadFile(args[0])
	if err != nil {
		return err
	}
	name, err := filepath.Abs(args[0])
	if err != nil {
		return errors.WithStack(err)
	}
	vm := newVM(cmd, c)
	defer vm.Log.Sync()
	return r.profiled(func() error {
		return vm.Run(cmd.Context(), name, lines)
	})
}

// profiled calls f with profiling enabled as requested by the flags.
func (r *runEnv) profiled(f func() error) error {
	if r.cpuProfile != "" {
		cf, err := os.Create(r.cpuProfile)
		if err != nil {
			return errors.WithStack(err)
		}
		defer cf.Close()
		if err := pprof.StartCPUProfile(cf); err != nil {
			return errors.Wrap(err, "starting CPU profile")
		}
		defer pprof.StopCPUProfile()
	}
	if err := f(); err != nil {
		return err
	}
	if r.memProfile != "" {
		mf, err := os.Create(r.memProfile)
		if err != nil {
			return errors.WithStack(err)
		}
		defer mf.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(mf); err != nil {
			return errors.Wrap(err, "writing heap profile")
		}
	}
	return nil
}
